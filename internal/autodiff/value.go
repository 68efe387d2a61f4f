package autodiff

import (
	"fmt"

	"github.com/born-ml/scalargrad/internal/autodiff/ops"
)

// Operand is either a Value or a Scalar.
type Operand interface {
	// resolve returns the node ID of the operand in g, creating a constant
	// node for scalars.
	resolve(g *Graph) (NodeID, error)
}

// Scalar is a raw number used as an operand. It is materialized as a fresh
// constant node that does not participate in gradient.
type Scalar float64

func (s Scalar) resolve(g *Graph) (NodeID, error) {
	return g.Constant(float64(s)).id, nil
}

// Value is a handle to a node in a Graph. The zero Value is invalid.
//
// Values are cheap to copy; copies refer to the same node.
type Value struct {
	g     *Graph
	id    NodeID
	epoch uint32
}

func (v Value) resolve(g *Graph) (NodeID, error) {
	if _, err := g.lookup(v); err != nil {
		return 0, err
	}
	return v.id, nil
}

// node returns the node behind v, panicking on an unusable handle.
func (v Value) node() *node {
	if v.g == nil {
		panic(ErrInvalidValue)
	}
	n, err := v.g.lookup(v)
	if err != nil {
		panic(err)
	}
	return n
}

// Graph returns the graph that owns v.
func (v Value) Graph() *Graph { return v.g }

// ID returns the node index of v within its graph.
func (v Value) ID() NodeID { return v.id }

// Valid reports whether v refers to a live node.
func (v Value) Valid() bool {
	if v.g == nil {
		return false
	}
	_, err := v.g.lookup(v)
	return err == nil
}

// Data returns the forward value.
func (v Value) Data() float64 { return v.node().data }

// SetData overwrites the value of a leaf, as an optimizer step does.
// It panics for computed nodes, whose data must stay consistent with their
// operands.
func (v Value) SetData(data float64) {
	n := v.node()
	if n.op.Valid() {
		panic(fmt.Errorf("set data on %s node %d: %w", n.op, v.id, ErrNotLeaf))
	}
	n.data = data
}

// Grad returns the accumulated gradient.
func (v Value) Grad() float64 { return v.node().grad }

// SetGrad overwrites the accumulated gradient.
func (v Value) SetGrad(grad float64) { v.node().grad = grad }

// ResetGradient sets the gradient of v to 0. Other nodes are untouched.
func (v Value) ResetGradient() { v.node().grad = 0 }

// Label returns the diagnostic name, possibly empty.
func (v Value) Label() string { return v.node().label }

// RequiresGrad reports whether v participates in gradient.
func (v Value) RequiresGrad() bool { return v.node().requiresGrad }

// Op returns the operation that produced v. ok is false for leaves.
func (v Value) Op() (op ops.Op, ok bool) {
	n := v.node()
	return n.op, n.op.Valid()
}

// Operands returns the operands of v in order, or nil for leaves.
func (v Value) Operands() []Value {
	n := v.node()
	if len(n.operands) == 0 {
		return nil
	}
	out := make([]Value, len(n.operands))
	for i, id := range n.operands {
		out[i] = v.g.value(id)
	}
	return out
}

// String renders v as label(data), or Value(data) when unlabeled.
func (v Value) String() string {
	if !v.Valid() {
		return "Value(<invalid>)"
	}
	n := v.node()
	if n.label == "" {
		return fmt.Sprintf("Value(%g)", n.data)
	}
	return fmt.Sprintf("%s(%g)", n.label, n.data)
}

// Arithmetic. The receiver is always the first operand.
//
// These methods panic on a domain error or an unusable handle; use
// Graph.Apply or TryDiv/TryPow to get the error instead.

// Add returns v + other.
func (v Value) Add(other Operand) Value { return v.graph().must(ops.Add, v, other) }

// Sub returns v - other.
func (v Value) Sub(other Operand) Value { return v.graph().must(ops.Sub, v, other) }

// Mul returns v * other.
func (v Value) Mul(other Operand) Value { return v.graph().must(ops.Mul, v, other) }

// Div returns v / other. It panics if other is zero.
func (v Value) Div(other Operand) Value { return v.graph().must(ops.Div, v, other) }

// Pow returns v ^ other. It panics if the result is not a real number.
func (v Value) Pow(other Operand) Value { return v.graph().must(ops.Pow, v, other) }

// Neg returns -v, computed as v * -1.
func (v Value) Neg() Value { return v.Mul(Scalar(-1)) }

// Exp returns e^v.
func (v Value) Exp() Value { return v.graph().must(ops.Exp, v) }

// ReLU returns max(0, v).
func (v Value) ReLU() Value { return v.graph().must(ops.ReLU, v) }

// Tanh returns tanh(v).
func (v Value) Tanh() Value { return v.graph().must(ops.Tanh, v) }

// TryDiv is Div returning ops.ErrDomain instead of panicking.
func (v Value) TryDiv(other Operand) (Value, error) {
	if v.g == nil {
		return Value{}, ErrInvalidValue
	}
	return v.g.Apply(ops.Div, v, other)
}

// TryPow is Pow returning ops.ErrDomain instead of panicking.
func (v Value) TryPow(other Operand) (Value, error) {
	if v.g == nil {
		return Value{}, ErrInvalidValue
	}
	return v.g.Apply(ops.Pow, v, other)
}

// Apply applies a unary operation such as an activation to v.
func (v Value) Apply(op ops.Op) (Value, error) {
	if v.g == nil {
		return Value{}, ErrInvalidValue
	}
	return v.g.Apply(op, v)
}

func (v Value) graph() *Graph {
	if v.g == nil {
		panic(ErrInvalidValue)
	}
	return v.g
}
