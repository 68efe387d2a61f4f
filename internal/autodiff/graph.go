// Package autodiff implements scalar reverse-mode automatic differentiation.
//
// Values are handles into a Graph, an append-only arena of nodes. Applying an
// operation to values appends a node that records the operation and, in
// order, the IDs of its operands. Because an operand always exists before the
// node consuming it, arena order is a topological order of the graph, which
// the backward pass uses directly.
//
// Usage:
//
//	g := autodiff.NewGraph()
//	a := g.NewValue(3, autodiff.WithLabel("a"))
//	b := g.NewValue(4, autodiff.WithLabel("b"))
//	c := a.Add(b)
//	y := c.Mul(c)
//	y.Backward()
//	// a.Grad() == b.Grad() == 14
//
// A Graph is not safe for concurrent use.
package autodiff

import (
	"errors"

	"github.com/born-ml/scalargrad/internal/autodiff/ops"
)

// Errors reported for misuse of Value handles.
var (
	// ErrInvalidValue reports use of the zero Value.
	ErrInvalidValue = errors.New("invalid value: not created by a graph")
	// ErrForeignValue reports an operand that belongs to a different graph.
	ErrForeignValue = errors.New("value belongs to a different graph")
	// ErrStaleValue reports a handle whose node was discarded by Rollback.
	ErrStaleValue = errors.New("value was discarded by rollback")
	// ErrNotLeaf reports an attempt to overwrite the data of a computed node.
	ErrNotLeaf = errors.New("value is not a leaf")
)

// NodeID is the stable index of a node within its graph.
type NodeID int

// node is one vertex of the computation graph.
type node struct {
	data         float64
	grad         float64
	requiresGrad bool
	op           ops.Op   // zero for leaves
	operands     []NodeID // operand order matches op's gradient order
	label        string
	epoch        uint32
}

// Graph is an arena of computation nodes.
type Graph struct {
	nodes []node
	epoch uint32 // bumped on Rollback to invalidate discarded handles
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make([]node, 0, 64),
	}
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Option configures a leaf created by NewValue.
type Option func(*node)

// WithLabel sets a diagnostic name.
func WithLabel(label string) Option {
	return func(n *node) {
		n.label = label
	}
}

// WithoutGrad marks the value as a constant that neither receives nor
// propagates gradient.
func WithoutGrad() Option {
	return func(n *node) {
		n.requiresGrad = false
	}
}

// NewValue creates a leaf (input or parameter) holding data.
// Leaves participate in gradient unless WithoutGrad is given.
func (g *Graph) NewValue(data float64, opts ...Option) Value {
	n := node{data: data, requiresGrad: true}
	for _, opt := range opts {
		opt(&n)
	}
	return g.push(n)
}

// Constant creates a leaf that does not participate in gradient.
func (g *Graph) Constant(data float64) Value {
	return g.NewValue(data, WithoutGrad())
}

func (g *Graph) push(n node) Value {
	n.epoch = g.epoch
	g.nodes = append(g.nodes, n)
	return Value{g: g, id: NodeID(len(g.nodes) - 1), epoch: g.epoch}
}

// Apply evaluates op on operands and appends the resulting node.
//
// Scalar operands are materialized as constants first. Nothing is appended
// when an error is returned.
func (g *Graph) Apply(op ops.Op, operands ...Operand) (Value, error) {
	if err := op.CheckArity(len(operands)); err != nil {
		return Value{}, err
	}

	mark := len(g.nodes)
	ids := make([]NodeID, len(operands))
	xs := make([]float64, len(operands))
	for i, o := range operands {
		id, err := o.resolve(g)
		if err != nil {
			g.truncate(mark)
			return Value{}, err
		}
		ids[i] = id
		xs[i] = g.nodes[id].data
	}

	data, err := op.Forward(xs)
	if err != nil {
		g.truncate(mark)
		return Value{}, err
	}
	return g.push(node{
		data:         data,
		requiresGrad: true,
		op:           op,
		operands:     ids,
	}), nil
}

// must is Apply for the fluent API: misuse fails fast.
func (g *Graph) must(op ops.Op, operands ...Operand) Value {
	v, err := g.Apply(op, operands...)
	if err != nil {
		panic(err)
	}
	return v
}

// Mean returns the arithmetic mean of values.
// It panics if values is empty.
func (g *Graph) Mean(values ...Operand) Value {
	return g.must(ops.Mean, values...)
}

// ResetGradients sets the gradient of every node in the graph to 0.
func (g *Graph) ResetGradients() {
	for i := range g.nodes {
		g.nodes[i].grad = 0
	}
}

// Mark is a position in the graph returned by Checkpoint.
type Mark int

// Checkpoint returns the current end of the graph.
func (g *Graph) Checkpoint() Mark {
	return Mark(len(g.nodes))
}

// Rollback discards every node created after m. Handles to discarded nodes
// become stale; handles to older nodes stay valid. Rolling back to a mark at
// or beyond the current end is a no-op.
func (g *Graph) Rollback(m Mark) {
	if int(m) >= len(g.nodes) || m < 0 {
		return
	}
	g.truncate(int(m))
	g.epoch++
}

// truncate drops nodes from n on without invalidating handles. Only safe when
// no handle to those nodes has escaped.
func (g *Graph) truncate(n int) {
	clear(g.nodes[n:])
	g.nodes = g.nodes[:n]
}

// value returns a handle for id, which must be live.
func (g *Graph) value(id NodeID) Value {
	return Value{g: g, id: id, epoch: g.nodes[id].epoch}
}

// lookup returns the node behind v.
func (g *Graph) lookup(v Value) (*node, error) {
	if v.g == nil {
		return nil, ErrInvalidValue
	}
	if v.g != g {
		return nil, ErrForeignValue
	}
	if int(v.id) >= len(g.nodes) || g.nodes[v.id].epoch != v.epoch {
		return nil, ErrStaleValue
	}
	return &g.nodes[v.id], nil
}
