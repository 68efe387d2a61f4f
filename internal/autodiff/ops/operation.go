// Package ops defines the fixed set of differentiable scalar operations.
//
// Each operation provides:
//   - Forward: evaluates the scalar result from operand values
//   - Gradient: the local partial derivatives with respect to each operand,
//     evaluated at the operands' forward values
//
// Supported operations:
//   - Add:  a + b           (d/da = 1, d/db = 1)
//   - Sub:  a - b           (d/da = 1, d/db = -1)
//   - Mul:  a * b           (d/da = b, d/db = a)
//   - Div:  a / b           (d/da = 1/b, d/db = -a/b²)
//   - Pow:  a ^ b           (d/da = b*a^(b-1), d/db = ln(a)*a^b)
//   - Exp:  e^a             (d/da = e^a)
//   - ReLU: max(0, a)       (d/da = 1 if a > 0, else 0)
//   - Tanh: tanh(a)         (d/da = 1 - tanh²(a))
//   - Mean: (a1+...+an) / n (d/dai = 1/n)
//
// Operations never read or write gradients; they are pure functions of
// forward values, so the same table serves graph construction and the
// backward pass.
package ops

import (
	"errors"
	"fmt"
)

// Errors returned by Forward and Gradient.
var (
	// ErrDomain reports an operand outside the operation's domain,
	// e.g. division by zero.
	ErrDomain = errors.New("domain error")
	// ErrArity reports a wrong number of operands.
	ErrArity = errors.New("arity mismatch")
	// ErrUnknownOp reports an Op value outside the enumeration.
	ErrUnknownOp = errors.New("unknown operation")
)

// Variadic is the arity of operations that accept any positive number of operands.
const Variadic = -1

// Op identifies a differentiable scalar operation.
type Op uint8

// Operation kinds. The zero value is not a valid operation.
const (
	_ Op = iota
	Add
	Sub
	Mul
	Div
	Pow
	Exp
	ReLU
	Tanh
	Mean
)

var names = [...]string{
	Add:  "add",
	Sub:  "sub",
	Mul:  "mul",
	Div:  "div",
	Pow:  "pow",
	Exp:  "exp",
	ReLU: "relu",
	Tanh: "tanh",
	Mean: "mean",
}

// All returns every operation in declaration order.
func All() []Op {
	return []Op{Add, Sub, Mul, Div, Pow, Exp, ReLU, Tanh, Mean}
}

// String returns the lowercase operation name.
func (op Op) String() string {
	if op.Valid() {
		return names[op]
	}
	return fmt.Sprintf("op(%d)", uint8(op))
}

// Valid reports whether op is one of the declared operations.
func (op Op) Valid() bool {
	return op >= Add && op <= Mean
}

// Parse returns the operation with the given name.
func Parse(name string) (Op, error) {
	for _, op := range All() {
		if names[op] == name {
			return op, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownOp)
}

// Arity returns the number of operands op takes, or Variadic.
func (op Op) Arity() int {
	switch op {
	case Add, Sub, Mul, Div, Pow:
		return 2
	case Exp, ReLU, Tanh:
		return 1
	case Mean:
		return Variadic
	default:
		return 0
	}
}

// CheckArity validates the operand count for op.
func (op Op) CheckArity(n int) error {
	if !op.Valid() {
		return fmt.Errorf("%s: %w", op, ErrUnknownOp)
	}
	arity := op.Arity()
	if arity == Variadic {
		if n < 1 {
			return fmt.Errorf("%s: need at least 1 operand, got %d: %w", op, n, ErrArity)
		}
		return nil
	}
	if n != arity {
		return fmt.Errorf("%s: need %d operands, got %d: %w", op, arity, n, ErrArity)
	}
	return nil
}

// Forward evaluates op on the operand values x.
//
// Division by zero and powers that leave the real numbers fail with ErrDomain
// instead of producing NaN or Inf.
func (op Op) Forward(x []float64) (float64, error) {
	if err := op.CheckArity(len(x)); err != nil {
		return 0, err
	}
	switch op {
	case Add:
		return x[0] + x[1], nil
	case Sub:
		return x[0] - x[1], nil
	case Mul:
		return x[0] * x[1], nil
	case Div:
		return div(x[0], x[1])
	case Pow:
		return pow(x[0], x[1])
	case Exp:
		return exp(x[0]), nil
	case ReLU:
		return relu(x[0]), nil
	case Tanh:
		return tanh(x[0]), nil
	default: // Mean
		return mean(x), nil
	}
}

// Gradient returns the local partial derivatives of op at x, one per operand
// in operand order. The returned slice is freshly allocated.
func (op Op) Gradient(x []float64) ([]float64, error) {
	if err := op.CheckArity(len(x)); err != nil {
		return nil, err
	}
	switch op {
	case Add:
		return []float64{1, 1}, nil
	case Sub:
		return []float64{1, -1}, nil
	case Mul:
		return []float64{x[1], x[0]}, nil
	case Div:
		return divGrad(x[0], x[1])
	case Pow:
		return powGrad(x[0], x[1]), nil
	case Exp:
		return []float64{exp(x[0])}, nil
	case ReLU:
		return []float64{reluGrad(x[0])}, nil
	case Tanh:
		return []float64{tanhGrad(x[0])}, nil
	default: // Mean
		return meanGrad(len(x)), nil
	}
}
