// Package nn implements feed-forward networks built from scalar neurons.
//
// This package provides:
//   - Module interface: Base interface for all network components
//   - Neuron: Weighted sum of inputs plus bias, followed by an activation
//   - Layer: A row of neurons sharing the same inputs
//   - MLP: A stack of fully connected layers
//   - MSELoss: Mean squared error between targets and predictions
//
// Every weight and bias is a leaf autodiff.Value living in the graph the
// module was built in, so a backward pass from a loss deposits gradients
// directly on the parameters.
package nn

import (
	"errors"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

// Errors returned by module constructors and forward passes.
var (
	ErrInputSize  = errors.New("input size mismatch")
	ErrActivation = errors.New("activation must be a unary operation")
	ErrShape      = errors.New("invalid layer shape")
)

// Module is the base interface for all network components.
//
// Modules can be composed to build larger networks:
//
//	mlp, err := nn.NewMLP(g, 3, []int{4, 4, 1}, ops.Tanh, rng)
//	out, err := mlp.Forward(nn.Inputs(g, []float64{2, 3, -1}))
type Module interface {
	// Forward computes the module outputs for the given inputs.
	Forward(inputs []autodiff.Value) ([]autodiff.Value, error)

	// Parameters returns all trainable parameters of this module,
	// including those of nested modules.
	Parameters() []autodiff.Value
}

// ZeroGrad resets the gradient of every parameter of m.
func ZeroGrad(m Module) {
	for _, p := range m.Parameters() {
		p.ResetGradient()
	}
}

// Inputs wraps raw numbers as constant values in g. Inputs never receive
// gradient.
func Inputs(g *autodiff.Graph, xs []float64) []autodiff.Value {
	out := make([]autodiff.Value, len(xs))
	for i, x := range xs {
		out[i] = g.Constant(x)
	}
	return out
}
