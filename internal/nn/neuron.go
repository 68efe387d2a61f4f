package nn

import (
	"fmt"
	"math/rand/v2"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/autodiff/ops"
)

// Neuron computes activation(w·x + b).
type Neuron struct {
	weights    []autodiff.Value
	bias       autodiff.Value
	activation ops.Op
}

// NewNeuron creates a neuron with in weights. name prefixes parameter labels.
func NewNeuron(g *autodiff.Graph, in int, activation ops.Op, rng *rand.Rand, name string) (*Neuron, error) {
	if in < 1 {
		return nil, fmt.Errorf("neuron with %d inputs: %w", in, ErrShape)
	}
	if err := checkActivation(activation); err != nil {
		return nil, err
	}

	weights := make([]autodiff.Value, in)
	for i := range weights {
		weights[i] = newParameter(g, paramName(name, "w", i), rng)
	}
	return &Neuron{
		weights:    weights,
		bias:       newParameter(g, paramName(name, "b"), rng),
		activation: activation,
	}, nil
}

// Forward computes the neuron's output for inputs.
func (n *Neuron) Forward(inputs []autodiff.Value) (autodiff.Value, error) {
	if len(inputs) != len(n.weights) {
		return autodiff.Value{}, fmt.Errorf("neuron: got %d inputs, want %d: %w", len(inputs), len(n.weights), ErrInputSize)
	}

	sum := n.bias
	for i, x := range inputs {
		sum = sum.Add(x.Mul(n.weights[i]))
	}
	return activate(sum, n.activation)
}

// Weights returns the weight parameters in input order.
func (n *Neuron) Weights() []autodiff.Value {
	return n.weights
}

// Bias returns the bias parameter.
func (n *Neuron) Bias() autodiff.Value {
	return n.bias
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []autodiff.Value {
	params := make([]autodiff.Value, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}
