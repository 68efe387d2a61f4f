package nn

import (
	"fmt"
	"math/rand/v2"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/autodiff/ops"
)

// Layer is a row of neurons applied to the same inputs.
type Layer struct {
	neurons []*Neuron
	in      int
}

// NewLayer creates a layer of out neurons with in inputs each.
func NewLayer(g *autodiff.Graph, in, out int, activation ops.Op, rng *rand.Rand, name string) (*Layer, error) {
	if out < 1 {
		return nil, fmt.Errorf("layer with %d neurons: %w", out, ErrShape)
	}
	neurons := make([]*Neuron, out)
	for i := range neurons {
		n, err := NewNeuron(g, in, activation, rng, paramName(name, "n", i))
		if err != nil {
			return nil, err
		}
		neurons[i] = n
	}
	return &Layer{neurons: neurons, in: in}, nil
}

// InFeatures returns the number of inputs.
func (l *Layer) InFeatures() int { return l.in }

// OutFeatures returns the number of outputs.
func (l *Layer) OutFeatures() int { return len(l.neurons) }

// Neurons returns the layer's neurons.
func (l *Layer) Neurons() []*Neuron { return l.neurons }

// Forward returns one output per neuron.
func (l *Layer) Forward(inputs []autodiff.Value) ([]autodiff.Value, error) {
	out := make([]autodiff.Value, len(l.neurons))
	for i, n := range l.neurons {
		v, err := n.Forward(inputs)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Parameters returns the parameters of every neuron in order.
func (l *Layer) Parameters() []autodiff.Value {
	var params []autodiff.Value
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// MLP is a multi-layer perceptron. Every layer, including the last, applies
// the same activation.
type MLP struct {
	layers []*Layer
}

// NewMLP creates an MLP with in inputs and one layer per entry of sizes.
func NewMLP(g *autodiff.Graph, in int, sizes []int, activation ops.Op, rng *rand.Rand) (*MLP, error) {
	if len(sizes) == 0 {
		return nil, fmt.Errorf("mlp without layers: %w", ErrShape)
	}
	m := &MLP{}
	for i, size := range sizes {
		l, err := NewLayer(g, in, size, activation, rng, fmt.Sprintf("l%d", i))
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		m.layers = append(m.layers, l)
		in = size
	}
	return m, nil
}

// AddLayer appends l. Its input size must match the current output size.
func (m *MLP) AddLayer(l *Layer) error {
	if n := len(m.layers); n > 0 && m.layers[n-1].OutFeatures() != l.InFeatures() {
		return fmt.Errorf("add layer with %d inputs after %d outputs: %w", l.InFeatures(), m.layers[n-1].OutFeatures(), ErrInputSize)
	}
	m.layers = append(m.layers, l)
	return nil
}

// Layers returns the layers in order.
func (m *MLP) Layers() []*Layer { return m.layers }

// Forward runs inputs through every layer.
func (m *MLP) Forward(inputs []autodiff.Value) ([]autodiff.Value, error) {
	x := inputs
	for i, l := range m.layers {
		out, err := l.Forward(x)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		x = out
	}
	return x, nil
}

// Parameters returns the parameters of every layer in order.
func (m *MLP) Parameters() []autodiff.Value {
	var params []autodiff.Value
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}
