// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides feed-forward networks built from scalar neurons.
//
// Example:
//
//	g := autodiff.NewGraph()
//	rng := rand.New(rand.NewPCG(1, 2))
//	mlp, err := nn.NewMLP(g, 3, []int{4, 4, 1}, nn.Tanh, rng)
//	if err != nil {
//	    return err
//	}
//	out, err := mlp.Forward(nn.Inputs(g, []float64{2, 3, -1}))
package nn

import (
	"math/rand/v2"

	"github.com/born-ml/scalargrad/autodiff"
	"github.com/born-ml/scalargrad/internal/autodiff/ops"
	"github.com/born-ml/scalargrad/internal/nn"
)

// Module is the common interface of all network components.
type Module = nn.Module

// Neuron computes activation(w·x + b).
type Neuron = nn.Neuron

// Layer is a row of neurons sharing inputs.
type Layer = nn.Layer

// MLP is a multi-layer perceptron.
type MLP = nn.MLP

// Activations.
const (
	Identity = nn.Identity
	Tanh     = ops.Tanh
	ReLU     = ops.ReLU
)

// Errors.
var (
	ErrInputSize  = nn.ErrInputSize
	ErrActivation = nn.ErrActivation
	ErrShape      = nn.ErrShape
)

// NewNeuron creates a neuron with in weights.
func NewNeuron(g *autodiff.Graph, in int, activation autodiff.Op, rng *rand.Rand, name string) (*Neuron, error) {
	return nn.NewNeuron(g, in, activation, rng, name)
}

// NewLayer creates a layer of out neurons with in inputs each.
func NewLayer(g *autodiff.Graph, in, out int, activation autodiff.Op, rng *rand.Rand, name string) (*Layer, error) {
	return nn.NewLayer(g, in, out, activation, rng, name)
}

// NewMLP creates an MLP with one layer per entry of sizes.
func NewMLP(g *autodiff.Graph, in int, sizes []int, activation autodiff.Op, rng *rand.Rand) (*MLP, error) {
	return nn.NewMLP(g, in, sizes, activation, rng)
}

// Inputs wraps raw numbers as constant values in g.
func Inputs(g *autodiff.Graph, xs []float64) []autodiff.Value {
	return nn.Inputs(g, xs)
}

// MSELoss returns the mean squared error between targets and preds.
func MSELoss(targets []float64, preds []autodiff.Value) (autodiff.Value, error) {
	return nn.MSELoss(targets, preds)
}

// ZeroGrad resets the gradient of every parameter of m.
func ZeroGrad(m Module) {
	nn.ZeroGrad(m)
}
