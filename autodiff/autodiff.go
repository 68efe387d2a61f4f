// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides scalar reverse-mode automatic differentiation.
//
// Arithmetic on values builds a computation graph as a side effect; Backward
// on an output value fills in the gradient of that output with respect to
// every value it depends on.
//
// Example:
//
//	import "github.com/born-ml/scalargrad/autodiff"
//
//	func main() {
//	    g := autodiff.NewGraph()
//	    x := g.NewValue(0.5, autodiff.WithLabel("x"))
//
//	    y := x.Mul(autodiff.Scalar(2)).Add(autodiff.Scalar(1)).Tanh()
//	    y.Backward()
//
//	    fmt.Printf("%.5f %.5f\n", y.Data(), x.Grad()) // 0.96403 0.14130
//	}
//
// Raw numbers passed as Scalar become constants that never receive gradient.
// Gradients accumulate: reset them (Graph.ResetGradients, Value.ResetGradient)
// before running another backward pass over the same nodes.
package autodiff

import (
	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/autodiff/ops"
)

// Graph is an arena of computation nodes.
type Graph = autodiff.Graph

// Value is a handle to a node in a Graph.
type Value = autodiff.Value

// Operand is either a Value or a Scalar.
type Operand = autodiff.Operand

// Scalar is a raw number operand, wrapped as a constant.
type Scalar = autodiff.Scalar

// NodeID is the stable index of a node within its graph.
type NodeID = autodiff.NodeID

// Mark is a graph position returned by Graph.Checkpoint.
type Mark = autodiff.Mark

// Option configures a leaf created by Graph.NewValue.
type Option = autodiff.Option

// Op identifies a differentiable scalar operation.
type Op = ops.Op

// Operations accepted by Graph.Apply.
const (
	Add  = ops.Add
	Sub  = ops.Sub
	Mul  = ops.Mul
	Div  = ops.Div
	Pow  = ops.Pow
	Exp  = ops.Exp
	ReLU = ops.ReLU
	Tanh = ops.Tanh
	Mean = ops.Mean
)

// Errors.
var (
	ErrDomain       = ops.ErrDomain
	ErrArity        = ops.ErrArity
	ErrInvalidValue = autodiff.ErrInvalidValue
	ErrForeignValue = autodiff.ErrForeignValue
	ErrStaleValue   = autodiff.ErrStaleValue
	ErrNotLeaf      = autodiff.ErrNotLeaf
)

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return autodiff.NewGraph()
}

// WithLabel sets a diagnostic name.
func WithLabel(label string) Option {
	return autodiff.WithLabel(label)
}

// WithoutGrad marks a leaf as a constant.
func WithoutGrad() Option {
	return autodiff.WithoutGrad()
}
