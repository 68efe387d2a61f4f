// Package optim implements gradient-descent optimizers over scalar parameters.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with optional momentum
//   - Adam: Adaptive Moment Estimation
//
// Optimizers read each parameter's accumulated gradient and overwrite its
// data with the updated value.
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.1})
//
//	for epoch := range epochs {
//	    optimizer.ZeroGrad()
//	    loss := computeLoss(model, data)
//	    loss.Backward()
//	    optimizer.Step()
//	}
package optim

import (
	"github.com/born-ml/scalargrad/internal/autodiff"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies one update to every parameter using its current gradient.
	Step()

	// ZeroGrad resets every parameter gradient to 0.
	//
	// This should be called before each backward pass to prevent
	// gradient accumulation from previous iterations.
	ZeroGrad()

	// LR returns the current learning rate.
	LR() float64
}

// base holds the parameter list shared by all optimizers.
type base struct {
	params []autodiff.Value
	lr     float64
}

// ZeroGrad resets the gradient of every parameter.
func (b *base) ZeroGrad() {
	for _, p := range b.params {
		p.ResetGradient()
	}
}

// LR returns the current learning rate.
func (b *base) LR() float64 {
	return b.lr
}

// SetLR updates the learning rate.
func (b *base) SetLR(lr float64) {
	b.lr = lr
}

// Params returns the optimized parameters.
func (b *base) Params() []autodiff.Value {
	return b.params
}
