// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides gradient-descent optimizers.
//
// Example:
//
//	optimizer := optim.NewSGD(mlp.Parameters(), optim.SGDConfig{LR: 0.1})
//	for range epochs {
//	    optimizer.ZeroGrad()
//	    loss := computeLoss()
//	    loss.Backward()
//	    optimizer.Step()
//	}
package optim

import (
	"github.com/born-ml/scalargrad/autodiff"
	"github.com/born-ml/scalargrad/internal/optim"
)

// Optimizer is the interface for all optimizers.
type Optimizer = optim.Optimizer

// SGD is Stochastic Gradient Descent with optional momentum.
type SGD = optim.SGD

// SGDConfig configures SGD.
type SGDConfig = optim.SGDConfig

// Adam is the Adam optimizer.
type Adam = optim.Adam

// AdamConfig configures Adam.
type AdamConfig = optim.AdamConfig

// NewSGD creates an SGD optimizer.
func NewSGD(params []autodiff.Value, config SGDConfig) *SGD {
	return optim.NewSGD(params, config)
}

// NewAdam creates an Adam optimizer.
func NewAdam(params []autodiff.Value, config AdamConfig) *Adam {
	return optim.NewAdam(params, config)
}
