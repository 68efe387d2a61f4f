package optim_test

import (
	"math"
	"testing"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/optim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSGD_SimpleUpdate tests SGD without momentum.
func TestSGD_SimpleUpdate(t *testing.T) {
	g := autodiff.NewGraph()
	x := g.NewValue(2)
	x.SetGrad(1)

	opt := optim.NewSGD([]autodiff.Value{x}, optim.SGDConfig{LR: 0.1})
	opt.Step()

	// x_new = 2.0 - 0.1 * 1.0
	assert.InDelta(t, 1.9, x.Data(), 1e-12)
	assert.Equal(t, 0.1, opt.LR())
}

// TestSGD_WithMomentum tests the velocity update over two steps.
func TestSGD_WithMomentum(t *testing.T) {
	g := autodiff.NewGraph()
	x := g.NewValue(1)

	opt := optim.NewSGD([]autodiff.Value{x}, optim.SGDConfig{LR: 0.1, Momentum: 0.9})

	x.SetGrad(1)
	opt.Step() // v = 1, x = 1 - 0.1
	assert.InDelta(t, 0.9, x.Data(), 1e-12)

	opt.Step() // v = 0.9 + 1, x = 0.9 - 0.19
	assert.InDelta(t, 0.71, x.Data(), 1e-12)
}

func TestSGD_DefaultLR(t *testing.T) {
	opt := optim.NewSGD(nil, optim.SGDConfig{})
	assert.Equal(t, 0.01, opt.LR())

	opt.SetLR(0.5)
	assert.Equal(t, 0.5, opt.LR())
}

func TestZeroGrad(t *testing.T) {
	g := autodiff.NewGraph()
	a := g.NewValue(1)
	b := g.NewValue(2)
	y := a.Mul(b)
	y.Backward()

	opt := optim.NewSGD([]autodiff.Value{a, b}, optim.SGDConfig{})
	opt.ZeroGrad()

	assert.Equal(t, 0.0, a.Grad())
	assert.Equal(t, 0.0, b.Grad())
	assert.Equal(t, 1.0, y.Grad(), "non-parameters are untouched")
}

// TestAdam_FirstStep checks that the first bias-corrected step moves each
// parameter by about lr against the sign of its gradient.
func TestAdam_FirstStep(t *testing.T) {
	g := autodiff.NewGraph()
	x := g.NewValue(1)
	y := g.NewValue(1)
	x.SetGrad(4)
	y.SetGrad(-0.01)

	opt := optim.NewAdam([]autodiff.Value{x, y}, optim.AdamConfig{LR: 0.1})
	opt.Step()

	assert.InDelta(t, 0.9, x.Data(), 1e-6)
	assert.InDelta(t, 1.1, y.Data(), 1e-5)
	assert.Equal(t, 1, opt.Timestep())
}

// TestOptimizers_MinimizeQuadratic runs each optimizer on f(x) = (x - 3)².
func TestOptimizers_MinimizeQuadratic(t *testing.T) {
	tests := []struct {
		name string
		new  func([]autodiff.Value) optim.Optimizer
	}{
		{"sgd", func(p []autodiff.Value) optim.Optimizer {
			return optim.NewSGD(p, optim.SGDConfig{LR: 0.1})
		}},
		{"sgd momentum", func(p []autodiff.Value) optim.Optimizer {
			return optim.NewSGD(p, optim.SGDConfig{LR: 0.05, Momentum: 0.5})
		}},
		{"adam", func(p []autodiff.Value) optim.Optimizer {
			return optim.NewAdam(p, optim.AdamConfig{LR: 0.1})
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := autodiff.NewGraph()
			x := g.NewValue(0)
			opt := tt.new([]autodiff.Value{x})
			mark := g.Checkpoint()

			for range 500 {
				opt.ZeroGrad()
				loss := x.Sub(autodiff.Scalar(3)).Pow(autodiff.Scalar(2))
				loss.Backward()
				opt.Step()
				g.Rollback(mark)
			}

			require.Equal(t, int(mark), g.Len())
			assert.Less(t, math.Abs(x.Data()-3), 5e-2)
		})
	}
}
