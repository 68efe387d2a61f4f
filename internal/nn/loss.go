package nn

import (
	"fmt"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

// MSELoss returns mean((targets[i] - preds[i])²) as a value in the graph of
// preds.
func MSELoss(targets []float64, preds []autodiff.Value) (autodiff.Value, error) {
	if len(targets) != len(preds) {
		return autodiff.Value{}, fmt.Errorf("mse: %d targets, %d predictions: %w", len(targets), len(preds), ErrInputSize)
	}
	if len(preds) == 0 {
		return autodiff.Value{}, fmt.Errorf("mse: no predictions: %w", ErrInputSize)
	}

	g := preds[0].Graph()
	terms := make([]autodiff.Operand, len(preds))
	for i, p := range preds {
		terms[i] = g.Constant(targets[i]).Sub(p).Pow(autodiff.Scalar(2))
	}
	return g.Mean(terms...), nil
}
