package nn

import (
	"fmt"
	"math/rand/v2"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

// newParameter creates a trainable leaf named name, initialized uniformly
// in [-1, 1).
func newParameter(g *autodiff.Graph, name string, rng *rand.Rand) autodiff.Value {
	//nolint:gosec // weight initialization is not security-critical
	return g.NewValue(rng.Float64()*2-1, autodiff.WithLabel(name))
}

// paramName joins a module prefix and a parameter name.
func paramName(prefix, name string, index ...int) string {
	if len(index) > 0 {
		name = fmt.Sprintf("%s%d", name, index[0])
	}
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
