package ops

import (
	"fmt"
	"math"
)

func div(a, b float64) (float64, error) {
	if b == 0 {
		return 0, fmt.Errorf("%s: %g / 0: %w", Div, a, ErrDomain)
	}
	return a / b, nil
}

// divGrad returns [1/b, -a/b²].
func divGrad(a, b float64) ([]float64, error) {
	if b == 0 {
		return nil, fmt.Errorf("%s: gradient at b = 0: %w", Div, ErrDomain)
	}
	return []float64{1 / b, -a / (b * b)}, nil
}

// pow rejects results outside the reals (negative base with a fractional
// exponent), the pole at a zero base with a negative exponent, and overflow
// of finite operands to Inf.
func pow(a, b float64) (float64, error) {
	if a == 0 && b < 0 {
		return 0, fmt.Errorf("%s: 0 ^ %g: %w", Pow, b, ErrDomain)
	}
	r := math.Pow(a, b)
	if math.IsNaN(r) && !math.IsNaN(a) && !math.IsNaN(b) {
		return 0, fmt.Errorf("%s: %g ^ %g is not real: %w", Pow, a, b, ErrDomain)
	}
	if math.IsInf(r, 0) && !math.IsInf(a, 0) && !math.IsInf(b, 0) {
		return 0, fmt.Errorf("%s: %g ^ %g overflows: %w", Pow, a, b, ErrDomain)
	}
	return r, nil
}

// powGrad returns [b*a^(b-1), ln(a)*a^b]. The exponent term is NaN for a <= 0;
// callers whose exponent is a constant never propagate it.
func powGrad(a, b float64) []float64 {
	return []float64{
		b * math.Pow(a, b-1),
		math.Log(a) * math.Pow(a, b),
	}
}
