package ops

import "math"

func exp(a float64) float64 { return math.Exp(a) }

func relu(a float64) float64 {
	if a <= 0 {
		return 0
	}
	return a
}

// reluGrad treats the kink at 0 as flat.
func reluGrad(a float64) float64 {
	if a <= 0 {
		return 0
	}
	return 1
}

func tanh(a float64) float64 { return math.Tanh(a) }

func tanhGrad(a float64) float64 {
	t := math.Tanh(a)
	return 1 - t*t
}

func mean(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += v
	}
	return sum / float64(len(x))
}

func meanGrad(n int) []float64 {
	g := make([]float64, n)
	for i := range g {
		g[i] = 1 / float64(n)
	}
	return g
}
