// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package autodiff_test

import (
	"errors"
	"fmt"

	"github.com/born-ml/scalargrad/autodiff"
)

func ExampleValue_Backward() {
	g := autodiff.NewGraph()
	a := g.NewValue(3, autodiff.WithLabel("a"))
	b := g.NewValue(4, autodiff.WithLabel("b"))

	c := a.Add(b)
	y := c.Mul(c)
	y.Backward()

	fmt.Println(y.Data(), a.Grad(), b.Grad())
	// Output: 49 14 14
}

func ExampleGraph_Mean() {
	g := autodiff.NewGraph()
	m := g.Mean(g.NewValue(1), g.NewValue(2), g.NewValue(3))
	m.Backward()

	fmt.Println(m.Data(), m.Operands()[0].Grad() == 1.0/3)
	// Output: 2 true
}

func ExampleValue_TryDiv() {
	g := autodiff.NewGraph()
	_, err := g.NewValue(1).TryDiv(autodiff.Scalar(0))

	fmt.Println(errors.Is(err, autodiff.ErrDomain))
	// Output: true
}
