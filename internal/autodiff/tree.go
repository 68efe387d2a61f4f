package autodiff

import (
	"fmt"
	"io"
	"strings"
)

// WriteTree prints v and, indented beneath it, its operands recursively.
// Shared subexpressions are printed once per path. When showGrad is set,
// gradients of participating nodes are included.
//
//	Value(49) mul
//	 |Value(7) add
//	 | |a(3)
//	 | |b(4)
//	 |Value(7) add
//	 ...
func (v Value) WriteTree(w io.Writer, showGrad bool) error {
	v.node() // validate before writing anything
	return v.writeTree(w, 0, showGrad)
}

func (v Value) writeTree(w io.Writer, depth int, showGrad bool) error {
	n := v.node()

	var b strings.Builder
	b.WriteString(strings.Repeat(" |", depth))
	b.WriteString(v.String())
	if showGrad && n.requiresGrad {
		fmt.Fprintf(&b, " grad=%.3f", n.grad)
	}
	if n.op.Valid() {
		b.WriteString(" ")
		b.WriteString(n.op.String())
	}
	b.WriteString("\n")
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}

	for _, operand := range v.Operands() {
		if err := operand.writeTree(w, depth+1, showGrad); err != nil {
			return err
		}
	}
	return nil
}
