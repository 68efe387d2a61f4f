package autodiff

// Backward computes the gradient of v with respect to every node reachable
// from it and accumulates the results into those nodes' gradients.
//
// Algorithm:
//  1. Seed v's gradient with 1 (dv/dv).
//  2. Mark every participating node reachable from v through operand edges.
//  3. Walk marked nodes from v down to the oldest node. Arena order is a
//     topological order, so each node's gradient is complete before it is
//     propagated: for operand i, operand.grad += local[i] * node.grad.
//
// A node reached through several paths receives the sum of the per-path
// contributions.
//
// Precondition: gradients of the reachable nodes are zero (see
// Graph.ResetGradients). Calling Backward twice without a reset accumulates
// both passes into every node except v. Backward on a value that does not
// participate in gradient is a no-op.
//
// Local gradients are evaluated at the nodes' current data. Changing a leaf
// with SetData between building a graph and calling Backward is undefined;
// Backward panics if the change puts an operand outside its operation's
// domain (e.g. a zero divisor).
func (v Value) Backward() {
	root := v.node()
	if !root.requiresGrad {
		return
	}
	root.grad = 1
	if !root.op.Valid() {
		return
	}

	g := v.g
	reached := g.reachable(v.id)
	var xs []float64
	for id := v.id; id >= 0; id-- {
		if !reached[id] {
			continue
		}
		curr := &g.nodes[id]
		if !curr.op.Valid() {
			continue
		}

		xs = xs[:0]
		for _, oid := range curr.operands {
			xs = append(xs, g.nodes[oid].data)
		}
		local, err := curr.op.Gradient(xs)
		if err != nil {
			// An operand left the domain after Forward, via SetData.
			panic(err)
		}

		for i, oid := range curr.operands {
			operand := &g.nodes[oid]
			if operand.requiresGrad {
				operand.grad += local[i] * curr.grad
			}
		}
	}
}

// reachable marks the participating nodes reachable from root.
// The result is indexed by NodeID up to root.
func (g *Graph) reachable(root NodeID) []bool {
	reached := make([]bool, root+1)
	reached[root] = true
	stack := []NodeID{root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, oid := range g.nodes[id].operands {
			if reached[oid] || !g.nodes[oid].requiresGrad {
				continue
			}
			reached[oid] = true
			stack = append(stack, oid)
		}
	}
	return reached
}
