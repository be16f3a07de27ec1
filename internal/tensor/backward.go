package tensor

import (
	"k8s.io/klog/v2"
)

// Backward runs reverse-mode differentiation from t. The root gradient
// is seeded with ones, then every reachable node is visited exactly
// once in reverse topological order, accumulating local contributions
// into predecessor gradient buffers. Contributions add; they never
// overwrite, so parameters reused across several expressions collect
// the full gradient.
//
// Existing gradients are not reset. Call ZeroGrad (or a Registry
// sweep) between steps when accumulation across calls is not wanted.
func (t *Tensor) Backward() {
	g := t.graph
	root := g.node(t.id)
	if !root.requiresGrad {
		panic("tensor: backward through a tensor that does not require gradients")
	}
	root.grad.Fill(1)

	order := g.topoOrder(t.id)

	// Post-order places predecessors before their consumers, so the
	// reverse walk finishes a node's gradient before pushing it onward.
	// A plain recursive walk would re-enter shared subgraphs through
	// each path and propagate partial gradients.
	for i := len(order) - 1; i >= 0; i-- {
		n := g.node(order[i])
		if n.op == nil || !n.requiresGrad {
			continue
		}

		if klog.V(2).Enabled() {
			klog.Infof("backward %s (%v): grad=%v", n.label, n.op.kind, n.grad)
		}

		contribs := g.localGrads(n)
		for j, pid := range n.preds {
			p := g.node(pid)
			if !p.requiresGrad {
				continue
			}
			if err := p.grad.AddInPlace(contribs[j]); err != nil {
				panic("tensor: " + err.Error())
			}
		}
	}
}

// topoOrder returns the post-order of the subgraph reachable from root:
// every predecessor appears before the nodes that consume it. The
// traversal is iterative with an explicit frame stack, so graph depth
// is bounded by the heap rather than the goroutine stack.
func (g *Graph) topoOrder(root NodeID) []NodeID {
	type frame struct {
		id   NodeID
		next int
	}

	visited := map[NodeID]bool{root: true}
	order := make([]NodeID, 0, 16)
	stack := []frame{{id: root}}

	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		n := g.node(f.id)

		if f.next < len(n.preds) {
			p := n.preds[f.next]
			f.next++
			if !visited[p] {
				visited[p] = true
				stack = append(stack, frame{id: p})
			}
			continue
		}

		order = append(order, f.id)
		stack = stack[:len(stack)-1]
	}

	return order
}
