package net

import "fmt"

// sort returns vertex indices in topological order (Kahn's algorithm).
// Ties resolve in insertion order.
func (n *Net) sort() ([]int, error) {
	indegree := make([]int, len(n.vertices))
	outgoing := make([][]int, len(n.vertices))

	for i, v := range n.vertices {
		for _, src := range v.sources {
			if src.Kind != SourceNode {
				continue
			}
			from, ok := n.index[src.Node]
			if !ok {
				return nil, fmt.Errorf("%w: %s feeds %s", ErrUnknownNode, src.Node, v.id)
			}
			outgoing[from] = append(outgoing[from], i)
			indegree[i]++
		}
	}

	queue := make([]int, 0, len(n.vertices))
	for i, d := range indegree {
		if d == 0 {
			queue = append(queue, i)
		}
	}

	order := make([]int, 0, len(n.vertices))
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]

		order = append(order, i)
		for _, to := range outgoing[i] {
			indegree[to]--
			if indegree[to] == 0 {
				queue = append(queue, to)
			}
		}
	}

	if len(order) != len(n.vertices) {
		return nil, ErrCycle
	}
	return order, nil
}
