package dag

// mark is the DFS visit state of a vertex.
type mark int

const (
	unvisited mark = iota
	inProgress
	done
)

// Tsort returns a topological ordering of the graph's vertices.
//
// The algorithm is a depth-first visit with three-coloring: entering a
// vertex marks it in-progress, leaving marks it done and prepends it to the
// result. Reaching an in-progress vertex means a back edge exists, and the
// sort fails with *CycleError without returning a partial order.
//
// Multiple valid topological orders usually exist; this implementation
// picks the reverse-postorder induced by visiting unmarked vertices from
// the last-inserted to the first. The result is therefore deterministic
// for a fixed edge-insertion sequence. O(V+E).
func (g *Graph[V]) Tsort() ([]V, error) {
	marks := make(map[V]mark, len(g.order))
	sorted := make([]V, 0, len(g.order))

	var visit func(V) error
	visit = func(v V) error {
		switch marks[v] {
		case inProgress:
			return &CycleError{}
		case done:
			return nil
		}
		marks[v] = inProgress
		for _, s := range g.successors[v] {
			if err := visit(s); err != nil {
				return err
			}
		}
		marks[v] = done
		sorted = append(sorted, v)
		return nil
	}

	// Pop unmarked vertices from the end of the insertion order.
	for i := len(g.order) - 1; i >= 0; i-- {
		v := g.order[i]
		if marks[v] == unvisited {
			if err := visit(v); err != nil {
				return nil, err
			}
		}
	}

	// visit appended in postorder; a topological order is its reverse.
	for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
		sorted[i], sorted[j] = sorted[j], sorted[i]
	}
	return sorted, nil
}
