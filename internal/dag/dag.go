// Package dag provides a directed-graph container with deterministic
// topological sorting, used to order schema migrations by their declared
// dependencies.
//
// Determinism matters here: the migration runner must apply outstanding
// migrations in the same order on every run, so Graph tracks vertex
// insertion order and Tsort derives its result from that order rather than
// from map iteration.
package dag

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Graph is a directed graph of vertices of type V.
//
// Every vertex referenced as a successor is promoted to a first-class
// vertex with an empty successor set. Without this normalization a sink
// would only materialize during the first sort, making the first sort
// order differ from subsequent ones.
type Graph[V comparable] struct {
	successors map[V][]V
	order      []V // vertices in insertion order
}

// New creates an empty graph.
func New[V comparable]() *Graph[V] {
	return &Graph[V]{successors: make(map[V][]V)}
}

// Add inserts the edge vertex → successor. Both endpoints become vertices;
// the successor gains an empty successor set if it had none.
// Duplicate edges are ignored.
func (g *Graph[V]) Add(vertex, successor V) {
	g.ensure(vertex)
	g.ensure(successor)
	for _, s := range g.successors[vertex] {
		if s == successor {
			return
		}
	}
	g.successors[vertex] = append(g.successors[vertex], successor)
}

// AddVertex inserts an isolated vertex with no successors.
func (g *Graph[V]) AddVertex(vertex V) {
	g.ensure(vertex)
}

// ensure registers a vertex, preserving first-insertion order.
func (g *Graph[V]) ensure(vertex V) {
	if _, ok := g.successors[vertex]; ok {
		return
	}
	g.successors[vertex] = nil
	g.order = append(g.order, vertex)
}

// Len returns the number of vertices.
func (g *Graph[V]) Len() int {
	return len(g.order)
}

// Successors returns the successor set of a vertex in edge-insertion order.
func (g *Graph[V]) Successors(vertex V) []V {
	return g.successors[vertex]
}

// Vertices returns a restartable sequence of all vertices in insertion order.
func (g *Graph[V]) Vertices() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range g.order {
			if !yield(v) {
				return
			}
		}
	}
}

// Edges returns a restartable sequence of (vertex, successor) pairs,
// ordered by vertex insertion then edge insertion.
func (g *Graph[V]) Edges() iter.Seq2[V, V] {
	return func(yield func(V, V) bool) {
		for _, v := range g.order {
			for _, s := range g.successors[v] {
				if !yield(v, s) {
					return
				}
			}
		}
	}
}

// FromMapping builds a string graph from loosely typed mapping data, as
// produced by a YAML or JSON decoder. Keys are vertices; values are their
// successor collections.
//
// Accepted successor collections: nil, []string, []any of strings, and
// set-shaped maps (map[string]bool / map[string]struct{}). Anything else
// returns a *ShapeError rather than silently coercing a scalar into a
// one-element set.
//
// Go maps iterate in random order, so vertices are inserted in sorted key
// order to keep bulk-constructed graphs deterministic.
func FromMapping(data any) (*Graph[string], error) {
	g := New[string]()

	switch m := data.(type) {
	case map[string][]string:
		for _, vertex := range slices.Sorted(maps.Keys(m)) {
			g.AddVertex(vertex)
			for _, s := range m[vertex] {
				g.Add(vertex, s)
			}
		}
	case map[string]any:
		for _, vertex := range slices.Sorted(maps.Keys(m)) {
			value := m[vertex]
			g.AddVertex(vertex)
			successors, err := successorList(vertex, value)
			if err != nil {
				return nil, err
			}
			for _, s := range successors {
				g.Add(vertex, s)
			}
		}
	default:
		return nil, &ShapeError{Message: fmt.Sprintf("graph data must be a mapping, not %T", data)}
	}

	return g, nil
}

// successorList validates and flattens one successor collection.
func successorList(vertex string, value any) ([]string, error) {
	switch vv := value.(type) {
	case nil:
		return nil, nil
	case []string:
		return vv, nil
	case []any:
		out := make([]string, 0, len(vv))
		for _, item := range vv {
			s, ok := item.(string)
			if !ok {
				return nil, &ShapeError{
					Vertex:  vertex,
					Message: fmt.Sprintf("successor must be a string, not %T", item),
				}
			}
			out = append(out, s)
		}
		return out, nil
	case map[string]struct{}:
		return slices.Sorted(maps.Keys(vv)), nil
	case map[string]bool:
		return slices.Sorted(maps.Keys(vv)), nil
	default:
		return nil, &ShapeError{
			Vertex:  vertex,
			Message: fmt.Sprintf("successors must be a sequence or set, not %T", value),
		}
	}
}
