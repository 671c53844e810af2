// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted ascending.
//   - Order() returns IDs in first-appearance order.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "slices"

// AddVertex inserts an isolated vertex if missing (idempotent).
//
// Errors:
//   - ErrBadVertexID: if id <= 0.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id int) error {
	if id <= 0 {
		return ErrBadVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(id)

	return nil
}

// HasVertex reports whether id exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// Degree returns the number of distinct neighbours of id.
//
// Errors:
//   - ErrVertexNotFound: if id does not exist.
//
// Complexity: O(1).
func (g *Graph) Degree(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(v.nbr), nil
}

// Vertices returns every vertex ID sorted ascending.
// The returned slice is a fresh copy.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	ids := make([]int, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.mu.RUnlock()

	slices.Sort(ids)

	return ids
}

// Order returns every vertex ID in the order it was first seen by AddVertex or
// CreateEdge. The returned slice is a fresh copy.
// Complexity: O(V).
func (g *Graph) Order() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Clone(g.order)
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}
