// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, ForEachNeighbor).
// Determinism:
//   - Neighbors() returns IDs sorted ascending.

package core

import "slices"

// Neighbors returns the IDs adjacent to id, sorted ascending.
//
// Errors:
//   - ErrVertexNotFound: if id does not exist.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) Neighbors(id int) ([]int, error) {
	g.mu.RLock()
	v, ok := g.vertices[id]
	if !ok {
		g.mu.RUnlock()
		return nil, ErrVertexNotFound
	}
	out := make([]int, 0, len(v.nbr))
	for n := range v.nbr {
		out = append(out, n)
	}
	g.mu.RUnlock()

	slices.Sort(out)

	return out, nil
}

// ForEachNeighbor calls fn for every neighbour of id, in unspecified order,
// while holding the read lock. fn must not mutate g. Iteration stops early
// when fn returns false.
//
// Errors:
//   - ErrVertexNotFound: if id does not exist.
//
// Complexity: O(d).
func (g *Graph) ForEachNeighbor(id int, fn func(nbr int) bool) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	for n := range v.nbr {
		if !fn(n) {
			break
		}
	}

	return nil
}
