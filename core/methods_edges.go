// File: methods_edges.go
// Role: Edge creation & adjacency queries: CreateEdge/Adjacent/EdgeCount/IsClique.
// Concurrency:
//   - CreateEdge under mu write lock.
//   - Queries under mu read lock.

package core

// CreateEdge ensures vertices u and v exist and registers each as the other's
// neighbour. Repeating an edge (in either orientation) is a no-op.
//
// Steps:
//  1. Validate IDs (positive) and reject u == v.
//  2. Lock mu; ensure both endpoints.
//  3. If v is already in N(u), return (set semantics).
//  4. Insert v into N(u) and u into N(v); bump edgeCount.
//
// Errors:
//   - ErrBadVertexID: if u <= 0 or v <= 0.
//   - ErrLoopNotAllowed: if u == v.
//
// Complexity: O(1) amortized.
func (g *Graph) CreateEdge(u, v int) error {
	if u <= 0 || v <= 0 {
		return ErrBadVertexID
	}
	if u == v {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	a := g.ensureVertex(u)
	b := g.ensureVertex(v)
	if _, dup := a.nbr[v]; dup {
		return nil
	}
	a.nbr[v] = struct{}{}
	b.nbr[u] = struct{}{}
	g.edgeCount++

	return nil
}

// Adjacent reports whether u and v are joined by an edge.
// Unknown IDs are simply not adjacent to anything.
// Complexity: O(1).
func (g *Graph) Adjacent(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	a, ok := g.vertices[u]
	if !ok {
		return false
	}
	_, ok = a.nbr[v]

	return ok
}

// EdgeCount returns the number of distinct undirected edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// IsClique reports whether ids is a set of existing, pairwise adjacent
// vertices. The empty set and any single existing vertex are cliques.
// Repeated IDs make the set invalid.
//
// Complexity: O(k²) for k = len(ids).
func (g *Graph) IsClique(ids []int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for i, u := range ids {
		a, ok := g.vertices[u]
		if !ok {
			return false
		}
		for _, v := range ids[i+1:] {
			if _, adj := a.nbr[v]; !adj {
				return false // also catches u == v: no loops are stored
			}
		}
	}

	return true
}
