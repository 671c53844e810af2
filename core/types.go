// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph and vertex types, sentinel errors, constructor.
// Policy:
//   - Vertex IDs are positive integers (the text format is 1-based).
//   - Neighbour storage is a set; never a slice.
//   - One RWMutex (mu) guards vertices, order and edgeCount.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadVertexID indicates a vertex ID that is zero or negative.
	ErrBadVertexID = errors.New("core: vertex ID must be positive")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// vertex is a node of the graph: its ID and the set of adjacent IDs.
// Every key of nbr resolves to a vertex of the same Graph.
type vertex struct {
	id  int
	nbr map[int]struct{}
}

// Graph is an undirected simple graph over positive integer vertex IDs.
//
// The zero value is not usable; call New.
type Graph struct {
	mu sync.RWMutex // guards everything below

	vertices  map[int]*vertex // vertex ID → vertex
	order     []int           // IDs in order of first appearance
	edgeCount int             // number of distinct undirected edges
}

// New creates an empty Graph.
// Complexity: O(1)
func New() *Graph {
	return &Graph{
		vertices: make(map[int]*vertex),
	}
}

// ensureVertex returns the vertex for id, creating it if missing.
// Caller must hold g.mu for writing.
func (g *Graph) ensureVertex(id int) *vertex {
	if v, ok := g.vertices[id]; ok {
		return v
	}
	v := &vertex{id: id, nbr: make(map[int]struct{})}
	g.vertices[id] = v
	g.order = append(g.order, id)

	return v
}
