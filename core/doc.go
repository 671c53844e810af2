// Package core provides the undirected, unweighted Graph that every other
// lpclique package reads from.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Vertices are positive integers, created on first mention (AddVertex or
//     CreateEdge) and never removed.
//   - Each vertex keeps its neighbours in a genuine set (map[int]struct{}), so
//     Adjacent(u,v) is O(1) amortized and duplicate edges collapse.
//   - Edges are symmetric: CreateEdge(u,v) registers v in N(u) and u in N(v).
//   - Self-loops are rejected (a vertex is trivially "adjacent" to itself for
//     clique purposes, so a loop carries no information).
//
// Why a dedicated type instead of a general-purpose multigraph?
//
//   - The clique model builder asks Adjacent(u,v) for every unordered pair,
//     which is O(V²) queries; anything slower than a hash lookup dominates.
//   - Deterministic iteration: Vertices() is sorted ascending, Order() keeps the
//     first-appearance order of the input file, Neighbors() is sorted.
//
// Concurrency:
//
//	A single sync.RWMutex guards the vertex catalog and the neighbour sets.
//	Mutations take the write lock, queries take the read lock, so a graph can be
//	filled by several goroutines and then shared read-only by the solver.
//
// Core Methods:
//
//	New() *Graph                         // O(1)
//	AddVertex(id int) error              // O(1)
//	CreateEdge(u, v int) error           // O(1) amortized, idempotent
//	HasVertex(id int) bool               // O(1)
//	Adjacent(u, v int) bool              // O(1)
//	Degree(id int) (int, error)          // O(1)
//	Neighbors(id int) ([]int, error)     // O(d log d), sorted
//	Vertices() []int                     // O(V log V), sorted
//	Order() []int                        // O(V), first appearance
//	VertexCount(), EdgeCount() int       // O(1)
//	IsClique(ids []int) bool             // O(k²)
//
// Errors:
//
//	ErrBadVertexID    - vertex ID is not positive.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrLoopNotAllowed - CreateEdge(v, v).
package core
