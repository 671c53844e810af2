// Package coloring computes a greedy proper vertex colouring of a core.Graph
// and exposes its colour classes as independent sets.
//
// Algorithm (first-fit, largest-degree-first):
//
//  1. Order vertices by degree descending; ties by vertex ID ascending.
//  2. For each vertex in that order, collect the colours already held by its
//     neighbours and assign the smallest colour k ≥ 1 not among them.
//  3. A new class is opened whenever k exceeds the current maximum.
//
// The colouring is valid (no edge joins two vertices of the same colour) but not
// necessarily minimum. Each class of size > 1 becomes a cutting plane
// Σ_{v∈class} x_v ≤ 1 in the clique relaxation; singletons carry no information
// and are skipped by the model builder.
//
// Complexity:
//   - Time O(V log V + E), Space O(V).
package coloring
