// Package builder provides deterministic, functional-options style generators
// for core.Graph topologies. They feed tests, benchmarks and the
// `lpclique generate` command with instances whose maximum clique is known:
//
//	Complete(n)             ω = n
//	Cycle(n)                ω = 3 if n == 3, else 2
//	Path(n)                 ω = 2
//	Star(n)                 ω = 2
//	Wheel(n)                ω = 4 if n == 4, else 3
//	CompleteBipartite(a,b)  ω = 2
//	RandomSparse(n,p)       ω unknown (Erdős–Rényi G(n,p))
//	Disjoint(cons...)       ω = max over blocks
//
// The package offers:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds RNG and the first vertex ID (offset).
//   - Sentinel errors: ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed.
//
// Guarantees:
//
//   - Vertex IDs are offset, offset+1, ... in constructor index order
//     (offset defaults to 1, matching the 1-based text format).
//   - Edges are emitted in a documented, stable order; with a fixed seed
//     RandomSparse is reproducible.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     constructors themselves return sentinel errors and never panic.
package builder
