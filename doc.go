// Package lpclique finds a maximum clique of an undirected graph exactly.
//
// What is inside?
//
//	core/      - Graph with set-based adjacency, safe for concurrent loading
//	builder/   - deterministic topologies (complete, cycle, wheel, G(n,p), ...)
//	coloring/  - greedy colouring; each colour class is an independent set
//	model/     - LP relaxation: x_v ∈ [0,1], non-edge rows, class rows, max Σx
//	lp/        - Solver interface + pure-Go simplex backend (gonum)
//	bnb/       - depth-first branch-and-bound on the relaxation
//	dimacs/    - "e u v" text reader / writer
//
// A clique contains at most one vertex of any independent set, so every colour
// class of size > 1 yields a valid cut Σ_{v ∈ class} x_v ≤ 1 that is much
// stronger than the pairwise rows alone. The relaxation optimum, floored, is
// an upper bound on the clique number of every subproblem.
//
// Quick start:
//
//	g, _, err := dimacs.ReadFile("brock200_2.col")
//	if err != nil { ... }
//	res, err := lpclique.FindMaxClique(ctx, g, lpclique.WithGreedySeed())
//	if errors.Is(err, bnb.ErrInterrupted) {
//	    // res.Clique is the best clique found before ctx was done
//	}
//
// Quick ASCII example:
//
//	    1───2
//	    │ ╲ │
//	    4───3     ω = 3, e.g. {1,2,3}
//
// The cmd/lpclique binary wraps all of this with a time limit, YAML/env
// configuration, structured logs and an optional Prometheus endpoint.
package lpclique
