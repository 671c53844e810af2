// Package lp solves the LP relaxation built by package model.
//
// The search engine only sees the Solver interface:
//
//	Solve(ctx, m, overrides) (Solution, error)
//
// where overrides are per-call variable bounds (x_k ≥ 1 / x_k ≤ 0). The model is
// never mutated, so a solve leaves no trace on it and any number of goroutines
// may solve the same model with different overrides.
//
// Error classes:
//
//	ErrInfeasible    - the relaxation has no solution under the overrides;
//	                   a routine pruning signal, not a failure.
//	ErrSolverFailure - anything else the backend reports; the search aborts.
//
// Simplex is the shipped backend, a thin adapter over gonum's
// optimize/convex/lp.Simplex. Before calling gonum it rewrites the bounded
// problem into standard form (min c·y, A·y = b, y ≥ 0) with b ≥ 0, so that the
// slack columns always form a feasible starting basis.
package lp
