// Package bnb is the exact maximum-clique search: a depth-first
// branch-and-bound over the LP relaxation built by package model.
//
// At every search node the engine:
//
//  1. Solves the relaxation under the node's overrides. Infeasible → prune.
//  2. Prunes when the incumbent is strictly larger than floor(objective).
//  3. Scans variables in ascending vertex-ID order for the first fractional
//     value, collecting the variables sitting at 1 before it.
//  4. If none is fractional the point is a clique: it replaces the incumbent
//     when strictly larger.
//  5. Otherwise branches on that variable: x_k ≥ 1 first, then x_k ≤ 0.
//
// Every search node owns an immutable override slice; a child gets a copy with
// one more override. Dropping the frame is the rollback, so siblings and
// parallel branches never observe each other's bounds.
//
// Cancellation: the context is checked at every node. Run then returns
// ErrInterrupted (wrapping ctx.Err()) together with the best clique found so
// far; Best may be called at any time from other goroutines.
//
// Parallelism: WithWorkers(n > 1) lets include-branches run on an
// errgroup-limited pool. When no slot is free the branch runs inline, so the
// search never blocks on the pool.
package bnb
