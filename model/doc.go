// Package model builds the LP relaxation of the maximum clique integer program.
//
// Variables: one x_v ∈ [0,1] per vertex v, indexed densely 0..n-1 by ascending
// vertex ID.
//
// Rows (all coefficients are +1, all senses ≤, all right-hand sides 1):
//
//	NonEdge:        x_u + x_v ≤ 1         for every unordered pair u≠v that is NOT an edge
//	IndependentSet: Σ_{v ∈ class} x_v ≤ 1  for every colour class with |class| > 1
//
// Objective: maximize Σ_v x_v.
//
// The model is immutable once built. Branching decisions are expressed as
// Override values (x_k ≥ 1 / x_k ≤ 0) passed alongside the model to a solver,
// so a search never has to add and later retract rows.
package model
