// File: solver.go
// Role: Solver contract, Solution, sentinel errors.

package lp

import (
	"context"
	"errors"

	"github.com/katalvlaran/lpclique/model"
)

var (
	// ErrInfeasible reports that no point satisfies the model and the overrides.
	ErrInfeasible = errors.New("lp: relaxation infeasible")

	// ErrSolverFailure wraps any backend error other than infeasibility.
	ErrSolverFailure = errors.New("lp: solver failure")

	// ErrBadTolerance is returned by NewSimplex for a non-positive tolerance.
	ErrBadTolerance = errors.New("lp: tolerance must be positive")
)

// Solution is an optimal point of the relaxation.
type Solution struct {
	Objective float64   // Σ x_v at the optimum
	Values    []float64 // x_v indexed by model variable
}

// Solver computes the optimum of the relaxation of m under overrides ov.
//
// Implementations must not retain ov or mutate m. Tolerance returns the
// numeric tolerance of the backend; callers use it as the default integrality
// epsilon.
type Solver interface {
	Solve(ctx context.Context, m *model.Model, ov []model.Override) (Solution, error)
	Tolerance() float64
}
