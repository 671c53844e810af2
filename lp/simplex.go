// File: simplex.go
// Role: gonum-backed Solver.
//
// Standard-form rewrite, for per-variable bounds lo ≤ x ≤ hi:
//  0. Rows with no slack left fix their variables at lo.
//  1. x = lo + y, y ∈ [0, hi-lo]; variables with hi == lo are constants.
//  2. Each row Σ x ≤ 1 becomes Σ_free y ≤ 1 - Σ lo. A negative residual with
//     non-negative coefficients is infeasible; a row whose free widths sum to no
//     more than the residual is redundant and dropped.
//  3. A non-edge row whose endpoints share a colour class is implied by that
//     class's row and dropped.
//  4. Independent-set rows are loaded up front; non-edge rows are added in
//     rounds, only once the current optimum violates them.
//  5. A bound row y ≤ hi-lo is added only for a column that no loaded row
//     already caps at hi-lo.
//  6. A slack per row turns ≤ into =, and the slack identity is the start basis.

package lp

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	golp "gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/lpclique/model"
)

const (
	// DefaultTolerance is the pivoting tolerance handed to gonum.
	DefaultTolerance = 1e-9
)

// backend solves min c·x subject to Ax = b, x ≥ 0.
type backend func(c []float64, a mat.Matrix, b []float64, tol float64, basis []int) (float64, []float64, error)

// Simplex is a stateless Solver on top of gonum's dense simplex.
// Safe for concurrent use.
type Simplex struct {
	tol float64
	lp  backend
}

// NewSimplex returns a Simplex with the given tolerance (DefaultTolerance if 0).
func NewSimplex(tol float64) (*Simplex, error) {
	if tol == 0 {
		tol = DefaultTolerance
	}
	if tol < 0 || math.IsNaN(tol) {
		return nil, ErrBadTolerance
	}
	return &Simplex{tol: tol, lp: golp.Simplex}, nil
}

// Tolerance implements Solver.
func (s *Simplex) Tolerance() float64 { return s.tol }

// row is a reduced constraint Σ y[cols] ≤ rhs over free columns.
type row struct {
	cols []int
	rhs  float64
}

// Solve implements Solver.
//
// ctx is honoured inside a pivot run as well as between rounds: when ctx is
// done Solve returns ctx.Err() at once and the abandoned gonum call finishes
// in the background with its result discarded.
//
// Errors:
//   - ctx.Err() if ctx is done before the optimum is known.
//   - ErrInfeasible if the bounds conflict or a row cannot be met.
//   - ErrSolverFailure wrapping a malformed override or the gonum error.
func (s *Simplex) Solve(ctx context.Context, m *model.Model, ov []model.Override) (Solution, error) {
	if err := ctx.Err(); err != nil {
		return Solution{}, err
	}

	lo, hi, err := m.Bounds(ov)
	if err != nil {
		if errors.Is(err, model.ErrEmptyDomain) {
			return Solution{}, ErrInfeasible
		}
		return Solution{}, fmt.Errorf("%w: %w", ErrSolverFailure, err)
	}

	// A row whose residual is already zero pins all of its variables at
	// their lower bounds. The residual depends on lo only, so one pass is enough.
	class := make([]int, m.NumVars()) // var → index of its independent-set row, -1 if none
	for i := range class {
		class[i] = -1
	}
	for i, r := range m.Rows() {
		rhs := r.RHS
		for _, v := range r.Vars {
			rhs -= lo[v]
			if r.Kind == model.IndependentSet {
				class[v] = i
			}
		}
		if rhs < -s.tol {
			return Solution{}, ErrInfeasible
		}
		if rhs <= s.tol {
			for _, v := range r.Vars {
				hi[v] = lo[v]
			}
		}
	}

	n := m.NumVars()
	col := make([]int, n) // model var → free column, -1 if fixed
	var free []int        // free column → model var
	var base float64      // Σ lo
	for v := 0; v < n; v++ {
		base += lo[v]
		if hi[v]-lo[v] <= s.tol {
			col[v] = -1
			continue
		}
		col[v] = len(free)
		free = append(free, v)
	}

	var active, pending []row
	for _, r := range m.Rows() {
		if r.Kind == model.NonEdge && class[r.Vars[0]] >= 0 && class[r.Vars[0]] == class[r.Vars[1]] {
			continue
		}
		rhs := r.RHS
		var width float64
		var cols []int
		for _, v := range r.Vars {
			rhs -= lo[v]
			if c := col[v]; c >= 0 {
				cols = append(cols, c)
				width += hi[v] - lo[v]
			}
		}
		if len(cols) == 0 || width <= rhs+s.tol {
			continue
		}
		red := row{cols: cols, rhs: math.Max(rhs, 0)}
		if r.Kind == model.NonEdge {
			pending = append(pending, red)
		} else {
			active = append(active, red)
		}
	}

	values := make([]float64, n)
	copy(values, lo)
	if len(free) == 0 {
		return Solution{Objective: base, Values: values}, nil
	}

	width := make([]float64, len(free))
	for c, v := range free {
		width[c] = hi[v] - lo[v]
	}
	y := make([]float64, len(free))
	for {
		if err := ctx.Err(); err != nil {
			return Solution{}, err
		}

		optF, err := s.solveRound(ctx, active, width, y)
		if err != nil {
			return Solution{}, err
		}

		// Move every violated pending row into the active set.
		kept := pending[:0]
		before := len(active)
		for _, r := range pending {
			var sum float64
			for _, c := range r.cols {
				sum += y[c]
			}
			if sum > r.rhs+s.tol {
				active = append(active, r)
			} else {
				kept = append(kept, r)
			}
		}
		pending = kept
		if len(active) == before {
			for c, v := range free {
				values[v] = lo[v] + y[c]
			}
			return Solution{Objective: base - optF, Values: values}, nil
		}
	}
}

// solveRound maximises Σ y over rows plus the bound rows they need, writing
// the optimum into y. It returns gonum's objective value, -Σ y.
func (s *Simplex) solveRound(ctx context.Context, rows []row, width, y []float64) (float64, error) {
	nf := len(width)
	capped := make([]bool, nf)
	for _, r := range rows {
		for _, c := range r.cols {
			if r.rhs <= width[c]+s.tol {
				capped[c] = true
			}
		}
	}
	bounds := rows[:len(rows):len(rows)]
	for c := range nf {
		if !capped[c] {
			bounds = append(bounds, row{cols: []int{c}, rhs: width[c]})
		}
	}

	nr := len(bounds)
	a := mat.NewDense(nr, nf+nr, nil)
	b := make([]float64, nr)
	basis := make([]int, nr)
	for i, r := range bounds {
		for _, c := range r.cols {
			a.Set(i, c, 1)
		}
		a.Set(i, nf+i, 1)
		b[i] = r.rhs
		basis[i] = nf + i
	}
	c := make([]float64, nf+nr)
	for j := range nf {
		c[j] = -1
	}

	optF, optX, err := s.simplex(ctx, c, a, b, basis)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return 0, err
		}
		if errors.Is(err, golp.ErrInfeasible) {
			return 0, ErrInfeasible
		}
		return 0, fmt.Errorf("%w: simplex %dx%d: %w", ErrSolverFailure, nr, nf+nr, err)
	}
	for j := range nf {
		y[j] = clamp(optX[j], 0, width[j])
	}
	return optF, nil
}

// simplex runs the backend on its own goroutine so that ctx can interrupt a
// long pivot sequence. The result channel is buffered; an abandoned run
// completes and exits without a reader.
func (s *Simplex) simplex(ctx context.Context, c []float64, a mat.Matrix, b []float64, basis []int) (float64, []float64, error) {
	type result struct {
		optF float64
		optX []float64
		err  error
	}
	done := make(chan result, 1)
	go func() {
		optF, optX, err := s.lp(c, a, b, s.tol, basis)
		done <- result{optF: optF, optX: optX, err: err}
	}()

	select {
	case <-ctx.Done():
		return 0, nil, ctx.Err()
	case r := <-done:
		return r.optF, r.optX, r.err
	}
}

func clamp(x, lo, hi float64) float64 {
	return math.Min(math.Max(x, lo), hi)
}
