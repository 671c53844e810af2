// File: engine.go
// Role: Engine construction, Run, and the recursive node procedure.

package bnb

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lpclique/lp"
	"github.com/katalvlaran/lpclique/model"
)

// Engine searches one model for a maximum clique.
//
// An Engine may be Run several times; each Run starts from the initial
// clique again. Runs must not overlap: a Run started while another is in
// progress fails with ErrRunning.
type Engine struct {
	m    *model.Model
	s    lp.Solver
	opts Options
	eps  float64
	seed []int // validated InitialClique, vertex IDs

	inc       incumbent
	rootBound atomic.Int64

	// counters, see Stats
	nodes, solves, prunedInf, prunedBound atomic.Int64
	leaves, updates, maxDepth             atomic.Int64

	group   *errgroup.Group // nil in sequential mode
	running atomic.Bool
}

// New validates its inputs and returns a ready Engine.
//
// Errors:
//   - ErrNilModel, ErrNilSolver.
//   - ErrBadInitialClique if WithInitialClique names a set that is not a clique.
func New(m *model.Model, s lp.Solver, opts ...Option) (*Engine, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if s == nil {
		return nil, ErrNilSolver
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine{m: m, s: s, opts: o}
	e.eps = o.Epsilon
	if e.eps == 0 {
		e.eps = math.Max(s.Tolerance(), DefaultEpsilon)
	}
	if len(o.InitialClique) > 0 {
		if err := e.validateSeed(o.InitialClique); err != nil {
			return nil, err
		}
		e.seed = slices.Clone(o.InitialClique)
	}
	e.inc.reset(e.seed)
	e.rootBound.Store(-1)

	return e, nil
}

func (e *Engine) validateSeed(ids []int) error {
	x := make([]float64, e.m.NumVars())
	for _, id := range ids {
		v, ok := e.m.Var(id)
		if !ok {
			return fmt.Errorf("New: vertex %d: %w", id, ErrBadInitialClique)
		}
		if x[v] != 0 {
			return fmt.Errorf("New: duplicate vertex %d: %w", id, ErrBadInitialClique)
		}
		x[v] = 1
	}
	if !e.m.Feasible(x, 0) {
		return fmt.Errorf("New: %v: %w", ids, ErrBadInitialClique)
	}

	return nil
}

// Best returns the vertex IDs of the best clique found so far, ascending.
// Safe to call from any goroutine, during or after Run.
func (e *Engine) Best() []int { return e.inc.Snapshot() }

// Stats returns a snapshot of the counters of the current or last Run.
func (e *Engine) Stats() Stats {
	return Stats{
		Nodes:            e.nodes.Load(),
		LPSolves:         e.solves.Load(),
		PrunedInfeasible: e.prunedInf.Load(),
		PrunedBound:      e.prunedBound.Load(),
		IntegralLeaves:   e.leaves.Load(),
		IncumbentUpdates: e.updates.Load(),
		MaxDepth:         e.maxDepth.Load(),
	}
}

func (e *Engine) resetRun() {
	e.inc.reset(e.seed)
	e.rootBound.Store(-1)
	for _, c := range []*atomic.Int64{
		&e.nodes, &e.solves, &e.prunedInf, &e.prunedBound,
		&e.leaves, &e.updates, &e.maxDepth,
	} {
		c.Store(0)
	}
}

// Run executes the search until it completes, ctx is done, or the solver fails.
//
// Returns:
//   - (Result{Complete: true}, nil) on completion: Result.Clique is maximum.
//   - (partial Result, ErrInterrupted wrapping ctx.Err()) on cancellation.
//   - (partial Result, ErrSolve wrapping the solver error) on solver failure.
//   - (Result{}, ErrRunning) if another Run is in progress; that Run is not disturbed.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	if !e.running.CompareAndSwap(false, true) {
		return Result{RootBound: -1}, ErrRunning
	}
	defer e.running.Store(false)

	e.resetRun()
	start := time.Now()

	var err error
	if e.opts.Workers > 1 {
		err = e.runParallel(ctx)
	} else {
		err = e.search(ctx, nil, 0)
	}

	res := e.result()
	res.Complete = err == nil
	e.opts.Logger.LogAttrs(ctx, slogLevel(err), "search finished",
		attrSize(res.Size), attrBound(res.RootBound), attrComplete(res.Complete),
		attrNodes(res.Stats.Nodes), attrElapsed(time.Since(start)))

	return res, err
}

func (e *Engine) runParallel(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(runCtx)
	g.SetLimit(e.opts.Workers - 1)
	e.group = g
	defer func() { e.group = nil }()

	rootErr := e.search(gctx, nil, 0)
	if rootErr != nil {
		cancel()
	}
	waitErr := g.Wait()

	// A real failure beats the interruption it caused in sibling branches.
	for _, err := range []error{rootErr, waitErr} {
		if err != nil && !errors.Is(err, ErrInterrupted) {
			return err
		}
	}
	if rootErr != nil || waitErr != nil {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrInterrupted, err)
		}
		return errors.Join(rootErr, waitErr)
	}

	return nil
}

func (e *Engine) result() Result {
	best := e.inc.Snapshot()
	return Result{
		Clique:    best,
		Size:      len(best),
		RootBound: int(e.rootBound.Load()),
		Stats:     e.Stats(),
	}
}

// search processes one node. ov is owned by the caller and never modified.
func (e *Engine) search(ctx context.Context, ov []model.Override, depth int) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrInterrupted, err)
	}
	e.nodes.Add(1)
	for {
		d := e.maxDepth.Load()
		if int64(depth) <= d || e.maxDepth.CompareAndSwap(d, int64(depth)) {
			break
		}
	}

	sol, err := e.s.Solve(ctx, e.m, ov)
	switch {
	case errors.Is(err, lp.ErrInfeasible):
		e.solves.Add(1)
		e.prunedInf.Add(1)
		e.opts.Recorder.Pruned(PruneInfeasible)
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrInterrupted, err)
	case err != nil:
		return fmt.Errorf("%w at depth %d %v: %w", ErrSolve, depth, ov, err)
	}
	e.solves.Add(1)
	e.opts.Recorder.NodeSolved(depth, sol.Objective)

	bound := int(math.Floor(sol.Objective + e.eps))
	if depth == 0 {
		e.rootBound.Store(int64(bound))
	}
	if e.inc.Size() > bound {
		e.prunedBound.Add(1)
		e.opts.Recorder.Pruned(PruneBound)
		return nil
	}

	ones := make([]int, 0, max(bound, 0))
	frac := -1
	for v, x := range sol.Values {
		if x >= 1-e.eps {
			ones = append(ones, v)
			continue
		}
		if x > e.eps {
			frac = v
			break
		}
	}

	if frac < 0 {
		e.leaves.Add(1)
		e.offer(ctx, ones)
		return nil
	}

	include := branch(ov, model.Include(frac))
	exclude := branch(ov, model.Exclude(frac))
	if e.group != nil && e.group.TryGo(func() error {
		return e.search(ctx, include, depth+1)
	}) {
		return e.search(ctx, exclude, depth+1)
	}
	if err := e.search(ctx, include, depth+1); err != nil {
		return err
	}

	return e.search(ctx, exclude, depth+1)
}

func (e *Engine) offer(ctx context.Context, vars []int) {
	e.inc.offer(e.m.Vertices(vars), func(snap []int) {
		e.updates.Add(1)
		e.opts.Recorder.IncumbentImproved(len(snap))
		e.opts.Logger.LogAttrs(ctx, levelInfo, "incumbent improved", attrSize(len(snap)))
		if e.opts.OnIncumbent != nil {
			e.opts.OnIncumbent(slices.Clone(snap))
		}
	})
}

// branch returns a fresh slice: parent overrides plus o.
func branch(ov []model.Override, o model.Override) []model.Override {
	out := make([]model.Override, len(ov), len(ov)+1)
	copy(out, ov)
	return append(out, o)
}
