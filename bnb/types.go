// File: types.go
// Role: sentinel errors, options, result and statistics types.

package bnb

import (
	"errors"
	"log/slog"
)

var (
	// ErrNilModel is returned by New when the model is nil.
	ErrNilModel = errors.New("bnb: model is nil")

	// ErrNilSolver is returned by New when the solver is nil.
	ErrNilSolver = errors.New("bnb: solver is nil")

	// ErrBadInitialClique indicates a WithInitialClique set that is not a clique
	// of the model (unknown vertex, duplicate or non-adjacent pair).
	ErrBadInitialClique = errors.New("bnb: initial set is not a clique")

	// ErrInterrupted is returned by Run when the context is done before the
	// search finishes. The Result still carries the best clique found.
	ErrInterrupted = errors.New("bnb: search interrupted")

	// ErrSolve wraps a solver failure other than infeasibility.
	ErrSolve = errors.New("bnb: relaxation solve failed")

	// ErrRunning is returned by Run while another Run on the same Engine is
	// still in progress.
	ErrRunning = errors.New("bnb: run already in progress")
)

// DefaultEpsilon is the integrality tolerance when neither WithEpsilon nor the
// solver provides one.
const DefaultEpsilon = 1e-6

// PruneReason tells why a node was closed without branching.
type PruneReason uint8

const (
	// PruneInfeasible: the relaxation had no solution.
	PruneInfeasible PruneReason = iota + 1
	// PruneBound: the incumbent already beats floor(objective).
	PruneBound
)

// String implements fmt.Stringer.
func (r PruneReason) String() string {
	switch r {
	case PruneInfeasible:
		return "infeasible"
	case PruneBound:
		return "bound"
	default:
		return "unknown"
	}
}

// Recorder receives search events. Implementations must be safe for
// concurrent use when WithWorkers(n > 1) is set.
type Recorder interface {
	NodeSolved(depth int, objective float64)
	Pruned(reason PruneReason)
	IncumbentImproved(size int)
}

type nopRecorder struct{}

func (nopRecorder) NodeSolved(int, float64) {}
func (nopRecorder) Pruned(PruneReason)      {}
func (nopRecorder) IncumbentImproved(int)   {}

// Option configures an Engine.
type Option func(*Options)

// Options holds the engine configuration. Zero values mean defaults.
type Options struct {
	// Workers bounds concurrently explored branches; ≤ 1 is sequential.
	Workers int

	// Epsilon is the integrality tolerance; 0 means max(solver tolerance,
	// DefaultEpsilon).
	Epsilon float64

	// OnIncumbent, if non-nil, is called with the vertex IDs (ascending) of
	// every strictly better clique, in the order improvements happen.
	// It runs while the incumbent is locked and must not block for long.
	OnIncumbent func(clique []int)

	// Recorder receives node/prune/improvement events.
	Recorder Recorder

	// Logger receives incumbent improvements (info) and run summaries (debug).
	Logger *slog.Logger

	// InitialClique seeds the incumbent (vertex IDs).
	InitialClique []int
}

// DefaultOptions returns sequential search, automatic epsilon, no hooks and a
// discarding logger.
func DefaultOptions() Options {
	return Options{
		Workers:  1,
		Recorder: nopRecorder{},
		Logger:   slog.New(slog.DiscardHandler),
	}
}

// WithWorkers sets the number of concurrently explored branches.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = 1
		}
		o.Workers = n
	}
}

// WithEpsilon overrides the integrality tolerance. Non-positive values are ignored.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps > 0 {
			o.Epsilon = eps
		}
	}
}

// WithOnIncumbent installs an improvement hook.
func WithOnIncumbent(fn func(clique []int)) Option {
	return func(o *Options) { o.OnIncumbent = fn }
}

// WithRecorder installs a search-event sink. nil restores the no-op recorder.
func WithRecorder(r Recorder) Option {
	return func(o *Options) {
		if r == nil {
			r = nopRecorder{}
		}
		o.Recorder = r
	}
}

// WithLogger sets the engine logger. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithInitialClique seeds the incumbent with a known clique, given as vertex IDs.
func WithInitialClique(ids []int) Option {
	return func(o *Options) { o.InitialClique = append([]int(nil), ids...) }
}

// Stats are search counters, a snapshot of one Run.
type Stats struct {
	Nodes            int64 // search nodes entered
	LPSolves         int64 // successful or infeasible solver calls
	PrunedInfeasible int64
	PrunedBound      int64
	IntegralLeaves   int64 // nodes whose optimum was integral
	IncumbentUpdates int64
	MaxDepth         int64
}

// Result is the outcome of Run.
type Result struct {
	// Clique holds the vertex IDs of the best clique, ascending.
	Clique []int
	// Size is len(Clique).
	Size int
	// RootBound is floor(objective) of the root relaxation, -1 if the root
	// was never solved.
	RootBound int
	// Complete is true iff the search finished, i.e. Clique is maximum.
	Complete bool
	Stats    Stats
}
