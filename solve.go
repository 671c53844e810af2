// File: solve.go
// Role: one-call pipeline Graph → Coloring → Model → Engine.

package lpclique

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/lpclique/bnb"
	"github.com/katalvlaran/lpclique/coloring"
	"github.com/katalvlaran/lpclique/core"
	"github.com/katalvlaran/lpclique/lp"
	"github.com/katalvlaran/lpclique/model"
)

// ErrNilGraph is returned by FindMaxClique and GreedyClique for a nil graph.
var ErrNilGraph = errors.New("lpclique: graph is nil")

// Option configures FindMaxClique.
type Option func(*config)

type config struct {
	solver     lp.Solver
	engineOpts []bnb.Option
	modelOpts  []model.Option
	greedySeed bool
}

// WithSolver replaces the default simplex backend.
func WithSolver(s lp.Solver) Option {
	return func(c *config) { c.solver = s }
}

// WithEngineOptions forwards options to bnb.New.
func WithEngineOptions(opts ...bnb.Option) Option {
	return func(c *config) { c.engineOpts = append(c.engineOpts, opts...) }
}

// WithModelOptions forwards options to model.Build.
func WithModelOptions(opts ...model.Option) Option {
	return func(c *config) { c.modelOpts = append(c.modelOpts, opts...) }
}

// WithGreedySeed seeds the search with GreedyClique(g).
func WithGreedySeed() Option {
	return func(c *config) { c.greedySeed = true }
}

// FindMaxClique runs the full pipeline on g.
//
// An empty graph yields an empty, complete result without touching the
// solver. Errors and partial results follow bnb.Engine.Run.
func FindMaxClique(ctx context.Context, g *core.Graph, opts ...Option) (bnb.Result, error) {
	if g == nil {
		return bnb.Result{}, ErrNilGraph
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if g.VertexCount() == 0 {
		return bnb.Result{Clique: []int{}, Complete: true}, nil
	}

	if cfg.solver == nil {
		s, err := lp.NewSimplex(0)
		if err != nil {
			return bnb.Result{}, fmt.Errorf("FindMaxClique: %w", err)
		}
		cfg.solver = s
	}

	col, err := coloring.Greedy(g)
	if err != nil {
		return bnb.Result{}, fmt.Errorf("FindMaxClique: %w", err)
	}
	m, err := model.Build(g, col, cfg.modelOpts...)
	if err != nil {
		return bnb.Result{}, fmt.Errorf("FindMaxClique: %w", err)
	}

	engineOpts := cfg.engineOpts
	if cfg.greedySeed {
		seed, err := GreedyClique(g)
		if err != nil {
			return bnb.Result{}, fmt.Errorf("FindMaxClique: %w", err)
		}
		engineOpts = append(slices.Clone(engineOpts), bnb.WithInitialClique(seed))
	}
	e, err := bnb.New(m, cfg.solver, engineOpts...)
	if err != nil {
		return bnb.Result{}, fmt.Errorf("FindMaxClique: %w", err)
	}

	return e.Run(ctx)
}

// GreedyClique returns a maximal clique built by scanning vertices by degree
// descending (ties by ID ascending) and keeping each vertex adjacent to all
// kept so far. IDs are returned ascending.
//
// Complexity: O(V log V + V·k) for a result of size k.
func GreedyClique(g *core.Graph) ([]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	ids := g.Vertices()
	deg := make(map[int]int, len(ids))
	for _, id := range ids {
		d, err := g.Degree(id)
		if err != nil {
			return nil, fmt.Errorf("GreedyClique: %w", err)
		}
		deg[id] = d
	}
	slices.SortStableFunc(ids, func(a, b int) int {
		return cmp.Compare(deg[b], deg[a])
	})

	clique := make([]int, 0)
	for _, v := range ids {
		ok := true
		for _, u := range clique {
			if !g.Adjacent(u, v) {
				ok = false
				break
			}
		}
		if ok {
			clique = append(clique, v)
		}
	}
	slices.Sort(clique)

	return clique, nil
}
