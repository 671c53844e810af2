package bnb_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lpclique/bnb"
	"github.com/katalvlaran/lpclique/builder"
	"github.com/katalvlaran/lpclique/coloring"
	"github.com/katalvlaran/lpclique/core"
	"github.com/katalvlaran/lpclique/lp"
	"github.com/katalvlaran/lpclique/model"
)

func graphOf(t *testing.T, seed int64, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, cons...)
	require.NoError(t, err)
	return g
}

func modelOf(t *testing.T, g *core.Graph) *model.Model {
	t.Helper()
	c, err := coloring.Greedy(g)
	require.NoError(t, err)
	m, err := model.Build(g, c)
	require.NoError(t, err)
	return m
}

func simplex(t *testing.T) lp.Solver {
	t.Helper()
	s, err := lp.NewSimplex(0)
	require.NoError(t, err)
	return s
}

func solve(t *testing.T, g *core.Graph, opts ...bnb.Option) bnb.Result {
	t.Helper()
	e, err := bnb.New(modelOf(t, g), simplex(t), opts...)
	require.NoError(t, err)
	res, err := e.Run(context.Background())
	require.NoError(t, err)
	require.True(t, res.Complete)
	return res
}

// bruteForce returns ω(g) by enumerating vertex subsets; small graphs only.
func bruteForce(g *core.Graph) int {
	ids := g.Vertices()
	best := 0
	for mask := 0; mask < 1<<len(ids); mask++ {
		var set []int
		for i, id := range ids {
			if mask&(1<<i) != 0 {
				set = append(set, id)
			}
		}
		if len(set) > best && g.IsClique(set) {
			best = len(set)
		}
	}
	return best
}

func TestNew_Errors(t *testing.T) {
	m := modelOf(t, graphOf(t, 1, builder.Cycle(5)))

	_, err := bnb.New(nil, simplex(t))
	assert.ErrorIs(t, err, bnb.ErrNilModel)
	_, err = bnb.New(m, nil)
	assert.ErrorIs(t, err, bnb.ErrNilSolver)

	for _, seed := range [][]int{{1, 3}, {1, 1}, {1, 99}} {
		_, err = bnb.New(m, simplex(t), bnb.WithInitialClique(seed))
		assert.ErrorIs(t, err, bnb.ErrBadInitialClique, "seed %v", seed)
	}
}

func TestRun_KnownGraphs(t *testing.T) {
	twoEdges := core.New()
	require.NoError(t, twoEdges.CreateEdge(1, 2))
	require.NoError(t, twoEdges.CreateEdge(3, 4))

	edgeless := core.New()
	for id := 1; id <= 4; id++ {
		require.NoError(t, edgeless.AddVertex(id))
	}

	tests := []struct {
		name string
		g    *core.Graph
		want int
	}{
		{"K4", graphOf(t, 1, builder.Complete(4)), 4},
		{"TwoDisjointEdges", twoEdges, 2},
		{"C5", graphOf(t, 1, builder.Cycle(5)), 2},
		{"Edgeless", edgeless, 1},
		{"Empty", core.New(), 0},
		{"Wheel7", graphOf(t, 1, builder.Wheel(7)), 3},
		{"K3,4", graphOf(t, 1, builder.CompleteBipartite(3, 4)), 2},
		{"K5+C7", graphOf(t, 1, builder.Disjoint(builder.Cycle(7), builder.Complete(5))), 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := solve(t, tc.g)
			assert.Equal(t, tc.want, res.Size)
			assert.Len(t, res.Clique, res.Size)
			assert.True(t, tc.g.IsClique(res.Clique))
			assert.IsNonDecreasing(t, res.Clique)
			assert.LessOrEqual(t, res.Size, res.RootBound)
			assert.Positive(t, res.Stats.Nodes)
		})
	}
}

func TestRun_RandomAgainstBruteForce(t *testing.T) {
	for seed := int64(1); seed <= 12; seed++ {
		g := graphOf(t, seed, builder.RandomSparse(11, 0.55))
		res := solve(t, g)
		assert.Equal(t, bruteForce(g), res.Size, "seed %d", seed)
		assert.True(t, g.IsClique(res.Clique), "seed %d", seed)
		assert.LessOrEqual(t, res.Size, res.RootBound, "seed %d", seed)
	}
}

func TestRun_IncumbentMonotone(t *testing.T) {
	g := graphOf(t, 3, builder.RandomSparse(18, 0.6))
	var sizes []int
	res := solve(t, g, bnb.WithOnIncumbent(func(c []int) {
		assert.True(t, g.IsClique(c))
		sizes = append(sizes, len(c))
	}))

	require.NotEmpty(t, sizes)
	for i := 1; i < len(sizes); i++ {
		assert.Greater(t, sizes[i], sizes[i-1])
	}
	assert.Equal(t, res.Size, sizes[len(sizes)-1])
	assert.EqualValues(t, len(sizes), res.Stats.IncumbentUpdates)
}

func TestRun_Idempotent(t *testing.T) {
	g := graphOf(t, 5, builder.RandomSparse(16, 0.5))
	e, err := bnb.New(modelOf(t, g), simplex(t))
	require.NoError(t, err)

	first, err := e.Run(context.Background())
	require.NoError(t, err)
	second, err := e.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first.Size, second.Size)
	assert.Equal(t, first.Clique, second.Clique)
	assert.Equal(t, first.Stats, second.Stats)

	third := solve(t, g)
	assert.Equal(t, first.Size, third.Size)
}

func TestRun_InitialClique(t *testing.T) {
	g := graphOf(t, 1, builder.Disjoint(builder.Cycle(7), builder.Complete(5)))
	k5 := []int{8, 9, 10, 11, 12}

	e, err := bnb.New(modelOf(t, g), simplex(t), bnb.WithInitialClique(k5))
	require.NoError(t, err)
	assert.Equal(t, k5, e.Best())

	var improved atomic.Int32
	e, err = bnb.New(modelOf(t, g), simplex(t),
		bnb.WithInitialClique(k5),
		bnb.WithOnIncumbent(func([]int) { improved.Add(1) }))
	require.NoError(t, err)
	res, err := e.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, k5, res.Clique)
	assert.Zero(t, improved.Load())
}

// failingSolver delegates to a real solver until calls reaches failAt.
type failingSolver struct {
	lp.Solver
	calls  atomic.Int32
	failAt int32
}

var errBackend = errors.New("backend exploded")

func (f *failingSolver) Solve(ctx context.Context, m *model.Model, ov []model.Override) (lp.Solution, error) {
	if f.calls.Add(1) >= f.failAt {
		return lp.Solution{}, errBackend
	}
	return f.Solver.Solve(ctx, m, ov)
}

func TestRun_SolverFailureAborts(t *testing.T) {
	m := modelOf(t, graphOf(t, 1, builder.Cycle(5)))
	for _, workers := range []int{1, 4} {
		fs := &failingSolver{Solver: simplex(t), failAt: 2}
		e, err := bnb.New(m, fs, bnb.WithWorkers(workers))
		require.NoError(t, err)

		res, err := e.Run(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, bnb.ErrSolve)
		assert.ErrorIs(t, err, errBackend)
		assert.NotErrorIs(t, err, bnb.ErrInterrupted)
		assert.False(t, res.Complete)
	}
}

// blockingSolver parks every Solve until release is closed.
type blockingSolver struct {
	lp.Solver
	started chan struct{}
	once    sync.Once
	release chan struct{}
}

func (b *blockingSolver) Solve(ctx context.Context, m *model.Model, ov []model.Override) (lp.Solution, error) {
	b.once.Do(func() { close(b.started) })
	<-b.release
	return b.Solver.Solve(ctx, m, ov)
}

func TestRun_OverlappingRunRejected(t *testing.T) {
	m := modelOf(t, graphOf(t, 1, builder.Cycle(5)))
	bs := &blockingSolver{Solver: simplex(t), started: make(chan struct{}), release: make(chan struct{})}
	e, err := bnb.New(m, bs)
	require.NoError(t, err)

	type outcome struct {
		res bnb.Result
		err error
	}
	first := make(chan outcome, 1)
	go func() {
		res, err := e.Run(context.Background())
		first <- outcome{res, err}
	}()
	<-bs.started

	_, err = e.Run(context.Background())
	assert.ErrorIs(t, err, bnb.ErrRunning)

	close(bs.release)
	got := <-first
	require.NoError(t, got.err)
	assert.True(t, got.res.Complete)
	assert.Equal(t, 2, got.res.Size)

	// The guard is released once the first Run returns.
	res, err := e.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Size)
}

func TestRun_CancelKeepsIncumbent(t *testing.T) {
	g := graphOf(t, 9, builder.RandomSparse(40, 0.5))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	e, err := bnb.New(modelOf(t, g), simplex(t), bnb.WithOnIncumbent(func([]int) { cancel() }))
	require.NoError(t, err)

	res, err := e.Run(ctx)
	require.ErrorIs(t, err, bnb.ErrInterrupted)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, res.Complete)
	assert.Positive(t, res.Size)
	assert.True(t, g.IsClique(res.Clique))
	assert.Equal(t, res.Clique, e.Best())
}

func TestRun_AlreadyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e, err := bnb.New(modelOf(t, graphOf(t, 1, builder.Complete(3))), simplex(t))
	require.NoError(t, err)

	res, err := e.Run(ctx)
	assert.ErrorIs(t, err, bnb.ErrInterrupted)
	assert.Equal(t, -1, res.RootBound)
	assert.Empty(t, res.Clique)
}

func TestRun_ParallelMatchesSequential(t *testing.T) {
	for seed := int64(1); seed <= 4; seed++ {
		g := graphOf(t, seed, builder.RandomSparse(22, 0.55))
		seq := solve(t, g)
		par := solve(t, g, bnb.WithWorkers(4))
		assert.Equal(t, seq.Size, par.Size, "seed %d", seed)
		assert.True(t, g.IsClique(par.Clique), "seed %d", seed)
		assert.Equal(t, seq.RootBound, par.RootBound, "seed %d", seed)
	}
}

func TestBest_ConcurrentReads(t *testing.T) {
	g := graphOf(t, 2, builder.RandomSparse(24, 0.6))
	e, err := bnb.New(modelOf(t, g), simplex(t), bnb.WithWorkers(3))
	require.NoError(t, err)

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
				assert.True(t, g.IsClique(e.Best()))
			}
		}
	}()

	_, err = e.Run(context.Background())
	close(done)
	wg.Wait()
	require.NoError(t, err)
}

// countingRecorder tallies events for assertions.
type countingRecorder struct {
	nodes, infeasible, bound, improved atomic.Int64
}

func (r *countingRecorder) NodeSolved(int, float64) { r.nodes.Add(1) }
func (r *countingRecorder) Pruned(reason bnb.PruneReason) {
	if reason == bnb.PruneInfeasible {
		r.infeasible.Add(1)
		return
	}
	r.bound.Add(1)
}
func (r *countingRecorder) IncumbentImproved(int) { r.improved.Add(1) }

func TestRun_RecorderMatchesStats(t *testing.T) {
	rec := &countingRecorder{}
	res := solve(t, graphOf(t, 4, builder.RandomSparse(16, 0.5)), bnb.WithRecorder(rec))

	st := res.Stats
	assert.Equal(t, st.LPSolves-st.PrunedInfeasible, rec.nodes.Load())
	assert.Equal(t, st.PrunedInfeasible, rec.infeasible.Load())
	assert.Equal(t, st.PrunedBound, rec.bound.Load())
	assert.Equal(t, st.IncumbentUpdates, rec.improved.Load())
	assert.Equal(t, "infeasible", bnb.PruneInfeasible.String())
	assert.Equal(t, "bound", bnb.PruneBound.String())
}
