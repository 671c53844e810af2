// Package lp_test provides benchmarks for the root relaxation solve.
package lp_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/lpclique/builder"
	"github.com/katalvlaran/lpclique/coloring"
	"github.com/katalvlaran/lpclique/lp"
	"github.com/katalvlaran/lpclique/model"
)

// benchModel builds the relaxation of a seeded G(n, 0.5).
func benchModel(b *testing.B, n int) *model.Model {
	b.Helper()
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(7)}, builder.RandomSparse(n, 0.5))
	if err != nil {
		b.Fatal(err)
	}
	c, err := coloring.Greedy(g)
	if err != nil {
		b.Fatal(err)
	}
	m, err := model.Build(g, c)
	if err != nil {
		b.Fatal(err)
	}
	return m
}

// BenchmarkSolve measures one root solve on dense random graphs of growing order.
func BenchmarkSolve(b *testing.B) {
	s, err := lp.NewSimplex(0)
	if err != nil {
		b.Fatal(err)
	}
	for _, n := range []int{20, 40, 70} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := benchModel(b, n)
			b.ReportAllocs()
			// Reset timer to exclude model construction
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := s.Solve(context.Background(), m, nil); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkSolve_Branched measures a solve two levels down the include branch,
// where presolve fixes most of the neighbourhood.
func BenchmarkSolve_Branched(b *testing.B) {
	s, err := lp.NewSimplex(0)
	if err != nil {
		b.Fatal(err)
	}
	m := benchModel(b, 40)
	ov := []model.Override{model.Include(0), model.Exclude(1)}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Solve(context.Background(), m, ov); err != nil {
			b.Fatal(err)
		}
	}
}
