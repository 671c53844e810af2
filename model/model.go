package model

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/lpclique/coloring"
	"github.com/katalvlaran/lpclique/core"
)

var (
	// ErrNilGraph is returned when Build receives a nil graph.
	ErrNilGraph = errors.New("model: graph is nil")

	// ErrNilColoring is returned when Build receives a nil colouring while
	// independent-set rows are enabled.
	ErrNilColoring = errors.New("model: coloring is nil")

	// ErrUnknownVertex indicates a colour class member that is not a graph vertex.
	ErrUnknownVertex = errors.New("model: unknown vertex")

	// ErrUnknownVar is returned by Bounds for an override on a variable the
	// model does not have.
	ErrUnknownVar = errors.New("model: unknown variable")

	// ErrBadSense is returned by Bounds for an override with an unknown Sense.
	ErrBadSense = errors.New("model: unknown override sense")

	// ErrEmptyDomain is returned by Bounds when the overrides leave some
	// variable with lower > upper.
	ErrEmptyDomain = errors.New("model: empty variable domain")
)

// RowKind classifies a constraint row by origin.
type RowKind uint8

const (
	// NonEdge rows forbid two non-adjacent vertices together.
	NonEdge RowKind = iota + 1
	// IndependentSet rows come from colour classes.
	IndependentSet
)

// String implements fmt.Stringer.
func (k RowKind) String() string {
	switch k {
	case NonEdge:
		return "non_edge"
	case IndependentSet:
		return "independent_set"
	default:
		return fmt.Sprintf("RowKind(%d)", uint8(k))
	}
}

// Row is one packing constraint Σ_{v ∈ Vars} x_v ≤ RHS.
type Row struct {
	Kind RowKind
	Vars []int // dense variable indices, ascending
	RHS  float64
}

// Stats counts rows per kind.
type Stats struct {
	Vars           int
	NonEdge        int
	IndependentSet int
}

// Model is the immutable relaxation. Safe for concurrent reads.
type Model struct {
	vertex []int       // var → vertex ID (ascending)
	index  map[int]int // vertex ID → var
	rows   []Row
	stats  Stats
}

// NumVars returns the number of variables (= vertices).
func (m *Model) NumVars() int { return len(m.vertex) }

// Vertex returns the vertex ID of variable v.
func (m *Model) Vertex(v int) int { return m.vertex[v] }

// Var returns the variable of vertex id.
func (m *Model) Var(id int) (int, bool) {
	v, ok := m.index[id]
	return v, ok
}

// Rows returns the constraint rows. Callers must not modify them.
func (m *Model) Rows() []Row { return m.rows }

// Stats returns row counts.
func (m *Model) Stats() Stats { return m.stats }

// Objective returns the objective coefficients (all ones, maximize).
func (m *Model) Objective() []float64 {
	c := make([]float64, len(m.vertex))
	for i := range c {
		c[i] = 1
	}
	return c
}

// Vertices maps a set of variables to their vertex IDs, ascending.
func (m *Model) Vertices(vars []int) []int {
	ids := make([]int, len(vars))
	for i, v := range vars {
		ids[i] = m.vertex[v]
	}
	slices.Sort(ids)
	return ids
}

// Feasible reports whether x satisfies the variable domain [0,1] and every
// row of m within tol.
func (m *Model) Feasible(x []float64, tol float64) bool {
	if len(x) != len(m.vertex) {
		return false
	}
	for _, xv := range x {
		if math.IsNaN(xv) || xv < -tol || xv > 1+tol {
			return false
		}
	}
	for _, r := range m.rows {
		var s float64
		for _, v := range r.Vars {
			s += x[v]
		}
		if s > r.RHS+tol {
			return false
		}
	}
	return true
}

// Option configures Build.
type Option func(*buildConfig)

type buildConfig struct {
	independentSets bool
}

// WithoutIndependentSets drops the colour-class rows, leaving only the
// non-edge rows. The feasible integer points are unchanged; the bound is weaker.
func WithoutIndependentSets() Option {
	return func(c *buildConfig) { c.independentSets = false }
}

// Build constructs the relaxation of the clique program of g, strengthened with
// one row per colour class of c that has more than one member.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrNilColoring if c is nil and independent-set rows are enabled.
//   - ErrUnknownVertex if a class member is not in g.
//
// Complexity: O(V²) adjacency tests + O(V) for class rows.
func Build(g *core.Graph, c *coloring.Coloring, opts ...Option) (*Model, error) {
	cfg := buildConfig{independentSets: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if c == nil && cfg.independentSets {
		return nil, ErrNilColoring
	}

	ids := g.Vertices()
	m := &Model{
		vertex: ids,
		index:  make(map[int]int, len(ids)),
	}
	for v, id := range ids {
		m.index[id] = v
	}
	m.stats.Vars = len(ids)

	// Non-edge rows: each unordered pair exactly once, self pairs excluded.
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if g.Adjacent(ids[i], ids[j]) {
				continue
			}
			m.rows = append(m.rows, Row{Kind: NonEdge, Vars: []int{i, j}, RHS: 1})
			m.stats.NonEdge++
		}
	}

	if cfg.independentSets {
		for _, cl := range c.Classes {
			if len(cl.Members) <= 1 {
				continue
			}
			vars := make([]int, len(cl.Members))
			for k, id := range cl.Members {
				v, ok := m.index[id]
				if !ok {
					return nil, fmt.Errorf("model: colour %d member %d: %w", cl.Color, id, ErrUnknownVertex)
				}
				vars[k] = v
			}
			slices.Sort(vars)
			m.rows = append(m.rows, Row{Kind: IndependentSet, Vars: vars, RHS: 1})
			m.stats.IndependentSet++
		}
	}

	return m, nil
}
