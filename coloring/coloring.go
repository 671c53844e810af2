package coloring

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/lpclique/core"
)

var (
	// ErrNilGraph is returned when a nil *core.Graph is passed in.
	ErrNilGraph = errors.New("coloring: graph is nil")

	// ErrConflict indicates two adjacent vertices share a colour.
	ErrConflict = errors.New("coloring: adjacent vertices share a colour")

	// ErrUncolored indicates a graph vertex without a colour.
	ErrUncolored = errors.New("coloring: vertex has no colour")

	// ErrNilColoring is returned by Validate for a nil *Coloring.
	ErrNilColoring = errors.New("coloring: coloring is nil")
)

// Class is one colour class: an independent set of vertex IDs.
type Class struct {
	// Color is the 1-based colour number.
	Color int

	// Members are the vertex IDs of this colour, ascending.
	Members []int
}

// Coloring is the result of Greedy.
type Coloring struct {
	// Classes are ordered by Color ascending; Classes[k-1].Color == k.
	Classes []Class

	colorOf map[int]int
}

// ColorOf returns the colour of id, or 0 if id was not coloured.
func (c *Coloring) ColorOf(id int) int { return c.colorOf[id] }

// NumColors returns the number of colour classes.
func (c *Coloring) NumColors() int { return len(c.Classes) }

// degreeOrder returns the vertices of g sorted by degree descending, then ID
// ascending.
func degreeOrder(g *core.Graph) ([]int, map[int]int, error) {
	ids := g.Vertices()
	deg := make(map[int]int, len(ids))
	for _, id := range ids {
		d, err := g.Degree(id)
		if err != nil {
			return nil, nil, fmt.Errorf("coloring: Degree(%d): %w", id, err)
		}
		deg[id] = d
	}
	slices.SortStableFunc(ids, func(a, b int) int {
		if deg[a] != deg[b] {
			return deg[b] - deg[a]
		}
		return a - b
	})

	return ids, deg, nil
}

// Greedy colours g first-fit in largest-degree-first order.
//
// Errors:
//   - ErrNilGraph if g is nil.
func Greedy(g *core.Graph) (*Coloring, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	order, deg, err := degreeOrder(g)
	if err != nil {
		return nil, err
	}

	res := &Coloring{colorOf: make(map[int]int, len(order))}
	var used []bool // used[k] == true if colour k is taken by a neighbour; reused
	for _, id := range order {
		// Colours 1..deg+1 suffice: at most deg of them can be blocked.
		limit := deg[id] + 1
		if cap(used) < limit+1 {
			used = make([]bool, limit+1)
		}
		used = used[:limit+1]
		clear(used)

		err = g.ForEachNeighbor(id, func(n int) bool {
			if k := res.colorOf[n]; k > 0 && k <= limit {
				used[k] = true
			}
			return true
		})
		if err != nil {
			return nil, fmt.Errorf("coloring: neighbours of %d: %w", id, err)
		}

		k := 1
		for used[k] {
			k++
		}
		if k > len(res.Classes) {
			res.Classes = append(res.Classes, Class{Color: k})
		}
		res.Classes[k-1].Members = append(res.Classes[k-1].Members, id)
		res.colorOf[id] = k
	}

	for i := range res.Classes {
		slices.Sort(res.Classes[i].Members)
	}

	return res, nil
}

// Validate checks that c is a proper colouring of every vertex of g.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrNilColoring if c is nil.
//   - ErrUncolored if some vertex of g has no colour.
//   - ErrConflict if an edge joins two vertices of the same colour.
func Validate(g *core.Graph, c *Coloring) error {
	if g == nil {
		return ErrNilGraph
	}
	if c == nil {
		return ErrNilColoring
	}
	for _, id := range g.Vertices() {
		k := c.ColorOf(id)
		if k == 0 {
			return fmt.Errorf("coloring: vertex %d: %w", id, ErrUncolored)
		}
		var clash int
		if err := g.ForEachNeighbor(id, func(n int) bool {
			if c.ColorOf(n) == k {
				clash = n
				return false
			}
			return true
		}); err != nil {
			return err
		}
		if clash != 0 {
			return fmt.Errorf("coloring: %d—%d both colour %d: %w", id, clash, k, ErrConflict)
		}
	}

	return nil
}
