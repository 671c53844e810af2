package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lpclique/core"
)

func TestCreateEdge_Symmetric(t *testing.T) {
	g := core.New()
	require.NoError(t, g.CreateEdge(1, 2))

	assert.True(t, g.Adjacent(1, 2))
	assert.True(t, g.Adjacent(2, 1))
	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())
}

func TestCreateEdge_DuplicatesCollapse(t *testing.T) {
	g := core.New()
	require.NoError(t, g.CreateEdge(1, 2))
	require.NoError(t, g.CreateEdge(2, 1))
	require.NoError(t, g.CreateEdge(1, 2))

	assert.Equal(t, 1, g.EdgeCount())
	d, err := g.Degree(1)
	require.NoError(t, err)
	assert.Equal(t, 1, d)
	nbs, err := g.Neighbors(2)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, nbs)
}

func TestCreateEdge_Rejects(t *testing.T) {
	g := core.New()
	assert.ErrorIs(t, g.CreateEdge(0, 1), core.ErrBadVertexID)
	assert.ErrorIs(t, g.CreateEdge(3, -1), core.ErrBadVertexID)
	assert.ErrorIs(t, g.CreateEdge(4, 4), core.ErrLoopNotAllowed)
	assert.Equal(t, 0, g.VertexCount(), "rejected edges must not create vertices")
}

func TestAddVertex(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddVertex(7))
	require.NoError(t, g.AddVertex(7))
	assert.ErrorIs(t, g.AddVertex(0), core.ErrBadVertexID)

	assert.True(t, g.HasVertex(7))
	assert.False(t, g.HasVertex(8))
	d, err := g.Degree(7)
	require.NoError(t, err)
	assert.Zero(t, d)
}

func TestOrderAndVertices(t *testing.T) {
	g := core.New()
	require.NoError(t, g.CreateEdge(5, 3))
	require.NoError(t, g.CreateEdge(3, 9))
	require.NoError(t, g.AddVertex(1))

	assert.Equal(t, []int{5, 3, 9, 1}, g.Order())
	assert.Equal(t, []int{1, 3, 5, 9}, g.Vertices())
}

func TestNeighbors_Unknown(t *testing.T) {
	g := core.New()
	_, err := g.Neighbors(1)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Degree(1)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	assert.ErrorIs(t, g.ForEachNeighbor(1, func(int) bool { return true }), core.ErrVertexNotFound)
	assert.False(t, g.Adjacent(1, 2))
}

func TestForEachNeighbor_StopsEarly(t *testing.T) {
	g := core.New()
	for v := 2; v <= 6; v++ {
		require.NoError(t, g.CreateEdge(1, v))
	}
	seen := 0
	require.NoError(t, g.ForEachNeighbor(1, func(int) bool {
		seen++
		return seen < 2
	}))
	assert.Equal(t, 2, seen)
}

func TestIsClique(t *testing.T) {
	g := core.New()
	for _, e := range [][2]int{{1, 2}, {1, 3}, {2, 3}, {3, 4}} {
		require.NoError(t, g.CreateEdge(e[0], e[1]))
	}

	tests := []struct {
		name string
		ids  []int
		want bool
	}{
		{"empty", nil, true},
		{"single", []int{4}, true},
		{"triangle", []int{1, 2, 3}, true},
		{"edge", []int{3, 4}, true},
		{"missing edge", []int{1, 2, 4}, false},
		{"unknown vertex", []int{1, 99}, false},
		{"repeated vertex", []int{1, 1}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, g.IsClique(tc.ids))
		})
	}
}
