package grid_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/grid"
)

// TestComponents_SplitByWall checks two regions separated by a full wall
// column.
//
//	S.#..
//	..#.F
func TestComponents_SplitByWall(t *testing.T) {
	g, err := grid.Parse("S.#..\n..#.F", 1)
	require.NoError(t, err)

	comps := g.Components()
	require.Len(t, comps, 2)
	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	assert.Equal(t, []int{4, 4}, sizes)
	assert.Equal(t, grid.Coord{Row: 0, Col: 0}, comps[0][0])
	assert.Equal(t, grid.Coord{Row: 0, Col: 3}, comps[1][0])
}

func TestReachable(t *testing.T) {
	g, err := grid.Parse("S.#..\n..#.F", 1)
	require.NoError(t, err)

	got := g.Reachable(g.Start())
	want := []grid.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}}
	assert.Equal(t, want, got)

	assert.Nil(t, g.Reachable(grid.Coord{Row: 0, Col: 2}), "wall origin")
	assert.Nil(t, g.Reachable(grid.Coord{Row: 9, Col: 9}), "outside")
}

func TestComponents_AllWalls(t *testing.T) {
	g, err := grid.Parse("S#\n#F", 1)
	require.NoError(t, err)
	assert.Len(t, g.Components(), 2)
}
