package grid_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/grid"
)

func newGrid(t *testing.T, rows, cols int, start, finish grid.Coord) *grid.Grid {
	t.Helper()
	g, err := grid.New(grid.Config{Rows: rows, Cols: cols, CellSizePx: 25}, start, finish)
	require.NoError(t, err)
	return g
}

//----------------------------------------------------------------------------//
// New
//----------------------------------------------------------------------------//

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name          string
		cfg           grid.Config
		start, finish grid.Coord
		err           error
	}{
		{"NoRows", grid.Config{Rows: 0, Cols: 3}, grid.Coord{}, grid.Coord{}, grid.ErrEmptyGrid},
		{"NoCols", grid.Config{Rows: 3, Cols: 0}, grid.Coord{}, grid.Coord{}, grid.ErrEmptyGrid},
		{"StartOutside", grid.Config{Rows: 3, Cols: 3}, grid.Coord{Row: 3, Col: 0}, grid.Coord{}, grid.ErrInvalidCoordinate},
		{"FinishNegative", grid.Config{Rows: 3, Cols: 3}, grid.Coord{}, grid.Coord{Row: 0, Col: -1}, grid.ErrInvalidCoordinate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.New(tc.cfg, tc.start, tc.finish)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	g := newGrid(t, 4, 5, grid.Coord{Row: 1, Col: 1}, grid.Coord{Row: 2, Col: 3})

	assert.Equal(t, 4, g.Rows())
	assert.Equal(t, 5, g.Cols())
	assert.Equal(t, 20, g.Len())

	starts, finishes := 0, 0
	for r, row := range g.Nodes() {
		for c, n := range row {
			assert.Equal(t, r, n.Row)
			assert.Equal(t, c, n.Col)
			assert.Equal(t, grid.Infinity, n.Distance)
			assert.Equal(t, grid.None, n.Previous)
			assert.False(t, n.IsVisited)
			assert.False(t, n.IsWall)
			if n.IsStart {
				starts++
			}
			if n.IsFinish {
				finishes++
			}
		}
	}
	assert.Equal(t, 1, starts)
	assert.Equal(t, 1, finishes)
	assert.True(t, g.At(grid.Coord{Row: 1, Col: 1}).IsStart)
	assert.True(t, g.At(grid.Coord{Row: 2, Col: 3}).IsFinish)
}

func TestNew_StartEqualsFinish(t *testing.T) {
	c := grid.Coord{Row: 0, Col: 0}
	g := newGrid(t, 2, 2, c, c)
	n := g.At(c)
	assert.True(t, n.IsStart)
	assert.True(t, n.IsFinish)
}

func TestNode_OutOfBounds(t *testing.T) {
	g := newGrid(t, 2, 2, grid.Coord{}, grid.Coord{Row: 1, Col: 1})
	_, err := g.Node(2, 0)
	assert.ErrorIs(t, err, grid.ErrInvalidCoordinate)
	n, err := g.Node(1, 0)
	require.NoError(t, err)
	assert.Equal(t, grid.Coord{Row: 1, Col: 0}, n.Coord())
}

func TestNeighbors_Order(t *testing.T) {
	g := newGrid(t, 3, 3, grid.Coord{}, grid.Coord{Row: 2, Col: 2})

	got := g.Neighbors(grid.Coord{Row: 1, Col: 1})
	want := []grid.Coord{{Row: 0, Col: 1}, {Row: 2, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 2}}
	assert.Equal(t, want, got)

	corner := g.Neighbors(grid.Coord{Row: 0, Col: 0})
	assert.Equal(t, []grid.Coord{{Row: 1, Col: 0}, {Row: 0, Col: 1}}, corner)
}

func TestIndexRoundTrip(t *testing.T) {
	g := newGrid(t, 3, 4, grid.Coord{}, grid.Coord{Row: 2, Col: 3})
	for i := 0; i < g.Len(); i++ {
		assert.Equal(t, i, g.Index(g.CoordOf(i)))
	}
}

//----------------------------------------------------------------------------//
// ToggleWall
//----------------------------------------------------------------------------//

func TestToggleWall_RoundTrip(t *testing.T) {
	g := newGrid(t, 3, 3, grid.Coord{}, grid.Coord{Row: 2, Col: 2})

	once, err := g.ToggleWall(1, 1)
	require.NoError(t, err)
	assert.True(t, once.At(grid.Coord{Row: 1, Col: 1}).IsWall)
	assert.False(t, g.At(grid.Coord{Row: 1, Col: 1}).IsWall, "original grid must not change")

	twice, err := once.ToggleWall(1, 1)
	require.NoError(t, err)
	assert.True(t, twice.Equal(g))
	if diff := cmp.Diff(g.Nodes(), twice.Nodes()); diff != "" {
		t.Errorf("toggle twice mismatch (-want +got):\n%s", diff)
	}
}

func TestToggleWall_OnlyTargetChanges(t *testing.T) {
	g := newGrid(t, 3, 3, grid.Coord{}, grid.Coord{Row: 2, Col: 2})
	next, err := g.ToggleWall(0, 2)
	require.NoError(t, err)

	before, after := g.Nodes(), next.Nodes()
	changed := 0
	for r := range before {
		for c := range before[r] {
			if before[r][c] != after[r][c] {
				changed++
				assert.Equal(t, grid.Coord{Row: 0, Col: 2}, after[r][c].Coord())
			}
		}
	}
	assert.Equal(t, 1, changed)
}

func TestToggleWall_Rejects(t *testing.T) {
	g := newGrid(t, 3, 3, grid.Coord{}, grid.Coord{Row: 2, Col: 2})

	_, err := g.ToggleWall(0, 0)
	assert.ErrorIs(t, err, grid.ErrProtectedCell)
	_, err = g.ToggleWall(2, 2)
	assert.ErrorIs(t, err, grid.ErrProtectedCell)
	_, err = g.ToggleWall(5, 0)
	assert.ErrorIs(t, err, grid.ErrInvalidCoordinate)
}

//----------------------------------------------------------------------------//
// ApplyWalls / ClearRunState / WithRunState
//----------------------------------------------------------------------------//

func TestApplyWalls_FiltersEndpoints(t *testing.T) {
	g := newGrid(t, 3, 3, grid.Coord{}, grid.Coord{Row: 2, Col: 2})
	next, err := g.ApplyWalls([]grid.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}, {Row: 1, Col: 2}})
	require.NoError(t, err)

	assert.Equal(t, []grid.Coord{{Row: 1, Col: 1}, {Row: 1, Col: 2}}, next.Walls())
	assert.False(t, next.At(grid.Coord{}).IsWall)
	assert.Empty(t, g.Walls())
}

func TestApplyWalls_InvalidCoordinateRejectsAll(t *testing.T) {
	g := newGrid(t, 3, 3, grid.Coord{}, grid.Coord{Row: 2, Col: 2})
	next, err := g.ApplyWalls([]grid.Coord{{Row: 1, Col: 1}, {Row: 3, Col: 3}})
	assert.Nil(t, next)
	assert.ErrorIs(t, err, grid.ErrInvalidCoordinate)
	assert.Empty(t, g.Walls())
}

func TestClearRunState_Idempotent(t *testing.T) {
	g := newGrid(t, 2, 3, grid.Coord{}, grid.Coord{Row: 1, Col: 2})
	g, err := g.ToggleWall(0, 1)
	require.NoError(t, err)

	dist := []int{0, grid.Infinity, 4, 1, 2, 3}
	visited := []bool{true, false, true, true, true, true}
	prev := []grid.Coord{grid.None, grid.None, {Row: 1, Col: 2}, {Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}
	onPath := []bool{true, false, false, true, true, true}
	ran, err := g.WithRunState(grid.RunState{Distance: dist, Visited: visited, Previous: prev, OnPath: onPath})
	require.NoError(t, err)
	assert.Equal(t, 3, ran.At(grid.Coord{Row: 1, Col: 2}).Distance)
	assert.True(t, ran.At(grid.Coord{Row: 1, Col: 1}).IsShortestPath)

	once := ran.ClearRunState()
	twice := once.ClearRunState()
	assert.True(t, once.Equal(twice))
	assert.True(t, once.Equal(g))
	assert.True(t, once.At(grid.Coord{Row: 0, Col: 1}).IsWall, "walls survive clearing")
}

func TestWithRunState_SizeMismatch(t *testing.T) {
	g := newGrid(t, 2, 2, grid.Coord{}, grid.Coord{Row: 1, Col: 1})
	_, err := g.WithRunState(grid.RunState{Distance: []int{0}})
	assert.ErrorIs(t, err, grid.ErrRunStateSize)
}

func TestClearWalls(t *testing.T) {
	g, err := grid.Parse(`
		S#.
		.#F
	`, 10)
	require.NoError(t, err)
	assert.Len(t, g.Walls(), 2)
	assert.Empty(t, g.ClearWalls().Walls())
}

//----------------------------------------------------------------------------//
// Parse / String
//----------------------------------------------------------------------------//

func TestParse_RoundTrip(t *testing.T) {
	layout := "S..#\n.#..\n...F"
	g, err := grid.Parse(layout, 20)
	require.NoError(t, err)
	assert.Equal(t, layout, g.String())
	assert.Equal(t, grid.Coord{Row: 0, Col: 0}, g.Start())
	assert.Equal(t, grid.Coord{Row: 2, Col: 3}, g.Finish())
	assert.Equal(t, 20, g.Config().CellSizePx)
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"ragged":     "S..\n..F\n.",
		"unknown":    "S.x\n..F",
		"noFinish":   "S..\n...",
		"twoStarts":  "S.S\n..F",
		"twoFinishs": "SFF\n...",
	}
	for name, layout := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := grid.Parse(layout, 1)
			assert.ErrorIs(t, err, grid.ErrBadLayout)
		})
	}
	_, err := grid.Parse("  \n ", 1)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
}

func TestCoord_Manhattan(t *testing.T) {
	a := grid.Coord{Row: 1, Col: 5}
	b := grid.Coord{Row: 4, Col: 2}
	assert.Equal(t, 6, a.Manhattan(b))
	assert.Equal(t, 6, b.Manhattan(a))
	assert.Equal(t, "(1,5)", a.String())
}
