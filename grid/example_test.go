package grid_test

import (
	"fmt"

	"github.com/katalvlaran/pathviz/grid"
)

// ExampleGrid_ToggleWall shows copy-on-write mutation: the original
// snapshot keeps its state while the new one carries the wall.
func ExampleGrid_ToggleWall() {
	g, _ := grid.New(grid.Config{Rows: 3, Cols: 4}, grid.Coord{Row: 1, Col: 0}, grid.Coord{Row: 1, Col: 3})

	walled, _ := g.ToggleWall(1, 2)
	fmt.Println(g)
	fmt.Println()
	fmt.Println(walled)

	_, err := walled.ToggleWall(1, 0)
	fmt.Println(err)
	// Output:
	// ....
	// S..F
	// ....
	//
	// ....
	// S.#F
	// ....
	// grid: start and finish cells cannot be walls: toggle (1,0)
}

// ExampleParse reads an ASCII board and lists its open regions.
func ExampleParse() {
	g, err := grid.Parse(`
		S.#.
		..#F
	`, 25)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, comp := range g.Components() {
		fmt.Println(i, comp)
	}
	// Output:
	// 0 [(0,0) (1,0) (0,1) (1,1)]
	// 1 [(0,3) (1,3)]
}
