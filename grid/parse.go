package grid

import (
	"fmt"
	"strings"
)

// Parse builds a grid from an ASCII layout, one line per row:
//
//	S  start        F  finish
//	#  wall         .  open
//
// 'o' and '*' (visited / path, as written by String) read back as open
// cells, so a rendered frame can be parsed again. Blank lines and
// surrounding whitespace are ignored. Exactly one S and one F are required.
func Parse(layout string, cellSizePx int) (*Grid, error) {
	var lines []string
	for _, l := range strings.Split(layout, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(lines[0])

	var (
		walls         []Coord
		start, finish = None, None
	)
	for r, l := range lines {
		if len(l) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadLayout, r, len(l), cols)
		}
		for c := 0; c < cols; c++ {
			here := Coord{Row: r, Col: c}
			switch l[c] {
			case 'S':
				if start != None {
					return nil, fmt.Errorf("%w: second start at %v", ErrBadLayout, here)
				}
				start = here
			case 'F':
				if finish != None {
					return nil, fmt.Errorf("%w: second finish at %v", ErrBadLayout, here)
				}
				finish = here
			case '#':
				walls = append(walls, here)
			case '.', 'o', '*':
			default:
				return nil, fmt.Errorf("%w: unknown cell %q at %v", ErrBadLayout, l[c], here)
			}
		}
	}
	if start == None || finish == None {
		return nil, fmt.Errorf("%w: layout needs one S and one F", ErrBadLayout)
	}

	g, err := New(Config{Rows: len(lines), Cols: cols, CellSizePx: cellSizePx}, start, finish)
	if err != nil {
		return nil, err
	}
	return g.ApplyWalls(walls)
}
