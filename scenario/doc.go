// Package scenario loads a board setup from an HCL file.
//
// A scenario describes the board (size, endpoints, walls or an ASCII
// layout), an optional maze generator and the replay timing:
//
//	board {
//	  cell_size = 25
//	  rows      = floor((viewport.height - 70) / 25)
//	  cols      = min(50, floor((viewport.width - 15) / 25))
//	  start     = [10, 15]
//	  finish    = [10, 35]
//	  walls     = [[9, 20], [10, 20], [11, 20]]
//	}
//
//	maze {
//	  kind = "stripes"
//	  seed = 7
//	}
//
//	timing {
//	  visit_delay = "10ms"
//	  path_delay  = "50ms"
//	}
//
// Expressions are evaluated with a viewport object (width, height) and the
// numeric functions floor, ceil, min and max. Every block and attribute is
// optional; missing ones fall back to the defaults of the original board.
package scenario
