package config

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathviz/grid"
)

// Defaults of the original board.
const (
	DefaultRows       = 20
	DefaultCols       = 50
	DefaultCellSizePx = 25
)

// Horizontal chrome subtracted from the viewport width.
const widthMargin = 15

// ErrBadViewport indicates a viewport too small to hold a single cell, or a
// non-positive cell size.
var ErrBadViewport = errors.New("config: viewport cannot hold a grid")

// Default returns the configuration of the original board.
func Default() grid.Config {
	return grid.Config{Rows: DefaultRows, Cols: DefaultCols, CellSizePx: DefaultCellSizePx}
}

// heightMargin is the vertical chrome for a given viewport width.
func heightMargin(width int) int {
	switch {
	case width > 1000:
		return 70
	case width > 500:
		return 60
	default:
		return 50
	}
}

// Layout fits square cells of cellPx pixels into a width×height viewport.
func Layout(width, height, cellPx int) (grid.Config, error) {
	if cellPx < 1 {
		return grid.Config{}, fmt.Errorf("%w: cell size %d", ErrBadViewport, cellPx)
	}
	cols := (width - widthMargin) / cellPx
	rows := (height - heightMargin(width)) / cellPx
	if rows < 1 || cols < 1 {
		return grid.Config{}, fmt.Errorf("%w: %dx%d px at %d px per cell", ErrBadViewport, width, height, cellPx)
	}
	return grid.Config{Rows: rows, Cols: cols, CellSizePx: cellPx}, nil
}

// DefaultEndpoints places start and finish on the middle row, at 30% and
// 70% of the width. On the default board that is (10,15) and (10,35).
func DefaultEndpoints(cfg grid.Config) (start, finish grid.Coord) {
	row := cfg.Rows / 2
	return grid.Coord{Row: row, Col: cfg.Cols * 3 / 10}, grid.Coord{Row: row, Col: cfg.Cols * 7 / 10}
}
