package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/pathviz/maze"
)

// Config holds everything an App needs for one run.
type Config struct {
	ScenarioPath string // optional HCL scenario

	Rows           int // 0 derives from the viewport or the default board
	Cols           int
	ViewportWidth  int
	ViewportHeight int
	CellSize       int

	Maze string
	Seed int64 // 0 picks a time-based seed

	VisitDelay time.Duration
	PathDelay  time.Duration
	WallDelay  time.Duration

	Every int  // draw every n-th replay step
	Clear bool // clear the terminal between frames
	Color bool

	LogFormat string
	LogLevel  string

	// Explicit names the flags given on the command line. They override the
	// values of a scenario file.
	Explicit map[string]bool
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	var errs []error
	if cfg.Rows < 0 || cfg.Cols < 0 {
		errs = append(errs, fmt.Errorf("rows and cols must not be negative, got %dx%d", cfg.Rows, cfg.Cols))
	}
	if cfg.ViewportWidth < 0 || cfg.ViewportHeight < 0 {
		errs = append(errs, errors.New("viewport size must not be negative"))
	}
	if cfg.CellSize < 1 {
		errs = append(errs, fmt.Errorf("cell size must be positive, got %d", cfg.CellSize))
	}
	switch maze.Kind(cfg.Maze) {
	case maze.KindNone, maze.KindRandom, maze.KindStripes:
	default:
		errs = append(errs, fmt.Errorf("%w %q", maze.ErrUnknownKind, cfg.Maze))
	}
	if cfg.VisitDelay < 0 || cfg.PathDelay < 0 || cfg.WallDelay < 0 {
		errs = append(errs, errors.New("delays must not be negative"))
	}
	if cfg.Every < 1 {
		errs = append(errs, fmt.Errorf("every must be at least 1, got %d", cfg.Every))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	if cfg.Explicit == nil {
		cfg.Explicit = map[string]bool{}
	}
	return &cfg, nil
}
