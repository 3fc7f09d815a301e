package scenario

import (
	"fmt"
	"time"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/internal/config"
	"github.com/katalvlaran/pathviz/maze"
	"github.com/katalvlaran/pathviz/session"
)

// build turns decoded blocks into a Scenario, applying defaults.
func build(root *fileRoot, vp Viewport) (*Scenario, error) {
	board, err := buildBoard(root.Board, vp)
	if err != nil {
		return nil, err
	}
	mz, err := buildMaze(root.Maze)
	if err != nil {
		return nil, err
	}
	delays, err := buildTiming(root.Timing)
	if err != nil {
		return nil, err
	}
	return &Scenario{Board: board, Maze: mz, Delays: delays}, nil
}

func buildBoard(b *boardBlock, vp Viewport) (*grid.Grid, error) {
	if b == nil {
		b = &boardBlock{}
	}
	cell := config.DefaultCellSizePx
	if b.CellSize != nil {
		cell = *b.CellSize
	}
	if cell < 1 {
		return nil, fmt.Errorf("%w: cell_size %d", ErrInvalid, cell)
	}

	if b.Layout != nil {
		if b.Rows != nil || b.Cols != nil || b.Start != nil || b.Finish != nil {
			return nil, fmt.Errorf("%w: layout excludes rows, cols, start and finish", ErrInvalid)
		}
		g, err := grid.Parse(*b.Layout, cell)
		if err != nil {
			return nil, err
		}
		return applyWalls(g, b.Walls)
	}

	cfg, err := boardConfig(b, vp, cell)
	if err != nil {
		return nil, err
	}
	start, finish := config.DefaultEndpoints(cfg)
	if b.Start != nil {
		if start, err = coord("start", b.Start); err != nil {
			return nil, err
		}
	}
	if b.Finish != nil {
		if finish, err = coord("finish", b.Finish); err != nil {
			return nil, err
		}
	}
	g, err := grid.New(cfg, start, finish)
	if err != nil {
		return nil, err
	}
	return applyWalls(g, b.Walls)
}

// boardConfig resolves rows and cols: explicit values win, then the
// viewport, then the default board.
func boardConfig(b *boardBlock, vp Viewport, cell int) (grid.Config, error) {
	cfg := config.Default()
	cfg.CellSizePx = cell
	if vp != (Viewport{}) {
		fitted, err := config.Layout(vp.Width, vp.Height, cell)
		if err != nil {
			return grid.Config{}, err
		}
		cfg = fitted
	}
	if b.Rows != nil {
		cfg.Rows = *b.Rows
	}
	if b.Cols != nil {
		cfg.Cols = *b.Cols
	}
	return cfg, nil
}

func applyWalls(g *grid.Grid, walls [][]int) (*grid.Grid, error) {
	if len(walls) == 0 {
		return g, nil
	}
	coords := make([]grid.Coord, 0, len(walls))
	for i, w := range walls {
		c, err := coord(fmt.Sprintf("walls[%d]", i), w)
		if err != nil {
			return nil, err
		}
		coords = append(coords, c)
	}
	return g.ApplyWalls(coords)
}

func coord(name string, v []int) (grid.Coord, error) {
	if len(v) != 2 {
		return grid.Coord{}, fmt.Errorf("%w: %s must be [row, col], got %d values", ErrInvalid, name, len(v))
	}
	return grid.Coord{Row: v[0], Col: v[1]}, nil
}

func buildMaze(b *mazeBlock) (*Maze, error) {
	if b == nil {
		return nil, nil
	}
	kind := maze.Kind(b.Kind)
	switch kind {
	case maze.KindNone, maze.KindRandom, maze.KindStripes:
	default:
		return nil, fmt.Errorf("%w: %w %q", ErrInvalid, maze.ErrUnknownKind, b.Kind)
	}
	if p := b.Probability; p != nil && (*p < 0 || *p > 1) {
		return nil, fmt.Errorf("%w: probability %v outside [0,1]", ErrInvalid, *p)
	}
	if w := b.StripeWidth; w != nil && *w < 2 {
		return nil, fmt.Errorf("%w: stripe_width %d below 2", ErrInvalid, *w)
	}
	return &Maze{Kind: kind, Seed: b.Seed, Probability: b.Probability, StripeWidth: b.StripeWidth}, nil
}

// Generator builds the maze generator the block describes. A missing seed
// is replaced by fallbackSeed. It returns nil for maze.KindNone.
func (m *Maze) Generator(fallbackSeed int64) (maze.Generator, error) {
	seed := fallbackSeed
	if m.Seed != nil {
		seed = *m.Seed
	}
	opts := []maze.Option{maze.WithSeed(seed)}
	if m.Probability != nil {
		opts = append(opts, maze.WithProbability(*m.Probability))
	}
	if m.StripeWidth != nil {
		opts = append(opts, maze.WithStripeWidth(*m.StripeWidth))
	}
	return maze.New(m.Kind, opts...)
}

func buildTiming(b *timingBlock) (session.Options, error) {
	o := session.DefaultOptions()
	if b == nil {
		return o, nil
	}
	for _, f := range []struct {
		name string
		src  *string
		dst  *time.Duration
	}{
		{"visit_delay", b.VisitDelay, &o.VisitDelay},
		{"path_delay", b.PathDelay, &o.PathDelay},
		{"wall_delay", b.WallDelay, &o.WallDelay},
	} {
		if f.src == nil {
			continue
		}
		d, err := time.ParseDuration(*f.src)
		if err != nil {
			return session.Options{}, fmt.Errorf("%w: %s: %w", ErrInvalid, f.name, err)
		}
		if d < 0 {
			return session.Options{}, fmt.Errorf("%w: %s is negative", ErrInvalid, f.name)
		}
		*f.dst = d
	}
	return o, nil
}
