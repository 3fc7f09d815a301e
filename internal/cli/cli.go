package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/pathviz/internal/app"
	"github.com/katalvlaran/pathviz/internal/config"
	"github.com/katalvlaran/pathviz/session"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("pathviz", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
pathviz - Dijkstra and maze generation, replayed step by step in the terminal.

Usage:
  pathviz [options] [SCENARIO.hcl]

Arguments:
  SCENARIO.hcl
    Optional HCL file describing the board, a maze and the replay timing.

Options:
`)
		flagSet.PrintDefaults()
	}

	rowsFlag := flagSet.Int("rows", 0, "Board rows. 0 derives them from the viewport or uses the default board.")
	colsFlag := flagSet.Int("cols", 0, "Board columns. 0 derives them from the viewport or uses the default board.")
	vpWidthFlag := flagSet.Int("viewport-width", 0, "Viewport width in pixels used to size the board.")
	vpHeightFlag := flagSet.Int("viewport-height", 0, "Viewport height in pixels used to size the board.")
	cellFlag := flagSet.Int("cell-size", config.DefaultCellSizePx, "Cell size in pixels.")
	mazeFlag := flagSet.String("maze", "none", "Maze to generate first. Options: 'none', 'random' or 'stripes'.")
	seedFlag := flagSet.Int64("seed", 0, "Maze seed. 0 picks a time-based seed.")
	visitFlag := flagSet.Duration("visit-delay", session.DefaultVisitDelay, "Delay between visited-node frames.")
	pathFlag := flagSet.Duration("path-delay", session.DefaultPathDelay, "Delay between shortest-path frames.")
	wallFlag := flagSet.Duration("wall-delay", session.DefaultWallDelay, "Delay between maze wall frames.")
	everyFlag := flagSet.Int("every", 1, "Draw only every n-th replay step.")
	clearFlag := flagSet.Bool("clear", false, "Clear the terminal between frames.")
	noColorFlag := flagSet.Bool("no-color", false, "Disable colored output.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "at most one scenario file may be given"}
	}
	path := flagSet.Arg(0)
	slog.Debug("Scenario path determined.", "path", path)

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	explicit := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	slog.Debug("CLI parameter validation complete.")

	cfg, err := app.NewConfig(app.Config{
		ScenarioPath:   path,
		Rows:           *rowsFlag,
		Cols:           *colsFlag,
		ViewportWidth:  *vpWidthFlag,
		ViewportHeight: *vpHeightFlag,
		CellSize:       *cellFlag,
		Maze:           strings.ToLower(*mazeFlag),
		Seed:           *seedFlag,
		VisitDelay:     *visitFlag,
		PathDelay:      *pathFlag,
		WallDelay:      *wallFlag,
		Every:          *everyFlag,
		Clear:          *clearFlag,
		Color:          !*noColorFlag,
		LogFormat:      logFormat,
		LogLevel:       logLevel,
		Explicit:       explicit,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}
