package scenario

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"github.com/katalvlaran/pathviz/internal/ctxlog"
)

// Load reads and decodes the scenario file at path.
func Load(ctx context.Context, path string, vp Viewport) (*Scenario, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading scenario.", "path", path)

	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse scenario %s: %w", path, diags)
	}
	return decode(ctx, path, file, vp)
}

// Parse decodes a scenario held in memory; filename only labels diagnostics.
func Parse(ctx context.Context, src []byte, filename string, vp Viewport) (*Scenario, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse scenario %s: %w", filename, diags)
	}
	return decode(ctx, filename, file, vp)
}

func decode(ctx context.Context, name string, file *hcl.File, vp Viewport) (*Scenario, error) {
	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, evalContext(vp), &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode scenario %s: %w", name, diags)
	}

	sc, err := build(&root, vp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	ctxlog.FromContext(ctx).Debug("Scenario loaded.",
		"name", name, "rows", sc.Board.Rows(), "cols", sc.Board.Cols(),
		"walls", len(sc.Board.Walls()), "maze", sc.Maze != nil)
	return sc, nil
}

// evalContext exposes the viewport and a few numeric helpers to expressions.
func evalContext(vp Viewport) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"viewport": cty.ObjectVal(map[string]cty.Value{
				"width":  cty.NumberIntVal(int64(vp.Width)),
				"height": cty.NumberIntVal(int64(vp.Height)),
			}),
		},
		Functions: map[string]function.Function{
			"floor": stdlib.FloorFunc,
			"ceil":  stdlib.CeilFunc,
			"min":   stdlib.MinFunc,
			"max":   stdlib.MaxFunc,
		},
	}
}
