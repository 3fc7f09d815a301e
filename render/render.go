// Package render draws grid snapshots as terminal frames.
//
// Every cell is one glyph (see grid.Glyph). With color enabled each glyph
// is styled with lipgloss; the styles degrade to plain text on writers that
// are not color terminals.
package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/pathviz/grid"
)

// Renderer turns grids into frames.
type Renderer struct {
	color  bool
	styles map[byte]lipgloss.Style
}

// New returns a renderer whose color profile is detected from w. With
// color false frames are plain grid.Glyph text.
func New(w io.Writer, color bool) *Renderer {
	lr := lipgloss.NewRenderer(w)
	return &Renderer{
		color: color,
		styles: map[byte]lipgloss.Style{
			'S': lr.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10")),
			'F': lr.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("9")),
			'#': lr.NewStyle().Foreground(lipgloss.Color("240")).Background(lipgloss.Color("240")),
			'*': lr.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
			'o': lr.NewStyle().Foreground(lipgloss.Color("14")),
			'.': lr.NewStyle().Foreground(lipgloss.Color("241")),
		},
	}
}

// Frame draws g, one line per row, without a trailing newline.
func (r *Renderer) Frame(g *grid.Grid) string {
	return r.frame(g, nil)
}

// frame draws g with overlay marks applied on top of the snapshot.
func (r *Renderer) frame(g *grid.Grid, overlay func(*grid.Node)) string {
	var b strings.Builder
	for row, nodes := range g.Nodes() {
		if row > 0 {
			b.WriteByte('\n')
		}
		for _, n := range nodes {
			if overlay != nil {
				overlay(&n)
			}
			b.WriteString(r.cell(grid.Glyph(n)))
		}
	}
	return b.String()
}

func (r *Renderer) cell(glyph byte) string {
	if !r.color {
		return string(glyph)
	}
	return r.styles[glyph].Render(string(glyph))
}
