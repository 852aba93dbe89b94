package gridgraph

import "strings"

// Glyphs used by Render.
const (
	GlyphWall    = '#'
	GlyphOpen    = ' '
	GlyphStart   = 'S'
	GlyphEnd     = 'E'
	GlyphPath    = '*'
	GlyphVisited = '.'
)

// Render draws the grid as text, one line per row. Cells on path are drawn
// with GlyphPath, cells in visited with GlyphVisited; start and end markers
// win over both. Either argument may be nil.
func (g *Grid) Render(path []Cell, visited []Cell) string {
	canvas := make([][]rune, g.Height)
	for r := range canvas {
		canvas[r] = make([]rune, g.Width)
		for c := range canvas[r] {
			if g.cells[r][c] == Wall {
				canvas[r][c] = GlyphWall
			} else {
				canvas[r][c] = GlyphOpen
			}
		}
	}
	paint := func(cells []Cell, glyph rune) {
		for _, c := range cells {
			if g.InBounds(c) {
				canvas[c.Row][c.Col] = glyph
			}
		}
	}
	paint(visited, GlyphVisited)
	paint(path, GlyphPath)
	paint([]Cell{g.Start}, GlyphStart)
	paint([]Cell{g.End}, GlyphEnd)

	var sb strings.Builder
	border := "+" + strings.Repeat("-", g.Width) + "+\n"
	sb.WriteString(border)
	for r := range canvas {
		sb.WriteByte('|')
		sb.WriteString(string(canvas[r]))
		sb.WriteString("|\n")
	}
	sb.WriteString(border)
	return sb.String()
}

// String renders the bare grid with its endpoints.
func (g *Grid) String() string {
	return g.Render(nil, nil)
}
