package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lineaview-labs/lineaview/internal/lineage"
	"github.com/lineaview-labs/lineaview/internal/viewport"
	"github.com/lineaview-labs/lineaview/pkg/geo"
)

// canvas is a character grid the scene is projected onto. Each cell holds
// an already-styled string so overlapping draws simply overwrite.
type canvas struct {
	width  int
	height int
	cells  [][]string
}

func newCanvas(width, height int) *canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	cells := make([][]string, height)
	for i := range cells {
		row := make([]string, width)
		for j := range row {
			row[j] = " "
		}
		cells[i] = row
	}
	return &canvas{width: width, height: height, cells: cells}
}

func (c *canvas) set(col, row int, s string) {
	if col < 0 || col >= c.width || row < 0 || row >= c.height {
		return
	}
	c.cells[row][col] = s
}

// toCell projects a screen-space point to grid coordinates.
func toCell(p geo.Point) (col, row int) {
	return int(p.X / cellWidth), int(p.Y / cellHeight)
}

// drawNode renders one node box through the transform. The header row
// carries the table name; expanded nodes list their columns below it.
func (c *canvas) drawNode(t viewport.Transform, n viewport.SceneNode, focused bool) {
	box := t.BoxToScreen(n.Box)
	left, top := toCell(box.TopLeft)
	right, bottom := toCell(geo.Point{X: box.Right(), Y: box.Bottom()})
	if right <= left {
		right = left + 1
	}
	if bottom <= top {
		bottom = top + 1
	}

	style := kindStyle(n.Kind)

	for col := left; col <= right; col++ {
		c.set(col, top, style.Render("─"))
		c.set(col, bottom, style.Render("─"))
	}
	for row := top; row <= bottom; row++ {
		c.set(left, row, style.Render("│"))
		c.set(right, row, style.Render("│"))
	}
	c.set(left, top, style.Render("┌"))
	c.set(right, top, style.Render("┐"))
	c.set(left, bottom, style.Render("└"))
	c.set(right, bottom, style.Render("┘"))

	nameStyle := style
	if focused {
		nameStyle = styleFocused.Inherit(style)
	}
	c.writeText(left+1, top+1, right-left-1, n.Name, nameStyle)

	if !n.Expanded {
		return
	}
	for i, col := range n.Columns {
		row := top + 2 + i
		if row >= bottom {
			break
		}
		colStyle := style
		prefix := "  "
		if col.Highlighted {
			colStyle = styleHighlight
			prefix = "▸ "
		}
		c.writeText(left+1, row, right-left-1, prefix+col.Name, colStyle)
	}
}

// drawEdge marks the bezier endpoints and a midpoint hint. Full curve
// rasterization is not worth it at cell resolution.
func (c *canvas) drawEdge(t viewport.Transform, e viewport.SceneEdge) {
	style := styleEdge
	if e.Highlighted {
		style = styleHighlight
	}

	for _, sample := range []float64{0, 0.25, 0.5, 0.75, 1} {
		col, row := toCell(t.ToScreen(e.Path.At(sample)))
		c.set(col, row, style.Render("·"))
	}
}

func (c *canvas) writeText(col, row, maxWidth int, text string, style lipgloss.Style) {
	if maxWidth <= 0 {
		return
	}
	runes := []rune(text)
	if len(runes) > maxWidth {
		runes = runes[:maxWidth]
	}
	for i, r := range runes {
		c.set(col+i, row, style.Render(string(r)))
	}
}

func (c *canvas) String() string {
	rows := make([]string, c.height)
	for i, row := range c.cells {
		rows[i] = strings.Join(row, "")
	}
	return strings.Join(rows, "\n")
}

func kindStyle(kind lineage.NodeKind) lipgloss.Style {
	switch kind {
	case lineage.KindSource:
		return styleSource
	case lineage.KindTarget:
		return styleTarget
	default:
		return styleTransform
	}
}
