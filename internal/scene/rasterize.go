package scene

import (
	"math"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/charmbracelet/lipgloss"
)

const (
	fullBlock = '█'
	dimBlock  = '▒'
	vertRune  = '│'
	horizRune = '─'
	pointRune = '·'
)

// Rasterizer paints a pixel-space scene onto a terminal cell grid using an
// ntcharts canvas. The viewport is mapped uniformly onto the grid, so the
// scene keeps working in pixels while the host decides how many cells it
// can spare.
type Rasterizer struct {
	cols, rows int
	canvas     canvas.Model
}

// NewRasterizer builds a rasterizer for a cols x rows cell grid.
func NewRasterizer(cols, rows int) *Rasterizer {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &Rasterizer{cols: cols, rows: rows, canvas: canvas.New(cols, rows)}
}

// Resize recreates the cell grid.
func (r *Rasterizer) Resize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	r.cols = cols
	r.rows = rows
	r.canvas = canvas.New(cols, rows)
}

// Size returns the grid dimensions.
func (r *Rasterizer) Size() (cols, rows int) {
	return r.cols, r.rows
}

// CellToPixel maps a cell coordinate back into scene pixels, targeting the
// cell center. Used by the host to route mouse events into the scene.
func (r *Rasterizer) CellToPixel(cx, cy int, viewportW, viewportH float64) (float64, float64) {
	return (float64(cx) + 0.5) * viewportW / float64(r.cols),
		(float64(cy) + 0.5) * viewportH / float64(r.rows)
}

// Render paints the scene for the given pixel viewport and returns the
// styled cell grid as a string.
func (r *Rasterizer) Render(s *Scene, viewportW, viewportH float64) string {
	r.canvas.Clear()
	if viewportW <= 0 || viewportH <= 0 {
		return r.canvas.View()
	}
	cellW := viewportW / float64(r.cols)
	cellH := viewportH / float64(r.rows)

	for _, layer := range s.Layers() {
		layer.Each(func(n *Node) {
			switch n.Kind {
			case KindRect:
				r.drawRect(n, cellW, cellH)
			case KindLine:
				r.drawLine(n, cellW, cellH)
			case KindText:
				r.drawText(n, cellW, cellH)
			}
		})
	}
	return r.canvas.View()
}

func (r *Rasterizer) set(cx, cy int, rn rune, color string) {
	if cx < 0 || cy < 0 || cx >= r.cols || cy >= r.rows {
		return
	}
	style := lipgloss.NewStyle()
	if color != "" {
		style = style.Foreground(lipgloss.Color(color))
	}
	r.canvas.SetCell(canvas.Point{X: cx, Y: cy}, canvas.NewCellWithStyle(rn, style))
}

func cellIndex(px, cellSize float64) int {
	return int(math.Floor(px / cellSize))
}

func (r *Rasterizer) drawRect(n *Node, cellW, cellH float64) {
	if n.Hidden || n.W <= 0 || n.H <= 0 || math.IsNaN(n.X) || math.IsNaN(n.Y) || math.IsNaN(n.W) || math.IsNaN(n.H) {
		return
	}
	c0 := cellIndex(n.X, cellW)
	c1 := cellIndex(n.X+n.W-1e-9, cellW)
	r0 := cellIndex(n.Y, cellH)
	r1 := cellIndex(n.Y+n.H-1e-9, cellH)

	rn := rune(fullBlock)
	if n.Opacity < 1 {
		rn = dimBlock
	}
	for cy := r0; cy <= r1; cy++ {
		for cx := c0; cx <= c1; cx++ {
			r.set(cx, cy, rn, n.Fill)
		}
	}
}

func (r *Rasterizer) drawLine(n *Node, cellW, cellH float64) {
	if n.Hidden {
		return
	}
	c0, r0 := cellIndex(n.X, cellW), cellIndex(n.Y, cellH)
	c1, r1 := cellIndex(n.X2, cellW), cellIndex(n.Y2, cellH)
	switch {
	case c0 == c1:
		if r1 < r0 {
			r0, r1 = r1, r0
		}
		for cy := r0; cy <= r1; cy++ {
			r.set(c0, cy, vertRune, n.Fill)
		}
	case r0 == r1:
		if c1 < c0 {
			c0, c1 = c1, c0
		}
		for cx := c0; cx <= c1; cx++ {
			r.set(cx, r0, horizRune, n.Fill)
		}
	default:
		// Diagonals only appear in degenerate layouts; step point by point.
		steps := int(math.Max(math.Abs(float64(c1-c0)), math.Abs(float64(r1-r0))))
		for i := 0; i <= steps; i++ {
			t := float64(i) / math.Max(1, float64(steps))
			r.set(c0+int(t*float64(c1-c0)), r0+int(t*float64(r1-r0)), pointRune, n.Fill)
		}
	}
}

func (r *Rasterizer) drawText(n *Node, cellW, cellH float64) {
	if n.Hidden || n.Text == "" {
		return
	}
	runes := []rune(n.Text)
	cx := cellIndex(n.X, cellW)
	cy := cellIndex(n.Y, cellH)
	if n.AlignRight {
		cx -= len(runes) - 1
	}
	for i, rn := range runes {
		r.set(cx+i, cy, rn, n.Fill)
	}
}
