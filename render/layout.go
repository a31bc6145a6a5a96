package render

import (
	"math"

	"github.com/lixenwraith/flapper/vmath"
)

// Layout maps world pixels onto a grid of terminal cells
// The world is stretched to fill the grid on both axes
type Layout struct {
	Cols, Rows int
	ScaleX     float64 // Cells per world pixel, horizontal
	ScaleY     float64 // Cells per world pixel, vertical
	WorldW     float64
	WorldH     float64
}

// NewLayout fits a worldW x worldH viewport into cols x rows cells
func NewLayout(cols, rows int, worldW, worldH float64) Layout {
	l := Layout{Cols: cols, Rows: rows, WorldW: worldW, WorldH: worldH}
	if worldW > 0 {
		l.ScaleX = float64(cols) / worldW
	}
	if worldH > 0 {
		l.ScaleY = float64(rows) / worldH
	}
	return l
}

// Cell converts a world point to a cell coordinate, ok is false outside the grid
func (l Layout) Cell(p vmath.Point) (cx, cy int, ok bool) {
	if !vmath.IsFinite(p.X) || !vmath.IsFinite(p.Y) {
		return 0, 0, false
	}
	cx = int(math.Floor(p.X * l.ScaleX))
	cy = int(math.Floor(p.Y * l.ScaleY))
	ok = cx >= 0 && cx < l.Cols && cy >= 0 && cy < l.Rows
	return cx, cy, ok
}

// Span converts a world rect to the half-open cell range it covers, clipped to the grid
// Empty ranges have x0 >= x1 or y0 >= y1
func (l Layout) Span(r vmath.Rect) (x0, y0, x1, y1 int) {
	if !vmath.IsFinite(r.X) || !vmath.IsFinite(r.Y) || !vmath.IsFinite(r.W) || !vmath.IsFinite(r.H) {
		return 0, 0, 0, 0
	}
	x0 = clampInt(int(math.Floor(r.X*l.ScaleX)), 0, l.Cols)
	y0 = clampInt(int(math.Floor(r.Y*l.ScaleY)), 0, l.Rows)
	x1 = clampInt(int(math.Ceil((r.X+r.W)*l.ScaleX)), 0, l.Cols)
	y1 = clampInt(int(math.Ceil((r.Y+r.H)*l.ScaleY)), 0, l.Rows)
	return x0, y0, x1, y1
}

// Row converts a world y to a grid row, clamped to the grid
func (l Layout) Row(y float64) int {
	if !vmath.IsFinite(y) {
		return l.Rows - 1
	}
	return clampInt(int(math.Floor(y*l.ScaleY)), 0, l.Rows-1)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
