// Package render draws engine snapshots onto a tcell screen
// Rendering is read-only: it consumes a Snapshot and never touches the Game
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/flapper/engine"
	"github.com/lixenwraith/flapper/status"
	"github.com/lixenwraith/flapper/vmath"
)

const (
	glyphObstacle = '█'
	glyphGround   = '▀'
	glyphLevel    = '>'
	glyphClimb    = '/'
	glyphDive     = '\\'

	// Rotation beyond this many radians switches the avatar glyph
	tiltThreshold = 0.3

	bannerGameOver = "GAME OVER"
	bannerRestart  = "tap to restart"
)

var (
	RgbBackground = tcell.NewRGBColor(78, 192, 202)
	RgbObstacle   = tcell.NewRGBColor(116, 191, 46)
	RgbGround     = tcell.NewRGBColor(222, 216, 149)
	RgbAvatar     = tcell.NewRGBColor(250, 206, 32)
	RgbText       = tcell.NewRGBColor(255, 255, 255)
	RgbBanner     = tcell.NewRGBColor(230, 80, 50)
	RgbStatusBar  = tcell.NewRGBColor(40, 40, 40)
)

// TerminalRenderer handles all terminal rendering
// The bottom row is reserved for the status bar, the playfield fills the rest
type TerminalRenderer struct {
	screen tcell.Screen
	stats  *status.Counters // optional, status bar skipped when nil
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer(screen tcell.Screen, stats *status.Counters) *TerminalRenderer {
	return &TerminalRenderer{screen: screen, stats: stats}
}

// RenderFrame renders one snapshot and shows it
func (r *TerminalRenderer) RenderFrame(snap engine.Snapshot) {
	r.Draw(snap)
	r.screen.Show()
}

// Draw composes the frame into the screen buffer without showing it
func (r *TerminalRenderer) Draw(snap engine.Snapshot) {
	width, height := r.screen.Size()
	r.screen.Clear()
	if width <= 0 || height <= 0 {
		return
	}

	fieldRows := height
	if r.stats != nil && height > 1 {
		fieldRows = height - 1
	}
	layout := NewLayout(width, fieldRows, snap.ViewportWidth, snap.ViewportHeight)
	base := tcell.StyleDefault.Background(RgbBackground)

	r.fill(0, 0, width, fieldRows, ' ', base)
	r.drawObstacle(layout, snap, base)
	r.drawGround(layout, snap, base)
	r.drawAvatar(layout, snap, base)
	r.drawScore(layout, snap, base)
	if snap.Phase == engine.PhaseGameOver {
		r.drawBanner(layout, snap, base)
	}
	if fieldRows < height {
		r.drawStatusBar(fieldRows, width, snap)
	}
}

func (r *TerminalRenderer) drawObstacle(l Layout, snap engine.Snapshot, base tcell.Style) {
	style := base.Foreground(RgbObstacle)
	for _, rect := range [2]vmath.Rect{snap.Obstacle.Top, snap.Obstacle.Bottom} {
		x0, y0, x1, y1 := l.Span(rect)
		r.fill(x0, y0, x1-x0, y1-y0, glyphObstacle, style)
	}
}

func (r *TerminalRenderer) drawGround(l Layout, snap engine.Snapshot, base tcell.Style) {
	row := l.Row(snap.GroundDrawY)
	style := base.Foreground(RgbGround)
	r.fill(0, row, l.Cols, l.Rows-row, glyphGround, style)
}

func (r *TerminalRenderer) drawAvatar(l Layout, snap engine.Snapshot, base tcell.Style) {
	cx, cy, ok := l.Cell(snap.Avatar.Bounds.Center())
	if !ok {
		return
	}
	style := base.Foreground(RgbAvatar).Bold(true)
	r.screen.SetContent(cx, cy, AvatarGlyph(snap.Avatar.Rotation), nil, style)
}

// AvatarGlyph picks a glyph that approximates the avatar tilt
// Negative rotation is nose-up in screen coordinates
func AvatarGlyph(rotation float64) rune {
	switch {
	case rotation < -tiltThreshold:
		return glyphClimb
	case rotation > tiltThreshold:
		return glyphDive
	default:
		return glyphLevel
	}
}

// drawScore prints the current score right-aligned on the top row
func (r *TerminalRenderer) drawScore(l Layout, snap engine.Snapshot, base tcell.Style) {
	text := fmt.Sprintf("%d", snap.Score)
	r.text(l.Cols-len(text)-1, 0, text, base.Foreground(RgbText).Bold(true))
}

func (r *TerminalRenderer) drawBanner(l Layout, snap engine.Snapshot, base tcell.Style) {
	mid := l.Rows / 2
	style := base.Foreground(RgbBanner).Bold(true)
	r.centered(l.Cols, mid-1, bannerGameOver, style)
	r.centered(l.Cols, mid, fmt.Sprintf("score %d  best %d", snap.Score, snap.Best), base.Foreground(RgbText))
	r.centered(l.Cols, mid+1, bannerRestart, base.Foreground(RgbText))
}

// drawStatusBar shows phase, round and session counters on the reserved row
func (r *TerminalRenderer) drawStatusBar(row, width int, snap engine.Snapshot) {
	style := tcell.StyleDefault.Background(RgbStatusBar).Foreground(RgbText)
	r.fill(0, row, width, 1, ' ', style)

	st := r.stats.Stats()
	line := fmt.Sprintf(" %s  round:%d  best:%d  frames:%d  taps:%d  dropped:%d  dt:%.3f",
		snap.Phase, snap.Round, snap.Best,
		st.Frames, st.Taps, st.TapsDropped, st.LastDelta,
	)
	r.text(0, row, line, style)
}

func (r *TerminalRenderer) fill(x, y, w, h int, ch rune, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			r.screen.SetContent(col, row, ch, nil, style)
		}
	}
}

// text writes s from (x, y), clipping at the screen edge
func (r *TerminalRenderer) text(x, y int, s string, style tcell.Style) {
	width, _ := r.screen.Size()
	for i, ch := range []rune(s) {
		if x+i < 0 || x+i >= width {
			continue
		}
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *TerminalRenderer) centered(width, y int, s string, style tcell.Style) {
	r.text((width-len([]rune(s)))/2, y, s, style)
}
