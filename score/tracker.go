// Package score counts obstacle passes
package score

import "github.com/lixenwraith/flapper/obstacle"

// Tracker increments once each time the obstacle's continuous motion crosses the scoring line
type Tracker struct {
	line  float64
	score int
	best  int
}

// NewTracker creates a tracker that scores when X moves from above line to at-or-below it
func NewTracker(line float64) *Tracker {
	return &Tracker{line: line}
}

// Observe inspects one obstacle step and returns true if it scored
// Only the continuous segment [From, To] is considered; a recycle jump back to the right edge never scores
func (t *Tracker) Observe(sw obstacle.Sweep) bool {
	if sw.From > t.line && sw.To <= t.line {
		t.score++
		if t.score > t.best {
			t.best = t.score
		}
		return true
	}
	return false
}

// Reset zeroes the current score; best is kept for the session
func (t *Tracker) Reset() {
	t.score = 0
}

func (t *Tracker) Score() int { return t.score }
func (t *Tracker) Best() int { return t.best }
func (t *Tracker) Line() float64 { return t.line }
