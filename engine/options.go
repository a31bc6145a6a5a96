package engine

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/flapper/obstacle"
	"github.com/lixenwraith/flapper/status"
)

// Option customizes a Game at construction
type Option func(*Game)

// WithLogger routes engine logs to l; default is a no-op logger
func WithLogger(l *zap.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithGapSource replaces the seeded random gap source
func WithGapSource(src obstacle.GapSource) Option {
	return func(g *Game) {
		if src != nil {
			g.gapSource = src
		}
	}
}

// WithSeed seeds the default random gap source; ignored when WithGapSource is given
func WithSeed(seed uint64) Option {
	return func(g *Game) {
		g.seed = seed
	}
}

// WithCounters shares a counter set with the host
func WithCounters(c *status.Counters) Option {
	return func(g *Game) {
		if c != nil {
			g.stats = c
		}
	}
}
