// Package engine owns the simulation aggregate and its per-frame update
//
// One goroutine, the host's frame loop, calls OnFrame. Every mutable field lives
// on Game and is touched only from OnFrame. OnTap may be called from any goroutine;
// it enqueues and returns. Renderers read Snapshot, which is republished whole at the
// end of each frame.
package engine

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lixenwraith/flapper/config"
	"github.com/lixenwraith/flapper/event"
	"github.com/lixenwraith/flapper/obstacle"
	"github.com/lixenwraith/flapper/parameter"
	"github.com/lixenwraith/flapper/physics"
	"github.com/lixenwraith/flapper/score"
	"github.com/lixenwraith/flapper/status"
	"github.com/lixenwraith/flapper/vmath"
)

// Game is the simulation core
type Game struct {
	cfg config.Config
	log *zap.Logger

	input     *event.InputQueue
	gapSource obstacle.GapSource
	seed      uint64

	body     physics.Body
	avatarX  float64
	track    *obstacle.Track
	detector physics.Detector
	scorer   *score.Tracker

	phase           Phase
	lastHit         physics.Hit
	speedMultiplier float64
	scrollSpeed     float64
	frame           uint64
	round           uint64

	latest atomic.Pointer[Snapshot]

	stats *status.Counters
}

// NewGame validates cfg and builds a game in PhasePlaying with the obstacle at the right edge
func NewGame(cfg config.Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	g := &Game{
		cfg:  cfg,
		log:  zap.NewNop(),
		seed: 1,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.gapSource == nil {
		g.gapSource = obstacle.NewRandomGapSource(g.seed, cfg.Obstacle.GapRange)
	}
	if g.stats == nil {
		g.stats = status.NewCounters()
	}

	g.input = event.NewInputQueue()
	g.avatarX = cfg.AvatarX()
	g.detector = physics.Detector{
		GroundMargin: cfg.Bounds.GroundMargin,
		CeilingY:     cfg.Bounds.CeilingY,
	}
	g.track = obstacle.NewTrack(obstacle.Geometry{
		Width:          cfg.Obstacle.Width,
		Height:         cfg.Obstacle.Height,
		GapShift:       cfg.Obstacle.GapShift,
		GapRange:       cfg.Obstacle.GapRange,
		RightEdge:      cfg.RightEdge(),
		RecycleX:       cfg.Obstacle.RecycleX,
		ViewportHeight: cfg.Viewport.Height,
	}, g.gapSource)
	g.scorer = score.NewTracker(cfg.ScoreLine())
	g.scrollSpeed = cfg.ScrollSpeed()
	g.speedMultiplier = parameter.SpeedMultiplierBase
	g.phase = PhasePlaying
	g.round = 1
	physics.Reset(&g.body, cfg.StartY())

	g.publish()

	g.log.Info("game created",
		zap.Float64("viewport_width", cfg.Viewport.Width),
		zap.Float64("viewport_height", cfg.Viewport.Height),
		zap.Float64("scroll_speed", g.scrollSpeed),
	)
	return g, nil
}

// OnTap records a tap; it takes effect at the start of the next valid frame
// Taps beyond the queue capacity are dropped. Safe for concurrent use
func (g *Game) OnTap() {
	g.stats.Taps.Add(1)
	if _, ok := g.input.Push(event.InputTap); !ok {
		g.stats.TapsDropped.Add(1)
	}
}

// OnFrame runs one simulation frame of dt seconds
// Order: drain input, integrate and advance (Playing only), collision, scoring, publish
// A non-positive or non-finite dt is a no-op; queued input waits for the next frame
func (g *Game) OnFrame(dt float64) {
	if !(dt > 0) || !vmath.IsFinite(dt) {
		return
	}

	g.frame++
	g.stats.Frames.Add(1)
	g.stats.SetLastDelta(dt)

	// A restart consumes its frame so the reset state is published untouched
	if restarted := g.drainInput(); !restarted && g.phase == PhasePlaying {
		g.step(dt)
	}

	g.publish()
}

// drainInput applies queued taps strictly before this frame's update and reports whether one restarted the game
func (g *Game) drainInput() bool {
	events := g.input.Consume()
	restarted := false
	for _, ev := range events {
		if ev.Type != event.InputTap {
			continue
		}
		// Taps queued behind a restart belong to the discarded round
		if restarted {
			g.stats.TapsDropped.Add(1)
			g.log.Debug("tap dropped after restart", zap.Uint64("seq", ev.Seq), zap.Uint64("frame", g.frame))
			continue
		}
		switch g.phase {
		case PhasePlaying:
			physics.SetImpulse(&g.body, g.cfg.Physics.JumpForce)
		case PhaseGameOver:
			restarted = g.restart()
		}
	}
	return restarted
}

func (g *Game) step(dt float64) {
	physics.Integrate(&g.body, g.cfg.Physics.Gravity, dt)
	sweep := g.track.Advance(dt, g.scrollSpeed*g.speedMultiplier)

	if sweep.Recycled {
		g.stats.Recycles.Add(1)
		g.log.Debug("obstacle recycled",
			zap.Uint64("frame", g.frame),
			zap.Float64("gap_offset", g.track.GapOffset()),
			zap.Uint64("recycles", g.track.Recycles()),
		)
	}

	rects := g.track.Rects()
	if hit := g.detector.Classify(g.avatarBounds(), rects[:], g.cfg.Viewport.Height); hit != physics.HitNone {
		g.gameOver(hit)
		return
	}

	if g.scorer.Observe(sweep) {
		g.stats.Score.Store(int64(g.scorer.Score()))
		g.stats.Best.Store(int64(g.scorer.Best()))
	}
}

// transition applies a validated phase change
func (g *Game) transition(to Phase) bool {
	if !CanTransition(g.phase, to) {
		g.log.Warn("rejected phase transition",
			zap.Stringer("from", g.phase),
			zap.Stringer("to", to),
		)
		return false
	}
	g.phase = to
	return true
}

// gameOver freezes the world; subsequent frames skip step
func (g *Game) gameOver(hit physics.Hit) {
	if !g.transition(PhaseGameOver) {
		return
	}
	g.lastHit = hit
	g.stats.GameOvers.Add(1)
	g.log.Info("game over",
		zap.Uint64("round", g.round),
		zap.Uint64("frame", g.frame),
		zap.Stringer("hit", hit),
		zap.Int("score", g.scorer.Score()),
	)
}

// restart resets every subsystem as one unit; the next publish shows only the reset state
func (g *Game) restart() bool {
	if !g.transition(PhasePlaying) {
		return false
	}
	physics.Reset(&g.body, g.cfg.StartY())
	g.track.Reset()
	g.scorer.Reset()
	g.speedMultiplier = parameter.SpeedMultiplierBase
	g.lastHit = physics.HitNone
	g.round++

	g.stats.Score.Store(0)
	g.stats.Restarts.Add(1)
	g.log.Info("restart", zap.Uint64("round", g.round), zap.Uint64("frame", g.frame))
	return true
}

func (g *Game) avatarBounds() vmath.Rect {
	return physics.Bounds(g.body, g.avatarX, g.cfg.Avatar.Width, g.cfg.Avatar.Height)
}

func (g *Game) publish() {
	rects := g.track.Rects()
	rotation := vmath.LerpClamped(g.body.VY,
		parameter.RotationVelocityMin, parameter.RotationVelocityMax,
		parameter.RotationAngleMin, parameter.RotationAngleMax)

	snap := &Snapshot{
		Frame: g.frame,
		Round: g.round,
		Phase: g.phase,
		Score: g.scorer.Score(),
		Best:  g.scorer.Best(),
		Hit:   g.lastHit,
		Avatar: AvatarView{
			Bounds:   g.avatarBounds(),
			VY:       g.body.VY,
			Rotation: rotation,
		},
		Obstacle: ObstacleView{
			X:         g.track.X(),
			GapOffset: g.track.GapOffset(),
			Top:       rects[0],
			Bottom:    rects[1],
		},
		ViewportWidth:  g.cfg.Viewport.Width,
		ViewportHeight: g.cfg.Viewport.Height,
		GroundDrawY:    g.cfg.GroundDrawY(),
		ScoreLine:      g.scorer.Line(),
	}
	g.latest.Store(snap)
}

// Snapshot returns the state published by the most recent frame
// Safe for concurrent use
func (g *Game) Snapshot() Snapshot {
	return *g.latest.Load()
}

// Stats exposes the counters the game writes
func (g *Game) Stats() *status.Counters {
	return g.stats
}

