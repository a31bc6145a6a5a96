package main

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/flapper/engine"
	"github.com/lixenwraith/flapper/parameter"
	"github.com/lixenwraith/flapper/render"
)

// errQuit ends the session on user request
var errQuit = errors.New("quit requested")

type action uint8

const (
	actionNone action = iota
	actionTap
	actionQuit
)

// keyAction maps a key press to a host action
func keyAction(key tcell.Key, ch rune) action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyEnter:
		return actionTap
	case tcell.KeyRune:
		switch ch {
		case ' ', 'k', 'w':
			return actionTap
		case 'q', 'Q':
			return actionQuit
		}
	}
	return actionNone
}

// inputTranslator turns tcell events into actions
// Mouse taps fire on the press edge, so a held button counts once
type inputTranslator struct {
	buttons tcell.ButtonMask
}

func (t *inputTranslator) translate(ev tcell.Event) action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return keyAction(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		return t.mouseAction(ev.Buttons())
	}
	return actionNone
}

func (t *inputTranslator) mouseAction(buttons tcell.ButtonMask) action {
	pressed := buttons&tcell.Button1 != 0 && t.buttons&tcell.Button1 == 0
	t.buttons = buttons
	if pressed {
		return actionTap
	}
	return actionNone
}

// host connects a terminal to a game
// The frame loop goroutine is the only caller of Game.OnFrame
type host struct {
	screen   tcell.Screen
	game     *engine.Game
	renderer *render.TerminalRenderer
	clock    *engine.FrameClock
	log      *zap.Logger
	interval time.Duration
}

func newHost(screen tcell.Screen, game *engine.Game, log *zap.Logger, interval time.Duration, provider engine.TimeProvider) *host {
	if interval <= 0 {
		interval = parameter.FrameUpdateInterval
	}
	return &host{
		screen:   screen,
		game:     game,
		renderer: render.NewTerminalRenderer(screen, game.Stats()),
		clock:    engine.NewFrameClock(provider, parameter.MaxFrameDelta),
		log:      log,
		interval: interval,
	}
}

// run blocks until the user quits or ctx is cancelled
func (h *host) run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(h.pollInput)
	g.Go(func() error {
		<-ctx.Done()
		// Unblock PollEvent
		_ = h.screen.PostEvent(tcell.NewEventInterrupt(nil))
		return nil
	})
	g.Go(func() error {
		return h.frameLoop(ctx)
	})

	err := g.Wait()
	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (h *host) pollInput() error {
	var tr inputTranslator
	for {
		ev := h.screen.PollEvent()
		switch ev.(type) {
		case nil:
			return errQuit // screen finalized
		case *tcell.EventInterrupt:
			return nil
		case *tcell.EventResize:
			h.screen.Sync()
			continue
		}

		switch tr.translate(ev) {
		case actionTap:
			h.game.OnTap()
		case actionQuit:
			h.log.Info("quit requested")
			return errQuit
		}
	}
}

func (h *host) frameLoop(ctx context.Context) error {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	h.frame()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			h.frame()
		}
	}
}

// frame advances the game by the elapsed wall time and redraws
func (h *host) frame() {
	h.game.OnFrame(h.clock.Tick())
	h.renderer.RenderFrame(h.game.Snapshot())
}
