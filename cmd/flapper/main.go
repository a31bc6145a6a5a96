package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/flapper/config"
	"github.com/lixenwraith/flapper/engine"
)

type options struct {
	configPath string
	logPath    string
	debug      bool
	seed       uint64
	fps        int
}

// frameInterval converts the fps flag to a ticker interval, 0 selects the default
func (o options) frameInterval() time.Duration {
	if o.fps <= 0 {
		return 0
	}
	return time.Second / time.Duration(o.fps)
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "YAML config overlaid on defaults")
	flag.StringVar(&opts.logPath, "log", "", "Write JSON logs to this file (disabled when empty)")
	flag.BoolVar(&opts.debug, "debug", false, "Log at debug level")
	flag.Uint64Var(&opts.seed, "seed", 0, "Gap generator seed (0 = time based)")
	flag.IntVar(&opts.fps, "fps", 0, "Frame rate (0 = ~60)")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "flapper: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	session := uuid.NewString()
	logger, err := newLogger(opts.logPath, opts.debug, session)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	seed := opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	game, err := engine.NewGame(cfg, engine.WithLogger(logger), engine.WithSeed(seed))
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			logger.Error("crashed", zap.Any("panic", r))
			fmt.Fprintf(os.Stderr, "\nFLAPPER CRASHED: %v\nStack Trace:\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
		screen.Fini()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("session started", zap.Uint64("seed", seed), zap.String("config", opts.configPath))
	h := newHost(screen, game, logger, opts.frameInterval(), nil)
	err = h.run(ctx)
	snap := game.Snapshot()
	logger.Info("session ended", zap.Uint64("rounds", snap.Round), zap.Int("best", snap.Best))
	return err
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// newLogger builds a JSON file logger tagged with the session id
// stdout belongs to the terminal canvas, so an empty path disables logging
func newLogger(path string, verbose bool, session string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}

	zc := zap.NewProductionConfig()
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, err
	}
	return logger.With(zap.String("session", session)), nil
}
