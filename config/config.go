// Package config holds the tuning values the simulation is built with
// Values are fixed once a game is constructed; a YAML file may override the compiled defaults
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/flapper/parameter"
	"github.com/lixenwraith/flapper/vmath"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

type Viewport struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type Physics struct {
	Gravity   float64 `yaml:"gravity"`
	JumpForce float64 `yaml:"jump_force"`
}

type Avatar struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// XFraction and StartYFraction are fractions of the viewport
	XFraction      float64 `yaml:"x_fraction"`
	StartYFraction float64 `yaml:"start_y_fraction"`
}

type Obstacle struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	GapShift float64 `yaml:"gap_shift"`
	GapRange float64 `yaml:"gap_range"`
	RecycleX float64 `yaml:"recycle_x"`
	// ScrollSpeed in px/s at multiplier 1; zero derives it from the viewport width
	ScrollSpeed float64 `yaml:"scroll_speed"`
}

type Bounds struct {
	GroundMargin float64 `yaml:"ground_margin"`
	CeilingY     float64 `yaml:"ceiling_y"`
}

type Scoring struct {
	Margin float64 `yaml:"margin"`
}

// Config is the full set of simulation constants
type Config struct {
	Viewport Viewport `yaml:"viewport"`
	Physics  Physics  `yaml:"physics"`
	Avatar   Avatar   `yaml:"avatar"`
	Obstacle Obstacle `yaml:"obstacle"`
	Bounds   Bounds   `yaml:"bounds"`
	Scoring  Scoring  `yaml:"scoring"`
}

// Default returns the compiled-in tuning
func Default() Config {
	return Config{
		Viewport: Viewport{
			Width:  parameter.ViewportWidth,
			Height: parameter.ViewportHeight,
		},
		Physics: Physics{
			Gravity:   parameter.Gravity,
			JumpForce: parameter.JumpForce,
		},
		Avatar: Avatar{
			Width:          parameter.AvatarWidth,
			Height:         parameter.AvatarHeight,
			XFraction:      parameter.AvatarXFraction,
			StartYFraction: parameter.StartYFraction,
		},
		Obstacle: Obstacle{
			Width:    parameter.ObstacleWidth,
			Height:   parameter.ObstacleHeight,
			GapShift: parameter.GapShift,
			GapRange: parameter.GapRange,
			RecycleX: parameter.RecycleX,
		},
		Bounds: Bounds{
			GroundMargin: parameter.GroundMargin,
			CeilingY:     parameter.CeilingY,
		},
		Scoring: Scoring{
			Margin: parameter.ScoreMargin,
		},
	}
}

// Parse overlays YAML data onto the defaults and validates the result
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses a YAML config file
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Validate rejects values the simulation cannot run with
func (c Config) Validate() error {
	for _, f := range c.floatFields() {
		if !vmath.IsFinite(f.value) {
			return fmt.Errorf("%w: %s must be finite", ErrInvalidConfig, f.name)
		}
	}

	checks := []struct {
		ok  bool
		msg string
	}{
		{c.Viewport.Width > 0, "viewport width must be positive"},
		{c.Viewport.Height > 0, "viewport height must be positive"},
		{c.Physics.Gravity > 0, "gravity must be positive"},
		{c.Physics.JumpForce < 0, "jump force must be negative (upward)"},
		{c.Avatar.Width > 0 && c.Avatar.Height > 0, "avatar size must be positive"},
		{c.Avatar.XFraction >= 0 && c.Avatar.XFraction <= 1, "avatar x fraction must be in [0, 1]"},
		{c.Avatar.StartYFraction >= 0 && c.Avatar.StartYFraction <= 1, "avatar start y fraction must be in [0, 1]"},
		{c.Obstacle.Width > 0 && c.Obstacle.Height > 0, "obstacle size must be positive"},
		{c.Obstacle.GapRange >= 0, "gap range must be non-negative"},
		{c.Obstacle.RecycleX < 0, "recycle x must be off-screen left (negative)"},
		{c.Obstacle.ScrollSpeed >= 0, "scroll speed must be non-negative"},
		{c.Bounds.GroundMargin >= 0, "ground margin must be non-negative"},
		{c.Bounds.CeilingY < c.GroundLine(), "ceiling must be above the ground line"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, chk.msg)
		}
	}
	return nil
}

type namedFloat struct {
	name  string
	value float64
}

// floatFields lists every float in the config under its yaml path
func (c Config) floatFields() []namedFloat {
	return []namedFloat{
		{"viewport.width", c.Viewport.Width},
		{"viewport.height", c.Viewport.Height},
		{"physics.gravity", c.Physics.Gravity},
		{"physics.jump_force", c.Physics.JumpForce},
		{"avatar.width", c.Avatar.Width},
		{"avatar.height", c.Avatar.Height},
		{"avatar.x_fraction", c.Avatar.XFraction},
		{"avatar.start_y_fraction", c.Avatar.StartYFraction},
		{"obstacle.width", c.Obstacle.Width},
		{"obstacle.height", c.Obstacle.Height},
		{"obstacle.gap_shift", c.Obstacle.GapShift},
		{"obstacle.gap_range", c.Obstacle.GapRange},
		{"obstacle.recycle_x", c.Obstacle.RecycleX},
		{"obstacle.scroll_speed", c.Obstacle.ScrollSpeed},
		{"bounds.ground_margin", c.Bounds.GroundMargin},
		{"bounds.ceiling_y", c.Bounds.CeilingY},
		{"scoring.margin", c.Scoring.Margin},
	}
}

// AvatarX is the fixed horizontal position of the avatar's left edge
func (c Config) AvatarX() float64 {
	return c.Viewport.Width * c.Avatar.XFraction
}

// StartY is the avatar spawn height (top edge)
func (c Config) StartY() float64 {
	return c.Viewport.Height * c.Avatar.StartYFraction
}

// RightEdge is where obstacles spawn and recycle to
func (c Config) RightEdge() float64 {
	return c.Viewport.Width
}

// GroundLine is the collision line for the avatar's representative point
func (c Config) GroundLine() float64 {
	return c.Viewport.Height - c.Bounds.GroundMargin
}

// GroundDrawY is the top of the rendered ground strip
func (c Config) GroundDrawY() float64 {
	return c.Viewport.Height - parameter.GroundDrawOffset
}

// ScoreLine is the obstacle X at or below which a pass is counted
func (c Config) ScoreLine() float64 {
	return c.AvatarX() - c.Scoring.Margin
}

// ScrollSpeed resolves the base obstacle speed in px/s
func (c Config) ScrollSpeed() float64 {
	if c.Obstacle.ScrollSpeed > 0 {
		return c.Obstacle.ScrollSpeed
	}
	return (c.RightEdge() - c.Obstacle.RecycleX) / parameter.ScrollTraverseSeconds
}
