package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/flapper/parameter"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, parameter.Gravity, cfg.Physics.Gravity)
	assert.Equal(t, parameter.JumpForce, cfg.Physics.JumpForce)
	assert.Equal(t, cfg.Viewport.Width/4, cfg.AvatarX())
	assert.InDelta(t, cfg.Viewport.Height/3, cfg.StartY(), 1e-9)
	assert.Equal(t, cfg.Viewport.Width, cfg.RightEdge())
	assert.Equal(t, cfg.AvatarX()-parameter.ScoreMargin, cfg.ScoreLine())
	assert.Equal(t, cfg.Viewport.Height-parameter.GroundMargin, cfg.GroundLine())
	assert.Equal(t, cfg.Viewport.Height-parameter.GroundDrawOffset, cfg.GroundDrawY())
	assert.Less(t, cfg.GroundLine(), cfg.GroundDrawY(), "collision line sits above the drawn ground")
}

func TestScrollSpeedDerivedFromViewport(t *testing.T) {
	cfg := Default()
	cfg.Viewport.Width = 450
	// 450 - (-150) = 600 px over 3 s
	assert.InDelta(t, 200.0, cfg.ScrollSpeed(), 1e-9)

	cfg.Obstacle.ScrollSpeed = 75
	assert.Equal(t, 75.0, cfg.ScrollSpeed())
}

func TestParseOverlaysDefaults(t *testing.T) {
	data := []byte(`
viewport:
  width: 360
physics:
  gravity: 1200
obstacle:
  recycle_x: -100
`)
	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, 360.0, cfg.Viewport.Width)
	assert.Equal(t, parameter.ViewportHeight, cfg.Viewport.Height, "unset keys keep defaults")
	assert.Equal(t, 1200.0, cfg.Physics.Gravity)
	assert.Equal(t, parameter.JumpForce, cfg.Physics.JumpForce)
	assert.Equal(t, -100.0, cfg.Obstacle.RecycleX)
	assert.Equal(t, parameter.ObstacleWidth, cfg.Obstacle.Width)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero width", "viewport: {width: 0}"},
		{"negative gravity", "physics: {gravity: -5}"},
		{"upward gravity via jump sign", "physics: {jump_force: 360}"},
		{"recycle on screen", "obstacle: {recycle_x: 10}"},
		{"negative gap range", "obstacle: {gap_range: -1}"},
		{"fraction out of range", "avatar: {x_fraction: 2}"},
		{"nan gap shift", "obstacle: {gap_shift: .nan}"},
		{"nan ceiling", "bounds: {ceiling_y: .nan}"},
		{"infinite obstacle width", "obstacle: {width: .inf}"},
		{"infinite obstacle height", "obstacle: {height: .inf}"},
		{"infinite avatar width", "avatar: {width: .inf}"},
		{"infinite avatar height", "avatar: {height: .inf}"},
		{"negative infinite recycle", "obstacle: {recycle_x: -.inf}"},
		{"nan scoring margin", "scoring: {margin: .nan}"},
		{"ceiling below ground line", "bounds: {ceiling_y: 700}"},
		{"ceiling under tall margin", "bounds: {ground_margin: 800}"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("viewport: [not, a, map"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flapper.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scoring: {margin: 50}\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50.0, cfg.Scoring.Margin)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
