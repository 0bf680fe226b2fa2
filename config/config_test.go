package config_test

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/bootstrap3d/config"
	"github.com/plus3/bootstrap3d/input"
	"github.com/plus3/bootstrap3d/window"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "I am a window!", cfg.Window.Title)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.True(t, cfg.Window.Resizable)
	assert.Equal(t, window.Windowed, cfg.Window.Mode)
	assert.Equal(t, window.AutoVsync, cfg.Window.PresentMode)
	assert.Equal(t, input.KeyM, cfg.Keys.CursorToggle)
	assert.Equal(t, input.KeyV, cfg.Keys.VsyncToggle)
	assert.Equal(t, 2*time.Second, cfg.Diagnostics.Interval)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		cfg, err := config.Load("")
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("missing file", func(t *testing.T) {
		cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bootstrap.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
backend: headless
log_level: debug
window:
  title: demo
  present_mode: AutoNoVsync
keys:
  vsync_toggle: b
diagnostics:
  interval: 500ms
`), 0o644))

		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, config.BackendHeadless, cfg.Backend)
		assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
		assert.Equal(t, "demo", cfg.Window.Title)
		assert.Equal(t, 800, cfg.Window.Width)
		assert.Equal(t, window.AutoNoVsync, cfg.Window.PresentMode)
		assert.Equal(t, input.KeyM, cfg.Keys.CursorToggle)
		assert.Equal(t, input.KeyB, cfg.Keys.VsyncToggle)
		assert.Equal(t, 500*time.Millisecond, cfg.Diagnostics.Interval)
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.yaml")
		require.NoError(t, os.WriteFile(path, nil, 0o644))
		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("parse errors are wrapped", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("window: [1, 2"), 0o644))
		_, err := config.Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), path)
		assert.False(t, errors.Is(err, config.ErrInvalid))
	})

	t.Run("unknown fields are rejected", func(t *testing.T) {
		_, err := config.Parse([]byte("colour: blue\n"))
		assert.Error(t, err)
	})

	t.Run("unknown key name", func(t *testing.T) {
		_, err := config.Parse([]byte("keys:\n  cursor_toggle: hyper\n"))
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"backend", func(c *config.Config) { c.Backend = "vulkan" }},
		{"width", func(c *config.Config) { c.Window.Width = 0 }},
		{"height", func(c *config.Config) { c.Window.Height = -1 }},
		{"cursor key", func(c *config.Config) { c.Keys.CursorToggle = input.KeyUnknown }},
		{"shared key", func(c *config.Config) { c.Keys.VsyncToggle = c.Keys.CursorToggle }},
		{"interval", func(c *config.Config) { c.Diagnostics.Interval = 0 }},
		{"log interval", func(c *config.Config) { c.Diagnostics.LogInterval = -time.Second }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	t.Run("all problems reported", func(t *testing.T) {
		cfg := config.Default()
		cfg.Backend = "nope"
		cfg.Diagnostics.Interval = 0
		err := cfg.Validate()
		assert.Contains(t, err.Error(), "nope")
		assert.Contains(t, err.Error(), "diagnostics.interval")
	})
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "bootstrap.yaml")
	cfg := config.Default()
	cfg.Backend = config.BackendEbiten
	cfg.Keys.CursorToggle = input.KeyL
	cfg.FreeFly = false

	require.NoError(t, config.Save(path, cfg))
	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
