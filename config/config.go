// Package config loads the bootstrap's YAML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/plus3/bootstrap3d/input"
	"github.com/plus3/bootstrap3d/window"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Backend selects the host that runs the scene.
type Backend string

const (
	BackendRaylib   Backend = "raylib"
	BackendEbiten   Backend = "ebiten"
	BackendHeadless Backend = "headless"
)

// Backends lists the supported backends.
func Backends() []Backend {
	return []Backend{BackendRaylib, BackendEbiten, BackendHeadless}
}

func (b Backend) valid() bool {
	for _, known := range Backends() {
		if b == known {
			return true
		}
	}
	return false
}

// Keys binds the two toggles.
type Keys struct {
	CursorToggle input.Key `yaml:"cursor_toggle"`
	VsyncToggle  input.Key `yaml:"vsync_toggle"`
}

// Diagnostics configures the periodic reports.
type Diagnostics struct {
	// Interval is the period of the tagged-position report.
	Interval time.Duration `yaml:"interval"`
	// LogInterval is the period of the frame-time log line.
	LogInterval time.Duration `yaml:"log_interval"`
	// Overlay draws frame statistics on top of the scene.
	Overlay bool `yaml:"overlay"`
}

// Config is the full bootstrap3d configuration file.
type Config struct {
	Backend     Backend       `yaml:"backend"`
	LogLevel    slog.Level    `yaml:"log_level"`
	FreeFly     bool          `yaml:"free_fly"`
	Window      window.Config `yaml:"window"`
	Keys        Keys          `yaml:"keys"`
	Diagnostics Diagnostics   `yaml:"diagnostics"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Backend:  BackendRaylib,
		LogLevel: slog.LevelInfo,
		FreeFly:  true,
		Window:   window.DefaultConfig(),
		Keys: Keys{
			CursorToggle: input.KeyM,
			VsyncToggle:  input.KeyV,
		},
		Diagnostics: Diagnostics{
			Interval:    2 * time.Second,
			LogInterval: 5 * time.Second,
			Overlay:     true,
		},
	}
}

// Load reads the configuration at path on top of Default. An empty path or a
// missing file yields the defaults. Unknown fields are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	cfg, err = Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Default(), fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports every problem found, each wrapping ErrInvalid.
func (c Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if !c.Backend.valid() {
		fail("unknown backend %q", c.Backend)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		fail("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Keys.CursorToggle == input.KeyUnknown {
		fail("keys.cursor_toggle is not set")
	}
	if c.Keys.VsyncToggle == input.KeyUnknown {
		fail("keys.vsync_toggle is not set")
	}
	if c.Keys.CursorToggle != input.KeyUnknown && c.Keys.CursorToggle == c.Keys.VsyncToggle {
		fail("cursor and vsync toggles share key %s", c.Keys.CursorToggle)
	}
	if c.Diagnostics.Interval <= 0 {
		fail("diagnostics.interval %s must be positive", c.Diagnostics.Interval)
	}
	if c.Diagnostics.LogInterval <= 0 {
		fail("diagnostics.log_interval %s must be positive", c.Diagnostics.LogInterval)
	}
	return errors.Join(errs...)
}

// Marshal encodes the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes the configuration to path, creating parent directories.
func Save(path string, c Config) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
