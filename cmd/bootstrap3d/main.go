// Command bootstrap3d opens the demo scene: a ground plane, a cube, a camera
// and a light, with M toggling the cursor lock and V toggling vsync.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/plus3/bootstrap3d/config"
	"github.com/plus3/bootstrap3d/diagnostics"
	"github.com/plus3/bootstrap3d/ecs"
	"github.com/plus3/bootstrap3d/input"
	"github.com/plus3/bootstrap3d/platform/ebitenhost"
	"github.com/plus3/bootstrap3d/platform/raylibhost"
	"github.com/plus3/bootstrap3d/scene"
	"github.com/plus3/bootstrap3d/window"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	configPath    string
	backend       string
	logLevel      string
	frames        int
	frameInterval time.Duration
	dumpConfig    bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("bootstrap3d", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "Path to a YAML config file.")
	fs.StringVar(&opts.backend, "backend", "", "Backend to run: raylib, ebiten or headless. Overrides the config file.")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error. Overrides the config file.")
	fs.IntVar(&opts.frames, "frames", 600, "Number of frames a headless run executes.")
	fs.DurationVar(&opts.frameInterval, "frame-interval", 16*time.Millisecond, "Frame interval of a headless run.")
	fs.BoolVar(&opts.dumpConfig, "dump-config", false, "Print the effective config as YAML and exit.")
	err := fs.Parse(args)
	return opts, err
}

// resolveConfig loads the config file and applies flag overrides. The frame
// flags only apply to, and are only checked for, the headless backend.
func resolveConfig(opts options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, err
	}
	if opts.backend != "" {
		cfg.Backend = config.Backend(opts.backend)
	}
	if opts.logLevel != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(opts.logLevel)); err != nil {
			return cfg, fmt.Errorf("%w: -log-level: %v", config.ErrInvalid, err)
		}
	}
	if cfg.Backend == config.BackendHeadless {
		if opts.frames <= 0 {
			return cfg, fmt.Errorf("%w: -frames must be positive", config.ErrInvalid)
		}
		if opts.frameInterval <= 0 {
			return cfg, fmt.Errorf("%w: -frame-interval must be positive", config.ErrInvalid)
		}
	}
	return cfg, cfg.Validate()
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}

	cfg, err := resolveConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "bootstrap3d: %v\n", err)
		return 1
	}

	if opts.dumpConfig {
		data, err := cfg.Marshal()
		if err != nil {
			fmt.Fprintf(stderr, "bootstrap3d: %v\n", err)
			return 1
		}
		if _, err := stdout.Write(data); err != nil {
			fmt.Fprintf(stderr, "bootstrap3d: write config: %v\n", err)
			return 1
		}
		return 0
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	scene.SetLogger(logger)
	defer scene.SetLogger(nil)

	if err := runBackend(ctx, cfg, opts, logger, stdout); err != nil {
		logger.Error("run failed", "backend", cfg.Backend, "error", err)
		return 1
	}
	return 0
}

func runBackend(ctx context.Context, cfg config.Config, opts options, logger *slog.Logger, stdout io.Writer) error {
	switch cfg.Backend {
	case config.BackendHeadless:
		report, err := runHeadless(ctx, cfg, opts.frames, opts.frameInterval, logger)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, "--- Run Report ---")
		if err := report.Generate(stdout); err != nil {
			return fmt.Errorf("generate report: %w", err)
		}
		fmt.Fprintln(stdout, "--- End of Report ---")
		return nil

	case config.BackendRaylib:
		host := raylibhost.New(cfg.Window, cfg.Diagnostics.Overlay)
		scheduler := newScheduler(cfg, host.Keyboard, host.Mouse, host.Window, logger)
		return host.Run(ctx, scheduler)

	case config.BackendEbiten:
		host := ebitenhost.New(cfg.Window, cfg.Diagnostics.Overlay)
		scheduler := newScheduler(cfg, host.Keyboard, host.Mouse, host.Window, logger, host.Plugins()...)
		return host.Run(ctx, scheduler)
	}
	return fmt.Errorf("%w: unknown backend %q", config.ErrInvalid, cfg.Backend)
}

// newScheduler installs the scene and frame diagnostics on a fresh world.
func newScheduler(cfg config.Config, kb input.Keyboard, mouse input.Mouse, windows window.Manager, logger *slog.Logger, extra ...ecs.Plugin) *ecs.Scheduler {
	scheduler := ecs.NewScheduler(ecs.NewStorage(ecs.NewComponentRegistry()))
	scheduler.AddPlugins(
		scene.Setup{Options: sceneOptions(cfg, kb, mouse, windows)},
		diagnostics.Plugin{LogInterval: cfg.Diagnostics.LogInterval, Logger: logger},
	)
	scheduler.AddPlugins(extra...)
	return scheduler
}

func sceneOptions(cfg config.Config, kb input.Keyboard, mouse input.Mouse, windows window.Manager) scene.Options {
	return scene.Options{
		Keyboard:           kb,
		Mouse:              mouse,
		Windows:            windows,
		DiagnosticInterval: cfg.Diagnostics.Interval,
		CursorToggleKey:    cfg.Keys.CursorToggle,
		VsyncToggleKey:     cfg.Keys.VsyncToggle,
		FreeFly:            cfg.FreeFly,
	}
}
