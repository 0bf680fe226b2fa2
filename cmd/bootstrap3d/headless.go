package main

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/plus3/bootstrap3d/config"
	"github.com/plus3/bootstrap3d/diagnostics"
	"github.com/plus3/bootstrap3d/ecs"
	"github.com/plus3/bootstrap3d/input"
	"github.com/plus3/bootstrap3d/scene"
	"github.com/plus3/bootstrap3d/window"
)

// demoScript exercises both toggles and, with free-fly, moves the camera.
func demoScript(cfg config.Config, frames int) *input.Script {
	at := func(fraction float64) int { return int(float64(frames) * fraction) }
	return input.NewScript().
		Tap(cfg.Keys.CursorToggle, at(0.1)).
		Tap(cfg.Keys.VsyncToggle, at(0.2)).
		HoldKey(input.KeyW, at(0.3), at(0.5)).
		Move(at(0.35), 40, 0).
		Tap(cfg.Keys.VsyncToggle, at(0.6)).
		Tap(cfg.Keys.CursorToggle, at(0.8))
}

// runHeadless runs the scene against an in-memory window with scripted input.
func runHeadless(ctx context.Context, cfg config.Config, frames int, interval time.Duration, logger *slog.Logger) (*Report, error) {
	script := demoScript(cfg, frames)
	win := window.NewHeadless(cfg.Window)
	recorder := &scene.Recorder{}

	opts := sceneOptions(cfg, script, script, window.NewHeadlessManager(win))
	opts.Observer = scene.ObserverFunc(func(r scene.Report) {
		recorder.Observe(r)
		scene.LogObserver{}.Observe(r)
	})

	scheduler := ecs.NewScheduler(ecs.NewStorage(ecs.NewComponentRegistry()))
	scheduler.AddPlugins(
		scene.Setup{Options: opts},
		diagnostics.Plugin{LogInterval: cfg.Diagnostics.LogInterval, Logger: logger},
	)

	ctx, cancel := context.WithTimeout(ctx, time.Duration(frames)*interval+2*time.Second)
	defer cancel()

	report := &Report{
		Frames:        frames,
		FrameInterval: interval,
		FreeFly:       cfg.FreeFly,
		FrameTime:     Stats{Samples: make([]time.Duration, 0, frames)},
	}
	scheduler.Register(ecs.SystemFunc(func(frame *ecs.UpdateFrame) {
		report.FrameTime.Samples = append(report.FrameTime.Samples, frame.Delta())
		script.Advance()
		if frame.Number >= uint64(frames) {
			cancel()
		}
	}))

	logger.Info("headless run started", "frames", frames, "interval", interval)
	runtime.ReadMemStats(&report.MemStatsStart)
	start := time.Now()
	scheduler.Run(ctx, interval)
	report.TotalTime = time.Since(start)
	runtime.ReadMemStats(&report.MemStatsEnd)

	report.collect(scheduler, win, recorder)
	logger.Info("headless run finished", "frames", report.FramesRun, "elapsed", report.TotalTime.Round(time.Millisecond))
	return report, nil
}
