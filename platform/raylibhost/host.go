// Package raylibhost runs the scene in a raylib window.
package raylibhost

import (
	"context"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/plus3/bootstrap3d/ecs"
	"github.com/plus3/bootstrap3d/scene"
	"github.com/plus3/bootstrap3d/window"
)

// Host owns the raylib window and the input adapters systems read from.
type Host struct {
	Keyboard Keyboard
	Mouse    Mouse
	Window   *Window

	config  window.Config
	overlay bool
}

// New prepares a host. The window is opened by Run.
func New(cfg window.Config, overlay bool) *Host {
	return &Host{
		Window:  newWindow(raylibDriver{}, cfg),
		config:  cfg,
		overlay: overlay,
	}
}

// Run opens the window and drives the scheduler once per rendered frame
// until the window closes or ctx is cancelled.
func (h *Host) Run(ctx context.Context, scheduler *ecs.Scheduler) error {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(configFlags(h.config))
	rl.InitWindow(int32(h.config.Width), int32(h.config.Height), h.config.Title)
	defer rl.CloseWindow()

	log := scene.Logger()
	log.Info("window opened", "backend", "raylib", "width", h.config.Width, "height", h.config.Height,
		"present_mode", h.config.PresentMode)

	r := newRenderer(scheduler.Storage(), h.overlay)
	for ctx.Err() == nil {
		if rl.WindowShouldClose() {
			h.Window.setOpen(false)
			break
		}
		scheduler.Once(float64(rl.GetFrameTime()))

		rl.BeginDrawing()
		r.draw(h.Window)
		rl.EndDrawing()
	}

	log.Info("window closed", "frames", scheduler.Frames())
	return nil
}
