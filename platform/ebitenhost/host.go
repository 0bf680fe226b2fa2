// Package ebitenhost runs the scene in an ebiten window as a top-down map,
// optionally with the Dear ImGui debug overlay.
package ebitenhost

import (
	"context"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/bootstrap3d/ecs"
	"github.com/plus3/bootstrap3d/ecs/debugui"
	debugui_ebiten "github.com/plus3/bootstrap3d/ecs/debugui/ebiten"
	"github.com/plus3/bootstrap3d/scene"
	"github.com/plus3/bootstrap3d/window"
)

// Host owns the ebiten window and the input adapters systems read from.
type Host struct {
	Keyboard *Keyboard
	Mouse    *Mouse
	Window   *Window

	config window.Config
	imgui  *debugui_ebiten.ImguiBackend
}

// New prepares a host. With overlay the ImGui backend is created and the
// keyboard is blocked while ImGui wants it.
func New(cfg window.Config, overlay bool) *Host {
	h := &Host{
		Keyboard: &Keyboard{},
		Mouse:    &Mouse{},
		Window:   newWindow(ebitenDriver{}, cfg),
		config:   cfg,
	}
	if overlay {
		h.imgui = debugui_ebiten.New(cfg.Title, cfg.Width, cfg.Height)
	}
	return h
}

// Plugins returns the ImGui overlay plugin when the overlay is enabled.
func (h *Host) Plugins() []ecs.Plugin {
	if h.imgui == nil {
		return nil
	}
	return []ecs.Plugin{debugui.Overlay{Windows: h.Window}}
}

type game struct {
	ctx       context.Context
	host      *Host
	scheduler *ecs.Scheduler
	view      *topDown
	last      time.Time
}

func (g *game) Update() error {
	if g.ctx.Err() != nil || ebiten.IsWindowBeingClosed() {
		g.host.Window.setClosing()
		return ebiten.Termination
	}

	g.host.Mouse.sample(ebiten.CursorPosition())

	now := time.Now()
	dt := now.Sub(g.last).Seconds()
	g.last = now

	if g.host.imgui != nil {
		g.host.imgui.Frame(func() { g.scheduler.Once(dt) })
		return nil
	}
	g.scheduler.Once(dt)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.view.draw(screen)
	drawStatus(screen, g.view.status(g.host.Window))
	if g.host.imgui != nil {
		g.host.imgui.Draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.host.imgui != nil {
		g.host.imgui.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Run applies the window config and runs the game loop until the window
// closes or ctx is cancelled.
func (h *Host) Run(ctx context.Context, scheduler *ecs.Scheduler) error {
	applyConfig(h.config)

	storage := scheduler.Storage()
	if h.imgui != nil {
		h.Keyboard.Blocked = func() bool {
			state := ecs.ReadSingleton[debugui.ImguiInputState](storage)
			return state != nil && state.WantCaptureKeyboard
		}
	}

	log := scene.Logger()
	log.Info("window opened", "backend", "ebiten", "width", h.config.Width, "height", h.config.Height,
		"present_mode", h.config.PresentMode)

	g := &game{ctx: ctx, host: h, scheduler: scheduler, view: newTopDown(storage), last: time.Now()}
	err := ebiten.RunGame(g)
	log.Info("window closed", "frames", scheduler.Frames())
	return err
}
