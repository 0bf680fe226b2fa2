package ebitenhost

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/bootstrap3d/window"
)

type driver interface {
	SetVsync(enabled bool)
	SetCursorMode(mode ebiten.CursorModeType)
}

type ebitenDriver struct{}

func (ebitenDriver) SetVsync(enabled bool)                    { ebiten.SetVsyncEnabled(enabled) }
func (ebitenDriver) SetCursorMode(mode ebiten.CursorModeType) { ebiten.SetCursorMode(mode) }

// CursorMode maps a cursor to ebiten's single cursor mode setting.
func CursorMode(c window.Cursor) ebiten.CursorModeType {
	switch {
	case c.Grab == window.GrabLocked:
		return ebiten.CursorModeCaptured
	case !c.Visible:
		return ebiten.CursorModeHidden
	default:
		return ebiten.CursorModeVisible
	}
}

// Window adapts the ebiten window to window.Window and window.Manager.
type Window struct {
	mu          sync.Mutex
	driver      driver
	presentMode window.PresentMode
	cursor      window.Cursor
	closing     bool
}

func newWindow(d driver, cfg window.Config) *Window {
	return &Window{driver: d, presentMode: cfg.PresentMode, cursor: window.CursorFree}
}

func (w *Window) PresentMode() window.PresentMode {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.presentMode
}

func (w *Window) SetPresentMode(m window.PresentMode) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if m == w.presentMode {
		return
	}
	w.presentMode = m
	w.driver.SetVsync(m.Vsync())
}

func (w *Window) Cursor() window.Cursor {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cursor
}

func (w *Window) SetCursor(c window.Cursor) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if c == w.cursor {
		return
	}
	before := CursorMode(w.cursor)
	w.cursor = c
	if mode := CursorMode(c); mode != before {
		w.driver.SetCursorMode(mode)
	}
}

func (w *Window) Primary() (window.Window, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closing {
		return nil, false
	}
	return w, true
}

func (w *Window) setClosing() {
	w.mu.Lock()
	w.closing = true
	w.mu.Unlock()
}

// applyConfig sets the initial window state before the game starts.
func applyConfig(cfg window.Config) {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
	ebiten.SetFullscreen(cfg.Mode != window.Windowed)
	ebiten.SetVsyncEnabled(cfg.PresentMode.Vsync())
	ebiten.SetWindowClosingHandled(true)
}
