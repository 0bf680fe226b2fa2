package raylibhost

import (
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/plus3/bootstrap3d/window"
)

// driver is the slice of raylib the window adapter mutates.
type driver interface {
	SetVsync(enabled bool)
	LockCursor()
	UnlockCursor(visible bool)
}

type raylibDriver struct{}

func (raylibDriver) SetVsync(enabled bool) {
	if enabled {
		rl.SetWindowState(rl.FlagVsyncHint)
	} else {
		rl.ClearWindowState(rl.FlagVsyncHint)
	}
}

func (raylibDriver) LockCursor() {
	rl.DisableCursor()
}

func (raylibDriver) UnlockCursor(visible bool) {
	rl.EnableCursor()
	if !visible {
		rl.HideCursor()
	}
}

// Window adapts the raylib window to window.Window. Setters only reach raylib
// when the requested state differs from the current one.
type Window struct {
	mu          sync.Mutex
	driver      driver
	presentMode window.PresentMode
	cursor      window.Cursor
	open        bool
}

func newWindow(d driver, cfg window.Config) *Window {
	return &Window{
		driver:      d,
		presentMode: cfg.PresentMode,
		cursor:      window.CursorFree,
		open:        true,
	}
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
	w.cursor = c
	if c.Grab == window.GrabLocked {
		w.driver.LockCursor()
	} else {
		w.driver.UnlockCursor(c.Visible)
	}
}

func (w *Window) setOpen(open bool) {
	w.mu.Lock()
	w.open = open
	w.mu.Unlock()
}

// Primary implements window.Manager. The window stops being primary once it
// starts closing.
func (w *Window) Primary() (window.Window, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.open {
		return nil, false
	}
	return w, true
}

// configFlags builds the raylib flags for the initial window.
func configFlags(cfg window.Config) uint32 {
	var flags uint32 = rl.FlagMsaa4xHint
	if cfg.Resizable {
		flags |= rl.FlagWindowResizable
	}
	if cfg.PresentMode.Vsync() {
		flags |= rl.FlagVsyncHint
	}
	switch cfg.Mode {
	case window.Fullscreen:
		flags |= rl.FlagFullscreenMode
	case window.BorderlessFullscreen:
		flags |= rl.FlagBorderlessWindowedMode
	}
	return flags
}
