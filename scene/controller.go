package scene

import (
	"github.com/plus3/bootstrap3d/ecs"
	"github.com/plus3/bootstrap3d/input"
	"github.com/plus3/bootstrap3d/window"
)

// CursorFor maps the toggle flag to the cursor it requires.
func CursorFor(locked bool) window.Cursor {
	if locked {
		return window.CursorCaptured
	}
	return window.CursorFree
}

// ApplyCursorLock sets the window cursor to match locked. Calling it
// repeatedly with the same value leaves the window unchanged.
func ApplyCursorLock(w window.Window, locked bool) {
	want := CursorFor(locked)
	if w.Cursor() != want {
		w.SetCursor(want)
	}
}

// CursorLockSystem re-asserts the cursor mode from InputToggleState every
// frame. A missing primary window is logged once until it comes back.
type CursorLockSystem struct {
	State   ecs.Singleton[InputToggleState]
	Windows window.Manager

	missing bool
}

func (c *CursorLockSystem) Execute(frame *ecs.UpdateFrame) {
	state := c.State.Get()
	if state == nil {
		return
	}
	w, ok := primary(c.Windows)
	if !ok {
		if !c.missing {
			Logger().Info("no primary window, cursor lock not applied", "frame", frame.Number)
			c.missing = true
		}
		return
	}
	c.missing = false
	ApplyCursorLock(w, state.CursorLocked)
}

// VsyncToggleSystem flips the primary window between AutoVsync and
// AutoNoVsync once per press of the Toggle key.
type VsyncToggleSystem struct {
	Keyboard input.Keyboard
	Windows  window.Manager
	Toggle   input.KeyEdge
}

func (v *VsyncToggleSystem) Execute(frame *ecs.UpdateFrame) {
	if !v.Toggle.JustPressed(v.Keyboard) {
		return
	}
	w, ok := primary(v.Windows)
	if !ok {
		Logger().Info("no primary window, present mode unchanged", "frame", frame.Number)
		return
	}
	mode := w.PresentMode().Toggled()
	w.SetPresentMode(mode)
	Logger().Info("PRESENT_MODE: " + mode.String())
}

func primary(m window.Manager) (window.Window, bool) {
	if m == nil {
		return nil, false
	}
	return m.Primary()
}
