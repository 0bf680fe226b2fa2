package scene

import (
	"github.com/plus3/bootstrap3d/ecs"
	"github.com/plus3/bootstrap3d/input"
)

// InputToggleState is the cursor lock requested by the user. It defaults to
// unlocked.
type InputToggleState struct {
	CursorLocked bool
}

// CursorToggleInput flips InputToggleState.CursorLocked once per press of the
// Toggle key.
// Holding the key does nothing further until it is released.
type CursorToggleInput struct {
	State    ecs.Singleton[InputToggleState]
	Keyboard input.Keyboard
	Toggle   input.KeyEdge
}

func (c *CursorToggleInput) Execute(frame *ecs.UpdateFrame) {
	if !c.Toggle.JustPressed(c.Keyboard) {
		return
	}
	state := c.State.Get()
	if state == nil {
		return
	}
	state.CursorLocked = !state.CursorLocked
	Logger().Debug("cursor lock toggled", "locked", state.CursorLocked, "frame", frame.Number)
}
