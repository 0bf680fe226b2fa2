package raylibhost

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/plus3/bootstrap3d/input"
)

var keyCodes = map[input.Key]int32{
	input.KeyA: rl.KeyA, input.KeyB: rl.KeyB, input.KeyC: rl.KeyC, input.KeyD: rl.KeyD,
	input.KeyE: rl.KeyE, input.KeyF: rl.KeyF, input.KeyG: rl.KeyG, input.KeyH: rl.KeyH,
	input.KeyI: rl.KeyI, input.KeyJ: rl.KeyJ, input.KeyK: rl.KeyK, input.KeyL: rl.KeyL,
	input.KeyM: rl.KeyM, input.KeyN: rl.KeyN, input.KeyO: rl.KeyO, input.KeyP: rl.KeyP,
	input.KeyQ: rl.KeyQ, input.KeyR: rl.KeyR, input.KeyS: rl.KeyS, input.KeyT: rl.KeyT,
	input.KeyU: rl.KeyU, input.KeyV: rl.KeyV, input.KeyW: rl.KeyW, input.KeyX: rl.KeyX,
	input.KeyY: rl.KeyY, input.KeyZ: rl.KeyZ,

	input.KeySpace:     rl.KeySpace,
	input.KeyLeftShift: rl.KeyLeftShift,
	input.KeyEscape:    rl.KeyEscape,
	input.KeyF1:        rl.KeyF1,
	input.KeyF2:        rl.KeyF2,
	input.KeyF3:        rl.KeyF3,
}

// KeyCode maps a key to its raylib code. ok is false for keys raylib does
// not know about.
func KeyCode(k input.Key) (code int32, ok bool) {
	code, ok = keyCodes[k]
	return code, ok
}

// Keyboard reads key levels from raylib. Levels are refreshed when the frame
// ends, so every system sees the same state within one frame.
type Keyboard struct{}

func (Keyboard) Pressed(k input.Key) bool {
	code, ok := keyCodes[k]
	return ok && rl.IsKeyDown(code)
}

// Mouse reports raylib's per-frame mouse motion.
type Mouse struct{}

func (Mouse) Delta() (dx, dy float32) {
	d := rl.GetMouseDelta()
	return d.X, d.Y
}
