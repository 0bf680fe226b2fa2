package ebitenhost

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/bootstrap3d/input"
)

var keyCodes = map[input.Key]ebiten.Key{
	input.KeyA: ebiten.KeyA, input.KeyB: ebiten.KeyB, input.KeyC: ebiten.KeyC, input.KeyD: ebiten.KeyD,
	input.KeyE: ebiten.KeyE, input.KeyF: ebiten.KeyF, input.KeyG: ebiten.KeyG, input.KeyH: ebiten.KeyH,
	input.KeyI: ebiten.KeyI, input.KeyJ: ebiten.KeyJ, input.KeyK: ebiten.KeyK, input.KeyL: ebiten.KeyL,
	input.KeyM: ebiten.KeyM, input.KeyN: ebiten.KeyN, input.KeyO: ebiten.KeyO, input.KeyP: ebiten.KeyP,
	input.KeyQ: ebiten.KeyQ, input.KeyR: ebiten.KeyR, input.KeyS: ebiten.KeyS, input.KeyT: ebiten.KeyT,
	input.KeyU: ebiten.KeyU, input.KeyV: ebiten.KeyV, input.KeyW: ebiten.KeyW, input.KeyX: ebiten.KeyX,
	input.KeyY: ebiten.KeyY, input.KeyZ: ebiten.KeyZ,

	input.KeySpace:     ebiten.KeySpace,
	input.KeyLeftShift: ebiten.KeyShiftLeft,
	input.KeyEscape:    ebiten.KeyEscape,
	input.KeyF1:        ebiten.KeyF1,
	input.KeyF2:        ebiten.KeyF2,
	input.KeyF3:        ebiten.KeyF3,
}

// Keyboard reads key levels from ebiten. While Blocked returns true, for
// example when an ImGui widget has focus, every key reads as released.
type Keyboard struct {
	Blocked func() bool
}

func (k *Keyboard) Pressed(key input.Key) bool {
	if k.Blocked != nil && k.Blocked() {
		return false
	}
	code, ok := keyCodes[key]
	return ok && ebiten.IsKeyPressed(code)
}

// Mouse derives motion from cursor positions sampled once per tick.
type Mouse struct {
	mu          sync.Mutex
	x, y        int
	dx, dy      float32
	hasPrevious bool
}

// sample records the cursor position for the coming tick.
func (m *Mouse) sample(x, y int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.hasPrevious {
		m.dx, m.dy = float32(x-m.x), float32(y-m.y)
	}
	m.x, m.y = x, y
	m.hasPrevious = true
}

func (m *Mouse) Delta() (dx, dy float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dx, m.dy
}
