package raylibhost

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/plus3/bootstrap3d/input"
	"github.com/plus3/bootstrap3d/window"
	"github.com/stretchr/testify/assert"
)

type fakeDriver struct {
	vsync   []bool
	locks   int
	unlocks int
}

func (f *fakeDriver) SetVsync(enabled bool) { f.vsync = append(f.vsync, enabled) }
func (f *fakeDriver) LockCursor()           { f.locks++ }
func (f *fakeDriver) UnlockCursor(bool)     { f.unlocks++ }

func TestWindowAppliesChangesOnly(t *testing.T) {
	d := &fakeDriver{}
	w := newWindow(d, window.DefaultConfig())

	w.SetPresentMode(window.AutoVsync)
	assert.Empty(t, d.vsync)
	w.SetPresentMode(window.AutoNoVsync)
	w.SetPresentMode(window.AutoNoVsync)
	w.SetPresentMode(window.AutoVsync)
	assert.Equal(t, []bool{false, true}, d.vsync)

	for range 5 {
		w.SetCursor(window.CursorCaptured)
	}
	assert.Equal(t, 1, d.locks)
	assert.Equal(t, window.CursorCaptured, w.Cursor())

	w.SetCursor(window.CursorFree)
	w.SetCursor(window.CursorFree)
	assert.Equal(t, 1, d.unlocks)
}

func TestWindowPrimary(t *testing.T) {
	w := newWindow(&fakeDriver{}, window.DefaultConfig())
	got, ok := w.Primary()
	assert.True(t, ok)
	assert.Same(t, w, got)

	w.setOpen(false)
	_, ok = w.Primary()
	assert.False(t, ok)
}

func TestConfigFlags(t *testing.T) {
	cfg := window.DefaultConfig()
	flags := configFlags(cfg)
	assert.NotZero(t, flags&rl.FlagWindowResizable)
	assert.NotZero(t, flags&rl.FlagVsyncHint)
	assert.Zero(t, flags&rl.FlagFullscreenMode)

	cfg.Resizable = false
	cfg.PresentMode = window.AutoNoVsync
	cfg.Mode = window.Fullscreen
	flags = configFlags(cfg)
	assert.Zero(t, flags&rl.FlagWindowResizable)
	assert.Zero(t, flags&rl.FlagVsyncHint)
	assert.NotZero(t, flags&rl.FlagFullscreenMode)
}

func TestKeyCodes(t *testing.T) {
	for _, k := range input.Keys() {
		_, ok := KeyCode(k)
		assert.True(t, ok, "key %s has no raylib code", k)
	}
	code, _ := KeyCode(input.KeyM)
	assert.Equal(t, int32(rl.KeyM), code)
	_, ok := KeyCode(input.KeyUnknown)
	assert.False(t, ok)
}
