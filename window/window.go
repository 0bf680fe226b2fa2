// Package window describes the primary window's presentation state and the
// manager the scene systems use to reach it.
package window

import (
	"fmt"
	"strings"
)

// PresentMode is the display synchronization policy.
type PresentMode int

const (
	AutoVsync PresentMode = iota
	AutoNoVsync
)

func (m PresentMode) String() string {
	switch m {
	case AutoVsync:
		return "AutoVsync"
	case AutoNoVsync:
		return "AutoNoVsync"
	default:
		return fmt.Sprintf("PresentMode(%d)", int(m))
	}
}

// Vsync reports whether frames are synchronized to the display.
func (m PresentMode) Vsync() bool {
	return m == AutoVsync
}

// Toggled returns the other mode.
func (m PresentMode) Toggled() PresentMode {
	if m == AutoVsync {
		return AutoNoVsync
	}
	return AutoVsync
}

// ParsePresentMode accepts "AutoVsync"/"vsync" and "AutoNoVsync"/"novsync".
func ParsePresentMode(s string) (PresentMode, error) {
	switch strings.ToLower(s) {
	case "autovsync", "vsync", "on":
		return AutoVsync, nil
	case "autonovsync", "novsync", "off":
		return AutoNoVsync, nil
	}
	return 0, fmt.Errorf("unknown present mode %q", s)
}

func (m PresentMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *PresentMode) UnmarshalText(text []byte) error {
	parsed, err := ParsePresentMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// CursorGrabMode controls whether the cursor can leave the window.
type CursorGrabMode int

const (
	GrabNone CursorGrabMode = iota
	GrabConfined
	GrabLocked
)

func (g CursorGrabMode) String() string {
	switch g {
	case GrabNone:
		return "None"
	case GrabConfined:
		return "Confined"
	case GrabLocked:
		return "Locked"
	default:
		return fmt.Sprintf("CursorGrabMode(%d)", int(g))
	}
}

// Cursor is the cursor state of a window.
type Cursor struct {
	Grab    CursorGrabMode
	Visible bool
}

var (
	// CursorFree is the default: not grabbed, visible.
	CursorFree = Cursor{Grab: GrabNone, Visible: true}
	// CursorCaptured is grabbed and hidden, for mouse look.
	CursorCaptured = Cursor{Grab: GrabLocked, Visible: false}
)

// Mode is the window's fullscreen mode.
type Mode int

const (
	Windowed Mode = iota
	BorderlessFullscreen
	Fullscreen
)

func (m Mode) String() string {
	switch m {
	case Windowed:
		return "Windowed"
	case BorderlessFullscreen:
		return "BorderlessFullscreen"
	case Fullscreen:
		return "Fullscreen"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *Mode) UnmarshalText(text []byte) error {
	for _, candidate := range []Mode{Windowed, BorderlessFullscreen, Fullscreen} {
		if strings.EqualFold(candidate.String(), string(text)) {
			*m = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown window mode %q", string(text))
}

// Config is the initial window configuration, applied once at startup.
type Config struct {
	Title       string      `yaml:"title"`
	Width       int         `yaml:"width"`
	Height      int         `yaml:"height"`
	Resizable   bool        `yaml:"resizable"`
	Mode        Mode        `yaml:"mode"`
	PresentMode PresentMode `yaml:"present_mode"`
}

// DefaultConfig matches the window the scene was designed around.
func DefaultConfig() Config {
	return Config{
		Title:       "I am a window!",
		Width:       800,
		Height:      600,
		Resizable:   true,
		Mode:        Windowed,
		PresentMode: AutoVsync,
	}
}

// Window is the mutable presentation state of one host window.
type Window interface {
	PresentMode() PresentMode
	SetPresentMode(PresentMode)
	Cursor() Cursor
	SetCursor(Cursor)
}

// Manager hands out the primary window. ok is false when there is none,
// e.g. before creation or after the window closed.
type Manager interface {
	Primary() (w Window, ok bool)
}
