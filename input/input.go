// Package input defines the keyboard and mouse surface the scene systems read,
// and the edge detection they build on.
package input

import (
	"fmt"
	"strings"
)

// Key identifies a physical key independent of the host backend.
type Key int

const (
	KeyUnknown Key = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeySpace
	KeyLeftShift
	KeyEscape
	KeyF1
	KeyF2
	KeyF3
	keyCount
)

var keyNames = map[Key]string{
	KeySpace:     "Space",
	KeyLeftShift: "LeftShift",
	KeyEscape:    "Escape",
	KeyF1:        "F1",
	KeyF2:        "F2",
	KeyF3:        "F3",
}

func (k Key) String() string {
	if k >= KeyA && k <= KeyZ {
		return string(rune('A' + int(k-KeyA)))
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Keys returns every known key in declaration order.
func Keys() []Key {
	keys := make([]Key, 0, keyCount-1)
	for k := KeyA; k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

// ParseKey maps a key name such as "M", "space" or "F1" to a Key. Matching is
// case-insensitive.
func ParseKey(name string) (Key, error) {
	for _, k := range Keys() {
		if strings.EqualFold(k.String(), name) {
			return k, nil
		}
	}
	return KeyUnknown, fmt.Errorf("unknown key %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (k Key) MarshalText() ([]byte, error) {
	if k <= KeyUnknown || k >= keyCount {
		return nil, fmt.Errorf("cannot marshal key %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Key) UnmarshalText(text []byte) error {
	parsed, err := ParseKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Keyboard reports key levels for the current frame.
type Keyboard interface {
	Pressed(key Key) bool
}

// Mouse reports pointer motion accumulated since the previous frame.
type Mouse interface {
	Delta() (dx, dy float32)
}

// Edge turns a level signal into a rising-edge signal by comparing each
// sample with the previous frame's. The zero value starts released.
type Edge struct {
	previous bool
}

// Update records this frame's level and reports whether it went from
// released to pressed.
func (e *Edge) Update(pressed bool) bool {
	rising := pressed && !e.previous
	e.previous = pressed
	return rising
}

// Held reports the level recorded by the last Update.
func (e *Edge) Held() bool {
	return e.previous
}

// KeyEdge watches one key of a Keyboard.
type KeyEdge struct {
	Key  Key
	edge Edge
}

// JustPressed samples the key and reports a press edge.
func (k *KeyEdge) JustPressed(kb Keyboard) bool {
	if kb == nil {
		return k.edge.Update(false)
	}
	return k.edge.Update(kb.Pressed(k.Key))
}
