package input_test

import (
	"testing"

	"github.com/plus3/bootstrap3d/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEdge(t *testing.T) {
	var e input.Edge

	levels := []bool{false, true, true, true, false, true, false, false}
	want := []bool{false, true, false, false, false, true, false, false}

	for i, level := range levels {
		assert.Equal(t, want[i], e.Update(level), "frame %d", i)
		assert.Equal(t, level, e.Held())
	}
}

func TestKeyEdgeHeldAcrossFrames(t *testing.T) {
	script := input.NewScript().HoldKey(input.KeyM, 2, 10)
	edge := input.KeyEdge{Key: input.KeyM}

	edges := 0
	for range 12 {
		if edge.JustPressed(script) {
			edges++
		}
		script.Advance()
	}
	assert.Equal(t, 1, edges)
}

func TestKeyEdgeNilKeyboard(t *testing.T) {
	edge := input.KeyEdge{Key: input.KeyV}
	assert.False(t, edge.JustPressed(nil))
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		want input.Key
	}{
		{"M", input.KeyM},
		{"v", input.KeyV},
		{"space", input.KeySpace},
		{"LeftShift", input.KeyLeftShift},
		{"f2", input.KeyF2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := input.ParseKey(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := input.ParseKey("hyper")
	assert.Error(t, err)
}

func TestKeyText(t *testing.T) {
	var k input.Key
	require.NoError(t, k.UnmarshalText([]byte("q")))
	assert.Equal(t, input.KeyQ, k)

	text, err := k.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Q", string(text))

	_, err = input.KeyUnknown.MarshalText()
	assert.Error(t, err)
}

func TestScriptMouse(t *testing.T) {
	script := input.NewScript().Move(1, 2, 3).Move(1, 1, 1)

	dx, dy := script.Delta()
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	script.Advance()
	dx, dy = script.Delta()
	assert.Equal(t, float32(3), dx)
	assert.Equal(t, float32(4), dy)
}
