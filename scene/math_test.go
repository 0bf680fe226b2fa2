package scene_test

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/plus3/bootstrap3d/scene"
	"github.com/stretchr/testify/assert"
)

func TestQuatRotate(t *testing.T) {
	q := scene.QuatFromAxisAngle(scene.Vec3Y, math32.Pi/2)
	got := q.Rotate(scene.Vec3X)
	assert.True(t, got.ApproxEqual(scene.V3(0, 0, -1), 1e-6), "got %v", got)

	assert.Equal(t, scene.V3(1, 2, 3), scene.QuatIdentity.Rotate(scene.V3(1, 2, 3)))
}

func TestLookingAt(t *testing.T) {
	eye := scene.V3(-2, 2.5, 5)
	transform := scene.TransformFromXYZ(eye.X, eye.Y, eye.Z).LookingAt(scene.Vec3Zero, scene.Vec3Y)

	want := eye.Neg().Normalize()
	assert.True(t, transform.Forward().ApproxEqual(want, 1e-5), "forward %v, want %v", transform.Forward(), want)
	assert.InDelta(t, 0, transform.Right().Y, 1e-5, "right stays level")
	assert.Greater(t, transform.Up().Y, float32(0))
	assert.Equal(t, eye, transform.Translation)
}

func TestQuatFromYawPitch(t *testing.T) {
	q := scene.QuatFromYawPitch(math32.Pi/2, 0)
	forward := q.Rotate(scene.V3(0, 0, -1))
	assert.True(t, forward.ApproxEqual(scene.V3(-1, 0, 0), 1e-6), "got %v", forward)

	q = scene.QuatFromYawPitch(0, math32.Pi/4)
	forward = q.Rotate(scene.V3(0, 0, -1))
	assert.InDelta(t, math32.Sqrt(2)/2, forward.Y, 1e-6)
}
