package scene

import (
	"github.com/chewxy/math32"
	"github.com/plus3/bootstrap3d/ecs"
	"github.com/plus3/bootstrap3d/input"
)

const maxPitch = 89 * math32.Pi / 180

// FreeFlySystem flies FreeFly cameras while the cursor is locked. W/S and A/D
// move on the ground plane, Space and LeftShift move vertically and mouse
// motion turns the view.
type FreeFlySystem struct {
	State   ecs.Singleton[InputToggleState]
	Cameras ecs.Query[struct {
		*Transform
		*FreeFly
	}]
	Keyboard input.Keyboard
	Mouse    input.Mouse
}

func (s *FreeFlySystem) Execute(frame *ecs.UpdateFrame) {
	state := s.State.Get()
	if state == nil || !state.CursorLocked {
		return
	}

	var dx, dy float32
	if s.Mouse != nil {
		dx, dy = s.Mouse.Delta()
	}
	dt := float32(frame.Delta().Seconds())

	for cam := range s.Cameras.Values() {
		fly := cam.FreeFly
		if !fly.initialized {
			f := cam.Transform.Forward()
			fly.Yaw = math32.Atan2(-f.X, -f.Z)
			fly.Pitch = math32.Asin(clamp(f.Y, -1, 1))
			fly.initialized = true
		}

		fly.Yaw -= dx * fly.Sensitivity
		fly.Pitch = clamp(fly.Pitch-dy*fly.Sensitivity, -maxPitch, maxPitch)
		cam.Transform.Rotation = QuatFromYawPitch(fly.Yaw, fly.Pitch)

		move := s.direction(fly.Yaw)
		if move != Vec3Zero && dt > 0 {
			cam.Transform.Translation = cam.Transform.Translation.Add(move.Normalize().Scale(fly.Speed * dt))
		}
	}
}

// direction sums the pressed movement keys into an unnormalized world vector.
func (s *FreeFlySystem) direction(yaw float32) Vec3 {
	if s.Keyboard == nil {
		return Vec3Zero
	}
	sin, cos := math32.Sin(yaw), math32.Cos(yaw)
	forward := V3(-sin, 0, -cos)
	right := V3(cos, 0, -sin)

	var move Vec3
	if s.Keyboard.Pressed(input.KeyW) {
		move = move.Add(forward)
	}
	if s.Keyboard.Pressed(input.KeyS) {
		move = move.Sub(forward)
	}
	if s.Keyboard.Pressed(input.KeyD) {
		move = move.Add(right)
	}
	if s.Keyboard.Pressed(input.KeyA) {
		move = move.Sub(right)
	}
	if s.Keyboard.Pressed(input.KeySpace) {
		move = move.Add(Vec3Y)
	}
	if s.Keyboard.Pressed(input.KeyLeftShift) {
		move = move.Sub(Vec3Y)
	}
	return move
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
