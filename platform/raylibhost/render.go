package raylibhost

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/plus3/bootstrap3d/diagnostics"
	"github.com/plus3/bootstrap3d/ecs"
	"github.com/plus3/bootstrap3d/scene"
)

func vec(v scene.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X, v.Y, v.Z)
}

func color(c scene.Color) rl.Color {
	r, g, b, a := c.RGBA8()
	return rl.NewColor(r, g, b, a)
}

// cameraFor converts a scene camera to raylib's look-at form.
func cameraFor(t *scene.Transform, cam *scene.Camera) rl.Camera3D {
	return rl.Camera3D{
		Position:   vec(t.Translation),
		Target:     vec(t.Translation.Add(t.Forward())),
		Up:         vec(t.Up()),
		Fovy:       cam.FovY,
		Projection: rl.CameraPerspective,
	}
}

// renderer draws the world from the first camera it finds.
type renderer struct {
	storage *ecs.Storage
	cameras *ecs.View[struct {
		*scene.Camera
		*scene.Transform
	}]
	meshes *ecs.View[struct {
		*scene.Mesh
		*scene.Transform
		Material *scene.Material `ecs:"optional"`
	}]
	lights *ecs.View[struct {
		*scene.PointLight
		*scene.Transform
	}]
	overlay bool
}

func newRenderer(storage *ecs.Storage, overlay bool) *renderer {
	return &renderer{
		storage: storage,
		cameras: ecs.NewView[struct {
			*scene.Camera
			*scene.Transform
		}](storage),
		meshes: ecs.NewView[struct {
			*scene.Mesh
			*scene.Transform
			Material *scene.Material `ecs:"optional"`
		}](storage),
		lights: ecs.NewView[struct {
			*scene.PointLight
			*scene.Transform
		}](storage),
		overlay: overlay,
	}
}

func (r *renderer) draw(w *Window) {
	rl.ClearBackground(rl.NewColor(30, 30, 36, 255))

	camera, ok := r.camera()
	if ok {
		rl.BeginMode3D(camera)
		r.drawMeshes()
		for light := range r.lights.Values() {
			rl.DrawSphere(vec(light.Transform.Translation), 0.1, color(light.PointLight.Color))
		}
		rl.EndMode3D()
	}

	if r.overlay {
		r.drawOverlay(w)
	}
}

func (r *renderer) camera() (rl.Camera3D, bool) {
	for cam := range r.cameras.Values() {
		return cameraFor(cam.Transform, cam.Camera), true
	}
	return rl.Camera3D{}, false
}

func (r *renderer) drawMeshes() {
	for m := range r.meshes.Values() {
		c := rl.LightGray
		if m.Material != nil {
			c = color(m.Material.Color)
		}
		pos := vec(m.Transform.Translation)
		size := m.Mesh.Size
		switch m.Mesh.Shape {
		case scene.ShapePlane:
			rl.DrawPlane(pos, rl.NewVector2(size*m.Transform.Scale.X, size*m.Transform.Scale.Z), c)
		case scene.ShapeCube:
			s := m.Transform.Scale.Scale(size)
			rl.DrawCube(pos, s.X, s.Y, s.Z, c)
			rl.DrawCubeWires(pos, s.X, s.Y, s.Z, rl.DarkGray)
		case scene.ShapeSphere:
			rl.DrawSphere(pos, size/2, c)
		}
	}
}

func (r *renderer) drawOverlay(w *Window) {
	const size, line = 16, 20
	y := int32(10)
	text := func(s string) {
		rl.DrawText(s, 10, y, size, rl.RayWhite)
		y += line
	}

	if stats := ecs.ReadSingleton[diagnostics.FrameStats](r.storage); stats != nil {
		text(fmt.Sprintf("FPS: %.0f (%.2f ms)", stats.FPS(), stats.Average().Seconds()*1000))
	} else {
		text(fmt.Sprintf("FPS: %d", rl.GetFPS()))
	}
	text("Present mode: " + w.PresentMode().String())
	if toggle := ecs.ReadSingleton[scene.InputToggleState](r.storage); toggle != nil {
		text(fmt.Sprintf("Cursor locked: %t", toggle.CursorLocked))
	}
}
