package ebitenhost

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/bootstrap3d/diagnostics"
	"github.com/plus3/bootstrap3d/ecs"
	"github.com/plus3/bootstrap3d/scene"
)

// pixelsPerUnit is the top-down map scale.
const pixelsPerUnit = 60

// projection maps world XZ onto the screen with the origin at the center
// and -Z pointing up.
type projection struct {
	cx, cy float32
}

func (p projection) point(v scene.Vec3) (x, y float32) {
	return p.cx + v.X*pixelsPerUnit, p.cy + v.Z*pixelsPerUnit
}

func rgba(c scene.Color) color.RGBA {
	r, g, b, a := c.RGBA8()
	return color.RGBA{R: r, G: g, B: b, A: a}
}

type topDown struct {
	storage *ecs.Storage
	meshes  *ecs.View[struct {
		*scene.Mesh
		*scene.Transform
		Material *scene.Material `ecs:"optional"`
	}]
	cameras *ecs.View[struct {
		*scene.Camera
		*scene.Transform
	}]
	lights *ecs.View[struct {
		*scene.PointLight
		*scene.Transform
	}]
}

func newTopDown(storage *ecs.Storage) *topDown {
	return &topDown{
		storage: storage,
		meshes: ecs.NewView[struct {
			*scene.Mesh
			*scene.Transform
			Material *scene.Material `ecs:"optional"`
		}](storage),
		cameras: ecs.NewView[struct {
			*scene.Camera
			*scene.Transform
		}](storage),
		lights: ecs.NewView[struct {
			*scene.PointLight
			*scene.Transform
		}](storage),
	}
}

func (d *topDown) draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 30, G: 30, B: 36, A: 255})
	bounds := screen.Bounds()
	p := projection{cx: float32(bounds.Dx()) / 2, cy: float32(bounds.Dy()) / 2}

	// Planes first so cubes draw on top.
	for _, shape := range []scene.Shape{scene.ShapePlane, scene.ShapeCube, scene.ShapeSphere} {
		for m := range d.meshes.Values() {
			if m.Mesh.Shape != shape {
				continue
			}
			c := color.RGBA{R: 200, G: 200, B: 200, A: 255}
			if m.Material != nil {
				c = rgba(m.Material.Color)
			}
			x, y := p.point(m.Transform.Translation)
			half := m.Mesh.Size * pixelsPerUnit / 2
			if shape == scene.ShapeSphere {
				vector.DrawFilledCircle(screen, x, y, half, c, true)
				continue
			}
			vector.DrawFilledRect(screen, x-half*m.Transform.Scale.X, y-half*m.Transform.Scale.Z,
				2*half*m.Transform.Scale.X, 2*half*m.Transform.Scale.Z, c, false)
		}
	}

	for l := range d.lights.Values() {
		x, y := p.point(l.Transform.Translation)
		vector.DrawFilledCircle(screen, x, y, 5, rgba(l.PointLight.Color), true)
	}

	for cam := range d.cameras.Values() {
		x, y := p.point(cam.Transform.Translation)
		tx, ty := p.point(cam.Transform.Translation.Add(cam.Transform.Forward()))
		vector.StrokeLine(screen, x, y, tx, ty, 2, color.RGBA{R: 90, G: 160, B: 255, A: 255}, true)
		vector.StrokeCircle(screen, x, y, 6, 2, color.RGBA{R: 90, G: 160, B: 255, A: 255}, true)
	}
}

func (d *topDown) status(w *Window) string {
	msg := "Present mode: " + w.PresentMode().String()
	if stats := ecs.ReadSingleton[diagnostics.FrameStats](d.storage); stats != nil {
		msg = fmt.Sprintf("FPS: %.0f\n%s", stats.FPS(), msg)
	} else {
		msg = fmt.Sprintf("FPS: %.0f\n%s", ebiten.ActualFPS(), msg)
	}
	if toggle := ecs.ReadSingleton[scene.InputToggleState](d.storage); toggle != nil {
		msg += fmt.Sprintf("\nCursor locked: %t", toggle.CursorLocked)
	}
	return msg
}

func drawStatus(screen *ebiten.Image, msg string) {
	ebitenutil.DebugPrint(screen, msg)
}
