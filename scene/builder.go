package scene

import "github.com/plus3/bootstrap3d/ecs"

const (
	GroundPlaneSize = 5.0
	CubeSize        = 1.0
	LightIntensity  = 1500.0
	LightRange      = 20.0
	CameraFovY      = 45.0
)

var (
	GroundPlaneColor = RGB(0.3, 0.5, 0.3)
	CubeColor        = RGB(0.8, 0.7, 0.3)
	CubePosition     = V3(0, 0.5, 0)
	ViewPosition     = V3(-2.0, 2.5, 5.0)
)

// GroundPlane is the component bundle of the ground plane.
func GroundPlane() []any {
	return []any{
		Name{Value: "ground"},
		Mesh{Shape: ShapePlane, Size: GroundPlaneSize},
		Material{Color: GroundPlaneColor},
		TransformFromXYZ(0, 0, 0),
	}
}

// Cube is the component bundle of the tagged cube.
func Cube() []any {
	return []any{
		Name{Value: "cube"},
		Mesh{Shape: ShapeCube, Size: CubeSize},
		Material{Color: CubeColor},
		TransformFromXYZ(CubePosition.X, CubePosition.Y, CubePosition.Z),
		Thing{},
	}
}

// ViewCamera is the component bundle of the camera. With freeFly the camera
// can be navigated while the cursor is locked.
func ViewCamera(freeFly bool) []any {
	transform := TransformFromXYZ(ViewPosition.X, ViewPosition.Y, ViewPosition.Z).LookingAt(Vec3Zero, Vec3Y)
	components := []any{
		Name{Value: "camera"},
		Camera{FovY: CameraFovY},
		transform,
	}
	if freeFly {
		components = append(components, DefaultFreeFly())
	}
	return components
}

// Light is the component bundle of the point light.
func Light() []any {
	return []any{
		Name{Value: "light"},
		PointLight{
			Intensity:      LightIntensity,
			Range:          LightRange,
			Color:          RGB(1, 1, 1),
			ShadowsEnabled: true,
		},
		TransformFromXYZ(ViewPosition.X, ViewPosition.Y, ViewPosition.Z).LookingAt(Vec3Zero, Vec3Y),
	}
}

// Spawner is a startup system that spawns one entity from a bundle.
type Spawner struct {
	Label  string
	Bundle func() []any
}

// Execute queues the bundle on the frame's commands.
func (s *Spawner) Execute(frame *ecs.UpdateFrame) {
	frame.Commands.Spawn(s.Bundle()...)
}

// SystemName reports Label in scheduler stats.
func (s *Spawner) SystemName() string { return s.Label }

// SpawnGroundPlane returns the startup system that spawns the ground plane.
func SpawnGroundPlane() *Spawner {
	return &Spawner{Label: "SpawnGroundPlane", Bundle: GroundPlane}
}

// SpawnCube returns the startup system that spawns the Thing-tagged cube.
func SpawnCube() *Spawner {
	return &Spawner{Label: "SpawnCube", Bundle: Cube}
}

// SpawnCamera returns the startup system that spawns the camera. With freeFly
// the camera also gets FreeFly.
func SpawnCamera(freeFly bool) *Spawner {
	return &Spawner{Label: "SpawnCamera", Bundle: func() []any { return ViewCamera(freeFly) }}
}

// SpawnLight returns the startup system that spawns the point light.
func SpawnLight() *Spawner {
	return &Spawner{Label: "SpawnLight", Bundle: Light}
}
