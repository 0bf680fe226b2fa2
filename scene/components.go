// Package scene populates a small 3D world and drives the per-frame
// coordination around it: periodic position diagnostics, the cursor lock
// toggle and the vsync toggle. Rendering and windowing belong to the host.
package scene

import "github.com/plus3/bootstrap3d/ecs"

// Transform is an entity's pose in world space.
type Transform struct {
	Translation Vec3
	Rotation    Quat
	Scale       Vec3
}

// TransformFromXYZ places an unrotated, unscaled transform at (x, y, z).
func TransformFromXYZ(x, y, z float32) Transform {
	return Transform{Translation: V3(x, y, z), Rotation: QuatIdentity, Scale: Vec3One}
}

// LookingAt rotates the transform so its forward axis (-Z) points at target,
// keeping up as close to the given up vector as possible.
func (t Transform) LookingAt(target, up Vec3) Transform {
	back := t.Translation.Sub(target).Normalize()
	if back == Vec3Zero {
		return t
	}
	right := up.Cross(back).Normalize()
	if right == Vec3Zero {
		// up is parallel to the view direction; pick any perpendicular axis.
		right = Vec3X
	}
	newUp := back.Cross(right)
	t.Rotation = quatFromAxes(right, newUp, back)
	return t
}

// Forward is the direction the transform faces.
func (t Transform) Forward() Vec3 { return t.Rotation.Rotate(Vec3Z.Neg()) }

// Right is the transform's local +X in world space.
func (t Transform) Right() Vec3 { return t.Rotation.Rotate(Vec3X) }

// Up is the transform's local +Y in world space.
func (t Transform) Up() Vec3 { return t.Rotation.Rotate(Vec3Y) }

// Shape is the primitive a Mesh renders.
type Shape int

const (
	ShapePlane Shape = iota
	ShapeCube
	ShapeSphere
)

func (s Shape) String() string {
	switch s {
	case ShapePlane:
		return "Plane"
	case ShapeCube:
		return "Cube"
	case ShapeSphere:
		return "Sphere"
	default:
		return "Unknown"
	}
}

// Mesh is the render descriptor's geometry. Size is the edge length for
// planes and cubes and the diameter for spheres.
type Mesh struct {
	Shape Shape
	Size  float32
}

// Color is linear RGBA in [0, 1].
type Color struct {
	R, G, B, A float32
}

// RGB returns an opaque color.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA8 converts to 8-bit channels.
func (c Color) RGBA8() (r, g, b, a uint8) {
	conv := func(v float32) uint8 {
		switch {
		case v <= 0:
			return 0
		case v >= 1:
			return 255
		}
		return uint8(v*255 + 0.5)
	}
	return conv(c.R), conv(c.G), conv(c.B), conv(c.A)
}

// Material is the render descriptor's surface.
type Material struct {
	Color Color
}

// PointLight emits in all directions from the entity's translation.
type PointLight struct {
	Intensity      float32
	Range          float32
	Color          Color
	ShadowsEnabled bool
}

// Camera marks the entity the scene is viewed from.
type Camera struct {
	FovY float32 // degrees
}

// Thing tags entities whose positions the diagnostic reporter samples.
type Thing struct{}

// FreeFly lets the camera be flown with the keyboard and mouse while the
// cursor is locked. Yaw and Pitch are derived from the transform on first use.
type FreeFly struct {
	Speed       float32 // units per second
	Sensitivity float32 // radians per mouse unit
	Yaw, Pitch  float32
	initialized bool
}

// DefaultFreeFly returns the navigation settings the scene camera uses.
func DefaultFreeFly() FreeFly {
	return FreeFly{Speed: 4, Sensitivity: 0.003}
}

// Name is a human-readable label for inspectors and logs.
type Name struct {
	Value string
}

// RegisterComponents registers every component type the scene spawns.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Transform](registry)
	ecs.RegisterComponent[Mesh](registry)
	ecs.RegisterComponent[Material](registry)
	ecs.RegisterComponent[PointLight](registry)
	ecs.RegisterComponent[Camera](registry)
	ecs.RegisterComponent[Thing](registry)
	ecs.RegisterComponent[FreeFly](registry)
	ecs.RegisterComponent[Name](registry)
}
