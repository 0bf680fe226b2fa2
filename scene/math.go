package scene

import "github.com/chewxy/math32"

// Vec3 is a 3D vector in a right-handed, Y-up coordinate system.
type Vec3 struct {
	X, Y, Z float32
}

var (
	Vec3Zero = Vec3{}
	Vec3One  = Vec3{1, 1, 1}
	Vec3X    = Vec3{1, 0, 0}
	Vec3Y    = Vec3{0, 1, 0}
	Vec3Z    = Vec3{0, 0, 1}
)

// V3 is shorthand for Vec3{x, y, z}.
func V3(x, y, z float32) Vec3 { return Vec3{x, y, z} }

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float32) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Dot(o Vec3) float32   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) Length() float32      { return math32.Sqrt(v.Dot(v)) }
func (v Vec3) Neg() Vec3            { return Vec3{-v.X, -v.Y, -v.Z} }

// ApproxEqual compares component-wise within eps.
func (v Vec3) ApproxEqual(o Vec3, eps float32) bool {
	return math32.Abs(v.X-o.X) <= eps && math32.Abs(v.Y-o.Y) <= eps && math32.Abs(v.Z-o.Z) <= eps
}

// Cross returns the right-handed cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Normalize returns the unit vector, or the zero vector for zero input.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Quat is a unit quaternion rotation.
type Quat struct {
	X, Y, Z, W float32
}

var QuatIdentity = Quat{0, 0, 0, 1}

// QuatFromAxisAngle rotates angle radians counter-clockwise around axis.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	a := axis.Normalize()
	s, c := math32.Sin(angle/2), math32.Cos(angle/2)
	return Quat{a.X * s, a.Y * s, a.Z * s, c}
}

// QuatFromYawPitch applies pitch around X, then yaw around Y.
func QuatFromYawPitch(yaw, pitch float32) Quat {
	return QuatFromAxisAngle(Vec3Y, yaw).Mul(QuatFromAxisAngle(Vec3X, pitch))
}

// quatFromAxes builds the rotation whose basis columns are x, y and z.
// The axes must be orthonormal.
func quatFromAxes(x, y, z Vec3) Quat {
	m00, m01, m02 := x.X, x.Y, x.Z
	m10, m11, m12 := y.X, y.Y, y.Z
	m20, m21, m22 := z.X, z.Y, z.Z

	if m22 <= 0 {
		dif10 := m11 - m00
		omm22 := 1 - m22
		if dif10 <= 0 {
			four := omm22 - dif10
			inv := 0.5 / math32.Sqrt(four)
			return Quat{four * inv, (m01 + m10) * inv, (m02 + m20) * inv, (m12 - m21) * inv}
		}
		four := omm22 + dif10
		inv := 0.5 / math32.Sqrt(four)
		return Quat{(m01 + m10) * inv, four * inv, (m12 + m21) * inv, (m20 - m02) * inv}
	}

	sum10 := m11 + m00
	opm22 := 1 + m22
	if sum10 <= 0 {
		four := opm22 - sum10
		inv := 0.5 / math32.Sqrt(four)
		return Quat{(m02 + m20) * inv, (m12 + m21) * inv, four * inv, (m01 - m10) * inv}
	}
	four := opm22 + sum10
	inv := 0.5 / math32.Sqrt(four)
	return Quat{(m12 - m21) * inv, (m20 - m02) * inv, (m01 - m10) * inv, four * inv}
}

// Mul composes rotations: the result applies o first, then q.
func (q Quat) Mul(o Quat) Quat {
	return Quat{
		q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
		q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

// Rotate applies the rotation to v.
func (q Quat) Rotate(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// Normalize scales q to unit length.
func (q Quat) Normalize() Quat {
	l := math32.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	if l == 0 {
		return QuatIdentity
	}
	return Quat{q.X / l, q.Y / l, q.Z / l, q.W / l}
}
