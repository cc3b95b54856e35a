package keyframe

import (
	"math"
)

// Vec3 is a three-component vector.
type Vec3[F Float] [3]F

func (v Vec3[F]) Add(o Vec3[F]) Vec3[F] { return Vec3[F]{v[0] + o[0], v[1] + o[1], v[2] + o[2]} }
func (v Vec3[F]) Sub(o Vec3[F]) Vec3[F] { return Vec3[F]{v[0] - o[0], v[1] - o[1], v[2] - o[2]} }
func (v Vec3[F]) Scale(k F) Vec3[F] { return Vec3[F]{v[0] * k, v[1] * k, v[2] * k} }
func (v Vec3[F]) Dot(o Vec3[F]) F { return v[0]*o[0] + v[1]*o[1] + v[2]*o[2] }
func (v Vec3[F]) Magnitude2() F { return v.Dot(v) }

// Vec4 is a four-component vector. Quaternions stored as (x, y, z, w) arrays
// interpolate as Vec4.
type Vec4[F Float] [4]F

func (v Vec4[F]) Add(o Vec4[F]) Vec4[F] {
	return Vec4[F]{v[0] + o[0], v[1] + o[1], v[2] + o[2], v[3] + o[3]}
}

func (v Vec4[F]) Sub(o Vec4[F]) Vec4[F] {
	return Vec4[F]{v[0] - o[0], v[1] - o[1], v[2] - o[2], v[3] - o[3]}
}

func (v Vec4[F]) Scale(k F) Vec4[F] {
	return Vec4[F]{v[0] * k, v[1] * k, v[2] * k, v[3] * k}
}

func (v Vec4[F]) Dot(o Vec4[F]) F {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2] + v[3]*o[3]
}

func (v Vec4[F]) Magnitude2() F { return v.Dot(v) }

// Quat is a rotation quaternion with vector part (X, Y, Z) and scalar part W.
// Interpolation treats it as a 4-vector; only unit quaternions represent
// rotations.
type Quat[F Float] struct {
	X, Y, Z, W F
}

// IdentityQuat returns the quaternion of the null rotation.
func IdentityQuat[F Float]() Quat[F] {
	return Quat[F]{W: 1}
}

// QuatFromAxisAngle returns the unit quaternion rotating by angle radians
// about axis. axis need not be normalized but must not be zero.
func QuatFromAxisAngle[F Float](axis Vec3[F], angle F) Quat[F] {
	a := Normalize[Vec3[F], F](axis)
	half := float64(angle) / 2
	s := F(math.Sin(half))
	return Quat[F]{X: a[0] * s, Y: a[1] * s, Z: a[2] * s, W: F(math.Cos(half))}
}

func (q Quat[F]) Add(o Quat[F]) Quat[F] {
	return Quat[F]{q.X + o.X, q.Y + o.Y, q.Z + o.Z, q.W + o.W}
}

func (q Quat[F]) Sub(o Quat[F]) Quat[F] {
	return Quat[F]{q.X - o.X, q.Y - o.Y, q.Z - o.Z, q.W - o.W}
}

func (q Quat[F]) Scale(k F) Quat[F] {
	return Quat[F]{q.X * k, q.Y * k, q.Z * k, q.W * k}
}

func (q Quat[F]) Dot(o Quat[F]) F {
	return q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
}

func (q Quat[F]) Magnitude2() F { return q.Dot(q) }

// Mul returns the Hamilton product q·o, the rotation o followed by q.
func (q Quat[F]) Mul(o Quat[F]) Quat[F] {
	return Quat[F]{
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

// Conjugate returns the inverse rotation of a unit quaternion.
func (q Quat[F]) Conjugate() Quat[F] {
	return Quat[F]{-q.X, -q.Y, -q.Z, q.W}
}

// Rotate applies the rotation to v. q must be a unit quaternion.
func (q Quat[F]) Rotate(v Vec3[F]) Vec3[F] {
	r := q.Mul(Quat[F]{X: v[0], Y: v[1], Z: v[2]}).Mul(q.Conjugate())
	return Vec3[F]{r.X, r.Y, r.Z}
}

// Scalar is a single real value. Normalization is the identity.
type Scalar[F Float] struct {
	V F
}

func (s Scalar[F]) Add(o Scalar[F]) Scalar[F] { return Scalar[F]{s.V + o.V} }
func (s Scalar[F]) Sub(o Scalar[F]) Scalar[F] { return Scalar[F]{s.V - o.V} }
func (s Scalar[F]) Scale(k F) Scalar[F] { return Scalar[F]{s.V * k} }
func (s Scalar[F]) Dot(o Scalar[F]) F { return s.V * o.V }
func (s Scalar[F]) Magnitude2() F { return s.V * s.V }
func (s Scalar[F]) Normalize() Scalar[F] { return s }

// Int is an integral value blended with real factors of type F. Scale
// rounds to the nearest integer, so chained blends accumulate rounding
// error. Normalization is the identity.
type Int[F Float] int64

func (i Int[F]) Add(o Int[F]) Int[F] { return i + o }
func (i Int[F]) Sub(o Int[F]) Int[F] { return i - o }
func (i Int[F]) Scale(k F) Int[F] { return Int[F](math.Round(float64(i) * float64(k))) }
func (i Int[F]) Dot(o Int[F]) F { return F(i) * F(o) }
func (i Int[F]) Magnitude2() F { return F(i) * F(i) }
func (i Int[F]) Normalize() Int[F] { return i }

var (
	_ Primitive[Vec3[float32], float32]   = Vec3[float32]{}
	_ Primitive[Vec4[float64], float64]   = Vec4[float64]{}
	_ Primitive[Quat[float32], float32]   = Quat[float32]{}
	_ Primitive[Scalar[float64], float64] = Scalar[float64]{}
	_ Primitive[Int[float32], float32]    = Int[float32](0)
	_ Normalizer[Scalar[float64]]         = Scalar[float64]{}
	_ Normalizer[Int[float64]]            = Int[float64](0)
)
