package keyframe

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vector is a float64 three-vector backed by gonum's r3.Vec, for curves that
// feed gonum geometry directly.
type Vector r3.Vec

func (v Vector) Add(o Vector) Vector { return Vector(r3.Add(r3.Vec(v), r3.Vec(o))) }
func (v Vector) Sub(o Vector) Vector { return Vector(r3.Sub(r3.Vec(v), r3.Vec(o))) }
func (v Vector) Scale(k float64) Vector { return Vector(r3.Scale(k, r3.Vec(v))) }
func (v Vector) Dot(o Vector) float64 { return r3.Dot(r3.Vec(v), r3.Vec(o)) }
func (v Vector) Magnitude2() float64 { return r3.Norm2(r3.Vec(v)) }

// Normalize returns the unit vector in the direction of v.
func (v Vector) Normalize() Vector { return Vector(r3.Unit(r3.Vec(v))) }

// Rotation is a float64 rotation quaternion backed by gonum's quat.Number.
// Real holds the scalar part and Imag, Jmag, Kmag the vector part.
type Rotation quat.Number

// RotationFromAxisAngle returns the unit quaternion rotating by angle radians
// about axis, which must not be zero.
func RotationFromAxisAngle(axis Vector, angle float64) Rotation {
	a := axis.Normalize()
	s, c := math.Sincos(angle / 2)
	return Rotation{Real: c, Imag: a.X * s, Jmag: a.Y * s, Kmag: a.Z * s}
}

func (r Rotation) Add(o Rotation) Rotation {
	return Rotation(quat.Add(quat.Number(r), quat.Number(o)))
}

func (r Rotation) Sub(o Rotation) Rotation {
	return Rotation(quat.Sub(quat.Number(r), quat.Number(o)))
}

func (r Rotation) Scale(k float64) Rotation {
	return Rotation(quat.Scale(k, quat.Number(r)))
}

// Dot is the four-dimensional inner product; quat has no equivalent.
func (r Rotation) Dot(o Rotation) float64 {
	return r.Real*o.Real + r.Imag*o.Imag + r.Jmag*o.Jmag + r.Kmag*o.Kmag
}

func (r Rotation) Magnitude2() float64 { return r.Dot(r) }

// Normalize scales r to unit length with quat.Abs.
func (r Rotation) Normalize() Rotation {
	return r.Scale(1 / quat.Abs(quat.Number(r)))
}

// Rotate applies the rotation to v. r must be a unit quaternion.
func (r Rotation) Rotate(v Vector) Vector {
	q := quat.Number(r)
	p := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	out := quat.Mul(quat.Mul(q, p), quat.Conj(q))
	return Vector{X: out.Imag, Y: out.Jmag, Z: out.Kmag}
}

var (
	_ Primitive[Vector, float64]   = Vector{}
	_ Primitive[Rotation, float64] = Rotation{}
	_ Normalizer[Vector]           = Vector{}
	_ Normalizer[Rotation]         = Rotation{}
)
