// Package engine implements the keyframe locator and the interpolation algorithms.
//
// Functions in this package assume the keyframe buffers were already checked
// with Validate. They only report errors that depend on the query time.
package engine

import (
	"math"

	"github.com/tphakala/go-keyframe/internal/simdops"
)

// Primitive is the algebra an output type must provide to be interpolated.
// T is the implementing type itself and F the real type of times and factors.
//
// Implementations are values: every operation returns a new T and leaves the
// receiver untouched.
type Primitive[T any, F simdops.Float] interface {
	// Add returns the component-wise sum.
	Add(other T) T

	// Sub returns the component-wise difference.
	Sub(other T) T

	// Scale multiplies every component by k. Integral types round the result.
	Scale(k F) T

	// Dot returns the inner product. Only the rotation-aware interpolators use it.
	Dot(other T) F

	// Magnitude2 returns the squared Euclidean norm.
	Magnitude2() F
}

// Normalizer is implemented by primitives that override the default
// normalization, typically to make it the identity for non-normable types.
type Normalizer[T any] interface {
	Normalize() T
}

// Sized is implemented by variable-length primitives. Every output on one
// curve must report the same Len.
type Sized interface {
	Len() int
}

// Magnitude returns the Euclidean norm of v.
func Magnitude[T Primitive[T, F], F simdops.Float](v T) F {
	return F(math.Sqrt(float64(v.Magnitude2())))
}

// Normalize returns v scaled to unit length, or v's own Normalize result when
// it implements Normalizer. A zero v yields non-finite components.
func Normalize[T Primitive[T, F], F simdops.Float](v T) T {
	if n, ok := any(v).(Normalizer[T]); ok {
		return n.Normalize()
	}
	return v.Scale(1 / Magnitude[T, F](v))
}

func lerp[T Primitive[T, F], F simdops.Float](a, b T, d F) T {
	return a.Add(b.Sub(a).Scale(d))
}

func finish[T Primitive[T, F], F simdops.Float](v T, normalize bool) T {
	if normalize {
		return Normalize[T, F](v)
	}
	return v
}
