package keyframe

import (
	"github.com/tphakala/go-keyframe/internal/engine"
	"github.com/tphakala/go-keyframe/internal/simdops"
)

// Float is the real type used for keyframe times and blend factors.
type Float = simdops.Float

// Primitive is the algebra an output type must provide to be interpolated:
// Add, Sub, Scale, Dot and Magnitude2. T is the implementing type itself.
//
// Implementations are values; every operation returns a new T.
type Primitive[T any, F Float] = engine.Primitive[T, F]

// Normalizer is implemented by primitives that replace the default
// unit-length normalization.
type Normalizer[T any] = engine.Normalizer[T]

// Magnitude returns the Euclidean norm of v.
func Magnitude[T Primitive[T, F], F Float](v T) F {
	return engine.Magnitude[T, F](v)
}

// Normalize returns v scaled to unit length, or the result of v's own
// Normalize method when T implements [Normalizer].
func Normalize[T Primitive[T, F], F Float](v T) T {
	return engine.Normalize[T, F](v)
}

// FastNormalize approximates Normalize without a square root. It is accurate
// to about 1e-4 when the squared magnitude of v lies between 0.5 and 1, which
// holds for blends of nearby unit quaternions.
func FastNormalize[T Primitive[T, F], F Float](v T) T {
	return engine.FastNormalize[T, F](v)
}
