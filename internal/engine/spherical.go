package engine

import (
	"math"

	"github.com/tphakala/go-keyframe/internal/mathutil"
	"github.com/tphakala/go-keyframe/internal/simdops"
)

// SphericalLinear interpolates along the great arc between the two outputs
// bounding t:
//
//	θ    = acos(p0·p1)
//	f(d) = (sin((1-d)θ)·p0 + sin(dθ)·p1) / sin θ
//
// When p0·p1 > 0.9995 the arc is too short for a stable sin θ and a linear
// blend is used instead. p1 is never negated for a negative dot product, so
// the blend follows the arc implied by the raw dot product rather than the
// shortest rotation. Anti-parallel outputs make sin θ vanish; callers must
// avoid them.
func SphericalLinear[T Primitive[T, F], F simdops.Float](t F, inputs []F, outputs []T, normalize bool) (T, error) {
	loc, d, err := span(t, inputs)
	if err != nil {
		var zero T
		return zero, err
	}

	switch {
	case loc.Before:
		return outputs[0], nil
	case loc.After:
		return outputs[len(outputs)-1], nil
	}

	left, right := outputs[loc.Index], outputs[loc.Index+1]
	return finish[T, F](slerp(left, right, d), normalize), nil
}

func slerp[T Primitive[T, F], F simdops.Float](left, right T, d F) T {
	dot := float64(left.Dot(right))
	if dot > nearParallelThreshold {
		return lerp(left, right, d)
	}

	theta := math.Acos(math.Max(minCosine, math.Min(maxCosine, dot)))
	sinTheta := math.Sin(theta)
	scaleLeft := F(math.Sin(theta*(1-float64(d))) / sinTheta)
	scaleRight := F(math.Sin(theta*float64(d)) / sinTheta)
	return left.Scale(scaleLeft).Add(right.Scale(scaleRight))
}

// QuasiSphericalLinear approximates SphericalLinear without trigonometry or
// square roots. The angular error stays in the 1e-4 range while the outputs
// are less than about 100 degrees apart on the 4-sphere and grows towards
// 2e-2 as they approach opposite poles.
//
// The blend factor is counter-warped by a cubic in d whose strength depends on
// p0·p1, then the outputs are blended linearly. When normalize is set the
// result is scaled by a tangent-line approximation of 1/|v| instead of an
// exact normalization.
//
// Only meaningful for unit quaternions. Other primitives produce geometrically
// wrong results, and zero or anti-parallel outputs are a precondition
// violation that is not checked.
func QuasiSphericalLinear[T Primitive[T, F], F simdops.Float](t F, inputs []F, outputs []T, normalize bool) (T, error) {
	loc, d, err := span(t, inputs)
	if err != nil {
		var zero T
		return zero, err
	}

	switch {
	case loc.Before:
		return outputs[0], nil
	case loc.After:
		return outputs[len(outputs)-1], nil
	}

	left, right := outputs[loc.Index], outputs[loc.Index+1]
	v := lerp(left, right, mathutil.CounterWarp(d, left.Dot(right)))
	if normalize {
		return FastNormalize[T, F](v), nil
	}
	return v, nil
}

// FastNormalize scales v by an approximation of 1/|v| that is accurate for
// squared magnitudes between 0.5 and 1.
func FastNormalize[T Primitive[T, F], F simdops.Float](v T) T {
	return v.Scale(mathutil.InvSqrt(v.Magnitude2()))
}
