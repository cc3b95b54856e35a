package engine

import (
	"github.com/tphakala/go-keyframe/internal/simdops"
)

// hermite evaluates the cubic Hermite basis at d ∈ [0, 1]:
//
//	f(d) = p0·(2d³-3d²+1) + m0·(d³-2d²+d) + p1·(-2d³+3d²) + m1·(d³-d²)
//
// m0 and m1 must already be scaled to the interval width.
func hermite[T Primitive[T, F], F simdops.Float](d F, p0, m0, p1, m1 T) T {
	d2 := d * d
	d3 := d2 * d

	h00 := hermiteCubic2*d3 - hermiteQuadratic3*d2 + 1
	h10 := d3 - hermiteCubic2*d2 + d
	h01 := -hermiteCubic2*d3 + hermiteQuadratic3*d2
	h11 := d3 - d2

	return p0.Scale(h00).
		Add(m0.Scale(h10)).
		Add(p1.Scale(h01)).
		Add(m1.Scale(h11))
}

// CubicSpline evaluates a cubic Hermite spline with explicit tangents.
//
// outputs holds [in-tangent, position, out-tangent] for every keyframe.
// Tangents are per unit of time and are scaled by the active interval's width,
// so unevenly spaced keyframes keep the intended slope. Queries outside the
// keyframe range return the first or last position.
func CubicSpline[T Primitive[T, F], F simdops.Float](t F, inputs []F, outputs []T, normalize bool) (T, error) {
	loc, d, err := span(t, inputs)
	if err != nil {
		var zero T
		return zero, err
	}

	switch {
	case loc.Before:
		return outputs[hermitePositionSlot], nil
	case loc.After:
		return outputs[len(outputs)-lastPositionOffset], nil
	}

	i := loc.Index
	width := inputs[i+1] - inputs[i]
	left := i * hermiteSlotsPerKeyframe
	right := left + hermiteSlotsPerKeyframe

	v := hermite(d,
		outputs[left+hermitePositionSlot],
		outputs[left+hermiteOutTangentSlot].Scale(width),
		outputs[right+hermitePositionSlot],
		outputs[right+hermiteInTangentSlot].Scale(width),
	)
	return finish[T, F](v, normalize), nil
}

// CatmullRomSpline evaluates a Hermite spline whose tangents are derived from
// neighbouring positions.
//
// outputs is [in-tangent₀, position₀ … positionₙ₋₁, out-tangentₙ₋₁]. The two
// boundary tangents are taken from the buffer; interior tangents come from
// CatmullRomTangent. Queries before or past the keyframe range both return
// outputs[len-2], the last position.
func CatmullRomSpline[T Primitive[T, F], F simdops.Float](t F, inputs []F, outputs []T, normalize bool) (T, error) {
	loc, d, err := span(t, inputs)
	if err != nil {
		var zero T
		return zero, err
	}

	if !loc.InRange() {
		return outputs[len(outputs)-lastPositionOffset], nil
	}

	i := loc.Index
	width := inputs[i+1] - inputs[i]

	v := hermite(d,
		outputs[i+1],
		CatmullRomTangent(i, inputs, outputs).Scale(width),
		outputs[i+2],
		CatmullRomTangent(i+1, inputs, outputs).Scale(width),
	)
	return finish[T, F](v, normalize), nil
}

// CatmullRomTangent returns the tangent at keyframe k of a Catmull-Rom buffer.
// Interior tangents are the centred difference
//
//	(position[k+1] - position[k-1]) / (input[k+1] - input[k-1])
//
// and the first and last keyframes use the buffer's boundary slots.
func CatmullRomTangent[T Primitive[T, F], F simdops.Float](k int, inputs []F, outputs []T) T {
	switch k {
	case 0:
		return outputs[0]
	case len(inputs) - 1:
		return outputs[len(outputs)-1]
	}
	// position[j] lives at outputs[j+1]
	return outputs[k+2].Sub(outputs[k]).Scale(1 / (inputs[k+1] - inputs[k-1]))
}
