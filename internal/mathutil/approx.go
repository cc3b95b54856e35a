// Package mathutil provides the transcendental-free approximations used by
// the quasi-spherical interpolator.
package mathutil

import (
	"github.com/tphakala/go-keyframe/internal/simdops"
)

// InvSqrtNeighbourhood evaluates the tangent line of 1/√s at s₀ ≈ 0.959.
// It is only accurate close to s₀; see InvSqrt for the refined version.
func InvSqrtNeighbourhood[F simdops.Float](s F) F {
	return F(isqrtAdditiveConstant) + (s-F(isqrtNeighbourhood))*F(isqrtFactor)
}

// InvSqrt approximates 1/√s without calling math.Sqrt.
//
// The estimate is seeded from the tangent line around s₀ and refined by
// re-applying the tangent line to k²s, which converges toward 1:
//   - s > 0.915: no refinement
//   - 0.652 < s ≤ 0.915: one pass
//   - s ≤ 0.652: two passes
//
// Relative error stays below 4e-4 for s in [0.5, 1], the range produced by
// lerping two unit quaternions. Outside that range the error grows quickly.
func InvSqrt[F simdops.Float](s F) F {
	k := InvSqrtNeighbourhood(s)
	if s <= F(isqrtOneRefinement) {
		k *= InvSqrtNeighbourhood(k * k * s)
		if s <= F(isqrtTwoRefinements) {
			k *= InvSqrtNeighbourhood(k * k * s)
		}
	}
	return k
}

// CounterWarp remaps the blend factor d so that a linear blend of two unit
// quaternions whose dot product is cosAlpha approximates slerp's angular
// spacing.
//
//	k  = W·(1 − A·cosAlpha)²
//	y  = 2k·d² − 3k·d + k + 1
//	d' = d·y                 for d ≤ ½
//	d' = 1 − (1−d)·y(1−d)    for d > ½
//
// d' is exact at 0, ½ and 1.
func CounterWarp[F simdops.Float](d, cosAlpha F) F {
	if d <= F(warpSymmetryPoint) {
		return d * warpPolynomial(d, cosAlpha)
	}
	e := 1 - d
	return 1 - e*warpPolynomial(e, cosAlpha)
}

func warpPolynomial[F simdops.Float](d, cosAlpha F) F {
	factor := 1 - F(warpAttenuation)*cosAlpha
	k := F(warpWorstCaseSlope) * factor * factor
	return 2*k*d*d - 3*k*d + k + 1
}
