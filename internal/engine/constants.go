package engine

// Spherical interpolation constants
const (
	// Above this dot product the subtended angle is too small for the
	// sin(θ) denominator; slerp falls back to a linear blend.
	nearParallelThreshold = 0.9995

	// Bounds the dot product is clamped to before acos.
	minCosine = -1.0
	maxCosine = 1.0
)

// Spline buffer layout constants
const (
	// Hermite keyframes are stored as [in-tangent, position, out-tangent].
	hermiteSlotsPerKeyframe = 3
	hermiteInTangentSlot    = 0
	hermitePositionSlot     = 1
	hermiteOutTangentSlot   = 2

	// Catmull-Rom buffers add one tangent slot at each end.
	catmullRomBoundarySlots = 2

	// Both spline layouts keep the last position one slot from the end.
	lastPositionOffset = 2
)

// Hermite basis coefficients.
// h00 = 2d³ - 3d² + 1, h10 = d³ - 2d² + d, h01 = -2d³ + 3d², h11 = d³ - d²
const (
	hermiteCubic2     = 2.0
	hermiteQuadratic3 = 3.0
)
