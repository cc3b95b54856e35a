package mathutil

// Counter-warp constants for approximating slerp with a warped lerp.
// Fitted against worst-case angular error over the unit quaternion sphere.
const (
	warpAttenuation    = 0.82279687 // A: attenuation of k as the rotations converge
	warpWorstCaseSlope = 0.58549219 // W: k at dot = 0
	warpSymmetryPoint  = 0.5        // The curve is mirrored about d = 0.5
)

// Inverse square root tangent-line constants.
// The line touches 1/√s at the neighbourhood point s₀, scaled slightly so the
// error is balanced across the interval it serves.
const (
	isqrtNeighbourhood     = 0.959066   // s₀
	isqrtNeighbourhoodSqrt = 0.97931916 // √s₀
	isqrtScale             = 1.000311   // Error-balancing scale
	isqrtTangentSlope      = -0.5       // d/ds s^(-1/2) = -½ s^(-3/2)

	isqrtAdditiveConstant = isqrtScale / isqrtNeighbourhoodSqrt
	isqrtFactor           = isqrtScale * (isqrtTangentSlope / (isqrtNeighbourhood * isqrtNeighbourhoodSqrt))
)

// Refinement thresholds on the squared magnitude.
// Below each threshold one more tangent-line pass is needed to stay within ~1e-4.
const (
	isqrtOneRefinement  = 0.91521198
	isqrtTwoRefinements = 0.65211970
)
