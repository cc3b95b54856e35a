// Package keyframe samples animation curves defined by sparse keyframes.
//
// A curve is a pair of borrowed buffers: inputs, the strictly increasing
// keyframe times, and outputs, the values at those times laid out as the
// chosen method requires. Every interpolator shares one signature:
//
//	func(t F, inputs []F, outputs []T, normalize bool) (T, error)
//
// where T is any type implementing [Primitive] and F is float32 or float64.
// The package never copies or retains the buffers.
//
// # Methods
//
//   - [Step]: holds each keyframe's output until the next keyframe
//   - [Linear]: straight-line blend
//   - [SphericalLinear]: constant angular velocity along the great arc,
//     for rotation quaternions
//   - [QuasiSphericalLinear]: a polynomial approximation of
//     SphericalLinear without trigonometry or square roots
//   - [CubicSpline]: cubic Hermite spline with explicit tangents
//   - [CatmullRomSpline]: Hermite spline with tangents derived from
//     neighbouring keyframes
//
// # Quick Start
//
// For one-off queries call the method directly:
//
//	inputs := []float32{0, 1, 2}
//	outputs := []keyframe.Vec3[float32]{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}}
//	pos, err := keyframe.Linear(float32(1.5), inputs, outputs, false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For repeated queries against the same curve, a [Sampler] validates the
// buffers once:
//
//	interp, err := keyframe.NewInterpolation[keyframe.Quat[float64], float64](keyframe.MethodSphericalLinear)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	s, err := keyframe.NewSampler(interp, times, rotations, keyframe.SamplerConfig{Normalize: true})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	frames, err := s.SampleAll(frameTimes)
//
// # Output Layouts
//
// Step, Linear and both spherical methods take one output per keyframe.
// CubicSpline takes three per keyframe: [in-tangent, position, out-tangent].
// CatmullRomSpline takes the positions framed by one boundary tangent at each
// end: [in-tangent₀, position₀ … positionₙ₋₁, out-tangentₙ₋₁].
// [Method.OutputLen] reports the required length.
//
// Queries before the first keyframe return the first output, or the first
// position for CubicSpline. CatmullRomSpline returns its last position on
// both sides of the range. Queries at or past the last keyframe return the
// last output or position.
//
// # Primitives
//
// The package ships [Vec3], [Vec4], [Quat], [Scalar], [Int] and [Weights],
// plus [Vector] and [Rotation] backed by gonum. Any other type can take part
// by implementing [Primitive]; implementing Normalize() overrides the default
// unit-length normalization.
//
// # Errors
//
// Malformed buffers and NaN query times are reported before any arithmetic,
// wrapped around one of the sentinel errors such as [ErrNonMonotonicInputs].
// Match them with errors.Is.
package keyframe
