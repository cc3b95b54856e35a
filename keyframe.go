package keyframe

import (
	"github.com/tphakala/go-keyframe/internal/engine"
)

// Location identifies where a query time falls relative to the keyframes.
type Location = engine.Location

// Locate finds the keyframe interval containing t with a lower-bound search:
// a query equal to inputs[i] belongs to the interval starting at i.
func Locate[F Float](t F, inputs []F) (Location, error) {
	if err := engine.ValidateInputs(inputs); err != nil {
		return Location{}, err
	}
	return engine.Locate(t, inputs)
}

// BlendFactor returns the normalized position of t inside interval i,
// (t - inputs[i]) / (inputs[i+1] - inputs[i]).
func BlendFactor[F Float](t F, inputs []F, i int) (F, error) {
	return engine.BlendFactor(t, inputs, i)
}

// ValidateInputs checks that inputs are non-empty, free of NaN, start at or
// after zero, and strictly increase.
func ValidateInputs[F Float](inputs []F) error {
	return engine.ValidateInputs(inputs)
}

// ValidateLayout checks inputs and that numOutputs matches the layout the
// method requires. MethodCustom accepts any non-zero length.
func ValidateLayout[F Float](m Method, inputs []F, numOutputs int) error {
	return engine.Validate(m.layout(), inputs, numOutputs)
}

// Step holds each keyframe's output until the next keyframe is reached.
// normalize is ignored.
func Step[T Primitive[T, F], F Float](t F, inputs []F, outputs []T, normalize bool) (T, error) {
	return checked(engine.LayoutPerKeyframe, engine.Step[T, F], t, inputs, outputs, normalize)
}

// Linear blends the two outputs bounding t: p0 + (p1 - p0)·d.
func Linear[T Primitive[T, F], F Float](t F, inputs []F, outputs []T, normalize bool) (T, error) {
	return checked(engine.LayoutPerKeyframe, engine.Linear[T, F], t, inputs, outputs, normalize)
}

// SphericalLinear interpolates along the great arc between the two outputs
// bounding t. Outputs closer than a dot product of 0.9995 are blended
// linearly. The right-hand output is never negated, so a negative dot
// product follows the long way round.
func SphericalLinear[T Primitive[T, F], F Float](t F, inputs []F, outputs []T, normalize bool) (T, error) {
	return checked(engine.LayoutPerKeyframe, engine.SphericalLinear[T, F], t, inputs, outputs, normalize)
}

// QuasiSphericalLinear approximates SphericalLinear with a counter-warped
// linear blend and, when normalize is set, [FastNormalize]. It is intended
// for unit quaternions that are neither zero nor anti-parallel; those
// preconditions are not checked.
func QuasiSphericalLinear[T Primitive[T, F], F Float](t F, inputs []F, outputs []T, normalize bool) (T, error) {
	return checked(engine.LayoutPerKeyframe, engine.QuasiSphericalLinear[T, F], t, inputs, outputs, normalize)
}

// CubicSpline evaluates a cubic Hermite spline. outputs holds
// [in-tangent, position, out-tangent] per keyframe, with tangents expressed
// per unit of time.
func CubicSpline[T Primitive[T, F], F Float](t F, inputs []F, outputs []T, normalize bool) (T, error) {
	return checked(engine.LayoutHermite, engine.CubicSpline[T, F], t, inputs, outputs, normalize)
}

// CatmullRomSpline evaluates a Hermite spline whose interior tangents are the
// centred differences of neighbouring positions. outputs is
// [in-tangent₀, position₀ … positionₙ₋₁, out-tangentₙ₋₁].
func CatmullRomSpline[T Primitive[T, F], F Float](t F, inputs []F, outputs []T, normalize bool) (T, error) {
	return checked(engine.LayoutCatmullRom, engine.CatmullRomSpline[T, F], t, inputs, outputs, normalize)
}

// CatmullRomTangent returns the tangent CatmullRomSpline uses at keyframe k.
// The buffers must already satisfy ValidateLayout for MethodCatmullRomSpline.
func CatmullRomTangent[T Primitive[T, F], F Float](k int, inputs []F, outputs []T) T {
	return engine.CatmullRomTangent(k, inputs, outputs)
}

// checked validates the buffers against layout before running fn.
func checked[T Primitive[T, F], F Float](layout engine.Layout, fn Func[T, F], t F, inputs []F, outputs []T, normalize bool) (T, error) {
	if err := validateCurve(layout, inputs, outputs); err != nil {
		var zero T
		return zero, err
	}
	return fn(t, inputs, outputs, normalize)
}

// validateCurve checks the inputs, the outputs length, and that
// variable-length outputs agree in width.
func validateCurve[T any, F Float](layout engine.Layout, inputs []F, outputs []T) error {
	if err := engine.Validate(layout, inputs, len(outputs)); err != nil {
		return err
	}
	return engine.ValidateWidths(outputs)
}
