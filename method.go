package keyframe

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tphakala/go-keyframe/internal/engine"
)

// Func is the signature shared by every interpolation method.
type Func[T Primitive[T, F], F Float] func(t F, inputs []F, outputs []T, normalize bool) (T, error)

// Method enumerates the interpolation methods.
type Method int

const (
	// MethodStep holds each keyframe's output until the next keyframe.
	MethodStep Method = iota

	// MethodLinear blends neighbouring outputs along a straight line.
	MethodLinear

	// MethodSphericalLinear blends rotations along the great arc.
	MethodSphericalLinear

	// MethodQuasiSphericalLinear approximates MethodSphericalLinear without
	// trigonometry or square roots.
	MethodQuasiSphericalLinear

	// MethodCubicSpline is a cubic Hermite spline with explicit tangents.
	MethodCubicSpline

	// MethodCatmullRomSpline is a Hermite spline with tangents derived from
	// neighbouring positions.
	MethodCatmullRomSpline

	// MethodCustom marks a caller-supplied Func.
	MethodCustom
)

var methodNames = [...]string{
	MethodStep:                 "step",
	MethodLinear:               "linear",
	MethodSphericalLinear:      "spherical-linear",
	MethodQuasiSphericalLinear: "quasi-spherical-linear",
	MethodCubicSpline:          "cubic-spline",
	MethodCatmullRomSpline:     "catmull-rom-spline",
	MethodCustom:               "custom",
}

// Accepted shorthand names.
var methodAliases = map[string]Method{
	"slerp":       MethodSphericalLinear,
	"quasi-slerp": MethodQuasiSphericalLinear,
	"hermite":     MethodCubicSpline,
	"catmull-rom": MethodCatmullRomSpline,
}

// String returns the canonical method name.
func (m Method) String() string {
	if m.valid() {
		return methodNames[m]
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

func (m Method) valid() bool {
	return m >= MethodStep && m <= MethodCustom
}

// ParseMethod converts a method name into a Method. Matching ignores case and
// accepts the shorthands slerp, quasi-slerp, hermite and catmull-rom.
func ParseMethod(name string) (Method, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for m, n := range methodNames {
		if n == key {
			return Method(m), nil
		}
	}
	if m, ok := methodAliases[key]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Method) UnmarshalText(text []byte) error {
	parsed, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (m Method) MarshalYAML() (any, error) {
	text, err := m.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *Method) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return fmt.Errorf("method at line %d: %w", value.Line, err)
	}
	return m.UnmarshalText([]byte(name))
}

// OutputLen returns the outputs length the method requires for n keyframes,
// or -1 when any non-zero length is accepted.
func (m Method) OutputLen(n int) int {
	return m.layout().OutputLen(n)
}

func (m Method) layout() engine.Layout {
	switch m {
	case MethodStep, MethodLinear, MethodSphericalLinear, MethodQuasiSphericalLinear:
		return engine.LayoutPerKeyframe
	case MethodCubicSpline:
		return engine.LayoutHermite
	case MethodCatmullRomSpline:
		return engine.LayoutCatmullRom
	default:
		return engine.LayoutAny
	}
}

// Interpolation selects an interpolation method for outputs of type T. It is
// either one of the built-in methods or a caller-supplied Func.
//
// The zero value selects MethodStep.
type Interpolation[T Primitive[T, F], F Float] struct {
	method Method
	custom Func[T, F]
}

// NewInterpolation selects a built-in method. Use CustomInterpolation for
// caller-supplied functions.
func NewInterpolation[T Primitive[T, F], F Float](m Method) (Interpolation[T, F], error) {
	if !m.valid() || m == MethodCustom {
		return Interpolation[T, F]{}, fmt.Errorf("%w: %v is not a built-in method", ErrUnknownMethod, m)
	}
	return Interpolation[T, F]{method: m}, nil
}

// CustomInterpolation wraps a caller-supplied function. Its outputs may have
// any non-zero length; fn is responsible for interpreting them.
func CustomInterpolation[T Primitive[T, F], F Float](fn Func[T, F]) Interpolation[T, F] {
	return Interpolation[T, F]{method: MethodCustom, custom: fn}
}

// Method returns the selected method.
func (i Interpolation[T, F]) Method() Method {
	return i.method
}

// Equal reports whether two interpolations select the same built-in method.
// Functions cannot be compared, so a custom interpolation is never equal to
// anything, itself included.
func (i Interpolation[T, F]) Equal(other Interpolation[T, F]) bool {
	if i.method == MethodCustom || other.method == MethodCustom {
		return false
	}
	return i.method == other.method
}

// Interpolate validates the buffers and evaluates the selected method at t.
func (i Interpolation[T, F]) Interpolate(t F, inputs []F, outputs []T, normalize bool) (T, error) {
	fn, err := i.fn()
	if err != nil {
		var zero T
		return zero, err
	}
	return checked(i.method.layout(), fn, t, inputs, outputs, normalize)
}

// fn returns the unchecked implementation of the selected method.
func (i Interpolation[T, F]) fn() (Func[T, F], error) {
	switch i.method {
	case MethodStep:
		return engine.Step[T, F], nil
	case MethodLinear:
		return engine.Linear[T, F], nil
	case MethodSphericalLinear:
		return engine.SphericalLinear[T, F], nil
	case MethodQuasiSphericalLinear:
		return engine.QuasiSphericalLinear[T, F], nil
	case MethodCubicSpline:
		return engine.CubicSpline[T, F], nil
	case MethodCatmullRomSpline:
		return engine.CatmullRomSpline[T, F], nil
	case MethodCustom:
		if i.custom == nil {
			return nil, fmt.Errorf("%w: custom interpolation without a function", ErrInvalidConfig)
		}
		return i.custom, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMethod, i.method)
	}
}
