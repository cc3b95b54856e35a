package engine

import (
	"fmt"
	"math"

	"github.com/tphakala/go-keyframe/internal/simdops"
)

// Layout describes how an outputs buffer maps onto keyframes.
type Layout int

const (
	// LayoutPerKeyframe stores one output per keyframe.
	LayoutPerKeyframe Layout = iota

	// LayoutHermite stores [in-tangent, position, out-tangent] per keyframe.
	LayoutHermite

	// LayoutCatmullRom stores [in-tangent₀, position₀ … positionₙ₋₁, out-tangentₙ₋₁].
	LayoutCatmullRom

	// LayoutAny accepts outputs of any non-zero length.
	LayoutAny
)

// OutputLen returns the outputs length the layout requires for n keyframes.
// LayoutAny returns -1.
func (l Layout) OutputLen(n int) int {
	switch l {
	case LayoutPerKeyframe:
		return n
	case LayoutHermite:
		return n * hermiteSlotsPerKeyframe
	case LayoutCatmullRom:
		return n + catmullRomBoundarySlots
	default:
		return -1
	}
}

// String returns the layout name.
func (l Layout) String() string {
	switch l {
	case LayoutPerKeyframe:
		return "per-keyframe"
	case LayoutHermite:
		return "hermite"
	case LayoutCatmullRom:
		return "catmull-rom"
	case LayoutAny:
		return "any"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// ValidateInputs checks that inputs are non-empty, free of NaN, start at or
// after zero, and strictly increase.
func ValidateInputs[F simdops.Float](inputs []F) error {
	if len(inputs) == 0 {
		return fmt.Errorf("%w: no inputs", ErrEmptyKeyframeSet)
	}

	for i, v := range inputs {
		if math.IsNaN(float64(v)) {
			return fmt.Errorf("%w: inputs[%d] is NaN", ErrNotComparable, i)
		}
	}

	if inputs[0] < 0 {
		return fmt.Errorf("%w: first input %v is negative", ErrNonMonotonicInputs, inputs[0])
	}

	for i := 1; i < len(inputs); i++ {
		switch {
		case inputs[i] == inputs[i-1]:
			return fmt.Errorf("%w: inputs[%d] == inputs[%d] == %v", ErrDegenerateInterval, i-1, i, inputs[i])
		case inputs[i] < inputs[i-1]:
			return fmt.Errorf("%w: inputs[%d]=%v < inputs[%d]=%v", ErrNonMonotonicInputs, i, inputs[i], i-1, inputs[i-1])
		}
	}

	return nil
}

// ValidateLayout checks that an outputs buffer of numOutputs elements fits
// the layout for numInputs keyframes.
func ValidateLayout(layout Layout, numInputs, numOutputs int) error {
	if numOutputs == 0 {
		return fmt.Errorf("%w: no outputs", ErrEmptyKeyframeSet)
	}
	want := layout.OutputLen(numInputs)
	if want >= 0 && numOutputs != want {
		return fmt.Errorf("%w: %s layout needs %d outputs for %d inputs, got %d",
			ErrMismatchedBufferLength, layout, want, numInputs, numOutputs)
	}
	return nil
}

// ValidateWidths checks that variable-length outputs all share the first
// output's length. Outputs that do not implement Sized always pass.
func ValidateWidths[T any](outputs []T) error {
	if len(outputs) == 0 {
		return nil
	}
	first, ok := any(outputs[0]).(Sized)
	if !ok {
		return nil
	}
	want := first.Len()
	for i := 1; i < len(outputs); i++ {
		if got := any(outputs[i]).(Sized).Len(); got != want {
			return fmt.Errorf("%w: outputs[%d] has %d components, outputs[0] has %d",
				ErrMismatchedBufferLength, i, got, want)
		}
	}
	return nil
}

// Validate runs ValidateInputs and ValidateLayout.
func Validate[F simdops.Float](layout Layout, inputs []F, numOutputs int) error {
	if err := ValidateInputs(inputs); err != nil {
		return err
	}
	return ValidateLayout(layout, len(inputs), numOutputs)
}
