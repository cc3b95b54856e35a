package engine

import "errors"

// Errors reported for malformed keyframe data or query times.
// They are always returned wrapped with detail; match them with errors.Is.
var (
	// ErrEmptyKeyframeSet indicates the inputs or outputs buffer is empty.
	ErrEmptyKeyframeSet = errors.New("empty keyframe set")

	// ErrMismatchedBufferLength indicates the outputs buffer does not match
	// the layout required by the interpolation method.
	ErrMismatchedBufferLength = errors.New("mismatched buffer length")

	// ErrNonMonotonicInputs indicates the inputs are not strictly increasing
	// or the first input is negative.
	ErrNonMonotonicInputs = errors.New("non-monotonic inputs")

	// ErrDegenerateInterval indicates two adjacent inputs are equal.
	ErrDegenerateInterval = errors.New("degenerate keyframe interval")

	// ErrNotComparable indicates a NaN query time or input.
	ErrNotComparable = errors.New("value not comparable")
)
