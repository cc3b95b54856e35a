package keyframe

import (
	"errors"

	"github.com/tphakala/go-keyframe/internal/engine"
)

// Errors reported for malformed keyframe data or query times.
// They are returned wrapped with detail; match them with errors.Is.
var (
	// ErrEmptyKeyframeSet indicates the inputs or outputs buffer is empty.
	ErrEmptyKeyframeSet = engine.ErrEmptyKeyframeSet

	// ErrMismatchedBufferLength indicates the outputs buffer does not match
	// the layout required by the interpolation method.
	ErrMismatchedBufferLength = engine.ErrMismatchedBufferLength

	// ErrNonMonotonicInputs indicates the inputs are not strictly increasing
	// or the first input is negative.
	ErrNonMonotonicInputs = engine.ErrNonMonotonicInputs

	// ErrDegenerateInterval indicates two adjacent inputs are equal.
	ErrDegenerateInterval = engine.ErrDegenerateInterval

	// ErrNotComparable indicates a NaN query time or input.
	ErrNotComparable = engine.ErrNotComparable
)

// Configuration errors.
var (
	// ErrInvalidConfig indicates an invalid sampler configuration.
	ErrInvalidConfig = errors.New("invalid sampler configuration")

	// ErrUnknownMethod indicates an unrecognized interpolation method name.
	ErrUnknownMethod = errors.New("unknown interpolation method")
)
