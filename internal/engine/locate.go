package engine

import (
	"fmt"
	"math"
	"slices"

	"github.com/tphakala/go-keyframe/internal/simdops"
)

// Location identifies where a query time falls relative to the keyframes.
type Location struct {
	// Index is the left keyframe of the active interval.
	// When After is set it is the last keyframe.
	Index int

	// Before is set when the query time precedes the first keyframe.
	Before bool

	// After is set when the query time is at or past the last keyframe.
	After bool
}

// InRange reports whether the location lies strictly inside the keyframe
// range, so a blend factor is defined.
func (l Location) InRange() bool {
	return !l.Before && !l.After
}

// Locate finds the keyframe interval containing t.
//
// The search is a lower-bound binary search: a query equal to inputs[i]
// belongs to the interval starting at i. inputs must be strictly increasing.
func Locate[F simdops.Float](t F, inputs []F) (Location, error) {
	if math.IsNaN(float64(t)) {
		return Location{}, fmt.Errorf("%w: query time is NaN", ErrNotComparable)
	}
	if len(inputs) == 0 {
		return Location{}, fmt.Errorf("%w: no inputs", ErrEmptyKeyframeSet)
	}
	if t < inputs[0] {
		return Location{Before: true}, nil
	}

	i, found := slices.BinarySearch(inputs, t)
	if !found {
		i--
	}

	last := len(inputs) - 1
	if i >= last {
		return Location{Index: last, After: true}, nil
	}
	return Location{Index: i}, nil
}

// BlendFactor returns the normalized position of t inside interval i:
//
//	d = (t - inputs[i]) / (inputs[i+1] - inputs[i])
//
// An i outside [0, len(inputs)-2] returns ErrMismatchedBufferLength.
func BlendFactor[F simdops.Float](t F, inputs []F, i int) (F, error) {
	if i < 0 || i >= len(inputs)-1 {
		return 0, fmt.Errorf("%w: interval %d out of range for %d inputs", ErrMismatchedBufferLength, i, len(inputs))
	}
	width := inputs[i+1] - inputs[i]
	if width == 0 {
		return 0, fmt.Errorf("%w: inputs[%d] == inputs[%d] == %v", ErrDegenerateInterval, i, i+1, inputs[i])
	}
	return (t - inputs[i]) / width, nil
}

// span locates t and, when it is in range, computes its blend factor.
func span[F simdops.Float](t F, inputs []F) (Location, F, error) {
	loc, err := Locate(t, inputs)
	if err != nil || !loc.InRange() {
		return loc, 0, err
	}
	d, err := BlendFactor(t, inputs, loc.Index)
	return loc, d, err
}
