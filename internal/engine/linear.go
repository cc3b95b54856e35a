package engine

import (
	"github.com/tphakala/go-keyframe/internal/simdops"
)

// Step holds each keyframe's output until the next keyframe is reached.
// Queries before the first keyframe return the first output, queries at or
// past the last keyframe return the last output. normalize is ignored since a
// held value needs no renormalization.
func Step[T Primitive[T, F], F simdops.Float](t F, inputs []F, outputs []T, _ bool) (T, error) {
	loc, err := Locate(t, inputs)
	if err != nil {
		var zero T
		return zero, err
	}

	switch {
	case loc.Before:
		return outputs[0], nil
	case loc.After:
		return outputs[len(outputs)-1], nil
	}
	return outputs[loc.Index], nil
}

// Linear blends the two outputs bounding t:
//
//	f(d) = p0 + (p1 - p0)·d
func Linear[T Primitive[T, F], F simdops.Float](t F, inputs []F, outputs []T, normalize bool) (T, error) {
	loc, d, err := span(t, inputs)
	if err != nil {
		var zero T
		return zero, err
	}

	switch {
	case loc.Before:
		return outputs[0], nil
	case loc.After:
		return outputs[len(outputs)-1], nil
	}

	v := lerp(outputs[loc.Index], outputs[loc.Index+1], d)
	return finish[T, F](v, normalize), nil
}
