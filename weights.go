package keyframe

import (
	"fmt"

	"github.com/tphakala/go-keyframe/internal/engine"
	"github.com/tphakala/go-keyframe/internal/simdops"
)

// Weights is a vector of blend weights of arbitrary length, such as morph
// target weights. Dot, Scale and Sum run through the SIMD kernels of
// github.com/tphakala/simd.
//
// All Weights on one curve must have the same length; the interpolation
// functions and NewSampler reject mismatched outputs with
// ErrMismatchedBufferLength. Add, Sub and Dot called directly panic on a
// shorter operand.
type Weights[F Float] []F

// Len returns the number of weights.
func (w Weights[F]) Len() int { return len(w) }

func (w Weights[F]) Add(o Weights[F]) Weights[F] {
	out := make(Weights[F], len(w))
	for i := range out {
		out[i] = w[i] + o[i]
	}
	return out
}

func (w Weights[F]) Sub(o Weights[F]) Weights[F] {
	out := make(Weights[F], len(w))
	for i := range out {
		out[i] = w[i] - o[i]
	}
	return out
}

func (w Weights[F]) Scale(k F) Weights[F] {
	out := make(Weights[F], len(w))
	simdops.For[F]().Scale(out, w, k)
	return out
}

func (w Weights[F]) Dot(o Weights[F]) F {
	if len(o) < len(w) {
		panic(fmt.Sprintf("keyframe: Weights.Dot operand has %d weights, want %d", len(o), len(w)))
	}
	return simdops.For[F]().DotProductUnsafe(w, o[:len(w)])
}

func (w Weights[F]) Magnitude2() F { return w.Dot(w) }

// SumNormalized rescales the weights to sum to one. Weights summing to zero
// are returned as a copy.
func (w Weights[F]) SumNormalized() Weights[F] {
	sum := w.Sum()
	if sum == 0 {
		return append(Weights[F](nil), w...)
	}
	return w.Scale(1 / sum)
}

// Sum returns the total of all weights.
func (w Weights[F]) Sum() F {
	return simdops.For[F]().Sum(w)
}

var (
	_ Primitive[Weights[float32], float32] = Weights[float32]{}
	_ engine.Sized                         = Weights[float64]{}
)
