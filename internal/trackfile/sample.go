package trackfile

import (
	"fmt"

	keyframe "github.com/tphakala/go-keyframe"
)

// Options controls how a track is sampled.
type Options struct {
	// EnableParallel samples large batches concurrently.
	EnableParallel bool
}

// Sample evaluates the track at every time and returns one row of
// components per time, in the same shape as the track's outputs.
func (t *Track) Sample(times []float64, opts Options) ([][]float64, error) {
	config := keyframe.SamplerConfig{
		Normalize:      t.Normalize,
		EnableParallel: opts.EnableParallel,
	}

	switch t.Kind {
	case KindScalar:
		return sampleAs(t, config, times,
			func(r []float64) keyframe.Scalar[float64] { return keyframe.Scalar[float64]{V: r[0]} },
			func(v keyframe.Scalar[float64]) []float64 { return []float64{v.V} })
	case KindVec3:
		return sampleAs(t, config, times,
			func(r []float64) keyframe.Vector { return keyframe.Vector{X: r[0], Y: r[1], Z: r[2]} },
			func(v keyframe.Vector) []float64 { return []float64{v.X, v.Y, v.Z} })
	case KindVec4:
		return sampleAs(t, config, times,
			func(r []float64) keyframe.Vec4[float64] { return keyframe.Vec4[float64]{r[0], r[1], r[2], r[3]} },
			func(v keyframe.Vec4[float64]) []float64 { return v[:] })
	case KindQuat:
		return sampleAs(t, config, times,
			func(r []float64) keyframe.Rotation {
				return keyframe.Rotation{Imag: r[0], Jmag: r[1], Kmag: r[2], Real: r[3]}
			},
			func(v keyframe.Rotation) []float64 { return []float64{v.Imag, v.Jmag, v.Kmag, v.Real} })
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidTrack, t.Kind)
	}
}

// sampleAs decodes the outputs into T, samples them, and encodes the results
// back into component rows.
func sampleAs[T keyframe.Primitive[T, float64]](
	t *Track,
	config keyframe.SamplerConfig,
	times []float64,
	decode func([]float64) T,
	encode func(T) []float64,
) ([][]float64, error) {
	interp, err := keyframe.NewInterpolation[T, float64](t.Method)
	if err != nil {
		return nil, err
	}

	outputs := make([]T, len(t.Outputs))
	for i, row := range t.Outputs {
		outputs[i] = decode(row)
	}

	sampler, err := keyframe.NewSampler(interp, t.Inputs, outputs, config)
	if err != nil {
		return nil, fmt.Errorf("track %q: %w", t.Name, err)
	}

	values, err := sampler.SampleAll(times)
	if err != nil {
		return nil, fmt.Errorf("track %q: %w", t.Name, err)
	}

	rows := make([][]float64, len(values))
	for i, v := range values {
		rows[i] = encode(v)
	}
	return rows, nil
}

// Bounds returns the first and last keyframe times.
func (t *Track) Bounds() (start, end float64) {
	return t.Inputs[0], t.Inputs[len(t.Inputs)-1]
}
