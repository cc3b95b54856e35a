package keyframe

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-keyframe/internal/testutil"
)

// spinCurve returns n keyframes rotating about y by 0.4 rad per second.
func spinCurve(n int) ([]float64, []Quat[float64]) {
	inputs := testutil.UniformTimes(n, 1)
	outputs := make([]Quat[float64], n)
	for i := range outputs {
		outputs[i] = QuatFromAxisAngle(Vec3[float64]{0, 1, 0}, 0.4*float64(i))
	}
	return inputs, outputs
}

func mustInterpolation[T Primitive[T, F], F Float](t *testing.T, m Method) Interpolation[T, F] {
	t.Helper()
	interp, err := NewInterpolation[T, F](m)
	require.NoError(t, err)
	return interp
}

// =============================================================================
// Config Tests
// =============================================================================

func TestSamplerConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  SamplerConfig
		wantErr bool
	}{
		{"defaults", SamplerConfig{}, false},
		{"parallel", SamplerConfig{EnableParallel: true, Workers: 8}, false},
		{"negative workers", SamplerConfig{Workers: -1}, true},
		{"too many workers", SamplerConfig{Workers: maxWorkers + 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSamplerConfig_Workers(t *testing.T) {
	c := SamplerConfig{Workers: 4}
	assert.Equal(t, 1, c.workers(10))
	assert.Equal(t, 2, c.workers(2*minParallelBatch))
	assert.Equal(t, 4, c.workers(100*minParallelBatch))
}

// =============================================================================
// Sampler Tests
// =============================================================================

func TestNewSampler_Validates(t *testing.T) {
	inputs, outputs := spinCurve(4)
	slerp := mustInterpolation[Quat[float64], float64](t, MethodSphericalLinear)

	_, err := NewSampler(slerp, inputs, outputs[:3], SamplerConfig{})
	require.ErrorIs(t, err, ErrMismatchedBufferLength)
	assert.Contains(t, err.Error(), "spherical-linear")

	_, err = NewSampler(slerp, []float64{0, 2, 2, 3}, outputs, SamplerConfig{})
	require.ErrorIs(t, err, ErrDegenerateInterval)

	_, err = NewSampler(slerp, inputs, outputs, SamplerConfig{Workers: -2})
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewSampler(CustomInterpolation[Quat[float64], float64](nil), inputs, outputs, SamplerConfig{})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSampler_AtMatchesDirectCall(t *testing.T) {
	inputs, outputs := spinCurve(6)
	s, err := NewSampler(mustInterpolation[Quat[float64], float64](t, MethodSphericalLinear),
		inputs, outputs, SamplerConfig{Normalize: true})
	require.NoError(t, err)

	for _, tm := range []float64{-1, 0, 0.3, 2.5, 4.99, 5, 8} {
		want, err := SphericalLinear(tm, inputs, outputs, true)
		require.NoError(t, err)
		got, err := s.At(tm)
		require.NoError(t, err)
		assert.Equal(t, want, got, "t=%v", tm)
	}

	start, end := s.Bounds()
	assert.Equal(t, 0.0, start)
	assert.Equal(t, 5.0, end)
	assert.Equal(t, MethodSphericalLinear, s.Interpolation().Method())
}

func TestSampler_AtFollowsRotation(t *testing.T) {
	inputs, outputs := spinCurve(3)
	s, err := NewSampler(mustInterpolation[Quat[float64], float64](t, MethodQuasiSphericalLinear),
		inputs, outputs, SamplerConfig{Normalize: true})
	require.NoError(t, err)

	q, err := s.At(1.5)
	require.NoError(t, err)
	want := QuatFromAxisAngle(Vec3[float64]{0, 1, 0}, 0.6)
	assert.InDelta(t, want.Y, q.Y, testutil.ApproxTolerance)
	assert.InDelta(t, want.W, q.W, testutil.ApproxTolerance)
}

func TestSampler_SampleAllParallelMatchesSequential(t *testing.T) {
	inputs, positions := spinCurve(32)
	outputs := make([]Quat[float64], 0, len(positions)+2)
	outputs = append(outputs, Quat[float64]{})
	outputs = append(outputs, positions...)
	outputs = append(outputs, Quat[float64]{})

	times, err := UniformTimes(-1.0, 33.0, 0.01)
	require.NoError(t, err)
	require.Len(t, times, 3401)

	interp := mustInterpolation[Quat[float64], float64](t, MethodCatmullRomSpline)

	seq, err := NewSampler(interp, inputs, outputs, SamplerConfig{Normalize: true})
	require.NoError(t, err)
	par, err := NewSampler(interp, inputs, outputs, SamplerConfig{Normalize: true, EnableParallel: true, Workers: 8})
	require.NoError(t, err)

	want, err := seq.SampleAll(times)
	require.NoError(t, err)
	got, err := par.SampleAll(times)
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

func TestSampler_SampleAllReportsFailingTime(t *testing.T) {
	inputs, outputs := spinCurve(4)
	times := make([]float64, 1000)
	for i := range times {
		times[i] = float64(i) / 250
	}
	times[777] = math.NaN()

	for _, parallel := range []bool{false, true} {
		s, err := NewSampler(mustInterpolation[Quat[float64], float64](t, MethodLinear),
			inputs, outputs, SamplerConfig{EnableParallel: parallel, Workers: 4})
		require.NoError(t, err)

		_, err = s.SampleAll(times)
		require.ErrorIs(t, err, ErrNotComparable)
		assert.Contains(t, err.Error(), "time 777")
	}
}

func TestSampler_SampleAllEmpty(t *testing.T) {
	inputs, outputs := spinCurve(2)
	s, err := NewSampler(mustInterpolation[Quat[float64], float64](t, MethodStep), inputs, outputs,
		SamplerConfig{EnableParallel: true})
	require.NoError(t, err)

	got, err := s.SampleAll(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSampler_CustomFunc(t *testing.T) {
	calls := 0
	hold := func(_ float32, _ []float32, outputs []Scalar[float32], _ bool) (Scalar[float32], error) {
		calls++
		return outputs[len(outputs)-1], nil
	}

	s, err := NewSampler(CustomInterpolation(hold), []float32{0, 1}, []Scalar[float32]{{1}, {2}, {7}}, SamplerConfig{})
	require.NoError(t, err)

	got, err := s.SampleAll([]float32{0, 0.5, 1})
	require.NoError(t, err)
	assert.Equal(t, []Scalar[float32]{{7}, {7}, {7}}, got)
	assert.Equal(t, 3, calls)
}

// =============================================================================
// Uniform Times Tests
// =============================================================================

func TestUniformTimes(t *testing.T) {
	got, err := UniformTimes(0.0, 1.0, 0.25)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, got)

	got32, err := UniformTimes(float32(0), float32(0.3), float32(0.1))
	require.NoError(t, err)
	assert.Len(t, got32, 4)

	single, err := UniformTimes(2.0, 2.0, 1.0)
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, single)
}

func TestUniformTimes_Errors(t *testing.T) {
	_, err := UniformTimes(0.0, 1.0, 0.0)
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = UniformTimes(1.0, 0.0, 0.1)
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = UniformTimes(0.0, math.NaN(), 0.1)
	require.ErrorIs(t, err, ErrNotComparable)

	_, err = UniformTimes(0.0, 1e12, 1e-6)
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = UniformTimes(0.0, math.MaxFloat64, math.SmallestNonzeroFloat64)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestUniformTimes_NonFinite(t *testing.T) {
	inf := math.Inf(1)
	tests := []struct {
		name           string
		from, to, step float64
	}{
		{"both infinite", inf, inf, 0.1},
		{"infinite end", 0, inf, 0.1},
		{"negative infinite start", -inf, 1, 0.1},
		{"infinite step", 0, 1, inf},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UniformTimes(tt.from, tt.to, tt.step)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	_, err := UniformTimes(float32(inf), float32(inf), float32(0.1))
	require.ErrorIs(t, err, ErrInvalidConfig)
}

// =============================================================================
// Benchmarks
// =============================================================================

func BenchmarkSampler_SampleAll(b *testing.B) {
	inputs, outputs := spinCurve(64)
	times, err := UniformTimes(0.0, 63.0, 0.005)
	if err != nil {
		b.Fatal(err)
	}

	for _, parallel := range []bool{false, true} {
		name := "Sequential"
		if parallel {
			name = "Parallel"
		}
		b.Run(name, func(b *testing.B) {
			interp, err := NewInterpolation[Quat[float64], float64](MethodQuasiSphericalLinear)
			if err != nil {
				b.Fatal(err)
			}
			s, err := NewSampler(interp, inputs, outputs, SamplerConfig{Normalize: true, EnableParallel: parallel})
			if err != nil {
				b.Fatal(err)
			}

			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				_, _ = s.SampleAll(times)
			}
		})
	}
}
