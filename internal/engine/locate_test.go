package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Locate Tests
// =============================================================================

func TestLocate(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		want Location
	}{
		{"before first", -0.5, Location{Before: true}},
		{"at first", 0, Location{Index: 0}},
		{"inside first", 0.5, Location{Index: 0}},
		{"at interior keyframe", 1, Location{Index: 1}},
		{"just below keyframe", math.Nextafter(2, 0), Location{Index: 1}},
		{"inside last", 3.75, Location{Index: 3}},
		{"at last", 4, Location{Index: 4, After: true}},
		{"past last", 100, Location{Index: 4, After: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Locate(tt.t, sampleInputs)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocate_SingleKeyframe(t *testing.T) {
	inputs := []float64{2}

	loc, err := Locate(1.0, inputs)
	require.NoError(t, err)
	assert.True(t, loc.Before)

	loc, err = Locate(2.0, inputs)
	require.NoError(t, err)
	assert.Equal(t, Location{Index: 0, After: true}, loc)
}

func TestLocate_Float32(t *testing.T) {
	inputs := []float32{0, 0.25, 0.5, 1}

	loc, err := Locate(float32(0.3), inputs)
	require.NoError(t, err)
	assert.Equal(t, Location{Index: 1}, loc)
}

func TestLocate_Errors(t *testing.T) {
	_, err := Locate(math.NaN(), sampleInputs)
	require.ErrorIs(t, err, ErrNotComparable)

	_, err = Locate(1.0, []float64(nil))
	require.ErrorIs(t, err, ErrEmptyKeyframeSet)
}

func TestLocation_InRange(t *testing.T) {
	assert.True(t, Location{Index: 2}.InRange())
	assert.False(t, Location{Before: true}.InRange())
	assert.False(t, Location{Index: 4, After: true}.InRange())
}

// =============================================================================
// Blend Factor Tests
// =============================================================================

func TestBlendFactor(t *testing.T) {
	inputs := []float64{0, 2, 3}

	tests := []struct {
		name string
		t    float64
		i    int
		want float64
	}{
		{"interval start", 0, 0, 0},
		{"quarter of wide interval", 0.5, 0, 0.25},
		{"middle of narrow interval", 2.5, 1, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := BlendFactor(tt.t, inputs, tt.i)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, d, 1e-15)
		})
	}
}

func TestBlendFactor_DegenerateInterval(t *testing.T) {
	_, err := BlendFactor(1.0, []float64{1, 1}, 0)
	require.ErrorIs(t, err, ErrDegenerateInterval)
}

func TestBlendFactor_IntervalOutOfRange(t *testing.T) {
	inputs := []float64{0, 1, 2}

	for _, i := range []int{-1, 2, 3} {
		_, err := BlendFactor(2.5, inputs, i)
		assert.ErrorIs(t, err, ErrMismatchedBufferLength, "i=%d", i)
	}

	_, err := BlendFactor(0.0, []float64{0}, 0)
	require.ErrorIs(t, err, ErrMismatchedBufferLength)
}

func TestSpan_OutOfRangeHasNoFactor(t *testing.T) {
	loc, d, err := span(5.0, sampleInputs)
	require.NoError(t, err)
	assert.True(t, loc.After)
	assert.Zero(t, d)
}
