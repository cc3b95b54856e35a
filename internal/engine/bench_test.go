package engine

import (
	"math"
	"testing"
)

// benchQuats returns n keyframes rotating steadily about z.
func benchQuats(n int) ([]float64, []quat) {
	inputs := make([]float64, n)
	outputs := make([]quat, n)
	for i := range n {
		inputs[i] = float64(i)
		outputs[i] = aboutZ(float64(i) * 0.3)
	}
	return inputs, outputs
}

func BenchmarkLocate(b *testing.B) {
	inputs, _ := benchQuats(1024)

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		_, _ = Locate(517.3, inputs)
	}
}

func BenchmarkLinear(b *testing.B) {
	inputs, outputs := benchQuats(64)

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		_, _ = Linear(31.7, inputs, outputs, true)
	}
}

// BenchmarkSphericalLinear and BenchmarkQuasiSphericalLinear compare the exact
// and trigonometry-free rotation blends.
func BenchmarkSphericalLinear(b *testing.B) {
	inputs, outputs := benchQuats(64)

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		_, _ = SphericalLinear(31.7, inputs, outputs, true)
	}
}

func BenchmarkQuasiSphericalLinear(b *testing.B) {
	inputs, outputs := benchQuats(64)

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		_, _ = QuasiSphericalLinear(31.7, inputs, outputs, true)
	}
}

func BenchmarkCatmullRomSpline(b *testing.B) {
	inputs, positions := benchQuats(64)
	outputs := make([]quat, 0, len(positions)+catmullRomBoundarySlots)
	outputs = append(outputs, quat{})
	outputs = append(outputs, positions...)
	outputs = append(outputs, quat{})

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		_, _ = CatmullRomSpline(31.7, inputs, outputs, false)
	}
}

func BenchmarkFastNormalize(b *testing.B) {
	v := aboutZ(math.Pi / 5).Scale(0.93)

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		v = FastNormalize[quat, float64](v).Scale(0.93)
	}
}
