package engine

// Minimal primitives for exercising the engine without the public types.

type vec3 [3]float64

func (v vec3) Add(o vec3) vec3 { return vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]} }
func (v vec3) Sub(o vec3) vec3 { return vec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]} }
func (v vec3) Scale(k float64) vec3 { return vec3{v[0] * k, v[1] * k, v[2] * k} }
func (v vec3) Dot(o vec3) float64 { return v[0]*o[0] + v[1]*o[1] + v[2]*o[2] }
func (v vec3) Magnitude2() float64 { return v.Dot(v) }

type vec4 [4]float32

func (v vec4) Add(o vec4) vec4 {
	return vec4{v[0] + o[0], v[1] + o[1], v[2] + o[2], v[3] + o[3]}
}
func (v vec4) Sub(o vec4) vec4 {
	return vec4{v[0] - o[0], v[1] - o[1], v[2] - o[2], v[3] - o[3]}
}
func (v vec4) Scale(k float32) vec4 {
	return vec4{v[0] * k, v[1] * k, v[2] * k, v[3] * k}
}
func (v vec4) Dot(o vec4) float32 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2] + v[3]*o[3]
}
func (v vec4) Magnitude2() float32 { return v.Dot(v) }

// quat is a float64 quaternion stored as (x, y, z, w).
type quat [4]float64

func (q quat) Add(o quat) quat {
	return quat{q[0] + o[0], q[1] + o[1], q[2] + o[2], q[3] + o[3]}
}
func (q quat) Sub(o quat) quat {
	return quat{q[0] - o[0], q[1] - o[1], q[2] - o[2], q[3] - o[3]}
}
func (q quat) Scale(k float64) quat {
	return quat{q[0] * k, q[1] * k, q[2] * k, q[3] * k}
}
func (q quat) Dot(o quat) float64 {
	return q[0]*o[0] + q[1]*o[1] + q[2]*o[2] + q[3]*o[3]
}
func (q quat) Magnitude2() float64 { return q.Dot(q) }

// scalar overrides normalization with the identity.
type scalar float64

func (s scalar) Add(o scalar) scalar { return s + o }
func (s scalar) Sub(o scalar) scalar { return s - o }
func (s scalar) Scale(k float64) scalar { return s * scalar(k) }
func (s scalar) Dot(o scalar) float64 { return float64(s * o) }
func (s scalar) Magnitude2() float64 { return float64(s * s) }
func (s scalar) Normalize() scalar { return s }

var (
	_ Primitive[vec3, float64]   = vec3{}
	_ Primitive[vec4, float32]   = vec4{}
	_ Primitive[quat, float64]   = quat{}
	_ Primitive[scalar, float64] = scalar(0)
	_ Normalizer[scalar]         = scalar(0)
)

// components flatten primitives for testutil assertions.
func (v vec3) components() []float64 { return v[:] }
func (v vec4) components() []float64 { return []float64{float64(v[0]), float64(v[1]), float64(v[2]), float64(v[3])} }
func (v quat) components() []float64 { return v[:] }
func (s scalar) components() []float64 { return []float64{float64(s)} }

// sampleInputs are the keyframe times used by most tests.
var sampleInputs = []float64{0, 1, 2, 3, 4}

// zigzag returns the alternating outputs 0, 1, 0, -1, 0 along the x axis.
func zigzag() []vec3 {
	return []vec3{{0, 0, 0}, {1, 0, 0}, {0, 0, 0}, {-1, 0, 0}, {0, 0, 0}}
}
