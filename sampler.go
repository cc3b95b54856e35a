package keyframe

import (
	"fmt"
	"math"
	"runtime"
	"sync"
)

// SamplerConfig holds sampling configuration.
type SamplerConfig struct {
	// Normalize normalizes every sampled value.
	Normalize bool

	// EnableParallel splits SampleAll batches across goroutines.
	// Each goroutine samples at least 64 times, so small batches stay sequential.
	EnableParallel bool

	// Workers caps the number of goroutines used when EnableParallel is set.
	// Set to 0 to use GOMAXPROCS.
	Workers int
}

// Validate checks if the configuration is valid.
func (c *SamplerConfig) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative", ErrInvalidConfig)
	}
	if c.Workers > maxWorkers {
		return fmt.Errorf("%w: too many workers (max %d)", ErrInvalidConfig, maxWorkers)
	}
	return nil
}

// workers returns the goroutine count for a batch of n times.
func (c *SamplerConfig) workers(n int) int {
	w := c.Workers
	if w == 0 {
		w = runtime.GOMAXPROCS(0)
	}
	return max(1, min(w, n/minParallelBatch))
}

// Sampler evaluates one curve repeatedly. The buffers are validated once by
// NewSampler and borrowed, not copied; they must not change while the
// Sampler is in use.
//
// A Sampler holds no mutable state and is safe for concurrent use.
type Sampler[T Primitive[T, F], F Float] struct {
	interp  Interpolation[T, F]
	fn      Func[T, F]
	inputs  []F
	outputs []T
	config  SamplerConfig
}

// NewSampler validates the configuration and the buffers against the
// interpolation's layout.
func NewSampler[T Primitive[T, F], F Float](interp Interpolation[T, F], inputs []F, outputs []T, config SamplerConfig) (*Sampler[T, F], error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	fn, err := interp.fn()
	if err != nil {
		return nil, err
	}

	if err := validateCurve(interp.method.layout(), inputs, outputs); err != nil {
		return nil, fmt.Errorf("%v curve: %w", interp.method, err)
	}

	return &Sampler[T, F]{
		interp:  interp,
		fn:      fn,
		inputs:  inputs,
		outputs: outputs,
		config:  config,
	}, nil
}

// Interpolation returns the sampler's interpolation.
func (s *Sampler[T, F]) Interpolation() Interpolation[T, F] {
	return s.interp
}

// Bounds returns the first and last keyframe times.
func (s *Sampler[T, F]) Bounds() (start, end F) {
	return s.inputs[0], s.inputs[len(s.inputs)-1]
}

// At evaluates the curve at t.
func (s *Sampler[T, F]) At(t F) (T, error) {
	return s.fn(t, s.inputs, s.outputs, s.config.Normalize)
}

// SampleAll evaluates the curve at every time in times.
// When EnableParallel is set, contiguous chunks of times are sampled
// concurrently. Otherwise they are sampled sequentially.
func (s *Sampler[T, F]) SampleAll(times []F) ([]T, error) {
	out := make([]T, len(times))

	workers := 1
	if s.config.EnableParallel {
		workers = s.config.workers(len(times))
	}

	// Sequential sampling (default or when the batch is small)
	if workers <= 1 {
		if err := s.sampleRange(times, out, 0); err != nil {
			return nil, err
		}
		return out, nil
	}

	// Parallel sampling: one contiguous chunk per worker
	var wg sync.WaitGroup
	errChan := make(chan error, workers)
	chunk := (len(times) + workers - 1) / workers

	for lo := 0; lo < len(times); lo += chunk {
		hi := min(lo+chunk, len(times))
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			if err := s.sampleRange(times[lo:hi], out[lo:hi], lo); err != nil {
				errChan <- err
			}
		}(lo, hi)
	}

	wg.Wait()
	close(errChan)

	// Check for errors
	for err := range errChan {
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// sampleRange fills dst from times; offset is the index of times[0] in the
// caller's batch, used for error messages.
func (s *Sampler[T, F]) sampleRange(times []F, dst []T, offset int) error {
	for i, t := range times {
		v, err := s.At(t)
		if err != nil {
			return fmt.Errorf("time %d: %w", offset+i, err)
		}
		dst[i] = v
	}
	return nil
}

// UniformTimes returns the times from, from+step, ... up to and including to
// when to lies on the grid.
func UniformTimes[F Float](from, to, step F) ([]F, error) {
	if math.IsNaN(float64(from)) || math.IsNaN(float64(to)) || math.IsNaN(float64(step)) {
		return nil, fmt.Errorf("%w: NaN time range", ErrNotComparable)
	}
	if math.IsInf(float64(from), 0) || math.IsInf(float64(to), 0) || math.IsInf(float64(step), 0) {
		return nil, fmt.Errorf("%w: time range must be finite", ErrInvalidConfig)
	}
	if step <= 0 {
		return nil, fmt.Errorf("%w: step must be positive, got %v", ErrInvalidConfig, step)
	}
	if to < from {
		return nil, fmt.Errorf("%w: range end %v precedes start %v", ErrInvalidConfig, to, from)
	}

	count := math.Floor(float64(to-from)/float64(step)+uniformTimesEpsilon) + 1
	if math.IsInf(count, 0) || count > maxUniformTimes {
		return nil, fmt.Errorf("%w: %.0f times exceeds limit %d", ErrInvalidConfig, count, maxUniformTimes)
	}

	times := make([]F, int(count))
	for i := range times {
		times[i] = from + F(i)*step
	}
	return times, nil
}
