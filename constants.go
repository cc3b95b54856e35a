package keyframe

// Sampler limits
const (
	maxWorkers       = 256 // Maximum goroutines per SampleAll call
	minParallelBatch = 64  // Times per worker below which parallelism is not worth it
)

// Uniform time grid constants
const (
	uniformTimesEpsilon = 1e-6    // Fraction of a step tolerated so that to lands on the grid
	maxUniformTimes     = 1 << 24 // Upper bound on generated times
)
