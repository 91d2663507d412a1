package models

import "time"

// ---------------------------

// Result is what a single scan produced: the closest point and its value
// under the scanned metric. Index is the position in the dataset, kept so
// equality checks between metrics don't have to compare coordinates.
type Result struct {
	Index int
	Point []float32
	Value float32
}

// ---------------------------

// TimingStats aggregates the recorded repetitions of one benchmark, all in
// seconds. StdDev is the sample standard deviation and is 0 for fewer than
// two samples.
type TimingStats struct {
	Mean   float64
	Median float64
	StdDev float64
	Min    float64
	Max    float64
}

// ---------------------------

// Benchmark holds everything measured for one (distance, dataset size) pair:
// the raw per-run timings and results plus the derived statistics.
type Benchmark struct {
	Distance   string
	Size       int
	WarmupRuns int
	Timings    []time.Duration
	Results    []Result
	Stats      TimingStats
}

// FirstResult returns the result of the first recorded run, used for the
// cross-metric equality checks.
func (b Benchmark) FirstResult() Result {
	return b.Results[0]
}
