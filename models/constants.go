package models

/* The general trend here is we prefix the type of the constant */

// ---------------------------

const (
	DistanceEuclidean        = "euclidean"
	DistanceSquaredEuclidean = "squaredEuclidean"
	DistanceManhattan        = "manhattan"
)

// AllDistances is the canonical benchmark order. The Euclidean pair comes
// first so the argmin cross-check always has both results available.
var AllDistances = []string{
	DistanceEuclidean,
	DistanceSquaredEuclidean,
	DistanceManhattan,
}

// ---------------------------

const (
	DefaultNumRuns    = 15
	DefaultWarmupRuns = 3
	DefaultCoordMin   = 0
	DefaultCoordMax   = 1000
)

// DefaultDatasetSizes are the point counts benchmarked per dimensionality.
var DefaultDatasetSizes = []int{10000, 50000, 100000, 500000}

// DefaultDimensions covers both variants of the comparison.
var DefaultDimensions = []int{2, 3}
