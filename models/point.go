package models

// Dataset is one synthetic point set plus its fixed target. It is generated
// once per size and shared, unmodified, by every distance function and every
// repetition so the comparison runs over identical inputs.
type Dataset struct {
	// Points are coordinate tuples, all of length Dims.
	Points [][]float32
	// Target sits at the midpoint of the coordinate interval on every axis.
	Target []float32
	Dims   int
	// Fingerprint is an xxhash over the raw coordinates, checked after each
	// benchmark to assert the inputs were not mutated.
	Fingerprint uint64
}
