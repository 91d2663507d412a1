package dataset

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"

	"github.com/cespare/xxhash"
	"github.com/nearbench/nearbench/models"
	"github.com/rs/zerolog/log"
)

// Generate produces numPoints points with every coordinate drawn uniformly
// from [lo, hi] and a target at the midpoint of that interval on every axis.
func Generate(numPoints, dims int, lo, hi float32, rng *rand.Rand) (models.Dataset, error) {
	// ---------------------------
	if numPoints <= 0 {
		return models.Dataset{}, fmt.Errorf("dataset size must be positive, got %d", numPoints)
	}
	if dims < 1 {
		return models.Dataset{}, fmt.Errorf("dimensionality must be at least 1, got %d", dims)
	}
	if hi <= lo {
		return models.Dataset{}, fmt.Errorf("coordinate interval [%f, %f] is empty", lo, hi)
	}
	// ---------------------------
	points := make([][]float32, numPoints)
	for i := range points {
		point := make([]float32, dims)
		for j := range point {
			point[j] = lo + rng.Float32()*(hi-lo)
		}
		points[i] = point
	}
	// ---------------------------
	target := make([]float32, dims)
	for j := range target {
		target[j] = lo + (hi-lo)/2
	}
	// ---------------------------
	ds := models.Dataset{
		Points:      points,
		Target:      target,
		Dims:        dims,
		Fingerprint: Fingerprint(points),
	}
	log.Debug().Int("numPoints", numPoints).Int("dims", dims).Uint64("fingerprint", ds.Fingerprint).Msg("Generate")
	return ds, nil
}

// Fingerprint hashes the raw coordinate bytes of the point set. The harness
// re-hashes after every benchmark to assert each distance function saw the
// same untouched inputs.
func Fingerprint(points [][]float32) uint64 {
	hasher := xxhash.New()
	var buf [4]byte
	for _, point := range points {
		for _, coord := range point {
			binary.LittleEndian.PutUint32(buf[:], math.Float32bits(coord))
			hasher.Write(buf[:])
		}
	}
	return hasher.Sum64()
}
