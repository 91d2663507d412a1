package distance

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randPoints(t *testing.T, n, dims int) [][]float32 {
	t.Helper()
	rng := rand.New(rand.NewSource(42))
	points := make([][]float32, n)
	for i := range points {
		points[i] = make([]float32, dims)
		for j := range points[i] {
			points[i][j] = rng.Float32() * 1000
		}
	}
	return points
}

func TestNearestPoint_ArgminInvariance(t *testing.T) {
	// Squaring is monotonic for non-negative distances, so the sqrt and
	// squared scans must land on the same point.
	points := randPoints(t, 500, 3)
	target := []float32{500, 500, 500}
	// ---------------------------
	sqrtIdx, sqrtValue := NearestPoint(points, target, euclideanDistancePureGo)
	sqIdx, sqValue := NearestPoint(points, target, squaredEuclideanDistancePureGo)
	require.Equal(t, sqrtIdx, sqIdx)
	assert.InDelta(t, math.Sqrt(float64(sqValue)), float64(sqrtValue), 1e-3)
}

func TestNearestPoint_TieBreak(t *testing.T) {
	// Both the first and third point are at distance 1, strict less-than
	// keeps the first-encountered one.
	points := [][]float32{{1, 0}, {0, 2}, {0, 1}, {1, 0}}
	target := []float32{0, 0}
	idx, value := NearestPoint(points, target, euclideanDistancePureGo)
	assert.Equal(t, 0, idx)
	assert.Equal(t, float32(1), value)
}

func TestNearestPoint_SinglePoint(t *testing.T) {
	points := [][]float32{{3, 4, 5}}
	target := []float32{0, 0, 0}
	cases := []struct {
		name string
		fn   DistFunc
		want float32
	}{
		{"euclidean", euclideanDistancePureGo, float32(math.Sqrt(50))},
		{"squared", squaredEuclideanDistancePureGo, 50},
		{"manhattan", manhattanDistancePureGo, 12},
	}
	for _, tt := range cases {
		idx, value := NearestPoint(points, target, tt.fn)
		assert.Equal(t, 0, idx, tt.name)
		assert.InDelta(t, tt.want, value, 1e-4, tt.name)
	}
}

func TestNearestPoint_TargetInSet(t *testing.T) {
	points := randPoints(t, 100, 2)
	target := []float32{500, 500}
	points[57] = []float32{500, 500}
	// ---------------------------
	for _, fn := range []DistFunc{
		euclideanDistancePureGo,
		squaredEuclideanDistancePureGo,
		manhattanDistancePureGo,
	} {
		idx, value := NearestPoint(points, target, fn)
		assert.Equal(t, 57, idx)
		assert.Equal(t, float32(0), value)
	}
}

func TestNearestPoint_Empty(t *testing.T) {
	idx, _ := NearestPoint(nil, []float32{0, 0}, euclideanDistancePureGo)
	assert.Equal(t, -1, idx)
}
