package report_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/nearbench/nearbench/bench"
	"github.com/nearbench/nearbench/models"
	"github.com/nearbench/nearbench/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeBenchmark(name string, index int, mean time.Duration) models.Benchmark {
	timings := []time.Duration{mean}
	return models.Benchmark{
		Distance: name,
		Size:     1000,
		Timings:  timings,
		Results:  []models.Result{{Index: index, Value: 1}},
		Stats:    bench.Summarize(timings),
	}
}

func TestWriteMetricExample(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteMetricExample(&buf))
	out := buf.String()
	assert.Contains(t, out, "EUCLIDEAN (sqrt) distance: 7.0711")
	assert.Contains(t, out, "SQUARED EUCLIDEAN distance: 50.0000")
	assert.Contains(t, out, "MANHATTAN distance: 12.0000")
}

func TestWriteSection(t *testing.T) {
	benchmarks := []models.Benchmark{
		fakeBenchmark(models.DistanceEuclidean, 5, 4*time.Millisecond),
		fakeBenchmark(models.DistanceSquaredEuclidean, 5, 2*time.Millisecond),
		fakeBenchmark(models.DistanceManhattan, 8, 1*time.Millisecond),
	}
	// ---------------------------
	var buf bytes.Buffer
	report.WriteSection(&buf, 1000, 3, benchmarks)
	out := buf.String()
	assert.Contains(t, out, "--- Testing with 1000 3D points ---")
	assert.Contains(t, out, "Euclidean methods find same point: true")
	assert.Contains(t, out, "Manhattan finds different point: true (expected)")
	assert.Contains(t, out, "EUCLIDEAN (sqrt) method:")
	assert.Contains(t, out, "Mean time: 0.004000s")
	assert.Contains(t, out, "SQUARED is 2.00x FASTER than SQRT")
	assert.Contains(t, out, "MANHATTAN is 4.00x FASTER than SQRT")
	assert.Contains(t, out, "MANHATTAN is 2.00x FASTER than SQUARED")
	assert.Contains(t, out, "Ratios - SQRT/SQUARED: 2.0000, SQRT/MANHATTAN: 4.0000")
}

func TestWriteSection_Mismatch(t *testing.T) {
	benchmarks := []models.Benchmark{
		fakeBenchmark(models.DistanceEuclidean, 5, 4*time.Millisecond),
		fakeBenchmark(models.DistanceSquaredEuclidean, 6, 2*time.Millisecond),
	}
	var buf bytes.Buffer
	report.WriteSection(&buf, 1000, 2, benchmarks)
	assert.Contains(t, buf.String(), "Euclidean methods find same point: false")
}

func TestWriteHeaderAndNotes(t *testing.T) {
	var buf bytes.Buffer
	report.WriteHeader(&buf, 2, 15, 3, 42)
	report.WriteComplexityNotes(&buf, 2)
	out := buf.String()
	assert.Contains(t, out, "=== 2D Distance Calculation Benchmark ===")
	assert.Contains(t, out, "Number of runs per test: 15 (plus 3 discarded warm-up runs)")
	assert.Contains(t, out, "2 subtractions + 2 multiplications + 1 additions + 1 sqrt")
}
