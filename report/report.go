package report

import (
	"fmt"
	"io"

	"github.com/nearbench/nearbench/distance"
	"github.com/nearbench/nearbench/models"
)

// ---------------------------

// Console labels per distance name, in report register.
var labels = map[string]string{
	models.DistanceEuclidean:        "EUCLIDEAN (sqrt)",
	models.DistanceSquaredEuclidean: "SQUARED EUCLIDEAN",
	models.DistanceManhattan:        "MANHATTAN",
}

// Short labels used in the ratio lines.
var shortLabels = map[string]string{
	models.DistanceEuclidean:        "SQRT",
	models.DistanceSquaredEuclidean: "SQUARED",
	models.DistanceManhattan:        "MANHATTAN",
}

func label(name string) string {
	if l, ok := labels[name]; ok {
		return l
	}
	return name
}

func shortLabel(name string) string {
	if l, ok := shortLabels[name]; ok {
		return l
	}
	return name
}

// ---------------------------

// WriteHeader opens the report for one dimensionality.
func WriteHeader(w io.Writer, dims, numRuns, warmupRuns int, seed int64) {
	fmt.Fprintf(w, "=== %dD Distance Calculation Benchmark ===\n", dims)
	fmt.Fprintf(w, "Number of runs per test: %d (plus %d discarded warm-up runs)\n", numRuns, warmupRuns)
	fmt.Fprintf(w, "Comparing: Euclidean (sqrt), Squared Euclidean, Manhattan distances\n")
	fmt.Fprintf(w, "Generator seed: %d\n", seed)
	fmt.Fprintln(w)
}

// ---------------------------

// WriteMetricExample prints a small worked example so the three metrics can
// be eyeballed against each other before any timings appear.
func WriteMetricExample(w io.Writer) error {
	point1 := []float32{0, 0, 0}
	point2 := []float32{3, 4, 5}
	fmt.Fprintln(w, "=== Distance Metric Comparison (Small Example) ===")
	fmt.Fprintf(w, "Point 1: (%g, %g, %g)\n", point1[0], point1[1], point1[2])
	fmt.Fprintf(w, "Point 2: (%g, %g, %g)\n", point2[0], point2[1], point2[2])
	for _, name := range models.AllDistances {
		fn, err := distance.GetDistanceFn(name)
		if err != nil {
			return fmt.Errorf("failed to compute example for %s: %w", name, err)
		}
		fmt.Fprintf(w, "%s distance: %.4f\n", label(name), fn(point1, point2))
	}
	fmt.Fprintln(w)
	return nil
}

// ---------------------------

// WriteSection renders the results of one dataset size: the cross-metric
// equality checks on the first-run results, the timing statistics per
// distance, and the pairwise mean-time ratios.
func WriteSection(w io.Writer, size, dims int, benchmarks []models.Benchmark) {
	fmt.Fprintf(w, "--- Testing with %d %dD points ---\n", size, dims)
	// ---------------------------
	writeEqualityChecks(w, benchmarks)
	fmt.Fprintln(w)
	// ---------------------------
	for _, benchmark := range benchmarks {
		fmt.Fprintf(w, "  %s method:\n", label(benchmark.Distance))
		fmt.Fprintf(w, "    Mean time: %.6fs\n", benchmark.Stats.Mean)
		fmt.Fprintf(w, "    Median time: %.6fs\n", benchmark.Stats.Median)
		fmt.Fprintf(w, "    Std dev: %.6fs\n", benchmark.Stats.StdDev)
		fmt.Fprintf(w, "    Range: %.6fs - %.6fs\n", benchmark.Stats.Min, benchmark.Stats.Max)
	}
	// ---------------------------
	fmt.Fprintln(w, "  Performance Comparisons:")
	for i := 0; i < len(benchmarks); i++ {
		for j := i + 1; j < len(benchmarks); j++ {
			writeRatio(w, benchmarks[i], benchmarks[j])
		}
	}
	writeRatioSummary(w, benchmarks)
	fmt.Fprintln(w)
}

func writeEqualityChecks(w io.Writer, benchmarks []models.Benchmark) {
	byName := make(map[string]models.Benchmark, len(benchmarks))
	for _, benchmark := range benchmarks {
		byName[benchmark.Distance] = benchmark
	}
	euclidean, hasEuclidean := byName[models.DistanceEuclidean]
	squared, hasSquared := byName[models.DistanceSquaredEuclidean]
	manhattan, hasManhattan := byName[models.DistanceManhattan]
	// ---------------------------
	if hasEuclidean && hasSquared {
		match := euclidean.FirstResult().Index == squared.FirstResult().Index
		fmt.Fprintf(w, "  Euclidean methods find same point: %t\n", match)
	}
	if hasEuclidean && hasManhattan {
		differs := euclidean.FirstResult().Index != manhattan.FirstResult().Index
		fmt.Fprintf(w, "  Manhattan finds different point: %t (expected)\n", differs)
	}
}

// writeRatio prints which of the pair was faster on mean time and by how
// much.
func writeRatio(w io.Writer, a, b models.Benchmark) {
	ratio := a.Stats.Mean / b.Stats.Mean
	if ratio > 1 {
		fmt.Fprintf(w, "    %s is %.2fx FASTER than %s\n", shortLabel(b.Distance), ratio, shortLabel(a.Distance))
	} else {
		fmt.Fprintf(w, "    %s is %.2fx FASTER than %s\n", shortLabel(a.Distance), 1/ratio, shortLabel(b.Distance))
	}
}

func writeRatioSummary(w io.Writer, benchmarks []models.Benchmark) {
	if len(benchmarks) < 2 {
		return
	}
	fmt.Fprint(w, "    Ratios -")
	base := benchmarks[0]
	for i, benchmark := range benchmarks[1:] {
		if i > 0 {
			fmt.Fprint(w, ",")
		}
		fmt.Fprintf(w, " %s/%s: %.4f", shortLabel(base.Distance), shortLabel(benchmark.Distance), base.Stats.Mean/benchmark.Stats.Mean)
	}
	fmt.Fprintln(w)
}

// ---------------------------

// WriteComplexityNotes closes the report with the per-point operation counts
// behind the measured differences.
func WriteComplexityNotes(w io.Writer, dims int) {
	fmt.Fprintln(w, "=== Computational Complexity Analysis ===")
	fmt.Fprintf(w, "Per point calculations (%dD):\n", dims)
	fmt.Fprintf(w, "  SQRT: %d subtractions + %d multiplications + %d additions + 1 sqrt\n", dims, dims, dims-1)
	fmt.Fprintf(w, "  SQUARED: %d subtractions + %d multiplications + %d additions\n", dims, dims, dims-1)
	fmt.Fprintf(w, "  MANHATTAN: %d subtractions + %d absolute values + %d additions\n", dims, dims, dims-1)
	fmt.Fprintln(w, "Note: sqrt is typically 10-20x more expensive than basic arithmetic operations")
	fmt.Fprintln(w)
}
