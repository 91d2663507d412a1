package bench

import (
	"fmt"
	"os"
	"time"

	"github.com/nearbench/nearbench/dataset"
	"github.com/nearbench/nearbench/distance"
	"github.com/nearbench/nearbench/models"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
)

// ---------------------------

type Options struct {
	// Discarded repetitions before recording starts
	WarmupRuns int
	// Recorded repetitions, at least 1
	NumRuns int
	// Show a progress bar while the timed runs execute
	Progress bool
}

// ---------------------------

// Measure runs the nearest-point scan under fn over the dataset, WarmupRuns
// times discarded and then NumRuns times with wall-clock timing recorded per
// run. The inputs are never modified, so it also asserts every repetition
// found the same point.
func Measure(name string, fn distance.DistFunc, ds models.Dataset, opts Options) (models.Benchmark, error) {
	// ---------------------------
	if opts.NumRuns < 1 {
		return models.Benchmark{}, fmt.Errorf("numRuns must be at least 1, got %d", opts.NumRuns)
	}
	if opts.WarmupRuns < 0 {
		return models.Benchmark{}, fmt.Errorf("warmupRuns must not be negative, got %d", opts.WarmupRuns)
	}
	if len(ds.Points) == 0 {
		return models.Benchmark{}, fmt.Errorf("cannot benchmark %s over an empty dataset", name)
	}
	// ---------------------------
	// Warm-up runs stabilise caches and branch prediction before anything is
	// recorded. Their results are discarded.
	for i := 0; i < opts.WarmupRuns; i++ {
		distance.NearestPoint(ds.Points, ds.Target, fn)
	}
	// ---------------------------
	// The bar goes to stderr, the report owns stdout.
	var bar *progressbar.ProgressBar
	if opts.Progress {
		bar = progressbar.NewOptions(opts.NumRuns,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription(name),
			progressbar.OptionClearOnFinish(),
		)
	}
	timings := make([]time.Duration, 0, opts.NumRuns)
	results := make([]models.Result, 0, opts.NumRuns)
	for i := 0; i < opts.NumRuns; i++ {
		startTime := time.Now()
		index, value := distance.NearestPoint(ds.Points, ds.Target, fn)
		elapsed := time.Since(startTime)
		// ---------------------------
		timings = append(timings, elapsed)
		results = append(results, models.Result{
			Index: index,
			Point: ds.Points[index],
			Value: value,
		})
		if bar != nil {
			bar.Add(1)
		}
	}
	if bar != nil {
		bar.Finish()
	}
	// ---------------------------
	// The scan is a pure function of immutable inputs, every repetition must
	// land on the same point.
	for i := 1; i < len(results); i++ {
		if results[i].Index != results[0].Index {
			return models.Benchmark{}, fmt.Errorf("non-deterministic scan for %s: run 0 found point %d, run %d found point %d",
				name, results[0].Index, i, results[i].Index)
		}
	}
	if ds.Fingerprint != 0 {
		if fp := dataset.Fingerprint(ds.Points); fp != ds.Fingerprint {
			return models.Benchmark{}, fmt.Errorf("dataset mutated during %s benchmark: fingerprint %x, expected %x", name, fp, ds.Fingerprint)
		}
	}
	// ---------------------------
	benchmark := models.Benchmark{
		Distance:   name,
		Size:       len(ds.Points),
		WarmupRuns: opts.WarmupRuns,
		Timings:    timings,
		Results:    results,
		Stats:      Summarize(timings),
	}
	log.Debug().Str("distance", name).Int("size", benchmark.Size).Float64("meanSecs", benchmark.Stats.Mean).Msg("Measure")
	return benchmark, nil
}

// ---------------------------

// VerifyArgminInvariance checks that the Euclidean and squared Euclidean
// benchmarks in the slice selected the identical closest point. Squaring is
// monotonic for non-negative distances, so a mismatch means a broken scan.
func VerifyArgminInvariance(benchmarks []models.Benchmark) error {
	var euclidean, squared *models.Benchmark
	for i := range benchmarks {
		switch benchmarks[i].Distance {
		case models.DistanceEuclidean:
			euclidean = &benchmarks[i]
		case models.DistanceSquaredEuclidean:
			squared = &benchmarks[i]
		}
	}
	if euclidean == nil || squared == nil {
		return nil
	}
	if euclidean.FirstResult().Index != squared.FirstResult().Index {
		return fmt.Errorf("euclidean found point %d but squared euclidean found point %d",
			euclidean.FirstResult().Index, squared.FirstResult().Index)
	}
	return nil
}
