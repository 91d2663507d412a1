package main

import (
	"flag"
	"os"

	"github.com/nearbench/nearbench/bench"
	"github.com/nearbench/nearbench/dataset"
	"github.com/nearbench/nearbench/distance"
	"github.com/nearbench/nearbench/models"
	"github.com/nearbench/nearbench/report"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/hdf5"
)

/* Runs the same distance comparison over a real vector dataset in the
 * ann-benchmarks hdf5 layout instead of synthetic uniform points. The target
 * is the centroid of the set, the closest real vector to the middle of the
 * data plays the role the interval midpoint plays for synthetic points. */

func loadHDF5(fname string) [][]float32 {
	log.Info().Str("fname", fname).Msg("loadHDF5")
	f, err := hdf5.OpenFile(fname, hdf5.F_ACC_RDONLY)
	if err != nil {
		log.Fatal().Err(err).Msg("loadHDF5")
	}
	// ---------------------------
	dset, err := f.OpenDataset("train")
	if err != nil {
		log.Fatal().Err(err).Msg("loadHDF5")
	}
	// ---------------------------
	dspace := dset.Space()
	dataBuf := make([]float32, dspace.SimpleExtentNPoints())
	if err := dset.Read(&dataBuf); err != nil {
		log.Fatal().Err(err).Msg("loadHDF5")
	}
	dims, _, err := dspace.SimpleExtentDims()
	if err != nil {
		log.Fatal().Err(err).Msg("loadHDF5")
	}
	// ---------------------------
	dset.Close()
	f.Close()
	log.Debug().Uint("dims[0]", dims[0]).Uint("dims[1]", dims[1]).Msg("loadHDF5")
	// ---------------------------
	points := make([][]float32, dims[0])
	for i := uint(0); i < dims[0]; i++ {
		points[i] = dataBuf[i*dims[1] : (i+1)*dims[1]]
	}
	return points
}

func centroid(points [][]float32) []float32 {
	target := make([]float32, len(points[0]))
	for _, point := range points {
		for j, coord := range point {
			target[j] += coord
		}
	}
	for j := range target {
		target[j] /= float32(len(points))
	}
	return target
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	// ---------------------------
	fname := flag.String("dataset", "", "path to an ann-benchmarks hdf5 file")
	numRuns := flag.Int("runs", 5, "recorded repetitions per distance")
	warmupRuns := flag.Int("warmup", 1, "discarded warm-up repetitions")
	flag.Parse()
	if *fname == "" {
		log.Fatal().Msg("-dataset is required")
	}
	// ---------------------------
	points := loadHDF5(*fname)
	if len(points) == 0 {
		log.Fatal().Msg("dataset has no train vectors")
	}
	ds := models.Dataset{
		Points:      points,
		Target:      centroid(points),
		Dims:        len(points[0]),
		Fingerprint: dataset.Fingerprint(points),
	}
	log.Info().Int("numPoints", len(points)).Int("dims", ds.Dims).Msg("Dataset loaded")
	// ---------------------------
	benchmarks := make([]models.Benchmark, 0, len(models.AllDistances))
	for _, name := range models.AllDistances {
		fn, err := distance.GetDistanceFn(name)
		if err != nil {
			log.Fatal().Err(err).Msg("Unknown distance function")
		}
		benchmark, err := bench.Measure(name, fn, ds, bench.Options{
			WarmupRuns: *warmupRuns,
			NumRuns:    *numRuns,
			Progress:   true,
		})
		if err != nil {
			log.Fatal().Err(err).Str("distance", name).Msg("Benchmark failed")
		}
		benchmarks = append(benchmarks, benchmark)
	}
	// ---------------------------
	if err := bench.VerifyArgminInvariance(benchmarks); err != nil {
		log.Fatal().Err(err).Msg("Euclidean argmin invariance violated")
	}
	report.WriteSection(os.Stdout, len(points), ds.Dims, benchmarks)
}
