package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/nearbench/nearbench/bench"
	"github.com/nearbench/nearbench/config"
	"github.com/nearbench/nearbench/dataset"
	"github.com/nearbench/nearbench/distance"
	"github.com/nearbench/nearbench/history"
	"github.com/nearbench/nearbench/models"
	"github.com/nearbench/nearbench/report"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sys/cpu"
)

// ---------------------------

func setupLogging() {
	// The report goes to stdout, logs stay on stderr so the two don't mix.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	// ---------------------------
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if config.Cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Debug().Interface("config", config.Cfg).Msg("Environment config")
	}
}

func init() {
	setupLogging()
}

// ---------------------------

func main() {
	log.Info().Str("version", "0.1.0").Msg("Starting nearbench")
	if err := config.Cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	// ---------------------------
	hostname, err := os.Hostname()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get hostname")
	}
	// The timings only mean something relative to the machine they ran on,
	// so record the environment up front.
	log.Info().Str("hostname", hostname).
		Bool("avx2", cpu.X86.HasAVX2).
		Bool("fma", cpu.X86.HasFMA).
		Bool("sse3", cpu.X86.HasSSE3).
		Msg("Benchmark environment")
	// ---------------------------
	seed := config.Cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	log.Info().Int64("seed", seed).Msg("Point generator seeded")
	// ---------------------------
	var store *history.Store
	if config.Cfg.HistoryPath != "" {
		store, err = history.Open(config.Cfg.HistoryPath)
		if err != nil {
			log.Warn().Err(err).Msg("History persistence disabled")
			store = nil
		} else {
			defer store.Close()
		}
	}
	// ---------------------------
	if err := report.WriteMetricExample(os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("Failed to write metric example")
	}
	for _, dims := range config.Cfg.Dimensions {
		runDimension(dims, seed, rng, store)
	}
	log.Info().Msg("Benchmark complete")
}

// ---------------------------

// runDimension benchmarks every configured dataset size at one
// dimensionality and records the session in the history store.
func runDimension(dims int, seed int64, rng *rand.Rand, store *history.Store) {
	report.WriteHeader(os.Stdout, dims, config.Cfg.NumRuns, config.Cfg.WarmupRuns, seed)
	session := history.NewSession(dims)
	// ---------------------------
	for _, size := range config.Cfg.DatasetSizes {
		// One dataset per size, shared by all distance functions and runs.
		ds, err := dataset.Generate(size, dims, config.Cfg.CoordMin, config.Cfg.CoordMax, rng)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to generate dataset")
		}
		// ---------------------------
		benchmarks := make([]models.Benchmark, 0, len(models.AllDistances))
		for _, name := range models.AllDistances {
			fn, err := distance.GetDistanceFn(name)
			if err != nil {
				log.Fatal().Err(err).Msg("Unknown distance function")
			}
			benchmark, err := bench.Measure(name, fn, ds, bench.Options{
				WarmupRuns: config.Cfg.WarmupRuns,
				NumRuns:    config.Cfg.NumRuns,
				Progress:   config.Cfg.Progress,
			})
			if err != nil {
				log.Fatal().Err(err).Str("distance", name).Msg("Benchmark failed")
			}
			benchmarks = append(benchmarks, benchmark)
			session.Record(benchmark)
		}
		// ---------------------------
		if err := bench.VerifyArgminInvariance(benchmarks); err != nil {
			log.Fatal().Err(err).Int("size", size).Msg("Euclidean argmin invariance violated")
		}
		report.WriteSection(os.Stdout, size, dims, benchmarks)
	}
	report.WriteComplexityNotes(os.Stdout, dims)
	// ---------------------------
	if store == nil {
		return
	}
	previous, found, err := store.Last(dims)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load previous session")
	} else if found {
		for key, ratio := range history.Compare(session, previous) {
			log.Info().Str("pair", key).Float64("speedup", ratio).Msg("Mean time vs previous session")
		}
	}
	if err := store.Append(session); err != nil {
		log.Warn().Err(err).Msg("Failed to record session")
	}
}
