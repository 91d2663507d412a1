package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v8"
	"github.com/nearbench/nearbench/models"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// ---------------------------

type ConfigMap struct {
	Debug bool `yaml:"debug"`
	// Axis counts of the generated points, each benchmarked separately
	Dimensions []int `yaml:"dimensions"`
	// Point counts benchmarked per dimensionality
	DatasetSizes []int `yaml:"datasetSizes"`
	// Recorded repetitions per (distance, size) pair
	NumRuns int `yaml:"numRuns"`
	// Discarded repetitions before recording starts
	WarmupRuns int `yaml:"warmupRuns"`
	// Closed coordinate interval points are drawn from
	CoordMin float32 `yaml:"coordMin"`
	CoordMax float32 `yaml:"coordMax"`
	// Seed for the point generator, 0 derives one from the clock
	Seed int64 `yaml:"seed"`
	// Path of the bbolt history store, empty disables persistence
	HistoryPath string `yaml:"historyPath"`
	// Show a progress bar while timed runs execute
	Progress bool `yaml:"progress"`
}

var Cfg ConfigMap

// ---------------------------

func init() {
	Cfg = LoadConfig()
}

func LoadConfig() ConfigMap {
	configMap := ConfigMap{
		Dimensions:   models.DefaultDimensions,
		DatasetSizes: models.DefaultDatasetSizes,
		NumRuns:      models.DefaultNumRuns,
		WarmupRuns:   models.DefaultWarmupRuns,
		CoordMin:     models.DefaultCoordMin,
		CoordMax:     models.DefaultCoordMax,
		Progress:     true,
	}
	// First parse yaml file, it is optional
	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get working directory")
	}
	cFilePath := filepath.Join(cwd, "config.yaml")
	cFile, err := os.Open(cFilePath)
	if err != nil {
		log.Debug().Str("path", cFilePath).Msg("No config file, using defaults")
	} else {
		decoder := yaml.NewDecoder(cFile)
		if err := decoder.Decode(&configMap); err != nil {
			log.Fatal().Err(err).Msg("Failed to parse config file")
		}
	}
	// Then parse environment variables
	opts := env.Options{Prefix: "NEARBENCH_", UseFieldNameByDefault: true}
	if err := env.ParseWithOptions(&configMap, opts); err != nil {
		log.Fatal().Err(err).Msg("Failed to parse env")
	}
	return configMap
}

// ---------------------------

// Validate surfaces configuration errors before any benchmark starts. A
// linear scan over zero points has no well-defined closest point, so
// non-positive sizes are rejected here rather than deep in the harness.
func (c ConfigMap) Validate() error {
	if len(c.Dimensions) == 0 {
		return fmt.Errorf("no dimensions configured")
	}
	for _, dims := range c.Dimensions {
		if dims < 1 {
			return fmt.Errorf("dimensionality must be at least 1, got %d", dims)
		}
	}
	if len(c.DatasetSizes) == 0 {
		return fmt.Errorf("no dataset sizes configured")
	}
	for _, size := range c.DatasetSizes {
		if size <= 0 {
			return fmt.Errorf("dataset size must be positive, got %d", size)
		}
	}
	if c.NumRuns < 1 {
		return fmt.Errorf("numRuns must be at least 1, got %d", c.NumRuns)
	}
	if c.WarmupRuns < 0 {
		return fmt.Errorf("warmupRuns must not be negative, got %d", c.WarmupRuns)
	}
	if c.CoordMax <= c.CoordMin {
		return fmt.Errorf("coordinate interval [%f, %f] is empty", c.CoordMin, c.CoordMax)
	}
	return nil
}
