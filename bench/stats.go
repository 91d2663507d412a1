package bench

import (
	"sort"
	"time"

	"github.com/nearbench/nearbench/models"
	"gonum.org/v1/gonum/stat"
)

// Summarize aggregates raw timings into seconds-based statistics. The median
// averages the two middle samples for even counts, and the sample standard
// deviation of fewer than two samples is 0 rather than an error.
func Summarize(timings []time.Duration) models.TimingStats {
	if len(timings) == 0 {
		return models.TimingStats{}
	}
	// ---------------------------
	secs := make([]float64, len(timings))
	for i, timing := range timings {
		secs[i] = timing.Seconds()
	}
	sort.Float64s(secs)
	// ---------------------------
	stats := models.TimingStats{
		Mean: stat.Mean(secs, nil),
		Min:  secs[0],
		Max:  secs[len(secs)-1],
	}
	if n := len(secs); n%2 == 1 {
		stats.Median = secs[n/2]
	} else {
		stats.Median = (secs[n/2-1] + secs[n/2]) / 2
	}
	if len(secs) > 1 {
		stats.StdDev = stat.StdDev(secs, nil)
	}
	return stats
}
