package distance

import (
	"fmt"

	"github.com/nearbench/nearbench/models"
)

type DistFunc func(x, y []float32) float32

// GetDistanceFn returns the distance function by name.
func GetDistanceFn(name string) (DistFunc, error) {
	switch name {
	case models.DistanceEuclidean:
		return euclideanDistancePureGo, nil
	case models.DistanceSquaredEuclidean:
		return squaredEuclideanDistancePureGo, nil
	case models.DistanceManhattan:
		return manhattanDistancePureGo, nil
	default:
		return nil, fmt.Errorf("unknown distance function: %s", name)
	}
}
