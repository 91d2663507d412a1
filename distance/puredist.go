package distance

import "math"

func euclideanDistancePureGo(x, y []float32) float32 {
	var sum float32
	for i := range x {
		diff := x[i] - y[i]
		sum += diff * diff
	}
	return float32(math.Sqrt(float64(sum)))
}

func squaredEuclideanDistancePureGo(x, y []float32) float32 {
	var sum float32
	for i := range x {
		diff := x[i] - y[i]
		sum += diff * diff
	}
	return sum
}

func manhattanDistancePureGo(x, y []float32) float32 {
	var sum float32
	for i := range x {
		diff := x[i] - y[i]
		if diff < 0 {
			diff = -diff
		}
		sum += diff
	}
	return sum
}
