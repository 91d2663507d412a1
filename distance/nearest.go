package distance

import "math"

/* The scan is deliberately a naive single pass with O(1) auxiliary state, no
 * sorting and no spatial index. The whole benchmark exists to measure the
 * per-point arithmetic cost of the metric itself, so anything cleverer than
 * a linear scan would measure the wrong thing. */

// NearestPoint returns the index of the point closest to target under fn and
// the distance value of that point. The comparison is strict less-than, so
// ties keep the earliest point in scan order. An empty point set returns -1.
func NearestPoint(points [][]float32, target []float32, fn DistFunc) (int, float32) {
	bestIndex := -1
	bestValue := float32(math.Inf(1))
	for i, point := range points {
		value := fn(point, target)
		if value < bestValue {
			bestValue = value
			bestIndex = i
		}
	}
	return bestIndex, bestValue
}
