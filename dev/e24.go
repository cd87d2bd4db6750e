package dev

import "math"

// E24 is the 5% preferred value series: 24 mantissas per decade in [1, 10).
var E24 = [24]float64{
	1.0, 1.1, 1.2, 1.3, 1.5, 1.6, 1.8, 2.0, 2.2, 2.4, 2.7, 3.0,
	3.3, 3.6, 3.9, 4.3, 4.7, 5.1, 5.6, 6.2, 6.8, 7.5, 8.2, 9.1,
}

// FindClosest returns the E24 mantissa nearest to value.
// On a tie the smaller entry wins.
func FindClosest(value float64) float64 {
	return nearest(E24[:], value)
}

func nearest(table []float64, value float64) float64 {
	closest := table[0]
	minDiff := math.Inf(1)
	for _, v := range table {
		if diff := math.Abs(v - value); diff < minDiff {
			minDiff = diff
			closest = v
		}
	}
	return closest
}
