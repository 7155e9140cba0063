// Package graph turns a bounded rate series into a fixed-size character
// grid for the traffic panels.
package graph

import (
	"math"

	"github.com/rusenback/netload/internal/stats"
)

// SelectScale picks the full-scale value for a graph whose largest visible
// sample is peak: the smallest power of two at or above it, never below
// 1 B/s. Snapping to the power-of-two ladder makes the vertical scale move
// in large, infrequent steps instead of jittering with every tick, and the
// floor keeps an idle graph legible with no division by zero downstream.
func SelectScale(peak float64) float64 {
	if peak <= 1 {
		return 1
	}
	scale := math.Pow(2, math.Ceil(math.Log2(peak)))
	// Log2 of an exact power of two can land a hair below the integer.
	if scale < peak {
		scale *= 2
	}
	return scale
}

// ScaleLabel renders the value at the top of the graph, e.g. "2.00 KiB/s".
func ScaleLabel(scaleMax float64) string {
	return stats.FormatRate(scaleMax)
}
