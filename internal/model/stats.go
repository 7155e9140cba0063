// internal/model/stats.go
package model

// TrafficStats summarizes one direction of traffic for a device.
type TrafficStats struct {
	// Current is the last computed rate in bytes/second.
	Current float64

	// Average is the mean rate over the rolling window.
	Average float64

	// Minimum and Maximum are lifetime extremes over every rate ever
	// observed for this direction, not windowed.
	Minimum float64
	Maximum float64

	// Total is the cumulative byte count since the view was created.
	// Never decreases, even across counter resets.
	Total uint64
}
