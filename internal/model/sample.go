// internal/model/sample.go
package model

import "time"

// RawSample is a single capture of a device's cumulative counters. The
// counters only ever grow on a healthy interface; consumers compare
// consecutive samples to derive rates and never mutate them.
type RawSample struct {
	Timestamp time.Time

	BytesRecv uint64 // cumulative bytes received
	BytesSent uint64 // cumulative bytes transmitted

	PacketsRecv uint64
	PacketsSent uint64
}
