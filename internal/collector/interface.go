// internal/collector/interface.go
package collector

import "github.com/rusenback/netload/internal/model"

// Collector is the boundary to the OS: device identities at startup and one
// counter snapshot batch per tick. The interface allows mocking in tests.
type Collector interface {
	// Devices returns the interfaces discovered at startup, sorted by name.
	Devices() []model.Device

	// Collect captures the current cumulative counters for every known
	// device. Devices missing from the returned batch are simply skipped
	// for that tick.
	Collect() (map[string]model.RawSample, error)
}

// Ensure the gopsutil-backed implementation satisfies the interface.
var _ Collector = (*NetCollector)(nil)
