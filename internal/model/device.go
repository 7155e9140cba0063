// internal/model/device.go
package model

// Device identifies one network interface for the lifetime of a view.
type Device struct {
	Name  string
	Addrs []string

	// LoopbackCaveat marks devices whose byte counters the OS never
	// advances (the loopback adapter on Windows). Consumed by the
	// presentation layer only.
	LoopbackCaveat bool
}
