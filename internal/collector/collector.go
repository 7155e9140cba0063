package collector

import (
	"fmt"
	"runtime"
	"sort"
	"strings"
	"time"

	psnet "github.com/shirou/gopsutil/v3/net"

	"github.com/rusenback/netload/internal/model"
)

// Config holds collector configuration.
type Config struct {
	// Ignore lists interface names to exclude from monitoring.
	Ignore []string
}

// NetCollector reads per-interface byte counters from the OS via gopsutil.
type NetCollector struct {
	devices []model.Device
	known   map[string]struct{}
}

// New enumerates the up network interfaces once and returns a collector for
// them. Interfaces that appear later are not picked up.
func New(cfg Config) (*NetCollector, error) {
	ifaces, err := psnet.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("failed to list network interfaces: %w", err)
	}

	ignored := make(map[string]struct{}, len(cfg.Ignore))
	for _, name := range cfg.Ignore {
		ignored[name] = struct{}{}
	}

	var devices []model.Device
	for _, iface := range ifaces {
		if _, skip := ignored[iface.Name]; skip {
			continue
		}
		if !isUp(iface) {
			continue
		}
		var addrs []string
		for _, a := range iface.Addrs {
			// Addresses come in CIDR notation; keep the bare address.
			addr := a.Addr
			if i := strings.IndexByte(addr, '/'); i >= 0 {
				addr = addr[:i]
			}
			if addr != "" {
				addrs = append(addrs, addr)
			}
		}
		devices = append(devices, model.Device{
			Name:           iface.Name,
			Addrs:          addrs,
			LoopbackCaveat: loopbackCaveat(iface.Name),
		})
	}

	sort.Slice(devices, func(i, j int) bool { return devices[i].Name < devices[j].Name })

	known := make(map[string]struct{}, len(devices))
	for _, d := range devices {
		known[d.Name] = struct{}{}
	}

	return &NetCollector{devices: devices, known: known}, nil
}

// Devices returns the interfaces discovered at startup.
func (c *NetCollector) Devices() []model.Device {
	return c.devices
}

// Collect captures one cumulative counter snapshot per known device, all
// stamped with the same capture instant.
func (c *NetCollector) Collect() (map[string]model.RawSample, error) {
	counters, err := psnet.IOCounters(true)
	if err != nil {
		return nil, fmt.Errorf("failed to read interface counters: %w", err)
	}

	now := time.Now()
	batch := make(map[string]model.RawSample, len(c.known))
	for _, io := range counters {
		if _, ok := c.known[io.Name]; !ok {
			continue
		}
		batch[io.Name] = model.RawSample{
			Timestamp:   now,
			BytesRecv:   io.BytesRecv,
			BytesSent:   io.BytesSent,
			PacketsRecv: io.PacketsRecv,
			PacketsSent: io.PacketsSent,
		}
	}
	return batch, nil
}

func isUp(iface psnet.InterfaceStat) bool {
	for _, f := range iface.Flags {
		if f == "up" {
			return true
		}
	}
	return false
}

// loopbackCaveat reports whether the OS exposes this device but never
// advances its counters. Windows lists the loopback adapter yet accounts no
// traffic for it; the warning is a display concern, so it is computed once
// here and carried as a flag instead of branching in the core.
func loopbackCaveat(name string) bool {
	if runtime.GOOS != "windows" {
		return false
	}
	return strings.Contains(strings.ToLower(name), "loopback")
}
