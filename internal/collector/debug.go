package collector

import (
	"fmt"
	"io"
	"strings"
)

// PrintDebugInfo writes the discovered interfaces and their current
// counters to w. Used by the --debug-info flag to diagnose which devices
// the monitor would track, without entering the TUI.
func (c *NetCollector) PrintDebugInfo(w io.Writer) {
	fmt.Fprintf(w, "Monitored interfaces: %d\n\n", len(c.devices))

	batch, err := c.Collect()
	if err != nil {
		fmt.Fprintf(w, "counter read failed: %v\n", err)
	}

	for i, dev := range c.devices {
		addrs := "-"
		if len(dev.Addrs) > 0 {
			addrs = strings.Join(dev.Addrs, ", ")
		}
		fmt.Fprintf(w, "[%d] %s\n", i+1, dev.Name)
		fmt.Fprintf(w, "    addrs: %s\n", addrs)
		if s, ok := batch[dev.Name]; ok {
			fmt.Fprintf(w, "    rx: %d bytes (%d packets)\n", s.BytesRecv, s.PacketsRecv)
			fmt.Fprintf(w, "    tx: %d bytes (%d packets)\n", s.BytesSent, s.PacketsSent)
		} else {
			fmt.Fprintf(w, "    no counters reported\n")
		}
		if dev.LoopbackCaveat {
			fmt.Fprintf(w, "    note: loopback traffic is not accounted on this platform\n")
		}
	}
}
