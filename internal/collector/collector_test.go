package collector

import (
	"runtime"
	"testing"

	psnet "github.com/shirou/gopsutil/v3/net"
	"github.com/stretchr/testify/assert"
)

func TestIsUp(t *testing.T) {
	tests := []struct {
		name     string
		flags    []string
		expected bool
	}{
		{"up interface", []string{"up", "broadcast", "multicast"}, true},
		{"down interface", []string{"broadcast"}, false},
		{"no flags", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iface := psnet.InterfaceStat{Name: "eth0", Flags: tt.flags}
			assert.Equal(t, tt.expected, isUp(iface))
		})
	}
}

func TestLoopbackCaveat(t *testing.T) {
	// The flag only applies on Windows; everywhere else loopback counters
	// are real and no caveat is shown.
	onWindows := runtime.GOOS == "windows"

	assert.Equal(t, onWindows, loopbackCaveat("Loopback Pseudo-Interface 1"))
	assert.False(t, loopbackCaveat("eth0"))
	assert.False(t, loopbackCaveat("wlan0"))
}
