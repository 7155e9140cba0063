package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rusenback/netload/internal/config"
	"github.com/rusenback/netload/internal/model"
	"github.com/rusenback/netload/internal/stats"
)

// fakeCollector satisfies collector.Collector for tests.
type fakeCollector struct {
	devices []model.Device
	batch   map[string]model.RawSample
	err     error
}

func (f *fakeCollector) Devices() []model.Device { return f.devices }

func (f *fakeCollector) Collect() (map[string]model.RawSample, error) {
	return f.batch, f.err
}

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.AverageWindowSec = 10
	return cfg
}

func twoDevices() []model.Device {
	return []model.Device{
		{Name: "eth0", Addrs: []string{"192.168.1.2"}},
		{Name: "wlan0"},
	}
}

func TestNewModelSelectsDefaultDevice(t *testing.T) {
	coll := &fakeCollector{devices: twoDevices()}

	cfg := testConfig()
	cfg.Device = "WLAN"
	m := NewModel(coll, nil, cfg)
	assert.Equal(t, 1, m.current)

	cfg.Device = "nosuch"
	m = NewModel(coll, nil, cfg)
	assert.Equal(t, 0, m.current)
}

func TestSampleMsgUpdatesViews(t *testing.T) {
	coll := &fakeCollector{devices: twoDevices()}
	m := NewModel(coll, nil, testConfig())

	base := time.Now()
	first := map[string]model.RawSample{
		"eth0":  {Timestamp: base, BytesRecv: 0, BytesSent: 0},
		"wlan0": {Timestamp: base, BytesRecv: 0, BytesSent: 0},
	}
	second := map[string]model.RawSample{
		"eth0": {Timestamp: base.Add(500 * time.Millisecond), BytesRecv: 1000, BytesSent: 500},
		// wlan0 missing: its state must be left unchanged this tick.
	}

	updated, _ := m.Update(sampleMsg{batch: first})
	m = updated.(Model)
	updated, _ = m.Update(sampleMsg{batch: second})
	m = updated.(Model)

	eth := m.views[0].Stats(stats.Incoming)
	assert.InDelta(t, 2000.0, eth.Current, 1e-9)
	assert.Equal(t, uint64(1000), eth.Total)

	wlan := m.views[1]
	assert.Equal(t, 1, wlan.HistoryLen(stats.Incoming))
	assert.Equal(t, 0.0, wlan.Stats(stats.Incoming).Current)
}

func TestSampleMsgErrorLeavesStateUntouched(t *testing.T) {
	coll := &fakeCollector{devices: twoDevices()}
	m := NewModel(coll, nil, testConfig())

	updated, cmd := m.Update(sampleMsg{err: assert.AnError})
	m = updated.(Model)

	assert.Nil(t, cmd)
	assert.NotEmpty(t, m.message)
	assert.Equal(t, 0, m.views[0].HistoryLen(stats.Incoming))
}

func TestDeviceCyclingWraps(t *testing.T) {
	coll := &fakeCollector{devices: twoDevices()}
	m := NewModel(coll, nil, testConfig())
	require.Equal(t, 0, m.current)

	next := tea.KeyMsg{Type: tea.KeyRight}
	prev := tea.KeyMsg{Type: tea.KeyLeft}

	updated, _ := m.Update(next)
	m = updated.(Model)
	assert.Equal(t, 1, m.current)

	updated, _ = m.Update(next)
	m = updated.(Model)
	assert.Equal(t, 0, m.current)

	updated, _ = m.Update(prev)
	m = updated.(Model)
	assert.Equal(t, 1, m.current)
}

func TestViewRendersDevicePanels(t *testing.T) {
	coll := &fakeCollector{devices: twoDevices()}
	m := NewModel(coll, nil, testConfig())

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(Model)

	out := m.View()
	assert.Contains(t, out, "Device eth0 [192.168.1.2] (1/2):")
	assert.Contains(t, out, "Incoming (")
	assert.Contains(t, out, "Outgoing (")
	assert.Contains(t, out, "Curr: ")
	assert.Contains(t, out, "Ttl: ")
}

func TestViewTooSmall(t *testing.T) {
	coll := &fakeCollector{devices: twoDevices()}
	m := NewModel(coll, nil, testConfig())

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 5})
	m = updated.(Model)

	assert.Contains(t, m.View(), "Terminal too small!")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly-10", truncate("exactly-10", 10))
	assert.Equal(t, "toolong...", truncate("toolong-string", 10))
}
