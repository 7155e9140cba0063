package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rusenback/netload/internal/collector"
	"github.com/rusenback/netload/internal/config"
	"github.com/rusenback/netload/internal/model"
	"github.com/rusenback/netload/internal/stats"
	"github.com/rusenback/netload/internal/storage"
)

// Model represents the TUI application state. It owns every DeviceView;
// each tick mutates them exactly once before the next View reads them.
type Model struct {
	collector collector.Collector
	store     *storage.Storage
	cfg       *config.Config

	views   []*stats.DeviceView
	current int

	width  int
	height int

	message string

	keys keyMap
	help help.Model

	showHistory   bool
	timeRange     storage.TimeRange
	historyPoints []storage.DataPoint
}

// Message types for the Bubbletea update loop.
type tickMsg time.Time

type sampleMsg struct {
	batch map[string]model.RawSample
	err   error
}

type historyMsg struct {
	points []storage.DataPoint
	err    error
}

// NewModel creates the TUI model with one view per discovered device.
func NewModel(coll collector.Collector, store *storage.Storage, cfg *config.Config) Model {
	devices := coll.Devices()
	views := make([]*stats.DeviceView, 0, len(devices))
	for _, dev := range devices {
		views = append(views, stats.NewDeviceView(dev, cfg.IntervalMS, cfg.AverageWindowSec))
	}

	// Locate the requested default device by partial match.
	current := 0
	if cfg.Device != "" {
		want := strings.ToLower(cfg.Device)
		for i, v := range views {
			if strings.Contains(strings.ToLower(v.Device.Name), want) {
				current = i
				break
			}
		}
	}

	return Model{
		collector: coll,
		store:     store,
		cfg:       cfg,
		views:     views,
		current:   current,
		keys:      defaultKeyMap(),
		help:      help.New(),
		timeRange: storage.Range5Min,
	}
}

// Init starts the first sampling pass and the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(collectSamples(m.collector), tickCmd(m.cfg.Interval()))
}

func (m Model) currentView() *stats.DeviceView {
	if len(m.views) == 0 {
		return nil
	}
	return m.views[m.current]
}
