package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rusenback/netload/internal/collector"
	"github.com/rusenback/netload/internal/storage"
)

// tickCmd schedules the next sampling tick.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// collectSamples captures one counter snapshot batch in the background.
func collectSamples(c collector.Collector) tea.Cmd {
	return func() tea.Msg {
		batch, err := c.Collect()
		return sampleMsg{batch: batch, err: err}
	}
}

// queryHistory fetches bucketed rates for the history view.
func queryHistory(store *storage.Storage, device string, timeRange storage.TimeRange) tea.Cmd {
	return func() tea.Msg {
		if store == nil {
			return historyMsg{}
		}
		points, err := store.Query(device, timeRange)
		return historyMsg{points: points, err: err}
	}
}
