package tui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rusenback/netload/internal/stats"
	"github.com/rusenback/netload/internal/storage"
)

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Prev):
			if len(m.views) > 0 {
				m.current = (m.current + len(m.views) - 1) % len(m.views)
				if m.showHistory {
					return m, m.queryCurrentHistory()
				}
			}

		case key.Matches(msg, m.keys.Next):
			if len(m.views) > 0 {
				m.current = (m.current + 1) % len(m.views)
				if m.showHistory {
					return m, m.queryCurrentHistory()
				}
			}

		case key.Matches(msg, m.keys.History):
			m.showHistory = !m.showHistory
			if m.showHistory {
				return m, m.queryCurrentHistory()
			}
			m.historyPoints = nil

		case key.Matches(msg, m.keys.Range):
			switch msg.String() {
			case "1":
				m.timeRange = storage.Range5Min
			case "2":
				m.timeRange = storage.Range15Min
			case "3":
				m.timeRange = storage.Range30Min
			case "4":
				m.timeRange = storage.Range1Hour
			case "5":
				m.timeRange = storage.Range6Hour
			}
			if m.showHistory {
				return m, m.queryCurrentHistory()
			}
		}

	case tickMsg:
		return m, tea.Batch(collectSamples(m.collector), tickCmd(m.cfg.Interval()))

	case sampleMsg:
		if msg.err != nil {
			// A failed collect skips the tick; state stays as it was.
			m.message = fmt.Sprintf("collect error: %v", msg.err)
			slog.Warn("counter collection failed", "error", msg.err)
			return m, nil
		}
		m.message = ""
		for _, view := range m.views {
			sample, ok := msg.batch[view.Device.Name]
			if !ok {
				continue
			}
			view.Update(sample)
			if m.store != nil {
				in := view.Stats(stats.Incoming)
				out := view.Stats(stats.Outgoing)
				m.store.Write(&storage.Sample{
					Device:    view.Device.Name,
					Timestamp: sample.Timestamp,
					RxRate:    in.Current,
					TxRate:    out.Current,
					RxTotal:   in.Total,
					TxTotal:   out.Total,
				})
			}
		}
		if m.showHistory {
			return m, m.queryCurrentHistory()
		}

	case historyMsg:
		if msg.err != nil {
			m.message = fmt.Sprintf("history error: %v", msg.err)
		} else {
			m.historyPoints = msg.points
		}
	}

	return m, nil
}

func (m Model) queryCurrentHistory() tea.Cmd {
	view := m.currentView()
	if view == nil {
		return nil
	}
	return queryHistory(m.store, view.Device.Name, m.timeRange)
}
