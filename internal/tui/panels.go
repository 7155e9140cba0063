package tui

import (
	"fmt"
	"strings"

	"github.com/rusenback/netload/internal/graph"
	"github.com/rusenback/netload/internal/model"
	"github.com/rusenback/netload/internal/stats"
)

const (
	incomingDir = stats.Incoming
	outgoingDir = stats.Outgoing

	// statBlockWidth reserves columns on the right of each panel for the
	// Curr/Avg/Min/Max/Ttl block.
	statBlockWidth = 24
)

// renderTrafficPanel renders one direction: a label line with the current
// full-scale value, the character graph on the left and the statistics
// block bottom-aligned on the right.
func (m Model) renderTrafficPanel(label string, view *stats.DeviceView, dir stats.Direction, width, height int) string {
	scaleMax := graph.SelectScale(view.Peak(dir))

	var s strings.Builder
	s.WriteString(labelStyle.Render(fmt.Sprintf("%s (%s):", label, graph.ScaleLabel(scaleMax))) + "\n")

	graphHeight := height - 1
	if graphHeight < 1 {
		return s.String()
	}
	graphWidth := width - statBlockWidth
	if graphWidth < 10 {
		graphWidth = 10
	}

	rows := graph.Render(view.History(dir), graphWidth, graphHeight, scaleMax)
	statLines := formatStatLines(view.Stats(dir))

	// Stats sit flush against the panel bottom, next to the graph.
	statStart := graphHeight - len(statLines)
	for i, row := range rows {
		s.WriteString(styleGraphRow(row))
		if i >= statStart {
			s.WriteString("  " + statLines[i-statStart])
		}
		s.WriteString("\n")
	}
	return s.String()
}

// renderHistoryPanels renders the bucketed long-horizon series for the
// active device, Incoming over Outgoing like the live view.
func (m Model) renderHistoryPanels(panelHeight int) string {
	rx := make([]float64, len(m.historyPoints))
	tx := make([]float64, len(m.historyPoints))
	for i, p := range m.historyPoints {
		rx[i] = p.RxRate
		tx[i] = p.TxRate
	}

	var s strings.Builder
	s.WriteString(m.renderHistoryPanel(fmt.Sprintf("Incoming history - %s", m.timeRange), rx, panelHeight))
	s.WriteString(m.renderHistoryPanel(fmt.Sprintf("Outgoing history - %s", m.timeRange), tx, panelHeight))
	return s.String()
}

func (m Model) renderHistoryPanel(label string, series []float64, height int) string {
	var peak float64
	for _, v := range series {
		if v > peak {
			peak = v
		}
	}
	scaleMax := graph.SelectScale(peak)

	var s strings.Builder
	s.WriteString(labelStyle.Render(fmt.Sprintf("%s (%s):", label, graph.ScaleLabel(scaleMax))) + "\n")

	graphHeight := height - 1
	if graphHeight < 1 {
		return s.String()
	}
	if len(series) == 0 {
		s.WriteString(helpStyle.Render("No history yet...") + "\n")
		for i := 1; i < graphHeight; i++ {
			s.WriteString("\n")
		}
		return s.String()
	}

	for _, row := range graph.Render(series, m.width-2, graphHeight, scaleMax) {
		s.WriteString(styleGraphRow(row) + "\n")
	}
	return s.String()
}

// formatStatLines renders the five summary lines for one direction.
func formatStatLines(st model.TrafficStats) []string {
	return []string{
		statLabelStyle.Render("Curr: ") + statValueStyle.Render(stats.FormatRate(st.Current)),
		statLabelStyle.Render(" Avg: ") + statValueStyle.Render(stats.FormatRate(st.Average)),
		statLabelStyle.Render(" Min: ") + statValueStyle.Render(stats.FormatRate(st.Minimum)),
		statLabelStyle.Render(" Max: ") + statValueStyle.Render(stats.FormatRate(st.Maximum)),
		statLabelStyle.Render(" Ttl: ") + statValueStyle.Render(stats.FormatBytes(st.Total)),
	}
}

// styleGraphRow colors a rendered grid row, styling runs of identical cells
// together to keep the escape-sequence overhead down.
func styleGraphRow(row string) string {
	var s strings.Builder
	for i := 0; i < len(row); {
		j := i
		for j < len(row) && row[j] == row[i] {
			j++
		}
		run := row[i:j]
		switch row[i] {
		case graph.CellFilled, graph.CellPartialTop:
			s.WriteString(graphStyle.Render(run))
		case graph.CellBackground:
			s.WriteString(graphDimStyle.Render(run))
		default:
			s.WriteString(run)
		}
		i = j
	}
	return s.String()
}
