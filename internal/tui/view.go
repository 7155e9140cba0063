package tui

import (
	"fmt"
	"strings"
)

// Minimum terminal size before falling back to a placeholder.
const (
	minWidth  = 40
	minHeight = 10
)

// View renders the full screen: header, the Incoming/Outgoing panels for
// the active device, and the help bar.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.width < minWidth || m.height < minHeight {
		return m.renderTooSmall()
	}

	view := m.currentView()
	if view == nil {
		return "No network interfaces found.\n\nPress q to quit."
	}

	var s strings.Builder

	// Header: "Device eth0 [192.168.1.2] (1/3):"
	addr := ""
	if len(view.Device.Addrs) > 0 {
		addr = fmt.Sprintf(" [%s]", view.Device.Addrs[0])
	}
	header := fmt.Sprintf("Device %s%s (%d/%d):", view.Device.Name, addr, m.current+1, len(m.views))
	s.WriteString(headerStyle.Render(header) + "\n")

	headerLines := 1
	if view.Device.LoopbackCaveat {
		s.WriteString(warnStyle.Render(" ⚠ Loopback traffic stats are not available on this platform") + "\n")
		headerLines++
	}

	sepWidth := m.width
	if sepWidth > 120 {
		sepWidth = 120
	}
	s.WriteString(separatorStyle.Render(strings.Repeat("=", sepWidth)) + "\n")

	// One line for the separator and one for the help bar.
	contentHeight := m.height - headerLines - 2
	panelHeight := contentHeight / 2

	if panelHeight < 3 {
		s.WriteString("Terminal too small\n")
		return s.String()
	}

	if m.showHistory {
		s.WriteString(m.renderHistoryPanels(panelHeight))
	} else {
		s.WriteString(m.renderTrafficPanel("Incoming", view, incomingDir, m.width, panelHeight))
		s.WriteString(m.renderTrafficPanel("Outgoing", view, outgoingDir, m.width, panelHeight))
	}

	// Pad so the help bar sits on the last row.
	rendered := headerLines + 1 + 2*panelHeight
	for i := rendered; i < m.height-1; i++ {
		s.WriteString("\n")
	}

	if m.message != "" {
		s.WriteString(errorStyle.Render(truncate(m.message, m.width-1)) + " ")
	}
	s.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return s.String()
}

func (m Model) renderTooSmall() string {
	msg := "Terminal too small!"
	pad := (m.width - len(msg)) / 2
	if pad < 0 {
		pad = 0
	}
	var s strings.Builder
	for i := 0; i < m.height/2; i++ {
		s.WriteString("\n")
	}
	s.WriteString(strings.Repeat(" ", pad) + errorStyle.Render(msg))
	return s.String()
}
