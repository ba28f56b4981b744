package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Margin(0, 1)

	addressStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5F87"))
)

func (m Model) View() string {
	title := titleStyle.Render(fmt.Sprintf("netsweep - local address: %s", m.local))

	if m.errMsg != "" {
		return lipgloss.JoinVertical(lipgloss.Left, title, errorStyle.Render("error: "+m.errMsg)) + "\n"
	}

	ratio := 0.0
	if m.total > 0 {
		ratio = float64(m.completed) / float64(m.total)
	}
	status := fmt.Sprintf("%s  %d/%d", m.bar.ViewAs(ratio), m.completed, m.total)

	var hosts []string
	for _, r := range m.found {
		hostname := r.Hostname
		if hostname == "" {
			hostname = "-"
		}
		hosts = append(hosts, fmt.Sprintf("%s  %s", addressStyle.Render(fmt.Sprintf("%-15s", r.Address)), hostname))
	}
	if len(hosts) == 0 {
		hosts = append(hosts, dimStyle.Render("No hosts found yet..."))
	}
	hostBox := boxStyle.Render(fmt.Sprintf("Devices found (%d)\n", len(m.found)) + strings.Join(hosts, "\n"))

	footer := dimStyle.Render("Press q to stop.")
	switch {
	case m.finished:
		footer = fmt.Sprintf("Done: %d host(s) up.", m.foundCount)
	case m.cancelling:
		footer = dimStyle.Render("Stopping, waiting for in-flight probes...")
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, status, hostBox, footer) + "\n"
}
