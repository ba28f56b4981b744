// Package tui renders a sweep's event stream as a live terminal view.
package tui

import (
	"context"

	"golang-netsweep/internal/types"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

const maxBarWidth = 60

type eventMsg struct {
	event types.SweepEvent
}

type streamClosedMsg struct{}

// Model is a bubbletea model fed by a sweep event channel.
type Model struct {
	events <-chan types.SweepEvent
	cancel context.CancelFunc
	local  types.Address

	bar        progress.Model
	completed  uint
	total      uint
	found      []types.ProbeResult
	foundCount uint
	finished   bool
	cancelling bool
	errMsg     string
}

// NewModel creates a model reading events; cancel is called when the user quits early.
func NewModel(local types.Address, events <-chan types.SweepEvent, cancel context.CancelFunc) Model {
	return Model{
		events: events,
		cancel: cancel,
		local:  local,
		bar:    progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
}

func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

func waitForEvent(events <-chan types.SweepEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return streamClosedMsg{}
		}
		return eventMsg{event: ev}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			if m.finished {
				return m, tea.Quit
			}
			// Keep reading until Done so in-flight probes are accounted for
			m.cancelling = true
			if m.cancel != nil {
				m.cancel()
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.bar.Width = msg.Width - 4
		if m.bar.Width > maxBarWidth {
			m.bar.Width = maxBarWidth
		}
		return m, nil

	case eventMsg:
		switch e := msg.event.(type) {
		case types.FoundEvent:
			m.found = append(m.found, e.Result)
		case types.ProgressEvent:
			m.completed, m.total = e.Completed, e.Total
		case types.DoneEvent:
			m.foundCount = e.FoundCount
			m.finished = true
			return m, tea.Quit
		case types.ErrorEvent:
			m.errMsg = e.Message
			m.finished = true
			return m, tea.Quit
		}
		return m, waitForEvent(m.events)

	case streamClosedMsg:
		m.finished = true
		return m, tea.Quit
	}

	return m, nil
}

// Found returns the hosts found so far, in arrival order.
func (m Model) Found() []types.ProbeResult {
	return m.found
}

// Err returns the sweep error, if the sweep could not start.
func (m Model) Err() error {
	if m.errMsg == "" {
		return nil
	}
	return types.ErrorEvent{Message: m.errMsg}
}
