//go:build unit

package tui

import (
	"testing"

	"golang-netsweep/internal/types"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModel_ConsumesStream(t *testing.T) {
	events := make(chan types.SweepEvent, 4)
	m := NewModel("192.168.1.20", events, nil)

	events <- types.FoundEvent{Result: types.ProbeResult{Address: "192.168.1.3", Reachable: true, Hostname: "printer.local"}}
	msg := m.Init()()
	m, cmd := update(t, m, msg)
	assert.Len(t, m.Found(), 1)
	require.NotNil(t, cmd)

	events <- types.ProgressEvent{Completed: 1, Total: 5}
	m, _ = update(t, m, cmd())
	assert.Equal(t, uint(1), m.completed)
	assert.Equal(t, uint(5), m.total)
	assert.Contains(t, m.View(), "printer.local")
	assert.Contains(t, m.View(), "1/5")

	m, cmd = update(t, m, eventMsg{event: types.DoneEvent{FoundCount: 1}})
	assert.True(t, isQuit(cmd))
	assert.True(t, m.finished)
	assert.NoError(t, m.Err())
	assert.Contains(t, m.View(), "Done: 1 host(s) up.")
}

func TestModel_ErrorEvent(t *testing.T) {
	m := NewModel("127.0.0.1", nil, nil)

	m, cmd := update(t, m, eventMsg{event: types.ErrorEvent{Message: "start offset 9 is greater than end offset 1"}})
	assert.True(t, isQuit(cmd))
	assert.ErrorIs(t, m.Err(), types.ErrSweepConfigInvalid)
	assert.Contains(t, m.View(), "error: start offset 9")
}

func TestModel_QuitCancelsSweep(t *testing.T) {
	cancelled := false
	m := NewModel("127.0.0.1", nil, func() { cancelled = true })

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.True(t, cancelled)
	assert.True(t, m.cancelling)
	assert.Nil(t, cmd, "the model keeps draining until Done")
	assert.Contains(t, m.View(), "Stopping")

	m, _ = update(t, m, eventMsg{event: types.DoneEvent{}})
	_, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, isQuit(cmd))
}

func TestModel_StreamClosed(t *testing.T) {
	events := make(chan types.SweepEvent)
	close(events)
	m := NewModel("127.0.0.1", events, nil)

	_, cmd := update(t, m, m.Init()())
	assert.True(t, isQuit(cmd))
}

func TestModel_WindowSize(t *testing.T) {
	m := NewModel("127.0.0.1", nil, nil)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 200, Height: 40})
	assert.Equal(t, maxBarWidth, m.bar.Width)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 40})
	assert.Equal(t, 26, m.bar.Width)
}
