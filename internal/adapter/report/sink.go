// Package report provides EventSink implementations that render or collect sweep events.
package report

import (
	"sort"
	"sync"

	"golang-netsweep/internal/port"
	"golang-netsweep/internal/types"
)

// MultiSink forwards every event to each sink in order.
type MultiSink []port.EventSink

// Ensure MultiSink implements the EventSink port
var _ port.EventSink = MultiSink(nil)

// Accept forwards event.
func (m MultiSink) Accept(event types.SweepEvent) {
	for _, sink := range m {
		sink.Accept(event)
	}
}

// Collector keeps the results of FoundEvents and the terminal event.
type Collector struct {
	mu       sync.Mutex
	results  []types.ProbeResult
	terminal types.SweepEvent
}

// Ensure Collector implements the EventSink port
var _ port.EventSink = (*Collector)(nil)

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Accept records found results and the terminal event.
func (c *Collector) Accept(event types.SweepEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch e := event.(type) {
	case types.FoundEvent:
		c.results = append(c.results, e.Result)
	case types.DoneEvent, types.ErrorEvent:
		c.terminal = e
	}
}

// Results returns the found hosts ordered by address.
func (c *Collector) Results() []types.ProbeResult {
	c.mu.Lock()
	out := make([]types.ProbeResult, len(c.results))
	copy(out, c.results)
	c.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		return compareAddress(out[i].Address, out[j].Address) < 0
	})
	return out
}

// Terminal returns the DoneEvent or ErrorEvent seen, or nil while the sweep runs.
func (c *Collector) Terminal() types.SweepEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.terminal
}

// compareAddress orders numerically; malformed addresses sort last by string.
func compareAddress(a, b types.Address) int {
	ao, errA := a.Octets()
	bo, errB := b.Octets()

	switch {
	case errA != nil && errB != nil:
		return compareString(string(a), string(b))
	case errA != nil:
		return 1
	case errB != nil:
		return -1
	}

	for i := range ao {
		if ao[i] != bo[i] {
			if ao[i] < bo[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func compareString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
