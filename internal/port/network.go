// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"context"
	"time"

	"golang-netsweep/internal/types"
)

// AddressInspector determines the local IPv4 address a sweep is based on.
// Implementations never fail: they fall back to types.LoopbackAddress.
type AddressInspector interface {
	LocalAddress(ctx context.Context) types.Address
}

// HostProber answers "is it reachable, and what is it called?" for one address.
type HostProber interface {
	// Probe returns the result and true when the host is reachable,
	// or a zero result and false otherwise.
	Probe(ctx context.Context, address types.Address, timeout time.Duration) (types.ProbeResult, bool)
}

// EventSink is the reporting channel boundary. Accept is called in emission
// order from a single goroutine and is expected to be cheap.
type EventSink interface {
	Accept(event types.SweepEvent)
}

// EventSinkFunc adapts a function to the EventSink port.
type EventSinkFunc func(event types.SweepEvent)

// Accept calls f(event).
func (f EventSinkFunc) Accept(event types.SweepEvent) {
	f(event)
}
