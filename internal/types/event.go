package types

// ProbeResult is the outcome of probing a single address.
// Hostname is only set when the host is reachable and reverse resolution succeeded.
type ProbeResult struct {
	Address   Address
	Reachable bool
	Hostname  string
}

// EventKind names a SweepEvent variant.
type EventKind string

const (
	EventFound    EventKind = "found"
	EventProgress EventKind = "progress"
	EventDone     EventKind = "done"
	EventError    EventKind = "error"
)

// SweepEvent is one of FoundEvent, ProgressEvent, DoneEvent or ErrorEvent.
// The set is closed: only this package can add variants.
type SweepEvent interface {
	Kind() EventKind
	sweepEvent()
}

// FoundEvent announces a reachable host.
type FoundEvent struct {
	Result ProbeResult
}

// ProgressEvent is emitted once per completed probe, reachable or not.
type ProgressEvent struct {
	Completed uint
	Total     uint
}

// DoneEvent terminates a sweep that started.
type DoneEvent struct {
	FoundCount uint
}

// ErrorEvent terminates a sweep that could not start. It is also an error
// wrapping ErrSweepConfigInvalid.
type ErrorEvent struct {
	Message string
}

func (e ErrorEvent) Error() string { return e.Message }
func (e ErrorEvent) Unwrap() error { return ErrSweepConfigInvalid }

func (FoundEvent) Kind() EventKind    { return EventFound }
func (ProgressEvent) Kind() EventKind { return EventProgress }
func (DoneEvent) Kind() EventKind     { return EventDone }
func (ErrorEvent) Kind() EventKind    { return EventError }

func (FoundEvent) sweepEvent()    {}
func (ProgressEvent) sweepEvent() {}
func (DoneEvent) sweepEvent()     {}
func (ErrorEvent) sweepEvent()    {}

// IsTerminal reports whether ev ends the stream.
func IsTerminal(ev SweepEvent) bool {
	switch ev.(type) {
	case DoneEvent, ErrorEvent:
		return true
	default:
		return false
	}
}
