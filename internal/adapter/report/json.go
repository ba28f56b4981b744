package report

import (
	"encoding/json"
	"io"
	"sync"

	"golang-netsweep/internal/pkg/logging"
	"golang-netsweep/internal/port"
	"golang-netsweep/internal/types"
)

// Message is one JSON line written by JSONSink.
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
	Msg  string      `json:"msg,omitempty"`
}

type foundData struct {
	IP       string `json:"ip"`
	Hostname string `json:"hostname"`
}

type progressData struct {
	Done  uint `json:"done"`
	Total uint `json:"total"`
}

type doneData struct {
	Count uint `json:"count"`
}

// TypeInfo tags informational lines that are not sweep events.
const TypeInfo = "info"

// JSONSink writes newline-delimited JSON messages for front-ends.
type JSONSink struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// Ensure JSONSink implements the EventSink port
var _ port.EventSink = (*JSONSink)(nil)

// NewJSONSink creates a JSON sink writing to w.
func NewJSONSink(w io.Writer) *JSONSink {
	return &JSONSink{enc: json.NewEncoder(w)}
}

// Accept writes event as one JSON line.
func (s *JSONSink) Accept(event types.SweepEvent) {
	s.write(Encode(event))
}

// Info writes an informational line, e.g. the local address in use.
func (s *JSONSink) Info(msg string) {
	s.write(Message{Type: TypeInfo, Msg: msg})
}

func (s *JSONSink) write(m Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.enc.Encode(m); err != nil {
		logging.WithComponent("report").WithError(err).Warn("Failed to write JSON event")
	}
}

// Encode maps an event to its wire message.
func Encode(event types.SweepEvent) Message {
	switch e := event.(type) {
	case types.FoundEvent:
		return Message{Type: string(e.Kind()), Data: foundData{IP: e.Result.Address.String(), Hostname: e.Result.Hostname}}
	case types.ProgressEvent:
		return Message{Type: string(e.Kind()), Data: progressData{Done: e.Completed, Total: e.Total}}
	case types.DoneEvent:
		return Message{Type: string(e.Kind()), Data: doneData{Count: e.FoundCount}}
	case types.ErrorEvent:
		return Message{Type: string(e.Kind()), Msg: e.Message}
	default:
		return Message{Type: string(event.Kind())}
	}
}
