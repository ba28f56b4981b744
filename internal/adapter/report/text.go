package report

import (
	"fmt"
	"io"
	"sync"

	"golang-netsweep/internal/pkg/logging"
	"golang-netsweep/internal/port"
	"golang-netsweep/internal/types"

	"github.com/sirupsen/logrus"
)

// TextSink prints one line per found host and a summary when the sweep ends.
// Progress ticks go to the debug log.
type TextSink struct {
	mu     sync.Mutex
	w      io.Writer
	logger *logrus.Entry
	total  uint
}

// Ensure TextSink implements the EventSink port
var _ port.EventSink = (*TextSink)(nil)

// NewTextSink creates a text sink writing to w.
func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{
		w:      w,
		logger: logging.WithComponent("report"),
	}
}

// Accept renders event.
func (s *TextSink) Accept(event types.SweepEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch e := event.(type) {
	case types.FoundEvent:
		hostname := e.Result.Hostname
		if hostname == "" {
			hostname = "-"
		}
		s.printf("%-15s  %s\n", e.Result.Address, hostname)
	case types.ProgressEvent:
		s.total = e.Total
		s.logger.WithFields(logrus.Fields{
			"completed": e.Completed,
			"total":     e.Total,
		}).Debug("Progress")
	case types.DoneEvent:
		s.printf("%d host(s) up out of %d probed\n", e.FoundCount, s.total)
	case types.ErrorEvent:
		s.printf("error: %s\n", e.Message)
	}
}

func (s *TextSink) printf(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(s.w, format, args...); err != nil {
		s.logger.WithError(err).Warn("Failed to write report")
	}
}
