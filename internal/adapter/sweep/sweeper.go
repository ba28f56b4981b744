// Package sweep orchestrates host probes across a /24 offset range and reports
// the outcome as a stream of events.
//
// Event order within one sweep:
//   - an invalid configuration yields a single ErrorEvent and nothing else;
//   - otherwise every completed probe yields one ProgressEvent, preceded
//     immediately by a FoundEvent when the host was reachable;
//   - a DoneEvent is always last.
//
// Completion order across hosts is not defined.
package sweep

import (
	"context"
	"sync"
	"time"

	"golang-netsweep/internal/pkg/logging"
	"golang-netsweep/internal/port"
	"golang-netsweep/internal/types"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"
)

const eventBuffer = 64

type outcome struct {
	result    types.ProbeResult
	reachable bool
}

// Sweeper runs sweeps with a HostProber. It holds no per-sweep state and may
// run several sweeps concurrently.
type Sweeper struct {
	prober port.HostProber
}

// NewSweeper creates a sweeper.
func NewSweeper(prober port.HostProber) *Sweeper {
	return &Sweeper{prober: prober}
}

// Sweep starts a sweep and returns its event stream. The channel is closed
// after the terminal event and must be drained by the caller.
//
// Cancelling ctx stops scheduling new probes. Probes already running are left
// to finish within their own timeout, then DoneEvent reports the partial count.
func (s *Sweeper) Sweep(ctx context.Context, cfg types.SweepConfig) <-chan types.SweepEvent {
	events := make(chan types.SweepEvent, eventBuffer)
	go s.run(ctx, cfg, events)
	return events
}

// Run performs a sweep, delivering every event to sink in emission order.
// It returns the DoneEvent, or the ErrorEvent as an error.
func (s *Sweeper) Run(ctx context.Context, cfg types.SweepConfig, sink port.EventSink) (types.DoneEvent, error) {
	var done types.DoneEvent
	var err error

	for ev := range s.Sweep(ctx, cfg) {
		sink.Accept(ev)

		switch e := ev.(type) {
		case types.DoneEvent:
			done = e
		case types.ErrorEvent:
			err = e
		}
	}

	return done, err
}

func (s *Sweeper) run(ctx context.Context, cfg types.SweepConfig, events chan<- types.SweepEvent) {
	defer close(events)

	logger := logging.WithComponent("sweep").WithField("base", cfg.BaseAddress.String())

	targets, err := cfg.Targets()
	if err != nil {
		logger.WithError(err).Error("Sweep cannot start")
		events <- types.ErrorEvent{Message: err.Error()}
		return
	}

	total := uint(len(targets))
	logger = logger.WithFields(logrus.Fields{
		"range":   []int{cfg.StartOffset, cfg.EndOffset},
		"workers": cfg.MaxWorkers,
		"timeout": cfg.PerHostTimeout.String(),
	})
	logger.WithField("total", total).Info("Starting sweep")
	started := time.Now()

	results := make(chan outcome, cfg.MaxWorkers)
	go s.dispatch(ctx, cfg, targets, results, logger)

	// Single consumer: counters and emission need no further locking
	var completed, found uint
	for o := range results {
		completed++
		if o.reachable {
			found++
			logger.WithFields(logrus.Fields{
				logging.FieldAddress: o.result.Address.String(),
				"hostname":           o.result.Hostname,
			}).Debug("Host found")
			events <- types.FoundEvent{Result: o.result}
		}
		events <- types.ProgressEvent{Completed: completed, Total: total}
	}

	logger.WithFields(logrus.Fields{
		"found":     found,
		"completed": completed,
		"total":     total,
		"duration":  time.Since(started).Round(time.Millisecond).String(),
	}).Info("Sweep finished")

	events <- types.DoneEvent{FoundCount: found}
}

// dispatch starts one probe per target, never more than cfg.MaxWorkers at a
// time, and closes results once every started probe has reported.
func (s *Sweeper) dispatch(ctx context.Context, cfg types.SweepConfig, targets []types.Address, results chan<- outcome, logger *logrus.Entry) {
	var wg sync.WaitGroup
	defer func() {
		wg.Wait()
		close(results)
	}()

	sem := semaphore.NewWeighted(int64(cfg.MaxWorkers))
	probeCtx := context.WithoutCancel(ctx)

	for i, target := range targets {
		if ctx.Err() != nil || sem.Acquire(ctx, 1) != nil {
			logger.WithField("scheduled", i).Info("Sweep cancelled, draining in-flight probes")
			return
		}

		wg.Add(1)
		go func(address types.Address) {
			defer wg.Done()
			defer sem.Release(1)

			result, reachable := s.prober.Probe(probeCtx, address, cfg.PerHostTimeout)
			results <- outcome{result: result, reachable: reachable}
		}(target)
	}
}
