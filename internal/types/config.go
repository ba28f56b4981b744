// Package types defines common types used across the application.
package types

import (
	"fmt"
	"time"
)

const (
	MinOffset = 1
	MaxOffset = 254

	DefaultMaxWorkers     = 100
	DefaultPerHostTimeout = 800 * time.Millisecond
)

// SweepConfig describes a single sweep over the last octet of BaseAddress.
type SweepConfig struct {
	BaseAddress    Address       // Any address inside the /24 to sweep (e.g., "192.168.1.100")
	StartOffset    int           // First last-octet value, 1-254
	EndOffset      int           // Last last-octet value, 1-254, >= StartOffset
	MaxWorkers     int           // Maximum number of in-flight probes
	PerHostTimeout time.Duration // Reachability deadline for each host
}

// DefaultSweepConfig returns a full /24 sweep around base.
func DefaultSweepConfig(base Address) SweepConfig {
	return SweepConfig{
		BaseAddress:    base,
		StartOffset:    MinOffset,
		EndOffset:      MaxOffset,
		MaxWorkers:     DefaultMaxWorkers,
		PerHostTimeout: DefaultPerHostTimeout,
	}
}

// Validate checks the configuration. Any returned error wraps ErrSweepConfigInvalid.
func (c SweepConfig) Validate() error {
	if _, err := ParseAddress(string(c.BaseAddress)); err != nil {
		return fmt.Errorf("%w: base address: %v", ErrSweepConfigInvalid, err)
	}
	if c.StartOffset < MinOffset || c.StartOffset > MaxOffset {
		return fmt.Errorf("%w: start offset %d not in %d-%d", ErrSweepConfigInvalid, c.StartOffset, MinOffset, MaxOffset)
	}
	if c.EndOffset < MinOffset || c.EndOffset > MaxOffset {
		return fmt.Errorf("%w: end offset %d not in %d-%d", ErrSweepConfigInvalid, c.EndOffset, MinOffset, MaxOffset)
	}
	if c.StartOffset > c.EndOffset {
		return fmt.Errorf("%w: start offset %d is greater than end offset %d", ErrSweepConfigInvalid, c.StartOffset, c.EndOffset)
	}
	if c.MaxWorkers <= 0 {
		return fmt.Errorf("%w: max workers must be positive, got %d", ErrSweepConfigInvalid, c.MaxWorkers)
	}
	if c.PerHostTimeout <= 0 {
		return fmt.Errorf("%w: per-host timeout must be positive, got %s", ErrSweepConfigInvalid, c.PerHostTimeout)
	}
	return nil
}

// Total returns the number of addresses in the offset range.
func (c SweepConfig) Total() uint {
	if c.EndOffset < c.StartOffset {
		return 0
	}
	return uint(c.EndOffset - c.StartOffset + 1)
}

// Targets expands the offset range into addresses, in ascending order.
func (c SweepConfig) Targets() ([]Address, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	targets := make([]Address, 0, c.Total())
	for i := c.StartOffset; i <= c.EndOffset; i++ {
		addr, err := c.BaseAddress.WithLastOctet(i)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSweepConfigInvalid, err)
		}
		targets = append(targets, addr)
	}
	return targets, nil
}
