//go:build unit

package types

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddress(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "Valid", input: "192.168.1.10"},
		{name: "Zeros", input: "0.0.0.0"},
		{name: "Broadcast", input: "255.255.255.255"},
		{name: "TooFewOctets", input: "192.168.1", wantErr: true},
		{name: "TooManyOctets", input: "192.168.1.1.1", wantErr: true},
		{name: "OctetOutOfRange", input: "192.168.1.256", wantErr: true},
		{name: "EmptyOctet", input: "192..1.1", wantErr: true},
		{name: "Negative", input: "192.168.-1.1", wantErr: true},
		{name: "IPv6", input: "::1", wantErr: true},
		{name: "Hostname", input: "printer.local", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := ParseAddress(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, Address(tt.input), addr)
		})
	}
}

func TestAddress_WithLastOctet(t *testing.T) {
	addr, err := Address("10.0.5.77").WithLastOctet(3)
	require.NoError(t, err)
	assert.Equal(t, Address("10.0.5.3"), addr)

	_, err = Address("10.0.5.77").WithLastOctet(300)
	assert.Error(t, err)

	_, err = Address("bogus").WithLastOctet(1)
	assert.Error(t, err)
}

func TestSweepConfig_Validate(t *testing.T) {
	valid := DefaultSweepConfig("192.168.1.0")
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(c *SweepConfig)
	}{
		{name: "MalformedBase", mutate: func(c *SweepConfig) { c.BaseAddress = "192.168.1" }},
		{name: "StartTooLow", mutate: func(c *SweepConfig) { c.StartOffset = 0 }},
		{name: "EndTooHigh", mutate: func(c *SweepConfig) { c.EndOffset = 255 }},
		{name: "Inverted", mutate: func(c *SweepConfig) { c.StartOffset, c.EndOffset = 10, 5 }},
		{name: "ZeroWorkers", mutate: func(c *SweepConfig) { c.MaxWorkers = 0 }},
		{name: "ZeroTimeout", mutate: func(c *SweepConfig) { c.PerHostTimeout = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrSweepConfigInvalid))
		})
	}
}

func TestSweepConfig_Targets(t *testing.T) {
	cfg := SweepConfig{
		BaseAddress:    "192.168.1.100",
		StartOffset:    1,
		EndOffset:      3,
		MaxWorkers:     2,
		PerHostTimeout: time.Second,
	}

	targets, err := cfg.Targets()
	require.NoError(t, err)
	assert.Equal(t, []Address{"192.168.1.1", "192.168.1.2", "192.168.1.3"}, targets)
	assert.Equal(t, uint(3), cfg.Total())

	cfg.StartOffset = 4
	_, err = cfg.Targets()
	assert.ErrorIs(t, err, ErrSweepConfigInvalid)
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(FoundEvent{}))
	assert.False(t, IsTerminal(ProgressEvent{}))
	assert.True(t, IsTerminal(DoneEvent{}))
	assert.True(t, IsTerminal(ErrorEvent{}))

	assert.Equal(t, EventFound, FoundEvent{}.Kind())
	assert.Equal(t, EventError, ErrorEvent{}.Kind())
}

func TestErrorEvent_IsSweepConfigInvalid(t *testing.T) {
	var err error = ErrorEvent{Message: "start offset 0 not in 1-254"}
	assert.ErrorIs(t, err, ErrSweepConfigInvalid)
	assert.Equal(t, "start offset 0 not in 1-254", err.Error())
}
