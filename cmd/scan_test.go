//go:build unit

package cmd

import (
	"testing"

	"golang-netsweep/internal/adapter/inspector"
	"golang-netsweep/internal/pkg/config"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyFlags_OnlyChangedFlagsOverride(t *testing.T) {
	cfg := config.Default()
	cfg.Scan.MaxWorkers = 7
	cfg.Scan.TimeoutMs = 300

	flags := pflag.NewFlagSet("scan", pflag.ContinueOnError)
	flags.AddFlagSet(scanCmd.Flags())
	require.NoError(t, flags.Parse([]string{"--base", "10.0.0.9", "--end", "20", "--output", "json"}))
	t.Cleanup(func() {
		scanFlags.base = ""
		scanFlags.end = 254
		scanFlags.output = config.OutputText
	})

	applyFlags(flags, cfg)

	assert.Equal(t, "10.0.0.9", cfg.Scan.BaseAddress)
	assert.Equal(t, 1, cfg.Scan.StartOffset)
	assert.Equal(t, 20, cfg.Scan.EndOffset)
	assert.Equal(t, 7, cfg.Scan.MaxWorkers, "file value kept when flag is unset")
	assert.Equal(t, 300, cfg.Scan.TimeoutMs)
	assert.Equal(t, config.OutputJSON, cfg.Output)
}

func TestCreateInspector(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.ScanConfig
		want interface{}
	}{
		{"default", config.ScanConfig{Inspector: config.InspectorUDP}, &inspector.UDPInspector{}},
		{"route", config.ScanConfig{Inspector: "ROUTE"}, &inspector.RouteInspector{}},
		{"interface wins", config.ScanConfig{Inspector: config.InspectorRoute, Interface: "eth0"}, &inspector.InterfaceInspector{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.IsType(t, tt.want, createInspector(tt.cfg))
		})
	}
}
