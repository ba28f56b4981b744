package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"golang-netsweep/internal/pkg/logging"
	"golang-netsweep/internal/types"

	"gopkg.in/yaml.v3"
)

// Probe mechanisms
const (
	ProberExec = "exec"
	ProberICMP = "icmp"
)

// Local address discovery strategies
const (
	InspectorUDP   = "udp"
	InspectorRoute = "route"
)

// Output renderers
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputTUI  = "tui"
)

// ScanConfig represents the sweep section of the configuration file
type ScanConfig struct {
	BaseAddress    string `yaml:"base_address,omitempty"`
	Interface      string `yaml:"interface,omitempty"`
	Inspector      string `yaml:"inspector"`
	StartOffset    int    `yaml:"start_offset"`
	EndOffset      int    `yaml:"end_offset"`
	MaxWorkers     int    `yaml:"max_workers"`
	TimeoutMs      int    `yaml:"timeout_ms"`
	Prober         string `yaml:"prober"`
	ResolverServer string `yaml:"resolver_server,omitempty"`
}

// Config represents the main configuration structure
type Config struct {
	Logging logging.LogConfig `yaml:"logging"`
	Scan    ScanConfig        `yaml:"scan"`
	Output  string            `yaml:"output"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Logging: logging.LogConfig{
			Level:  "info",
			Format: "text",
		},
		Scan: ScanConfig{
			Inspector:   InspectorUDP,
			StartOffset: types.MinOffset,
			EndOffset:   types.MaxOffset,
			MaxWorkers:  types.DefaultMaxWorkers,
			TimeoutMs:   int(types.DefaultPerHostTimeout / time.Millisecond),
			Prober:      ProberExec,
		},
		Output: OutputText,
	}
}

// Load loads configuration from a YAML file on top of Default().
// An empty path returns the defaults.
func Load(configPath string) (*Config, error) {
	config := Default()
	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	return config, nil
}

// Validate validates the option values. Numeric sweep bounds and the base
// address are checked by the sweep itself so that they surface as an error event.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Scan.Prober) {
	case ProberExec, ProberICMP:
	default:
		return fmt.Errorf("scan: unknown prober %q (want %s or %s)", c.Scan.Prober, ProberExec, ProberICMP)
	}

	switch strings.ToLower(c.Scan.Inspector) {
	case InspectorUDP, InspectorRoute:
	default:
		return fmt.Errorf("scan: unknown inspector %q (want %s or %s)", c.Scan.Inspector, InspectorUDP, InspectorRoute)
	}

	switch strings.ToLower(c.Output) {
	case OutputText, OutputJSON, OutputTUI:
	default:
		return fmt.Errorf("unknown output %q (want %s, %s or %s)", c.Output, OutputText, OutputJSON, OutputTUI)
	}

	if c.Scan.BaseAddress != "" && c.Scan.Interface != "" {
		return fmt.Errorf("scan: cannot specify both base_address and interface")
	}

	return nil
}

// SweepConfig builds the sweep parameters around base.
func (c *Config) SweepConfig(base types.Address) types.SweepConfig {
	return types.SweepConfig{
		BaseAddress:    base,
		StartOffset:    c.Scan.StartOffset,
		EndOffset:      c.Scan.EndOffset,
		MaxWorkers:     c.Scan.MaxWorkers,
		PerHostTimeout: time.Duration(c.Scan.TimeoutMs) * time.Millisecond,
	}
}
