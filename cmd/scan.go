package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang-netsweep/internal/adapter/infrastructure/dns"
	"golang-netsweep/internal/adapter/infrastructure/icmp"
	"golang-netsweep/internal/adapter/infrastructure/network"
	"golang-netsweep/internal/adapter/infrastructure/ping"
	"golang-netsweep/internal/adapter/inspector"
	"golang-netsweep/internal/adapter/prober"
	"golang-netsweep/internal/adapter/report"
	"golang-netsweep/internal/adapter/sweep"
	"golang-netsweep/internal/adapter/tui"
	"golang-netsweep/internal/pkg/config"
	"golang-netsweep/internal/pkg/logging"
	"golang-netsweep/internal/port"
	"golang-netsweep/internal/types"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var scanFlags struct {
	configFile     string
	base           string
	start          int
	end            int
	workers        int
	timeoutMs      int
	prober         string
	resolverServer string
	iface          string
	inspector      string
	output         string
	logLevel       string
	logFormat      string
}

// applyFlags overrides config values with the flags set on the command line
func applyFlags(flags *pflag.FlagSet, cfg *config.Config) {
	if flags.Changed("base") {
		cfg.Scan.BaseAddress = scanFlags.base
	}
	if flags.Changed("start") {
		cfg.Scan.StartOffset = scanFlags.start
	}
	if flags.Changed("end") {
		cfg.Scan.EndOffset = scanFlags.end
	}
	if flags.Changed("workers") {
		cfg.Scan.MaxWorkers = scanFlags.workers
	}
	if flags.Changed("timeout") {
		cfg.Scan.TimeoutMs = scanFlags.timeoutMs
	}
	if flags.Changed("prober") {
		cfg.Scan.Prober = scanFlags.prober
	}
	if flags.Changed("resolver-server") {
		cfg.Scan.ResolverServer = scanFlags.resolverServer
	}
	if flags.Changed("interface") {
		cfg.Scan.Interface = scanFlags.iface
	}
	if flags.Changed("inspector") {
		cfg.Scan.Inspector = scanFlags.inspector
	}
	if flags.Changed("output") {
		cfg.Output = scanFlags.output
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = scanFlags.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = scanFlags.logFormat
	}
}

func createInspector(cfg config.ScanConfig) port.AddressInspector {
	if cfg.Interface != "" {
		return inspector.NewInterfaceInspector(cfg.Interface, network.NewManagerAdapter())
	}
	if strings.ToLower(cfg.Inspector) == config.InspectorRoute {
		return inspector.NewRouteInspector(network.NewManagerAdapter())
	}
	return inspector.NewUDPInspector()
}

func createHostProber(cfg config.ScanConfig) port.HostProber {
	var checker port.Prober
	if strings.ToLower(cfg.Prober) == config.ProberICMP {
		checker = icmp.NewClientAdapter()
	} else {
		checker = ping.NewClientAdapter()
	}

	var resolver port.Resolver
	if cfg.ResolverServer != "" {
		resolver = dns.NewServerResolver(cfg.ResolverServer, time.Duration(cfg.TimeoutMs)*time.Millisecond)
	} else {
		resolver = dns.NewSystemResolver()
	}

	return prober.NewHostProber(checker, resolver)
}

var scanCmd = &cobra.Command{
	Use:          "scan",
	Short:        "Sweep the local /24 network and report reachable hosts",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Load and validate configuration
		cfg, err := config.Load(scanFlags.configFile)
		if err != nil {
			return fmt.Errorf("config error: %w", err)
		}
		applyFlags(cmd.Flags(), cfg)

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("config validation error: %w", err)
		}

		output := strings.ToLower(cfg.Output)
		if output == config.OutputTUI {
			// Log lines would tear the terminal view
			logging.InitLoggerWithOutput(cfg.Logging, io.Discard)
		} else {
			logging.InitLogger(cfg.Logging)
		}
		logger := logging.WithComponent("scan")

		// Create context for graceful shutdown
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigChan)
		go func() {
			select {
			case sig := <-sigChan:
				logger.WithField("signal", sig.String()).Info("Received shutdown signal, stopping sweep")
				cancel()
			case <-ctx.Done():
			}
		}()

		local := createInspector(cfg.Scan).LocalAddress(ctx)
		base := local
		if cfg.Scan.BaseAddress != "" {
			base = types.Address(cfg.Scan.BaseAddress)
		}
		sweepCfg := cfg.SweepConfig(base)

		logger.WithFields(map[string]interface{}{
			"local":   local.String(),
			"base":    base.String(),
			"start":   sweepCfg.StartOffset,
			"end":     sweepCfg.EndOffset,
			"workers": sweepCfg.MaxWorkers,
			"prober":  cfg.Scan.Prober,
		}).Info("Starting scan")

		sweeper := sweep.NewSweeper(createHostProber(cfg.Scan))

		switch output {
		case config.OutputTUI:
			return runTUI(ctx, cancel, sweeper, local, sweepCfg)
		case config.OutputJSON:
			sink := report.NewJSONSink(os.Stdout)
			sink.Info(fmt.Sprintf("local address %s", local))
			_, err := sweeper.Run(ctx, sweepCfg, sink)
			return err
		default:
			fmt.Printf("Local address: %s\n", local)
			collector := report.NewCollector()
			done, err := sweeper.Run(ctx, sweepCfg, report.MultiSink{report.NewTextSink(os.Stdout), collector})
			if err != nil {
				return err
			}

			hosts := make([]string, 0, done.FoundCount)
			for _, r := range collector.Results() {
				hosts = append(hosts, r.Address.String())
			}
			entry := logger.WithField("found", done.FoundCount)
			if ctx.Err() != nil {
				entry.Warn("Scan interrupted")
			} else {
				entry.WithField("hosts", strings.Join(hosts, ",")).Info("Scan finished")
			}
			return nil
		}
	},
}

func runTUI(ctx context.Context, cancel context.CancelFunc, sweeper *sweep.Sweeper, local types.Address, cfg types.SweepConfig) error {
	events := sweeper.Sweep(ctx, cfg)
	defer func() {
		// Unblock the sweep if the program exited before the terminal event
		cancel()
		for range events {
		}
	}()

	final, err := tea.NewProgram(tui.NewModel(local, events, cancel)).Run()
	if err != nil {
		return fmt.Errorf("failed to run terminal view: %w", err)
	}

	if m, ok := final.(tui.Model); ok {
		return m.Err()
	}
	return nil
}

func init() {
	flags := scanCmd.Flags()
	flags.StringVarP(&scanFlags.configFile, "config", "f", "", "Path to config file (YAML)")
	flags.StringVarP(&scanFlags.base, "base", "b", "", "Base address of the /24 to sweep (default: local address)")
	flags.IntVar(&scanFlags.start, "start", types.MinOffset, "First last-octet offset to probe")
	flags.IntVar(&scanFlags.end, "end", types.MaxOffset, "Last last-octet offset to probe")
	flags.IntVarP(&scanFlags.workers, "workers", "w", types.DefaultMaxWorkers, "Maximum concurrent probes")
	flags.IntVarP(&scanFlags.timeoutMs, "timeout", "t", int(types.DefaultPerHostTimeout/time.Millisecond), "Per-host timeout in milliseconds")
	flags.StringVar(&scanFlags.prober, "prober", config.ProberExec, "Probe mechanism: exec or icmp")
	flags.StringVar(&scanFlags.resolverServer, "resolver-server", "", "DNS server (host:port) for reverse lookups (default: system resolver)")
	flags.StringVarP(&scanFlags.iface, "interface", "i", "", "Take the local address from this interface")
	flags.StringVar(&scanFlags.inspector, "inspector", config.InspectorUDP, "Local address discovery: udp or route")
	flags.StringVar(&scanFlags.output, "output", config.OutputText, "Output format: text, json or tui")
	flags.StringVar(&scanFlags.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flags.StringVar(&scanFlags.logFormat, "log-format", "text", "Log format: text, json, simple or compact")
	rootCmd.AddCommand(scanCmd)
}
