package cmd

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/netsim/analysis"
	"github.com/sarchlab/netsim/monitoring"
	"github.com/sarchlab/netsim/netcfg"
	"github.com/sarchlab/netsim/network"
	"github.com/sarchlab/netsim/sim"
	"github.com/sarchlab/netsim/simulation"
	"github.com/sarchlab/netsim/topology"
	"github.com/sarchlab/netsim/traffic"
)

var runFlags struct {
	networkConfiguration string
	pattern              string
	messageSize          float64
	seed                 int64
	output               string
	monitor              bool
	monitorPort          int
	openBrowser          bool
	logEvents            bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a traffic pattern over a configured topology",
	Run: func(cmd *cobra.Command, args []string) {
		run()
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runFlags.networkConfiguration,
		"network-configuration", "",
		"Network configuration file (.json, .yaml, or .yml)")
	runCmd.Flags().StringVar(&runFlags.pattern,
		"pattern", "neighbor-exchange",
		"Traffic pattern: one-to-one, neighbor-exchange, or random-pairs")
	runCmd.Flags().Float64Var(&runFlags.messageSize,
		"message-size", 1048576, "Message size in bytes")
	runCmd.Flags().Int64Var(&runFlags.seed,
		"seed", 1, "Seed for the random-pairs pattern")
	runCmd.Flags().StringVar(&runFlags.output,
		"output", "", "Output database file name")
	runCmd.Flags().BoolVar(&runFlags.monitor,
		"monitor", false, "Start the monitoring server")
	runCmd.Flags().IntVar(&runFlags.monitorPort,
		"monitor-port", 0, "Port for the monitoring server")
	runCmd.Flags().BoolVar(&runFlags.openBrowser,
		"open-browser", false, "Open the monitoring dashboard in a browser")
	runCmd.Flags().BoolVar(&runFlags.logEvents,
		"log-events", false, "Log every event as it fires")

	_ = runCmd.MarkFlagRequired("network-configuration")
}

func run() {
	topo := mustLoadTopology()

	s := buildSimulation()
	defer s.Terminate()

	net := s.BuildNetwork("Network", topo)

	analyzer := analysis.NewTransferAnalyzer()
	net.AddTransferObserver(analyzer)

	pattern, err := traffic.ParsePattern(
		runFlags.pattern, runFlags.messageSize, runFlags.seed, net.NPUCount())
	exitOnErr(err)

	numFlows := traffic.Drive(net, pattern)

	if s.GetMonitor() != nil {
		bar := s.GetMonitor().CreateProgressBar(
			pattern.Name(), uint64(numFlows))
		bar.StartTransfers(uint64(numFlows))
		net.AddTransferObserver(progressObserver{bar: bar})
	}

	engine := s.GetEngine()
	if runFlags.logEvents {
		engine.AcceptHook(sim.NewEventLogger(log.Default()))
	}

	exitOnErr(engine.Run())
	engine.Finished()

	fmt.Printf("pattern:            %s (%d transfers)\n",
		pattern.Name(), numFlows)
	fmt.Printf("simulated time:     %.9f s\n", float64(engine.CurrentTime()))
	analyzer.Summarize().Report(os.Stdout)
}

func mustLoadTopology() topology.Topology {
	filename := runFlags.networkConfiguration
	useYAML := strings.HasSuffix(filename, ".yaml") ||
		strings.HasSuffix(filename, ".yml")

	cfg, err := netcfg.ReadNetworkConfig(filename, useYAML, nil)
	exitOnErr(err)

	topo, err := cfg.Build()
	exitOnErr(err)

	return topo
}

func buildSimulation() *simulation.Simulation {
	builder := simulation.MakeBuilder()

	if runFlags.output != "" {
		builder = builder.WithOutputFileName(runFlags.output)
	}

	if !runFlags.monitor {
		return builder.WithoutMonitoring().Build()
	}

	port := runFlags.monitorPort
	if port == 0 {
		port = monitorPortFromEnv()
	}
	if port > 0 {
		builder = builder.WithMonitorPort(port)
	}

	if runFlags.openBrowser {
		builder = builder.WithBrowser()
	}

	return builder.Build()
}

func monitorPortFromEnv() int {
	v := os.Getenv("NETSIM_MONITOR_PORT")
	if v == "" {
		return 0
	}

	port, err := strconv.Atoi(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ignoring invalid NETSIM_MONITOR_PORT %q\n", v)
		return 0
	}

	return port
}

// progressObserver finishes one progress-bar transfer per completed
// transfer, crediting the bytes it moved.
type progressObserver struct {
	bar *monitoring.ProgressBar
}

func (o progressObserver) RecordTransfer(s network.TransferSample) {
	o.bar.CompleteTransfer(s.Bytes)
}

func exitOnErr(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}
}
