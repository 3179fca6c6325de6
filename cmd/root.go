// Package cmd provides the command-line interface of the simulator.
package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use: "netsim",
	Short: "netsim estimates the cost of point-to-point transfers over " +
		"multi-dimensional interconnect topologies.",
	Long: `netsim is an analytical, congestion-unaware network simulator. ` +
		`It prices each transfer from the topology configuration alone and ` +
		`drives a discrete-event timeline so that completion callbacks fire ` +
		`in simulated-time order.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	// A .env file can provide defaults such as NETSIM_MONITOR_PORT.
	_ = godotenv.Load()

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
