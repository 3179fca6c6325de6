// Package analysis summarizes recorded transfers after a run finishes.
package analysis

import (
	"fmt"
	"io"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/sarchlab/netsim/network"
	"github.com/sarchlab/netsim/sim"
)

// TransferStats aggregates the cost of all transfers observed in one run.
type TransferStats struct {
	Count      int
	TotalBytes float64

	MinLatency  sim.VTimeInSec
	MeanLatency sim.VTimeInSec
	P95Latency  sim.VTimeInSec
	MaxLatency  sim.VTimeInSec

	// Makespan is the end time of the last transfer.
	Makespan sim.VTimeInSec

	// AchievedBandwidth is the total bytes moved divided by the makespan.
	AchievedBandwidth float64
}

// A TransferAnalyzer collects transfer samples and reduces them to
// TransferStats. It can be attached to a network as a transfer observer.
type TransferAnalyzer struct {
	latencies  []float64
	totalBytes float64
	makespan   sim.VTimeInSec
}

// NewTransferAnalyzer creates an empty TransferAnalyzer.
func NewTransferAnalyzer() *TransferAnalyzer {
	return &TransferAnalyzer{}
}

// RecordTransfer adds one completed transfer to the aggregate.
func (a *TransferAnalyzer) RecordTransfer(s network.TransferSample) {
	a.latencies = append(a.latencies, float64(s.End-s.Start))
	a.totalBytes += s.Bytes

	if s.End > a.makespan {
		a.makespan = s.End
	}
}

// Summarize reduces the collected samples.
func (a *TransferAnalyzer) Summarize() TransferStats {
	s := TransferStats{
		Count:      len(a.latencies),
		TotalBytes: a.totalBytes,
		Makespan:   a.makespan,
	}

	if s.Count == 0 {
		return s
	}

	sorted := make([]float64, len(a.latencies))
	copy(sorted, a.latencies)
	sort.Float64s(sorted)

	s.MinLatency = sim.VTimeInSec(sorted[0])
	s.MaxLatency = sim.VTimeInSec(sorted[len(sorted)-1])
	s.MeanLatency = sim.VTimeInSec(stat.Mean(sorted, nil))
	s.P95Latency = sim.VTimeInSec(
		stat.Quantile(0.95, stat.Empirical, sorted, nil))

	if a.makespan > 0 {
		s.AchievedBandwidth = a.totalBytes / float64(a.makespan)
	}

	return s
}

// Report writes a human-readable summary.
func (s TransferStats) Report(w io.Writer) {
	fmt.Fprintf(w, "transfers:          %d\n", s.Count)
	fmt.Fprintf(w, "bytes moved:        %.0f\n", s.TotalBytes)
	fmt.Fprintf(w, "latency min/mean:   %.9f / %.9f\n",
		float64(s.MinLatency), float64(s.MeanLatency))
	fmt.Fprintf(w, "latency p95/max:    %.9f / %.9f\n",
		float64(s.P95Latency), float64(s.MaxLatency))
	fmt.Fprintf(w, "makespan:           %.9f\n", float64(s.Makespan))
	fmt.Fprintf(w, "achieved bandwidth: %.3f B/s\n", s.AchievedBandwidth)
}
