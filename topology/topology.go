// Package topology provides analytical cost models for point-to-point
// transfers over interconnect shapes. The models are congestion-unaware:
// the cost of a transfer depends only on the endpoints and the message
// size, never on other traffic in flight.
package topology

import "github.com/sarchlab/netsim/sim"

// DeviceID identifies one simulated endpoint. IDs are dense integers in the
// range [0, NPUCount).
type DeviceID int

// A Topology converts a (src, dest, message size) triple into a number of
// link traversals and a bandwidth-limited transfer time. Implementations are
// immutable after construction and safe to share across all devices.
type Topology interface {
	// NPUCount returns the number of devices attached to the topology.
	NPUCount() int

	// HopCount returns the number of link traversals between two devices.
	// Both IDs must be in range. HopCount(i, i) is 0.
	HopCount(src, dest DeviceID) int

	// TransferTime returns the end-to-end time of moving bytes from src to
	// dest, including per-hop latency and the bandwidth-limited serialization
	// time.
	TransferTime(src, dest DeviceID, bytes float64) sim.VTimeInSec
}
