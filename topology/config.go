package topology

import (
	"log"

	"github.com/sarchlab/netsim/sim"
)

// Config holds the physical parameters of one topology dimension. A Config is
// pure data. It is validated once, when a topology takes ownership of it, and
// never mutated afterwards.
type Config struct {
	// NPUCount is the number of devices in this dimension.
	NPUCount int

	// LinkLatency is the fixed cost of traversing one link, in seconds.
	LinkLatency sim.VTimeInSec

	// LinkBandwidth is the link rate in bytes per second.
	LinkBandwidth float64

	// NICLatency is paid twice per transfer, once on each endpoint.
	NICLatency sim.VTimeInSec

	// RouterLatency is the per-hop cost of the routing element.
	RouterLatency sim.VTimeInSec

	// MemoryLatency and MemoryBandwidth describe the local memory that feeds
	// the NIC. MemoryScale scales the memory bandwidth to account for sharing.
	// A zero memory bandwidth means memory does not constrain the transfer.
	MemoryLatency   sim.VTimeInSec
	MemoryBandwidth float64
	MemoryScale     float64
}

// mustBeValid panics if the configuration cannot describe a physical
// dimension. A partially valid configuration would silently produce wrong
// cost numbers, so setup aborts before any event is scheduled.
func (c Config) mustBeValid() {
	if c.NPUCount < 1 {
		log.Panicf("topology dimension must have at least 1 NPU, have %d",
			c.NPUCount)
	}

	if c.LinkLatency < 0 || c.NICLatency < 0 ||
		c.RouterLatency < 0 || c.MemoryLatency < 0 {
		log.Panic("topology latencies must not be negative")
	}

	if c.LinkBandwidth < 0 || c.MemoryBandwidth < 0 || c.MemoryScale < 0 {
		log.Panic("topology bandwidths must not be negative")
	}
}

// effectiveBandwidth is the rate a single transfer can sustain. A transfer
// cannot run faster than the slower of the link and the scaled local memory.
func (c Config) effectiveBandwidth() float64 {
	memBW := c.MemoryBandwidth * c.MemoryScale
	if memBW <= 0 {
		return c.LinkBandwidth
	}

	if memBW < c.LinkBandwidth {
		return memBW
	}

	return c.LinkBandwidth
}
