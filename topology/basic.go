package topology

import (
	"log"
	"math"

	"github.com/sarchlab/netsim/sim"
)

// basic carries the configuration shared by all single-dimension topologies
// and implements the cost formula. Concrete shapes embed basic and only
// provide the hop-count policy.
type basic struct {
	cfg Config
}

func makeBasic(cfg Config) basic {
	cfg.mustBeValid()
	return basic{cfg: cfg}
}

// NPUCount returns the number of devices in the dimension.
func (b basic) NPUCount() int {
	return b.cfg.NPUCount
}

// TransferTimeOverHops returns the time of moving bytes over a path of the
// given number of hops. Zero-byte messages still pay the latency terms, as
// the handshake overhead is never free.
func (b basic) TransferTimeOverHops(
	hops int,
	bytes float64,
) sim.VTimeInSec {
	if hops < 0 {
		log.Panicf("hop count must not be negative, have %d", hops)
	}

	if bytes < 0 {
		log.Panicf("message size must not be negative, have %f", bytes)
	}

	linkTime := sim.VTimeInSec(hops) * (b.cfg.LinkLatency + b.cfg.RouterLatency)
	nicTime := 2 * b.cfg.NICLatency

	serializationTime := sim.VTimeInSec(0)
	if bytes > 0 {
		bw := b.cfg.effectiveBandwidth()
		if bw <= 0 {
			log.Panic("cannot transfer a non-empty message over zero bandwidth")
		}
		serializationTime = sim.VTimeInSec(bytes / bw)
	}

	return linkTime + nicTime + serializationTime
}

// mustContain panics if the device ID is outside this dimension.
func (b basic) mustContain(id DeviceID) {
	if id < 0 || int(id) >= b.cfg.NPUCount {
		log.Panicf("device ID %d out of range [0, %d)", id, b.cfg.NPUCount)
	}
}

// ringDistance is the shortest-path distance between two indices on a ring
// of the given size, taking the shorter of the two directions.
func ringDistance(i, j, size int) int {
	direct := int(math.Abs(float64(i - j)))
	wrapped := size - direct

	if wrapped < direct {
		return wrapped
	}

	return direct
}
