package topology

import "github.com/sarchlab/netsim/sim"

// Ring models devices arranged on a bidirectional ring. Transfers take the
// shorter of the clockwise and counter-clockwise paths.
type Ring struct {
	basic
}

// NewRing creates a Ring topology from a validated configuration.
func NewRing(cfg Config) *Ring {
	return &Ring{basic: makeBasic(cfg)}
}

// HopCount returns min(|src-dest|, NPUCount-|src-dest|).
func (t *Ring) HopCount(src, dest DeviceID) int {
	t.mustContain(src)
	t.mustContain(dest)

	return ringDistance(int(src), int(dest), t.cfg.NPUCount)
}

// TransferTime returns the cost of moving bytes between the two devices.
func (t *Ring) TransferTime(
	src, dest DeviceID,
	bytes float64,
) sim.VTimeInSec {
	return t.TransferTimeOverHops(t.HopCount(src, dest), bytes)
}
