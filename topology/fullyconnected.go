package topology

import "github.com/sarchlab/netsim/sim"

// FullyConnected models a fabric where every device has a direct link to
// every other device. Any non-equal pair is one hop apart.
type FullyConnected struct {
	basic
}

// NewFullyConnected creates a FullyConnected topology from a validated
// configuration.
func NewFullyConnected(cfg Config) *FullyConnected {
	return &FullyConnected{basic: makeBasic(cfg)}
}

// HopCount returns 0 for a device talking to itself and 1 otherwise.
func (t *FullyConnected) HopCount(src, dest DeviceID) int {
	t.mustContain(src)
	t.mustContain(dest)

	if src == dest {
		return 0
	}

	return 1
}

// TransferTime returns the cost of moving bytes between the two devices.
func (t *FullyConnected) TransferTime(
	src, dest DeviceID,
	bytes float64,
) sim.VTimeInSec {
	return t.TransferTimeOverHops(t.HopCount(src, dest), bytes)
}
