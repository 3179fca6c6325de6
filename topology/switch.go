package topology

import "github.com/sarchlab/netsim/sim"

// Switch models a star shape where all devices hang off one shared switch.
// Traffic between any two distinct devices traverses the switch once, which
// counts as a single logical hop regardless of the physical fan-out.
type Switch struct {
	basic
}

// NewSwitch creates a Switch topology from a validated configuration.
func NewSwitch(cfg Config) *Switch {
	return &Switch{basic: makeBasic(cfg)}
}

// HopCount returns 0 for a device talking to itself and 1 otherwise.
func (t *Switch) HopCount(src, dest DeviceID) int {
	t.mustContain(src)
	t.mustContain(dest)

	if src == dest {
		return 0
	}

	return 1
}

// TransferTime returns the cost of moving bytes between the two devices.
func (t *Switch) TransferTime(
	src, dest DeviceID,
	bytes float64,
) sim.VTimeInSec {
	return t.TransferTimeOverHops(t.HopCount(src, dest), bytes)
}
