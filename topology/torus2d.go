package topology

import (
	"log"

	"github.com/sarchlab/netsim/sim"
)

// Torus2D models devices on a 2-D wrapped grid. Device IDs are laid out
// row-major: id = row*width + col. The hop count is the Manhattan distance
// with each axis measured as a shortest-path ring distance.
type Torus2D struct {
	basic

	width  int
	height int
}

// NewTorus2D creates a Torus2D topology. The two configurations describe the
// horizontal and vertical axes; their NPU counts give the grid width and
// height, and their physical link parameters must agree, since the torus has
// uniform links.
func NewTorus2D(widthCfg, heightCfg Config) *Torus2D {
	widthCfg.mustBeValid()
	heightCfg.mustBeValid()

	if !sameLinkParameters(widthCfg, heightCfg) {
		log.Panic("the two torus axes must share the same link parameters")
	}

	gridCfg := widthCfg
	gridCfg.NPUCount = widthCfg.NPUCount * heightCfg.NPUCount

	return &Torus2D{
		basic:  makeBasic(gridCfg),
		width:  widthCfg.NPUCount,
		height: heightCfg.NPUCount,
	}
}

func sameLinkParameters(a, b Config) bool {
	a.NPUCount = 0
	b.NPUCount = 0
	return a == b
}

// HopCount returns the sum of the ring distances along the two axes.
func (t *Torus2D) HopCount(src, dest DeviceID) int {
	t.mustContain(src)
	t.mustContain(dest)

	srcRow, srcCol := int(src)/t.width, int(src)%t.width
	destRow, destCol := int(dest)/t.width, int(dest)%t.width

	return ringDistance(srcRow, destRow, t.height) +
		ringDistance(srcCol, destCol, t.width)
}

// TransferTime returns the cost of moving bytes between the two devices.
func (t *Torus2D) TransferTime(
	src, dest DeviceID,
	bytes float64,
) sim.VTimeInSec {
	return t.TransferTimeOverHops(t.HopCount(src, dest), bytes)
}
