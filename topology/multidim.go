package topology

import (
	"log"

	"github.com/sarchlab/netsim/sim"
)

// MultiDim stacks one topology per dimension into a hierarchy, the way large
// clusters compose smaller shapes along independent axes (e.g., a
// within-rack ring under an across-rack switch).
//
// A global device ID is decoded into per-dimension coordinates with
// mixed-radix positional encoding, dimension 0 being the least significant.
// A transfer is charged entirely to the outermost dimension in which the two
// coordinates differ; traffic confined to inner dimensions is fully resolved
// there. Only one dimension is ever active per transfer, so costs are never
// double-counted.
type MultiDim struct {
	dims  []Topology
	total int
}

// NewMultiDim creates a MultiDim from one topology per dimension, innermost
// first. The product of the per-dimension NPU counts must equal the declared
// total device count.
func NewMultiDim(dims []Topology, totalNPUs int) *MultiDim {
	if len(dims) == 0 {
		log.Panic("a multi-dimensional topology needs at least one dimension")
	}

	product := 1
	for _, d := range dims {
		product *= d.NPUCount()
	}

	if product != totalNPUs {
		log.Panicf(
			"per-dimension NPU counts multiply to %d, but %d NPUs are declared",
			product, totalNPUs,
		)
	}

	return &MultiDim{dims: dims, total: totalNPUs}
}

// NPUCount returns the total number of devices across all dimensions.
func (t *MultiDim) NPUCount() int {
	return t.total
}

// HopCount returns the hop count charged by the active dimension, or 0 when
// the two IDs are equal.
func (t *MultiDim) HopCount(src, dest DeviceID) int {
	dim, localSrc, localDest, same := t.activeDimension(src, dest)
	if same {
		return 0
	}

	return t.dims[dim].HopCount(localSrc, localDest)
}

// TransferTime returns the transfer time charged by the active dimension, or
// 0 when the two IDs are equal.
func (t *MultiDim) TransferTime(
	src, dest DeviceID,
	bytes float64,
) sim.VTimeInSec {
	dim, localSrc, localDest, same := t.activeDimension(src, dest)
	if same {
		return 0
	}

	return t.dims[dim].TransferTime(localSrc, localDest, bytes)
}

// activeDimension decodes the two global IDs and finds the outermost
// dimension whose coordinates differ.
func (t *MultiDim) activeDimension(
	src, dest DeviceID,
) (dim int, localSrc, localDest DeviceID, same bool) {
	t.mustContain(src)
	t.mustContain(dest)

	activeDim := -1
	srcRemainder, destRemainder := int(src), int(dest)

	for i, d := range t.dims {
		radix := d.NPUCount()

		srcCoord := srcRemainder % radix
		destCoord := destRemainder % radix
		srcRemainder /= radix
		destRemainder /= radix

		if srcCoord != destCoord {
			activeDim = i
			localSrc = DeviceID(srcCoord)
			localDest = DeviceID(destCoord)
		}
	}

	if activeDim < 0 {
		return 0, 0, 0, true
	}

	return activeDim, localSrc, localDest, false
}

func (t *MultiDim) mustContain(id DeviceID) {
	if id < 0 || int(id) >= t.total {
		log.Panicf("device ID %d out of range [0, %d)", id, t.total)
	}
}
