// Package traffic provides synthetic point-to-point traffic patterns that
// drive a network from the command line. Patterns only pick (src, dest,
// bytes) triples; they know nothing about collective algorithms.
package traffic

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/sarchlab/netsim/network"
	"github.com/sarchlab/netsim/topology"
)

// A Flow is one point-to-point transfer to issue.
type Flow struct {
	Src   topology.DeviceID
	Dest  topology.DeviceID
	Bytes float64
}

// A Pattern produces the flows to issue on a network of a given size.
type Pattern interface {
	Name() string
	Flows(npus int) []Flow
}

// OneToOne issues a single transfer between a fixed pair.
type OneToOne struct {
	Src   topology.DeviceID
	Dest  topology.DeviceID
	Bytes float64
}

// Name returns "one-to-one".
func (p OneToOne) Name() string { return "one-to-one" }

// Flows returns the single configured flow.
func (p OneToOne) Flows(_ int) []Flow {
	return []Flow{{Src: p.Src, Dest: p.Dest, Bytes: p.Bytes}}
}

// NeighborExchange makes every device send to its next neighbor, wrapping
// at the end.
type NeighborExchange struct {
	Bytes float64
}

// Name returns "neighbor-exchange".
func (p NeighborExchange) Name() string { return "neighbor-exchange" }

// Flows returns one flow per device.
func (p NeighborExchange) Flows(npus int) []Flow {
	flows := make([]Flow, 0, npus)
	for i := 0; i < npus; i++ {
		flows = append(flows, Flow{
			Src:   topology.DeviceID(i),
			Dest:  topology.DeviceID((i + 1) % npus),
			Bytes: p.Bytes,
		})
	}

	return flows
}

// RandomPairs issues transfers between seeded-random distinct pairs. The
// same seed always produces the same flows.
type RandomPairs struct {
	Count int
	Bytes float64
	Seed  int64
}

// Name returns "random-pairs".
func (p RandomPairs) Name() string { return "random-pairs" }

// Flows returns Count flows between distinct random pairs.
func (p RandomPairs) Flows(npus int) []Flow {
	if npus < 2 {
		log.Panic("random pairs need at least 2 NPUs")
	}

	rng := rand.New(rand.NewSource(p.Seed))

	flows := make([]Flow, 0, p.Count)
	for i := 0; i < p.Count; i++ {
		src := rng.Intn(npus)
		dest := rng.Intn(npus - 1)
		if dest >= src {
			dest++
		}

		flows = append(flows, Flow{
			Src:   topology.DeviceID(src),
			Dest:  topology.DeviceID(dest),
			Bytes: p.Bytes,
		})
	}

	return flows
}

// ParsePattern builds a pattern from its CLI name.
func ParsePattern(
	name string,
	bytes float64,
	seed int64,
	npus int,
) (Pattern, error) {
	switch name {
	case "one-to-one":
		return OneToOne{Src: 0, Dest: topology.DeviceID(npus - 1),
			Bytes: bytes}, nil
	case "neighbor-exchange":
		return NeighborExchange{Bytes: bytes}, nil
	case "random-pairs":
		return RandomPairs{Count: npus, Bytes: bytes, Seed: seed}, nil
	default:
		return nil, fmt.Errorf("unknown traffic pattern %q", name)
	}
}

// Drive registers the matching receives and issues every flow of the pattern
// at the current simulated time. It returns the number of flows issued.
func Drive(net *network.Network, p Pattern) int {
	flows := p.Flows(net.NPUCount())

	for tag, f := range flows {
		net.Device(f.Dest).Recv(f.Src, tag, func() {})
		net.Device(f.Src).Send(f.Dest, f.Bytes, tag, nil)
	}

	return len(flows)
}
