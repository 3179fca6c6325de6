package network

import (
	"github.com/sarchlab/netsim/sim"
	"github.com/sarchlab/netsim/topology"
)

// Builder can build networks.
type Builder struct {
	engine    sim.Engine
	topo      topology.Topology
	name      string
	observers []TransferObserver
}

// MakeBuilder creates a Builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		name: "Network",
	}
}

// WithEngine sets the engine that the network uses.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithTopology sets the topology that prices the transfers.
func (b Builder) WithTopology(topo topology.Topology) Builder {
	b.topo = topo
	return b
}

// WithName sets the name of the network.
func (b Builder) WithName(name string) Builder {
	b.name = name
	return b
}

// WithTransferObserver adds an observer notified on every completed
// transfer.
func (b Builder) WithTransferObserver(o TransferObserver) Builder {
	b.observers = append(b.observers, o)
	return b
}

// Build creates the network and one device bridge per NPU.
func (b Builder) Build() *Network {
	if b.engine == nil {
		panic("network must have an engine")
	}

	if b.topo == nil {
		panic("network must have a topology")
	}

	n := &Network{
		name:      b.name,
		engine:    b.engine,
		topo:      b.topo,
		observers: b.observers,
	}

	n.devices = make([]*Device, b.topo.NPUCount())
	for i := range n.devices {
		n.devices[i] = &Device{
			id:           topology.DeviceID(i),
			network:      n,
			arrivals:     make(map[matchKey]int),
			pendingRecvs: make(map[matchKey][]func()),
		}
	}

	return n
}
