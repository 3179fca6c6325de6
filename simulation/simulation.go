// Package simulation assembles the engine, the data recorder, and the
// monitor into one run-scoped owner. Networks borrow these services and must
// never be shared across runs.
package simulation

import (
	"github.com/sarchlab/netsim/datarecording"
	"github.com/sarchlab/netsim/monitoring"
	"github.com/sarchlab/netsim/network"
	"github.com/sarchlab/netsim/sim"
)

// A Simulation provides the services required to define a simulation.
type Simulation struct {
	id string

	engine       sim.Engine
	dataRecorder datarecording.DataRecorder
	monitor      *monitoring.Monitor

	networks         []*network.Network
	networkNameIndex map[string]int
}

// ID returns the ID of the simulation.
func (s *Simulation) ID() string {
	return s.id
}

// GetEngine returns the engine used in the simulation.
func (s *Simulation) GetEngine() sim.Engine {
	return s.engine
}

// GetDataRecorder returns the data recorder used in the simulation.
func (s *Simulation) GetDataRecorder() datarecording.DataRecorder {
	return s.dataRecorder
}

// GetMonitor returns the monitor used in the simulation. It is nil when
// monitoring is disabled.
func (s *Simulation) GetMonitor() *monitoring.Monitor {
	return s.monitor
}

// RegisterNetwork registers a network with the simulation.
func (s *Simulation) RegisterNetwork(n *network.Network) {
	name := n.Name()
	if _, ok := s.networkNameIndex[name]; ok {
		panic("network " + name + " already registered")
	}

	s.networks = append(s.networks, n)
	s.networkNameIndex[name] = len(s.networks) - 1

	if s.monitor != nil {
		s.monitor.RegisterNetwork(n)
	}
}

// GetNetworkByName returns the network with the given name.
func (s *Simulation) GetNetworkByName(name string) *network.Network {
	return s.networks[s.networkNameIndex[name]]
}

// Terminate terminates the simulation.
func (s *Simulation) Terminate() {
	s.dataRecorder.Close()
}
