// Package network adapts a topology cost model and an event engine to the
// send/recv contract that each simulated device's system layer programs
// against.
package network

import (
	"fmt"
	"log"
	"sync/atomic"

	"github.com/sarchlab/netsim/sim"
	"github.com/sarchlab/netsim/topology"
)

// A Network bridges one shared Topology and one shared engine to all the
// device endpoints. The topology is immutable, and the engine is only ever
// touched from within the single-threaded dispatch loop, so devices need no
// locking of their own.
type Network struct {
	name    string
	engine  sim.Engine
	topo    topology.Topology
	devices []*Device

	observers []TransferObserver

	// Read by the monitoring server while event callbacks write them.
	transfersStarted   atomic.Uint64
	transfersCompleted atomic.Uint64
}

// Name returns the name of the network.
func (n *Network) Name() string {
	return n.name
}

// NPUCount returns the number of devices attached to the network.
func (n *Network) NPUCount() int {
	return len(n.devices)
}

// Device returns the endpoint bridge for one device ID.
func (n *Network) Device(id topology.DeviceID) *Device {
	if id < 0 || int(id) >= len(n.devices) {
		log.Panicf("device ID %d out of range [0, %d)", id, len(n.devices))
	}

	return n.devices[id]
}

// AddTransferObserver adds an observer notified on every completed transfer.
func (n *Network) AddTransferObserver(o TransferObserver) {
	n.observers = append(n.observers, o)
}

// TransfersStarted returns the number of sends issued so far.
func (n *Network) TransfersStarted() uint64 {
	return n.transfersStarted.Load()
}

// TransfersCompleted returns the number of transfers whose completion
// callback has fired.
func (n *Network) TransfersCompleted() uint64 {
	return n.transfersCompleted.Load()
}

func (n *Network) notifyObservers(s TransferSample) {
	for _, o := range n.observers {
		o.RecordTransfer(s)
	}
}

// matchKey identifies one send/recv pairing. The system layer is responsible
// for keeping (src, dest, tag) triples unambiguous.
type matchKey struct {
	src, dest topology.DeviceID
	tag       int
}

// A Device is the per-endpoint face of the network. All devices share the
// network's topology and engine.
type Device struct {
	id      topology.DeviceID
	network *Network

	arrivals     map[matchKey]int
	pendingRecvs map[matchKey][]func()
}

// ID returns the device's ID.
func (d *Device) ID() topology.DeviceID {
	return d.id
}

// Name returns a name like "Network.Device3".
func (d *Device) Name() string {
	return fmt.Sprintf("%s.Device%d", d.network.name, d.id)
}

// Send issues a transfer of bytes to dest. The cost is computed analytically
// from the topology and the completion callback is scheduled on the shared
// engine; Send itself returns immediately. onComplete may be nil if the
// sender does not care about completion.
func (d *Device) Send(
	dest topology.DeviceID,
	bytes float64,
	tag int,
	onComplete func(),
) {
	n := d.network

	now := n.engine.CurrentTime()
	hops := n.topo.HopCount(d.id, dest)
	cost := n.topo.TransferTime(d.id, dest, bytes)

	n.transfersStarted.Add(1)

	destDev := n.Device(dest)
	key := matchKey{src: d.id, dest: dest, tag: tag}

	sim.ScheduleAfter(n.engine, cost, func() {
		n.transfersCompleted.Add(1)
		n.notifyObservers(TransferSample{
			Src:   d.id,
			Dest:  dest,
			Tag:   tag,
			Bytes: bytes,
			Hops:  hops,
			Start: now,
			End:   now + cost,
		})

		destDev.arrive(key)

		if onComplete != nil {
			onComplete()
		}
	})
}

// Recv registers a callback for the transfer matching (src, tag). If the
// data has already arrived, the callback fires at the current simulated
// time; otherwise it fires when the matching send's arrival event does.
// Each arrival satisfies exactly one Recv.
func (d *Device) Recv(
	src topology.DeviceID,
	tag int,
	onComplete func(),
) {
	if onComplete == nil {
		log.Panic("Recv requires a completion callback")
	}

	key := matchKey{src: src, dest: d.id, tag: tag}

	if d.arrivals[key] > 0 {
		d.arrivals[key]--
		sim.ScheduleAfter(d.network.engine, 0, onComplete)
		return
	}

	d.pendingRecvs[key] = append(d.pendingRecvs[key], onComplete)
}

// arrive delivers one matched arrival, either to the oldest waiting Recv or
// into the parked-arrival count for a Recv yet to come.
func (d *Device) arrive(key matchKey) {
	waiting := d.pendingRecvs[key]
	if len(waiting) > 0 {
		onComplete := waiting[0]
		d.pendingRecvs[key] = waiting[1:]
		onComplete()
		return
	}

	d.arrivals[key]++
}
