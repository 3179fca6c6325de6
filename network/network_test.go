package network_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/netsim/network"
	"github.com/sarchlab/netsim/sim"
	"github.com/sarchlab/netsim/topology"
)

type sampleCollector struct {
	samples []network.TransferSample
}

func (c *sampleCollector) RecordTransfer(s network.TransferSample) {
	c.samples = append(c.samples, s)
}

var _ = Describe("Network", func() {
	var (
		engine    *sim.SerialEngine
		net       *network.Network
		collector *sampleCollector
	)

	BeforeEach(func() {
		engine = sim.NewSerialEngine()
		collector = &sampleCollector{}

		ring := topology.NewRing(topology.Config{
			NPUCount:      4,
			LinkLatency:   10,
			LinkBandwidth: 1,
		})

		net = network.MakeBuilder().
			WithEngine(engine).
			WithTopology(ring).
			WithTransferObserver(collector).
			Build()
	})

	It("should complete a ring transfer at the analytical time", func() {
		var completedAt sim.VTimeInSec

		// 2 hops * 10 + 100 bytes / 1 B/s = 120.
		net.Device(0).Send(2, 100, 0, func() {
			completedAt = engine.CurrentTime()
		})

		Expect(engine.Run()).To(Succeed())

		Expect(completedAt).To(Equal(sim.VTimeInSec(120)))
		Expect(net.TransfersStarted()).To(Equal(uint64(1)))
		Expect(net.TransfersCompleted()).To(Equal(uint64(1)))
	})

	It("should fire a recv registered before the arrival", func() {
		var recvAt sim.VTimeInSec

		net.Device(2).Recv(0, 7, func() {
			recvAt = engine.CurrentTime()
		})
		net.Device(0).Send(2, 100, 7, nil)

		Expect(engine.Run()).To(Succeed())

		Expect(recvAt).To(Equal(sim.VTimeInSec(120)))
	})

	It("should fire a recv registered after the arrival", func() {
		var recvAt sim.VTimeInSec
		recvCount := 0

		net.Device(0).Send(2, 100, 7, nil)

		// A later event registers the recv after the data has arrived.
		sim.ScheduleAfter(engine, 500, func() {
			net.Device(2).Recv(0, 7, func() {
				recvAt = engine.CurrentTime()
				recvCount++
			})
		})

		Expect(engine.Run()).To(Succeed())

		Expect(recvAt).To(Equal(sim.VTimeInSec(500)))
		Expect(recvCount).To(Equal(1))
	})

	It("should match each arrival to exactly one recv", func() {
		recvCount := 0

		net.Device(0).Send(2, 100, 7, nil)
		net.Device(0).Send(2, 100, 7, nil)

		net.Device(2).Recv(0, 7, func() { recvCount++ })
		net.Device(2).Recv(0, 7, func() { recvCount++ })
		net.Device(2).Recv(0, 7, func() { recvCount++ })

		Expect(engine.Run()).To(Succeed())

		// The third recv has no matching send and must stay pending.
		Expect(recvCount).To(Equal(2))
	})

	It("should keep tags separate", func() {
		fired := make([]int, 0)

		net.Device(2).Recv(0, 1, func() { fired = append(fired, 1) })
		net.Device(2).Recv(0, 2, func() { fired = append(fired, 2) })

		// Tag 2 is smaller, so it arrives first.
		net.Device(0).Send(2, 200, 1, nil)
		net.Device(0).Send(2, 100, 2, nil)

		Expect(engine.Run()).To(Succeed())

		Expect(fired).To(Equal([]int{2, 1}))
	})

	It("should record one sample per transfer", func() {
		net.Device(1).Send(3, 50, 0, nil)
		net.Device(0).Send(2, 100, 0, nil)

		Expect(engine.Run()).To(Succeed())

		Expect(collector.samples).To(HaveLen(2))

		// 1 -> 3 is 2 hops and 50 bytes, completing at 70.
		first := collector.samples[0]
		Expect(first.Src).To(Equal(topology.DeviceID(1)))
		Expect(first.Dest).To(Equal(topology.DeviceID(3)))
		Expect(first.Hops).To(Equal(2))
		Expect(first.Start).To(Equal(sim.VTimeInSec(0)))
		Expect(first.End).To(Equal(sim.VTimeInSec(70)))
	})

	It("should let a completion callback issue further sends", func() {
		var secondDone sim.VTimeInSec

		net.Device(0).Send(1, 10, 0, func() {
			net.Device(1).Send(2, 10, 0, func() {
				secondDone = engine.CurrentTime()
			})
		})

		Expect(engine.Run()).To(Succeed())

		// Each leg is 1 hop * 10 + 10 bytes / 1 B/s = 20.
		Expect(secondDone).To(Equal(sim.VTimeInSec(40)))
	})

	It("should panic on an out-of-range destination", func() {
		Expect(func() {
			net.Device(0).Send(4, 100, 0, nil)
		}).To(Panic())
	})
})
