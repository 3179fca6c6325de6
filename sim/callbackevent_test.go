package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("CallbackEvent", func() {
	var engine *SerialEngine

	BeforeEach(func() {
		engine = NewSerialEngine()
	})

	It("should invoke the callback at the due time", func() {
		var firedAt VTimeInSec

		ScheduleAfter(engine, 1.5, func() {
			firedAt = engine.CurrentTime()
		})

		_ = engine.Run()

		Expect(firedAt).To(Equal(VTimeInSec(1.5)))
	})

	It("should allow callbacks to schedule more callbacks", func() {
		fireTimes := make([]VTimeInSec, 0)

		ScheduleAfter(engine, 1.0, func() {
			fireTimes = append(fireTimes, engine.CurrentTime())
			ScheduleAfter(engine, 2.0, func() {
				fireTimes = append(fireTimes, engine.CurrentTime())
			})
		})

		_ = engine.Run()

		Expect(fireTimes).To(Equal([]VTimeInSec{1.0, 3.0}))
	})

	It("should panic on a negative delay and leave the queue untouched", func() {
		Expect(func() {
			ScheduleAfter(engine, -1.0, func() {})
		}).To(Panic())

		fired := false
		ScheduleAfter(engine, 1.0, func() { fired = true })
		_ = engine.Run()

		Expect(fired).To(BeTrue())
		Expect(engine.CurrentTime()).To(Equal(VTimeInSec(1.0)))
	})
})
