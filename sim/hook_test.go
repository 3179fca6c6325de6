package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type positionRecordingHook struct {
	positions []*HookPos
}

func (h *positionRecordingHook) Func(ctx HookCtx) {
	h.positions = append(h.positions, ctx.Pos)
}

var _ = Describe("Hook", func() {
	var engine *SerialEngine

	BeforeEach(func() {
		engine = NewSerialEngine()
	})

	It("should invoke a registered hook around every event", func() {
		hook := &positionRecordingHook{}
		engine.AcceptHook(hook)

		ScheduleAfter(engine, 1.0, func() {})
		ScheduleAfter(engine, 2.0, func() {})

		_ = engine.Run()

		Expect(hook.positions).To(Equal([]*HookPos{
			HookPosBeforeEvent, HookPosAfterEvent,
			HookPosBeforeEvent, HookPosAfterEvent,
		}))
	})

	It("should pass the event and the engine to the hook", func() {
		var ctx HookCtx
		engine.AcceptHook(hookFunc(func(c HookCtx) {
			if c.Pos == HookPosBeforeEvent {
				ctx = c
			}
		}))

		evt := ScheduleAfter(engine, 1.0, func() {})

		_ = engine.Run()

		Expect(ctx.Domain).To(BeIdenticalTo(engine))
		Expect(ctx.Item).To(BeIdenticalTo(evt))
	})
})

type hookFunc func(ctx HookCtx)

func (f hookFunc) Func(ctx HookCtx) {
	f(ctx)
}
