package sim

import (
	"log"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("EventLogger", func() {
	It("should log each event once, before it is handled", func() {
		engine := NewSerialEngine()

		var buf strings.Builder
		engine.AcceptHook(NewEventLogger(log.New(&buf, "", 0)))

		ScheduleAfter(engine, 1.5, func() {})

		_ = engine.Run()

		out := buf.String()
		Expect(strings.Count(out, "\n")).To(Equal(1))
		Expect(out).To(ContainSubstring("1.5000000000"))
		Expect(out).To(ContainSubstring("CallbackEvent"))
	})
})
