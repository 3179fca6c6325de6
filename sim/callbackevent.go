package sim

import "log"

// A CallbackEvent invokes a zero-argument callback at its due time. It is its
// own handler, so any piece of code can schedule one without defining a new
// event type.
type CallbackEvent struct {
	EventBase
	callback func()
}

// NewCallbackEvent creates a CallbackEvent that invokes callback at time t.
func NewCallbackEvent(t VTimeInSec, callback func()) *CallbackEvent {
	e := new(CallbackEvent)
	e.ID = GetIDGenerator().Generate()
	e.time = t
	e.callback = callback
	e.handler = e
	return e
}

// Handle invokes the callback.
func (e *CallbackEvent) Handle(_ Event) error {
	e.callback()
	return nil
}

// ScheduleAfter schedules a callback to run delay seconds after the current
// time. A negative delay is a programming error; the panic fires before
// anything is pushed, leaving the queue untouched.
func ScheduleAfter(
	engine Engine,
	delay VTimeInSec,
	callback func(),
) *CallbackEvent {
	if delay < 0 {
		log.Panicf("scheduling with negative delay %.10f", delay)
	}

	evt := NewCallbackEvent(engine.CurrentTime()+delay, callback)
	engine.Schedule(evt)

	return evt
}
