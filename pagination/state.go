package pagination

import "fmt"

// ControlState is the state of a pagination session's controls.
type ControlState int

const (
	// StateIdle means Send has not succeeded yet.
	StateIdle ControlState = iota
	// StateActive means presses on the session message are handled.
	StateActive
	// StateDisabled is terminal: the controls were disabled after the timeout.
	StateDisabled
)

var controlStateText = map[ControlState]string{
	StateIdle:     "idle",
	StateActive:   "active",
	StateDisabled: "disabled",
}

func (s ControlState) String() string {
	if text, ok := controlStateText[s]; ok {
		return text
	}
	return fmt.Sprintf("ControlState(%d)", int(s))
}

// TimeoutMode selects how the session timeout is measured.
type TimeoutMode int

const (
	// TimeoutIdle restarts the timeout after every accepted press.
	TimeoutIdle TimeoutMode = 1 + iota
	// TimeoutFixed measures the timeout once, from Send.
	TimeoutFixed
)

func (m TimeoutMode) String() string {
	switch m {
	case TimeoutIdle:
		return "idle"
	case TimeoutFixed:
		return "fixed"
	default:
		return fmt.Sprintf("TimeoutMode(%d)", int(m))
	}
}

// SessionEvent identifies what happened in a pagination session.
type SessionEvent string

const (
	SessionEventStarted      SessionEvent = "started"
	SessionEventPageChanged  SessionEvent = "page_changed"
	SessionEventEnded        SessionEvent = "ended"
	SessionEventRenderFailed SessionEvent = "render_failed"
)

func (SessionEvent) isEmitterEvent() {}

// SessionEventData is delivered to session event handlers.
type SessionEventData struct {
	Event SessionEvent
	State ControlState

	// Previous and Current are page indexes. They are equal unless Event is
	// SessionEventPageChanged.
	Previous int
	Current  int

	// Actor and Control identify the press behind a page change or a failed
	// press render. Empty for events not caused by a press.
	Actor   string
	Control string

	// Reason is set for SessionEventRenderFailed.
	Reason *ErrorInfo
}

func (SessionEventData) isEmitterData() {}

// SessionEventEmitter registers handlers for session events.
//
// Each handler has its own sequential queue: it is never called concurrently
// with itself, and it receives events in the order they happened. Different
// handlers may run concurrently. Handlers never block the session.
type SessionEventEmitter struct {
	emitter *eventEmitter
}

// On registers a handler for events of a specific kind.
func (em SessionEventEmitter) On(e SessionEvent, handle func(SessionEventData)) (off func()) {
	return em.emitter.On(e, func(data emitterData) {
		handle(data.(SessionEventData))
	})
}

// OnAll registers a handler for all session events.
func (em SessionEventEmitter) OnAll(handle func(SessionEventData)) (off func()) {
	return em.emitter.OnAll(func(data emitterData) {
		handle(data.(SessionEventData))
	})
}

// Once registers a one-off handler for events of a specific kind.
func (em SessionEventEmitter) Once(e SessionEvent, handle func(SessionEventData)) (off func()) {
	return em.emitter.Once(e, func(data emitterData) {
		handle(data.(SessionEventData))
	})
}

// OnceAll registers a one-off handler for the next session event.
func (em SessionEventEmitter) OnceAll(handle func(SessionEventData)) (off func()) {
	return em.emitter.OnceAll(func(data emitterData) {
		handle(data.(SessionEventData))
	})
}

// Off deregisters handlers for events of a specific kind.
func (em SessionEventEmitter) Off(e SessionEvent) {
	em.emitter.Off(e)
}

// OffAll deregisters all handlers.
func (em SessionEventEmitter) OffAll() {
	em.emitter.OffAll()
}
