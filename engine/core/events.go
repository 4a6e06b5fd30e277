package core

import "sync"

type EventCode uint16

// System internal event codes. Application should use codes beyond 255.
const (
	// Shuts the application down on the next frame.
	EVENT_CODE_APPLICATION_QUIT EventCode = 0x01

	// Keyboard key pressed. Data: *KeyEvent
	EVENT_CODE_KEY_PRESSED EventCode = 0x02

	// Keyboard key released. Data: *KeyEvent
	EVENT_CODE_KEY_RELEASED EventCode = 0x03

	// Resized/resolution changed from the OS. Data: *SystemEvent
	EVENT_CODE_RESIZED EventCode = 0x08

	// The window needs to be drawn again.
	EVENT_CODE_REDRAW_REQUESTED EventCode = 0x09

	MAX_EVENT_CODE EventCode = 0xFF
)

type EventContext struct {
	Type EventCode
	Data interface{}
}

type KeyEvent struct {
	KeyCode KeyCode
}

type SystemEvent struct {
	WindowWidth  uint32
	WindowHeight uint32
}

// FnOnEvent handles an event. Returning true marks the event as handled and
// stops it from reaching later listeners.
type FnOnEvent func(context EventContext) bool

type eventSystemState struct {
	mu         sync.RWMutex
	registered map[EventCode][]FnOnEvent
}

var eventState *eventSystemState

func EventSystemInitialize() bool {
	if eventState != nil {
		return false
	}
	eventState = &eventSystemState{
		registered: make(map[EventCode][]FnOnEvent),
	}
	return true
}

func EventSystemShutdown() error {
	if eventState == nil {
		return nil
	}
	eventState.mu.Lock()
	eventState.registered = nil
	eventState.mu.Unlock()
	eventState = nil
	return nil
}

// EventRegister adds a listener for code. Listeners run in registration order.
func EventRegister(code EventCode, onEvent FnOnEvent) bool {
	if eventState == nil || onEvent == nil {
		return false
	}
	eventState.mu.Lock()
	defer eventState.mu.Unlock()
	eventState.registered[code] = append(eventState.registered[code], onEvent)
	return true
}

// EventFire dispatches the event synchronously on the calling goroutine.
// Returns true if a listener handled it.
func EventFire(context EventContext) bool {
	if eventState == nil {
		return false
	}
	eventState.mu.RLock()
	listeners := append([]FnOnEvent(nil), eventState.registered[context.Type]...)
	eventState.mu.RUnlock()

	for _, l := range listeners {
		if l(context) {
			return true
		}
	}
	return false
}
