package core

import "sync"

// Key code definitions
type KeyCode uint16

const (
	KEY_BACKSPACE KeyCode = 0x08
	KEY_TAB       KeyCode = 0x09
	KEY_ENTER     KeyCode = 0x0D
	KEY_ESCAPE    KeyCode = 0x1B
	KEY_SPACE     KeyCode = 0x20
	KEY_LEFT      KeyCode = 0x25
	KEY_UP        KeyCode = 0x26
	KEY_RIGHT     KeyCode = 0x27
	KEY_DOWN      KeyCode = 0x28
	KEY_A         KeyCode = 0x41
	KEY_D         KeyCode = 0x44
	KEY_R         KeyCode = 0x52
	KEY_S         KeyCode = 0x53
	KEY_W         KeyCode = 0x57
	KEY_F1        KeyCode = 0x70
	KEY_F2        KeyCode = 0x71
	KEYS_MAX_KEYS KeyCode = 0xFF
)

// Keyboard state structure
type KeyboardState struct {
	Keys [256]bool
}

// Input state structure that holds current and previous keyboard states
type InputState struct {
	KeyboardCurrent  KeyboardState
	KeyboardPrevious KeyboardState
}

var inputMu sync.Mutex
var inputState *InputState

func InputInitialize() error {
	inputMu.Lock()
	inputState = &InputState{}
	inputMu.Unlock()
	LogInfo("Input subsystem initialized.")
	return nil
}

func InputShutdown() error {
	inputMu.Lock()
	inputState = nil
	inputMu.Unlock()
	return nil
}

// InputUpdate copies the current state into the previous one. Call once at
// the end of every frame.
func InputUpdate(deltaTime float64) error {
	inputMu.Lock()
	defer inputMu.Unlock()
	if inputState == nil {
		return nil
	}
	inputState.KeyboardPrevious = inputState.KeyboardCurrent
	return nil
}

func InputIsKeyDown(key KeyCode) bool {
	inputMu.Lock()
	defer inputMu.Unlock()
	if inputState == nil {
		return false
	}
	return inputState.KeyboardCurrent.Keys[key]
}

func InputWasKeyDown(key KeyCode) bool {
	inputMu.Lock()
	defer inputMu.Unlock()
	if inputState == nil {
		return false
	}
	return inputState.KeyboardPrevious.Keys[key]
}

// InputProcessKey records a key transition and fires KEY_PRESSED or
// KEY_RELEASED when the state actually changed.
func InputProcessKey(key KeyCode, pressed bool) error {
	inputMu.Lock()
	if inputState == nil || inputState.KeyboardCurrent.Keys[key] == pressed {
		inputMu.Unlock()
		return nil
	}
	inputState.KeyboardCurrent.Keys[key] = pressed
	inputMu.Unlock()

	code := EVENT_CODE_KEY_RELEASED
	if pressed {
		code = EVENT_CODE_KEY_PRESSED
	}
	EventFire(EventContext{
		Type: code,
		Data: &KeyEvent{KeyCode: key},
	})
	return nil
}
