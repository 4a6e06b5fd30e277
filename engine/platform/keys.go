package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spaghettifunk/facet/engine/core"
)

var keymap = map[glfw.Key]core.KeyCode{
	glfw.KeyBackspace: core.KEY_BACKSPACE,
	glfw.KeyTab:       core.KEY_TAB,
	glfw.KeyEnter:     core.KEY_ENTER,
	glfw.KeyEscape:    core.KEY_ESCAPE,
	glfw.KeySpace:     core.KEY_SPACE,
	glfw.KeyLeft:      core.KEY_LEFT,
	glfw.KeyUp:        core.KEY_UP,
	glfw.KeyRight:     core.KEY_RIGHT,
	glfw.KeyDown:      core.KEY_DOWN,
	glfw.KeyA:         core.KEY_A,
	glfw.KeyD:         core.KEY_D,
	glfw.KeyR:         core.KEY_R,
	glfw.KeyS:         core.KEY_S,
	glfw.KeyW:         core.KEY_W,
	glfw.KeyF1:        core.KEY_F1,
	glfw.KeyF2:        core.KEY_F2,
}

// TranslateKey maps a glfw key to the engine key code. Keys the engine does
// not know about report false.
func TranslateKey(key glfw.Key) (core.KeyCode, bool) {
	code, ok := keymap[key]
	return code, ok
}
