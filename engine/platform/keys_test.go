package platform

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"

	"github.com/spaghettifunk/facet/engine/core"
)

func TestTranslateKey(t *testing.T) {
	code, ok := TranslateKey(glfw.KeyEscape)
	assert.True(t, ok)
	assert.Equal(t, core.KEY_ESCAPE, code)

	code, ok = TranslateKey(glfw.KeyLeft)
	assert.True(t, ok)
	assert.Equal(t, core.KEY_LEFT, code)

	_, ok = TranslateKey(glfw.KeyF12)
	assert.False(t, ok)
}

func TestKeymapHasNoDuplicateCodes(t *testing.T) {
	seen := make(map[core.KeyCode]glfw.Key)
	for key, code := range keymap {
		other, dup := seen[code]
		assert.False(t, dup, "key code %d mapped from %d and %d", code, key, other)
		seen[code] = key
	}
}
