package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputProcessKeyFiresOnTransitionOnly(t *testing.T) {
	require.True(t, EventSystemInitialize())
	t.Cleanup(func() { _ = EventSystemShutdown() })
	require.NoError(t, InputInitialize())
	t.Cleanup(func() { _ = InputShutdown() })

	var pressed, released int
	EventRegister(EVENT_CODE_KEY_PRESSED, func(ctx EventContext) bool {
		pressed++
		assert.Equal(t, KEY_LEFT, ctx.Data.(*KeyEvent).KeyCode)
		return true
	})
	EventRegister(EVENT_CODE_KEY_RELEASED, func(ctx EventContext) bool {
		released++
		return true
	})

	require.NoError(t, InputProcessKey(KEY_LEFT, true))
	require.NoError(t, InputProcessKey(KEY_LEFT, true))
	assert.Equal(t, 1, pressed)
	assert.True(t, InputIsKeyDown(KEY_LEFT))
	assert.False(t, InputWasKeyDown(KEY_LEFT))

	require.NoError(t, InputUpdate(0))
	assert.True(t, InputWasKeyDown(KEY_LEFT))

	require.NoError(t, InputProcessKey(KEY_LEFT, false))
	assert.Equal(t, 1, released)
	assert.False(t, InputIsKeyDown(KEY_LEFT))
}
