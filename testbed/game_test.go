package testbed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/facet/engine"
	"github.com/spaghettifunk/facet/engine/core"
	"github.com/spaghettifunk/facet/engine/math"
	"github.com/spaghettifunk/facet/engine/renderer/components"
)

func TestStepEye(t *testing.T) {
	eye := math.NewVec3(0, 1.3, 6)

	tests := []struct {
		key  core.KeyCode
		want math.Vec3
	}{
		{core.KEY_LEFT, math.NewVec3(-0.1, 1.3, 6)},
		{core.KEY_RIGHT, math.NewVec3(0.1, 1.3, 6)},
		{core.KEY_UP, math.NewVec3(0, 1.3, 5.98)},
		{core.KEY_DOWN, math.NewVec3(0, 1.3, 6.02)},
	}
	for _, tt := range tests {
		got, moved := StepEye(eye, tt.key)
		assert.True(t, moved)
		assert.InDelta(t, tt.want.X, got.X, 1e-6)
		assert.InDelta(t, tt.want.Y, got.Y, 1e-6)
		assert.InDelta(t, tt.want.Z, got.Z, 1e-6)
	}

	got, moved := StepEye(eye, core.KEY_W)
	assert.False(t, moved)
	assert.Equal(t, eye, got)
}

func TestLoadSceneAssets(t *testing.T) {
	scene := engine.DefaultApplicationConfig().Scene

	loaded, err := loadSceneAssets(scene)
	require.NoError(t, err)
	assert.Equal(t, 64, loaded.texture.Bounds().Dx())
	assert.Equal(t, components.DefaultGlyph().Pix, loaded.glyph.Pix)

	scene.GlyphFont = "../engine/assets/loaders/testdata/glyphs.fnt"
	scene.GlyphRune = "B"
	loaded, err = loadSceneAssets(scene)
	require.NoError(t, err)
	assert.Equal(t, 4, loaded.glyph.Bounds().Dx())
	assert.Equal(t, 6, loaded.glyph.Bounds().Dy())

	scene.GlyphFont = "../engine/assets/loaders/testdata/missing.fnt"
	_, err = loadSceneAssets(scene)
	assert.Error(t, err)
}
