package loaders

import (
	"image"
	"image/color"
	"testing"

	"github.com/fzipp/bmfont"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadGlyph(t *testing.T) {
	glyph, err := LoadGlyph("testdata/glyphs.fnt", 'A')
	require.NoError(t, err)

	assert.Equal(t, 'A', glyph.Codepoint)
	assert.Equal(t, "Facet Test", glyph.Face)
	assert.Equal(t, 8, glyph.LineHeight)
	assert.Equal(t, 6, glyph.XAdvance)
	assert.Equal(t, 2, glyph.YOffset)
	assert.Equal(t, 5, glyph.Pixels.Bounds().Dx())
	assert.Equal(t, 5, glyph.Pixels.Bounds().Dy())

	white := color.RGBA{255, 255, 255, 255}
	assert.Equal(t, white, glyph.Pixels.RGBAAt(2, 0))
	assert.Equal(t, white, glyph.Pixels.RGBAAt(1, 4))
	assert.Equal(t, color.RGBA{}, glyph.Pixels.RGBAAt(0, 0))
}

func TestLoadGlyphCropsItsOwnRectangle(t *testing.T) {
	glyph, err := LoadGlyph("testdata/glyphs.fnt", 'B')
	require.NoError(t, err)

	assert.Equal(t, 4, glyph.Pixels.Bounds().Dx())
	assert.Equal(t, 6, glyph.Pixels.Bounds().Dy())
	for y := 0; y < 6; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, color.RGBA{255, 0, 0, 255}, glyph.Pixels.RGBAAt(x, y))
		}
	}
}

func TestLoadGlyphMissing(t *testing.T) {
	_, err := LoadGlyph("testdata/glyphs.fnt", 'Z')
	assert.Error(t, err)

	_, err = LoadGlyph("testdata/nope.fnt", 'A')
	assert.Error(t, err)
}

func TestGlyphFromDecodedSheet(t *testing.T) {
	sheet := image.NewRGBA(image.Rect(0, 0, 8, 8))
	green := color.RGBA{0, 255, 0, 255}
	sheet.SetRGBA(5, 6, green)

	font := &bmfont.BitmapFont{
		Descriptor: &bmfont.Descriptor{
			Info:   bmfont.Info{Face: "Memory"},
			Common: bmfont.Common{LineHeight: 8},
			Chars: map[rune]bmfont.Char{
				'x': {ID: 'x', X: 4, Y: 4, Width: 3, Height: 3, XAdvance: 4, Page: 1},
				'y': {ID: 'y', X: 0, Y: 0, Width: 2, Height: 2, Page: 7},
			},
		},
		PageSheets: map[int]image.Image{1: sheet},
	}

	glyph, err := glyphFromFont(font, 'x')
	require.NoError(t, err)
	assert.Equal(t, 3, glyph.Pixels.Bounds().Dx())
	assert.Equal(t, green, glyph.Pixels.RGBAAt(1, 2))
	assert.Equal(t, "Memory", glyph.Face)

	_, err = glyphFromFont(font, 'y')
	assert.Error(t, err)
}
