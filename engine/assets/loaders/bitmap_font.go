package loaders

import (
	"fmt"
	"image"

	"github.com/fzipp/bmfont"
	"github.com/spaghettifunk/facet/engine/core"
)

/**
 * @brief A single glyph cut out of a bitmap font page.
 */
type Glyph struct {
	/** @brief The codepoint of the glyph. */
	Codepoint rune
	/** @brief The glyph pixels, sized to the glyph rectangle. */
	Pixels   *image.RGBA
	XOffset  int
	YOffset  int
	XAdvance int
	/** @brief The face name from the font descriptor. */
	Face string
	/** @brief The line height of the font, in pixels. */
	LineHeight int
}

// LoadGlyph reads an AngelCode BMFont descriptor and returns the pixels of
// codepoint, cut from the page sheet that holds it.
func LoadGlyph(fntPath string, codepoint rune) (*Glyph, error) {
	font, err := bmfont.Load(fntPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", core.ErrTextureDecode, err.Error())
	}
	return glyphFromFont(font, codepoint)
}

// glyphFromFont cuts codepoint out of the page sheets bmfont already decoded.
func glyphFromFont(font *bmfont.BitmapFont, codepoint rune) (*Glyph, error) {
	descriptor := font.Descriptor

	char, ok := descriptor.Chars[codepoint]
	if !ok {
		return nil, fmt.Errorf("font '%s' has no glyph for %q", descriptor.Info.Face, codepoint)
	}
	if char.Width <= 0 || char.Height <= 0 {
		return nil, fmt.Errorf("glyph %q of font '%s' is empty", codepoint, descriptor.Info.Face)
	}

	sheet, ok := font.PageSheets[char.Page]
	if !ok || sheet == nil {
		return nil, fmt.Errorf("font '%s' has no page %d", descriptor.Info.Face, char.Page)
	}

	rect := char.Bounds()
	if !rect.In(sheet.Bounds()) {
		return nil, fmt.Errorf("glyph %q lies outside page %d", codepoint, char.Page)
	}

	core.LogDebug("loaded glyph %q from font '%s' (%dx%d)", codepoint, descriptor.Info.Face, char.Width, char.Height)
	return &Glyph{
		Codepoint:  codepoint,
		Pixels:     toRGBA(sheet, rect),
		XOffset:    char.XOffset,
		YOffset:    char.YOffset,
		XAdvance:   char.XAdvance,
		Face:       descriptor.Info.Face,
		LineHeight: descriptor.Common.LineHeight,
	}, nil
}
