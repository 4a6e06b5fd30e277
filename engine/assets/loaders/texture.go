package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"github.com/spaghettifunk/facet/engine/core"
)

// DecodeTexture decodes a PNG, JPEG or BMP image into tightly packed RGBA8
// with its origin at (0, 0).
func DecodeTexture(r io.Reader) (*image.RGBA, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", core.ErrTextureDecode, err.Error())
	}
	core.LogDebug("decoded %s texture %dx%d", format, img.Bounds().Dx(), img.Bounds().Dy())
	return toRGBA(img, img.Bounds()), nil
}

func LoadTexture(path string) (*image.RGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", core.ErrTextureDecode, err.Error())
	}
	defer file.Close()

	return DecodeTexture(file)
}

// toRGBA copies the rect region of src into a new image starting at (0, 0).
func toRGBA(src image.Image, rect image.Rectangle) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(dst, dst.Bounds(), src, rect.Min, draw.Src)
	return dst
}
