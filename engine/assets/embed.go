package assets

import (
	"bytes"
	_ "embed"
	"image"

	"github.com/spaghettifunk/facet/engine/assets/loaders"
)

var (
	//go:embed shaders/pentagon.wgsl
	PentagonShader string

	//go:embed shaders/cube.wgsl
	CubeShader string

	//go:embed shaders/char.wgsl
	CharShader string

	//go:embed textures/happy-tree.png
	happyTreePNG []byte
)

// DiffuseTexture decodes the built-in texture shared by the pentagon and the cubes.
func DiffuseTexture() (*image.RGBA, error) {
	return loaders.DecodeTexture(bytes.NewReader(happyTreePNG))
}
