package components

import (
	"image"
	"image/color"

	"github.com/spaghettifunk/facet/engine/assets"
	"github.com/spaghettifunk/facet/engine/core"
	"github.com/spaghettifunk/facet/engine/math"
	"github.com/spaghettifunk/facet/engine/renderer/metadata"
)

const (
	PentagonName string = "pentagon"
	CubeName     string = "cube"
	CharName     string = "char"
)

var pentagonVertices = []metadata.Vertex2D{
	{Position: [2]float32{-0.0868241, 0.49240386}, TexCoords: [2]float32{0.4131759, 0.00759614}},
	{Position: [2]float32{-0.49513406, 0.06958647}, TexCoords: [2]float32{0.0048659444, 0.43041354}},
	{Position: [2]float32{-0.21918549, -0.44939706}, TexCoords: [2]float32{0.28081453, 0.949397}},
	{Position: [2]float32{0.35966998, -0.3473291}, TexCoords: [2]float32{0.85967, 0.84732914}},
	{Position: [2]float32{0.44147372, 0.2347359}, TexCoords: [2]float32{0.9414737, 0.2652641}},
}

var pentagonIndices = []uint32{0, 1, 4, 1, 2, 4, 2, 3, 4}

// NewPentagonConfig describes the textured pentagon of the world pass. It is
// drawn through the camera and ignores the depth buffer.
func NewPentagonConfig(texture *image.RGBA) *RenderableConfig {
	return &RenderableConfig{
		Name:   PentagonName,
		Layer:  metadata.RenderLayerWorld,
		Meshes: []metadata.MeshConfig{metadata.NewMesh2D(PentagonName, pentagonVertices, pentagonIndices)},
		Material: metadata.MaterialConfig{
			Name:   PentagonName,
			Pixels: texture,
			Filter: metadata.TextureFilterModeLinear,
		},
		Pipeline: metadata.PipelineConfig{
			Name:   PentagonName,
			Shader: assets.PentagonShader,
			Cull:   metadata.FaceCullModeBack,
			Blend:  metadata.BlendModeReplace,
		},
		UsesCamera: true,
	}
}

// NewCubeConfig describes the instanced cube grid: rows * NumInstancesPerRow
// unit cubes, animated by the elapsed time.
func NewCubeConfig(texture *image.RGBA, rows uint32) *RenderableConfig {
	return &RenderableConfig{
		Name:   CubeName,
		Layer:  metadata.RenderLayerWorld,
		Meshes: []metadata.MeshConfig{GenerateCubeMesh(CubeName, 1.0, 1.0, 1.0, 1.0, 1.0)},
		Material: metadata.MaterialConfig{
			Name:   CubeName,
			Pixels: texture,
			Filter: metadata.TextureFilterModeLinear,
		},
		Pipeline: metadata.PipelineConfig{
			Name:       CubeName,
			Shader:     assets.CubeShader,
			Cull:       metadata.FaceCullModeBack,
			DepthTest:  true,
			DepthWrite: true,
			Blend:      metadata.BlendModeReplace,
		},
		Instances:       CreateInstances(rows),
		UsesCamera:      true,
		UsesElapsedTime: true,
	}
}

/** @brief Placement of the char quad in clip space. */
type CharQuad struct {
	/** @brief Half extent of the quad. */
	Scale float32
	/** @brief Center of the quad. */
	Offset math.Vec2
}

func DefaultCharQuad() CharQuad {
	return CharQuad{Scale: 0.9}
}

// NewCharConfig describes the glyph quad of the overlay pass. The glyph is
// sampled with nearest filtering and alpha-blended over the world pass.
func NewCharConfig(glyph *image.RGBA, quad CharQuad) *RenderableConfig {
	s, ox, oy := quad.Scale, quad.Offset.X, quad.Offset.Y
	vertices := []metadata.ModelVertex{
		{Position: [3]float32{ox - s, oy + s, 0.0}, TexCoords: [2]float32{0.0, 0.0}},
		{Position: [3]float32{ox - s, oy - s, 0.0}, TexCoords: [2]float32{0.0, 1.0}},
		{Position: [3]float32{ox + s, oy - s, 0.0}, TexCoords: [2]float32{1.0, 1.0}},
		{Position: [3]float32{ox + s, oy + s, 0.0}, TexCoords: [2]float32{1.0, 0.0}},
	}
	indices := []uint32{0, 1, 3, 1, 2, 3}

	return &RenderableConfig{
		Name:   CharName,
		Layer:  metadata.RenderLayerOverlay,
		Meshes: []metadata.MeshConfig{metadata.NewModelMesh(CharName, vertices, indices)},
		Material: metadata.MaterialConfig{
			Name:   CharName,
			Pixels: glyph,
			Filter: metadata.TextureFilterModeNearest,
		},
		Pipeline: metadata.PipelineConfig{
			Name:   CharName,
			Shader: assets.CharShader,
			Cull:   metadata.FaceCullModeBack,
			Blend:  metadata.BlendModeAlphaOver,
		},
	}
}

var glyphPixelsA = [][2]int{{1, 1}, {1, 2}, {1, 3}, {1, 4}, {2, 0}, {2, 2}, {3, 1}, {3, 2}, {3, 3}, {3, 4}}

// DefaultGlyph returns the built-in 5x5 "A": white strokes on a translucent
// black background.
func DefaultGlyph() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 5, 5))
	background := color.RGBA{R: 0, G: 0, B: 0, A: 210}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			img.SetRGBA(x, y, background)
		}
	}
	for _, p := range glyphPixelsA {
		img.SetRGBA(p[0], p[1], color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return img
}

// GenerateCubeMesh builds an axis-aligned box centered on the origin: 4 vertices
// and 2 counter-clockwise triangles per face, texture coordinates tiled tileX by
// tileY times.
func GenerateCubeMesh(name string, width, height, depth, tileX, tileY float32) metadata.MeshConfig {
	if width == 0 {
		core.LogWarn("Width must be nonzero. Defaulting to one.")
		width = 1.0
	}
	if height == 0 {
		core.LogWarn("Height must be nonzero. Defaulting to one.")
		height = 1.0
	}
	if depth == 0 {
		core.LogWarn("Depth must be nonzero. Defaulting to one.")
		depth = 1.0
	}
	if tileX == 0 {
		core.LogWarn("tileX must be nonzero. Defaulting to one.")
		tileX = 1.0
	}
	if tileY == 0 {
		core.LogWarn("tileY must be nonzero. Defaulting to one.")
		tileY = 1.0
	}

	min_x, max_x := -width*0.5, width*0.5
	min_y, max_y := -height*0.5, height*0.5
	min_z, max_z := -depth*0.5, depth*0.5

	faces := [6][4][3]float32{
		// Front
		{{min_x, min_y, max_z}, {max_x, max_y, max_z}, {min_x, max_y, max_z}, {max_x, min_y, max_z}},
		// Back
		{{max_x, min_y, min_z}, {min_x, max_y, min_z}, {max_x, max_y, min_z}, {min_x, min_y, min_z}},
		// Left
		{{min_x, min_y, min_z}, {min_x, max_y, max_z}, {min_x, max_y, min_z}, {min_x, min_y, max_z}},
		// Right
		{{max_x, min_y, max_z}, {max_x, max_y, min_z}, {max_x, max_y, max_z}, {max_x, min_y, min_z}},
		// Bottom
		{{max_x, min_y, max_z}, {min_x, min_y, min_z}, {max_x, min_y, min_z}, {min_x, min_y, max_z}},
		// Top
		{{min_x, max_y, max_z}, {max_x, max_y, min_z}, {min_x, max_y, min_z}, {max_x, max_y, max_z}},
	}
	// Texture v grows downwards, so the bottom edge of a face samples v = tileY.
	uvs := [4][2]float32{{0.0, tileY}, {tileX, 0.0}, {0.0, 0.0}, {tileX, tileY}}

	vertices := make([]metadata.ModelVertex, 0, 4*6)
	indices := make([]uint32, 0, 6*6)
	for i, face := range faces {
		for v := range face {
			vertices = append(vertices, metadata.ModelVertex{Position: face[v], TexCoords: uvs[v]})
		}
		v_offset := uint32(i * 4)
		indices = append(indices,
			v_offset+0, v_offset+1, v_offset+2,
			v_offset+0, v_offset+3, v_offset+1)
	}

	return metadata.NewModelMesh(name, vertices, indices)
}
