package metadata

import (
	"encoding/binary"
	"image"
	stdmath "math"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/spaghettifunk/facet/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatAt(buf []byte, i int) float32 {
	return stdmath.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
}

func TestEncodeVertices2D(t *testing.T) {
	buf := EncodeVertices2D([]Vertex2D{
		{Position: [2]float32{-0.5, 0.25}, TexCoords: [2]float32{0, 1}},
		{Position: [2]float32{1, 2}, TexCoords: [2]float32{3, 4}},
	})
	require.Len(t, buf, 2*Vertex2DSize)
	assert.Equal(t, float32(-0.5), floatAt(buf, 0))
	assert.Equal(t, float32(0.25), floatAt(buf, 1))
	assert.Equal(t, float32(1), floatAt(buf, 3))
	assert.Equal(t, float32(4), floatAt(buf, 7))
}

func TestEncodeModelVertices(t *testing.T) {
	buf := EncodeModelVertices([]ModelVertex{
		{Position: [3]float32{1, 2, 3}, TexCoords: [2]float32{0.5, 0.75}},
	})
	require.Len(t, buf, ModelVertexSize)
	assert.Equal(t, float32(3), floatAt(buf, 2))
	assert.Equal(t, float32(0.75), floatAt(buf, 4))

	layout := ModelVertexLayout()
	assert.EqualValues(t, ModelVertexSize, layout.ArrayStride)
	require.Len(t, layout.Attributes, 2)
	assert.EqualValues(t, 12, layout.Attributes[1].Offset)
	assert.EqualValues(t, 1, layout.Attributes[1].ShaderLocation)
}

func TestEncodeIndicesAndFloat(t *testing.T) {
	assert.Equal(t, []byte{1, 0, 0, 0, 0, 1, 0, 0}, EncodeIndices([]uint32{1, 256}))

	b := EncodeFloat32(1.5)
	require.Len(t, b, 4)
	assert.Equal(t, []byte{0x00, 0x00, 0xc0, 0x3f}, b)
}

func TestMeshValidate(t *testing.T) {
	quad := []Vertex2D{{}, {}, {}, {}}

	ok := NewMesh2D("quad", quad, []uint32{0, 1, 3, 1, 2, 3})
	assert.NoError(t, ok.Validate())

	empty := NewMesh2D("empty", nil, nil)
	assert.ErrorIs(t, empty.Validate(), core.ErrInvalidMesh)

	ragged := NewMesh2D("ragged", quad, []uint32{0, 1})
	assert.ErrorIs(t, ragged.Validate(), core.ErrInvalidMesh)

	outOfRange := NewMesh2D("range", quad, []uint32{0, 1, 4})
	assert.ErrorIs(t, outOfRange.Validate(), core.ErrInvalidMesh)

	short := NewMesh2D("short", quad, []uint32{0, 1, 2})
	short.Vertices = short.Vertices[:8]
	assert.ErrorIs(t, short.Validate(), core.ErrInvalidMesh)
}

func TestMaterialValidate(t *testing.T) {
	m := MaterialConfig{Name: "none"}
	assert.ErrorIs(t, m.Validate(), core.ErrTextureDecode)

	m.Pixels = image.NewRGBA(image.Rect(0, 0, 2, 2))
	assert.NoError(t, m.Validate())
}

func TestRenderLayerString(t *testing.T) {
	assert.Equal(t, "world", RenderLayerWorld.String())
	assert.Equal(t, "overlay", RenderLayerOverlay.String())
}

func TestSameLayout(t *testing.T) {
	assert.True(t, SameLayout(Vertex2DLayout(), Vertex2DLayout()))
	assert.False(t, SameLayout(Vertex2DLayout(), ModelVertexLayout()))

	moved := Vertex2DLayout()
	moved.Attributes = append([]wgpu.VertexAttribute(nil), moved.Attributes...)
	moved.Attributes[1].ShaderLocation = 4
	assert.False(t, SameLayout(Vertex2DLayout(), moved))

	instanced := Vertex2DLayout()
	instanced.StepMode = wgpu.VertexStepModeInstance
	assert.False(t, SameLayout(Vertex2DLayout(), instanced))
}
