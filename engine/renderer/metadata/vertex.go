package metadata

import (
	"encoding/binary"
	stdmath "math"

	"github.com/cogentcore/webgpu/wgpu"
)

/** @brief Size in bytes of a serialized Vertex2D. */
const Vertex2DSize = 4 * 4

/** @brief Size in bytes of a serialized ModelVertex. */
const ModelVertexSize = 5 * 4

/**
 * @brief A 2D vertex: clip-space position and texture coordinates.
 */
type Vertex2D struct {
	Position  [2]float32
	TexCoords [2]float32
}

/**
 * @brief A 3D vertex: model-space position and texture coordinates.
 */
type ModelVertex struct {
	Position  [3]float32
	TexCoords [2]float32
}

// Vertex2DLayout describes Vertex2D to the pipeline: position at location 0,
// texture coordinates at location 1.
func Vertex2DLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: Vertex2DSize,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
			{Format: wgpu.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},
		},
	}
}

// ModelVertexLayout describes ModelVertex to the pipeline: position at location 0,
// texture coordinates at location 1.
func ModelVertexLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: ModelVertexSize,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			{Format: wgpu.VertexFormatFloat32x2, Offset: 12, ShaderLocation: 1},
		},
	}
}

func EncodeVertices2D(vertices []Vertex2D) []byte {
	buf := make([]byte, 0, len(vertices)*Vertex2DSize)
	for _, v := range vertices {
		buf = appendFloat32s(buf, v.Position[:]...)
		buf = appendFloat32s(buf, v.TexCoords[:]...)
	}
	return buf
}

func EncodeModelVertices(vertices []ModelVertex) []byte {
	buf := make([]byte, 0, len(vertices)*ModelVertexSize)
	for _, v := range vertices {
		buf = appendFloat32s(buf, v.Position[:]...)
		buf = appendFloat32s(buf, v.TexCoords[:]...)
	}
	return buf
}

// EncodeIndices serializes indices as little-endian uint32.
func EncodeIndices(indices []uint32) []byte {
	buf := make([]byte, 0, len(indices)*4)
	for _, i := range indices {
		buf = binary.LittleEndian.AppendUint32(buf, i)
	}
	return buf
}

// EncodeFloat32 returns the 4-byte little-endian encoding of f.
func EncodeFloat32(f float32) []byte {
	return appendFloat32s(make([]byte, 0, 4), f)
}

func appendFloat32s(buf []byte, values ...float32) []byte {
	for _, f := range values {
		buf = binary.LittleEndian.AppendUint32(buf, stdmath.Float32bits(f))
	}
	return buf
}
