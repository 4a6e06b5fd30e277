package metadata

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/spaghettifunk/facet/engine/core"
)

/**
 * @brief Represents the configuration for a mesh: serialized vertices,
 * triangle-list indices and the vertex buffer layout they follow.
 */
type MeshConfig struct {
	/** @brief The Name of the mesh. */
	Name string
	/** @brief Vertices already serialized according to Layout. */
	Vertices []byte
	/** @brief The number of vertices. */
	VertexCount uint32
	/** @brief Triangle list indices. */
	Indices []uint32
	/** @brief How the pipeline reads Vertices. */
	Layout wgpu.VertexBufferLayout
}

func NewMesh2D(name string, vertices []Vertex2D, indices []uint32) MeshConfig {
	return MeshConfig{
		Name:        name,
		Vertices:    EncodeVertices2D(vertices),
		VertexCount: uint32(len(vertices)),
		Indices:     indices,
		Layout:      Vertex2DLayout(),
	}
}

func NewModelMesh(name string, vertices []ModelVertex, indices []uint32) MeshConfig {
	return MeshConfig{
		Name:        name,
		Vertices:    EncodeModelVertices(vertices),
		VertexCount: uint32(len(vertices)),
		Indices:     indices,
		Layout:      ModelVertexLayout(),
	}
}

// SameLayout reports whether a and b describe the same vertex bytes: stride,
// step mode and every attribute.
func SameLayout(a, b wgpu.VertexBufferLayout) bool {
	if a.ArrayStride != b.ArrayStride || a.StepMode != b.StepMode || len(a.Attributes) != len(b.Attributes) {
		return false
	}
	for i := range a.Attributes {
		if a.Attributes[i] != b.Attributes[i] {
			return false
		}
	}
	return true
}

// Validate rejects meshes that cannot be drawn as an indexed triangle list.
func (m *MeshConfig) Validate() error {
	if m.VertexCount == 0 || len(m.Indices) == 0 {
		return fmt.Errorf("%w: %s has no geometry", core.ErrInvalidMesh, m.Name)
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: %s index count %d is not a multiple of 3", core.ErrInvalidMesh, m.Name, len(m.Indices))
	}
	if m.Layout.ArrayStride == 0 || uint64(len(m.Vertices)) != m.Layout.ArrayStride*uint64(m.VertexCount) {
		return fmt.Errorf("%w: %s vertex data is %d bytes, expected %d vertices of stride %d",
			core.ErrInvalidMesh, m.Name, len(m.Vertices), m.VertexCount, m.Layout.ArrayStride)
	}
	for i, idx := range m.Indices {
		if idx >= m.VertexCount {
			return fmt.Errorf("%w: %s index %d at position %d is out of range", core.ErrInvalidMesh, m.Name, idx, i)
		}
	}
	return nil
}
