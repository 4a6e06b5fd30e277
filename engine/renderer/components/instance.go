package components

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/spaghettifunk/facet/engine/math"
)

const (
	/** @brief Cubes per row of the default grid. */
	NumInstancesPerRow uint32 = 10
	/** @brief Size in bytes of one serialized InstanceRaw. */
	InstanceRawSize = 16 * 4
	/** @brief First shader location of the instance model matrix. */
	InstanceShaderLocation uint32 = 5
)

/**
 * @brief Placement of one copy of an instanced mesh.
 */
type Instance struct {
	Position math.Vec3
	Rotation math.Quaternion
}

/** @brief The per-instance data read by the vertex shader. */
type InstanceRaw struct {
	Model math.Mat4
}

// ToRaw returns translation(position) * rotation.
func (i Instance) ToRaw() InstanceRaw {
	transform := math.TransformFromPositionRotation(i.Position, i.Rotation)
	return InstanceRaw{Model: transform.GetLocal()}
}

func (r InstanceRaw) Bytes() []byte {
	return AppendMat4(make([]byte, 0, InstanceRawSize), r.Model)
}

func EncodeInstances(instances []Instance) []byte {
	buf := make([]byte, 0, len(instances)*InstanceRawSize)
	for _, instance := range instances {
		buf = AppendMat4(buf, instance.ToRaw().Model)
	}
	return buf
}

// InstanceBufferLayout exposes the model matrix as four Float32x4 columns at
// shader locations 5 to 8, advanced once per instance.
func InstanceBufferLayout() wgpu.VertexBufferLayout {
	attributes := make([]wgpu.VertexAttribute, 4)
	for c := range attributes {
		attributes[c] = wgpu.VertexAttribute{
			Format:         wgpu.VertexFormatFloat32x4,
			Offset:         uint64(c * 16),
			ShaderLocation: InstanceShaderLocation + uint32(c),
		}
	}
	return wgpu.VertexBufferLayout{
		ArrayStride: InstanceRawSize,
		StepMode:    wgpu.VertexStepModeInstance,
		Attributes:  attributes,
	}
}

/**
 * @brief A rectangular grid of instances on a horizontal plane.
 */
type InstanceGrid struct {
	/** @brief Number of rows along z. */
	Rows uint32
	/** @brief Number of instances per row along x. */
	PerRow uint32
	/** @brief Distance between neighbours on both axes. */
	Spacing float32
	/** @brief Height of the plane. */
	Y float32
	/** @brief Subtracted from every position. */
	Displacement math.Vec3
}

func DefaultInstanceGrid(rows uint32) InstanceGrid {
	half := float32(NumInstancesPerRow) * 0.5
	return InstanceGrid{
		Rows:         rows,
		PerRow:       NumInstancesPerRow,
		Spacing:      3.0,
		Y:            -2.0,
		Displacement: math.NewVec3(half, 0.0, half),
	}
}

// Generate lays the instances out row by row. Every instance is tilted 45
// degrees around the axis pointing at it from the origin, except one sitting
// exactly at the origin, which gets a zero-angle rotation around +Z.
func (g InstanceGrid) Generate() []Instance {
	instances := make([]Instance, 0, g.Rows*g.PerRow)
	for z := uint32(0); z < g.Rows; z++ {
		for x := uint32(0); x < g.PerRow; x++ {
			position := math.NewVec3(float32(x)*g.Spacing, g.Y, float32(z)*g.Spacing).Sub(g.Displacement)

			var rotation math.Quaternion
			if position.IsZero() {
				rotation = math.NewQuatFromAxisAngle(math.NewVec3(0.0, 0.0, 1.0), 0.0)
			} else {
				rotation = math.NewQuatFromAxisAngle(position.Normalize(), math.DegToRad(45.0))
			}
			instances = append(instances, Instance{Position: position, Rotation: rotation})
		}
	}
	return instances
}

// CreateInstances returns the default grid: rows * NumInstancesPerRow cubes.
func CreateInstances(rows uint32) []Instance {
	return DefaultInstanceGrid(rows).Generate()
}
