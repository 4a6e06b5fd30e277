package components

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/google/uuid"
	"github.com/spaghettifunk/facet/engine/core"
	"github.com/spaghettifunk/facet/engine/renderer/metadata"
)

// Bind group slots shared by every shader.
const (
	TextureBindGroup     uint32 = 0
	CameraBindGroup      uint32 = 1
	ElapsedTimeBindGroup uint32 = 2
)

// Vertex buffer slots.
const (
	MeshVertexSlot     uint32 = 0
	InstanceVertexSlot uint32 = 1
)

/** @brief GPU buffers of one mesh. */
type MeshBuffers struct {
	Vertex     *wgpu.Buffer
	Index      *wgpu.Buffer
	IndexCount uint32
}

/**
 * @brief The GPU resources a backend created for a RenderableConfig.
 * Bind groups and buffers the config does not ask for stay nil.
 */
type ObjectResources struct {
	Pipeline         *wgpu.RenderPipeline
	TextureBindGroup *wgpu.BindGroup
	CameraBuffer     *wgpu.Buffer
	CameraBindGroup  *wgpu.BindGroup
	TimeBuffer       *wgpu.Buffer
	TimeBindGroup    *wgpu.BindGroup
	InstanceBuffer   *wgpu.Buffer
	Meshes           []MeshBuffers
	/** @brief Releases every handle above. Called once by Destroy. */
	Release func()
}

/**
 * @brief The single Renderable implementation. What it draws is fixed at
 * construction by its config and resources.
 */
type Object struct {
	id            uuid.UUID
	name          string
	layer         metadata.RenderLayer
	instanceCount uint32
	cameraUniform CameraUniform
	res           ObjectResources
	destroyed     bool
}

var _ Renderable = (*Object)(nil)

func NewObject(config *RenderableConfig, res ObjectResources) (*Object, error) {
	if res.Pipeline == nil || res.TextureBindGroup == nil {
		return nil, fmt.Errorf("object %s: missing pipeline or texture bind group", config.Name)
	}
	if len(res.Meshes) != len(config.Meshes) {
		return nil, fmt.Errorf("%w: object %s has %d mesh configs but %d mesh buffers",
			core.ErrInvalidMesh, config.Name, len(config.Meshes), len(res.Meshes))
	}
	if config.UsesCamera && (res.CameraBuffer == nil || res.CameraBindGroup == nil) {
		return nil, fmt.Errorf("object %s: camera requested but not bound", config.Name)
	}
	if config.UsesElapsedTime && (res.TimeBuffer == nil || res.TimeBindGroup == nil) {
		return nil, fmt.Errorf("object %s: elapsed time requested but not bound", config.Name)
	}
	if len(config.Instances) > 0 && res.InstanceBuffer == nil {
		return nil, fmt.Errorf("object %s: instances requested but no instance buffer", config.Name)
	}
	if !config.UsesCamera {
		res.CameraBuffer, res.CameraBindGroup = nil, nil
	}
	if !config.UsesElapsedTime {
		res.TimeBuffer, res.TimeBindGroup = nil, nil
	}
	if len(config.Instances) == 0 {
		res.InstanceBuffer = nil
	}

	o := &Object{
		name:          config.Name,
		layer:         config.Layer,
		instanceCount: config.InstanceCount(),
		cameraUniform: NewCameraUniform(),
		res:           res,
	}
	o.id = core.IdentifierAquireNewID(o)
	return o, nil
}

func (o *Object) ID() uuid.UUID {
	return o.id
}

func (o *Object) Name() string {
	return o.name
}

func (o *Object) Layer() metadata.RenderLayer {
	return o.layer
}

func (o *Object) InstanceCount() uint32 {
	return o.instanceCount
}

// Prepare writes the camera matrix when a camera is given and the elapsed
// time on every call. A nil camera leaves the camera buffer as it was.
func (o *Object) Prepare(queue metadata.Queue, camera *Camera, elapsed float32) error {
	if camera != nil && o.res.CameraBuffer != nil {
		o.cameraUniform.UpdateViewProj(camera)
		if err := queue.WriteBuffer(o.res.CameraBuffer, 0, o.cameraUniform.Bytes()); err != nil {
			return fmt.Errorf("%s: camera write: %w", o.name, err)
		}
	}
	if o.res.TimeBuffer != nil {
		if err := queue.WriteBuffer(o.res.TimeBuffer, 0, metadata.EncodeFloat32(elapsed)); err != nil {
			return fmt.Errorf("%s: elapsed time write: %w", o.name, err)
		}
	}
	return nil
}

func (o *Object) Render(pass metadata.RenderPass) {
	pass.SetPipeline(o.res.Pipeline)
	pass.SetBindGroup(TextureBindGroup, o.res.TextureBindGroup, nil)
	if o.res.CameraBindGroup != nil {
		pass.SetBindGroup(CameraBindGroup, o.res.CameraBindGroup, nil)
	}
	if o.res.TimeBindGroup != nil {
		pass.SetBindGroup(ElapsedTimeBindGroup, o.res.TimeBindGroup, nil)
	}
	if o.res.InstanceBuffer != nil {
		pass.SetVertexBuffer(InstanceVertexSlot, o.res.InstanceBuffer, 0, wgpu.WholeSize)
	}
	for _, mesh := range o.res.Meshes {
		pass.SetVertexBuffer(MeshVertexSlot, mesh.Vertex, 0, wgpu.WholeSize)
		pass.SetIndexBuffer(mesh.Index, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
		pass.DrawIndexed(mesh.IndexCount, o.instanceCount, 0, 0, 0)
	}
}

func (o *Object) Destroy() {
	if o.destroyed {
		return
	}
	o.destroyed = true
	if o.res.Release != nil {
		o.res.Release()
	}
	if err := core.IdentifierReleaseID(o.id); err != nil {
		core.LogWarn("%s: %s", o.name, err.Error())
	}
	o.res = ObjectResources{}
}
