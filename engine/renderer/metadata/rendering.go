package metadata

import "github.com/cogentcore/webgpu/wgpu"

/** @brief The GPU queue operations a renderable needs while preparing a frame. */
type Queue interface {
	WriteBuffer(buffer *wgpu.Buffer, offset uint64, data []byte) error
}

/** @brief The subset of a render pass encoder a renderable records its draws into. */
type RenderPass interface {
	SetPipeline(pipeline *wgpu.RenderPipeline)
	SetBindGroup(groupIndex uint32, group *wgpu.BindGroup, dynamicOffsets []uint32)
	SetVertexBuffer(slot uint32, buffer *wgpu.Buffer, offset, size uint64)
	SetIndexBuffer(buffer *wgpu.Buffer, format wgpu.IndexFormat, offset, size uint64)
	DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32, firstInstance uint32)
}

/** @brief The pass a renderable is drawn in. */
type RenderLayer int

const (
	/** @brief Color + depth pass, cleared at the start of the frame. */
	RenderLayerWorld RenderLayer = iota
	/** @brief Color-only pass that loads the world pass result. */
	RenderLayerOverlay
)

func (l RenderLayer) String() string {
	switch l {
	case RenderLayerWorld:
		return "world"
	case RenderLayerOverlay:
		return "overlay"
	}
	return "unknown"
}

/** @brief Determines face culling mode during rendering. */
type FaceCullMode int

const (
	/** @brief No faces are culled. */
	FaceCullModeNone FaceCullMode = 0x0
	/** @brief Only front faces are culled. */
	FaceCullModeFront FaceCullMode = 0x1
	/** @brief Only back faces are culled. */
	FaceCullModeBack FaceCullMode = 0x2
)

/** @brief How the fragment color is combined with the target. */
type BlendMode int

const (
	/** @brief Source replaces destination. */
	BlendModeReplace BlendMode = iota
	/** @brief Color is blended source-over by source alpha, alpha is replaced. */
	BlendModeAlphaOver
)
