package renderer

import (
	"github.com/spaghettifunk/facet/engine/renderer/components"
	"github.com/spaghettifunk/facet/engine/renderer/metadata"
)

/**
 * @brief The GPU side of the frame driver. A frame is
 * BeginFrame, then BeginPass/EndPass per layer, then EndFrame.
 */
type RendererBackend interface {
	Initialize(appName string, appWidth, appHeight uint32) error
	Shutdown() error
	Resized(width, height uint32) error
	Queue() metadata.Queue
	CreateRenderable(config *components.RenderableConfig) (components.Renderable, error)
	BeginFrame() error
	BeginPass(layer metadata.RenderLayer) (metadata.RenderPass, error)
	EndPass() error
	EndFrame() error
}
