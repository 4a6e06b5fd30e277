package renderer

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spaghettifunk/facet/engine/core"
	"github.com/spaghettifunk/facet/engine/platform"
	"github.com/spaghettifunk/facet/engine/renderer/components"
	"github.com/spaghettifunk/facet/engine/renderer/metadata"
	"github.com/spaghettifunk/facet/engine/renderer/webgpu"
)

type RendererType uint8

const (
	WebGPU RendererType = iota
)

// layers in the order their passes are recorded
var passOrder = []metadata.RenderLayer{
	metadata.RenderLayerWorld,
	metadata.RenderLayerOverlay,
}

var _ RendererBackend = (*webgpu.WebGPURenderer)(nil)

/**
 * @brief Drives a frame: prepares every renderable, then records the world
 * pass followed by the overlay pass, then presents.
 */
type Renderer struct {
	backend     RendererBackend
	camera      *components.Camera
	renderables []components.Renderable
}

func New(p *platform.Platform) *Renderer {
	return NewRenderer(webgpu.New(p))
}

func NewRenderer(backend RendererBackend) *Renderer {
	return &Renderer{
		backend: backend,
		camera:  components.NewCamera(),
	}
}

func (r *Renderer) Initialize(appName string, width, height uint32) error {
	if err := r.backend.Initialize(appName, width, height); err != nil {
		return err
	}
	if width > 0 && height > 0 {
		r.camera.UpdateAspect(float32(width) / float32(height))
	}
	return nil
}

func (r *Renderer) Camera() *components.Camera {
	return r.camera
}

// CreateRenderable builds the GPU resources of config and registers the result.
func (r *Renderer) CreateRenderable(config *components.RenderableConfig) (components.Renderable, error) {
	obj, err := r.backend.CreateRenderable(config)
	if err != nil {
		return nil, err
	}
	r.Add(obj)
	return obj, nil
}

// Add registers a renderable. Renderables of a layer are drawn in the order
// they were added.
func (r *Renderer) Add(renderable components.Renderable) {
	r.renderables = append(r.renderables, renderable)
}

// Remove destroys and unregisters the renderable with id.
func (r *Renderer) Remove(id uuid.UUID) bool {
	for i, renderable := range r.renderables {
		if renderable.ID() == id {
			renderable.Destroy()
			r.renderables = append(r.renderables[:i], r.renderables[i+1:]...)
			return true
		}
	}
	return false
}

func (r *Renderer) Renderables() []components.Renderable {
	return r.renderables
}

// OnResize resizes the backend and updates the camera aspect. A zero
// dimension (minimized window) is ignored.
func (r *Renderer) OnResize(width, height uint32) error {
	if width == 0 || height == 0 {
		return nil
	}
	if err := r.backend.Resized(width, height); err != nil {
		return err
	}
	r.camera.UpdateAspect(float32(width) / float32(height))
	return nil
}

// Prime runs the first Prepare of every renderable without a camera, so
// time uniforms are written before anything is drawn.
func (r *Renderer) Prime() error {
	queue := r.backend.Queue()
	for _, renderable := range r.renderables {
		if err := renderable.Prepare(queue, nil, 0); err != nil {
			return fmt.Errorf("prime %s: %w", renderable.Name(), err)
		}
	}
	return nil
}

// DrawFrame prepares every renderable with the current camera and elapsed
// seconds, then records and presents one frame. Any error is fatal for the
// caller; nothing is retried.
func (r *Renderer) DrawFrame(elapsed float32) error {
	queue := r.backend.Queue()
	for _, renderable := range r.renderables {
		if err := renderable.Prepare(queue, r.camera, elapsed); err != nil {
			return fmt.Errorf("prepare %s: %w", renderable.Name(), err)
		}
	}

	if err := r.backend.BeginFrame(); err != nil {
		core.LogError(err.Error())
		return err
	}

	for _, layer := range passOrder {
		pass, err := r.backend.BeginPass(layer)
		if err != nil {
			return err
		}
		for _, renderable := range r.renderables {
			if renderable.Layer() == layer {
				renderable.Render(pass)
			}
		}
		if err := r.backend.EndPass(); err != nil {
			return err
		}
	}

	if err := r.backend.EndFrame(); err != nil {
		core.LogError("RendererEndFrame failed. Application shutting down...")
		return err
	}
	return nil
}

// Shutdown destroys every renderable, then the backend.
func (r *Renderer) Shutdown() error {
	for _, renderable := range r.renderables {
		renderable.Destroy()
	}
	r.renderables = nil
	return r.backend.Shutdown()
}
