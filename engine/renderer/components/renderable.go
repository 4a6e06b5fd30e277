package components

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spaghettifunk/facet/engine/core"
	"github.com/spaghettifunk/facet/engine/renderer/metadata"
)

/**
 * @brief Anything the frame driver can draw. Prepare runs before the frame's
 * passes are opened and may only write into resources the object already owns;
 * Render records draw commands into the pass of the object's layer.
 */
type Renderable interface {
	ID() uuid.UUID
	Name() string
	Layer() metadata.RenderLayer
	Prepare(queue metadata.Queue, camera *Camera, elapsed float32) error
	Render(pass metadata.RenderPass)
	Destroy()
}

/**
 * @brief Everything the backend needs to build the GPU resources of a renderable.
 * Pentagon, cube and char differ only in the values of this struct.
 */
type RenderableConfig struct {
	/** @brief The name of the renderable, used for labels and logs. */
	Name string
	/** @brief Which pass the renderable is drawn in. */
	Layer metadata.RenderLayer
	/** @brief One or more meshes, all drawn with the same pipeline and bindings. */
	Meshes []metadata.MeshConfig
	/** @brief The diffuse texture bound at group 0. */
	Material metadata.MaterialConfig
	/** @brief Shader and fixed-function state. */
	Pipeline metadata.PipelineConfig
	/** @brief Per-instance transforms. Empty means a single non-instanced draw. */
	Instances []Instance
	/** @brief Binds a camera uniform at group 1. */
	UsesCamera bool
	/** @brief Binds an elapsed-time uniform at group 2. */
	UsesElapsedTime bool
}

func (c *RenderableConfig) Validate() error {
	if len(c.Meshes) == 0 {
		return fmt.Errorf("%w: renderable %s has no meshes", core.ErrInvalidMesh, c.Name)
	}
	for i := range c.Meshes {
		if err := c.Meshes[i].Validate(); err != nil {
			return fmt.Errorf("renderable %s: %w", c.Name, err)
		}
		// one pipeline draws every mesh
		if !metadata.SameLayout(c.Meshes[0].Layout, c.Meshes[i].Layout) {
			return fmt.Errorf("%w: renderable %s mesh %s does not share the vertex layout of %s",
				core.ErrInvalidMesh, c.Name, c.Meshes[i].Name, c.Meshes[0].Name)
		}
	}
	if err := c.Material.Validate(); err != nil {
		return fmt.Errorf("renderable %s: %w", c.Name, err)
	}
	if c.Pipeline.Shader == "" {
		return fmt.Errorf("renderable %s has no shader source", c.Name)
	}
	if c.UsesElapsedTime && !c.UsesCamera {
		// group 2 would follow an empty group 1
		return fmt.Errorf("renderable %s binds elapsed time without a camera", c.Name)
	}
	if c.Layer == metadata.RenderLayerOverlay && (c.Pipeline.DepthTest || c.Pipeline.DepthWrite) {
		return fmt.Errorf("renderable %s: the overlay pass has no depth attachment", c.Name)
	}
	return nil
}

// InstanceCount is the instance count passed to every draw.
func (c *RenderableConfig) InstanceCount() uint32 {
	if len(c.Instances) == 0 {
		return 1
	}
	return uint32(len(c.Instances))
}
