package metadata

import (
	"fmt"
	"image"

	"github.com/spaghettifunk/facet/engine/core"
)

/** @brief Represents supported texture filtering modes. */
type TextureFilter int

const (
	/** @brief Linear (i.e. bilinear) filtering.*/
	TextureFilterModeLinear TextureFilter = iota
	/** @brief Nearest-neighbor filtering. */
	TextureFilterModeNearest
)

/**
 * @brief Material configuration: the diffuse texture sampled by the
 * fragment shader and how it is filtered.
 */
type MaterialConfig struct {
	/** @brief The name of the material. */
	Name string
	/** @brief The diffuse texture, tightly packed RGBA8. */
	Pixels *image.RGBA
	/** @brief Filtering used for both minification and magnification. */
	Filter TextureFilter
}

func (m *MaterialConfig) Validate() error {
	if m.Pixels == nil || m.Pixels.Rect.Empty() {
		return fmt.Errorf("%w: material %s has no pixels", core.ErrTextureDecode, m.Name)
	}
	return nil
}
