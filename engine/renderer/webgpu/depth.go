package webgpu

import (
	"github.com/cogentcore/webgpu/wgpu"
)

const DepthFormat = wgpu.TextureFormatDepth32Float

/** @brief The depth attachment of the world pass, sized to the surface. */
type DepthTexture struct {
	Texture *wgpu.Texture
	View    *wgpu.TextureView
}

func CreateDepthTexture(device *wgpu.Device, width, height uint32) (*DepthTexture, error) {
	texture, err := device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "Depth Texture",
		Size: wgpu.Extent3D{
			Width:              width,
			Height:             height,
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        DepthFormat,
		Usage:         wgpu.TextureUsageRenderAttachment | wgpu.TextureUsageTextureBinding,
	})
	if err != nil {
		return nil, err
	}
	view, err := texture.CreateView(nil)
	if err != nil {
		texture.Release()
		return nil, err
	}
	return &DepthTexture{Texture: texture, View: view}, nil
}

func (d *DepthTexture) Destroy() {
	if d == nil {
		return
	}
	d.View.Release()
	d.Texture.Release()
}
