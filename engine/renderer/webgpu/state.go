package webgpu

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/spaghettifunk/facet/engine/renderer/metadata"
)

var clearColor = wgpu.Color{R: 1, G: 1, B: 1, A: 1}

// Color is blended source-over with premultiplied alpha; alpha is replaced.
var alphaOverBlend = wgpu.BlendState{
	Color: wgpu.BlendComponent{
		SrcFactor: wgpu.BlendFactorOne,
		DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
		Operation: wgpu.BlendOperationAdd,
	},
	Alpha: wgpu.BlendComponent{
		SrcFactor: wgpu.BlendFactorOne,
		DstFactor: wgpu.BlendFactorZero,
		Operation: wgpu.BlendOperationAdd,
	},
}

var replaceBlend = wgpu.BlendState{
	Color: wgpu.BlendComponent{
		SrcFactor: wgpu.BlendFactorOne,
		DstFactor: wgpu.BlendFactorZero,
		Operation: wgpu.BlendOperationAdd,
	},
	Alpha: wgpu.BlendComponent{
		SrcFactor: wgpu.BlendFactorOne,
		DstFactor: wgpu.BlendFactorZero,
		Operation: wgpu.BlendOperationAdd,
	},
}

func cullMode(mode metadata.FaceCullMode) wgpu.CullMode {
	switch mode {
	case metadata.FaceCullModeFront:
		return wgpu.CullModeFront
	case metadata.FaceCullModeBack:
		return wgpu.CullModeBack
	}
	return wgpu.CullModeNone
}

func blendState(mode metadata.BlendMode) *wgpu.BlendState {
	if mode == metadata.BlendModeAlphaOver {
		state := alphaOverBlend
		return &state
	}
	state := replaceBlend
	return &state
}

// depthStencilState returns nil for the overlay layer, whose pass has no
// depth attachment. World pipelines always carry a depth state so they stay
// compatible with the world pass, even when they neither test nor write.
func depthStencilState(layer metadata.RenderLayer, config metadata.PipelineConfig) *wgpu.DepthStencilState {
	if layer == metadata.RenderLayerOverlay {
		return nil
	}
	compare := wgpu.CompareFunctionAlways
	if config.DepthTest {
		compare = wgpu.CompareFunctionLess
	}
	return &wgpu.DepthStencilState{
		Format:            DepthFormat,
		DepthWriteEnabled: config.DepthWrite,
		DepthCompare:      compare,
		StencilFront: wgpu.StencilFaceState{
			Compare: wgpu.CompareFunctionAlways,
		},
		StencilBack: wgpu.StencilFaceState{
			Compare: wgpu.CompareFunctionAlways,
		},
	}
}

func filterMode(filter metadata.TextureFilter) wgpu.FilterMode {
	if filter == metadata.TextureFilterModeNearest {
		return wgpu.FilterModeNearest
	}
	return wgpu.FilterModeLinear
}

func samplerDescriptor(name string, filter metadata.TextureFilter) *wgpu.SamplerDescriptor {
	mode := filterMode(filter)
	return &wgpu.SamplerDescriptor{
		Label:         name + " Sampler",
		AddressModeU:  wgpu.AddressModeClampToEdge,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     mode,
		MinFilter:     mode,
		MipmapFilter:  wgpu.MipmapFilterModeNearest,
		LodMinClamp:   0,
		LodMaxClamp:   32,
		MaxAnisotropy: 1,
	}
}
