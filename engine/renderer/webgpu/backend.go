package webgpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/spaghettifunk/facet/engine/core"
	"github.com/spaghettifunk/facet/engine/platform"
	"github.com/spaghettifunk/facet/engine/renderer/metadata"
)

/**
 * @brief The per-frame state between BeginFrame and EndFrame.
 */
type WebGPUFrame struct {
	SurfaceTexture *wgpu.Texture
	View           *wgpu.TextureView
	Encoder        *wgpu.CommandEncoder
	/** @brief The open pass, nil between passes. */
	Pass *wgpu.RenderPassEncoder
}

/**
 * @brief Every long-lived handle of the backend.
 */
type WebGPUContext struct {
	Instance *wgpu.Instance
	Surface  *wgpu.Surface
	Adapter  *wgpu.Adapter
	Device   *wgpu.Device
	Queue    *wgpu.Queue

	/** @brief Surface configuration, updated in place on resize. */
	SurfaceConfig *wgpu.SurfaceConfiguration
	Depth         *DepthTexture

	FramebufferWidth  uint32
	FramebufferHeight uint32

	Frame *WebGPUFrame
}

type WebGPURenderer struct {
	platform    *platform.Platform
	FrameNumber uint64
	context     *WebGPUContext
}

func New(p *platform.Platform) *WebGPURenderer {
	return &WebGPURenderer{
		platform:    p,
		FrameNumber: 0,
		context:     &WebGPUContext{},
	}
}

func (wr *WebGPURenderer) Initialize(appName string, appWidth, appHeight uint32) error {
	ctx := wr.context
	ctx.FramebufferWidth = appWidth
	ctx.FramebufferHeight = appHeight

	ctx.Instance = wgpu.CreateInstance(nil)
	ctx.Surface = ctx.Instance.CreateSurface(wr.platform.SurfaceDescriptor())

	adapter, err := ctx.Instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: ctx.Surface,
	})
	if err != nil {
		return fmt.Errorf("%w: %s", core.ErrAdapterUnavailable, err.Error())
	}
	ctx.Adapter = adapter
	core.LogInfo("WebGPU adapter acquired.")

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: appName + " Device",
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: wgpu.DefaultLimits(),
		},
	})
	if err != nil {
		return fmt.Errorf("%w: %s", core.ErrDeviceUnavailable, err.Error())
	}
	ctx.Device = device
	ctx.Queue = device.GetQueue()
	core.LogInfo("WebGPU device created.")

	capabilities := ctx.Surface.GetCapabilities(ctx.Adapter)
	if len(capabilities.Formats) == 0 || len(capabilities.AlphaModes) == 0 {
		return fmt.Errorf("%w: surface reports no usable format", core.ErrAdapterUnavailable)
	}
	ctx.SurfaceConfig = &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      capabilities.Formats[0],
		Width:       appWidth,
		Height:      appHeight,
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   capabilities.AlphaModes[0],
	}
	ctx.Surface.Configure(ctx.Adapter, ctx.Device, ctx.SurfaceConfig)

	depth, err := CreateDepthTexture(ctx.Device, appWidth, appHeight)
	if err != nil {
		return err
	}
	ctx.Depth = depth

	core.LogInfo("WebGPU renderer initialized successfully (%dx%d).", appWidth, appHeight)
	return nil
}

func (wr *WebGPURenderer) Shutdown() error {
	ctx := wr.context
	if ctx.Frame != nil {
		wr.releaseFrame()
	}
	if ctx.Depth != nil {
		ctx.Depth.Destroy()
		ctx.Depth = nil
	}
	if ctx.Queue != nil {
		ctx.Queue.Release()
		ctx.Queue = nil
	}
	if ctx.Device != nil {
		ctx.Device.Release()
		ctx.Device = nil
	}
	if ctx.Adapter != nil {
		ctx.Adapter.Release()
		ctx.Adapter = nil
	}
	if ctx.Surface != nil {
		ctx.Surface.Release()
		ctx.Surface = nil
	}
	if ctx.Instance != nil {
		ctx.Instance.Release()
		ctx.Instance = nil
	}
	core.LogInfo("WebGPU renderer shut down.")
	return nil
}

// Resized reconfigures the surface and the depth attachment. A zero size is
// ignored so a minimized window keeps its last configuration.
func (wr *WebGPURenderer) Resized(width, height uint32) error {
	if width == 0 || height == 0 {
		return nil
	}
	ctx := wr.context
	ctx.FramebufferWidth = width
	ctx.FramebufferHeight = height

	ctx.SurfaceConfig.Width = width
	ctx.SurfaceConfig.Height = height
	ctx.Surface.Configure(ctx.Adapter, ctx.Device, ctx.SurfaceConfig)

	depth, err := CreateDepthTexture(ctx.Device, width, height)
	if err != nil {
		return err
	}
	ctx.Depth.Destroy()
	ctx.Depth = depth

	core.LogDebug("WebGPU renderer resized to %dx%d.", width, height)
	return nil
}

func (wr *WebGPURenderer) Queue() metadata.Queue {
	return wr.context.Queue
}

// BeginFrame acquires the next surface texture and opens a command encoder.
// It is the only call of the frame that may block.
func (wr *WebGPURenderer) BeginFrame() error {
	ctx := wr.context
	if ctx.Frame != nil {
		return fmt.Errorf("previous frame not yet presented")
	}

	surfaceTexture, err := ctx.Surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("%w: %s", core.ErrSurfaceAcquire, err.Error())
	}
	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		surfaceTexture.Release()
		return fmt.Errorf("%w: %s", core.ErrSurfaceAcquire, err.Error())
	}
	encoder, err := ctx.Device.CreateCommandEncoder(nil)
	if err != nil {
		view.Release()
		surfaceTexture.Release()
		return err
	}

	ctx.Frame = &WebGPUFrame{
		SurfaceTexture: surfaceTexture,
		View:           view,
		Encoder:        encoder,
	}
	return nil
}

// BeginPass opens the pass of layer on the current frame. The world pass
// clears color to white and depth to 1.0; the overlay pass loads the color
// written so far and has no depth attachment.
func (wr *WebGPURenderer) BeginPass(layer metadata.RenderLayer) (metadata.RenderPass, error) {
	frame := wr.context.Frame
	if frame == nil {
		return nil, fmt.Errorf("begin %s pass: no frame in progress", layer)
	}
	if frame.Pass != nil {
		return nil, fmt.Errorf("begin %s pass: another pass is still open", layer)
	}

	desc, err := wr.passDescriptor(layer, frame.View)
	if err != nil {
		return nil, err
	}
	frame.Pass = frame.Encoder.BeginRenderPass(desc)
	return frame.Pass, nil
}

func (wr *WebGPURenderer) passDescriptor(layer metadata.RenderLayer, view *wgpu.TextureView) (*wgpu.RenderPassDescriptor, error) {
	switch layer {
	case metadata.RenderLayerWorld:
		return &wgpu.RenderPassDescriptor{
			Label: "World Pass",
			ColorAttachments: []wgpu.RenderPassColorAttachment{{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: clearColor,
			}},
			DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
				View:            wr.context.Depth.View,
				DepthLoadOp:     wgpu.LoadOpClear,
				DepthStoreOp:    wgpu.StoreOpStore,
				DepthClearValue: 1.0,
			},
		}, nil
	case metadata.RenderLayerOverlay:
		return &wgpu.RenderPassDescriptor{
			Label: "Overlay Pass",
			ColorAttachments: []wgpu.RenderPassColorAttachment{{
				View:    view,
				LoadOp:  wgpu.LoadOpLoad,
				StoreOp: wgpu.StoreOpStore,
			}},
		}, nil
	}
	return nil, fmt.Errorf("unknown render layer %d", layer)
}

func (wr *WebGPURenderer) EndPass() error {
	frame := wr.context.Frame
	if frame == nil || frame.Pass == nil {
		return fmt.Errorf("end pass: no pass in progress")
	}
	frame.Pass.End()
	frame.Pass.Release()
	frame.Pass = nil
	return nil
}

// EndFrame finishes the encoder, submits it and presents the surface texture.
func (wr *WebGPURenderer) EndFrame() error {
	ctx := wr.context
	frame := ctx.Frame
	if frame == nil {
		return fmt.Errorf("end frame: no frame in progress")
	}
	if frame.Pass != nil {
		wr.releaseFrame()
		return fmt.Errorf("end frame: a pass is still open")
	}

	commandBuffer, err := frame.Encoder.Finish(nil)
	if err != nil {
		wr.releaseFrame()
		return err
	}
	ctx.Queue.Submit(commandBuffer)
	commandBuffer.Release()

	ctx.Surface.Present()
	wr.releaseFrame()

	wr.FrameNumber++
	return nil
}

func (wr *WebGPURenderer) releaseFrame() {
	frame := wr.context.Frame
	if frame.Pass != nil {
		frame.Pass.End()
		frame.Pass.Release()
	}
	frame.Encoder.Release()
	frame.View.Release()
	frame.SurfaceTexture.Release()
	wr.context.Frame = nil
}
