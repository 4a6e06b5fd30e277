package webgpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/spaghettifunk/facet/engine/core"
	"github.com/spaghettifunk/facet/engine/renderer/components"
	"github.com/spaghettifunk/facet/engine/renderer/metadata"
)

// Uniform buffers are allocated in 16 byte blocks; the shader reads 4 of them.
const elapsedTimeBufferSize = 16

// releaseList collects release calls in creation order and runs them in reverse.
type releaseList []func()

func (r *releaseList) add(fn func()) {
	*r = append(*r, fn)
}

func (r releaseList) run() {
	for i := len(r) - 1; i >= 0; i-- {
		r[i]()
	}
}

// CreateRenderable builds every GPU resource described by config and returns
// the renderable that owns them. Nothing is created on the GPU after this;
// Prepare only writes into the buffers made here.
func (wr *WebGPURenderer) CreateRenderable(config *components.RenderableConfig) (components.Renderable, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var releases releaseList
	res, err := wr.createResources(config, &releases)
	if err != nil {
		releases.run()
		return nil, fmt.Errorf("create renderable %s: %w", config.Name, err)
	}
	res.Release = releases.run

	obj, err := components.NewObject(config, res)
	if err != nil {
		releases.run()
		return nil, err
	}
	core.LogDebug("renderable '%s' created on the %s layer (%d meshes, %d instances)",
		config.Name, config.Layer, len(config.Meshes), obj.InstanceCount())
	return obj, nil
}

func (wr *WebGPURenderer) createResources(config *components.RenderableConfig, releases *releaseList) (components.ObjectResources, error) {
	device := wr.context.Device
	res := components.ObjectResources{}

	// group 0: diffuse texture + sampler
	view, err := wr.uploadTexture(config.Material, releases)
	if err != nil {
		return res, err
	}
	sampler, err := device.CreateSampler(samplerDescriptor(config.Name, config.Material.Filter))
	if err != nil {
		return res, err
	}
	releases.add(sampler.Release)

	textureLayout, err := device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: config.Name + " Texture Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageFragment,
				Sampler: wgpu.SamplerBindingLayout{
					Type: wgpu.SamplerBindingTypeFiltering,
				},
			},
		},
	})
	if err != nil {
		return res, err
	}
	releases.add(textureLayout.Release)

	res.TextureBindGroup, err = device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  config.Name + " Texture Bind Group",
		Layout: textureLayout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, TextureView: view},
			{Binding: 1, Sampler: sampler},
		},
	})
	if err != nil {
		return res, err
	}
	releases.add(res.TextureBindGroup.Release)

	layouts := []*wgpu.BindGroupLayout{textureLayout}

	// group 1: camera
	if config.UsesCamera {
		uniform := components.NewCameraUniform()
		layout, buffer, group, err := wr.createUniform(config.Name+" Camera", uniform.Bytes(), releases)
		if err != nil {
			return res, err
		}
		res.CameraBuffer = buffer
		res.CameraBindGroup = group
		layouts = append(layouts, layout)
	}

	// group 2: elapsed time
	if config.UsesElapsedTime {
		layout, buffer, group, err := wr.createUniform(config.Name+" Elapsed Time", make([]byte, elapsedTimeBufferSize), releases)
		if err != nil {
			return res, err
		}
		res.TimeBuffer = buffer
		res.TimeBindGroup = group
		layouts = append(layouts, layout)
	}

	res.Pipeline, err = wr.createPipeline(config, layouts, releases)
	if err != nil {
		return res, err
	}

	for i := range config.Meshes {
		mesh, err := wr.createMeshBuffers(&config.Meshes[i], releases)
		if err != nil {
			return res, err
		}
		res.Meshes = append(res.Meshes, mesh)
	}

	if len(config.Instances) > 0 {
		res.InstanceBuffer, err = device.CreateBufferInit(&wgpu.BufferInitDescriptor{
			Label:    config.Name + " Instance Buffer",
			Contents: components.EncodeInstances(config.Instances),
			Usage:    wgpu.BufferUsageVertex,
		})
		if err != nil {
			return res, err
		}
		releases.add(res.InstanceBuffer.Release)
	}

	return res, nil
}

func (wr *WebGPURenderer) uploadTexture(material metadata.MaterialConfig, releases *releaseList) (*wgpu.TextureView, error) {
	pixels := material.Pixels
	width := uint32(pixels.Rect.Dx())
	height := uint32(pixels.Rect.Dy())
	size := wgpu.Extent3D{
		Width:              width,
		Height:             height,
		DepthOrArrayLayers: 1,
	}

	texture, err := wr.context.Device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         material.Name + " Texture",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatRGBA8UnormSrgb,
		Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, err
	}
	releases.add(texture.Release)

	wr.context.Queue.WriteTexture(
		&wgpu.ImageCopyTexture{
			Texture:  texture,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{},
			Aspect:   wgpu.TextureAspectAll,
		},
		pixels.Pix,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(pixels.Stride),
			RowsPerImage: height,
		},
		&size,
	)

	view, err := texture.CreateView(nil)
	if err != nil {
		return nil, err
	}
	releases.add(view.Release)
	return view, nil
}

// createUniform makes a vertex-visible uniform buffer initialised with
// contents, plus the layout and bind group exposing it at binding 0.
func (wr *WebGPURenderer) createUniform(label string, contents []byte, releases *releaseList) (*wgpu.BindGroupLayout, *wgpu.Buffer, *wgpu.BindGroup, error) {
	device := wr.context.Device

	buffer, err := device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    label + " Buffer",
		Contents: contents,
		Usage:    wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, nil, nil, err
	}
	releases.add(buffer.Release)

	layout, err := device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: label + " Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{{
			Binding:    0,
			Visibility: wgpu.ShaderStageVertex,
			Buffer: wgpu.BufferBindingLayout{
				Type: wgpu.BufferBindingTypeUniform,
			},
		}},
	})
	if err != nil {
		return nil, nil, nil, err
	}
	releases.add(layout.Release)

	group, err := device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  label + " Bind Group",
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{{
			Binding: 0,
			Buffer:  buffer,
			Offset:  0,
			Size:    wgpu.WholeSize,
		}},
	})
	if err != nil {
		return nil, nil, nil, err
	}
	releases.add(group.Release)

	return layout, buffer, group, nil
}

func (wr *WebGPURenderer) createPipeline(config *components.RenderableConfig, layouts []*wgpu.BindGroupLayout, releases *releaseList) (*wgpu.RenderPipeline, error) {
	device := wr.context.Device
	name := config.Pipeline.Name
	if name == "" {
		name = config.Name
	}

	module, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: name + " Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: config.Pipeline.Shader,
		},
	})
	if err != nil {
		return nil, err
	}
	releases.add(module.Release)

	pipelineLayout, err := device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            name + " Pipeline Layout",
		BindGroupLayouts: layouts,
	})
	if err != nil {
		return nil, err
	}
	releases.add(pipelineLayout.Release)

	buffers := []wgpu.VertexBufferLayout{config.Meshes[0].Layout}
	if len(config.Instances) > 0 {
		buffers = append(buffers, components.InstanceBufferLayout())
	}

	pipeline, err := device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  name + " Render Pipeline",
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: metadata.ShaderVertexEntryPoint,
			Buffers:    buffers,
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: metadata.ShaderFragmentEntryPoint,
			Targets: []wgpu.ColorTargetState{{
				Format:    wr.context.SurfaceConfig.Format,
				Blend:     blendState(config.Pipeline.Blend),
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  cullMode(config.Pipeline.Cull),
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
		DepthStencil: depthStencilState(config.Layer, config.Pipeline),
	})
	if err != nil {
		return nil, err
	}
	releases.add(pipeline.Release)
	return pipeline, nil
}

func (wr *WebGPURenderer) createMeshBuffers(mesh *metadata.MeshConfig, releases *releaseList) (components.MeshBuffers, error) {
	device := wr.context.Device

	vertex, err := device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    mesh.Name + " Vertex Buffer",
		Contents: mesh.Vertices,
		Usage:    wgpu.BufferUsageVertex,
	})
	if err != nil {
		return components.MeshBuffers{}, err
	}
	releases.add(vertex.Release)

	index, err := device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    mesh.Name + " Index Buffer",
		Contents: metadata.EncodeIndices(mesh.Indices),
		Usage:    wgpu.BufferUsageIndex,
	})
	if err != nil {
		return components.MeshBuffers{}, err
	}
	releases.add(index.Release)

	return components.MeshBuffers{
		Vertex:     vertex,
		Index:      index,
		IndexCount: uint32(len(mesh.Indices)),
	}, nil
}
