package components

import (
	"encoding/binary"
	"errors"
	stdmath "math"

	"github.com/cogentcore/webgpu/wgpu"
)

type bufferWrite struct {
	buffer *wgpu.Buffer
	offset uint64
	data   []byte
}

type recordingQueue struct {
	writes []bufferWrite
	err    error
}

func (q *recordingQueue) WriteBuffer(buffer *wgpu.Buffer, offset uint64, data []byte) error {
	if q.err != nil {
		return q.err
	}
	q.writes = append(q.writes, bufferWrite{buffer: buffer, offset: offset, data: append([]byte(nil), data...)})
	return nil
}

func (q *recordingQueue) writesTo(buffer *wgpu.Buffer) []bufferWrite {
	var out []bufferWrite
	for _, w := range q.writes {
		if w.buffer == buffer {
			out = append(out, w)
		}
	}
	return out
}

type drawCall struct {
	indexCount, instanceCount, firstIndex uint32
	baseVertex                            int32
	firstInstance                         uint32
}

type vertexBinding struct {
	slot   uint32
	buffer *wgpu.Buffer
}

type recordingPass struct {
	pipelines     []*wgpu.RenderPipeline
	bindGroups    map[uint32]*wgpu.BindGroup
	vertexBuffers []vertexBinding
	indexBuffers  []*wgpu.Buffer
	indexFormats  []wgpu.IndexFormat
	draws         []drawCall
}

func newRecordingPass() *recordingPass {
	return &recordingPass{bindGroups: make(map[uint32]*wgpu.BindGroup)}
}

func (p *recordingPass) SetPipeline(pipeline *wgpu.RenderPipeline) {
	p.pipelines = append(p.pipelines, pipeline)
}

func (p *recordingPass) SetBindGroup(groupIndex uint32, group *wgpu.BindGroup, dynamicOffsets []uint32) {
	p.bindGroups[groupIndex] = group
}

func (p *recordingPass) SetVertexBuffer(slot uint32, buffer *wgpu.Buffer, offset, size uint64) {
	p.vertexBuffers = append(p.vertexBuffers, vertexBinding{slot: slot, buffer: buffer})
}

func (p *recordingPass) SetIndexBuffer(buffer *wgpu.Buffer, format wgpu.IndexFormat, offset, size uint64) {
	p.indexBuffers = append(p.indexBuffers, buffer)
	p.indexFormats = append(p.indexFormats, format)
}

func (p *recordingPass) DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32, firstInstance uint32) {
	p.draws = append(p.draws, drawCall{indexCount, instanceCount, firstIndex, baseVertex, firstInstance})
}

var errQueueLost = errors.New("queue lost")

// fakeResources hands out distinct placeholder handles for everything config asks for.
func fakeResources(config *RenderableConfig, released *int) ObjectResources {
	res := ObjectResources{
		Pipeline:         &wgpu.RenderPipeline{},
		TextureBindGroup: &wgpu.BindGroup{},
		Release:          func() { *released++ },
	}
	if config.UsesCamera {
		res.CameraBuffer = &wgpu.Buffer{}
		res.CameraBindGroup = &wgpu.BindGroup{}
	}
	if config.UsesElapsedTime {
		res.TimeBuffer = &wgpu.Buffer{}
		res.TimeBindGroup = &wgpu.BindGroup{}
	}
	if len(config.Instances) > 0 {
		res.InstanceBuffer = &wgpu.Buffer{}
	}
	for _, mesh := range config.Meshes {
		res.Meshes = append(res.Meshes, MeshBuffers{
			Vertex:     &wgpu.Buffer{},
			Index:      &wgpu.Buffer{},
			IndexCount: uint32(len(mesh.Indices)),
		})
	}
	return res
}

func floatAt(buf []byte, i int) float32 {
	return stdmath.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
}
