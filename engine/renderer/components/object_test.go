package components

import (
	"encoding/binary"
	stdmath "math"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/spaghettifunk/facet/engine/core"
	"github.com/spaghettifunk/facet/engine/math"
	"github.com/spaghettifunk/facet/engine/renderer/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestObject(t *testing.T, config *RenderableConfig) (*Object, *int) {
	t.Helper()
	released := 0
	require.NoError(t, config.Validate())
	o, err := NewObject(config, fakeResources(config, &released))
	require.NoError(t, err)
	return o, &released
}

func TestPrepareWithoutCameraWritesOnlyElapsedTime(t *testing.T) {
	o, _ := newTestObject(t, NewCubeConfig(DefaultGlyph(), 1))
	q := &recordingQueue{}

	require.NoError(t, o.Prepare(q, nil, 1.25))

	require.Len(t, q.writes, 1)
	w := q.writes[0]
	assert.Same(t, o.res.TimeBuffer, w.buffer)
	assert.Equal(t, uint64(0), w.offset)
	require.Len(t, w.data, 4)
	assert.Equal(t, float32(1.25), stdmath.Float32frombits(binary.LittleEndian.Uint32(w.data)))
	assert.Empty(t, q.writesTo(o.res.CameraBuffer))
}

func TestPrepareWithCamera(t *testing.T) {
	o, _ := newTestObject(t, NewCubeConfig(DefaultGlyph(), 1))
	q := &recordingQueue{}

	first := NewCamera()
	second := NewCamera()
	second.UpdateEye(math.NewVec3(2, 1.3, 6))

	require.NoError(t, o.Prepare(q, first, 0.5))
	require.NoError(t, o.Prepare(q, second, 1.0))

	cameraWrites := q.writesTo(o.res.CameraBuffer)
	require.Len(t, cameraWrites, 2)
	for _, w := range cameraWrites {
		assert.Equal(t, uint64(0), w.offset)
		assert.Len(t, w.data, CameraUniformSize)
	}
	assert.NotEqual(t, cameraWrites[0].data, cameraWrites[1].data)

	expected := NewCameraUniform()
	expected.UpdateViewProj(second)
	assert.Equal(t, expected.Bytes(), cameraWrites[1].data)

	assert.Len(t, q.writesTo(o.res.TimeBuffer), 2)
}

func TestPrepareWithoutTimeBuffer(t *testing.T) {
	o, _ := newTestObject(t, NewPentagonConfig(DefaultGlyph()))
	q := &recordingQueue{}

	require.NoError(t, o.Prepare(q, nil, 3))
	assert.Empty(t, q.writes)

	require.NoError(t, o.Prepare(q, NewCamera(), 3))
	require.Len(t, q.writes, 1)
	assert.Same(t, o.res.CameraBuffer, q.writes[0].buffer)
}

func TestPrepareIsNoopForChar(t *testing.T) {
	o, _ := newTestObject(t, NewCharConfig(DefaultGlyph(), DefaultCharQuad()))
	q := &recordingQueue{}
	require.NoError(t, o.Prepare(q, NewCamera(), 2))
	assert.Empty(t, q.writes)
}

func TestPrepareReturnsWriteError(t *testing.T) {
	o, _ := newTestObject(t, NewCubeConfig(DefaultGlyph(), 1))
	q := &recordingQueue{err: errQueueLost}
	assert.ErrorIs(t, o.Prepare(q, NewCamera(), 0), errQueueLost)
	assert.ErrorIs(t, o.Prepare(q, nil, 0), errQueueLost)
}

func TestRenderPentagon(t *testing.T) {
	o, _ := newTestObject(t, NewPentagonConfig(DefaultGlyph()))
	pass := newRecordingPass()

	o.Render(pass)

	require.Len(t, pass.draws, 1)
	assert.Equal(t, drawCall{indexCount: 9, instanceCount: 1}, pass.draws[0])
	assert.Equal(t, []*wgpu.RenderPipeline{o.res.Pipeline}, pass.pipelines)
	assert.Len(t, pass.bindGroups, 2)
	assert.Same(t, o.res.TextureBindGroup, pass.bindGroups[TextureBindGroup])
	assert.Same(t, o.res.CameraBindGroup, pass.bindGroups[CameraBindGroup])
	require.Len(t, pass.vertexBuffers, 1)
	assert.Equal(t, MeshVertexSlot, pass.vertexBuffers[0].slot)
	assert.Equal(t, []wgpu.IndexFormat{wgpu.IndexFormatUint32}, pass.indexFormats)
}

func TestRenderCube(t *testing.T) {
	o, _ := newTestObject(t, NewCubeConfig(DefaultGlyph(), 4))
	pass := newRecordingPass()

	o.Render(pass)

	require.Len(t, pass.draws, 1)
	assert.Equal(t, drawCall{indexCount: 36, instanceCount: 40}, pass.draws[0])
	assert.Len(t, pass.bindGroups, 3)
	assert.Same(t, o.res.TimeBindGroup, pass.bindGroups[ElapsedTimeBindGroup])
	assert.Contains(t, pass.vertexBuffers, vertexBinding{slot: InstanceVertexSlot, buffer: o.res.InstanceBuffer})
	assert.Contains(t, pass.vertexBuffers, vertexBinding{slot: MeshVertexSlot, buffer: o.res.Meshes[0].Vertex})
}

func TestRenderChar(t *testing.T) {
	o, _ := newTestObject(t, NewCharConfig(DefaultGlyph(), DefaultCharQuad()))
	pass := newRecordingPass()

	o.Render(pass)

	assert.Equal(t, metadata.RenderLayerOverlay, o.Layer())
	require.Len(t, pass.draws, 1)
	assert.Equal(t, drawCall{indexCount: 6, instanceCount: 1}, pass.draws[0])
	assert.Len(t, pass.bindGroups, 1)
	assert.Contains(t, pass.bindGroups, TextureBindGroup)
}

func TestRenderDrawsEveryMesh(t *testing.T) {
	config := NewCubeConfig(DefaultGlyph(), 1)
	config.Meshes = append(config.Meshes, GenerateCubeMesh("small", 0.5, 0.5, 0.5, 1, 1))
	o, _ := newTestObject(t, config)
	pass := newRecordingPass()

	o.Render(pass)

	require.Len(t, pass.draws, 2)
	assert.Equal(t, uint32(36), pass.draws[0].indexCount)
	assert.Equal(t, uint32(36), pass.draws[1].indexCount)
	assert.Equal(t, uint32(NumInstancesPerRow), pass.draws[1].instanceCount)
	assert.Len(t, pass.pipelines, 1)
}

func TestNewObjectRejectsMissingResources(t *testing.T) {
	config := NewCubeConfig(DefaultGlyph(), 1)
	released := 0
	res := fakeResources(config, &released)
	res.TimeBuffer = nil
	_, err := NewObject(config, res)
	assert.Error(t, err)

	res = fakeResources(config, &released)
	res.Meshes = nil
	_, err = NewObject(config, res)
	assert.ErrorIs(t, err, core.ErrInvalidMesh)
}

func TestObjectDestroy(t *testing.T) {
	o, released := newTestObject(t, NewPentagonConfig(DefaultGlyph()))
	id := o.ID()
	assert.Same(t, o, core.IdentifierOwner(id))
	assert.Equal(t, PentagonName, o.Name())

	o.Destroy()
	o.Destroy()

	assert.Equal(t, 1, *released)
	assert.Nil(t, core.IdentifierOwner(id))
}
