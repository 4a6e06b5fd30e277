package components

import (
	"encoding/binary"
	"fmt"
	stdmath "math"

	"github.com/spaghettifunk/facet/engine/core"
	"github.com/spaghettifunk/facet/engine/math"
)

/**
 * @brief Remaps clip-space depth from the OpenGL [-1, 1] range produced by
 * NewMat4Perspective to the [0, 1] range WebGPU expects: z' = 0.5*z + 0.5*w.
 */
var OpenGLToWGPU = math.NewMat4FromRows([4][4]float32{
	{1.0, 0.0, 0.0, 0.0},
	{0.0, 1.0, 0.0, 0.0},
	{0.0, 0.0, 0.5, 0.5},
	{0.0, 0.0, 0.0, 1.0},
})

/**
 * @brief A perspective camera looking from Eye at Target.
 */
type Camera struct {
	/** @brief The position of this camera. */
	Eye math.Vec3
	/** @brief The point the camera looks at. */
	Target math.Vec3
	/** @brief The up direction of the camera. */
	Up math.Vec3
	/** @brief Framebuffer width divided by height. */
	Aspect float32
	/** @brief Vertical field of view, in degrees. */
	FovY float32
	/** @brief Near clipping plane distance. */
	ZNear float32
	/** @brief Far clipping plane distance. */
	ZFar float32
}

func NewCamera() *Camera {
	camera := &Camera{}
	camera.Reset()
	return camera
}

// Reset restores the default camera: looking at the origin from (0, 1.3, 6)
// with a 45 degree vertical field of view.
func (c *Camera) Reset() {
	c.Eye = math.NewVec3(0.0, 1.3, 6.0)
	c.Target = math.NewVec3Zero()
	c.Up = math.NewVec3Up()
	c.Aspect = 4.0 / 3.0
	c.FovY = 45.0
	c.ZNear = 0.1
	c.ZFar = 100.0
}

// BuildViewProjectionMatrix returns OpenGLToWGPU * perspective * view.
func (c *Camera) BuildViewProjectionMatrix() math.Mat4 {
	view := math.NewMat4LookAtRH(c.Eye, c.Target, c.Up)
	proj := math.NewMat4Perspective(math.DegToRad(c.FovY), c.Aspect, c.ZNear, c.ZFar)
	return OpenGLToWGPU.Mul(proj).Mul(view)
}

// UpdateAspect stores the new aspect ratio as-is. A minimized window reports
// zero; callers skip the update in that case.
func (c *Camera) UpdateAspect(aspect float32) {
	c.Aspect = aspect
}

func (c *Camera) UpdateEye(eye math.Vec3) {
	c.Eye = eye
}

// Validate checks the projection parameters. It is meant for values coming from
// configuration, not for the per-frame path.
func (c *Camera) Validate() error {
	switch {
	case !(c.Aspect > 0):
		return fmt.Errorf("%w: aspect must be > 0, got %f", core.ErrInvalidCamera, c.Aspect)
	case !(c.FovY > 0 && c.FovY < 180):
		return fmt.Errorf("%w: fovy must be in (0, 180), got %f", core.ErrInvalidCamera, c.FovY)
	case !(c.ZNear > 0):
		return fmt.Errorf("%w: znear must be > 0, got %f", core.ErrInvalidCamera, c.ZNear)
	case !(c.ZNear < c.ZFar):
		return fmt.Errorf("%w: znear (%f) must be < zfar (%f)", core.ErrInvalidCamera, c.ZNear, c.ZFar)
	case c.Eye.Compare(c.Target, 0):
		return fmt.Errorf("%w: eye and target coincide", core.ErrInvalidCamera)
	}
	return nil
}

// CameraUniformSize is the size in bytes of a serialized CameraUniform.
const CameraUniformSize = 16 * 4

// CameraUniform is the GPU-side copy of a camera's view-projection matrix.
type CameraUniform struct {
	ViewProj math.Mat4
}

func NewCameraUniform() CameraUniform {
	return CameraUniform{ViewProj: math.NewMat4Identity()}
}

func (u *CameraUniform) UpdateViewProj(camera *Camera) {
	u.ViewProj = camera.BuildViewProjectionMatrix()
}

// Bytes serializes the matrix column-major as little-endian float32.
func (u *CameraUniform) Bytes() []byte {
	return AppendMat4(make([]byte, 0, CameraUniformSize), u.ViewProj)
}

// AppendMat4 appends the 64-byte little-endian encoding of m to buf.
func AppendMat4(buf []byte, m math.Mat4) []byte {
	for _, f := range m.Data {
		buf = binary.LittleEndian.AppendUint32(buf, stdmath.Float32bits(f))
	}
	return buf
}
