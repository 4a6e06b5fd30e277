package math

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const tolerance = 1e-5

func assertMat4Equal(t *testing.T, want mgl32.Mat4, got Mat4) {
	t.Helper()
	for i := 0; i < 16; i++ {
		assert.InDeltaf(t, want[i], got.Data[i], tolerance, "element %d (row %d, col %d)", i, i%4, i/4)
	}
}

func toMgl(m Mat4) mgl32.Mat4 {
	return mgl32.Mat4(m.Data)
}

func TestMat4FromRowsIsColumnMajor(t *testing.T) {
	m := NewMat4FromRows([4][4]float32{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	})
	assert.Equal(t, float32(2), m.At(0, 1))
	assert.Equal(t, float32(5), m.Data[1])
	assert.Equal(t, float32(4), m.Data[12])
}

func TestMat4Mul(t *testing.T) {
	a := NewMat4FromRows([4][4]float32{
		{1, 2, 3, 4},
		{0, 1, 0, 2},
		{3, 0, 1, 0},
		{0, 0, 0, 1},
	})
	b := NewMat4Translation(NewVec3(1, -2, 3)).Mul(NewMat4Scale(NewVec3(2, 2, 2)))

	assertMat4Equal(t, toMgl(a).Mul4(toMgl(b)), a.Mul(b))
	assertMat4Equal(t, toMgl(b).Mul4(toMgl(a)), b.Mul(a))
	assertMat4Equal(t, toMgl(a), a.Mul(NewMat4Identity()))
}

func TestNewMat4Perspective(t *testing.T) {
	cases := []struct {
		fovy, aspect, near, far float32
	}{
		{45, 4.0 / 3.0, 0.1, 100},
		{90, 1, 1, 10},
		{30, 16.0 / 9.0, 0.5, 1000},
	}
	for _, c := range cases {
		want := mgl32.Perspective(mgl32.DegToRad(c.fovy), c.aspect, c.near, c.far)
		assertMat4Equal(t, want, NewMat4Perspective(DegToRad(c.fovy), c.aspect, c.near, c.far))
	}
}

func TestNewMat4LookAtRH(t *testing.T) {
	eye := NewVec3(0, 1.3, 6)
	target := NewVec3Zero()
	up := NewVec3Up()

	want := mgl32.LookAtV(mgl32.Vec3{0, 1.3, 6}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	assertMat4Equal(t, want, NewMat4LookAtRH(eye, target, up))

	want = mgl32.LookAtV(mgl32.Vec3{3, -2, 1}, mgl32.Vec3{-1, 0.5, 2}, mgl32.Vec3{0, 1, 0})
	assertMat4Equal(t, want, NewMat4LookAtRH(NewVec3(3, -2, 1), NewVec3(-1, 0.5, 2), up))
}

func TestQuaternionToMat4(t *testing.T) {
	axis := NewVec3(1, 2, -3).Normalize()
	q := NewQuatFromAxisAngle(axis, DegToRad(45))

	want := mgl32.QuatRotate(mgl32.DegToRad(45), mgl32.Vec3{axis.X, axis.Y, axis.Z}).Mat4()
	assertMat4Equal(t, want, q.ToMat4())

	identity := NewQuatFromAxisAngle(NewVec3Back(), 0)
	assert.Equal(t, NewQuatIdentity(), identity)
	assertMat4Equal(t, mgl32.Ident4(), identity.ToMat4())
}

func TestVec3(t *testing.T) {
	assert.True(t, NewVec3Zero().IsZero())
	assert.False(t, NewVec3(0, -2, 0).IsZero())
	assert.Equal(t, NewVec3Zero(), NewVec3Zero().Normalize(), "zero vector has no direction")

	n := NewVec3(3, 0, 4).Normalize()
	assert.True(t, n.Compare(NewVec3(0.6, 0, 0.8), K_FLOAT_EPSILON*4))
	assert.Equal(t, NewVec3(0, 0, 1), NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)))
	assert.Equal(t, float32(32), NewVec3(1, 2, 3).Dot(NewVec3(4, 5, 6)))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(1), Clamp(float32(5), 0, 1))
	assert.Equal(t, 3, Clamp(-2, 3, 9))
	assert.Equal(t, 0.5, Clamp(0.5, 0.0, 1.0))
}

func TestTransformLocal(t *testing.T) {
	rot := NewQuatFromAxisAngle(NewVec3Up(), DegToRad(90))
	tr := TransformFromPositionRotation(NewVec3(1, 2, 3), rot)

	want := mgl32.Translate3D(1, 2, 3).Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(90)))
	assertMat4Equal(t, want, tr.GetLocal())
	assert.False(t, tr.IsDirty)

	tr.SetPositionRotationScale(NewVec3(2, 2, 3), rot, NewVec3One())
	assert.True(t, tr.IsDirty)
	assert.InDelta(t, 2, tr.GetLocal().Data[12], tolerance)
}
