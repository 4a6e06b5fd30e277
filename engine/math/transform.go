package math

// TransformFromPositionRotation creates a unit-scale transform.
func TransformFromPositionRotation(position Vec3, rotation Quaternion) *Transform {
	t := &Transform{}
	t.SetPositionRotationScale(position, rotation, NewVec3One())
	return t
}

func (t *Transform) SetPositionRotationScale(position Vec3, rotation Quaternion, scale Vec3) {
	t.Position = position
	t.Rotation = rotation
	t.Scale = scale
	t.IsDirty = true
}

// GetLocal returns translation * rotation * scale, rebuilding it only when the
// transform changed since the last call.
func (t *Transform) GetLocal() Mat4 {
	if t == nil {
		return NewMat4Identity()
	}
	if t.IsDirty {
		t.Local = NewMat4Translation(t.Position).
			Mul(t.Rotation.ToMat4()).
			Mul(NewMat4Scale(t.Scale))
		t.IsDirty = false
	}
	return t.Local
}
