package math

import (
	"github.com/chewxy/math32"
)

const (
	/** @brief An approximate representation of PI. */
	K_PI float32 = 3.14159265358979323846
	/** @brief A multiplier used to convert degrees to radians. */
	K_DEG2RAD_MULTIPLIER float32 = K_PI / 180.0
	/** @brief Smallest positive number where 1.0 + FLOAT_EPSILON != 0 */
	K_FLOAT_EPSILON float32 = 1.192092896e-07
)

// ------------------------------------------
// Vector 2
// ------------------------------------------

/**
 * @brief Creates and returns a new 2-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @return A new 2-element vector.
 */
func NewVec2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// ------------------------------------------
// Vector 3
// ------------------------------------------

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @return A new 3-element vector.
 */
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

/** @brief Returns a 3-component zero vector. */
func NewVec3Zero() Vec3 {
	return Vec3{0.0, 0.0, 0.0}
}

/** @brief Returns a 3-component vector with all components set to 1.0. */
func NewVec3One() Vec3 {
	return Vec3{1.0, 1.0, 1.0}
}

/** @brief Returns a 3-component vector pointing up (0, 1, 0). */
func NewVec3Up() Vec3 {
	return Vec3{0.0, 1.0, 0.0}
}

/** @brief Returns a 3-component vector pointing toward the viewer (0, 0, 1). */
func NewVec3Back() Vec3 {
	return Vec3{0.0, 0.0, 1.0}
}

/**
 * @brief Adds other to v and returns a copy of the result.
 *
 * @param other The second vector.
 * @return The resulting vector.
 */
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{
		v.X + other.X,
		v.Y + other.Y,
		v.Z + other.Z}
}

/**
 * @brief Subtracts other from v and returns a copy of the result.
 *
 * @param other The second vector.
 * @return The resulting vector.
 */
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{
		v.X - other.X,
		v.Y - other.Y,
		v.Z - other.Z}
}

/**
 * @brief Multiplies all elements of v by scalar and returns a copy of the result.
 *
 * @param scalar The scalar value.
 * @return A copy of the resulting vector.
 */
func (v Vec3) MulScalar(scalar float32) Vec3 {
	return Vec3{
		v.X * scalar,
		v.Y * scalar,
		v.Z * scalar}
}

/** @brief Returns the squared length of the provided vector. */
func (v Vec3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

/** @brief Returns the length of the provided vector. */
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.LengthSquared())
}

/**
 * @brief Returns a normalized copy of the supplied vector.
 * The zero vector has no direction; it is returned unchanged.
 */
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return v
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

/**
 * @brief Returns the dot product between the provided vectors. Typically used
 * to calculate the difference in direction.
 *
 * @param other The second vector.
 * @return The dot product.
 */
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

/**
 * @brief Calculates and returns the cross product of the supplied vectors.
 * The cross product is a new vector which is orthoganal to both provided vectors.
 *
 * @param other The second vector.
 * @return The cross product.
 */
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X}
}

/** @brief Reports whether every component is exactly zero. */
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 *
 * @param other The second vector.
 * @param tolerance The difference tolerance. Typically K_FLOAT_EPSILON or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec3) Compare(other Vec3, tolerance float32) bool {
	return math32.Abs(v.X-other.X) <= tolerance &&
		math32.Abs(v.Y-other.Y) <= tolerance &&
		math32.Abs(v.Z-other.Z) <= tolerance
}

// ------------------------------------------
// Mat4
// ------------------------------------------

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 *
 * @return A new identity matrix
 */
func NewMat4Identity() Mat4 {
	out_matrix := Mat4{}
	out_matrix.Data[0] = 1.0
	out_matrix.Data[5] = 1.0
	out_matrix.Data[10] = 1.0
	out_matrix.Data[15] = 1.0
	return out_matrix
}

/**
 * @brief Creates a matrix from its sixteen elements given row by row, the way
 * the matrix is written on paper.
 */
func NewMat4FromRows(rows [4][4]float32) Mat4 {
	out_matrix := Mat4{}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out_matrix.Data[c*4+r] = rows[r][c]
		}
	}
	return out_matrix
}

/** @brief Returns the element at the given row and column. */
func (mt Mat4) At(row, col int) float32 {
	return mt.Data[col*4+row]
}

/**
 * @brief Returns the matrix product mt * other. Applied to a column vector,
 * other transforms first and mt second.
 *
 * @param other The right-hand side matrix.
 * @return The result of the matrix multiplication.
 */
func (mt Mat4) Mul(other Mat4) Mat4 {
	out_matrix := Mat4{}
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			sum := float32(0)
			for i := 0; i < 4; i++ {
				sum += mt.Data[i*4+row] * other.Data[col*4+i]
			}
			out_matrix.Data[col*4+row] = sum
		}
	}
	return out_matrix
}

/**
 * @brief Creates and returns a right-handed perspective matrix that maps the
 * view frustum to clip space with z in [-1, 1].
 *
 * @param fov_radians The vertical field of view in radians.
 * @param aspect_ratio The aspect ratio.
 * @param near_clip The near clipping plane distance.
 * @param far_clip The far clipping plane distance.
 * @return A new perspective matrix.
 */
func NewMat4Perspective(fov_radians, aspect_ratio, near_clip, far_clip float32) Mat4 {
	f := 1.0 / math32.Tan(fov_radians*0.5)
	out_matrix := Mat4{}
	out_matrix.Data[0] = f / aspect_ratio
	out_matrix.Data[5] = f
	out_matrix.Data[10] = (far_clip + near_clip) / (near_clip - far_clip)
	out_matrix.Data[11] = -1.0
	out_matrix.Data[14] = (2.0 * far_clip * near_clip) / (near_clip - far_clip)
	return out_matrix
}

/**
 * @brief Creates and returns a right-handed look-at matrix, or a matrix looking
 * at target from the perspective of position.
 *
 * @param position The position of the matrix.
 * @param target The position to "look at".
 * @param up The up vector.
 * @return A matrix looking at target from the perspective of position.
 */
func NewMat4LookAtRH(position, target, up Vec3) Mat4 {
	f := target.Sub(position).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)

	out_matrix := Mat4{}
	out_matrix.Data[0] = s.X
	out_matrix.Data[1] = u.X
	out_matrix.Data[2] = -f.X
	out_matrix.Data[4] = s.Y
	out_matrix.Data[5] = u.Y
	out_matrix.Data[6] = -f.Y
	out_matrix.Data[8] = s.Z
	out_matrix.Data[9] = u.Z
	out_matrix.Data[10] = -f.Z
	out_matrix.Data[12] = -s.Dot(position)
	out_matrix.Data[13] = -u.Dot(position)
	out_matrix.Data[14] = f.Dot(position)
	out_matrix.Data[15] = 1.0
	return out_matrix
}

/**
 * @brief Creates and returns a translation matrix from the given position.
 *
 * @param position The position to be used to create the matrix.
 * @return A newly created translation matrix.
 */
func NewMat4Translation(position Vec3) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.Data[12] = position.X
	out_matrix.Data[13] = position.Y
	out_matrix.Data[14] = position.Z
	return out_matrix
}

/**
 * @brief Returns a scale matrix using the provided scale.
 *
 * @param scale The 3-component scale.
 * @return A scale matrix.
 */
func NewMat4Scale(scale Vec3) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.Data[0] = scale.X
	out_matrix.Data[5] = scale.Y
	out_matrix.Data[10] = scale.Z
	return out_matrix
}

// ------------------------------------------
// Quaternion
// ------------------------------------------

/**
 * @brief Creates an identity quaternion.
 *
 * @return An identity quaternion.
 */
func NewQuatIdentity() Quaternion {
	return Quaternion{0, 0, 0, 1.0}
}

/**
 * @brief Returns the normal of the provided quaternion.
 *
 * @return The normal of the provided quaternion.
 */
func (q Quaternion) Normal() float32 {
	return math32.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

/**
 * @brief Returns a normalized copy of the provided quaternion.
 *
 * @return A normalized copy of the provided quaternion.
 */
func (q Quaternion) Normalize() Quaternion {
	normal := q.Normal()
	return Quaternion{
		q.X / normal,
		q.Y / normal,
		q.Z / normal,
		q.W / normal}
}

/**
 * @brief Creates a rotation matrix from the given quaternion. The quaternion
 * is expected to be of unit length.
 *
 * @return A rotation matrix.
 */
func (q Quaternion) ToMat4() Mat4 {
	out_matrix := NewMat4Identity()

	xx, yy, zz := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, xz, yz := q.X*q.Y, q.X*q.Z, q.Y*q.Z
	wx, wy, wz := q.W*q.X, q.W*q.Y, q.W*q.Z

	out_matrix.Data[0] = 1.0 - 2.0*(yy+zz)
	out_matrix.Data[1] = 2.0 * (xy + wz)
	out_matrix.Data[2] = 2.0 * (xz - wy)

	out_matrix.Data[4] = 2.0 * (xy - wz)
	out_matrix.Data[5] = 1.0 - 2.0*(xx+zz)
	out_matrix.Data[6] = 2.0 * (yz + wx)

	out_matrix.Data[8] = 2.0 * (xz + wy)
	out_matrix.Data[9] = 2.0 * (yz - wx)
	out_matrix.Data[10] = 1.0 - 2.0*(xx+yy)

	return out_matrix
}

/**
 * @brief Creates a quaternion from the given axis and angle. The axis is used
 * as given; pass a unit vector to get a unit quaternion.
 *
 * @param axis The axis of rotation.
 * @param angle The angle of rotation in radians.
 * @return A new quaternion.
 */
func NewQuatFromAxisAngle(axis Vec3, angle float32) Quaternion {
	half_angle := 0.5 * angle
	s := math32.Sin(half_angle)
	c := math32.Cos(half_angle)
	return Quaternion{s * axis.X, s * axis.Y, s * axis.Z, c}
}

/**
 * @brief Converts provided degrees to radians.
 *
 * @param degrees The degrees to be converted.
 * @return The amount in radians.
 */
func DegToRad(degrees float32) float32 {
	return degrees * K_DEG2RAD_MULTIPLIER
}
