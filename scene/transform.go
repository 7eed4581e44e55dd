package scene

import "playground/math"

// Transform holds the local position, rotation and scale of an entity.
// Parent refers to another entity in the same registry; world matrices are
// composed parent-first by Registry.UpdateWorldMatrices.
type Transform struct {
	Position math.Vec3
	Rotation math.Quaternion
	Scale    math.Vec3
	Parent   Entity
}

func NewTransform() Transform {
	return Transform{
		Position: math.Vec3Zero,
		Rotation: math.QuaternionIdentity(),
		Scale:    math.Vec3One,
	}
}

// LocalMatrix composes scale, then rotation, then translation.
func (t *Transform) LocalMatrix() math.Mat4 {
	scale := math.Mat4Scale(t.Scale)
	rotation := t.Rotation.ToMat4()
	translation := math.Mat4Translation(t.Position)
	return scale.Mul(rotation).Mul(translation)
}

// SetRotationEuler sets the rotation from XYZ euler angles in degrees.
func (t *Transform) SetRotationEuler(degrees math.Vec3) {
	t.Rotation = math.QuaternionFromEuler(math.Vec3{
		X: math.Radians(degrees.X),
		Y: math.Radians(degrees.Y),
		Z: math.Radians(degrees.Z),
	})
}

// Rotate applies an additional rotation about axis by angle radians, in
// local space.
func (t *Transform) Rotate(axis math.Vec3, angle float32) {
	t.Rotation = t.Rotation.Mul(math.QuaternionFromAxisAngle(axis, angle)).Normalize()
}

// RotateWorld applies an additional rotation about a world-space axis.
func (t *Transform) RotateWorld(axis math.Vec3, angle float32) {
	t.Rotation = math.QuaternionFromAxisAngle(axis, angle).Mul(t.Rotation).Normalize()
}

func (t *Transform) Forward() math.Vec3 {
	return t.Rotation.RotateVector(math.Vec3Front)
}

func (t *Transform) Right() math.Vec3 {
	return t.Rotation.RotateVector(math.Vec3Right)
}

func (t *Transform) Up() math.Vec3 {
	return t.Rotation.RotateVector(math.Vec3Up)
}
