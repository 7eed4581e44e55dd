package scene

import "playground/math"

// Camera produces view and projection matrices. It can toggle between
// perspective and orthographic projection at runtime; the ortho volume is
// sized by OrthoHeight so the subject stays roughly framed.
type Camera struct {
	Position    math.Vec3
	FovDegrees  float32
	OrthoHeight float32
	NearPlane   float32
	FarPlane    float32

	target math.Vec3
	up     math.Vec3
	aspect float32
	ortho  bool
}

func NewCamera() *Camera {
	return &Camera{
		Position:    math.Vec3{Z: 5},
		FovDegrees:  60,
		OrthoHeight: 10,
		NearPlane:   0.01,
		FarPlane:    1000,
		up:          math.Vec3Up,
		aspect:      1,
	}
}

func (c *Camera) SetPosition(p math.Vec3) {
	c.Position = p
}

// LookAt points the camera at a world-space target.
func (c *Camera) LookAt(target math.Vec3) {
	c.target = target
}

// SetAspect updates the projection aspect ratio, typically from the window
// resize callback.
func (c *Camera) SetAspect(aspect float32) {
	if aspect > 0 {
		c.aspect = aspect
	}
}

// ToggleOrtho flips between perspective and orthographic projection.
func (c *Camera) ToggleOrtho() {
	c.ortho = !c.ortho
}

func (c *Camera) IsOrtho() bool {
	return c.ortho
}

func (c *Camera) ViewMatrix() math.Mat4 {
	return math.Mat4LookAt(c.Position, c.target, c.up)
}

func (c *Camera) Projection() math.Mat4 {
	if c.ortho {
		halfH := c.OrthoHeight / 2
		halfW := halfH * c.aspect
		return math.Mat4Orthographic(-halfW, halfW, -halfH, halfH, c.NearPlane, c.FarPlane)
	}
	return math.Mat4Perspective(math.Radians(c.FovDegrees), c.aspect, c.NearPlane, c.FarPlane)
}
