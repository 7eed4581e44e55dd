package behaviours

import (
	"github.com/chewxy/math32"

	"playground/core"
	"playground/math"
	"playground/scene"
)

// FreeLook gives WASD flight controls with right-mouse-drag look, for
// steering the camera entity. Hold left shift to move faster.
type FreeLook struct {
	scene.State
	MoveSpeed   float32
	FastFactor  float32
	Sensitivity float32 // radians per pixel of cursor travel

	yaw      float32
	pitch    float32
	dragging bool
	lastX    float64
	lastY    float64
}

func NewFreeLook() *FreeLook {
	return &FreeLook{
		MoveSpeed:   5,
		FastFactor:  4,
		Sensitivity: 0.005,
	}
}

func (b *FreeLook) Update(ctx *scene.UpdateContext, h scene.Handle) {
	in := ctx.Input
	t := h.Transform()

	if in.IsMouseButtonPressed(core.MouseButtonRight) {
		cx, cy := in.CursorPos()
		if b.dragging {
			b.yaw -= float32(cx-b.lastX) * b.Sensitivity
			b.pitch -= float32(cy-b.lastY) * b.Sensitivity

			// Keep pitch short of straight up/down so forward stays usable
			limit := math.Radians(89)
			b.pitch = math32.Max(-limit, math32.Min(limit, b.pitch))

			t.Rotation = math.QuaternionFromEuler(math.Vec3{X: b.pitch, Y: b.yaw})
		}
		b.dragging = true
		b.lastX, b.lastY = cx, cy
	} else {
		b.dragging = false
	}

	speed := b.MoveSpeed * ctx.Delta
	if in.IsKeyPressed(core.KeyLeftShift) {
		speed *= b.FastFactor
	}

	var move math.Vec3
	if in.IsKeyPressed(core.KeyW) {
		move = move.Add(t.Forward())
	}
	if in.IsKeyPressed(core.KeyS) {
		move = move.Sub(t.Forward())
	}
	if in.IsKeyPressed(core.KeyD) {
		move = move.Add(t.Right())
	}
	if in.IsKeyPressed(core.KeyA) {
		move = move.Sub(t.Right())
	}
	if move.LengthSqr() > 0 {
		t.Position = t.Position.Add(move.Normalize().Mul(speed))
	}
}
