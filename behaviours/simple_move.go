package behaviours

import (
	"playground/core"
	"playground/math"
	"playground/scene"
)

// SimpleMove rotates its entity from keyboard input: Q/E yaw, up/down arrow
// pitch, left/right arrow roll. With Relative set, rotations happen about
// the entity's local axes instead of the world axes.
type SimpleMove struct {
	scene.State
	TurnSpeed float32 // radians per second
	Relative  bool
}

func NewSimpleMove(turnSpeed float32) *SimpleMove {
	return &SimpleMove{TurnSpeed: turnSpeed}
}

func (b *SimpleMove) Update(ctx *scene.UpdateContext, h scene.Handle) {
	t := h.Transform()
	step := b.TurnSpeed * ctx.Delta

	rotate := t.RotateWorld
	if b.Relative {
		rotate = t.Rotate
	}

	if ctx.Input.IsKeyPressed(core.KeyQ) {
		rotate(math.Vec3Up, step)
	}
	if ctx.Input.IsKeyPressed(core.KeyE) {
		rotate(math.Vec3Up, -step)
	}
	if ctx.Input.IsKeyPressed(core.KeyUp) {
		rotate(math.Vec3Right, step)
	}
	if ctx.Input.IsKeyPressed(core.KeyDown) {
		rotate(math.Vec3Right, -step)
	}
	if ctx.Input.IsKeyPressed(core.KeyLeft) {
		rotate(math.Vec3Front, step)
	}
	if ctx.Input.IsKeyPressed(core.KeyRight) {
		rotate(math.Vec3Front, -step)
	}
}
