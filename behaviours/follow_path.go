package behaviours

import (
	"playground/math"
	"playground/scene"
)

// FollowPath moves its entity along a closed loop of waypoints at constant
// speed. On reaching a waypoint the next one becomes the target, wrapping
// back to the first at the end.
type FollowPath struct {
	scene.State
	Points []math.Vec3
	Speed  float32

	target int
}

func NewFollowPath(points []math.Vec3, speed float32) *FollowPath {
	return &FollowPath{Points: points, Speed: speed}
}

// Target returns the index of the waypoint currently being approached.
func (b *FollowPath) Target() int {
	return b.target
}

func (b *FollowPath) Update(ctx *scene.UpdateContext, h scene.Handle) {
	if len(b.Points) == 0 {
		return
	}

	t := h.Transform()
	goal := b.Points[b.target]
	t.Position = t.Position.MoveTowards(goal, b.Speed*ctx.Delta)

	// MoveTowards lands exactly on the goal, so equality is safe here
	if t.Position == goal {
		b.target = (b.target + 1) % len(b.Points)
	}
}
