package behaviours

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playground/core"
	"playground/math"
	"playground/scene"
)

// fakeInput satisfies scene.Input for driving behaviours in tests.
type fakeInput struct {
	keys   map[int]bool
	mouse  map[int]bool
	cx, cy float64
}

func newFakeInput() *fakeInput {
	return &fakeInput{keys: map[int]bool{}, mouse: map[int]bool{}}
}

func (f *fakeInput) IsKeyPressed(key int) bool            { return f.keys[key] }
func (f *fakeInput) IsMouseButtonPressed(button int) bool { return f.mouse[button] }
func (f *fakeInput) CursorPos() (float64, float64)        { return f.cx, f.cy }

func step(reg *scene.Registry, in *fakeInput, delta float32) {
	reg.DispatchBehaviours(&scene.UpdateContext{Input: in, Delta: delta})
}

func TestFollowPathMovesTowardWaypoint(t *testing.T) {
	reg := scene.NewRegistry()
	e := reg.Create("walker")

	path := NewFollowPath([]math.Vec3{
		math.NewVec3(10, 0, 0),
		math.NewVec3(10, 0, 10),
	}, 2.0)
	reg.Attach(e, path)

	in := newFakeInput()
	step(reg, in, 0.5) // moves 1 unit toward (10,0,0)

	pos := reg.Transform(e).Position
	assert.InDelta(t, 1.0, pos.X, 0.0001)
	assert.InDelta(t, 0.0, pos.Z, 0.0001)
	assert.Equal(t, 0, path.Target())
}

func TestFollowPathAdvancesAndLoops(t *testing.T) {
	reg := scene.NewRegistry()
	e := reg.Create("walker")

	path := NewFollowPath([]math.Vec3{
		math.NewVec3(1, 0, 0),
		math.NewVec3(1, 0, 1),
	}, 1.0)
	reg.Attach(e, path)

	in := newFakeInput()

	// Overshooting clamps onto the waypoint and advances the target
	step(reg, in, 1.0) // arrives exactly at (1,0,0)
	require.Equal(t, math.NewVec3(1, 0, 0), reg.Transform(e).Position)
	assert.Equal(t, 1, path.Target())

	step(reg, in, 1.0) // arrives at (1,0,1), wraps back to waypoint 0
	assert.Equal(t, math.NewVec3(1, 0, 1), reg.Transform(e).Position)
	assert.Equal(t, 0, path.Target())
}

func TestFollowPathEmptyIsNoop(t *testing.T) {
	reg := scene.NewRegistry()
	e := reg.Create("walker")
	reg.Attach(e, NewFollowPath(nil, 1.0))

	step(reg, newFakeInput(), 1.0)

	assert.Equal(t, math.Vec3Zero, reg.Transform(e).Position)
}

func TestSimpleMoveYaw(t *testing.T) {
	reg := scene.NewRegistry()
	e := reg.Create("spinner")
	reg.Attach(e, NewSimpleMove(math.Radians(90)))

	in := newFakeInput()
	in.keys[core.KeyQ] = true
	step(reg, in, 1.0) // 90 degrees of yaw

	// Yawing +90 about Y carries forward (+Z) to +X
	fwd := reg.Transform(e).Forward()
	assert.InDelta(t, 1.0, fwd.X, 0.001)
	assert.InDelta(t, 0.0, fwd.Z, 0.001)
}

func TestSimpleMoveDisabledViaDispatch(t *testing.T) {
	reg := scene.NewRegistry()
	e := reg.Create("spinner")
	mover := NewSimpleMove(math.Radians(90))
	reg.Attach(e, mover)

	in := newFakeInput()
	in.keys[core.KeyQ] = true

	mover.SetEnabled(false)
	step(reg, in, 1.0)

	assert.Equal(t, math.QuaternionIdentity(), reg.Transform(e).Rotation)
}

func TestSimpleMoveNoInputNoRotation(t *testing.T) {
	reg := scene.NewRegistry()
	e := reg.Create("spinner")
	reg.Attach(e, NewSimpleMove(math.Radians(90)))

	step(reg, newFakeInput(), 1.0)

	assert.Equal(t, math.QuaternionIdentity(), reg.Transform(e).Rotation)
}

func TestFreeLookMovesForward(t *testing.T) {
	reg := scene.NewRegistry()
	e := reg.Create("camera")
	look := NewFreeLook()
	look.MoveSpeed = 2
	reg.Attach(e, look)

	in := newFakeInput()
	in.keys[core.KeyW] = true
	step(reg, in, 0.5)

	pos := reg.Transform(e).Position
	assert.InDelta(t, 1.0, pos.Z, 0.001)
}

func TestFreeLookShiftSpeedsUp(t *testing.T) {
	reg := scene.NewRegistry()
	e := reg.Create("camera")
	look := NewFreeLook()
	look.MoveSpeed = 2
	look.FastFactor = 3
	reg.Attach(e, look)

	in := newFakeInput()
	in.keys[core.KeyW] = true
	in.keys[core.KeyLeftShift] = true
	step(reg, in, 0.5)

	pos := reg.Transform(e).Position
	assert.InDelta(t, 3.0, pos.Z, 0.001)
}

func TestFreeLookDragRotates(t *testing.T) {
	reg := scene.NewRegistry()
	e := reg.Create("camera")
	look := NewFreeLook()
	look.Sensitivity = 0.01
	reg.Attach(e, look)

	in := newFakeInput()
	in.mouse[core.MouseButtonRight] = true

	// First frame with the button down only records the cursor position
	step(reg, in, 0.016)
	require.Equal(t, math.QuaternionIdentity(), reg.Transform(e).Rotation)

	// Dragging right yaws the view
	in.cx = 100
	step(reg, in, 0.016)

	fwd := reg.Transform(e).Forward()
	assert.NotEqual(t, math.Vec3Front, fwd)
	assert.InDelta(t, 0.0, fwd.Y, 0.0001) // pure yaw keeps forward level
}
