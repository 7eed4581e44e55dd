package scene

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playground/math"
)

type recordingBehaviour struct {
	State
	log  *[]string
	name string
}

func (b *recordingBehaviour) Update(ctx *UpdateContext, h Handle) {
	*b.log = append(*b.log, b.name)
}

func TestDispatchOrder(t *testing.T) {
	reg := NewRegistry()
	var log []string

	first := reg.Create("first")
	second := reg.Create("second")

	// Attachment order within an entity, creation order across entities
	reg.Attach(second, &recordingBehaviour{log: &log, name: "second.a"})
	reg.Attach(first, &recordingBehaviour{log: &log, name: "first.a"})
	reg.Attach(first, &recordingBehaviour{log: &log, name: "first.b"})

	reg.DispatchBehaviours(&UpdateContext{Delta: 0.016})

	assert.Equal(t, []string{"first.a", "first.b", "second.a"}, log)
}

func TestDispatchSkipsDisabled(t *testing.T) {
	reg := NewRegistry()
	var log []string

	e := reg.Create("thing")
	b := &recordingBehaviour{log: &log, name: "b"}
	reg.Attach(e, b)

	b.SetEnabled(false)
	reg.DispatchBehaviours(&UpdateContext{})
	assert.Empty(t, log)

	// Re-enabling resumes updates with state intact
	b.SetEnabled(true)
	reg.DispatchBehaviours(&UpdateContext{})
	assert.Equal(t, []string{"b"}, log)
}

func TestBehaviourZeroValueEnabled(t *testing.T) {
	var s State
	assert.True(t, s.Enabled())
}

func TestGetBehaviour(t *testing.T) {
	reg := NewRegistry()
	var log []string

	e := reg.Create("thing")
	reg.Attach(e, &recordingBehaviour{log: &log, name: "x"})

	b, ok := Get[*recordingBehaviour](reg, e)
	require.True(t, ok)
	assert.Equal(t, "x", b.name)

	other := reg.Create("bare")
	_, ok = Get[*recordingBehaviour](reg, other)
	assert.False(t, ok)
}

func TestWorldMatrixHierarchy(t *testing.T) {
	reg := NewRegistry()

	parent := reg.Create("parent")
	child := reg.Create("child")

	reg.Transform(parent).Position = math.NewVec3(10, 0, 0)
	ct := reg.Transform(child)
	ct.Position = math.NewVec3(0, 5, 0)
	ct.Parent = parent

	reg.UpdateWorldMatrices()

	p := reg.WorldMatrix(child).MulVec3(math.Vec3Zero)
	assert.InDelta(t, 10, p.X, 0.0001)
	assert.InDelta(t, 5, p.Y, 0.0001)
}

func TestWorldMatrixParentRotationAffectsChild(t *testing.T) {
	reg := NewRegistry()

	parent := reg.Create("parent")
	child := reg.Create("child")

	reg.Transform(parent).Rotation = math.QuaternionFromAxisAngle(math.Vec3Up, math32.Pi/2)
	ct := reg.Transform(child)
	ct.Position = math.NewVec3(1, 0, 0)
	ct.Parent = parent

	reg.UpdateWorldMatrices()

	// 90 degrees about Y carries +X to -Z
	p := reg.WorldMatrix(child).MulVec3(math.Vec3Zero)
	assert.InDelta(t, 0, p.X, 0.0001)
	assert.InDelta(t, -1, p.Z, 0.0001)
}

func TestWorldMatrixParentDeclaredAfterChild(t *testing.T) {
	reg := NewRegistry()

	// Child created before its parent; resolution order must not matter
	child := reg.Create("child")
	parent := reg.Create("parent")

	reg.Transform(parent).Position = math.NewVec3(0, 0, 7)
	ct := reg.Transform(child)
	ct.Parent = parent

	reg.UpdateWorldMatrices()

	p := reg.WorldMatrix(child).MulVec3(math.Vec3Zero)
	assert.InDelta(t, 7, p.Z, 0.0001)
}

func TestWorldMatrixCycleTerminates(t *testing.T) {
	reg := NewRegistry()

	a := reg.Create("a")
	b := reg.Create("b")

	reg.Transform(a).Parent = b
	reg.Transform(b).Parent = a
	reg.Transform(a).Position = math.NewVec3(1, 0, 0)
	reg.Transform(b).Position = math.NewVec3(0, 1, 0)

	// Must not recurse forever; the closing edge is treated as a root,
	// so b composes with a's local only and a composes with b's world.
	reg.UpdateWorldMatrices()

	pb := reg.WorldMatrix(b).MulVec3(math.Vec3Zero)
	assert.InDelta(t, 1, pb.X, 0.0001)
	assert.InDelta(t, 1, pb.Y, 0.0001)

	pa := reg.WorldMatrix(a).MulVec3(math.Vec3Zero)
	assert.InDelta(t, 2, pa.X, 0.0001)
	assert.InDelta(t, 1, pa.Y, 0.0001)
}

func TestMaterialUniformOrder(t *testing.T) {
	mat := NewMaterial("test", nil)

	mat.Set("u_B", Float(1))
	mat.Set("u_A", Float(2))
	mat.Set("u_B", Float(3)) // overwrite keeps original position

	assert.Equal(t, []string{"u_B", "u_A"}, mat.order)

	v, ok := mat.Get("u_B")
	require.True(t, ok)
	assert.Equal(t, float32(3), v.Float)
}

func TestMaterialIDsAreOrdered(t *testing.T) {
	m1 := NewMaterial("first", nil)
	m2 := NewMaterial("second", nil)

	assert.Less(t, m1.ID(), m2.ID())
}

func TestCameraToggleOrtho(t *testing.T) {
	cam := NewCamera()
	assert.False(t, cam.IsOrtho())

	persp := cam.Projection()
	cam.ToggleOrtho()
	assert.True(t, cam.IsOrtho())
	ortho := cam.Projection()

	// Perspective has the -1 in the w row, orthographic does not
	assert.Equal(t, float32(-1), persp[2][3])
	assert.Equal(t, float32(0), ortho[2][3])

	cam.ToggleOrtho()
	assert.False(t, cam.IsOrtho())
}

func TestCameraViewMatrixCentersEye(t *testing.T) {
	cam := NewCamera()
	cam.SetPosition(math.NewVec3(0, 3, 8))
	cam.LookAt(math.Vec3Zero)

	view := cam.ViewMatrix()
	eye := view.MulVec3(cam.Position)

	assert.InDelta(t, 0, eye.X, 0.0001)
	assert.InDelta(t, 0, eye.Y, 0.0001)
	assert.InDelta(t, 0, eye.Z, 0.0001)
}
