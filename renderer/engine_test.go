package renderer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"playground/math"
	"playground/scene"
)

// stubShader records bind calls; uniform uploads are ignored.
type stubShader struct {
	id   uint32
	name string
	log  *[]string
}

func (s *stubShader) ID() uint32 { return s.id }

func (s *stubShader) Bind() {
	*s.log = append(*s.log, "shader:"+s.name)
}

func (s *stubShader) SetUniformInt(name string, v int32)      {}
func (s *stubShader) SetUniformFloat(name string, v float32)  {}
func (s *stubShader) SetUniformVec3(name string, v math.Vec3) {}
func (s *stubShader) SetUniformMat3(name string, m math.Mat3) {}
func (s *stubShader) SetUniformMat4(name string, m math.Mat4) {}

type stubMesh struct {
	name string
	log  *[]string
}

func (m *stubMesh) Draw() {
	*m.log = append(*m.log, "draw:"+m.name)
}

type renderFixture struct {
	reg *scene.Registry
	log []string
}

func (f *renderFixture) shader(id uint32, name string) *stubShader {
	return &stubShader{id: id, name: name, log: &f.log}
}

func (f *renderFixture) add(name string, mat *scene.Material) scene.Entity {
	e := f.reg.Create(name)
	f.reg.SetRenderer(e, scene.RendererComponent{
		Mesh:     &stubMesh{name: name, log: &f.log},
		Material: mat,
	})
	return e
}

func newFixture() *renderFixture {
	return &renderFixture{reg: scene.NewRegistry()}
}

func TestRenderGroupsByShader(t *testing.T) {
	f := newFixture()
	red := f.shader(1, "red")
	blue := f.shader(2, "blue")

	matRed := scene.NewMaterial("red", red)
	matBlue := scene.NewMaterial("blue", blue)

	// Interleave shader use across entities
	f.add("a", matRed)
	f.add("b", matBlue)
	f.add("c", matRed)
	f.add("d", matBlue)

	f.reg.UpdateWorldMatrices()
	eng := New()
	eng.RenderWith(f.reg, math.Mat4Identity(), math.Mat4Identity())

	// Each shader binds exactly once despite interleaved creation order
	assert.Equal(t, 2, eng.Stats().ShaderBinds)
	assert.Equal(t, 4, eng.Stats().DrawCalls)
	assert.Equal(t, []string{
		"shader:red", "draw:a", "draw:c",
		"shader:blue", "draw:b", "draw:d",
	}, f.log)
}

func TestRenderLayerOrderBeatsShaderOrder(t *testing.T) {
	f := newFixture()
	sky := f.shader(1, "sky") // lowest shader ID
	lit := f.shader(2, "lit")

	matSky := scene.NewMaterial("sky", sky)
	matSky.Layer = 100
	matLit := scene.NewMaterial("lit", lit)

	f.add("skybox", matSky)
	f.add("ground", matLit)

	f.reg.UpdateWorldMatrices()
	eng := New()
	eng.RenderWith(f.reg, math.Mat4Identity(), math.Mat4Identity())

	// The high layer draws last even though its shader ID sorts first
	assert.Equal(t, []string{
		"shader:lit", "draw:ground",
		"shader:sky", "draw:skybox",
	}, f.log)
}

func TestRenderMaterialBindsPerRun(t *testing.T) {
	f := newFixture()
	lit := f.shader(1, "lit")

	matA := scene.NewMaterial("a", lit)
	matB := scene.NewMaterial("b", lit)

	f.add("m1", matA)
	f.add("m2", matB)
	f.add("m3", matA)
	f.add("m4", matA)

	f.reg.UpdateWorldMatrices()
	eng := New()
	eng.RenderWith(f.reg, math.Mat4Identity(), math.Mat4Identity())

	// One shader bind; materials group into two contiguous runs
	assert.Equal(t, 1, eng.Stats().ShaderBinds)
	assert.Equal(t, 2, eng.Stats().MaterialBinds)
	assert.Equal(t, []string{
		"shader:lit", "draw:m1", "draw:m3", "draw:m4", "draw:m2",
	}, f.log)
}

func TestRenderStableWithinEqualKeys(t *testing.T) {
	f := newFixture()
	lit := f.shader(1, "lit")
	mat := scene.NewMaterial("shared", lit)

	for i := 0; i < 5; i++ {
		f.add(fmt.Sprintf("e%d", i), mat)
	}

	f.reg.UpdateWorldMatrices()
	eng := New()
	eng.RenderWith(f.reg, math.Mat4Identity(), math.Mat4Identity())

	assert.Equal(t, []string{
		"shader:lit", "draw:e0", "draw:e1", "draw:e2", "draw:e3", "draw:e4",
	}, f.log)
}

func TestRenderSkipsIncompleteComponents(t *testing.T) {
	f := newFixture()
	lit := f.shader(1, "lit")
	mat := scene.NewMaterial("lit", lit)

	f.add("ok", mat)

	// Renderer with no mesh
	noMesh := f.reg.Create("noMesh")
	f.reg.SetRenderer(noMesh, scene.RendererComponent{Material: mat})

	// Renderer with no material
	noMat := f.reg.Create("noMat")
	f.reg.SetRenderer(noMat, scene.RendererComponent{Mesh: &stubMesh{name: "noMat", log: &f.log}})

	// Entity with no renderer at all
	f.reg.Create("bare")

	f.reg.UpdateWorldMatrices()
	eng := New()
	eng.RenderWith(f.reg, math.Mat4Identity(), math.Mat4Identity())

	assert.Equal(t, 1, eng.Stats().DrawCalls)
	assert.Equal(t, []string{"shader:lit", "draw:ok"}, f.log)
}

func TestRenderStatsResetEachFrame(t *testing.T) {
	f := newFixture()
	lit := f.shader(1, "lit")
	mat := scene.NewMaterial("lit", lit)
	f.add("only", mat)

	f.reg.UpdateWorldMatrices()
	eng := New()
	eng.RenderWith(f.reg, math.Mat4Identity(), math.Mat4Identity())
	eng.RenderWith(f.reg, math.Mat4Identity(), math.Mat4Identity())

	assert.Equal(t, 1, eng.Stats().DrawCalls)
	assert.Equal(t, 1, eng.Stats().ShaderBinds)
}
