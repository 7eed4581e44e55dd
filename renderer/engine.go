package renderer

import (
	"sort"

	"playground/math"
	"playground/scene"
)

// Stats counts the GPU work issued by the last Render call.
type Stats struct {
	DrawCalls     int
	ShaderBinds   int
	MaterialBinds int
}

// Engine draws a registry's renderable entities. Draws are sorted by
// (layer, shader identity, material identity) so shader and material state
// changes happen once per contiguous run instead of once per entity.
type Engine struct {
	stats Stats
	queue []drawItem
}

type drawItem struct {
	entity   scene.Entity
	mesh     scene.Mesh
	material *scene.Material
	model    math.Mat4
}

func New() *Engine {
	return &Engine{}
}

// Stats returns the counters from the last Render call.
func (e *Engine) Stats() Stats {
	return e.stats
}

// Render draws every entity with a renderer component using the camera's
// matrices. World matrices must be current; call
// Registry.UpdateWorldMatrices first.
func (e *Engine) Render(reg *scene.Registry, cam *scene.Camera) {
	e.RenderWith(reg, cam.ViewMatrix(), cam.Projection())
}

// RenderWith is Render with explicit view and projection matrices.
func (e *Engine) RenderWith(reg *scene.Registry, view, proj math.Mat4) {
	e.stats = Stats{}

	e.queue = e.queue[:0]
	reg.EachRenderer(func(ent scene.Entity, rc *scene.RendererComponent) {
		if rc.Mesh == nil || rc.Material == nil || rc.Material.Shader == nil {
			return
		}
		e.queue = append(e.queue, drawItem{
			entity:   ent,
			mesh:     rc.Mesh,
			material: rc.Material,
			model:    reg.WorldMatrix(ent),
		})
	})

	// Stable sort keeps creation order within equal keys, so draw order
	// stays deterministic frame to frame.
	sort.SliceStable(e.queue, func(i, j int) bool {
		a, b := e.queue[i], e.queue[j]
		if a.material.Layer != b.material.Layer {
			return a.material.Layer < b.material.Layer
		}
		if a.material.Shader.ID() != b.material.Shader.ID() {
			return a.material.Shader.ID() < b.material.Shader.ID()
		}
		return a.material.ID() < b.material.ID()
	})

	viewProj := view.Mul(proj)
	camPos := view.Inverse().MulVec3(math.Vec3Zero)
	// Rotation-only view for the sky: strip translation, keep orientation
	skyboxMatrix := view.Mat3().ToMat4().Mul(proj)

	var boundShader scene.Shader
	var boundMaterial *scene.Material

	for i := range e.queue {
		item := &e.queue[i]
		shader := item.material.Shader

		if boundShader == nil || shader.ID() != boundShader.ID() {
			shader.Bind()
			shader.SetUniformMat4("u_View", view)
			shader.SetUniformMat4("u_ViewProjection", viewProj)
			shader.SetUniformMat4("u_SkyboxMatrix", skyboxMatrix)
			shader.SetUniformVec3("u_CamPos", camPos)
			boundShader = shader
			boundMaterial = nil
			e.stats.ShaderBinds++
		}

		if item.material != boundMaterial {
			item.material.Apply()
			boundMaterial = item.material
			e.stats.MaterialBinds++
		}

		shader.SetUniformMat4("u_Model", item.model)
		shader.SetUniformMat4("u_ModelViewProjection", item.model.Mul(viewProj))
		shader.SetUniformMat3("u_NormalMatrix", item.model.NormalMatrix())

		item.mesh.Draw()
		e.stats.DrawCalls++
	}
}
