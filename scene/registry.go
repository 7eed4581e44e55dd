package scene

import "playground/math"

// Entity identifies an entity in a Registry. The zero value means "none";
// valid entities are index+1 so they can double as parent references.
type Entity uint32

const NoEntity Entity = 0

// RendererComponent ties a mesh to the material it draws with.
type RendererComponent struct {
	Mesh     Mesh
	Material *Material
}

// Registry owns all entities of a scene in parallel slices indexed by
// Entity-1. Behaviours attach per entity and run in attachment order;
// entities update in creation order.
type Registry struct {
	names       []string
	transforms  []Transform
	renderers   []RendererComponent
	hasRenderer []bool
	behaviours  [][]Behaviour

	world      []math.Mat4
	worldState []uint8
}

const (
	worldUnvisited uint8 = iota
	worldVisiting
	worldDone
)

func NewRegistry() *Registry {
	return &Registry{}
}

// Create adds a new entity with an identity transform.
func (r *Registry) Create(name string) Entity {
	r.names = append(r.names, name)
	r.transforms = append(r.transforms, NewTransform())
	r.renderers = append(r.renderers, RendererComponent{})
	r.hasRenderer = append(r.hasRenderer, false)
	r.behaviours = append(r.behaviours, nil)
	r.world = append(r.world, math.Mat4Identity())
	r.worldState = append(r.worldState, worldUnvisited)
	return Entity(len(r.names))
}

func (r *Registry) Count() int {
	return len(r.names)
}

func (r *Registry) Name(e Entity) string {
	return r.names[e-1]
}

// Transform returns a pointer into the arena; valid until the next Create.
func (r *Registry) Transform(e Entity) *Transform {
	return &r.transforms[e-1]
}

func (r *Registry) SetRenderer(e Entity, rc RendererComponent) {
	r.renderers[e-1] = rc
	r.hasRenderer[e-1] = true
}

func (r *Registry) Renderer(e Entity) (*RendererComponent, bool) {
	if !r.hasRenderer[e-1] {
		return nil, false
	}
	return &r.renderers[e-1], true
}

// EachRenderer visits every entity with a renderer component, in creation
// order.
func (r *Registry) EachRenderer(fn func(e Entity, rc *RendererComponent)) {
	for i := range r.renderers {
		if r.hasRenderer[i] {
			fn(Entity(i+1), &r.renderers[i])
		}
	}
}

// Attach adds a behaviour to an entity. Behaviours run in attachment order.
func (r *Registry) Attach(e Entity, b Behaviour) {
	r.behaviours[e-1] = append(r.behaviours[e-1], b)
}

func (r *Registry) Behaviours(e Entity) []Behaviour {
	return r.behaviours[e-1]
}

// DispatchBehaviours runs every enabled behaviour, entities in creation
// order and behaviours in attachment order within an entity.
func (r *Registry) DispatchBehaviours(ctx *UpdateContext) {
	for i := range r.behaviours {
		h := Handle{Reg: r, Entity: Entity(i + 1)}
		for _, b := range r.behaviours[i] {
			if b.Enabled() {
				b.Update(ctx, h)
			}
		}
	}
}

// UpdateWorldMatrices recomputes every entity's world matrix, resolving
// parents first. Call once per frame after behaviours have run.
func (r *Registry) UpdateWorldMatrices() {
	for i := range r.worldState {
		r.worldState[i] = worldUnvisited
	}
	for i := range r.transforms {
		r.resolveWorld(i)
	}
}

// WorldMatrix returns the matrix computed by the last UpdateWorldMatrices.
func (r *Registry) WorldMatrix(e Entity) math.Mat4 {
	return r.world[e-1]
}

func (r *Registry) resolveWorld(idx int) math.Mat4 {
	switch r.worldState[idx] {
	case worldDone:
		return r.world[idx]
	case worldVisiting:
		// Parent cycle: treat the closing edge as a root so the walk
		// terminates instead of recursing forever.
		return r.transforms[idx].LocalMatrix()
	}
	r.worldState[idx] = worldVisiting

	t := &r.transforms[idx]
	world := t.LocalMatrix()
	if t.Parent != NoEntity && int(t.Parent) <= len(r.transforms) {
		world = world.Mul(r.resolveWorld(int(t.Parent) - 1))
	}

	r.world[idx] = world
	r.worldState[idx] = worldDone
	return world
}
