package scene

// UpdateContext carries the per-frame state behaviours read during update.
type UpdateContext struct {
	Input Input
	Delta float32
}

// Handle gives a behaviour access to its own entity and the registry it
// lives in.
type Handle struct {
	Reg    *Registry
	Entity Entity
}

// Transform returns the entity's transform component.
func (h Handle) Transform() *Transform {
	return h.Reg.Transform(h.Entity)
}

// Behaviour is a per-entity update hook. Disabled behaviours stay attached
// but are skipped by the dispatch loop.
type Behaviour interface {
	Update(ctx *UpdateContext, h Handle)
	Enabled() bool
	SetEnabled(enabled bool)
}

// State implements the enabled flag; embed it in behaviour types. The zero
// value is enabled.
type State struct {
	disabled bool
}

func (s *State) Enabled() bool {
	return !s.disabled
}

func (s *State) SetEnabled(enabled bool) {
	s.disabled = !enabled
}

// Get returns the first behaviour of type T attached to e.
func Get[T Behaviour](r *Registry, e Entity) (T, bool) {
	for _, b := range r.Behaviours(e) {
		if t, ok := b.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}
