package scene

import "playground/math"

// nextMaterialID mints sort identities in creation order, same scheme as
// shader IDs.
var nextMaterialID uint32

// UniformKind discriminates the value stored in a UniformValue.
type UniformKind int

const (
	UniformFloat UniformKind = iota
	UniformInt
	UniformVec3
	UniformMat3
	UniformMat4
	UniformTexture
)

// UniformValue is a tagged union of the uniform types materials can carry.
type UniformValue struct {
	Kind    UniformKind
	Float   float32
	Int     int32
	Vec3    math.Vec3
	Mat3    math.Mat3
	Mat4    math.Mat4
	Texture Texture
}

func Float(v float32) UniformValue { return UniformValue{Kind: UniformFloat, Float: v} }

func Int(v int32) UniformValue { return UniformValue{Kind: UniformInt, Int: v} }

func Vec3(v math.Vec3) UniformValue { return UniformValue{Kind: UniformVec3, Vec3: v} }

func Mat3(m math.Mat3) UniformValue { return UniformValue{Kind: UniformMat3, Mat3: m} }

func Mat4(m math.Mat4) UniformValue { return UniformValue{Kind: UniformMat4, Mat4: m} }

func TextureValue(t Texture) UniformValue { return UniformValue{Kind: UniformTexture, Texture: t} }

// Material pairs a shader with a named set of uniform values and a render
// layer. Entities sharing a material are drawn back to back so its uniforms
// are applied once per run.
type Material struct {
	Name   string
	Shader Shader
	// Layer orders draws coarsely before shader/material grouping; higher
	// layers draw later. The sky sits on a high layer so it fills only the
	// pixels geometry left behind.
	Layer int

	id     uint32
	order  []string
	values map[string]UniformValue
}

func NewMaterial(name string, shader Shader) *Material {
	nextMaterialID++
	return &Material{
		Name:   name,
		Shader: shader,
		id:     nextMaterialID,
		values: make(map[string]UniformValue),
	}
}

// ID returns the creation-order identity used as a draw-sort key.
func (m *Material) ID() uint32 {
	return m.id
}

// Set stores a uniform value. First-set order is preserved and determines
// texture unit assignment during Apply.
func (m *Material) Set(name string, v UniformValue) {
	if _, ok := m.values[name]; !ok {
		m.order = append(m.order, name)
	}
	m.values[name] = v
}

// Get returns a stored uniform value.
func (m *Material) Get(name string) (UniformValue, bool) {
	v, ok := m.values[name]
	return v, ok
}

// Apply uploads all stored uniforms to the material's shader, binding
// textures to sequential units. The shader must already be bound.
func (m *Material) Apply() {
	unit := uint32(0)
	for _, name := range m.order {
		v := m.values[name]
		switch v.Kind {
		case UniformFloat:
			m.Shader.SetUniformFloat(name, v.Float)
		case UniformInt:
			m.Shader.SetUniformInt(name, v.Int)
		case UniformVec3:
			m.Shader.SetUniformVec3(name, v.Vec3)
		case UniformMat3:
			m.Shader.SetUniformMat3(name, v.Mat3)
		case UniformMat4:
			m.Shader.SetUniformMat4(name, v.Mat4)
		case UniformTexture:
			v.Texture.Bind(unit)
			m.Shader.SetUniformInt(name, int32(unit))
			unit++
		}
	}
}
