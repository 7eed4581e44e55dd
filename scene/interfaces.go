package scene

import "playground/math"

// Shader is what the scene and renderer need from a compiled shader program.
// The graphics package provides the GL-backed implementation; tests use
// recording stubs.
type Shader interface {
	// ID is a stable identity minted at creation, used as a draw-sort key.
	ID() uint32
	Bind()
	SetUniformInt(name string, v int32)
	SetUniformFloat(name string, v float32)
	SetUniformVec3(name string, v math.Vec3)
	SetUniformMat3(name string, m math.Mat3)
	SetUniformMat4(name string, m math.Mat4)
}

// Texture binds itself to a texture unit.
type Texture interface {
	Bind(unit uint32)
}

// Mesh issues its own draw call. Shader binding and uniforms are the
// renderer's responsibility.
type Mesh interface {
	Draw()
}

// Input exposes the input state behaviours may read during update.
// *core.Window satisfies this.
type Input interface {
	IsKeyPressed(key int) bool
	IsMouseButtonPressed(button int) bool
	CursorPos() (float64, float64)
}
