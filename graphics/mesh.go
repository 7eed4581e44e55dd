package graphics

import (
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"playground/core"
)

// Mesh holds CPU-side geometry. GPU buffers are created lazily on the first
// Draw so meshes can be built before the GL context exists.
type Mesh struct {
	Name     string
	Vertices []core.Vertex
	Indices  []uint32

	vao      uint32
	vbo      uint32
	ebo      uint32
	uploaded bool
}

func NewMesh(name string, vertices []core.Vertex, indices []uint32) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: vertices,
		Indices:  indices,
	}
}

// Draw uploads the mesh on first use and issues the draw call. The caller is
// responsible for having bound a shader and set its uniforms.
func (m *Mesh) Draw() {
	if !m.uploaded {
		m.upload()
	}
	if m.vao == 0 {
		return
	}

	gl.BindVertexArray(m.vao)
	if len(m.Indices) > 0 {
		gl.DrawElements(gl.TRIANGLES, int32(len(m.Indices)), gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, int32(len(m.Vertices)))
	}
	gl.BindVertexArray(0)
}

func (m *Mesh) upload() {
	m.uploaded = true
	if len(m.Vertices) == 0 {
		return
	}

	stride := int32(unsafe.Sizeof(core.Vertex{}))

	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.BindVertexArray(m.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER,
		len(m.Vertices)*int(stride),
		gl.Ptr(m.Vertices),
		gl.STATIC_DRAW)

	var v core.Vertex
	posOff := int(unsafe.Offsetof(v.Position))
	normOff := int(unsafe.Offsetof(v.Normal))
	uvOff := int(unsafe.Offsetof(v.UV))
	colorOff := int(unsafe.Offsetof(v.Color))

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(posOff))

	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(normOff))

	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(uvOff))

	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 4, gl.FLOAT, false, stride, gl.PtrOffset(colorOff))

	if len(m.Indices) > 0 {
		gl.GenBuffers(1, &m.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER,
			len(m.Indices)*4,
			gl.Ptr(m.Indices),
			gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)
}

// InvertFaces flips the triangle winding and negates normals so the mesh
// renders from the inside, which is how the sky sphere is drawn.
func (m *Mesh) InvertFaces() {
	for i := 0; i+2 < len(m.Indices); i += 3 {
		m.Indices[i+1], m.Indices[i+2] = m.Indices[i+2], m.Indices[i+1]
	}
	for i := range m.Vertices {
		m.Vertices[i].Normal = m.Vertices[i].Normal.Negate()
	}
}

// Destroy frees the GPU buffers. Safe to call on a never-drawn mesh.
func (m *Mesh) Destroy() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(1, &m.vbo)
		if m.ebo != 0 {
			gl.DeleteBuffers(1, &m.ebo)
		}
		m.vao, m.vbo, m.ebo = 0, 0, 0
	}
	m.uploaded = false
}
