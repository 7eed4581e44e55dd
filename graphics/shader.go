package graphics

import (
	"fmt"
	"strings"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"playground/math"
)

// nextShaderID mints sort identities in creation order. Shaders are only
// created on the render thread, so a plain counter suffices.
var nextShaderID uint32

// Shader wraps a linked GL program together with a stable integer identity
// used as a draw-sort key and a cache of resolved uniform locations.
type Shader struct {
	id       uint32
	program  uint32
	uniforms map[string]int32
}

// NewShader compiles and links a vertex/fragment source pair. Sources must
// be NUL-terminated.
func NewShader(vertSrc, fragSrc string) (*Shader, error) {
	program, err := newProgram(vertSrc, fragSrc)
	if err != nil {
		return nil, err
	}
	nextShaderID++
	return &Shader{
		id:       nextShaderID,
		program:  program,
		uniforms: make(map[string]int32),
	}, nil
}

// ID returns the creation-order identity. Sorting draws by this groups all
// work for one program into a contiguous run.
func (s *Shader) ID() uint32 {
	return s.id
}

func (s *Shader) Bind() {
	gl.UseProgram(s.program)
}

func (s *Shader) Destroy() {
	gl.DeleteProgram(s.program)
}

// location resolves and caches a uniform location. Unknown names resolve to
// -1, which GL silently ignores on upload.
func (s *Shader) location(name string) int32 {
	if loc, ok := s.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(s.program, gl.Str(name+"\x00"))
	s.uniforms[name] = loc
	return loc
}

func (s *Shader) SetUniformInt(name string, v int32) {
	gl.Uniform1i(s.location(name), v)
}

func (s *Shader) SetUniformFloat(name string, v float32) {
	gl.Uniform1f(s.location(name), v)
}

func (s *Shader) SetUniformVec3(name string, v math.Vec3) {
	gl.Uniform3f(s.location(name), v.X, v.Y, v.Z)
}

func (s *Shader) SetUniformMat3(name string, m math.Mat3) {
	gl.UniformMatrix3fv(s.location(name), 1, false, (*float32)(unsafe.Pointer(&m[0][0])))
}

func (s *Shader) SetUniformMat4(name string, m math.Mat4) {
	gl.UniformMatrix4fv(s.location(name), 1, false, (*float32)(unsafe.Pointer(&m[0][0])))
}

// ── Program helpers ───────────────────────────────────────────────────────────

func newProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("link failed: %v", log)
	}

	gl.DeleteShader(vert)
	gl.DeleteShader(frag)
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("compile failed: %v", log)
	}
	return shader, nil
}
