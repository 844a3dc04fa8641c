package shader

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/mwheeler/bottlerack/internal/logger"
)

// Uniforms is the upload surface the scene layer pushes state through.
// Uniforms are addressed by the names they carry in the GLSL sources;
// those names are part of the shader contract.
type Uniforms interface {
	SetMat4(name string, m mgl32.Mat4)
	SetVec2(name string, v mgl32.Vec2)
	SetVec3(name string, v mgl32.Vec3)
	SetVec4(name string, v mgl32.Vec4)
	SetFloat(name string, f float32)
	SetInt(name string, i int32)
	SetBool(name string, b bool)
}

// Program wraps a linked GLSL program and caches uniform locations.
type Program struct {
	id   uint32
	locs map[string]int32
}

// NewProgram compiles and links the given sources into a Program.
func NewProgram(vertexSrc, fragmentSrc string) (*Program, error) {
	id, err := CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	return &Program{
		id:   id,
		locs: make(map[string]int32),
	}, nil
}

// Use makes this program the active one.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// ID returns the GL program object.
func (p *Program) ID() uint32 {
	return p.id
}

// Delete releases the GL program object.
func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

// location resolves and caches a uniform location. Unknown names resolve
// to -1, which GL silently ignores; a debug line is emitted once.
func (p *Program) location(name string) int32 {
	if loc, ok := p.locs[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	if loc < 0 {
		logger.Sugar.Debugf("uniform %q not found in program %d", name, p.id)
	}
	p.locs[name] = loc
	return loc
}

// SetMat4 uploads a 4x4 matrix uniform.
func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.location(name), 1, false, &m[0])
}

// SetVec2 uploads a vec2 uniform.
func (p *Program) SetVec2(name string, v mgl32.Vec2) {
	gl.Uniform2f(p.location(name), v.X(), v.Y())
}

// SetVec3 uploads a vec3 uniform.
func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3f(p.location(name), v.X(), v.Y(), v.Z())
}

// SetVec4 uploads a vec4 uniform.
func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	gl.Uniform4f(p.location(name), v.X(), v.Y(), v.Z(), v.W())
}

// SetFloat uploads a float uniform.
func (p *Program) SetFloat(name string, f float32) {
	gl.Uniform1f(p.location(name), f)
}

// SetInt uploads an int (or sampler slot) uniform.
func (p *Program) SetInt(name string, i int32) {
	gl.Uniform1i(p.location(name), i)
}

// SetBool uploads a bool uniform as an int.
func (p *Program) SetBool(name string, b bool) {
	var v int32
	if b {
		v = 1
	}
	gl.Uniform1i(p.location(name), v)
}
