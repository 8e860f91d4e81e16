package opengl

import (
	"fmt"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Program is a linked vertex+fragment shader program.
type Program struct {
	id       uint32
	uniforms map[string]int32
}

// LoadProgram reads vertex and fragment shader sources from disk and links
// them into a program.
func LoadProgram(vertexPath, fragmentPath string) (*Program, error) {
	vertexSource, err := os.ReadFile(vertexPath)
	if err != nil {
		return nil, fmt.Errorf("read vertex shader: %w", err)
	}
	fragmentSource, err := os.ReadFile(fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("read fragment shader: %w", err)
	}

	p, err := NewProgram(string(vertexSource), string(fragmentSource))
	if err != nil {
		return nil, fmt.Errorf("%s + %s: %w", vertexPath, fragmentPath, err)
	}
	return p, nil
}

// NewProgram compiles and links a program from source strings.
func NewProgram(vertexSource, fragmentSource string) (*Program, error) {
	id, err := createShaderProgram(vertexSource, fragmentSource)
	if err != nil {
		return nil, err
	}
	return &Program{id: id, uniforms: make(map[string]int32)}, nil
}

// ID returns the GL program name.
func (p *Program) ID() uint32 {
	return p.id
}

// Use makes this the active program for subsequent draw calls.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// UniformLocation returns the location of a uniform, or -1 if the program has
// no active uniform with that name. Lookups are cached.
func (p *Program) UniformLocation(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc
}

// Delete releases the program.
func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	// Shaders are no longer needed once linked into the program.
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("shader program linking failed: %s", trimLog(log))
	}

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader compilation failed: %s", shaderKind(shaderType), trimLog(log))
	}

	return shader, nil
}

func shaderKind(shaderType uint32) string {
	switch shaderType {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	default:
		return "unknown"
	}
}

// trimLog drops the NUL terminator and trailing newlines from a driver info log.
func trimLog(log []byte) string {
	n := len(log)
	for n > 0 && (log[n-1] == 0 || log[n-1] == '\n' || log[n-1] == '\r') {
		n--
	}
	return string(log[:n])
}
