// Package opengl provides the OpenGL 4.1 and GLFW backend for package axes.
package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/axes"
)

// Renderer executes axes draw lists with direct GL calls.
// It requires a current GL context on the calling thread.
type Renderer struct {
	width  int
	height int
}

// NewRenderer creates a renderer and sets the viewport to width x height.
func NewRenderer(width, height int) *Renderer {
	r := &Renderer{}
	r.Resize(width, height)
	return r
}

// Resize updates the viewport size.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Render executes every command in dl in order.
func (r *Renderer) Render(dl *axes.DrawList) error {
	if dl == nil {
		return nil
	}

	for i, cmd := range dl.CmdBuffer {
		switch cmd.Kind {
		case axes.CmdClear:
			gl.ClearColor(cmd.Color[0], cmd.Color[1], cmd.Color[2], cmd.Color[3])
			gl.Clear(gl.COLOR_BUFFER_BIT)
		case axes.CmdUseProgram:
			gl.UseProgram(cmd.ID)
		case axes.CmdUniform3f:
			gl.Uniform3f(cmd.Location, cmd.Vec3[0], cmd.Vec3[1], cmd.Vec3[2])
		case axes.CmdBindVertexArray:
			gl.BindVertexArray(cmd.ID)
		case axes.CmdLineWidth:
			gl.LineWidth(cmd.Width)
		case axes.CmdDrawArrays:
			mode, ok := primitiveToGL(cmd.Mode)
			if !ok {
				return fmt.Errorf("command %d: unknown primitive %d", i, cmd.Mode)
			}
			gl.DrawArrays(mode, cmd.First, cmd.Count)
		default:
			return fmt.Errorf("command %d: unknown kind %v", i, cmd.Kind)
		}
	}

	return nil
}

// primitiveToGL maps axes primitives to GL draw modes.
func primitiveToGL(p axes.Primitive) (uint32, bool) {
	switch p {
	case axes.Lines:
		return gl.LINES, true
	case axes.LineStrip:
		return gl.LINE_STRIP, true
	case axes.Triangles:
		return gl.TRIANGLES, true
	default:
		return 0, false
	}
}
