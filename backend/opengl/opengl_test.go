package opengl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/axes"
)

func TestGLFWKeyToAxes(t *testing.T) {
	assert.Equal(t, axes.KeyEscape, glfwKeyToAxes(glfw.KeyEscape))
	assert.Equal(t, axes.KeyQ, glfwKeyToAxes(glfw.KeyQ))
	assert.Equal(t, axes.KeyNone, glfwKeyToAxes(glfw.KeyF5))
}

func TestGLFWMouseButtonToAxes(t *testing.T) {
	assert.Equal(t, axes.MouseButtonLeft, glfwMouseButtonToAxes(glfw.MouseButtonLeft))
	assert.Equal(t, axes.MouseButtonRight, glfwMouseButtonToAxes(glfw.MouseButtonRight))
	assert.Equal(t, axes.MouseButtonMiddle, glfwMouseButtonToAxes(glfw.MouseButtonMiddle))
	assert.Equal(t, axes.MouseButtonNone, glfwMouseButtonToAxes(glfw.MouseButton4))
}

func TestGLFWActionToAxes(t *testing.T) {
	assert.Equal(t, axes.Press, glfwActionToAxes(glfw.Press))
	assert.Equal(t, axes.Repeat, glfwActionToAxes(glfw.Repeat))
	assert.Equal(t, axes.Release, glfwActionToAxes(glfw.Release))
}

func TestPrimitiveToGL(t *testing.T) {
	mode, ok := primitiveToGL(axes.Lines)
	assert.True(t, ok)
	assert.Equal(t, uint32(gl.LINES), mode)

	_, ok = primitiveToGL(axes.Primitive(42))
	assert.False(t, ok)
}

func TestFlipRows(t *testing.T) {
	pixels := []byte{
		1, 1,
		2, 2,
		3, 3,
	}
	flipRows(pixels, 2, 3)
	assert.Equal(t, []byte{3, 3, 2, 2, 1, 1}, pixels)
}

func TestTrimLog(t *testing.T) {
	assert.Equal(t, "0:1(1): error: syntax error", trimLog([]byte("0:1(1): error: syntax error\n\x00")))
	assert.Equal(t, "", trimLog([]byte{0}))
}

func TestShaderKind(t *testing.T) {
	assert.Equal(t, "vertex", shaderKind(gl.VERTEX_SHADER))
	assert.Equal(t, "fragment", shaderKind(gl.FRAGMENT_SHADER))
}

func TestRenderer_NilDrawList(t *testing.T) {
	r := &Renderer{}
	assert.NoError(t, r.Render(nil))
}

func TestGeometry_RejectsEmpty(t *testing.T) {
	_, err := NewGeometry(nil, axes.VertexLayout)
	assert.ErrorIs(t, err, axes.ErrEmptyGeometry)
}

func TestLoadProgram_MissingFile(t *testing.T) {
	dir := t.TempDir()
	vert := filepath.Join(dir, "axes.vert")

	_, err := LoadProgram(vert, filepath.Join(dir, "axes.frag"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "read vertex shader")

	assert.NoError(t, os.WriteFile(vert, []byte("#version 410 core\n"), 0o644))
	_, err = LoadProgram(vert, filepath.Join(dir, "axes.frag"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "read fragment shader")
}
