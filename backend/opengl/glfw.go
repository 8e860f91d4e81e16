package opengl

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/axes"
)

// Window is the GLFW window shell. It owns the window and its GL context and
// forwards input to an axes.App.
type Window struct {
	window *glfw.Window
	app    *axes.App
	logger *slog.Logger
}

// NewWindow initializes GLFW, creates one fixed-size window with a core
// profile context, makes it current and loads GL.
// Must be called from the main thread. Destroy undoes all of it.
func NewWindow(cfg axes.WindowConfig, app *axes.App) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	if cfg.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(cfg.SwapInterval)

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	w := &Window{
		window: win,
		app:    app,
		logger: app.Logger(),
	}

	// Setup callbacks
	win.SetKeyCallback(w.keyCallback)
	win.SetMouseButtonCallback(w.mouseButtonCallback)

	w.logger.Info("window created",
		"width", cfg.Width, "height", cfg.Height,
		"gl", gl.GoStr(gl.GetString(gl.VERSION)))

	return w, nil
}

// ShouldClose reports whether the OS or the exit key requested close.
func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose() || w.app.CloseRequested()
}

// PollEvents processes pending events, running callbacks before it returns.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	w.window.SwapBuffers()
}

// FramebufferSize returns the framebuffer size in pixels, which differs from
// the window size on high-DPI displays.
func (w *Window) FramebufferSize() (int, int) {
	return w.window.GetFramebufferSize()
}

// Destroy destroys the window and terminates GLFW.
func (w *Window) Destroy() {
	if w.window == nil {
		return
	}
	w.window.Destroy()
	w.window = nil
	glfw.Terminate()
	w.logger.Info("window destroyed")
}

func (w *Window) keyCallback(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	w.app.HandleKey(glfwKeyToAxes(key), glfwActionToAxes(action))
	if w.app.CloseRequested() {
		win.SetShouldClose(true)
	}
}

func (w *Window) mouseButtonCallback(win *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := glfwMouseButtonToAxes(button)
	if b == axes.MouseButtonNone {
		return
	}
	x, y := win.GetCursorPos()
	w.app.HandleMouseButton(b, glfwActionToAxes(action), x, y)
}

// glfwKeyToAxes maps GLFW keys to axes keys.
func glfwKeyToAxes(key glfw.Key) axes.Key {
	switch key {
	case glfw.KeyEscape:
		return axes.KeyEscape
	case glfw.KeyEnter:
		return axes.KeyEnter
	case glfw.KeySpace:
		return axes.KeySpace
	case glfw.KeyQ:
		return axes.KeyQ
	default:
		return axes.KeyNone
	}
}

// glfwMouseButtonToAxes maps GLFW mouse buttons to axes mouse buttons.
func glfwMouseButtonToAxes(button glfw.MouseButton) axes.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return axes.MouseButtonLeft
	case glfw.MouseButtonRight:
		return axes.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return axes.MouseButtonMiddle
	default:
		return axes.MouseButtonNone
	}
}

func glfwActionToAxes(action glfw.Action) axes.Action {
	switch action {
	case glfw.Press:
		return axes.Press
	case glfw.Repeat:
		return axes.Repeat
	default:
		return axes.Release
	}
}
