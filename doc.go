/*
Package axes draws a coordinate axis cross with OpenGL and reports mouse
clicks in normalized device coordinates.

# Overview

The package is split the same way a GL program is: the root package holds
everything that does not touch the GPU, and backend/opengl holds the GLFW
window shell and the GL executor.

  - App receives input events and owns the close flag.
  - Scene records the per-frame commands into a DrawList.
  - Loop is the RUNNING/STOPPED state machine over a Window and a Renderer.

# Quick Start

	app := axes.NewApp(axes.WithSize(cfg.Size()))
	window, _ := opengl.NewWindow(cfg.Window, app)
	defer window.Destroy()

	program, _ := opengl.LoadProgram(cfg.Shader.Vertex, cfg.Shader.Fragment)
	defer program.Delete()

	geom, _ := opengl.NewGeometry(axes.AxisVertices(), axes.VertexLayout)
	defer geom.Delete()

	scene := axes.NewScene(program.ID(), program.UniformLocation("color"),
	    geom.VertexArray(), geom.Count())
	renderer := opengl.NewRenderer(window.FramebufferSize())
	err := axes.NewLoop(window, renderer, scene).Run()

# Coordinates

A click at pixel (px, py) in a W×H window is reported as

	x = px/(W/2) - 1
	y = 1 - py/(H/2)

so the center is (0, 0), the top-left corner (-1, 1) and the bottom-right
corner (1, -1).

# Threading

GLFW and GL calls must happen on the main OS thread. The example program locks
it in init. Nothing in this package starts goroutines.
*/
package axes
