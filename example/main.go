// Example draws the X and Y axes and prints the normalized position of every
// left click. ESC or closing the window exits.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	cd example && go run .    # shader paths are relative to the working directory
//
// Flags override values from the optional TOML config file.
//
// Any setup failure, including a shader that fails to compile or link, is
// printed to stderr and exits with status 1.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/axes"
	"github.com/go-theft-auto/axes/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := parseConfig(args)
	if err != nil {
		return err
	}

	level, err := axes.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	app := axes.NewApp(
		axes.WithSize(cfg.Size()),
		axes.WithExitKey(axes.ParseKey(cfg.Window.ExitKey)),
		axes.WithClickOutput(os.Stdout),
		axes.WithLogger(logger),
	)

	window, err := opengl.NewWindow(cfg.Window, app)
	if err != nil {
		return err
	}
	teardown := axes.NewTeardown(window)
	defer teardown.Release()

	renderer := opengl.NewRenderer(window.FramebufferSize())

	program, err := opengl.LoadProgram(cfg.Shader.Vertex, cfg.Shader.Fragment)
	if err != nil {
		return fmt.Errorf("load shader: %w", err)
	}
	teardown.Add(program)
	program.Use()
	logger.Info("shader program linked", "program", program.ID())

	geom, err := opengl.NewGeometry(axes.AxisVertices(), axes.VertexLayout)
	if err != nil {
		return fmt.Errorf("upload geometry: %w", err)
	}
	teardown.Add(geom)

	scene := axes.NewScene(program.ID(), program.UniformLocation("color"), geom.VertexArray(), geom.Count())
	scene.Background = mgl32.Vec4(cfg.Render.Background)
	scene.LineColor = mgl32.Vec3(cfg.Render.LineColor)
	scene.LineWidth = cfg.Render.LineWidth

	loop := axes.NewLoop(window, renderer, scene)
	if err := loop.Run(); err != nil {
		return err
	}
	logger.Info("loop stopped", "frames", loop.Frames())

	return nil
}

func parseConfig(args []string) (axes.Config, error) {
	fs := flag.NewFlagSet("axes", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to a TOML config file")
	vertex := fs.String("vertex", "", "Vertex shader source path")
	fragment := fs.String("fragment", "", "Fragment shader source path")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return axes.Config{}, err
	}

	cfg := axes.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = axes.LoadConfig(*configPath); err != nil {
			return cfg, err
		}
	}

	if *vertex != "" {
		cfg.Shader.Vertex = *vertex
	}
	if *fragment != "" {
		cfg.Shader.Fragment = *fragment
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	return cfg, cfg.Validate()
}
