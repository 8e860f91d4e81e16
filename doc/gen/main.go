// Command gen renders the axes scene in a hidden window and saves a JPEG
// screenshot to doc/imgs/axes.jpg.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image/jpeg"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-theft-auto/axes"
	"github.com/go-theft-auto/axes/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg := axes.DefaultConfig()
	cfg.Window.Hidden = true
	cfg.Window.Title = "screenshot-gen"
	cfg.Shader.Vertex = filepath.Join("example", "shader", "axes.vert")
	cfg.Shader.Fragment = filepath.Join("example", "shader", "axes.frag")

	app := axes.NewApp(
		axes.WithSize(cfg.Size()),
		axes.WithClickOutput(io.Discard),
		axes.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, nil))),
	)

	window, err := opengl.NewWindow(cfg.Window, app)
	if err != nil {
		return err
	}
	teardown := axes.NewTeardown(window)
	defer teardown.Release()

	program, err := opengl.LoadProgram(cfg.Shader.Vertex, cfg.Shader.Fragment)
	if err != nil {
		return err
	}
	teardown.Add(program)

	geom, err := opengl.NewGeometry(axes.AxisVertices(), axes.VertexLayout)
	if err != nil {
		return err
	}
	teardown.Add(geom)

	renderer := opengl.NewRenderer(window.FramebufferSize())
	scene := axes.NewScene(program.ID(), program.UniformLocation("color"), geom.VertexArray(), geom.Count())

	// Render without swapping so the pixels stay in the back buffer.
	dl := axes.AcquireDrawList()
	defer axes.ReleaseDrawList(dl)
	for i := 0; i < 2; i++ {
		dl.Clear()
		scene.Record(dl)
		if err := renderer.Render(dl); err != nil {
			return err
		}
	}

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	path := filepath.Join(outDir, "axes.jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	img := renderer.Capture()
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 90}); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	fmt.Printf("  %s (%dx%d)\n", path, img.Bounds().Dx(), img.Bounds().Dy())
	return nil
}
