package axes

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidConfig is wrapped by every Config.Validate failure.
var ErrInvalidConfig = errors.New("axes: invalid config")

// Defaults used by DefaultConfig and NewScene.
var (
	DefaultBackground = mgl32.Vec4{0.2, 0.3, 0.3, 1.0}
	DefaultLineColor  = mgl32.Vec3{1, 1, 1}
)

const (
	DefaultWidth     = 800
	DefaultHeight    = 800
	DefaultTitle     = "axes"
	DefaultLineWidth = 4.0
)

// Config holds everything the demo reads at start-up.
type Config struct {
	Window WindowConfig `toml:"window"`
	Shader ShaderConfig `toml:"shader"`
	Render RenderConfig `toml:"render"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
}

// WindowConfig configures the window and its GL context.
type WindowConfig struct {
	Width        int    `toml:"width"`
	Height       int    `toml:"height"`
	Title        string `toml:"title"`
	GLMajor      int    `toml:"gl_major"`
	GLMinor      int    `toml:"gl_minor"`
	SwapInterval int    `toml:"swap_interval"`
	ExitKey      string `toml:"exit_key"`
	// Hidden creates an invisible window, for offscreen captures.
	Hidden bool `toml:"hidden"`
}

// ShaderConfig names the shader source files.
type ShaderConfig struct {
	Vertex   string `toml:"vertex"`
	Fragment string `toml:"fragment"`
}

// RenderConfig holds the per-frame constants.
type RenderConfig struct {
	Background [4]float32 `toml:"background"`
	LineColor  [3]float32 `toml:"line_color"`
	LineWidth  float32    `toml:"line_width"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:        DefaultWidth,
			Height:       DefaultHeight,
			Title:        DefaultTitle,
			GLMajor:      4,
			GLMinor:      1,
			SwapInterval: 1,
			ExitKey:      KeyName(KeyEscape),
		},
		Shader: ShaderConfig{
			Vertex:   "shader/axes.vert",
			Fragment: "shader/axes.frag",
		},
		Render: RenderConfig{
			Background: DefaultBackground,
			LineColor:  DefaultLineColor,
			LineWidth:  DefaultLineWidth,
		},
		LogLevel: "info",
	}
}

// LoadConfig reads a TOML file over the defaults and validates the result.
// Keys missing from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	case c.Window.GLMajor < 3:
		return fmt.Errorf("%w: GL %d.%d is below 3.3", ErrInvalidConfig, c.Window.GLMajor, c.Window.GLMinor)
	case c.Window.GLMajor == 3 && c.Window.GLMinor < 3:
		return fmt.Errorf("%w: GL %d.%d is below 3.3", ErrInvalidConfig, c.Window.GLMajor, c.Window.GLMinor)
	case ParseKey(c.Window.ExitKey) == KeyNone:
		return fmt.Errorf("%w: unknown exit key %q", ErrInvalidConfig, c.Window.ExitKey)
	case c.Shader.Vertex == "" || c.Shader.Fragment == "":
		return fmt.Errorf("%w: shader paths must be set", ErrInvalidConfig)
	case c.Render.LineWidth <= 0:
		return fmt.Errorf("%w: line width %v", ErrInvalidConfig, c.Render.LineWidth)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Size returns the configured window size.
func (c Config) Size() Size {
	return Size{W: c.Window.Width, H: c.Window.Height}
}

// ParseLogLevel maps a config log level to slog.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, s)
	}
}
