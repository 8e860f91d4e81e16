package axes

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// App is the state shared by the input callbacks: window size, exit key and
// the close flag. The platform shell owns one App and forwards events to it.
type App struct {
	size    Size
	exitKey Key
	clicks  io.Writer
	logger  *slog.Logger

	closeRequested bool
	lastClick      [2]float64
	clicked        bool
}

// AppOption configures an App.
type AppOption func(*App)

// WithSize sets the window size used for coordinate conversion.
func WithSize(size Size) AppOption {
	return func(a *App) { a.size = size }
}

// WithExitKey sets the key that requests close. KeyNone is ignored.
func WithExitKey(key Key) AppOption {
	return func(a *App) {
		if key != KeyNone {
			a.exitKey = key
		}
	}
}

// WithClickOutput sets where left-click reports are written.
func WithClickOutput(w io.Writer) AppOption {
	return func(a *App) { a.clicks = w }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *slog.Logger) AppOption {
	return func(a *App) { a.logger = l }
}

// NewApp creates an App for an 800x800 window that closes on Escape and
// prints clicks to stdout.
func NewApp(opts ...AppOption) *App {
	a := &App{
		size:    Size{W: DefaultWidth, H: DefaultHeight},
		exitKey: KeyEscape,
		clicks:  os.Stdout,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Size returns the window size.
func (a *App) Size() Size {
	return a.size
}

// Logger returns the diagnostics logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// HandleKey processes one key transition.
func (a *App) HandleKey(key Key, action Action) {
	if key == a.exitKey && action == Press {
		a.logger.Debug("exit key pressed", "key", KeyName(key))
		a.closeRequested = true
	}
}

// HandleMouseButton processes one mouse button transition with the cursor at
// (px, py) window pixels.
func (a *App) HandleMouseButton(button MouseButton, action Action, px, py float64) {
	if action != Press {
		return
	}

	switch button {
	case MouseButtonLeft:
		x, y := PixelToNDC(px, py, a.size)
		a.lastClick = [2]float64{x, y}
		a.clicked = true
		fmt.Fprintf(a.clicks, "Mouse clicked at position: %.6g, %.6g\n", x, y)
	case MouseButtonRight:
		// Placeholder: nothing consumes right clicks yet.
		x, y := PixelToNDC(px, py, a.size)
		a.logger.Debug("right click ignored", "x", x, "y", y)
	}
}

// CloseRequested reports whether the exit key has been pressed.
func (a *App) CloseRequested() bool {
	return a.closeRequested
}

// RequestClose sets the close flag.
func (a *App) RequestClose() {
	a.closeRequested = true
}

// LastClick returns the normalized position of the most recent left click.
// ok is false until the first click.
func (a *App) LastClick() (x, y float64, ok bool) {
	return a.lastClick[0], a.lastClick[1], a.clicked
}
