package axes

import "fmt"

// Renderer executes a frame's draw commands.
type Renderer interface {
	Render(dl *DrawList) error
}

// Window is the platform shell the loop drives.
type Window interface {
	// ShouldClose reports whether the OS or the App requested close.
	ShouldClose() bool
	// PollEvents delivers pending input, running callbacks synchronously.
	PollEvents()
	// SwapBuffers presents the finished frame.
	SwapBuffers()
}

// State is the loop state.
type State int

const (
	StateRunning State = iota
	StateStopped
)

func (s State) String() string {
	if s == StateStopped {
		return "stopped"
	}
	return "running"
}

// Loop renders a Scene into a Window until the window asks to close.
type Loop struct {
	window   Window
	renderer Renderer
	scene    *Scene

	state  State
	frames uint64
}

// NewLoop creates a running loop.
func NewLoop(window Window, renderer Renderer, scene *Scene) *Loop {
	return &Loop{
		window:   window,
		renderer: renderer,
		scene:    scene,
		state:    StateRunning,
	}
}

// State returns the current state.
func (l *Loop) State() State {
	return l.state
}

// Frames returns the number of frames presented.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Step runs one iteration. It returns false once the loop has stopped; the
// close predicate is only checked here, before any work for the frame.
func (l *Loop) Step() (bool, error) {
	if l.state == StateStopped {
		return false, nil
	}
	if l.window.ShouldClose() {
		l.state = StateStopped
		return false, nil
	}

	l.window.PollEvents()

	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	l.scene.Record(dl)
	if err := l.renderer.Render(dl); err != nil {
		l.state = StateStopped
		return false, fmt.Errorf("render frame %d: %w", l.frames, err)
	}

	l.window.SwapBuffers()
	l.frames++
	return true, nil
}

// Run steps until the loop stops.
func (l *Loop) Run() error {
	for {
		running, err := l.Step()
		if err != nil {
			return err
		}
		if !running {
			return nil
		}
	}
}
