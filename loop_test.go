package axes_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/axes"
)

// mockWindow records loop calls. events, if set, runs inside PollEvents the
// way GLFW callbacks do, with the zero-based frame index.
type mockWindow struct {
	app       *axes.App
	osClose   bool
	closeAt   int // close after this many frames; 0 = never
	events    func(frame int)
	calls     []string
	polls     int
	swaps     int
}

func (w *mockWindow) ShouldClose() bool {
	w.calls = append(w.calls, "ShouldClose")
	if w.closeAt > 0 && w.swaps >= w.closeAt {
		w.osClose = true
	}
	return w.osClose || w.app.CloseRequested()
}

func (w *mockWindow) PollEvents() {
	w.calls = append(w.calls, "PollEvents")
	if w.events != nil {
		w.events(w.polls)
	}
	w.polls++
}

func (w *mockWindow) SwapBuffers() {
	w.calls = append(w.calls, "SwapBuffers")
	w.swaps++
}

// mockRenderer copies every frame's commands.
type mockRenderer struct {
	window *mockWindow
	frames [][]axes.DrawCmd
	err    error
}

func (r *mockRenderer) Render(dl *axes.DrawList) error {
	if r.window != nil {
		r.window.calls = append(r.window.calls, "Render")
	}
	if r.err != nil {
		return r.err
	}
	r.frames = append(r.frames, append([]axes.DrawCmd(nil), dl.CmdBuffer...))
	return nil
}

func newTestLoop(closeAt int) (*axes.Loop, *mockWindow, *mockRenderer, *axes.App) {
	app := axes.NewApp(axes.WithClickOutput(io.Discard))
	window := &mockWindow{app: app, closeAt: closeAt}
	renderer := &mockRenderer{window: window}
	scene := axes.NewScene(3, 7, 5, 4)
	return axes.NewLoop(window, renderer, scene), window, renderer, app
}

func TestLoop_RunsUntilOSClose(t *testing.T) {
	loop, window, renderer, _ := newTestLoop(5)

	require.NoError(t, loop.Run())

	assert.Equal(t, axes.StateStopped, loop.State())
	assert.Equal(t, uint64(5), loop.Frames())
	assert.Equal(t, 5, window.polls)
	assert.Equal(t, 5, window.swaps)
	assert.Len(t, renderer.frames, 5)
}

func TestLoop_StepOrder(t *testing.T) {
	loop, window, _, _ := newTestLoop(0)

	running, err := loop.Step()
	require.NoError(t, err)
	assert.True(t, running)

	assert.Equal(t, []string{"ShouldClose", "PollEvents", "Render", "SwapBuffers"}, window.calls)
}

func TestLoop_ExitKeyStopsAtNextBoundary(t *testing.T) {
	loop, window, _, app := newTestLoop(0)
	window.events = func(frame int) {
		if frame == 2 {
			app.HandleKey(axes.KeyEscape, axes.Press)
		}
	}

	require.NoError(t, loop.Run())

	// The frame in which the key arrived still completes.
	assert.Equal(t, uint64(3), loop.Frames())
	assert.Equal(t, 3, window.swaps)
	assert.Equal(t, axes.StateStopped, loop.State())
}

func TestLoop_OtherKeysKeepRunning(t *testing.T) {
	loop, window, _, app := newTestLoop(10)
	window.events = func(frame int) {
		app.HandleKey(axes.KeySpace, axes.Press)
		app.HandleKey(axes.KeyQ, axes.Press)
		app.HandleKey(axes.KeyEscape, axes.Release)
	}

	require.NoError(t, loop.Run())
	assert.Equal(t, uint64(10), loop.Frames())
}

func TestLoop_ClosedBeforeFirstFrame(t *testing.T) {
	loop, window, renderer, app := newTestLoop(0)
	app.RequestClose()

	running, err := loop.Step()
	require.NoError(t, err)
	assert.False(t, running)
	assert.Equal(t, axes.StateStopped, loop.State())
	assert.Zero(t, window.polls)
	assert.Empty(t, renderer.frames)
}

func TestLoop_StepAfterStopIsNoop(t *testing.T) {
	loop, window, _, _ := newTestLoop(1)
	require.NoError(t, loop.Run())
	calls := len(window.calls)

	running, err := loop.Step()
	require.NoError(t, err)
	assert.False(t, running)
	assert.Len(t, window.calls, calls)
}

func TestLoop_IdenticalFramesWithoutInput(t *testing.T) {
	loop, _, renderer, _ := newTestLoop(50)
	require.NoError(t, loop.Run())

	require.Len(t, renderer.frames, 50)
	for i, frame := range renderer.frames {
		assert.Equal(t, renderer.frames[0], frame, "frame %d differs", i)
	}
}

func TestLoop_RenderErrorStops(t *testing.T) {
	loop, window, renderer, _ := newTestLoop(0)
	boom := errors.New("boom")
	renderer.err = boom

	err := loop.Run()
	require.ErrorIs(t, err, boom)
	assert.Equal(t, axes.StateStopped, loop.State())
	assert.Zero(t, window.swaps)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "running", axes.StateRunning.String())
	assert.Equal(t, "stopped", axes.StateStopped.String())
}
