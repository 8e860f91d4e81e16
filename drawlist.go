package axes

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// drawListPool provides reuse of DrawList buffers across frames.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			CmdBuffer: make([]DrawCmd, 0, 8),
		}
	},
}

// AcquireDrawList gets a DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// CmdKind identifies a draw command.
type CmdKind int

const (
	CmdClear CmdKind = iota
	CmdUseProgram
	CmdUniform3f
	CmdBindVertexArray
	CmdLineWidth
	CmdDrawArrays
)

func (k CmdKind) String() string {
	switch k {
	case CmdClear:
		return "Clear"
	case CmdUseProgram:
		return "UseProgram"
	case CmdUniform3f:
		return "Uniform3f"
	case CmdBindVertexArray:
		return "BindVertexArray"
	case CmdLineWidth:
		return "LineWidth"
	case CmdDrawArrays:
		return "DrawArrays"
	default:
		return "Unknown"
	}
}

// Primitive is how DrawArrays interprets its vertices.
type Primitive int

const (
	Lines Primitive = iota
	LineStrip
	Triangles
)

// DrawCmd is a single recorded GPU command. Only the fields relevant to Kind
// are set.
type DrawCmd struct {
	Kind CmdKind

	Color    mgl32.Vec4 // Clear
	ID       uint32     // UseProgram, BindVertexArray (0 unbinds)
	Location int32      // Uniform3f
	Vec3     mgl32.Vec3 // Uniform3f
	Width    float32    // LineWidth
	Mode     Primitive  // DrawArrays
	First    int32      // DrawArrays
	Count    int32      // DrawArrays
}

// DrawList accumulates draw commands for a frame.
type DrawList struct {
	CmdBuffer []DrawCmd
}

// Clear resets the DrawList for a new frame.
// Retains allocated capacity to avoid reallocations.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
}

// Len returns the number of recorded commands.
func (dl *DrawList) Len() int {
	return len(dl.CmdBuffer)
}

// ClearColor clears the color buffer to c.
func (dl *DrawList) ClearColor(c mgl32.Vec4) {
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{Kind: CmdClear, Color: c})
}

// UseProgram activates a shader program.
func (dl *DrawList) UseProgram(program uint32) {
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{Kind: CmdUseProgram, ID: program})
}

// Uniform3f sets a vec3 uniform on the active program.
// A location of -1 is recorded as-is; GL ignores it.
func (dl *DrawList) Uniform3f(location int32, v mgl32.Vec3) {
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{Kind: CmdUniform3f, Location: location, Vec3: v})
}

// BindVertexArray binds a vertex array. Pass 0 to unbind.
func (dl *DrawList) BindVertexArray(vao uint32) {
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{Kind: CmdBindVertexArray, ID: vao})
}

// LineWidth sets the rasterized line width.
func (dl *DrawList) LineWidth(w float32) {
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{Kind: CmdLineWidth, Width: w})
}

// DrawArrays draws count vertices from the bound vertex array starting at first.
func (dl *DrawList) DrawArrays(mode Primitive, first, count int32) {
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{Kind: CmdDrawArrays, Mode: mode, First: first, Count: count})
}
