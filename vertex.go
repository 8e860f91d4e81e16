package axes

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrEmptyGeometry is returned when a vertex set has no vertices.
	ErrEmptyGeometry = errors.New("axes: empty geometry")
	// ErrOddVertexCount is returned when vertices cannot be split into line segments.
	ErrOddVertexCount = errors.New("axes: odd vertex count for line segments")
)

// Vertex is a 2D position in normalized device coordinates.
type Vertex = mgl32.Vec2

// VertexSize is the byte size of one Vertex.
const VertexSize = 2 * 4

var axisVertices = [4]Vertex{
	{-1, 0},
	{1, 0},
	{0, -1},
	{0, 1},
}

// AxisVertices returns the horizontal and vertical axis lines as a fresh
// slice. Callers may not mutate the shared set.
func AxisVertices() []Vertex {
	out := make([]Vertex, len(axisVertices))
	copy(out, axisVertices[:])
	return out
}

// Segment is an independent line segment.
type Segment [2]Vertex

// Segments pairs vertices the way GL_LINES consumes them: 0-1, 2-3, ...
func Segments(verts []Vertex) ([]Segment, error) {
	if len(verts) == 0 {
		return nil, ErrEmptyGeometry
	}
	if len(verts)%2 != 0 {
		return nil, fmt.Errorf("%w: %d", ErrOddVertexCount, len(verts))
	}
	segs := make([]Segment, 0, len(verts)/2)
	for i := 0; i < len(verts); i += 2 {
		segs = append(segs, Segment{verts[i], verts[i+1]})
	}
	return segs, nil
}

// Layout describes how one vertex attribute is read from a buffer.
type Layout struct {
	Attrib uint32 // Shader input location
	Size   int32  // Components per vertex
	Stride int32  // Bytes between consecutive vertices
	Offset uintptr
}

// VertexLayout is the layout of a tightly packed []Vertex bound to attribute 0.
var VertexLayout = Layout{
	Attrib: 0,
	Size:   2,
	Stride: VertexSize,
	Offset: 0,
}
