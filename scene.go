package axes

import "github.com/go-gl/mathgl/mgl32"

// Scene is the fixed content drawn every frame: one program, one vertex
// array, one draw call. All fields are set once before the loop starts.
type Scene struct {
	Program       uint32
	ColorLocation int32
	VertexArray   uint32
	VertexCount   int32

	Background mgl32.Vec4
	LineColor  mgl32.Vec3
	LineWidth  float32
}

// NewScene returns a scene with the default colors and line width.
func NewScene(program uint32, colorLocation int32, vao uint32, vertexCount int32) *Scene {
	return &Scene{
		Program:       program,
		ColorLocation: colorLocation,
		VertexArray:   vao,
		VertexCount:   vertexCount,
		Background:    DefaultBackground,
		LineColor:     DefaultLineColor,
		LineWidth:     DefaultLineWidth,
	}
}

// Record appends one frame's commands to dl. The sequence only depends on
// the scene fields, so every frame records the same commands.
func (s *Scene) Record(dl *DrawList) {
	dl.ClearColor(s.Background)
	dl.UseProgram(s.Program)
	dl.Uniform3f(s.ColorLocation, s.LineColor)
	dl.BindVertexArray(s.VertexArray)
	dl.LineWidth(s.LineWidth)
	dl.DrawArrays(Lines, 0, s.VertexCount)
	dl.BindVertexArray(0)
}
