// Package scene renders the demo cell: a lit sphere over a ground grid, with
// pointer dragging.
package scene

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const vertexShader = `#version 410
uniform mat4 mvp;
uniform mat4 model;
layout(location = 0) in vec3 pos;
layout(location = 1) in vec3 normal;
out vec3 worldNormal;
void main() {
    worldNormal = mat3(model) * normal;
    gl_Position = mvp * vec4(pos, 1.0);
}
` + "\x00"

const fragmentShader = `#version 410
uniform vec4 tint;
in vec3 worldNormal;
out vec4 fragColor;
void main() {
    vec3 lightDir = normalize(vec3(0.4, 1.0, 0.6));
    float diffuse = max(dot(normalize(worldNormal), lightDir), 0.0);
    vec3 lit = tint.rgb * (0.25 + 0.75 * diffuse);
    fragColor = vec4(lit, tint.a);
}
` + "\x00"

const CellRadius = 1.0

// Scene owns the GL resources and the position of the demo cell.
type Scene struct {
	Camera  *Camera
	Drag    DragState
	CellPos mgl32.Vec3

	program     uint32
	sphereVao   uint32
	sphereVerts int
	gridVao     uint32
	gridVerts   int
}

func New() *Scene {
	return &Scene{
		Camera:  NewCamera(),
		CellPos: mgl32.Vec3{0, 1, 0},
	}
}

// Init compiles shaders and uploads meshes. Needs a current GL context.
func (s *Scene) Init() error {
	prog, err := newProgram(vertexShader, fragmentShader)
	if err != nil {
		return err
	}
	s.program = prog

	sphere := SphereMesh(24, 32)
	s.sphereVao = makeVao(sphere)
	s.sphereVerts = len(sphere) / 6

	grid := GridMesh(10, 1)
	s.gridVao = makeVao(grid)
	s.gridVerts = len(grid) / 6

	return nil
}

// Draw renders the grid and the cell into the given viewport. windowH is the
// full window height, needed to flip into GL's bottom-left origin.
func (s *Scene) Draw(viewport image.Rectangle, windowH int, cellColor mgl32.Vec3, opacity float32) {
	w, h := viewport.Dx(), viewport.Dy()
	if w <= 0 || h <= 0 {
		return
	}
	gl.Viewport(int32(viewport.Min.X), int32(windowH-viewport.Max.Y), int32(w), int32(h))
	gl.Enable(gl.DEPTH_TEST)

	view := s.Camera.View()
	proj := s.Camera.Projection(float32(w) / float32(h))

	gl.UseProgram(s.program)
	mvpLoc := gl.GetUniformLocation(s.program, gl.Str("mvp\x00"))
	modelLoc := gl.GetUniformLocation(s.program, gl.Str("model\x00"))
	tintLoc := gl.GetUniformLocation(s.program, gl.Str("tint\x00"))

	// Ground grid.
	model := mgl32.Ident4()
	mvp := proj.Mul4(view).Mul4(model)
	gl.UniformMatrix4fv(mvpLoc, 1, false, &mvp[0])
	gl.UniformMatrix4fv(modelLoc, 1, false, &model[0])
	gl.Uniform4f(tintLoc, 0.35, 0.35, 0.4, 1)
	gl.BindVertexArray(s.gridVao)
	gl.DrawArrays(gl.LINES, 0, int32(s.gridVerts))

	// Cell.
	model = mgl32.Translate3D(s.CellPos.X(), s.CellPos.Y(), s.CellPos.Z())
	mvp = proj.Mul4(view).Mul4(model)
	gl.UniformMatrix4fv(mvpLoc, 1, false, &mvp[0])
	gl.UniformMatrix4fv(modelLoc, 1, false, &model[0])
	gl.Uniform4f(tintLoc, cellColor.X(), cellColor.Y(), cellColor.Z(), opacity)
	gl.BindVertexArray(s.sphereVao)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(s.sphereVerts))

	gl.Disable(gl.DEPTH_TEST)
}

// HandlePointer runs the drag state machine for one frame of pointer input
// inside the viewport.
func (s *Scene) HandlePointer(px, py float32, pressed bool, viewport image.Rectangle) {
	if !pressed {
		s.Drag.End()
		return
	}
	origin, dir := s.Camera.ScreenRay(px, py, viewport)
	if !s.Drag.Active() {
		inside := image.Pt(int(px), int(py)).In(viewport)
		if !inside || !s.Drag.Begin(origin, dir, s.CellPos, CellRadius) {
			return
		}
	}
	if pos, ok := s.Drag.Update(origin, dir); ok {
		s.CellPos = pos
	}
}
