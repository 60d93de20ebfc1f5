package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"pyramid-show/internal/geometry"
	"pyramid-show/internal/lighting"
	"pyramid-show/internal/state"
)

// View is the perspective projection the scene is drawn with.
type View struct {
	Fovy   float32 // degrees
	Aspect float32
	Near   float32
	Far    float32
}

// Scene draws the ground and the pyramid under the camera transform held in state.
type Scene struct {
	View   View
	Ground Ground
	Lights *lighting.Controller // nil draws the pyramid unlit
}

// Draw renders one frame of 3D content. Call between BeginDrawing and EndDrawing, after the clear.
func (s *Scene) Draw(st *state.State) {
	s.begin3D(st.Camera.Matrix)
	rl.DisableBackfaceCulling()

	s.Ground.Draw()

	faces := geometry.Faces(mgl32.Vec3{}, st.Fractal.Depth, st.Fractal.Length, st.Fractal.Filled)
	lit := s.Lights != nil && st.Lights.Enabled && st.Fractal.Filled
	if lit {
		s.Lights.Apply(&st.Lights)
		s.Lights.Begin()
	}
	rl.PushMatrix()
	DrawFaces(faces)
	rl.PopMatrix()
	if lit {
		s.Lights.End()
	}

	rl.EnableBackfaceCulling()
	rl.EndMode3D()
}

// begin3D mirrors rl.BeginMode3D but takes an explicit projection and model-view, so the camera can
// be an accumulated transform rather than a position/target pair. rl.EndMode3D undoes it.
func (s *Scene) begin3D(modelview mgl32.Mat4) {
	rl.DrawRenderBatchActive()

	proj := mgl32.Perspective(mgl32.DegToRad(s.View.Fovy), s.View.Aspect, s.View.Near, s.View.Far)
	rl.MatrixMode(rl.Projection)
	rl.PushMatrix()
	rl.LoadIdentity()
	rl.MultMatrix(toMatrix(proj))

	rl.MatrixMode(rl.Modelview)
	rl.LoadIdentity()
	rl.MultMatrix(toMatrix(modelview))

	rl.EnableDepthTest()
}
