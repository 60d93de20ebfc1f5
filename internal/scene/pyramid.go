package scene

import (
	"iter"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"pyramid-show/internal/geometry"
)

// DrawFaces draws every face of the sequence: filled faces as a triangle fan with a flat normal,
// outlines as a closed loop of line segments. Call inside the 3D view.
func DrawFaces(faces iter.Seq[geometry.Face]) {
	for f := range faces {
		if len(f.Vertices) < 2 {
			continue
		}
		r, g, b := to8(f.Color[0]), to8(f.Color[1]), to8(f.Color[2])
		if f.Mode == geometry.Filled {
			drawFan(f.Vertices, r, g, b)
		} else {
			drawLoop(f.Vertices, r, g, b)
		}
	}
}

func drawFan(vs []mgl32.Vec3, r, g, b uint8) {
	if len(vs) < 3 {
		return
	}
	n := normal(vs)
	rl.Begin(rl.Triangles)
	rl.Color4ub(r, g, b, 255)
	rl.Normal3f(n[0], n[1], n[2])
	for i := 1; i+1 < len(vs); i++ {
		vertex(vs[0])
		vertex(vs[i])
		vertex(vs[i+1])
	}
	rl.End()
}

func drawLoop(vs []mgl32.Vec3, r, g, b uint8) {
	rl.Begin(rl.Lines)
	rl.Color4ub(r, g, b, 255)
	for i := range vs {
		vertex(vs[i])
		vertex(vs[(i+1)%len(vs)])
	}
	rl.End()
}

func vertex(v mgl32.Vec3) {
	rl.Vertex3f(v[0], v[1], v[2])
}

// normal returns the unit normal of the first non-degenerate corner of the polygon.
func normal(vs []mgl32.Vec3) mgl32.Vec3 {
	for i := 1; i+1 < len(vs); i++ {
		n := vs[i].Sub(vs[0]).Cross(vs[i+1].Sub(vs[0]))
		if n.Len() > 1e-6 {
			return n.Normalize()
		}
	}
	return mgl32.Vec3{0, 1, 0}
}

func to8(v float32) uint8 {
	return uint8(max(0, min(1, v))*255 + 0.5)
}
