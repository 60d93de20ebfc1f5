package geometry

import (
	"iter"

	"github.com/go-gl/mathgl/mgl32"
)

// Mode selects how a face is drawn: as a filled polygon or as a closed outline.
type Mode int

const (
	Outline Mode = iota
	Filled
)

// Colors used for leaf faces: pink when filled, red for the wireframe.
var (
	FilledColor  = mgl32.Vec3{1.0, 0.5, 0.8}
	OutlineColor = mgl32.Vec3{1, 0, 0}
)

// Face is one polygon (or line loop) of a leaf tetrahedron.
type Face struct {
	Vertices []mgl32.Vec3
	Mode     Mode
	Color    mgl32.Vec3
}

// Tetrahedron is a leaf of the fractal: a square base at Center.Y-Half and an apex at Center.Y+Half.
type Tetrahedron struct {
	Center mgl32.Vec3
	Half   float32
}

// Base returns the four base corners in winding order.
func (t Tetrahedron) Base() [4]mgl32.Vec3 {
	c, h := t.Center, t.Half
	return [4]mgl32.Vec3{
		{c.X() - h, c.Y() - h, c.Z() - h},
		{c.X() + h, c.Y() - h, c.Z() - h},
		{c.X() + h, c.Y() - h, c.Z() + h},
		{c.X() - h, c.Y() - h, c.Z() + h},
	}
}

// Apex returns the top vertex.
func (t Tetrahedron) Apex() mgl32.Vec3 {
	return mgl32.Vec3{t.Center.X(), t.Center.Y() + t.Half, t.Center.Z()}
}

// Faces returns the four faces of the leaf: the bottom quad, the side zig-zag that alternates
// base corners with the apex, a second side band and the top face.
func (t Tetrahedron) Faces(mode Mode) [4]Face {
	b := t.Base()
	a := t.Apex()
	col := OutlineColor
	if mode == Filled {
		col = FilledColor
	}
	return [4]Face{
		{Vertices: []mgl32.Vec3{b[0], b[1], b[2], b[3]}, Mode: mode, Color: col},
		{Vertices: []mgl32.Vec3{b[0], a, b[1], a}, Mode: mode, Color: col},
		{Vertices: []mgl32.Vec3{b[2], a, b[3], a}, Mode: mode, Color: col},
		{Vertices: []mgl32.Vec3{b[0], b[1], a, b[3]}, Mode: mode, Color: col},
	}
}

// ChildOffsets returns the offsets of the five sub-pyramids for a parent of the given length:
// four base corners at (±half, -half, ±half) and one apex child at (0, +half, 0).
func ChildOffsets(length float32) [5]mgl32.Vec3 {
	h := length / 2
	return [5]mgl32.Vec3{
		{-h, -h, -h},
		{h, -h, -h},
		{-h, -h, h},
		{h, -h, h},
		{0, h, 0},
	}
}

// Leaves yields every leaf tetrahedron of a Sierpinski pyramid centred at center.
// depth <= 1 yields a single leaf whose half-extent is length; otherwise the five children are
// visited with depth-1 and half the length. Stopping the iteration stops the recursion.
func Leaves(center mgl32.Vec3, depth int, length float32) iter.Seq[Tetrahedron] {
	return func(yield func(Tetrahedron) bool) {
		walk(center, depth, length, yield)
	}
}

func walk(center mgl32.Vec3, depth int, length float32, yield func(Tetrahedron) bool) bool {
	if depth <= 1 {
		return yield(Tetrahedron{Center: center, Half: length})
	}
	half := length / 2
	for _, off := range ChildOffsets(length) {
		if !walk(center.Add(off), depth-1, half, yield) {
			return false
		}
	}
	return true
}

// Faces yields the draw calls for the whole fractal: four faces per leaf, filled or outlined.
func Faces(center mgl32.Vec3, depth int, length float32, filled bool) iter.Seq[Face] {
	mode := Outline
	if filled {
		mode = Filled
	}
	return func(yield func(Face) bool) {
		for leaf := range Leaves(center, depth, length) {
			for _, f := range leaf.Faces(mode) {
				if !yield(f) {
					return
				}
			}
		}
	}
}

// LeafCount is 5^(depth-1), the number of leaves Leaves yields for depth >= 1.
func LeafCount(depth int) int {
	n := 1
	for i := 1; i < depth; i++ {
		n *= 5
	}
	return n
}
