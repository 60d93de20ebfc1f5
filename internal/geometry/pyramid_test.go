package geometry

import (
	"slices"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepthOneEmitsSingleTetrahedron(t *testing.T) {
	leaves := slices.Collect(Leaves(mgl32.Vec3{}, 1, 2))
	require.Len(t, leaves, 1)
	assert.Equal(t, Tetrahedron{Center: mgl32.Vec3{}, Half: 2}, leaves[0])

	faces := slices.Collect(Faces(mgl32.Vec3{}, 1, 2, false))
	require.Len(t, faces, 4)
	for _, f := range faces {
		assert.Equal(t, Outline, f.Mode)
		assert.Equal(t, OutlineColor, f.Color)
		assert.Len(t, f.Vertices, 4)
	}
}

func TestLeafCountAndScale(t *testing.T) {
	for depth := 1; depth <= 6; depth++ {
		leaves := slices.Collect(Leaves(mgl32.Vec3{}, depth, 2))
		require.Len(t, leaves, LeafCount(depth), "depth %d", depth)

		want := float32(2) / float32(int(1)<<(depth-1))
		for _, l := range leaves {
			assert.InDelta(t, want, l.Half, 1e-6, "depth %d", depth)
		}
	}
	assert.Equal(t, 3125, LeafCount(6))
}

func TestDepthTwoChildCenters(t *testing.T) {
	center := mgl32.Vec3{1, 2, 3}
	leaves := slices.Collect(Leaves(center, 2, 2))
	require.Len(t, leaves, 5)

	want := []mgl32.Vec3{
		{0, 1, 2},
		{2, 1, 2},
		{0, 1, 4},
		{2, 1, 4},
		{1, 3, 3},
	}
	for i, l := range leaves {
		assert.True(t, want[i].ApproxEqual(l.Center), "child %d: want %v got %v", i, want[i], l.Center)
		assert.Equal(t, float32(1), l.Half)
	}
}

func TestChildOffsets(t *testing.T) {
	offs := ChildOffsets(4)
	assert.Equal(t, mgl32.Vec3{-2, -2, -2}, offs[0])
	assert.Equal(t, mgl32.Vec3{2, -2, -2}, offs[1])
	assert.Equal(t, mgl32.Vec3{-2, -2, 2}, offs[2])
	assert.Equal(t, mgl32.Vec3{2, -2, 2}, offs[3])
	assert.Equal(t, mgl32.Vec3{0, 2, 0}, offs[4])
}

func TestTetrahedronFaces(t *testing.T) {
	tet := Tetrahedron{Center: mgl32.Vec3{0, 0, 0}, Half: 1}
	faces := tet.Faces(Filled)
	apex := mgl32.Vec3{0, 1, 0}

	// bottom quad lies on y = -1
	for _, v := range faces[0].Vertices {
		assert.Equal(t, float32(-1), v.Y())
	}
	// side bands alternate base corner and apex
	for _, f := range faces[1:3] {
		assert.Equal(t, apex, f.Vertices[1])
		assert.Equal(t, apex, f.Vertices[3])
	}
	assert.Equal(t, apex, faces[3].Vertices[2])
	for _, f := range faces {
		assert.Equal(t, Filled, f.Mode)
		assert.Equal(t, FilledColor, f.Color)
	}
}

func TestEveryApexEdgeIsCovered(t *testing.T) {
	tet := Tetrahedron{Half: 1}
	apex := tet.Apex()
	seen := map[mgl32.Vec3]bool{}
	for _, f := range tet.Faces(Outline) {
		n := len(f.Vertices)
		for i, v := range f.Vertices {
			next := f.Vertices[(i+1)%n]
			if next == apex && v != apex {
				seen[v] = true
			}
			if v == apex && next != apex {
				seen[next] = true
			}
		}
	}
	for _, b := range tet.Base() {
		assert.True(t, seen[b], "no edge from apex to %v", b)
	}
}

func TestFacesStopsEarly(t *testing.T) {
	n := 0
	for range Faces(mgl32.Vec3{}, 6, 2, true) {
		n++
		if n == 7 {
			break
		}
	}
	assert.Equal(t, 7, n)
}

func TestFacesTotal(t *testing.T) {
	n := 0
	for range Faces(mgl32.Vec3{}, 3, 2, false) {
		n++
	}
	assert.Equal(t, 4*25, n)
}
