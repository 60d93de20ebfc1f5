package state

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pyramid-show/internal/config"
)

func newState(t *testing.T) *State {
	t.Helper()
	s, err := New(config.Default())
	require.NoError(t, err)
	return s
}

func TestNewCopiesConfig(t *testing.T) {
	s := newState(t)
	assert.Equal(t, 3, s.Fractal.Depth)
	assert.Equal(t, 1, s.Fractal.MinDepth)
	assert.Equal(t, 6, s.Fractal.MaxDepth)
	assert.Equal(t, float32(2), s.Fractal.Length)
	assert.False(t, s.Fractal.Filled)
	assert.True(t, s.Lights.Enabled)
	assert.Equal(t, mgl32.Vec3{-1, 0, 0}, s.Lights.DirectionalDir)
	assert.Equal(t, mgl32.Vec3{0, 3, 3}, s.Lights.PointPosition)
	assert.True(t, s.Running)
	assert.Equal(t, mgl32.Translate3D(0, 0, -10), s.Camera.Matrix)
}

func TestNewClampsInitialDepth(t *testing.T) {
	cfg := config.Default()
	cfg.Fractal.Depth = 42
	s, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, 6, s.Fractal.Depth)
}

func TestSetDepthClamps(t *testing.T) {
	f := Fractal{Depth: 3, MinDepth: 1, MaxDepth: 6}
	for i := 0; i < 10; i++ {
		f.SetDepth(f.Depth + 1)
	}
	assert.Equal(t, 6, f.Depth)
	assert.False(t, f.SetDepth(7), "no change at the upper bound")

	for i := 0; i < 10; i++ {
		f.SetDepth(f.Depth - 1)
	}
	assert.Equal(t, 1, f.Depth)
	assert.False(t, f.SetDepth(0))
}

func TestOrbitAngleIsPixelDistance(t *testing.T) {
	c := NewCamera(10)
	axis, deg, ok := c.OrbitAxis(3, 4)
	require.True(t, ok)
	assert.InDelta(t, 5.0, deg, 1e-6)
	assert.InDelta(t, 1.0, axis.Len(), 1e-6)
	// identity rotation part: axis is (dy, dx, 0) normalised
	assert.True(t, axis.ApproxEqual(mgl32.Vec3{0.8, 0.6, 0}), "axis %v", axis)
}

func TestOrbitZeroDragIsSkipped(t *testing.T) {
	c := NewCamera(10)
	before := c.Matrix
	assert.False(t, c.Orbit(0, 0))
	assert.Equal(t, before, c.Matrix)
	for _, v := range c.Matrix {
		assert.False(t, math.IsNaN(float64(v)), "NaN in camera matrix")
	}
}

func TestOrbitRotatesCamera(t *testing.T) {
	c := NewCamera(10)
	require.True(t, c.Orbit(3, 4))

	want := mgl32.Translate3D(0, 0, -10).Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(5), mgl32.Vec3{0.8, 0.6, 0}))
	assert.True(t, want.ApproxEqualThreshold(c.Matrix, 1e-5))
}

func TestCameraRotateScaleReset(t *testing.T) {
	c := NewCamera(10)
	c.Rotate(90, mgl32.Vec3{0, 1, 0})
	c.Scale(2)
	p := c.Matrix.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 0, p.X(), 1e-5)
	assert.InDelta(t, -12, p.Z(), 1e-5)

	c.Rotate(10, mgl32.Vec3{})
	c.Reset()
	assert.Equal(t, mgl32.Translate3D(0, 0, -10), c.Matrix)
}

func TestLightsPaletteAndNudge(t *testing.T) {
	s := newState(t)
	v := s.Lights.Version
	assert.True(t, s.Lights.SetColor("red"))
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, s.Lights.PointColor)
	assert.False(t, s.Lights.SetColor("red"), "same colour is not a change")
	assert.False(t, s.Lights.SetColor("octarine"))
	assert.Len(t, Palette, 6)

	s.Lights.Nudge(0.5, -0.5)
	assert.Equal(t, mgl32.Vec3{0.5, 2.5, 3}, s.Lights.PointPosition)
	assert.Equal(t, v+2, s.Lights.Version)
}

func TestBackgroundPingPong(t *testing.T) {
	b := NewBackground(config.Default().Background)
	flips := 0
	lastRising := b.Rising
	for i := 0; i < 5000; i++ {
		flipped := b.Step()
		for c := 0; c < 3; c++ {
			assert.GreaterOrEqual(t, b.Color[c], float32(0))
			assert.LessOrEqual(t, b.Color[c], float32(1))
		}
		if flipped {
			flips++
			// rising flips only once all channels reached the up threshold, and vice versa
			for c := 0; c < 3; c++ {
				if lastRising {
					assert.GreaterOrEqual(t, b.Color[c], b.Up[c])
				} else {
					assert.LessOrEqual(t, b.Color[c], b.Down[c])
				}
			}
		} else {
			assert.Equal(t, lastRising, b.Rising)
		}
		lastRising = b.Rising
	}
	assert.Greater(t, flips, 4, "background must keep ping-ponging")
}

func TestBackgroundWaitsForAllChannels(t *testing.T) {
	b := Background{
		Color:  mgl32.Vec3{0.47, 0.1, 0.47},
		Target: mgl32.Vec3{0.5, 0.5, 0.5},
		Up:     mgl32.Vec3{0.46, 0.46, 0.46},
		Down:   mgl32.Vec3{0.01, 0.01, 0.01},
		Rate:   0.02,
		Rising: true,
	}
	assert.False(t, b.Step(), "green channel is still below its threshold")
	assert.True(t, b.Rising)
}

func TestIdleRotation(t *testing.T) {
	s := newState(t)
	before := s.Camera.Matrix
	s.Idle()
	want := before.Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(0.1), mgl32.Vec3{0, 1, 0}))
	assert.True(t, want.ApproxEqualThreshold(s.Camera.Matrix, 1e-6))
}
