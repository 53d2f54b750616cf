package viewer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/constellation/pkg/geometry"
)

func TestViewportNDC(t *testing.T) {
	vp := Viewport{Left: 100, Top: 50, Width: 800, Height: 600}

	x, y := vp.NDC(100, 50)
	assert.InDelta(t, -1.0, x, 1e-12)
	assert.InDelta(t, 1.0, y, 1e-12)

	x, y = vp.NDC(500, 350)
	assert.InDelta(t, 0.0, x, 1e-12)
	assert.InDelta(t, 0.0, y, 1e-12)

	cx, cy := vp.Client(0.25, -0.5)
	nx, ny := vp.NDC(cx, cy)
	assert.InDelta(t, 0.25, nx, 1e-12)
	assert.InDelta(t, -0.5, ny, 1e-12)

	assert.True(t, vp.Contains(100, 50))
	assert.False(t, vp.Contains(900, 50))
	assert.Equal(t, 1.0, Viewport{}.Aspect())
}

func TestNewCameraLooksDownNegativeZ(t *testing.T) {
	cam := NewCamera(60, 0.1, 1000)

	assert.InDelta(t, 0.1, cam.Position.Z, 1e-12)
	fwd := cam.Forward()
	assert.InDelta(t, -1.0, fwd.Z, 1e-9)
	assert.Greater(t, cam.Far, 1000.0)
}

func TestProjectCenter(t *testing.T) {
	cam := NewCamera(60, 0.1, 1000)
	vp := NewViewport(800, 600)

	x, y, depth, ok := cam.Project(geometry.NewVector3(0, 0, -1000), vp)
	require.True(t, ok)
	assert.InDelta(t, 400, x, 1e-2)
	assert.InDelta(t, 300, y, 1e-2)
	assert.InDelta(t, 1000.1, depth, 0.05)

	// Up in world space is up on screen (smaller y)
	_, yUp, _, ok := cam.Project(geometry.NewVector3(0, 100, -1000), vp)
	require.True(t, ok)
	assert.Less(t, yUp, 300.0)
}

func TestProjectBehindCamera(t *testing.T) {
	cam := NewCamera(60, 0.1, 1000)
	_, _, _, ok := cam.Project(geometry.NewVector3(0, 0, 1000), NewViewport(800, 600))
	assert.False(t, ok)
}

func TestRayRoundTrip(t *testing.T) {
	cam := NewCamera(60, 0.1, 1000)
	cam.Rotate(0.2, 0.7)
	vp := Viewport{Left: 10, Top: 20, Width: 1024, Height: 768}

	for _, px := range [][2]float64{{522, 404}, {100, 100}, {900, 700}} {
		ray := cam.Ray(px[0], px[1], vp)
		assert.InDelta(t, 1.0, ray.Direction.Length(), 1e-6)

		point := ray.Origin.Add(ray.Direction.Mul(800))
		x, y, _, ok := cam.Project(point, vp)
		require.True(t, ok)
		assert.InDelta(t, px[0], x, 0.1)
		assert.InDelta(t, px[1], y, 0.1)
	}
}

func TestPixelsPerUnit(t *testing.T) {
	cam := NewCamera(90, 0.1, 1000)
	vp := NewViewport(600, 600)

	// With a 90° FOV the half height at depth d is d, so 2d units span 600px
	assert.InDelta(t, 3.0, cam.PixelsPerUnit(100, vp), 1e-9)
	assert.True(t, math.IsInf(cam.PixelsPerUnit(0, vp), 1))
}

func TestRayDistanceTo(t *testing.T) {
	ray := Ray{Origin: geometry.NewVector3(0, 0, 0), Direction: geometry.NewVector3(0, 0, -1)}

	d, tt := ray.DistanceTo(geometry.NewVector3(3, 4, -10))
	assert.InDelta(t, 5.0, d, 1e-12)
	assert.InDelta(t, 10.0, tt, 1e-12)

	// Points behind the origin measure from the origin itself
	d, tt = ray.DistanceTo(geometry.NewVector3(0, 0, 2))
	assert.InDelta(t, 2.0, d, 1e-12)
	assert.Equal(t, 0.0, tt)
}

func TestRotateClampsElevation(t *testing.T) {
	cam := NewCamera(60, 0.1, 1000)
	cam.Rotate(10, 0)
	assert.InDelta(t, math.Pi/2-0.1, cam.RotationX, 1e-12)
	cam.Rotate(-20, 0)
	assert.InDelta(t, -(math.Pi/2 - 0.1), cam.RotationX, 1e-12)
}

func TestZoomClampsFOV(t *testing.T) {
	cam := NewCamera(60, 0.1, 1000)
	cam.Zoom(-0.99)
	assert.InDelta(t, minFOV, cam.FOV, 1e-12)
	cam.Zoom(100)
	assert.InDelta(t, maxFOV, cam.FOV, 1e-12)
}
