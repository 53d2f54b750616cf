package viewer

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/philipparndt/constellation/pkg/geometry"
)

var (
	black = color.RGBA{0, 0, 0, 255}
	white = color.RGBA{255, 255, 255, 255}
)

func TestDrawStarsSkipsHidden(t *testing.T) {
	c := NewCanvas(NewCamera(60, 0.1, 1000), 200, 100)
	c.Clear(black)

	positions := []float32{
		0, 0, -1000, // center of view
		0, 0, 1000, // behind the camera
	}
	assert.Equal(t, 1, c.DrawStars(positions, white))
	assert.Equal(t, white, c.Img.RGBAAt(100, 50))
}

func TestDrawSegmentsHonorsVertexCount(t *testing.T) {
	c := NewCanvas(NewCamera(60, 0.1, 1000), 200, 200)
	c.Clear(black)

	vertices := []float32{
		-100, 0, -1000, 100, 0, -1000, // horizontal through the center
		0, -100, -1000, 0, 100, -1000, // vertical, past the live range
	}
	c.DrawSegments(vertices, 2, white)

	assert.Equal(t, white, c.Img.RGBAAt(100, 100))
	assert.Equal(t, white, c.Img.RGBAAt(95, 100))
	assert.Equal(t, black, c.Img.RGBAAt(100, 95))
}

func TestDrawMarker(t *testing.T) {
	c := NewCanvas(NewCamera(60, 0.1, 1000), 100, 100)
	c.Clear(black)
	c.DrawMarker(geometry.NewVector3(0, 0, -1000), 3, white)

	assert.Equal(t, white, c.Img.RGBAAt(50, 50))
	assert.Equal(t, white, c.Img.RGBAAt(53, 50))
	assert.Equal(t, black, c.Img.RGBAAt(55, 50))
}

func TestClipSegment(t *testing.T) {
	x1, y1, x2, y2, ok := clipSegment(-50, 5, 150, 5, 0, 0, 99, 99)
	assert.True(t, ok)
	assert.InDelta(t, 0, x1, 1e-9)
	assert.InDelta(t, 5, y1, 1e-9)
	assert.InDelta(t, 99, x2, 1e-9)
	assert.InDelta(t, 5, y2, 1e-9)

	_, _, _, _, ok = clipSegment(-50, -5, 150, -5, 0, 0, 99, 99)
	assert.False(t, ok)
}
