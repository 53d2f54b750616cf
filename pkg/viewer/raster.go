package viewer

import (
	"image"
	"image/color"
	"math"

	"github.com/philipparndt/constellation/pkg/geometry"
)

// Canvas rasterizes the star field into an RGBA image. It is the software
// render path used by surfaces without a GPU line primitive.
type Canvas struct {
	Img    *image.RGBA
	Camera *Camera
	View   Viewport
}

// NewCanvas allocates an image of the viewport size
func NewCanvas(cam *Camera, width, height int) *Canvas {
	return &Canvas{
		Img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		Camera: cam,
		View:   NewViewport(float64(width), float64(height)),
	}
}

// Clear fills the whole image with col
func (c *Canvas) Clear(col color.RGBA) {
	pix := c.Img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i+0] = col.R
		pix[i+1] = col.G
		pix[i+2] = col.B
		pix[i+3] = col.A
	}
}

// DrawStars plots every xyz triplet of positions as a single pixel and
// returns how many landed inside the image
func (c *Canvas) DrawStars(positions []float32, col color.RGBA) int {
	proj := c.Camera.Projector(c.View)
	drawn := 0
	for i := 0; i+2 < len(positions); i += 3 {
		x, y, _, ok := proj.ProjectXYZ(positions[i], positions[i+1], positions[i+2])
		if !ok {
			continue
		}
		ix, iy := int(math.Floor(x)), int(math.Floor(y))
		if !image.Pt(ix, iy).In(c.Img.Bounds()) {
			continue
		}
		c.Img.SetRGBA(ix, iy, col)
		drawn++
	}
	return drawn
}

// DrawSegments draws line segments from a vertex array of xyz pairs.
// Only the first vertexCount vertices are read; a segment is skipped when
// either endpoint is behind the camera.
func (c *Canvas) DrawSegments(vertices []float32, vertexCount int, col color.RGBA) {
	limit := vertexCount * 3
	if limit > len(vertices) {
		limit = len(vertices)
	}

	proj := c.Camera.Projector(c.View)
	for i := 0; i+5 < limit; i += 6 {
		x1, y1, _, okA := proj.ProjectXYZ(vertices[i], vertices[i+1], vertices[i+2])
		x2, y2, _, okB := proj.ProjectXYZ(vertices[i+3], vertices[i+4], vertices[i+5])
		if !okA || !okB {
			continue
		}
		c.line(x1, y1, x2, y2, col)
	}
}

// DrawMarker draws a filled disc of the given pixel radius around a world point
func (c *Canvas) DrawMarker(point geometry.Vector3, radius int, col color.RGBA) {
	x, y, _, ok := c.Camera.Project(point, c.View)
	if !ok {
		return
	}
	cx, cy := int(math.Round(x)), int(math.Round(y))
	bounds := c.Img.Bounds()

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			p := image.Pt(cx+dx, cy+dy)
			if p.In(bounds) {
				c.Img.SetRGBA(p.X, p.Y, col)
			}
		}
	}
}

// line clips the segment to the image and rasterizes what is left
func (c *Canvas) line(x1, y1, x2, y2 float64, col color.RGBA) {
	b := c.Img.Bounds()
	x1, y1, x2, y2, visible := clipSegment(x1, y1, x2, y2,
		float64(b.Min.X), float64(b.Min.Y), float64(b.Max.X-1), float64(b.Max.Y-1))
	if !visible {
		return
	}
	drawLine(c.Img, int(math.Round(x1)), int(math.Round(y1)), int(math.Round(x2)), int(math.Round(y2)), col)
}

// clipSegment clips a segment to a rectangle (Liang-Barsky)
func clipSegment(x1, y1, x2, y2, minX, minY, maxX, maxY float64) (float64, float64, float64, float64, bool) {
	dx, dy := x2-x1, y2-y1
	t0, t1 := 0.0, 1.0

	checks := [4][2]float64{
		{-dx, x1 - minX},
		{dx, maxX - x1},
		{-dy, y1 - minY},
		{dy, maxY - y1},
	}
	for _, pq := range checks {
		p, q := pq[0], pq[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, r)
		}
	}

	return x1 + t0*dx, y1 + t0*dy, x1 + t1*dx, y1 + t1*dy, true
}

// drawLine draws a line on an image using Bresenham's algorithm
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	bounds := img.Bounds()

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx, sy := -1, -1
	if x1 < x2 {
		sx = 1
	}
	if y1 < y2 {
		sy = 1
	}

	err := dx - dy

	for {
		if image.Pt(x1, y1).In(bounds) {
			img.SetRGBA(x1, y1, col)
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
