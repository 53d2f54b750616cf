// Package pick maps pointer events on the render surface to star indices.
package pick

import (
	"math"

	"github.com/philipparndt/constellation/pkg/starfield"
	"github.com/philipparndt/constellation/pkg/viewer"
)

// DefaultTolerance is the pick radius in pixels. Stars are drawn a pixel or
// two wide, so the hit area has to be far larger than the glyph.
const DefaultTolerance = 30.0

// Event is what a render surface hands over for a pointer press. Surfaces
// that already know which star is under the pointer report it through
// Resolved; all others only supply client coordinates.
type Event interface {
	Resolved() (int, bool)
	Client() (x, y float64)
}

// Pointer is the plain Event implementation
type Pointer struct {
	X, Y     float64
	Index    int
	HasIndex bool
}

// At creates a pointer event that carries only client coordinates
func At(x, y float64) Pointer {
	return Pointer{X: x, Y: y}
}

// Hit creates a pointer event with a pre-resolved star index
func Hit(index int, x, y float64) Pointer {
	return Pointer{X: x, Y: y, Index: index, HasIndex: true}
}

// Resolved returns the pre-resolved index, if any
func (p Pointer) Resolved() (int, bool) {
	return p.Index, p.HasIndex
}

// Client returns the client coordinates of the press
func (p Pointer) Client() (float64, float64) {
	return p.X, p.Y
}

// Candidate is a star that lies within the pick tolerance
type Candidate struct {
	Index  int
	Pixels float64 // Screen distance between the star and the pointer ray
	Depth  float64 // Distance along the ray
}

// Resolver finds the star closest to a pointer ray
type Resolver struct {
	Tolerance float64 // Pixels
}

// NewResolver creates a resolver; a non-positive tolerance falls back to
// DefaultTolerance
func NewResolver(tolerance float64) *Resolver {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &Resolver{Tolerance: tolerance}
}

// Resolve returns the index of the star nearest to the pointer within the
// tolerance, or false for a miss. A pre-resolved index on the event is used
// as-is and skips the ray cast.
func (r *Resolver) Resolve(ev Event, cam *viewer.Camera, vp viewer.Viewport, cloud *starfield.Cloud) (int, bool) {
	if index, ok := ev.Resolved(); ok {
		return index, true
	}
	if vp.Empty() || cloud.Len() == 0 {
		return 0, false
	}

	x, y := ev.Client()
	best, ok := r.Nearest(cam.Ray(x, y, vp), cam, vp, cloud)
	if !ok {
		return 0, false
	}
	return best.Index, true
}

// Nearest casts ray against the cloud and returns the best candidate: the
// smallest screen distance, then the smallest depth, then the lowest index.
func (r *Resolver) Nearest(ray viewer.Ray, cam *viewer.Camera, vp viewer.Viewport, cloud *starfield.Cloud) (Candidate, bool) {
	best := Candidate{Index: -1, Pixels: math.Inf(1)}

	forward := cam.Forward()
	cloud.Each(func(p starfield.Point) {
		// Only stars in front of the near plane can be hit
		viewDepth := p.Position.Sub(cam.Position).Dot(forward)
		if viewDepth < cam.Near || viewDepth > cam.Far {
			return
		}

		dist, t := ray.DistanceTo(p.Position)
		pixels := dist * cam.PixelsPerUnit(viewDepth, vp)
		if pixels > r.Tolerance {
			return
		}

		c := Candidate{Index: p.Index, Pixels: pixels, Depth: t}
		if better(c, best) {
			best = c
		}
	})

	return best, best.Index >= 0
}

func better(a, b Candidate) bool {
	if a.Pixels != b.Pixels {
		return a.Pixels < b.Pixels
	}
	if a.Depth != b.Depth {
		return a.Depth < b.Depth
	}
	return a.Index < b.Index
}
