package starfield

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/philipparndt/constellation/pkg/geometry"
)

// Point is one star of the cloud
type Point struct {
	Index    int
	Position geometry.Vector3
}

// Cloud is an immutable set of star positions addressed by index.
// Index i maps to the same position for the lifetime of the cloud.
type Cloud struct {
	positions []geometry.Vector3
	flat      []float32 // xyz triplets handed to render surfaces
	radius    float64
}

// Generate places count stars uniformly on the surface of a sphere.
//
// It uses the inverse transform construction (θ = 2πu, φ = acos(2v-1)) so that
// the density is uniform over the area; sampling θ and φ directly would crowd
// the poles. A nil seed draws one from the clock.
func Generate(count int, radius float64, seed *uint64) *Cloud {
	if count < 0 {
		count = 0
	}

	var s uint64
	if seed != nil {
		s = *seed
	} else {
		s = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))

	positions := make([]geometry.Vector3, count)
	for i := range positions {
		u, v := rng.Float64(), rng.Float64()
		theta := 2 * math.Pi * u
		phi := math.Acos(2*v - 1)
		positions[i] = geometry.Spherical(radius, theta, phi)
	}

	return newCloud(positions, radius)
}

// FromPositions builds a cloud from fixed positions. The slice is copied.
func FromPositions(positions []geometry.Vector3) *Cloud {
	cp := make([]geometry.Vector3, len(positions))
	copy(cp, positions)

	radius := 0.0
	for _, p := range cp {
		radius = math.Max(radius, p.Length())
	}
	return newCloud(cp, radius)
}

func newCloud(positions []geometry.Vector3, radius float64) *Cloud {
	flat := make([]float32, len(positions)*3)
	for i, p := range positions {
		flat[i*3+0] = float32(p.X)
		flat[i*3+1] = float32(p.Y)
		flat[i*3+2] = float32(p.Z)
	}
	return &Cloud{positions: positions, flat: flat, radius: radius}
}

// Len returns the number of stars
func (c *Cloud) Len() int {
	if c == nil {
		return 0
	}
	return len(c.positions)
}

// Radius returns the shell radius (the largest distance from the origin for
// clouds built from fixed positions)
func (c *Cloud) Radius() float64 {
	return c.radius
}

// Valid reports whether index refers to a star of this cloud
func (c *Cloud) Valid(index int) bool {
	return index >= 0 && index < c.Len()
}

// At returns the position of star index. It panics on an invalid index, like a
// slice access would; callers check Valid first.
func (c *Cloud) At(index int) geometry.Vector3 {
	return c.positions[index]
}

// Point returns the star at index
func (c *Cloud) Point(index int) Point {
	return Point{Index: index, Position: c.positions[index]}
}

// Each calls fn for every star in index order
func (c *Cloud) Each(fn func(p Point)) {
	for i, pos := range c.positions {
		fn(Point{Index: i, Position: pos})
	}
}

// Positions returns the flat xyz render primitive. The slice is shared and must
// not be modified.
func (c *Cloud) Positions() []float32 {
	if c == nil {
		return nil
	}
	return c.flat
}

// InclinationBands counts stars per inclination band. The bands split the
// sphere into n zones of equal area (equal steps of cos φ), so a uniform
// distribution yields roughly equal counts.
func (c *Cloud) InclinationBands(n int) []int {
	if n <= 0 {
		return nil
	}
	bands := make([]int, n)
	for _, p := range c.positions {
		// cos φ in [-1, 1] maps linearly onto the band index
		z := math.Cos(p.Inclination())
		idx := int((1 - z) / 2 * float64(n))
		if idx >= n {
			idx = n - 1
		}
		if idx < 0 {
			idx = 0
		}
		bands[idx]++
	}
	return bands
}
