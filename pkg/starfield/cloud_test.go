package starfield

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/constellation/pkg/geometry"
)

func seed(v uint64) *uint64 { return &v }

func TestGenerateEmpty(t *testing.T) {
	assert.Equal(t, 0, Generate(0, 1000, seed(1)).Len())
	assert.Equal(t, 0, Generate(-5, 1000, seed(1)).Len())
	assert.Empty(t, Generate(-5, 1000, seed(1)).Positions())
}

func TestGenerateIsReproducibleWithSeed(t *testing.T) {
	a := Generate(200, 1000, seed(42))
	b := Generate(200, 1000, seed(42))
	c := Generate(200, 1000, seed(43))

	assert.Equal(t, a.Positions(), b.Positions())
	assert.NotEqual(t, a.Positions(), c.Positions())
}

func TestPositionsMatchPoints(t *testing.T) {
	cloud := Generate(50, 10, seed(7))
	flat := cloud.Positions()
	require.Len(t, flat, 150)

	cloud.Each(func(p Point) {
		assert.Equal(t, float32(p.Position.X), flat[p.Index*3])
		assert.Equal(t, float32(p.Position.Y), flat[p.Index*3+1])
		assert.Equal(t, float32(p.Position.Z), flat[p.Index*3+2])
		assert.Equal(t, p, cloud.Point(p.Index))
	})
}

func TestIndexStable(t *testing.T) {
	cloud := Generate(10, 1, seed(3))
	first := cloud.At(4)
	_ = cloud.Positions()
	_ = cloud.InclinationBands(4)
	assert.Equal(t, first, cloud.At(4))
}

func TestValid(t *testing.T) {
	cloud := Generate(3, 1, seed(1))
	assert.True(t, cloud.Valid(0))
	assert.True(t, cloud.Valid(2))
	assert.False(t, cloud.Valid(3))
	assert.False(t, cloud.Valid(-1))

	var nilCloud *Cloud
	assert.False(t, nilCloud.Valid(0))
}

func TestFromPositionsCopies(t *testing.T) {
	input := []geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(3, 4, 0),
	}
	cloud := FromPositions(input)
	input[1] = geometry.NewVector3(9, 9, 9)

	assert.Equal(t, geometry.NewVector3(3, 4, 0), cloud.At(1))
	assert.InDelta(t, 5.0, cloud.Radius(), 1e-12)
}

func TestInclinationBandsUniform(t *testing.T) {
	const n = 20000
	const bands = 10
	counts := Generate(n, 1000, seed(2024)).InclinationBands(bands)

	expected := float64(n) / bands
	for i, c := range counts {
		// 5 sigma for a binomial with p=0.1 is about 212
		assert.InDelta(t, expected, float64(c), 250, "band %d", i)
	}
}

func TestPolesAreNotCrowded(t *testing.T) {
	// Equal-angle bands: a uniform sphere puts sin φ weight on each band,
	// so the equator band must hold far more stars than a polar band.
	cloud := Generate(20000, 1, seed(9))
	polar, equator := 0, 0
	step := math.Pi / 18
	cloud.Each(func(p Point) {
		phi := p.Position.Inclination()
		switch {
		case phi < step:
			polar++
		case phi >= math.Pi/2-step/2 && phi < math.Pi/2+step/2:
			equator++
		}
	})

	// ratio of band areas is about 11.5
	assert.Greater(t, equator, polar*8)
}

func TestAllStarsOnShell(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	properties.Property("every star lies on the sphere of the given radius", prop.ForAll(
		func(count int, radius float64, s uint64) bool {
			cloud := Generate(count, radius, &s)
			if cloud.Len() != count {
				return false
			}
			ok := true
			cloud.Each(func(p Point) {
				if math.Abs(p.Position.Length()-radius) > 1e-9*radius {
					ok = false
				}
			})
			return ok
		},
		gen.IntRange(0, 500),
		gen.Float64Range(0.5, 5000),
		gen.UInt64(),
	))

	properties.TestingRun(t)
}
