package chart

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Any real longitude must normalize to a valid sign index and a degree in
// [0, 30), and reassembling them must land back on the wrapped longitude.
func TestPropertyNormalizeReconstruction(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("sign and degree reconstruct the wrapped longitude", prop.ForAll(
		func(lon float64) bool {
			sign, deg := Normalize(lon)
			if sign < 0 || sign > 11 {
				t.Logf("sign index out of range for %f: %d", lon, sign)
				return false
			}
			if deg < 0 || deg >= 30 {
				t.Logf("degree out of range for %f: %f", lon, deg)
				return false
			}
			rebuilt := float64(sign)*30 + deg
			if math.Abs(rebuilt-wrap360(lon)) > 1e-6 {
				t.Logf("reconstruction mismatch for %f: got %f want %f", lon, rebuilt, wrap360(lon))
				return false
			}
			return true
		},
		gen.Float64Range(-720, 1080),
	))

	properties.Property("normalization is periodic in full turns", prop.ForAll(
		func(lon float64, turns int) bool {
			s1, d1 := Normalize(lon)
			s2, d2 := Normalize(lon + float64(turns)*360)
			return s1 == s2 && math.Abs(d1-d2) < 1e-6
		},
		gen.Float64Range(0, 360),
		gen.IntRange(-3, 3),
	))

	properties.TestingRun(t)
}

// Separation must be symmetric and confined to [0, 180].
func TestPropertySeparationBounds(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("separation is symmetric and in [0, 180]", prop.ForAll(
		func(a, b float64) bool {
			s := Separation(a, b)
			if s < 0 || s > 180 {
				return false
			}
			return math.Abs(s-Separation(b, a)) < 1e-9
		},
		gen.Float64Range(0, 360),
		gen.Float64Range(0, 360),
	))

	properties.TestingRun(t)
}

// Well-formed strictly increasing cusps partition the circle: every
// longitude lands in exactly one house, and the located house's own span
// contains it.
func TestPropertyHousePartition(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("every longitude lands in the house whose span holds it", prop.ForAll(
		func(rotation float64, lon float64) bool {
			var cusps [12]float64
			for i := range cusps {
				cusps[i] = wrap360(rotation + float64(i)*30)
			}
			house := LocateHouse(lon, cusps)
			if house < 1 || house > 12 {
				return false
			}
			// Distance from the house's start cusp, measured forward,
			// must be under the 30 degree span.
			start := cusps[house-1]
			forward := math.Mod(wrap360(lon)-start+360, 360)
			return forward < 30+1e-9
		},
		gen.Float64Range(0, 360),
		gen.Float64Range(0, 360),
	))

	properties.TestingRun(t)
}
