// Package chart computes natal charts: sign positions, house placement,
// aspects and final assembly.
package chart

import (
	"math"

	"soultether/internal/models"
)

// Normalize reduces a longitude modulo 360 and splits it into a zodiac sign
// index and the degree within that sign. Total over all reals.
func Normalize(lon float64) (signIndex int, degree float64) {
	lon = wrap360(lon)
	signIndex = int(lon/30) % 12
	degree = math.Mod(lon, 30)
	return signIndex, degree
}

// SignName returns the zodiac sign containing the longitude.
func SignName(lon float64) string {
	idx, _ := Normalize(lon)
	return models.Signs[idx]
}

// Separation returns the minimal angular separation of two longitudes, in
// [0, 180].
func Separation(a, b float64) float64 {
	diff := math.Abs(a - b)
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

// wrap360 reduces an angle in degrees to [0, 360).
func wrap360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
