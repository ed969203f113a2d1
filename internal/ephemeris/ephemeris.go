// Package ephemeris provides ephemeris source interfaces and implementations.
package ephemeris

import (
	"time"

	"soultether/internal/models"
)

// HouseData carries the house-system output for one instant and place.
type HouseData struct {
	Cusps     [12]float64
	Ascendant float64
	Midheaven float64
}

// Source defines the interface for ephemeris computation.
type Source interface {
	// Positions returns the ecliptic longitude, in degrees [0, 360), of
	// every tracked body at the given civil instant.
	Positions(t time.Time) (map[models.Body]float64, error)

	// Houses returns the twelve Placidus house cusps plus the ascendant
	// and midheaven longitudes for the given instant and coordinates.
	Houses(t time.Time, lat, lon float64) (*HouseData, error)

	// Fidelity reports the quality of this source's output.
	Fidelity() models.Fidelity
}

// Select returns the primary VSOP87 source when its data files can be
// loaded, and the approximate fallback otherwise. The fallback is
// intentionally lower-fidelity; charts built from it are flagged degraded.
func Select(dataPath string) Source {
	if s, err := NewVSOPSource(dataPath); err == nil {
		return s
	}
	return NewApproxSource()
}
