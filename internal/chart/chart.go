package chart

import (
	"fmt"

	"soultether/internal/ephemeris"
	"soultether/internal/errors"
	"soultether/internal/models"
)

// Compute builds a full chart record for a subject from an ephemeris
// source. Ephemeris failures propagate as typed chart errors; the source
// itself decides whether it is the full-fidelity or degraded implementation.
func Compute(subject models.Subject, source ephemeris.Source) (*models.ChartRecord, error) {
	positions, err := source.Positions(subject.Birth)
	if err != nil {
		return nil, errors.NewChartError("positions", "ephemeris position lookup failed", err)
	}
	if len(positions) < len(models.Bodies) {
		return nil, errors.NewChartError("positions",
			fmt.Sprintf("expected %d bodies, got %d", len(models.Bodies), len(positions)), nil)
	}

	houses, err := source.Houses(subject.Birth, subject.Latitude, subject.Longitude)
	if err != nil {
		return nil, errors.NewChartError("houses", "house computation failed", err)
	}

	records := make(map[models.Body]*models.PlanetRecord, len(models.Bodies))
	for _, body := range models.Bodies {
		lon, ok := positions[body]
		if !ok {
			return nil, errors.NewChartError("positions",
				fmt.Sprintf("missing position for %s", body), nil)
		}
		signIdx, degree := Normalize(lon)
		records[body] = &models.PlanetRecord{
			Name:      body,
			Longitude: wrap360(lon),
			Sign:      models.Signs[signIdx],
			Degree:    degree,
			House:     LocateHouse(lon, houses.Cusps),
		}
	}

	return &models.ChartRecord{
		Birth:     subject.FormatBirth(),
		Latitude:  subject.Latitude,
		Longitude: subject.Longitude,
		Ascendant: FormatAnchor(houses.Ascendant),
		Midheaven: FormatAnchor(houses.Midheaven),
		Planets:   records,
		Cusps:     houses.Cusps,
		Aspects:   Aspects(records),
		Fidelity:  source.Fidelity(),
	}, nil
}

// FormatAnchor renders an angle as "{Sign} {degree:.2f}°", the display form
// used for the ascendant and midheaven.
func FormatAnchor(lon float64) string {
	idx, degree := Normalize(lon)
	return fmt.Sprintf("%s %.2f°", models.Signs[idx], degree)
}
