package chart

import (
	"math"

	"soultether/internal/models"
)

// aspectRow pairs a target angle with its name and orb tolerance. Row order
// is significant: rows are tested top to bottom and the first match wins,
// so a separation near 0 can never report Quincunx even at extreme orbs.
type aspectRow struct {
	angle float64
	name  models.AspectType
	orb   float64
}

var aspectTable = []aspectRow{
	{0, models.Conjunction, 8},
	{60, models.Sextile, 6},
	{90, models.Square, 8},
	{120, models.Trine, 8},
	{180, models.Opposition, 8},
	{150, models.Quincunx, 3},
}

// Aspects classifies every unordered pair of planet records against the
// aspect table. Pairs are enumerated in tracked-body order, each pair
// contributes at most one aspect, and the recorded orb keeps the historical
// sign convention: positive below a 180-degree separation, negative at
// exactly 180. Consumers display the absolute value.
func Aspects(records map[models.Body]*models.PlanetRecord) []models.Aspect {
	var aspects []models.Aspect

	present := make([]*models.PlanetRecord, 0, len(models.Bodies))
	for _, body := range models.Bodies {
		if rec, ok := records[body]; ok {
			present = append(present, rec)
		}
	}

	for i := 0; i < len(present); i++ {
		for j := i + 1; j < len(present); j++ {
			diff := Separation(present[i].Longitude, present[j].Longitude)
			for _, row := range aspectTable {
				orb := math.Abs(diff - row.angle)
				if orb <= row.orb {
					if diff >= 180 {
						orb = -orb
					}
					aspects = append(aspects, models.Aspect{
						Body1: present[i].Name,
						Body2: present[j].Name,
						Type:  row.name,
						Orb:   orb,
						Angle: row.angle,
					})
					break
				}
			}
		}
	}

	return aspects
}
