package geometry

import (
	"math"
	"sort"

	"soultether/internal/models"
)

// DefaultOrb is the default alignment tolerance in degrees.
const DefaultOrb = 2.0

// Detect finds every (body, node) pair within the tolerance, by minimal
// circular distance. Unlike the aspect engine a body may match any number
// of nodes; all matches are kept. The combined list is sorted ascending by
// distance across all bodies, with ties left in body enumeration order.
func Detect(records map[models.Body]*models.PlanetRecord, nodes []models.ReferenceNode, tolerance float64) []models.AlignmentHit {
	var hits []models.AlignmentHit

	for _, body := range models.Bodies {
		rec, ok := records[body]
		if !ok {
			continue
		}
		lon := math.Mod(rec.Longitude, 360)
		if lon < 0 {
			lon += 360
		}
		for _, node := range nodes {
			diff := math.Abs(lon - node.Angle)
			if diff > 180 {
				diff = 360 - diff
			}
			if diff <= tolerance {
				hits = append(hits, models.AlignmentHit{
					Body:      rec.Name,
					Longitude: lon,
					Node:      node.Angle,
					Slot:      node.Slot,
					Distance:  diff,
					Sign:      rec.Sign,
					House:     rec.House,
				})
			}
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})

	return hits
}
