// Package geometry generates the fixed Flower-of-Life reference grid and
// detects planetary alignments against it.
package geometry

import (
	"math"
	"sort"
	"sync"

	"soultether/internal/models"
)

// GridSlots is the number of divisions in the snapping circle.
const GridSlots = 432

// anchorCount keeps the first 37 of the 48 base anchors. The truncation is
// a fixed property of the grid, not a derived quantity.
const anchorCount = 37

var (
	nodesOnce sync.Once
	nodeSet   []models.ReferenceNode
)

// Nodes returns the reference-node set: 7.5-degree anchors truncated to the
// first 37, snapped onto the 432-slot circle, deduplicated by (angle, slot)
// and sorted ascending by angle. The set is a pure function of these
// constants, computed once per process and shared read-only.
func Nodes() []models.ReferenceNode {
	nodesOnce.Do(func() {
		nodeSet = generateNodes()
	})
	return nodeSet
}

func generateNodes() []models.ReferenceNode {
	increment := 360.0 / GridSlots

	anchors := make([]float64, 0, anchorCount)
	for k := 0; k < anchorCount; k++ {
		anchors = append(anchors, float64(k)*7.5)
	}

	seen := make(map[models.ReferenceNode]struct{}, len(anchors))
	nodes := make([]models.ReferenceNode, 0, len(anchors))
	for _, angle := range anchors {
		slot := int(math.Round(angle/increment)) % GridSlots
		node := models.ReferenceNode{
			Angle: float64(slot) * increment,
			Slot:  slot,
		}
		if _, ok := seen[node]; ok {
			continue
		}
		seen[node] = struct{}{}
		nodes = append(nodes, node)
	}

	sort.Slice(nodes, func(i, j int) bool {
		if nodes[i].Angle != nodes[j].Angle {
			return nodes[i].Angle < nodes[j].Angle
		}
		return nodes[i].Slot < nodes[j].Slot
	})

	return nodes
}
