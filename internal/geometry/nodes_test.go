package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodesGoldenSet(t *testing.T) {
	nodes := Nodes()
	require.Len(t, nodes, 37)

	// 7.5 degrees is exactly nine slots of the 432 grid, so snapping is
	// lossless: node k sits at 7.5k degrees in slot 9k.
	for k, n := range nodes {
		assert.InDelta(t, 7.5*float64(k), n.Angle, 1e-9, "node %d angle", k)
		assert.Equal(t, 9*k, n.Slot, "node %d slot", k)
	}

	assert.Equal(t, 0.0, nodes[0].Angle)
	assert.Equal(t, 0, nodes[0].Slot)
	assert.InDelta(t, 270.0, nodes[36].Angle, 1e-9)
	assert.Equal(t, 324, nodes[36].Slot)
}

func TestNodesSortedAndDistinct(t *testing.T) {
	nodes := Nodes()
	for i := 1; i < len(nodes); i++ {
		assert.Less(t, nodes[i-1].Angle, nodes[i].Angle)
		assert.Less(t, nodes[i-1].Slot, nodes[i].Slot)
	}
	for _, n := range nodes {
		assert.GreaterOrEqual(t, n.Slot, 0)
		assert.Less(t, n.Slot, GridSlots)
	}
}

func TestNodesSharedInstance(t *testing.T) {
	// Repeated calls return the same cached slice.
	a := Nodes()
	b := Nodes()
	require.Equal(t, len(a), len(b))
	assert.Same(t, &a[0], &b[0])
}
