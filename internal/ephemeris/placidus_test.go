package ephemeris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "soultether/internal/errors"
)

const testObliquity = 23.4392911

func TestPlacidusEquator(t *testing.T) {
	// At the equator the ascensional difference vanishes, so the
	// intermediate cusps reduce to fixed right-ascension offsets and the
	// system is fully determined.
	h, err := placidusHouses(0, 0, testObliquity)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, h.Midheaven, 1e-9)
	assert.InDelta(t, 90.0, h.Ascendant, 1e-9)
	assert.Equal(t, h.Ascendant, h.Cusps[0])
	assert.Equal(t, h.Midheaven, h.Cusps[9])

	// Cusp 11 converts RA 30 to ecliptic longitude; obliquity stretches
	// it past the raw offset.
	assert.InDelta(t, 32.19, h.Cusps[10], 0.05)
	assert.Greater(t, h.Cusps[11], h.Cusps[10])
}

func TestPlacidusOppositeCuspSymmetry(t *testing.T) {
	h, err := placidusHouses(310, 51.5, testObliquity)
	require.NoError(t, err)

	for i := 0; i < 6; i++ {
		want := norm360(h.Cusps[i] + 180)
		assert.InDelta(t, want, h.Cusps[i+6], 1e-6, "cusp %d vs %d", i+1, i+7)
	}
	for i, c := range h.Cusps {
		assert.GreaterOrEqual(t, c, 0.0, "cusp %d", i+1)
		assert.Less(t, c, 360.0, "cusp %d", i+1)
	}
}

func TestPlacidusMidLatitude(t *testing.T) {
	// New York-ish latitude. The quadrant cusps must step forward from
	// the midheaven toward the ascendant.
	h, err := placidusHouses(40, 40.7128, testObliquity)
	require.NoError(t, err)

	forward := func(from, to float64) float64 {
		return norm360(to - from)
	}
	// MC, 11th, 12th, ASC appear in zodiacal order within half a circle.
	d11 := forward(h.Midheaven, h.Cusps[10])
	d12 := forward(h.Midheaven, h.Cusps[11])
	dasc := forward(h.Midheaven, h.Ascendant)
	assert.Less(t, d11, d12)
	assert.Less(t, d12, dasc)
	assert.Less(t, dasc, 180.0)
}

func TestPlacidusPolarLatitudeFails(t *testing.T) {
	_, err := placidusHouses(0, 80, testObliquity)
	require.Error(t, err)

	var chartErr *apperrors.ChartError
	require.True(t, apperrors.As(err, &chartErr))
	assert.Equal(t, "houses", chartErr.Stage)
}

func TestPlacidusRejectsOutOfRangeLatitude(t *testing.T) {
	for _, lat := range []float64{90, -90, 95} {
		_, err := placidusHouses(100, lat, testObliquity)
		assert.Error(t, err, "lat %v", lat)
	}
}
