package chart

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "soultether/internal/errors"
	"soultether/internal/ephemeris"
	"soultether/internal/models"
)

// stubSource serves canned ephemeris output for assembly tests.
type stubSource struct {
	positions map[models.Body]float64
	houses    *ephemeris.HouseData
	posErr    error
	houseErr  error
	fidelity  models.Fidelity
}

func (s *stubSource) Positions(time.Time) (map[models.Body]float64, error) {
	return s.positions, s.posErr
}

func (s *stubSource) Houses(time.Time, float64, float64) (*ephemeris.HouseData, error) {
	return s.houses, s.houseErr
}

func (s *stubSource) Fidelity() models.Fidelity {
	if s.fidelity == "" {
		return models.FidelityFull
	}
	return s.fidelity
}

func fullPositions() map[models.Body]float64 {
	positions := make(map[models.Body]float64, len(models.Bodies))
	for i, body := range models.Bodies {
		positions[body] = float64(i) * 25
	}
	return positions
}

var testSubject = models.Subject{
	Birth:     time.Date(1990, 6, 15, 14, 30, 0, 0, time.UTC),
	Latitude:  40.7128,
	Longitude: -74.0060,
}

func TestComputeAssemblesRecord(t *testing.T) {
	src := &stubSource{
		positions: fullPositions(),
		houses: &ephemeris.HouseData{
			Cusps:     [12]float64{100, 130, 160, 190, 220, 250, 280, 310, 340, 10, 40, 70},
			Ascendant: 100,
			Midheaven: 10,
		},
	}

	record, err := Compute(testSubject, src)
	require.NoError(t, err)

	assert.Equal(t, "1990-06-15 14:30", record.Birth)
	assert.Equal(t, 40.7128, record.Latitude)
	assert.Equal(t, -74.0060, record.Longitude)
	assert.Equal(t, "Cancer 10.00°", record.Ascendant)
	assert.Equal(t, "Aries 10.00°", record.Midheaven)
	assert.Equal(t, models.FidelityFull, record.Fidelity)
	assert.Empty(t, record.Location)
	require.Len(t, record.Planets, len(models.Bodies))

	// Sun at 0: Aries, inside the wrapped house 9 span 340..10.
	sun := record.Planets[models.Sun]
	assert.Equal(t, "Aries", sun.Sign)
	assert.Equal(t, 9, sun.House)

	// Moon at 25: still Aries, house 10 (span 10..40).
	moon := record.Planets[models.Moon]
	assert.Equal(t, "Aries", moon.Sign)
	assert.InDelta(t, 25.0, moon.Degree, 1e-9)
	assert.Equal(t, 10, moon.House)

	// Mercury at 50 sits in Taurus, house 11 (span 40..70).
	mercury := record.Planets[models.Mercury]
	assert.Equal(t, "Taurus", mercury.Sign)
	assert.Equal(t, 11, mercury.House)

	assert.NotEmpty(t, record.Aspects)
}

func TestComputePositionFailure(t *testing.T) {
	src := &stubSource{posErr: errors.New("no data")}
	_, err := Compute(testSubject, src)
	require.Error(t, err)

	var chartErr *apperrors.ChartError
	require.True(t, apperrors.As(err, &chartErr))
	assert.Equal(t, "positions", chartErr.Stage)
}

func TestComputeIncompletePositions(t *testing.T) {
	src := &stubSource{
		positions: map[models.Body]float64{models.Sun: 10, models.Moon: 40},
	}
	_, err := Compute(testSubject, src)
	require.Error(t, err)

	var chartErr *apperrors.ChartError
	require.True(t, apperrors.As(err, &chartErr))
	assert.Equal(t, "positions", chartErr.Stage)
}

func TestComputeHouseFailure(t *testing.T) {
	src := &stubSource{
		positions: fullPositions(),
		houseErr:  errors.New("polar latitude"),
	}
	_, err := Compute(testSubject, src)
	require.Error(t, err)

	var chartErr *apperrors.ChartError
	require.True(t, apperrors.As(err, &chartErr))
	assert.Equal(t, "houses", chartErr.Stage)
}

func TestComputeDegradedFidelityFlows(t *testing.T) {
	src := &stubSource{
		positions: fullPositions(),
		houses:    &ephemeris.HouseData{Ascendant: 5, Midheaven: 95},
		fidelity:  models.FidelityDegraded,
	}

	record, err := Compute(testSubject, src)
	require.NoError(t, err)
	assert.Equal(t, models.FidelityDegraded, record.Fidelity)

	// Zero cusps: the locator puts every body in house 1.
	for _, rec := range record.Planets {
		assert.Equal(t, 1, rec.House)
	}
}

func TestFormatAnchor(t *testing.T) {
	assert.Equal(t, "Aries 0.00°", FormatAnchor(0))
	assert.Equal(t, "Leo 14.50°", FormatAnchor(134.5))
	assert.Equal(t, "Pisces 29.99°", FormatAnchor(359.99))
}
