package reading

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soultether/internal/models"
)

func testChart() *models.ChartRecord {
	planets := map[models.Body]*models.PlanetRecord{
		models.Sun:     {Name: models.Sun, Longitude: 84.2, Sign: "Gemini", Degree: 24.2, House: 9},
		models.Moon:    {Name: models.Moon, Longitude: 200.1, Sign: "Libra", Degree: 20.1, House: 1},
		models.Mercury: {Name: models.Mercury, Longitude: 75.0, Sign: "Gemini", Degree: 15.0, House: 9},
		models.Venus:   {Name: models.Venus, Longitude: 45.5, Sign: "Taurus", Degree: 15.5, House: 8},
		models.Mars:    {Name: models.Mars, Longitude: 10.0, Sign: "Aries", Degree: 10.0, House: 7},
	}
	return &models.ChartRecord{
		Birth:     "1990-06-15 14:30",
		Location:  "New York, NY",
		Latitude:  40.7128,
		Longitude: -74.0060,
		Ascendant: "Libra 15.20°",
		Midheaven: "Cancer 20.10°",
		Planets:   planets,
		Fidelity:  models.FidelityFull,
	}
}

func newTestRenderer() *Renderer {
	rng := rand.New(rand.NewSource(42))
	return NewRenderer(NewInterpreter(EmptyDataset()), rng, 2.0)
}

func TestRenderWithHits(t *testing.T) {
	hits := []models.AlignmentHit{
		{Body: models.Sun, Longitude: 84.2, Node: 82.5, Slot: 99, Distance: 1.7, Sign: "Gemini", House: 9},
	}

	text, err := newTestRenderer().Render(testChart(), hits)
	require.NoError(t, err)

	assert.Contains(t, text, "SOUL TETHER")
	assert.Contains(t, text, "Birth: 1990-06-15 14:30")
	assert.Contains(t, text, "New York, NY")
	assert.Contains(t, text, "40.7128")
	assert.Contains(t, text, "FLOWER OF LIFE NODE ALIGNMENTS")
	assert.Contains(t, text, "★ Sun @ Gemini 84.20°")
	assert.Contains(t, text, "FOL Node: 82.50° | Orb: 1.70°")
	assert.Contains(t, text, "House: 9")
	assert.Contains(t, text, "Ascendant: Libra 15.20°")
	assert.Contains(t, text, "Midheaven: Cancer 20.10°")
	assert.Contains(t, text, "Your chart reflects a unique cosmic signature.")
}

func TestRenderWithoutHits(t *testing.T) {
	text, err := newTestRenderer().Render(testChart(), nil)
	require.NoError(t, err)

	assert.Contains(t, text, "No celestial bodies align with Flower of Life nodes")
	assert.NotContains(t, text, "★")
}

func TestRenderPersonalPlanetsInOrder(t *testing.T) {
	text, err := newTestRenderer().Render(testChart(), nil)
	require.NoError(t, err)

	sun := strings.Index(text, "Sun: Gemini 24.2°")
	moon := strings.Index(text, "Moon: Libra 20.1°")
	mars := strings.Index(text, "Mars: Aries 10.0°")
	require.NotEqual(t, -1, sun)
	require.NotEqual(t, -1, moon)
	require.NotEqual(t, -1, mars)
	assert.Less(t, sun, moon)
	assert.Less(t, moon, mars)
	assert.Contains(t, text, "(House 9)")
}

func TestRenderSkipsMissingPersonalPlanets(t *testing.T) {
	chart := testChart()
	delete(chart.Planets, models.Venus)

	text, err := newTestRenderer().Render(chart, nil)
	require.NoError(t, err)
	assert.NotContains(t, text, "Venus:")
	assert.Contains(t, text, "Mars:")
}

func TestDescribeUsesDatasetFirst(t *testing.T) {
	path := writeDataset(t, `[
		{"instruction": "Interpret Sun in Gemini (House 9)", "output": "corpus text"}
	]`)
	d, err := LoadDataset(path)
	require.NoError(t, err)

	interp := NewInterpreter(d)
	assert.Equal(t, "corpus text", interp.Describe(models.Sun, "Gemini", 9))
}

func TestDescribeFallsBackToTraitTables(t *testing.T) {
	interp := NewInterpreter(EmptyDataset())
	text := interp.Describe(models.Moon, "Cancer", 4)
	assert.Contains(t, text, "Moon")
	assert.Contains(t, text, "Cancer")
	assert.NotEmpty(t, text)
}

func TestDescribeUnknownSign(t *testing.T) {
	interp := NewInterpreter(nil)
	text := interp.Describe(models.Sun, "Ophiuchus", 1)
	assert.Contains(t, text, "unique signature")
}

func TestAspectMeaning(t *testing.T) {
	interp := NewInterpreter(nil)
	assert.Contains(t, interp.AspectMeaning(models.Trine), "120")
	assert.NotEmpty(t, interp.AspectMeaning(models.AspectType("Novile")))
}
