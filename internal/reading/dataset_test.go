package reading

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "soultether/internal/errors"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDataset(t *testing.T) {
	path := writeDataset(t, `[
		{"instruction": "Interpret Sun in Leo (House 5)", "output": "exact match"},
		{"instruction": "Interpret Sun in Leo", "output": "sign match"},
		{"instruction": "Interpret Sun in House 5", "output": "house match"},
		{"instruction": "General chart overview", "output": "general line"}
	]`)

	d, err := LoadDataset(path)
	require.NoError(t, err)
	assert.Equal(t, 4, d.Len())
}

func TestLoadDatasetMissingFile(t *testing.T) {
	_, err := LoadDataset(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrDatasetNotFound))
}

func TestLoadDatasetMalformed(t *testing.T) {
	path := writeDataset(t, `{"not": "an array"}`)
	_, err := LoadDataset(path)
	require.Error(t, err)
	assert.False(t, apperrors.Is(err, apperrors.ErrDatasetNotFound))
}

func TestInterpretationRelaxationOrder(t *testing.T) {
	path := writeDataset(t, `[
		{"instruction": "Interpret Sun in House 5", "output": "house match"},
		{"instruction": "Interpret Sun in Leo", "output": "sign match"},
		{"instruction": "Interpret Sun in Leo (House 5)", "output": "exact match"}
	]`)
	d, err := LoadDataset(path)
	require.NoError(t, err)

	// Exact placement beats the looser matches regardless of file order.
	assert.Equal(t, "exact match", d.Interpretation("Sun", "Leo", 5))
	// No exact entry for house 3: planet+sign is next.
	assert.Equal(t, "sign match", d.Interpretation("Sun", "Leo", 3))
	// No sign entry for Virgo: planet+house is the last resort.
	assert.Equal(t, "house match", d.Interpretation("Sun", "Virgo", 5))
	// Nothing matches at all.
	assert.Empty(t, d.Interpretation("Moon", "Virgo", 3))
}

func TestGeneralPool(t *testing.T) {
	path := writeDataset(t, `[
		{"instruction": "General chart overview", "output": "general one"},
		{"instruction": "Provide a general summary", "output": "general two"},
		{"instruction": "Interpret Sun in Leo", "output": "not general"}
	]`)
	d, err := LoadDataset(path)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		line := d.General(rng)
		assert.Contains(t, []string{"general one", "general two"}, line)
	}
}

func TestGeneralFallbackLine(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.Equal(t, "Your chart reflects a unique cosmic signature.", EmptyDataset().General(rng))
}
