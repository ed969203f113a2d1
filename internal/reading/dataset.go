// Package reading turns a computed chart and its alignment hits into the
// long-form textual reading.
package reading

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"soultether/internal/errors"
)

// DatasetEntry is one interpretation record: an instruction describing the
// placement it covers and the interpretation text itself.
type DatasetEntry struct {
	Instruction string `json:"instruction"`
	Output      string `json:"output"`
}

// Dataset is a read-only handle over the interpretation corpus, loaded once
// at startup and passed to whichever component needs lookups. It replaces
// the hidden process-wide singleton the service used to carry.
type Dataset struct {
	entries []DatasetEntry
}

// LoadDataset reads a JSON interpretation dataset from disk.
func LoadDataset(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrDatasetNotFound, path)
		}
		return nil, fmt.Errorf("reading dataset: %w", err)
	}

	var entries []DatasetEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parsing dataset: %w", err)
	}

	return &Dataset{entries: entries}, nil
}

// EmptyDataset returns a dataset with no entries; lookups fall through to
// the built-in trait tables.
func EmptyDataset() *Dataset {
	return &Dataset{}
}

// Len returns the number of loaded entries.
func (d *Dataset) Len() int {
	return len(d.entries)
}

// Interpretation finds text for a (planet, sign, house) placement. Matching
// relaxes in the original corpus's order: exact placement first, then
// planet+sign, then planet+house. Returns "" when nothing matches.
func (d *Dataset) Interpretation(planet, sign string, house int) string {
	exactHouse := fmt.Sprintf("(House %d)", house)
	for _, e := range d.entries {
		if strings.Contains(e.Instruction, planet) &&
			strings.Contains(e.Instruction, sign) &&
			strings.Contains(e.Instruction, exactHouse) {
			return e.Output
		}
	}
	for _, e := range d.entries {
		if strings.Contains(e.Instruction, planet) && strings.Contains(e.Instruction, sign) {
			return e.Output
		}
	}
	anyHouse := fmt.Sprintf("House %d", house)
	for _, e := range d.entries {
		if strings.Contains(e.Instruction, planet) && strings.Contains(e.Instruction, anyHouse) {
			return e.Output
		}
	}
	return ""
}

// General returns a random general-pool entry, or a fixed line when the
// pool is empty.
func (d *Dataset) General(rng *rand.Rand) string {
	var pool []string
	for _, e := range d.entries {
		if strings.Contains(strings.ToLower(e.Instruction), "general") {
			pool = append(pool, e.Output)
		}
	}
	if len(pool) == 0 {
		return "Your chart reflects a unique cosmic signature."
	}
	return pool[rng.Intn(len(pool))]
}
