// Package store provides persistence for computed readings.
package store

import (
	"context"
	"time"

	"soultether/internal/models"
)

// ReadingEntry is one logged reading row.
type ReadingEntry struct {
	ID        int64
	Timestamp time.Time
	Birth     string
	Location  string
	Fidelity  models.Fidelity
	HitCount  int
	Hits      []models.AlignmentHit
	Reading   string
}

// ReadingFilter narrows LogEntries queries. Zero values mean no constraint.
type ReadingFilter struct {
	Since time.Time
	Limit int
}

// ReadingLog persists readings after they are served. Implementations must
// be safe for concurrent use; logging failures are reported but never abort
// a request.
type ReadingLog interface {
	SaveReading(ctx context.Context, entry *ReadingEntry) error
	ListReadings(ctx context.Context, filter ReadingFilter) ([]ReadingEntry, error)
	Close() error
}
