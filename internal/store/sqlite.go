package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"soultether/internal/models"
)

// SQLiteLog implements ReadingLog using SQLite.
type SQLiteLog struct {
	db *sql.DB
}

// NewSQLiteLog opens (creating if needed) the reading log at dbPath.
func NewSQLiteLog(dbPath string) (*SQLiteLog, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	log := &SQLiteLog{db: db}
	if err := log.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return log, nil
}

// initSchema creates the readings table and its indexes.
func (s *SQLiteLog) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS readings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp DATETIME NOT NULL,
		birth TEXT NOT NULL,
		location TEXT,
		fidelity TEXT NOT NULL,
		hit_count INTEGER NOT NULL,
		fol_hits TEXT,
		reading TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_readings_timestamp ON readings(timestamp);
	CREATE INDEX IF NOT EXISTS idx_readings_birth ON readings(birth);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveReading inserts one reading row. Hits are stored as JSON.
func (s *SQLiteLog) SaveReading(ctx context.Context, entry *ReadingEntry) error {
	hitsJSON, err := json.Marshal(entry.Hits)
	if err != nil {
		return fmt.Errorf("failed to marshal hits: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO readings (timestamp, birth, location, fidelity, hit_count, fol_hits, reading)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.Timestamp, entry.Birth, entry.Location, string(entry.Fidelity),
		len(entry.Hits), string(hitsJSON), entry.Reading,
	)
	if err != nil {
		return fmt.Errorf("failed to save reading: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		entry.ID = id
	}
	return nil
}

// ListReadings returns logged readings, newest first.
func (s *SQLiteLog) ListReadings(ctx context.Context, filter ReadingFilter) ([]ReadingEntry, error) {
	query := `
		SELECT id, timestamp, birth, location, fidelity, hit_count, fol_hits, reading
		FROM readings WHERE 1=1`
	var args []interface{}

	if !filter.Since.IsZero() {
		query += " AND timestamp >= ?"
		args = append(args, filter.Since)
	}
	query += " ORDER BY timestamp DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query readings: %w", err)
	}
	defer rows.Close()

	var entries []ReadingEntry
	for rows.Next() {
		var e ReadingEntry
		var fidelity string
		var location, hitsJSON sql.NullString
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.Birth, &location,
			&fidelity, &e.HitCount, &hitsJSON, &e.Reading); err != nil {
			return nil, fmt.Errorf("failed to scan reading: %w", err)
		}
		e.Location = location.String
		e.Fidelity = models.Fidelity(fidelity)
		if hitsJSON.Valid && hitsJSON.String != "" {
			if err := json.Unmarshal([]byte(hitsJSON.String), &e.Hits); err != nil {
				return nil, fmt.Errorf("failed to unmarshal hits: %w", err)
			}
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close releases the underlying database handle.
func (s *SQLiteLog) Close() error {
	return s.db.Close()
}
