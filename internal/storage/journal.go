// Package storage keeps the night journal: one record per finished night.
// The journal lives in an in-memory SQLite database (pure-Go modernc.org/sqlite
// driver) and is gone when the process exits; nothing is written to disk.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/google/uuid"
)

// Store manages the in-memory journal database.
type Store struct {
	db *sql.DB
}

// NightRecord is one finished night.
type NightRecord struct {
	ID        uuid.UUID
	Won       bool
	Cause     string // "power", "threat" or "none"
	Survived  time.Duration
	PowerLeft float64
	Repels    int
	StartedAt time.Time
}

// Tally aggregates the journal.
type Tally struct {
	Played       int
	Survived     int
	BestSurvived time.Duration // Longest night, won or lost
	TotalRepels  int
}

// Open creates an empty in-memory journal.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every pooled connection would get its own private :memory: database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

// migrate creates the schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS nights (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			won INTEGER NOT NULL,
			cause TEXT NOT NULL,
			survived_ms INTEGER NOT NULL,
			power_left REAL NOT NULL,
			repels INTEGER NOT NULL DEFAULT 0,
			started_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_nights_survived ON nights(survived_ms DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveNight records a finished night.
func (s *Store) SaveNight(r NightRecord) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	_, err := s.db.Exec(
		`INSERT INTO nights (id, won, cause, survived_ms, power_left, repels, started_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID.String(), r.Won, r.Cause, r.Survived.Milliseconds(), r.PowerLeft, r.Repels, r.StartedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save night %s: %w", r.ID, err)
	}
	return nil
}

// RecentNights returns up to limit nights, newest first.
func (s *Store) RecentNights(limit int) ([]NightRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, won, cause, survived_ms, power_left, repels, started_at
		 FROM nights
		 ORDER BY seq DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query nights: %w", err)
	}
	defer rows.Close()

	var records []NightRecord
	for rows.Next() {
		var (
			r          NightRecord
			id         string
			survivedMS int64
			startedMS  int64
		)
		if err := rows.Scan(&id, &r.Won, &r.Cause, &survivedMS, &r.PowerLeft, &r.Repels, &startedMS); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("storage: bad night id %q: %w", id, err)
		}
		r.ID = parsed
		r.Survived = time.Duration(survivedMS) * time.Millisecond
		r.StartedAt = time.UnixMilli(startedMS)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// Tally summarizes every night in the journal.
func (s *Store) Tally() (Tally, error) {
	var (
		t      Tally
		bestMS int64
		repels int64
	)
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0), COALESCE(MAX(survived_ms), 0), COALESCE(SUM(repels), 0)
		 FROM nights`,
	).Scan(&t.Played, &t.Survived, &bestMS, &repels)
	if err != nil {
		return Tally{}, fmt.Errorf("storage: cannot tally nights: %w", err)
	}
	t.BestSurvived = time.Duration(bestMS) * time.Millisecond
	t.TotalRepels = int(repels)
	return t, nil
}
