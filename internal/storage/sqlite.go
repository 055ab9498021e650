// Package storage keeps the ledger of finished runs for one process.
// The database lives in memory through the pure-Go modernc.org/sqlite
// driver; nothing is written to disk.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// memoryDSN is a private in-memory database. It is only shared by
// connections of the same pool, so the pool is capped at one.
const memoryDSN = "file::memory:"

// Ledger records finished runs.
type Ledger struct {
	db *sql.DB
}

// Run is a single finished run.
type Run struct {
	ID         int64
	Score      int
	Distance   float64
	Zone       string
	Ticks      int
	Difficulty string
	CreatedAt  time.Time
}

// Stats aggregates every recorded run.
type Stats struct {
	Runs        int
	Best        int
	AvgScore    float64
	MaxDistance float64
	TotalTicks  int64
}

// OpenMemory creates an empty in-memory ledger.
func OpenMemory() (*Ledger, error) {
	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	l := &Ledger{db: db}
	if err := l.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return l, nil
}

func (l *Ledger) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			distance REAL NOT NULL DEFAULT 0,
			zone TEXT NOT NULL DEFAULT '',
			ticks INTEGER NOT NULL DEFAULT 0,
			difficulty TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);
	`
	_, err := l.db.Exec(schema)
	return err
}

// Close closes the database; its contents are gone afterwards.
func (l *Ledger) Close() error {
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// RecordRun stores r and returns its ID.
func (l *Ledger) RecordRun(r Run) (int64, error) {
	res, err := l.db.Exec(
		"INSERT INTO runs (score, distance, zone, ticks, difficulty) VALUES (?, ?, ?, ?, ?)",
		r.Score, r.Distance, r.Zone, r.Ticks, r.Difficulty,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopRuns returns up to limit runs, best score first. Equal scores keep
// recording order.
func (l *Ledger) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := l.db.Query(
		`SELECT id, score, distance, zone, ticks, difficulty, created_at
		 FROM runs
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Score, &r.Distance, &r.Zone, &r.Ticks, &r.Difficulty, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// Best returns the highest recorded score, or 0 with no runs.
func (l *Ledger) Best() (int, error) {
	var score sql.NullInt64
	if err := l.db.QueryRow("SELECT MAX(score) FROM runs").Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Stats aggregates all runs.
func (l *Ledger) Stats() (Stats, error) {
	var st Stats
	err := l.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(MAX(distance), 0), COALESCE(SUM(ticks), 0)
		 FROM runs`,
	).Scan(&st.Runs, &st.Best, &st.AvgScore, &st.MaxDistance, &st.TotalTicks)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	return st, nil
}

// parseTime accepts both driver representations of a DATETIME column.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
