// Package storage provides SQLite-based persistence for finished rounds.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultPath is where the CLI keeps its database unless told otherwise.
const DefaultPath = "~/.welldone/scores.db"

// Store manages the SQLite database connection for round history.
type Store struct {
	db *sql.DB
}

// RoundResult is one finished round.
type RoundResult struct {
	ID           int64
	LayoutID     string
	Difficulty   string
	Score        int
	OrdersServed int
	PlatesServed int
	PlatesMissed int
	Duration     int // Round length in seconds
	CreatedAt    time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			layout_id TEXT NOT NULL,
			difficulty TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			orders_served INTEGER NOT NULL DEFAULT 0,
			plates_served INTEGER NOT NULL DEFAULT 0,
			plates_missed INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_layout_id ON rounds(layout_id);
		CREATE INDEX IF NOT EXISTS idx_rounds_top ON rounds(layout_id, score DESC);
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

// SaveRound records a finished round.
// Returns the ID of the inserted record.
func (s *Store) SaveRound(r RoundResult) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO rounds
		 (layout_id, difficulty, score, orders_served, plates_served, plates_missed, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.LayoutID, r.Difficulty, r.Score, r.OrdersServed, r.PlatesServed, r.PlatesMissed, r.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const roundColumns = `id, layout_id, difficulty, score, orders_served, plates_served, plates_missed, duration_secs, created_at`

// TopRounds retrieves the best N rounds for the given layout.
// Results are ordered by score descending, earlier rounds first on ties.
func (s *Store) TopRounds(layoutID string, limit int) ([]RoundResult, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+roundColumns+`
		 FROM rounds
		 WHERE layout_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		layoutID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	return scanRounds(rows)
}

// RecentRounds retrieves the most recent rounds across all layouts.
func (s *Store) RecentRounds(limit int) ([]RoundResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+roundColumns+`
		 FROM rounds
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recent rounds: %w", err)
	}
	return scanRounds(rows)
}

func scanRounds(rows *sql.Rows) ([]RoundResult, error) {
	defer rows.Close()

	var entries []RoundResult
	for rows.Next() {
		var r RoundResult
		var createdAt any
		if err := rows.Scan(&r.ID, &r.LayoutID, &r.Difficulty, &r.Score, &r.OrdersServed,
			&r.PlatesServed, &r.PlatesMissed, &r.Duration, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		entries = append(entries, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
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

// HighScore returns the best score for the given layout.
// Returns 0 if no rounds exist.
func (s *Store) HighScore(layoutID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM rounds WHERE layout_id = ?",
		layoutID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearRounds deletes all rounds for the given layout.
func (s *Store) ClearRounds(layoutID string) error {
	_, err := s.db.Exec("DELETE FROM rounds WHERE layout_id = ?", layoutID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

// LayoutStats contains aggregated statistics for a layout.
type LayoutStats struct {
	LayoutID     string
	Rounds       int
	HighScore    int
	AvgScore     float64
	OrdersServed int64
	PlatesMissed int64
	LastPlayed   time.Time
}

// GetLayoutStats retrieves aggregated statistics for a specific layout.
func (s *Store) GetLayoutStats(layoutID string) (*LayoutStats, error) {
	stats := &LayoutStats{LayoutID: layoutID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(orders_served), 0), COALESCE(SUM(plates_missed), 0)
		 FROM rounds WHERE layout_id = ?`,
		layoutID,
	).Scan(&stats.Rounds, &stats.HighScore, &stats.AvgScore, &stats.OrdersServed, &stats.PlatesMissed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get layout stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM rounds WHERE layout_id = ? ORDER BY id DESC LIMIT 1`,
		layoutID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// GetAllLayoutStats retrieves statistics for every layout that has been played.
func (s *Store) GetAllLayoutStats() (map[string]*LayoutStats, error) {
	rows, err := s.db.Query(
		`SELECT layout_id, COUNT(*), MAX(score), AVG(score), SUM(orders_served), SUM(plates_missed), MAX(created_at)
		 FROM rounds
		 GROUP BY layout_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all layout stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*LayoutStats)
	for rows.Next() {
		var ls LayoutStats
		var lastPlayed any
		if err := rows.Scan(&ls.LayoutID, &ls.Rounds, &ls.HighScore, &ls.AvgScore,
			&ls.OrdersServed, &ls.PlatesMissed, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ls.LastPlayed = parseTime(lastPlayed)
		stats[ls.LayoutID] = &ls
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}
