// Package storage provides SQLite-based persistence for autoplay runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// sqliteTime is the layout SQLite uses for CURRENT_TIMESTAMP.
const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is one finished game played by an algorithm.
type Run struct {
	ID         int64
	RunID      string // UUID, assigned by SaveRun when empty
	Algorithm  string
	Radius     int
	QueueSize  int
	Easy       bool
	Seed       int64
	Score      int
	Turns      int
	Cleared    int
	DurationMs int64
	FinalBoard string // Occupancy in board order, "0"/"1" per cell
	CreatedAt  time.Time
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			algorithm TEXT NOT NULL,
			radius INTEGER NOT NULL,
			queue_size INTEGER NOT NULL,
			easy INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL,
			score INTEGER NOT NULL,
			turns INTEGER NOT NULL,
			cleared INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			final_board TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_algorithm ON runs(algorithm);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(algorithm, score DESC);
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

// SaveRun records a finished run and returns its row ID.
// A missing RunID is filled in with a new UUID.
func (s *Store) SaveRun(run *Run) (int64, error) {
	if run.RunID == "" {
		run.RunID = uuid.NewString()
	}

	result, err := s.db.Exec(
		`INSERT INTO runs
		 (run_id, algorithm, radius, queue_size, easy, seed, score, turns, cleared, duration_ms, final_board)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RunID,
		run.Algorithm,
		run.Radius,
		run.QueueSize,
		run.Easy,
		run.Seed,
		run.Score,
		run.Turns,
		run.Cleared,
		run.DurationMs,
		run.FinalBoard,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	run.ID = id

	return id, nil
}

const runColumns = `id, run_id, algorithm, radius, queue_size, easy, seed,
	score, turns, cleared, duration_ms, final_board, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var r Run
	var createdAt any
	err := row.Scan(
		&r.ID,
		&r.RunID,
		&r.Algorithm,
		&r.Radius,
		&r.QueueSize,
		&r.Easy,
		&r.Seed,
		&r.Score,
		&r.Turns,
		&r.Cleared,
		&r.DurationMs,
		&r.FinalBoard,
		&createdAt,
	)
	if err != nil {
		return r, err
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// RunByID retrieves a run by its UUID. Returns nil when there is none.
func (s *Store) RunByID(runID string) (*Run, error) {
	r, err := scanRun(s.db.QueryRow(
		`SELECT `+runColumns+` FROM runs WHERE run_id = ?`,
		runID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &r, nil
}

// TopRuns retrieves the best N runs of an algorithm, highest score first.
func (s *Store) TopRuns(algorithm string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.queryRuns(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE algorithm = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		algorithm, limit,
	)
}

// AllRuns retrieves every run of an algorithm (no limit).
func (s *Store) AllRuns(algorithm string) ([]Run, error) {
	return s.queryRuns(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE algorithm = ?
		 ORDER BY score DESC, id ASC`,
		algorithm,
	)
}

// BestScore returns the highest score of an algorithm.
// Returns 0 if no runs exist.
func (s *Store) BestScore(algorithm string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE algorithm = ?",
		algorithm,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearRuns deletes all runs of an algorithm.
func (s *Store) ClearRuns(algorithm string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE algorithm = ?", algorithm)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// AlgorithmStats contains aggregated statistics for an algorithm.
type AlgorithmStats struct {
	Algorithm string
	Runs      int
	BestScore int
	AvgScore  float64
	AvgTurns  float64
	LastRun   time.Time
}

// AlgorithmStats retrieves aggregated statistics for one algorithm.
func (s *Store) AlgorithmStats(algorithm string) (*AlgorithmStats, error) {
	stats := &AlgorithmStats{Algorithm: algorithm}

	var lastRun any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(AVG(turns), 0), MAX(created_at)
		 FROM runs WHERE algorithm = ?`,
		algorithm,
	).Scan(&stats.Runs, &stats.BestScore, &stats.AvgScore, &stats.AvgTurns, &lastRun)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get algorithm stats: %w", err)
	}
	stats.LastRun = parseTime(lastRun)

	return stats, nil
}

// AllAlgorithmStats retrieves statistics for every algorithm with runs.
func (s *Store) AllAlgorithmStats() (map[string]*AlgorithmStats, error) {
	rows, err := s.db.Query(
		`SELECT algorithm, COUNT(*), MAX(score), AVG(score), AVG(turns), MAX(created_at)
		 FROM runs
		 GROUP BY algorithm`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all algorithm stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*AlgorithmStats)
	for rows.Next() {
		var st AlgorithmStats
		var lastRun any
		if err := rows.Scan(&st.Algorithm, &st.Runs, &st.BestScore, &st.AvgScore, &st.AvgTurns, &lastRun); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastRun = parseTime(lastRun)
		stats[st.Algorithm] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
