// Package storage provides an opt-in SQLite journal of finished
// play-throughs. Uses the pure-Go modernc.org/sqlite driver to avoid CGO.
//
// The journal is write-mostly history: nothing in it is ever loaded back
// into a session, so there is no save or resume.
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

// ErrNotFound is returned when a requested run does not exist.
var ErrNotFound = errors.New("storage: run not found")

// Store manages the SQLite database connection for the run journal.
type Store struct {
	db *sql.DB
}

// Run is one finished play-through.
type Run struct {
	ID        int64
	SessionID string
	Player    string // Empty for local play, SSH user otherwise
	Score     int
	Ending    string // "died" or "survived"
	Choices   string // Option labels in order, e.g. "1,1,2,1,2"
	CreatedAt time.Time
}

// Stats aggregates the journal.
type Stats struct {
	Runs       int
	BestScore  int
	WorstScore int
	AvgScore   float64
	ByEnding   map[string]int
	LastPlayed time.Time
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
			session_id TEXT NOT NULL UNIQUE,
			player TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			ending TEXT NOT NULL,
			choices TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_ending ON runs(ending);
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

// SaveRun records a finished play-through and returns its row ID.
// Saving the same session twice is an error.
func (s *Store) SaveRun(run Run) (int64, error) {
	if run.SessionID == "" {
		return 0, errors.New("storage: run has no session id")
	}

	result, err := s.db.Exec(
		"INSERT INTO runs (session_id, player, score, ending, choices) VALUES (?, ?, ?, ?, ?)",
		run.SessionID, run.Player, run.Score, run.Ending, run.Choices,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns returns up to limit runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, player, score, ending, choices, created_at
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// RunBySession returns the run recorded for the given session.
func (s *Store) RunBySession(sessionID string) (Run, error) {
	row := s.db.QueryRow(
		`SELECT id, session_id, player, score, ending, choices, created_at
		 FROM runs WHERE session_id = ?`,
		sessionID,
	)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, ErrNotFound
	}
	return r, err
}

// Stats aggregates all recorded runs.
func (s *Store) Stats() (Stats, error) {
	st := Stats{ByEnding: make(map[string]int)}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(MIN(score), 0), COALESCE(AVG(score), 0), MAX(created_at)
		 FROM runs`,
	).Scan(&st.Runs, &st.BestScore, &st.WorstScore, &st.AvgScore, &lastPlayed)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	st.LastPlayed = parseTime(lastPlayed)

	rows, err := s.db.Query(`SELECT ending, COUNT(*) FROM runs GROUP BY ending`)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot count endings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ending string
		var n int
		if err := rows.Scan(&ending, &n); err != nil {
			return Stats{}, fmt.Errorf("storage: cannot scan ending row: %w", err)
		}
		st.ByEnding[ending] = n
	}
	if err := rows.Err(); err != nil {
		return Stats{}, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return st, nil
}

// Clear deletes every recorded run.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var r Run
	var createdAt any
	if err := sc.Scan(&r.ID, &r.SessionID, &r.Player, &r.Score, &r.Ending, &r.Choices, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, err
		}
		return Run{}, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles the driver returning either time.Time or text.
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
