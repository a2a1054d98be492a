// Package storage provides SQLite-based persistence for the Snackfall
// leaderboard. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// LeaderboardSize is how many entries the leaderboard keeps visible.
const LeaderboardSize = 10

// AnonymousName is recorded when a player submits a blank name.
const AnonymousName = "Anonymous"

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single leaderboard record.
type ScoreEntry struct {
	ID        int64
	Name      string
	Score     int
	Level     int
	CreatedAt time.Time
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
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(score DESC);
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

// SubmitScore records a finished session and returns the updated
// leaderboard. A blank or whitespace name is stored as Anonymous.
func (s *Store) SubmitScore(name string, score, level int) ([]ScoreEntry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = AnonymousName
	}

	_, err := s.db.Exec(
		"INSERT INTO scores (name, score, level) VALUES (?, ?, ?)",
		name, score, level,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot save score: %w", err)
	}

	return s.TopScores(LeaderboardSize)
}

// TopScores retrieves the top N leaderboard entries, highest score first.
// Ties rank the earlier submission higher.
func (s *Store) TopScores(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = LeaderboardSize
	}

	rows, err := s.db.Query(
		`SELECT id, name, score, level, created_at
		 FROM scores
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Name, &e.Score, &e.Level, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseCreatedAt(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Qualifies reports whether a score would enter the leaderboard: the board
// is not full yet, or the score beats its lowest entry.
func (s *Store) Qualifies(score int) (bool, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM scores").Scan(&count); err != nil {
		return false, fmt.Errorf("storage: cannot count scores: %w", err)
	}
	if count < LeaderboardSize {
		return score > 0, nil
	}

	var cutoff int
	err := s.db.QueryRow(
		`SELECT score FROM scores
		 ORDER BY score DESC, id ASC
		 LIMIT 1 OFFSET ?`,
		LeaderboardSize-1,
	).Scan(&cutoff)
	if err != nil {
		return false, fmt.Errorf("storage: cannot query cutoff score: %w", err)
	}

	return score > cutoff, nil
}

// HighScore returns the highest recorded score, or 0 if none exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM scores").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes the entire leaderboard.
func (s *Store) ClearScores() error {
	_, err := s.db.Exec("DELETE FROM scores")
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// parseCreatedAt handles both time.Time and string datetime values, which
// vary by driver configuration.
func parseCreatedAt(v any) time.Time {
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
