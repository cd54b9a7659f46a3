// Package history persists a record of each turn to a SQLite database under
// the infragpt config directory. Recording failures are reported as errors
// but callers treat them as warnings; history never blocks a turn.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/iishyfishyy/infragpt/internal/config"
)

const FileName = "history.db"

const schema = `
CREATE TABLE IF NOT EXISTS turns (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at TEXT NOT NULL,
	request TEXT NOT NULL,
	command TEXT NOT NULL,
	executed INTEGER NOT NULL DEFAULT 0
);
`

// Turn is one recorded request/command pair.
type Turn struct {
	CreatedAt time.Time
	Request   string
	Command   string
	Executed  bool
}

// Store is a SQLite-backed history log.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the history database location under ~/.infragpt.
func DefaultPath() (string, error) {
	dir, err := config.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Append records a turn.
func (s *Store) Append(t Turn) error {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}

	_, err := s.db.Exec(
		"INSERT INTO turns (created_at, request, command, executed) VALUES (?, ?, ?, ?)",
		t.CreatedAt.Format(time.RFC3339), t.Request, t.Command, t.Executed,
	)
	if err != nil {
		return fmt.Errorf("failed to record history entry: %w", err)
	}
	return nil
}

// Recent returns up to n turns, newest first.
func (s *Store) Recent(n int) ([]Turn, error) {
	rows, err := s.db.Query(
		"SELECT created_at, request, command, executed FROM turns ORDER BY id DESC LIMIT ?", n,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var turns []Turn
	for rows.Next() {
		var t Turn
		var createdAt string
		if err := rows.Scan(&createdAt, &t.Request, &t.Command, &t.Executed); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		turns = append(turns, t)
	}

	return turns, rows.Err()
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
