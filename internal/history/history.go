// Package history persists a log of component operations in SQLite.
// One row per read or write, newest first on listing.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Operation names.
const (
	OpReadURL   = "read_url"
	OpReadFile  = "read_file"
	OpWriteFile = "write_file"
)

// Outcome statuses.
const (
	StatusOK     = "ok"
	StatusError  = "error"
	StatusDenied = "denied"
)

// dbFileName is the history database file inside the data directory.
const dbFileName = "history.db"

const createOperations = `CREATE TABLE IF NOT EXISTS operations (
    operation_id TEXT PRIMARY KEY,
    op TEXT NOT NULL,
    source TEXT NOT NULL,
    row_count INTEGER NOT NULL,
    status TEXT NOT NULL,
    message TEXT,
    created_at TEXT NOT NULL
);`

// Entry is one recorded operation.
type Entry struct {
	ID        string    // UUID v7, generated when empty.
	Op        string    // One of the Op constants.
	Source    string    // URL or file path the operation targeted.
	Rows      int       // Rows read or written; zero on failure.
	Status    string    // One of the Status constants.
	Message   string    // Surfaced error message; empty on success.
	CreatedAt time.Time // Timestamp; set on Record when zero.
}

// Log is a SQLite-backed operation log.
type Log struct {
	db *sql.DB
}

// Open creates or opens the history database under dataDir, creating the
// directory and schema as needed.
func Open(dataDir string) (*Log, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}
	if _, err := db.Exec(createOperations); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	return &Log{db: db}, nil
}

// Record inserts one entry. An empty ID gets a new UUID v7; a zero
// CreatedAt gets the current time.
func (l *Log) Record(e Entry) error {
	if e.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("generating entry ID: %w", err)
		}
		e.ID = id.String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	_, err := l.db.Exec(
		`INSERT INTO operations (operation_id, op, source, row_count, status, message, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Op, e.Source, e.Rows, e.Status, e.Message,
		e.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting history entry: %w", err)
	}
	return nil
}

// List returns up to limit entries, newest first. A non-positive limit
// returns all entries.
func (l *Log) List(limit int) ([]Entry, error) {
	query := `SELECT operation_id, op, source, row_count, status, message, created_at
		FROM operations ORDER BY created_at DESC, operation_id DESC`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = l.db.Query(query+` LIMIT ?`, limit)
	} else {
		rows, err = l.db.Query(query)
	}
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt string
		var message sql.NullString
		if err := rows.Scan(&e.ID, &e.Op, &e.Source, &e.Rows, &e.Status, &message, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning history entry: %w", err)
		}
		e.Message = message.String
		e.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing entry timestamp: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history: %w", err)
	}
	return entries, nil
}

// Close releases the underlying database handle.
func (l *Log) Close() error {
	return l.db.Close()
}
