package internal

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	_ "modernc.org/sqlite"
)

// ErrShareNotFound is returned when a share ID has no stored payload.
var ErrShareNotFound = errors.New("share not found")

// ShareEntry is one row of the share index.
type ShareEntry struct {
	ID        string
	Provider  string
	CreatedAt time.Time
}

// ShareStore persists sanitized statistics bundles keyed by share ID.
type ShareStore struct {
	db *sql.DB
}

// OpenShareStore opens (or creates) the share database at path.
func OpenShareStore(path string) (*ShareStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open share store: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("share store ping failed: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS shared_wraps (
		id TEXT PRIMARY KEY,
		provider TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		payload TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create share table: %w", err)
	}

	return &ShareStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *ShareStore) Close() error {
	return s.db.Close()
}

// Save stores a JSON payload under the given share ID.
func (s *ShareStore) Save(id, provider string, payload []byte) error {
	if !json.Valid(payload) {
		return fmt.Errorf("refusing to store invalid JSON payload for share %s", id)
	}
	_, err := s.db.Exec(
		"INSERT INTO shared_wraps (id, provider, created_at, payload) VALUES (?, ?, ?, ?)",
		id, provider, time.Now().UTC().Format(time.RFC3339), string(payload),
	)
	if err != nil {
		return fmt.Errorf("failed to save share %s: %w", id, err)
	}
	return nil
}

// Load returns the stored payload for a share ID.
func (s *ShareStore) Load(id string) ([]byte, error) {
	var payload string
	err := s.db.QueryRow("SELECT payload FROM shared_wraps WHERE id = ?", id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrShareNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load share %s: %w", id, err)
	}
	return []byte(payload), nil
}

// Update replaces the stored payload for an existing share ID.
func (s *ShareStore) Update(id string, payload []byte) error {
	if !json.Valid(payload) {
		return fmt.Errorf("refusing to store invalid JSON payload for share %s", id)
	}
	result, err := s.db.Exec("UPDATE shared_wraps SET payload = ? WHERE id = ?", string(payload), id)
	if err != nil {
		return fmt.Errorf("failed to update share %s: %w", id, err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ErrShareNotFound
	}
	return nil
}

// List returns all share entries, newest first.
func (s *ShareStore) List() ([]ShareEntry, error) {
	rows, err := s.db.Query("SELECT id, provider, created_at FROM shared_wraps ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list shares: %w", err)
	}
	defer rows.Close()

	var entries []ShareEntry
	for rows.Next() {
		var entry ShareEntry
		var createdAt string
		if err := rows.Scan(&entry.ID, &entry.Provider, &createdAt); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			entry.CreatedAt = t
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return entries, nil
}

const shareIDChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateShareID returns a random 8-character alphanumeric ID.
// 62^8 combinations keep collisions implausible for a local store.
func GenerateShareID() string {
	id := make([]byte, 8)
	for i := range id {
		id[i] = shareIDChars[rand.Intn(len(shareIDChars))]
	}
	return string(id)
}
