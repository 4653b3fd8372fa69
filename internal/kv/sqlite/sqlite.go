package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chris-regnier/sunspot/internal/kv"
	_ "github.com/tursodatabase/go-libsql"
)

// Store implements kv.Surface using SQLite via Turso/libSQL.
type Store struct {
	db       *sql.DB
	maxBytes int64
}

// New creates a new SQLite key-value backend.
func New(dataDir string, maxBytes int64) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating data directory: %v", kv.ErrStorage, err)
	}

	dbPath := filepath.Join(dataDir, "sunspot.db")
	db, err := sql.Open("libsql", "file:"+dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %v", kv.ErrStorage, err)
	}

	// Enable WAL mode
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: enabling WAL mode: %v", kv.ErrStorage, err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, maxBytes: maxBytes}, nil
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS kv (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("%w: creating schema: %v", kv.ErrStorage, err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the value stored under key.
func (s *Store) Get(key string) (string, bool, error) {
	if err := kv.ValidateKey(key); err != nil {
		return "", false, err
	}

	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: querying key: %v", kv.ErrStorage, err)
	}
	return value, true, nil
}

// Set upserts value under key in a single statement.
func (s *Store) Set(key string, value string) error {
	if err := kv.ValidateKey(key); err != nil {
		return err
	}
	if err := kv.CheckQuota(len(value), s.maxBytes); err != nil {
		return err
	}

	_, err := s.db.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key,
		value,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("%w: writing key: %v", kv.ErrStorage, err)
	}
	return nil
}
