package kv

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// SQLiteStore keeps every collection payload in a single two-column table.
type SQLiteStore struct {
	db *sqlx.DB
}

// Open connects to the sqlite file at dsn and ensures the schema exists.
func Open(dsn string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS collections(
  name TEXT PRIMARY KEY,
  payload TEXT NOT NULL,
  updated_at TEXT DEFAULT CURRENT_TIMESTAMP
);
`
	_, err := db.Exec(schema)
	return err
}

func (s *SQLiteStore) Get(name string) (string, bool, error) {
	var payload string
	err := s.db.Get(&payload, `SELECT payload FROM collections WHERE name = ?`, name)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return payload, true, nil
}

func (s *SQLiteStore) Set(name, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO collections(name, payload, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, updated_at = CURRENT_TIMESTAMP
	`, name, value)
	return err
}

func (s *SQLiteStore) Close() error { return s.db.Close() }
