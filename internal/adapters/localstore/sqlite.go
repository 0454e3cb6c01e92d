package localstore

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteStore is a small durable key-value store backed by a local SQLite
// file. It holds device-scoped state that must survive restarts, such as
// the anonymous identity assigned to a device.
type SQLiteStore struct {
	db *sql.DB
}

func Open(path string) (*SQLiteStore, error) {
	// Enable WAL mode and busy timeout to avoid "database is locked" errors
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("localstore: open failed: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initTable(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) initTable(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("localstore: init table failed: %w", err)
	}
	return nil
}

// GetItem returns the stored value for key, or "" when the key is absent.
func (s *SQLiteStore) GetItem(ctx context.Context, key string) (string, error) {
	var value string
	query := `SELECT value FROM kv WHERE key = ?`

	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("localstore: get %q failed: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) SetItem(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO kv (key, value)
		VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`

	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("localstore: set %q failed: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
