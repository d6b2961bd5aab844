package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lucasdmesquita/consertos-cli/internal/dbx"
)

const (
	keyCredential = "credential"
	keyUsername   = "username"
)

// SQLiteStore persists the session slots in the console's local database.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func set(ctx context.Context, q dbx.DBTX, key, value string) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

func get(ctx context.Context, q dbx.DBTX, key string) (string, error) {
	var value string
	err := q.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}

// Save writes both slots in a single transaction so a crash cannot leave a
// credential without its username.
func (s *SQLiteStore) Save(ctx context.Context, credential, username string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := set(ctx, tx, keyCredential, credential); err != nil {
			return err
		}
		return set(ctx, tx, keyUsername, username)
	})
}

func (s *SQLiteStore) Load(ctx context.Context) (string, string, error) {
	cred, err := get(ctx, s.db, keyCredential)
	if err != nil {
		return "", "", err
	}
	user, err := get(ctx, s.db, keyUsername)
	if err != nil {
		return "", "", err
	}
	return cred, user, nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session`)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
