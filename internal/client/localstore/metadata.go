package localstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ourganize/ourganize-cli/internal/common"
)

// The metadata table is a small key/value side store used by the session for
// credential and identity persistence. It is not an entity cache and is not
// touched by WipeAll; the session clears it explicitly at logout.

// MetaGet returns the value stored under key, or common.ErrNotFound.
func (s *Store) MetaGet(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read metadata %q: %w", key, err)
	}
	return value, nil
}

// MetaSet stores value under key, overwriting any previous value.
func (s *Store) MetaSet(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("failed to write metadata %q: %w", key, err)
	}
	return nil
}

// MetaDelete removes key if present.
func (s *Store) MetaDelete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM metadata WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete metadata %q: %w", key, err)
	}
	return nil
}

// MetaClear removes every metadata entry.
func (s *Store) MetaClear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM metadata`); err != nil {
		return fmt.Errorf("failed to clear metadata: %w", err)
	}
	return nil
}
