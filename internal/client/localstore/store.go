// Package localstore is the durable client-side cache of entity collections.
// It keeps one SQLite table per entity type, each row holding the record id,
// the owning user id, one semantic index value and the full record as JSON.
//
// The store is a cache, never authoritative: a successful full fetch from the
// API replaces the corresponding table wholesale (ReplaceAll), and schema
// upgrades are destructive.
package localstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"

	"github.com/ourganize/ourganize-cli/internal/client/localstore/migrations"
	"github.com/ourganize/ourganize-cli/internal/common"
	"github.com/ourganize/ourganize-cli/internal/dbx"
	"github.com/ourganize/ourganize-cli/internal/logging"
)

// Index names the two secondary indexes every entity table carries.
type Index string

const (
	// ByUser indexes records by the owning user id.
	ByUser Index = "user_id"
	// ByAttr indexes records by the entity's semantic attribute
	// (is_current, is_primary, is_enabled or parent id).
	ByAttr Index = "idx"
)

// Entity tables managed by the store. Table names arrive from callers, so
// they are validated against this set before being interpolated into SQL.
var entityTables = []string{
	"user_educations",
	"user_experiences",
	"user_skills",
	"user_social_accounts",
	"user_modules",
	"organizations",
	"workspaces",
	"projects",
	"project_details",
}

var knownTables = func() map[string]struct{} {
	m := make(map[string]struct{}, len(entityTables))
	for _, t := range entityTables {
		m[t] = struct{}{}
	}
	return m
}()

// Record is one cached entity row. Data holds the record as JSON; ID, UserID
// and Index are extracted by the caller for keyed and indexed lookups.
type Record struct {
	ID     string
	UserID string
	Index  string
	Data   []byte
}

// Store wraps the SQLite cache database.
type Store struct {
	db  *sql.DB
	log logging.Logger
}

var (
	openMu   sync.Mutex
	instance *Store
)

// Open returns the process-wide store singleton, creating and migrating the
// database on first call. Concurrent callers receive the same handle.
func Open(ctx context.Context, dsn string, log logging.Logger) (*Store, error) {
	openMu.Lock()
	defer openMu.Unlock()

	if instance != nil {
		return instance, nil
	}

	s, err := New(ctx, dsn, log)
	if err != nil {
		return nil, err
	}
	instance = s
	return instance, nil
}

// New opens an independent store handle. Most callers want Open; New exists
// for tests that need isolated databases.
func New(ctx context.Context, dsn string, log logging.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache db: %w", err)
	}
	// SQLite allows a single writer; one connection also keeps in-memory
	// databases coherent across the pool.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping cache db: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate cache db: %w", err)
	}

	return &Store{db: db, log: log}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

// Close closes the database and releases the singleton so a later Open
// re-creates it.
func (s *Store) Close() error {
	openMu.Lock()
	if instance == s {
		instance = nil
	}
	openMu.Unlock()
	return s.db.Close()
}

func checkTable(table string) error {
	if _, ok := knownTables[table]; !ok {
		return fmt.Errorf("unknown cache table %q", table)
	}
	return nil
}

// GetAll returns every record of the table. Reads degrade gracefully:
// storage failures are logged and an empty slice is returned so callers can
// fall back to the API.
func (s *Store) GetAll(ctx context.Context, table string) []Record {
	if err := checkTable(table); err != nil {
		s.log.Error(ctx, "cache read failed", "table", table, "error", err)
		return nil
	}

	rows, err := s.db.QueryContext(ctx,
		fmt.Sprintf(`SELECT id, user_id, idx, data FROM %s`, table))
	if err != nil {
		s.log.Error(ctx, "cache read failed", "table", table, "error", err)
		return nil
	}
	defer rows.Close()

	return s.scanRecords(ctx, table, rows)
}

// GetByID returns the record with the given id, or common.ErrNotFound.
func (s *Store) GetByID(ctx context.Context, table, id string) (*Record, error) {
	if err := checkTable(table); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT id, user_id, idx, data FROM %s WHERE id = ?`, table), id)

	var r Record
	if err := row.Scan(&r.ID, &r.UserID, &r.Index, &r.Data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read %s by id: %w", table, err)
	}
	return &r, nil
}

// GetByIndex returns all records whose index column matches value. Like
// GetAll, failures are logged and surface as an empty result.
func (s *Store) GetByIndex(ctx context.Context, table string, index Index, value string) []Record {
	if err := checkTable(table); err != nil {
		s.log.Error(ctx, "cache read failed", "table", table, "error", err)
		return nil
	}
	if index != ByUser && index != ByAttr {
		s.log.Error(ctx, "cache read failed", "table", table, "error", fmt.Errorf("unknown index %q", index))
		return nil
	}

	rows, err := s.db.QueryContext(ctx,
		fmt.Sprintf(`SELECT id, user_id, idx, data FROM %s WHERE %s = ?`, table, index), value)
	if err != nil {
		s.log.Error(ctx, "cache read failed", "table", table, "error", err)
		return nil
	}
	defer rows.Close()

	return s.scanRecords(ctx, table, rows)
}

func (s *Store) scanRecords(ctx context.Context, table string, rows *sql.Rows) []Record {
	var result []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.UserID, &r.Index, &r.Data); err != nil {
			s.log.Error(ctx, "cache scan failed", "table", table, "error", err)
			return nil
		}
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		s.log.Error(ctx, "cache read failed", "table", table, "error", err)
		return nil
	}
	return result
}

// ReplaceAll clears the table and inserts the given records as one logical
// unit. Partial failure rolls the table back, so readers never observe a
// mixed old/new state.
func (s *Store) ReplaceAll(ctx context.Context, table string, records []Record) error {
	if err := checkTable(table); err != nil {
		return err
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s`, table)); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
		for _, r := range records {
			if _, err := tx.ExecContext(ctx,
				fmt.Sprintf(`INSERT INTO %s (id, user_id, idx, data) VALUES (?, ?, ?, ?)`, table),
				r.ID, r.UserID, r.Index, r.Data); err != nil {
				return fmt.Errorf("failed to insert into %s: %w", table, err)
			}
		}
		return nil
	})
}

// Put inserts or overwrites one record by id.
func (s *Store) Put(ctx context.Context, table string, r Record) error {
	if err := checkTable(table); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, fmt.Sprintf(`
		INSERT INTO %s (id, user_id, idx, data) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			user_id = excluded.user_id,
			idx = excluded.idx,
			data = excluded.data`, table),
		r.ID, r.UserID, r.Index, r.Data)
	if err != nil {
		return fmt.Errorf("failed to upsert into %s: %w", table, err)
	}
	return nil
}

// Remove deletes the record with the given id. Removing an absent id is not
// an error.
func (s *Store) Remove(ctx context.Context, table, id string) error {
	if err := checkTable(table); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, table), id); err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	return nil
}

// WipeAll clears every entity table in one transaction. Used at logout.
func (s *Store) WipeAll(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, table := range entityTables {
			if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s`, table)); err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}
		return nil
	})
}
