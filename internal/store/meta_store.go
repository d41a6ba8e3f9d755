// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fitledger/internal/logger"
)

// Metadata keys. Checkpoints are stored one key per table so each table's
// pull window advances independently.
const (
	lastSyncKeyPrefix = "last_sync_time:"
	seedCompletedKey  = "seed_completed"
)

const (
	getMetaValue = `SELECT value FROM sync_metadata WHERE key = ?;`

	upsertMetaValue = `INSERT INTO sync_metadata (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;`
)

type metaStore struct {
	*DB
	logger *logger.Logger
}

// NewMetaStore constructs the key-value metadata store over db.
func NewMetaStore(db *DB, logger *logger.Logger) MetaStorage {
	return &metaStore{DB: db, logger: logger}
}

func (m *metaStore) GetLastSyncTime(ctx context.Context, table string) (time.Time, error) {
	raw, err := m.get(ctx, lastSyncKeyPrefix+table)
	if err != nil {
		return time.Time{}, err
	}
	if raw == "" {
		// never pulled: the first pull scans all remote history
		return time.Time{}, nil
	}

	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse checkpoint for %s: %w", table, err)
	}
	return t, nil
}

func (m *metaStore) SetLastSyncTime(ctx context.Context, table string, t time.Time) error {
	return m.set(ctx, lastSyncKeyPrefix+table, t.UTC().Format(time.RFC3339Nano))
}

func (m *metaStore) SeedCompleted(ctx context.Context) (bool, error) {
	raw, err := m.get(ctx, seedCompletedKey)
	if err != nil {
		return false, err
	}
	return raw == "true", nil
}

func (m *metaStore) MarkSeedCompleted(ctx context.Context) error {
	return m.set(ctx, seedCompletedKey, "true")
}

func (m *metaStore) get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	var value string
	err := m.DB.QueryRowContext(ctx, getMetaValue, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "metaStore.get").
			Str("key", key).
			Msg("failed to read sync metadata")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (m *metaStore) set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	if _, err := m.DB.ExecContext(ctx, upsertMetaValue, key, value, time.Now().UTC()); err != nil {
		log.Err(err).
			Str("func", "metaStore.set").
			Str("key", key).
			Msg("failed to write sync metadata")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
