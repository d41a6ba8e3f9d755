// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	sq "github.com/Masterminds/squirrel"

	"fitledger/internal/logger"
	"fitledger/models"
)

// Writes hitting a momentarily locked database file are retried a few times
// before the error is surfaced.
const (
	busyRetryAttempts = 3
	busyRetryDelay    = 50 * time.Millisecond
)

type syncStore struct {
	*DB
	classifier *SQLiteErrorClassifier
	logger     *logger.Logger
}

// NewSyncStore constructs the table-generic sync surface over db.
func NewSyncStore(db *DB, logger *logger.Logger) SyncStorage {
	return &syncStore{DB: db, classifier: NewSQLiteErrorClassifier(), logger: logger}
}

// execWithRetry runs an exec statement, retrying when the driver reports the
// database as busy or locked by a concurrent writer.
func (s *syncStore) execWithRetry(ctx context.Context, query string, args ...any) (sql.Result, error) {
	var res sql.Result
	var err error
	for attempt := 0; attempt < busyRetryAttempts; attempt++ {
		res, err = s.DB.ExecContext(ctx, query, args...)
		if err == nil || s.classifier.Classify(err) != Retryable {
			return res, err
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(busyRetryDelay):
		}
	}
	return res, err
}

// syncTables guards against table names reaching SQL by interpolation.
var syncTables = func() map[string]struct{} {
	m := make(map[string]struct{}, len(models.SyncTableOrder))
	for _, t := range models.SyncTableOrder {
		m[t] = struct{}{}
	}
	return m
}()

func validateTable(table string) error {
	if _, ok := syncTables[table]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}
	return nil
}

func (s *syncStore) GetPendingRecords(ctx context.Context, table string) ([]models.Record, error) {
	if err := validateTable(table); err != nil {
		return nil, err
	}

	query, args, err := sq.Select("*").
		From(table).
		Where(sq.Eq{"sync_state": string(models.SyncStatePending)}).
		Where("deleted_at IS NULL").
		OrderBy("updated_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return s.queryRecords(ctx, table, query, args)
}

func (s *syncStore) GetAllPendingIncludingDeleted(ctx context.Context, table string) ([]models.Record, error) {
	if err := validateTable(table); err != nil {
		return nil, err
	}

	// no deleted_at filter: soft-deleted rows must still be pushed
	query, args, err := sq.Select("*").
		From(table).
		Where(sq.Eq{"sync_state": string(models.SyncStatePending)}).
		OrderBy("updated_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return s.queryRecords(ctx, table, query, args)
}

func (s *syncStore) MarkSynced(ctx context.Context, table string, id int64) error {
	return s.MarkManySynced(ctx, table, []int64{id})
}

func (s *syncStore) MarkManySynced(ctx context.Context, table string, ids []int64) error {
	if err := validateTable(table); err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)

	query, args, err := sq.Update(table).
		Set("sync_state", string(models.SyncStateSynced)).
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.execWithRetry(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "syncStore.MarkManySynced").
			Str("table", table).
			Int("ids", len(ids)).
			Msg("failed to mark records synced")
		return fmt.Errorf("mark synced in %s: %w", table, err)
	}

	return nil
}

func (s *syncStore) UpsertFromRemote(ctx context.Context, table string, rows []models.Record) (models.MergeStats, error) {
	var stats models.MergeStats

	if err := validateTable(table); err != nil {
		return stats, err
	}

	log := logger.FromContext(ctx)
	var lastErr error

	for _, row := range rows {
		id, okID := row.ID()
		remoteAt, okAt := row.UpdatedAt()
		if !okID || !okAt {
			stats.Failed++
			lastErr = ErrMissingSyncColumns
			log.Warn().
				Str("func", "syncStore.UpsertFromRemote").
				Str("table", table).
				Msg("remote record missing id or updated_at, skipping")
			continue
		}

		var rawLocalAt any
		err := s.DB.QueryRowContext(ctx,
			"SELECT updated_at FROM "+table+" WHERE id = ?", id,
		).Scan(&rawLocalAt)

		switch {
		case errors.Is(err, sql.ErrNoRows):
			if insertErr := s.insertRemoteRecord(ctx, table, row); insertErr != nil {
				stats.Failed++
				lastErr = insertErr
				log.Err(insertErr).
					Str("func", "syncStore.UpsertFromRemote").
					Str("table", table).
					Int64("id", id).
					Msg("failed to insert remote record")
				continue
			}
			stats.Inserted++

		case err != nil:
			stats.Failed++
			lastErr = fmt.Errorf("%w: %w", ErrExecutingQuery, err)

		default:
			localAt, ok := models.AsTime(rawLocalAt)
			if !ok {
				stats.Failed++
				lastErr = fmt.Errorf("%w: unreadable updated_at for id=%d", ErrScanningRow, id)
				continue
			}
			// strictly newer wins; ties keep the local row
			if !remoteAt.After(localAt) {
				stats.Skipped++
				continue
			}
			if updateErr := s.replaceWithRemoteRecord(ctx, table, id, row); updateErr != nil {
				stats.Failed++
				lastErr = updateErr
				log.Err(updateErr).
					Str("func", "syncStore.UpsertFromRemote").
					Str("table", table).
					Int64("id", id).
					Msg("failed to apply remote record")
				continue
			}
			stats.Updated++
		}
	}

	return stats, lastErr
}

// insertRemoteRecord inserts a remote row verbatim, preserving the remote id.
// The row is stored as synced: its local state now equals the remote state.
func (s *syncStore) insertRemoteRecord(ctx context.Context, table string, row models.Record) error {
	rec := row.Clone()
	rec["sync_state"] = string(models.SyncStateSynced)

	cols := sortedColumns(rec)
	vals := make([]any, 0, len(cols))
	for _, c := range cols {
		vals = append(vals, rec[c])
	}

	query, args, err := sq.Insert(table).Columns(cols...).Values(vals...).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.execWithRetry(ctx, query, args...); err != nil {
		if IsConstraintViolation(err) {
			return fmt.Errorf("%w: insert into %s: %w", ErrConstraintViolation, table, err)
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// replaceWithRemoteRecord overwrites every field of the local row with the
// remote values (whole-row last-writer-wins, no field-level merge).
func (s *syncStore) replaceWithRemoteRecord(ctx context.Context, table string, id int64, row models.Record) error {
	rec := row.Clone()
	rec["sync_state"] = string(models.SyncStateSynced)
	delete(rec, "id")

	builder := sq.Update(table)
	for _, c := range sortedColumns(rec) {
		builder = builder.Set(c, rec[c])
	}

	query, args, err := builder.Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.execWithRetry(ctx, query, args...); err != nil {
		if IsConstraintViolation(err) {
			return fmt.Errorf("%w: update %s: %w", ErrConstraintViolation, table, err)
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *syncStore) queryRecords(ctx context.Context, table, query string, args []any) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "syncStore.queryRecords").
			Str("table", table).
			Msg("failed to query records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

func scanRecords(rows *sql.Rows) ([]models.Record, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	var records []models.Record
	for rows.Next() {
		raw := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range raw {
			ptrs[i] = &raw[i]
		}

		if err = rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		rec := make(models.Record, len(cols))
		for i, c := range cols {
			// []byte columns decay to string so records survive a trip
			// through JSON without changing type
			if b, ok := raw[i].([]byte); ok {
				rec[c] = string(b)
				continue
			}
			rec[c] = raw[i]
		}
		records = append(records, rec)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}

func sortedColumns(rec models.Record) []string {
	cols := make([]string, 0, len(rec))
	for c := range rec {
		cols = append(cols, c)
	}
	sort.Strings(cols)
	return cols
}
