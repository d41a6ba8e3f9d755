// SPDX-License-Identifier: Apache-2.0

// Package store implements the local persistence layer of fitledger: a
// SQLite database holding all domain tables, the sync bookkeeping each row
// carries, and the key-value metadata table with per-table pull checkpoints.
//
// The sync engine's contract with this package is deliberately table-generic:
// rows travel as [models.Record] values keyed by column name, so one
// implementation serves every syncable table. Typed repositories
// ([MemberRepository], [PaymentRepository]) sit on top for domain CRUD and
// are responsible for marking rows Pending on every mutation.
package store

import (
	"context"
	"time"

	"fitledger/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SyncStorage is the table-generic sync surface of the local store.
type SyncStorage interface {
	// GetPendingRecords returns rows with sync_state=pending that are not
	// soft-deleted. Used for UI badges and diagnostics, not for push.
	GetPendingRecords(ctx context.Context, table string) ([]models.Record, error)

	// GetAllPendingIncludingDeleted returns every pending row regardless of
	// the soft-delete marker. This is the push source: deletions must
	// propagate to the remote like any other mutation.
	GetAllPendingIncludingDeleted(ctx context.Context, table string) ([]models.Record, error)

	// MarkSynced flips one row to synced. Absent ids are a no-op.
	MarkSynced(ctx context.Context, table string, id int64) error

	// MarkManySynced flips a batch of rows to synced. Absent ids are a
	// no-op; the call is idempotent.
	MarkManySynced(ctx context.Context, table string, ids []int64) error

	// UpsertFromRemote merges remote rows into the local table with the
	// last-writer-wins policy: insert when the id is absent, replace when
	// the remote updated_at is strictly newer, skip otherwise. A failure on
	// one row does not abort the rest of the batch; failures are counted in
	// the returned stats and the last error is returned alongside them.
	UpsertFromRemote(ctx context.Context, table string, rows []models.Record) (models.MergeStats, error)
}

// MetaStorage is the key-value metadata store holding per-table pull
// checkpoints and one-time markers, surviving app restarts.
type MetaStorage interface {
	// GetLastSyncTime returns the pull checkpoint for table, or the zero
	// time when the table has never completed a pull.
	GetLastSyncTime(ctx context.Context, table string) (time.Time, error)

	// SetLastSyncTime advances the pull checkpoint for table.
	SetLastSyncTime(ctx context.Context, table string, t time.Time) error

	// SeedCompleted reports whether the one-time initial pull has finished.
	SeedCompleted(ctx context.Context) (bool, error)

	// MarkSeedCompleted persists the one-time seed marker.
	MarkSeedCompleted(ctx context.Context) error
}

// MemberRepository is the domain CRUD surface for members. Every mutation
// resets the row to Pending and bumps updated_at.
type MemberRepository interface {
	Create(ctx context.Context, m models.Member) (models.Member, error)
	Update(ctx context.Context, m models.Member) error
	SoftDelete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (models.Member, error)
	List(ctx context.Context) ([]models.Member, error)
}

// PaymentRepository is the domain CRUD surface for payments.
type PaymentRepository interface {
	Create(ctx context.Context, p models.Payment) (models.Payment, error)
	SoftDelete(ctx context.Context, id int64) error
	ListByMember(ctx context.Context, memberID int64) ([]models.Payment, error)
}
