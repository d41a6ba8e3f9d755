// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"fitledger/internal/adapter"
	"fitledger/internal/logger"
	"fitledger/internal/store"
	"fitledger/models"
)

// Short-circuit reasons recorded when a pass touches zero tables.
const (
	reasonNotConfigured = "remote store not configured"
	reasonOffline       = "no network connectivity"
	reasonUnreachable   = "remote store unreachable"
)

type syncService struct {
	syncStore store.SyncStorage
	meta      store.MetaStorage
	remote    adapter.RemoteStore
	probe     ConnectivityProbe
	logger    *logger.Logger

	mu         sync.Mutex
	syncing    bool
	lastResult models.SyncResult

	listenersMu sync.Mutex
	listeners   map[int]func(models.SyncResult)
	nextID      int
}

// NewSyncService constructs the sync orchestrator.
func NewSyncService(
	syncStore store.SyncStorage,
	meta store.MetaStorage,
	remote adapter.RemoteStore,
	probe ConnectivityProbe,
	log *logger.Logger,
) SyncService {
	return &syncService{
		syncStore: syncStore,
		meta:      meta,
		remote:    remote,
		probe:     probe,
		logger:    log,
		listeners: make(map[int]func(models.SyncResult)),
	}
}

// SyncAll implements [SyncService].
func (s *syncService) SyncAll(ctx context.Context) models.SyncResult {
	return s.run(ctx, true, true)
}

// PushChanges implements [SyncService].
func (s *syncService) PushChanges(ctx context.Context) models.SyncResult {
	return s.run(ctx, true, false)
}

// PullChanges implements [SyncService].
func (s *syncService) PullChanges(ctx context.Context) models.SyncResult {
	return s.run(ctx, false, true)
}

// IsSyncing implements [SyncService].
func (s *syncService) IsSyncing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.syncing
}

// LastResult implements [SyncService].
func (s *syncService) LastResult() models.SyncResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastResult
}

// Subscribe implements [SyncService]. Listeners are invoked synchronously,
// in registration order is not guaranteed, after the result is stored.
func (s *syncService) Subscribe(fn func(models.SyncResult)) func() {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	return func() {
		s.listenersMu.Lock()
		defer s.listenersMu.Unlock()
		delete(s.listeners, id)
	}
}

// run serialises concurrent triggers with a plain in-flight flag: a trigger
// arriving mid-pass is dropped, not queued, and receives the previous
// result unchanged.
func (s *syncService) run(ctx context.Context, doPush, doPull bool) models.SyncResult {
	s.mu.Lock()
	if s.syncing {
		last := s.lastResult
		s.mu.Unlock()
		return last
	}
	s.syncing = true
	s.mu.Unlock()

	// cleared via defer so a panicking pass cannot wedge the engine
	defer func() {
		s.mu.Lock()
		s.syncing = false
		s.mu.Unlock()
	}()

	// every log line of one pass carries the same pass_id
	passLog := s.logger.GetChildLogger()
	passLog.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("pass_id", uuid.NewString())
	})

	result := s.pass(ctx, passLog, doPush, doPull)

	s.mu.Lock()
	s.lastResult = result
	s.mu.Unlock()

	s.notify(result)

	return result
}

func (s *syncService) pass(ctx context.Context, log *logger.Logger, doPush, doPull bool) models.SyncResult {
	var result models.SyncResult

	switch {
	case !s.remote.IsReady():
		// permanent no-op until credentials appear, never user-visible
		result.Errors = append(result.Errors, reasonNotConfigured)
	case !s.probe.CheckConnection(ctx):
		result.Errors = append(result.Errors, reasonOffline)
	case !s.remote.CheckConnection(ctx):
		result.Errors = append(result.Errors, reasonUnreachable)
	default:
		for _, table := range models.SyncTableOrder {
			result.Tables = append(result.Tables, table)

			if doPush {
				pushed, err := s.pushTable(ctx, table)
				result.Pushed += pushed
				if err != nil {
					result.Errors = append(result.Errors, fmt.Sprintf("push %s: %v", table, err))
				}
			}

			if doPull {
				pulled, err := s.pullTable(ctx, table)
				result.Pulled += pulled
				if err != nil {
					result.Errors = append(result.Errors, fmt.Sprintf("pull %s: %v", table, err))
				}
			}
		}
	}

	result.Success = len(result.Errors) == 0
	result.FinishedAt = time.Now()

	log.Info().
		Str("func", "syncService.pass").
		Bool("success", result.Success).
		Int("pushed", result.Pushed).
		Int("pulled", result.Pulled).
		Int("errors", len(result.Errors)).
		Msg("sync pass finished")

	return result
}

// pushTable pushes all pending rows of one table, soft-deleted included.
// On remote failure every row stays Pending so the next pass retries; the
// push is an upsert keyed by id, so repeating it is safe.
func (s *syncService) pushTable(ctx context.Context, table string) (int, error) {
	rows, err := s.syncStore.GetAllPendingIncludingDeleted(ctx, table)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}

	res := s.remote.PushRecords(ctx, table, rows)
	if !res.Success {
		return 0, res.Err
	}

	// mark exactly the confirmed ids; anything unconfirmed retries later
	if err = s.syncStore.MarkManySynced(ctx, table, res.SyncedIDs); err != nil {
		return len(res.SyncedIDs), err
	}

	return len(res.SyncedIDs), nil
}

// pullTable pulls rows updated since the table's checkpoint and merges them
// with last-writer-wins. A failed remote call leaves the checkpoint
// untouched so the same window is re-read next pass. A successful call
// advances the checkpoint even when zero rows came back, so an idle table
// is never rescanned from the beginning of history.
func (s *syncService) pullTable(ctx context.Context, table string) (int, error) {
	since, err := s.meta.GetLastSyncTime(ctx, table)
	if err != nil {
		return 0, err
	}

	res := s.remote.PullRecords(ctx, table, since)
	if !res.Success {
		return 0, res.Err
	}

	// capture before applying: a row updated concurrently with the merge
	// will be re-read by its own later updated_at
	pulledAt := time.Now()

	stats, mergeErr := s.syncStore.UpsertFromRemote(ctx, table, res.Records)

	if err = s.meta.SetLastSyncTime(ctx, table, pulledAt); err != nil {
		mergeErr = errors.Join(mergeErr, err)
	}

	return stats.Inserted + stats.Updated, mergeErr
}

func (s *syncService) notify(result models.SyncResult) {
	s.listenersMu.Lock()
	fns := make([]func(models.SyncResult), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.listenersMu.Unlock()

	for _, fn := range fns {
		fn(result)
	}
}
