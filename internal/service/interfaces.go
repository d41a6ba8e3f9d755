// SPDX-License-Identifier: Apache-2.0

// Package service contains the sync engine: the orchestrator that drives
// per-table push-then-pull cycles against the remote store, and the
// background job that triggers full passes periodically.
package service

import (
	"context"
	"time"

	"fitledger/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ConnectivityProbe gates sync attempts on cheap network reachability.
// Implemented by [fitledger/internal/netprobe.Probe].
type ConnectivityProbe interface {
	// CheckConnection reports whether the network is reachable. Must fail
	// closed and must be cheap to call repeatedly.
	CheckConnection(ctx context.Context) bool

	// ClearCache forces the next CheckConnection to re-probe.
	ClearCache()
}

// SyncService drives sync passes and exposes the UI-facing trigger surface.
// At most one pass is in flight per process: a trigger that arrives while a
// pass is running receives the previous result unchanged instead of queuing.
type SyncService interface {
	// SyncAll runs a full push-then-pull pass over every syncable table in
	// dependency order. Failures on individual tables are recorded in the
	// result and do not stop later tables.
	SyncAll(ctx context.Context) models.SyncResult

	// PushChanges runs the push half of the per-table loop only.
	PushChanges(ctx context.Context) models.SyncResult

	// PullChanges runs the pull half of the per-table loop only.
	PullChanges(ctx context.Context) models.SyncResult

	// IsSyncing reports whether a pass is currently in flight.
	IsSyncing() bool

	// LastResult returns the result of the most recently completed pass.
	LastResult() models.SyncResult

	// Subscribe registers fn to be invoked synchronously after every
	// completed pass. The returned function unsubscribes it.
	Subscribe(fn func(models.SyncResult)) func()
}

// SyncJob owns the periodic sync trigger: one full pass after a short
// startup delay, then one per interval until stopped.
type SyncJob interface {
	Start(ctx context.Context, initialDelay, interval time.Duration)
	Stop()
}
