// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the transport layer for talking to the shared
// backend's table-per-entity REST API.
//
// The primary abstraction is [RemoteStore], which decouples the sync
// orchestrator from the wire protocol. The package ships an HTTP/REST
// implementation ([NewHTTPRemoteStore]) speaking a PostgREST-style table
// API: upsert-by-id for pushes, filtered selects for pulls.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling.
package adapter

import (
	"context"
	"time"

	"fitledger/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_store_mock.go -package=mock

// RemoteStore defines communication with the shared backend using table
// name and row shape only; no business logic lives behind this interface.
type RemoteStore interface {
	// PushRecords upserts rows into the remote table keyed by id. On any
	// backend failure the result carries Success=false and no SyncedIDs:
	// the caller must not mark unconfirmed rows as synced.
	PushRecords(ctx context.Context, table string, rows []models.Record) models.PushResult

	// PullRecords returns rows whose updated_at is strictly greater than
	// since, or all rows when since is the zero time (first sync).
	PullRecords(ctx context.Context, table string, since time.Time) models.PullResult

	// IsReady reports whether the adapter holds usable remote credentials.
	// When false, all sync attempts must be skipped cleanly rather than
	// surfaced as errors.
	IsReady() bool

	// CheckConnection performs a lightweight real call against the backend
	// to confirm it is reachable and the credentials are accepted. Distinct
	// from generic internet reachability.
	CheckConnection(ctx context.Context) bool
}
