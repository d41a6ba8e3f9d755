// SPDX-License-Identifier: Apache-2.0

// Package models holds the shared data types of the fitledger application:
// syncable row representations, sync bookkeeping types, and the domain
// entities stored in the local database.
package models

import "time"

// SyncState marks whether a row's current local state has been confirmed
// written to the remote store.
type SyncState string

const (
	// SyncStatePending marks a row that was created or mutated locally and
	// has not yet been acknowledged by the remote store.
	SyncStatePending SyncState = "pending"

	// SyncStateSynced marks a row whose exact current local state has been
	// confirmed written to the remote store.
	SyncStateSynced SyncState = "synced"
)

// SyncTableOrder is the fixed, dependency-ordered list of syncable tables.
// Independent tables come first, then first-level dependents
// (subscriptions→members/packages, participations→schedule_blocks/members),
// then payments (→members/subscriptions), settings last. A child table must
// never be pushed or pulled ahead of its parents because inserts assume
// referential integrity.
var SyncTableOrder = []string{
	TableMembers,
	TablePackages,
	TableCategories,
	TableTodos,
	TableScheduleBlocks,
	TableSubscriptions,
	TableExpenses,
	TableParticipations,
	TablePayments,
	TableSettings,
}

// Syncable table names.
const (
	TableMembers        = "members"
	TablePackages       = "packages"
	TableCategories     = "categories"
	TableTodos          = "todos"
	TableScheduleBlocks = "schedule_blocks"
	TableSubscriptions  = "subscriptions"
	TableExpenses       = "expenses"
	TableParticipations = "participations"
	TablePayments       = "payments"
	TableSettings       = "settings"
)

// SyncResult is the aggregate outcome of one sync invocation (full pass,
// push-only or pull-only). It is stored by the orchestrator and broadcast to
// subscribed listeners.
type SyncResult struct {
	// Tables lists the tables processed, in the order they were visited.
	Tables []string `json:"tables"`

	// Pushed is the total number of records confirmed written to the remote.
	Pushed int `json:"pushed"`

	// Pulled is the total number of remote records inserted or updated
	// locally (skipped rows are not counted).
	Pulled int `json:"pulled"`

	// Errors collects per-table failure descriptions. A non-empty list does
	// not imply zero progress: sync is best-effort per table.
	Errors []string `json:"errors,omitempty"`

	// Success is true when the pass ran to completion without recording any
	// error. A short-circuited pass (offline, not configured) is not a
	// success.
	Success bool `json:"success"`

	// FinishedAt is when the pass completed.
	FinishedAt time.Time `json:"finished_at"`
}

// MergeStats reports the outcome of merging a batch of remote rows into the
// local store with the last-writer-wins policy.
type MergeStats struct {
	// Inserted counts rows that had no local counterpart and were inserted
	// verbatim, preserving the remote id.
	Inserted int

	// Updated counts rows whose remote updated_at was strictly newer than
	// the local one; all local fields were replaced.
	Updated int

	// Skipped counts rows left untouched because the local row was at least
	// as new (local-wins on ties).
	Skipped int

	// Failed counts rows that could not be applied locally, typically due to
	// a constraint violation. Failures do not abort the rest of the batch.
	Failed int
}

// PushResult is the remote adapter's answer to a push request.
type PushResult struct {
	// Success is true only when the backend acknowledged the whole batch.
	Success bool

	// SyncedIDs lists the ids the backend confirmed. Rows not listed here
	// must remain Pending locally.
	SyncedIDs []int64

	// Err carries the transport or backend failure when Success is false.
	Err error
}

// PullResult is the remote adapter's answer to a pull request.
type PullResult struct {
	// Success is true when the select completed; Records may still be empty.
	Success bool

	// Records holds the remote rows with updated_at strictly greater than
	// the requested checkpoint.
	Records []Record

	// Err carries the transport or backend failure when Success is false.
	Err error
}
