// SPDX-License-Identifier: Apache-2.0

package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// ErrorClassification indicates whether a failed database operation should
// be retried or abandoned.
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be
	// retried. This is the default classification for unrecognised errors,
	// constraint violations, and data type mismatches.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if
	// attempted again (e.g. the database file was momentarily locked by a
	// concurrent writer).
	Retryable
)

// SQLiteErrorClassifier inspects the sqlite3 driver error code of a failed
// operation and maps it to an [ErrorClassification] value.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify attempts to unwrap err as a sqlite3.Error and delegates to
// [ClassifySQLiteError]. If err is nil or not a sqlite3 driver error,
// [NonRetryable] is returned.
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return ClassifySQLiteError(sqliteErr)
	}

	return NonRetryable
}

// ClassifySQLiteError maps a sqlite3.Error to an [ErrorClassification].
//
// Retryable codes:
//   - SQLITE_BUSY, SQLITE_LOCKED — another connection holds the lock.
//
// Everything else (constraint violations, type mismatches, corrupt schema)
// is classified as [NonRetryable].
func ClassifySQLiteError(sqliteErr sqlite3.Error) ErrorClassification {
	switch sqliteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return Retryable
	default:
		return NonRetryable
	}
}

// IsConstraintViolation reports whether err is a sqlite constraint failure
// (foreign key, unique, not-null, check). UpsertFromRemote uses this to
// count a row as failed without aborting the batch.
func IsConstraintViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}
	return errors.Is(err, ErrConstraintViolation)
}
