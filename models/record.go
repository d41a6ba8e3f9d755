// SPDX-License-Identifier: Apache-2.0

package models

import (
	"strconv"
	"time"
)

// Record is one syncable row in transit, keyed by column name. Rows cross
// three representations — SQL scans, JSON bodies, and squirrel argument
// maps — so values may arrive as int64/float64/string/time.Time depending on
// the direction. The accessors below normalise the fields the sync engine
// itself depends on; domain columns pass through untouched.
type Record map[string]any

// ID returns the row's primary key. The second return value is false when
// the id column is absent or not representable as an integer.
func (r Record) ID() (int64, bool) {
	return AsInt64(r["id"])
}

// UpdatedAt returns the row's conflict-arbiter timestamp. The second return
// value is false when the column is absent or unparsable.
func (r Record) UpdatedAt() (time.Time, bool) {
	return AsTime(r["updated_at"])
}

// Deleted reports whether the row carries a soft-delete marker.
func (r Record) Deleted() bool {
	v, ok := r["deleted_at"]
	if !ok || v == nil {
		return false
	}
	if s, isStr := v.(string); isStr {
		return s != ""
	}
	return true
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// AsInt64 coerces a scanned or decoded value to int64.
func AsInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	case string:
		parsed, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// AsTime coerces a scanned or decoded value to time.Time. String values are
// tried against the timestamp layouts the local driver and the remote API
// are known to produce.
func AsTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case []byte:
		return AsTime(string(t))
	case string:
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}
