// SPDX-License-Identifier: Apache-2.0

package models

import "time"

// SyncMeta is embedded in every syncable domain entity. Any local mutation
// must reset State to [SyncStatePending] and bump UpdatedAt; the repositories
// in internal/store enforce this on every write.
type SyncMeta struct {
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	State     SyncState  `json:"sync_state"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// Member is a person enrolled with the business.
type Member struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Notes string `json:"notes"`
	SyncMeta
}

// Package is a sellable bundle of sessions or time.
type Package struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Sessions int     `json:"sessions"`
	Days     int     `json:"days"`
	SyncMeta
}

// Subscription ties a member to a purchased package.
type Subscription struct {
	ID        int64     `json:"id"`
	MemberID  int64     `json:"member_id"`
	PackageID int64     `json:"package_id"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
	SyncMeta
}

// Payment is money received from a member, optionally against a
// subscription.
type Payment struct {
	ID             int64     `json:"id"`
	MemberID       int64     `json:"member_id"`
	SubscriptionID *int64    `json:"subscription_id,omitempty"`
	Amount         float64   `json:"amount"`
	Method         string    `json:"method"`
	PaidAt         time.Time `json:"paid_at"`
	SyncMeta
}

// Expense is money spent by the business, grouped by category.
type Expense struct {
	ID         int64     `json:"id"`
	CategoryID *int64    `json:"category_id,omitempty"`
	Amount     float64   `json:"amount"`
	Note       string    `json:"note"`
	SpentAt    time.Time `json:"spent_at"`
	SyncMeta
}
