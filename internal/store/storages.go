// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"

	"fitledger/internal/config"
	"fitledger/internal/logger"
)

// Storages groups all local storage repositories into a single value that
// can be passed around the service layer.
type Storages struct {
	// Sync is the table-generic sync surface used by the orchestrator.
	Sync SyncStorage

	// Meta holds the per-table pull checkpoints and one-time markers.
	Meta MetaStorage

	// Members is the member CRUD repository.
	Members MemberRepository

	// Payments is the payment CRUD repository.
	Payments PaymentRepository
}

// NewStorages initialises the local storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Storages] value wired to fresh repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Sync:     NewSyncStore(db, logger),
		Meta:     NewMetaStore(db, logger),
		Members:  NewMemberRepository(db, logger),
		Payments: NewPaymentRepository(db, logger),
	}, nil
}
