package store

import (
	"database/sql"

	"fitledger/internal/logger"
	"fitledger/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
