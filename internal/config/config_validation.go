// SPDX-License-Identifier: Apache-2.0

package config

import (
	"strings"
	"time"
)

// Defaults applied after merging all configuration sources. The remote
// endpoint and service key deliberately have no defaults: an unconfigured
// remote means the adapter reports not-ready and sync stays a silent no-op.
const (
	DefaultDSN            = "fitledger.db"
	DefaultRequestTimeout = "15s"
	DefaultProbeTimeout   = "3s"
	DefaultProbeCacheTTL  = "5s"
	DefaultSyncInterval   = "5m"
	DefaultInitialDelay   = "10s"
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}
	if cfg.Remote.RequestTimeout <= 0 {
		cfg.Remote.RequestTimeout = mustDuration(DefaultRequestTimeout)
	}
	if cfg.Remote.ProbeTimeout <= 0 {
		cfg.Remote.ProbeTimeout = mustDuration(DefaultProbeTimeout)
	}
	if cfg.Remote.ProbeCacheTTL <= 0 {
		cfg.Remote.ProbeCacheTTL = mustDuration(DefaultProbeCacheTTL)
	}
	if cfg.Sync.Interval <= 0 {
		cfg.Sync.Interval = mustDuration(DefaultSyncInterval)
	}
	if cfg.Sync.InitialDelay <= 0 {
		cfg.Sync.InitialDelay = mustDuration(DefaultInitialDelay)
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The local database must live in a file: the whole point of the local
// store is surviving restarts while offline, so in-memory DSNs are
// rejected. Remote settings are optional — missing credentials degrade to
// a not-ready adapter, never a startup failure.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || isInMemoryDSN(cfg.Storage.DB.DSN) {
		return ErrInvalidStorageConfigs
	}

	if cfg.Remote.BaseURL != "" && cfg.Remote.ServiceKey == "" {
		return ErrInvalidRemoteConfigs
	}

	return nil
}

// isInMemoryDSN matches the sqlite in-memory DSN forms (":memory:" and the
// mode=memory query parameter). A file path that merely contains the word
// "memory" is a valid local database location.
func isInMemoryDSN(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

// mustDuration parses the compile-time default constants above. A parse
// failure is a programming error, not a runtime condition.
func mustDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		panic("config: bad default duration " + s)
	}
	return d
}
