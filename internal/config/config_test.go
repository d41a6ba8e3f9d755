// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// ── builder / merge ─────────────────────────────────────────────────────────

func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "env.db"}}},
		&StructuredConfig{
			Storage: Storage{DB: DB{DSN: "json.db"}},
			Remote: Remote{
				BaseURL:    "https://project.example.co",
				ServiceKey: "json-key",
			},
		},
	)

	cfg, err := b.build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Storage.DB.DSN != "env.db" {
		t.Errorf("expected the earlier source to win, got DSN=%s", cfg.Storage.DB.DSN)
	}
	if cfg.Remote.ServiceKey != "json-key" {
		t.Errorf("expected later sources to fill unset fields, got key=%s", cfg.Remote.ServiceKey)
	}
}

func TestBuild_AppliesDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Storage.DB.DSN != DefaultDSN {
		t.Errorf("expected default DSN %q, got %q", DefaultDSN, cfg.Storage.DB.DSN)
	}
	if cfg.Remote.RequestTimeout != 15*time.Second {
		t.Errorf("expected default request timeout, got %v", cfg.Remote.RequestTimeout)
	}
	if cfg.Remote.ProbeTimeout != 3*time.Second {
		t.Errorf("expected default probe timeout, got %v", cfg.Remote.ProbeTimeout)
	}
	if cfg.Remote.ProbeCacheTTL != 5*time.Second {
		t.Errorf("expected default probe cache ttl, got %v", cfg.Remote.ProbeCacheTTL)
	}
	if cfg.Sync.Interval != 5*time.Minute {
		t.Errorf("expected default sync interval, got %v", cfg.Sync.Interval)
	}
	if cfg.Sync.InitialDelay != 10*time.Second {
		t.Errorf("expected default initial delay, got %v", cfg.Sync.InitialDelay)
	}
}

func TestBuild_PropagatesSourceError(t *testing.T) {
	b := newConfigBuilder()
	b.err = errors.New("boom")

	if _, err := b.build(); err == nil {
		t.Fatal("expected build to fail when a source failed to load")
	}
}

// ── validation ──────────────────────────────────────────────────────────────

func TestValidate_RejectsInMemoryDSN(t *testing.T) {
	for _, dsn := range []string{
		":memory:",
		"file::memory:?cache=shared",
		"file:test.db?mode=memory",
	} {
		cfg := &StructuredConfig{Storage: Storage{DB: DB{DSN: dsn}}}
		if err := cfg.validate(); !errors.Is(err, ErrInvalidStorageConfigs) {
			t.Errorf("DSN %q: expected ErrInvalidStorageConfigs, got %v", dsn, err)
		}
	}
}

func TestValidate_AcceptsPathContainingMemoryWord(t *testing.T) {
	cfg := &StructuredConfig{Storage: Storage{DB: DB{DSN: "/home/memory/fitledger.db"}}}
	if err := cfg.validate(); err != nil {
		t.Fatalf("a file path containing the word memory must be valid, got %v", err)
	}
}

func TestValidate_RejectsAddressWithoutKey(t *testing.T) {
	cfg := &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "fitledger.db"}},
		Remote:  Remote{BaseURL: "https://project.example.co"},
	}
	if err := cfg.validate(); !errors.Is(err, ErrInvalidRemoteConfigs) {
		t.Fatalf("expected ErrInvalidRemoteConfigs, got %v", err)
	}
}

func TestValidate_OfflineOnlySetupIsValid(t *testing.T) {
	cfg := &StructuredConfig{Storage: Storage{DB: DB{DSN: "fitledger.db"}}}
	if err := cfg.validate(); err != nil {
		t.Fatalf("no remote configured must be valid, got %v", err)
	}
}

// ── JSON source ─────────────────────────────────────────────────────────────

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration
	if err := json.Unmarshal([]byte(`"90s"`), &d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if time.Duration(d) != 90*time.Second {
		t.Errorf("expected 90s, got %v", time.Duration(d))
	}

	if err := json.Unmarshal([]byte(`"soon"`), &d); err == nil {
		t.Error("expected error for unparsable duration")
	}
	if err := json.Unmarshal([]byte(`15`), &d); err == nil {
		t.Error("expected error for non-string duration")
	}
}

func TestParseJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"app": {"version": "1.2.3"},
		"storage": {"db": {"dsn": "data/fitledger.db"}},
		"remote": {
			"address": "https://project.example.co",
			"service_key": "secret",
			"request_timeout": "20s",
			"probe_timeout": "2s",
			"probe_cache_ttl": "10s"
		},
		"sync": {"interval": "10m", "initial_delay": "30s"}
	}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	cfg, err := parseJSON(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.App.Version != "1.2.3" {
		t.Errorf("unexpected version: %s", cfg.App.Version)
	}
	if cfg.Storage.DB.DSN != "data/fitledger.db" {
		t.Errorf("unexpected DSN: %s", cfg.Storage.DB.DSN)
	}
	if cfg.Remote.RequestTimeout != 20*time.Second {
		t.Errorf("unexpected request timeout: %v", cfg.Remote.RequestTimeout)
	}
	if cfg.Sync.Interval != 10*time.Minute {
		t.Errorf("unexpected sync interval: %v", cfg.Sync.Interval)
	}
}

func TestParseJSON_MissingFile(t *testing.T) {
	if _, err := parseJSON(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
