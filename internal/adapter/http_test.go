// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitledger/internal/config"
	"fitledger/internal/logger"
	"fitledger/models"
)

func newTestRemoteStore(t *testing.T, serverURL string) *httpRemoteStore {
	t.Helper()
	cfg := config.Remote{
		BaseURL:        serverURL,
		ServiceKey:     "opaque-service-key",
		RequestTimeout: 5 * time.Second,
	}

	rs, err := NewHTTPRemoteStore(cfg, logger.Nop())
	require.NoError(t, err)
	return rs.(*httpRemoteStore)
}

func signedKey(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "service_role",
		"exp":  exp.Unix(),
	})
	key, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return key
}

// ── IsReady ─────────────────────────────────────────────────────────────────

func TestIsReady_MissingConfig(t *testing.T) {
	rs, err := NewHTTPRemoteStore(config.Remote{}, logger.Nop())
	require.NoError(t, err)
	assert.False(t, rs.IsReady())

	rs, err = NewHTTPRemoteStore(config.Remote{BaseURL: "example.com"}, logger.Nop())
	require.NoError(t, err)
	assert.False(t, rs.IsReady(), "address without a service key is not ready")
}

func TestIsReady_OpaqueKey(t *testing.T) {
	rs := newTestRemoteStore(t, "https://project.example.co")
	assert.True(t, rs.IsReady())
}

func TestIsReady_ExpiredServiceKey(t *testing.T) {
	cfg := config.Remote{
		BaseURL:    "https://project.example.co",
		ServiceKey: signedKey(t, time.Now().Add(-time.Hour)),
	}
	rs, err := NewHTTPRemoteStore(cfg, logger.Nop())
	require.NoError(t, err)
	assert.False(t, rs.IsReady())
}

func TestIsReady_ValidServiceKey(t *testing.T) {
	cfg := config.Remote{
		BaseURL:    "https://project.example.co",
		ServiceKey: signedKey(t, time.Now().Add(24*time.Hour)),
	}
	rs, err := NewHTTPRemoteStore(cfg, logger.Nop())
	require.NoError(t, err)
	assert.True(t, rs.IsReady())
}

func TestNewHTTPRemoteStore_SchemeDefaultsToHTTPS(t *testing.T) {
	cfg := config.Remote{BaseURL: "project.example.co/", ServiceKey: "key"}
	rs, err := NewHTTPRemoteStore(cfg, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "https://project.example.co", rs.(*httpRemoteStore).baseURL)
}

// ── CheckConnection ─────────────────────────────────────────────────────────

func TestCheckConnection_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/rest/v1/members", r.URL.Path)
		assert.Equal(t, "id", r.URL.Query().Get("select"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.Equal(t, "opaque-service-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer opaque-service-key", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Client-ID"))

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	rs := newTestRemoteStore(t, srv.URL)
	assert.True(t, rs.CheckConnection(context.Background()))
}

func TestCheckConnection_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	rs := newTestRemoteStore(t, srv.URL)
	assert.False(t, rs.CheckConnection(context.Background()))
}

func TestCheckConnection_NotConfigured(t *testing.T) {
	rs, err := NewHTTPRemoteStore(config.Remote{}, logger.Nop())
	require.NoError(t, err)
	assert.False(t, rs.CheckConnection(context.Background()))
}

// ── PushRecords ─────────────────────────────────────────────────────────────

func TestPushRecords_UpsertConfirmsEchoedIDs(t *testing.T) {
	rows := []models.Record{
		{"id": int64(5), "name": "Anna", "updated_at": "2024-06-01T00:00:00Z"},
		{"id": int64(7), "name": "Boris", "updated_at": "2024-06-01T00:00:00Z"},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/v1/members", r.URL.Path)
		assert.Equal(t, "resolution=merge-duplicates,return=representation", r.Header.Get("Prefer"))

		var got []models.Record
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Len(t, got, 2)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(got)
	}))
	defer srv.Close()

	rs := newTestRemoteStore(t, srv.URL)
	res := rs.PushRecords(context.Background(), models.TableMembers, rows)

	require.NoError(t, res.Err)
	assert.True(t, res.Success)
	assert.Equal(t, []int64{5, 7}, res.SyncedIDs)
}

func TestPushRecords_MinimalResponseConfirmsBatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	rs := newTestRemoteStore(t, srv.URL)
	res := rs.PushRecords(context.Background(), models.TablePayments, []models.Record{
		{"id": int64(9), "amount": 50.0},
	})

	require.NoError(t, res.Err)
	assert.Equal(t, []int64{9}, res.SyncedIDs)
}

func TestPushRecords_EmptyBatch(t *testing.T) {
	rs := newTestRemoteStore(t, "https://project.example.co")
	res := rs.PushRecords(context.Background(), models.TableMembers, nil)

	assert.True(t, res.Success)
	assert.Empty(t, res.SyncedIDs)
}

func TestPushRecords_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("database unavailable"))
	}))
	defer srv.Close()

	rs := newTestRemoteStore(t, srv.URL)
	res := rs.PushRecords(context.Background(), models.TableMembers, []models.Record{{"id": int64(1)}})

	assert.False(t, res.Success)
	assert.ErrorIs(t, res.Err, ErrRemoteUnavailable)
}

func TestPushRecords_NotConfigured(t *testing.T) {
	rs, err := NewHTTPRemoteStore(config.Remote{}, logger.Nop())
	require.NoError(t, err)

	res := rs.PushRecords(context.Background(), models.TableMembers, []models.Record{{"id": int64(1)}})
	assert.ErrorIs(t, res.Err, ErrNotConfigured)
}

// ── PullRecords ─────────────────────────────────────────────────────────────

func TestPullRecords_FiltersByCheckpoint(t *testing.T) {
	since := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/payments", r.URL.Path)
		assert.Equal(t, "*", r.URL.Query().Get("select"))
		assert.Equal(t, "updated_at.asc", r.URL.Query().Get("order"))
		assert.Equal(t, "gt.2024-06-01T12:00:00Z", r.URL.Query().Get("updated_at"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id": 9, "amount": 50, "updated_at": "2024-06-02T00:00:00Z"}]`))
	}))
	defer srv.Close()

	rs := newTestRemoteStore(t, srv.URL)
	res := rs.PullRecords(context.Background(), models.TablePayments, since)

	require.NoError(t, res.Err)
	assert.True(t, res.Success)
	require.Len(t, res.Records, 1)

	id, ok := res.Records[0].ID()
	assert.True(t, ok)
	assert.Equal(t, int64(9), id)
}

func TestPullRecords_ZeroSincePullsFullHistory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("updated_at"), "zero checkpoint must not add a filter")
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	rs := newTestRemoteStore(t, srv.URL)
	res := rs.PullRecords(context.Background(), models.TableMembers, time.Time{})

	require.NoError(t, res.Err)
	assert.True(t, res.Success)
	assert.Empty(t, res.Records)
}

func TestPullRecords_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("permission denied"))
	}))
	defer srv.Close()

	rs := newTestRemoteStore(t, srv.URL)
	res := rs.PullRecords(context.Background(), models.TableMembers, time.Time{})

	assert.False(t, res.Success)
	assert.ErrorIs(t, res.Err, ErrUnauthorized)
}

func TestPullRecords_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>gateway error</html>"))
	}))
	defer srv.Close()

	rs := newTestRemoteStore(t, srv.URL)
	res := rs.PullRecords(context.Background(), models.TableMembers, time.Time{})

	assert.False(t, res.Success)
	require.Error(t, res.Err)
	assert.False(t, errors.Is(res.Err, ErrRemoteUnavailable))
}
