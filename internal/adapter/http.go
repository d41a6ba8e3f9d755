// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"fitledger/internal/config"
	"fitledger/internal/logger"
	"fitledger/models"
)

type httpRemoteStore struct {
	client     *resty.Client
	baseURL    string
	serviceKey string
	clientID   string

	logger *logger.Logger
}

// NewHTTPRemoteStore constructs an HTTP/REST implementation of [RemoteStore].
// It normalises and validates the base URL from cfg.BaseURL, configures the
// underlying HTTP client with the resolved base URL and request timeout, and
// attaches a per-process client id header so the backend can tell devices
// apart.
//
// An empty base URL or service key is not an error: the adapter is returned
// in a permanent not-ready state and every sync attempt is skipped cleanly.
// Returns an error only if a non-empty cfg.BaseURL cannot be parsed as a
// valid URL.
func NewHTTPRemoteStore(cfg config.Remote, log *logger.Logger) (RemoteStore, error) {
	client := resty.New().
		SetTimeout(cfg.RequestTimeout).
		SetHeader("X-Client-ID", uuid.NewString())

	baseURL := ""
	if cfg.BaseURL != "" {
		normalized, err := NormalizeBaseURL(cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid remote address: %w", err)
		}
		baseURL = normalized
		client.SetBaseURL(baseURL)
	}

	return &httpRemoteStore{
		client:     client,
		baseURL:    baseURL,
		serviceKey: cfg.ServiceKey,
		clientID:   client.Header.Get("X-Client-ID"),
		logger:     log,
	}, nil
}

// NormalizeBaseURL turns a configured remote address into a usable base URL:
// whitespace and trailing slashes are stripped and a scheme-less address gets
// https. Every component that dials the configured address must go through
// this so a value the adapter accepts is never rejected elsewhere.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// IsReady implements [RemoteStore]. The adapter is ready when both the base
// URL and the service key are present and the key, if it is a JWT, has not
// expired. Opaque (non-JWT) keys are accepted as-is.
func (h *httpRemoteStore) IsReady() bool {
	if h.baseURL == "" || h.serviceKey == "" {
		return false
	}
	return !serviceKeyExpired(h.serviceKey, time.Now())
}

func serviceKeyExpired(key string, now time.Time) bool {
	token, _, err := jwt.NewParser().ParseUnverified(key, jwt.MapClaims{})
	if err != nil {
		// not a JWT: nothing to check locally, let the backend decide
		return false
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return exp.Time.Before(now)
}

// CheckConnection implements [RemoteStore]. It performs a one-row select
// against the members table to confirm the backend is reachable and the
// credentials are accepted. Any transport or HTTP error yields false.
func (h *httpRemoteStore) CheckConnection(ctx context.Context) bool {
	if !h.IsReady() {
		return false
	}

	resp, err := h.authedRequest(ctx).
		SetQueryParam("select", "id").
		SetQueryParam("limit", "1").
		Get("/rest/v1/" + models.TableMembers)
	if err != nil {
		h.logger.Debug().Err(err).
			Str("func", "httpRemoteStore.CheckConnection").
			Msg("remote connection check failed")
		return false
	}

	return mapHTTPError(resp) == nil
}

// PushRecords implements [RemoteStore]. It POSTs the rows to the table
// endpoint as an upsert keyed by id (Prefer: resolution=merge-duplicates).
// When the backend echoes the written rows, exactly those ids are reported
// as synced; a 2xx with an empty body confirms the whole batch.
func (h *httpRemoteStore) PushRecords(ctx context.Context, table string, rows []models.Record) models.PushResult {
	if !h.IsReady() {
		return models.PushResult{Err: ErrNotConfigured}
	}
	if len(rows) == 0 {
		return models.PushResult{Success: true}
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", "resolution=merge-duplicates,return=representation").
		SetBody(rows).
		Post("/rest/v1/" + table)
	if err != nil {
		return models.PushResult{Err: fmt.Errorf("push %s request: %w", table, err)}
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PushResult{Err: err}
	}

	return models.PushResult{Success: true, SyncedIDs: confirmedIDs(resp.Body(), rows)}
}

// confirmedIDs extracts the ids of the rows the backend echoed back. A
// backend honouring return=minimal sends no body; the 2xx status then
// confirms the full batch.
func confirmedIDs(body []byte, sent []models.Record) []int64 {
	if len(strings.TrimSpace(string(body))) > 0 {
		var returned []models.Record
		if err := json.Unmarshal(body, &returned); err == nil {
			ids := make([]int64, 0, len(returned))
			for _, rec := range returned {
				if id, ok := rec.ID(); ok {
					ids = append(ids, id)
				}
			}
			return ids
		}
	}

	ids := make([]int64, 0, len(sent))
	for _, rec := range sent {
		if id, ok := rec.ID(); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// PullRecords implements [RemoteStore]. It selects rows with updated_at
// strictly greater than since, or every row when since is the zero time.
func (h *httpRemoteStore) PullRecords(ctx context.Context, table string, since time.Time) models.PullResult {
	if !h.IsReady() {
		return models.PullResult{Err: ErrNotConfigured}
	}

	req := h.authedRequest(ctx).
		SetQueryParam("select", "*").
		SetQueryParam("order", "updated_at.asc")
	if !since.IsZero() {
		req.SetQueryParam("updated_at", "gt."+since.UTC().Format(time.RFC3339Nano))
	}

	resp, err := req.Get("/rest/v1/" + table)
	if err != nil {
		return models.PullResult{Err: fmt.Errorf("pull %s request: %w", table, err)}
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PullResult{Err: err}
	}

	var records []models.Record
	if err = json.Unmarshal(resp.Body(), &records); err != nil {
		return models.PullResult{Err: fmt.Errorf("decode pull %s response: %w", table, err)}
	}

	return models.PullResult{Success: true, Records: records}
}

func (h *httpRemoteStore) authedRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("apikey", h.serviceKey).
		SetHeader("Authorization", "Bearer "+h.serviceKey)
}
