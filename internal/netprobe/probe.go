// SPDX-License-Identifier: Apache-2.0

// Package netprobe provides a cheap, cached internet-reachability check used
// to gate sync attempts. It answers "is the network worth trying at all";
// whether the backend itself is up and accepting our credentials is the
// remote adapter's CheckConnection concern.
package netprobe

import (
	"context"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"fitledger/internal/adapter"
	"fitledger/internal/config"
	"fitledger/internal/logger"
)

// defaultProbeURL is used when no remote base URL is configured. Any HTTP
// response, regardless of status, proves reachability.
const defaultProbeURL = "https://www.gstatic.com/generate_204"

// Probe issues a small network request with a bounded timeout and caches
// the boolean result for a short fixed window so repeated calls within that
// window are free. It fails closed: any network error, timeout, or abort is
// treated as "not connected".
type Probe struct {
	client *resty.Client
	url    string
	ttl    time.Duration

	mu          sync.Mutex
	inFlight    chan struct{}
	lastResult  bool
	lastChecked time.Time

	logger *logger.Logger
}

// New constructs a Probe from the remote configuration. The probe targets
// the configured backend base URL when present, falling back to a
// well-known connectivity endpoint otherwise. The address goes through the
// same normalisation as the remote adapter, so a scheme-less value that the
// adapter accepts is probed correctly too.
func New(cfg config.Remote, log *logger.Logger) *Probe {
	url := defaultProbeURL
	if cfg.BaseURL != "" {
		normalized, err := adapter.NormalizeBaseURL(cfg.BaseURL)
		if err != nil {
			log.Warn().Err(err).
				Str("address", cfg.BaseURL).
				Msg("unusable remote address, probing default endpoint")
		} else {
			url = normalized
		}
	}

	return &Probe{
		client: resty.New().SetTimeout(cfg.ProbeTimeout),
		url:    url,
		ttl:    cfg.ProbeCacheTTL,
		logger: log,
	}
}

// CheckConnection reports whether the network is reachable. Results are
// cached for the configured window; use [Probe.ClearCache] to force a fresh
// probe.
func (p *Probe) CheckConnection(ctx context.Context) bool {
	p.mu.Lock()

	if !p.lastChecked.IsZero() && time.Since(p.lastChecked) < p.ttl {
		connected := p.lastResult
		p.mu.Unlock()
		return connected
	}

	// join a probe already in flight instead of stacking requests
	if p.inFlight != nil {
		done := p.inFlight
		p.mu.Unlock()
		<-done

		p.mu.Lock()
		connected := p.lastResult
		p.mu.Unlock()
		return connected
	}

	done := make(chan struct{})
	p.inFlight = done
	p.mu.Unlock()

	// the lock is not held across the request, so cached reads and
	// ClearCache never wait on a slow probe
	_, err := p.client.R().SetContext(ctx).Get(p.url)
	connected := err == nil

	if err != nil {
		p.logger.Debug().Err(err).
			Str("func", "Probe.CheckConnection").
			Msg("connectivity probe failed")
	}

	p.mu.Lock()
	p.lastResult = connected
	p.lastChecked = time.Now()
	p.inFlight = nil
	p.mu.Unlock()
	close(done)

	return connected
}

// ClearCache forces the next CheckConnection call to issue a real request.
func (p *Probe) ClearCache() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastChecked = time.Time{}
}
