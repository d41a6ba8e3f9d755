// SPDX-License-Identifier: Apache-2.0

package netprobe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fitledger/internal/config"
	"fitledger/internal/logger"
)

func newCountingServer(status int) (*httptest.Server, *atomic.Int64) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(status)
	}))
	return srv, &hits
}

func TestCheckConnection_AnyHTTPStatusCountsAsConnected(t *testing.T) {
	srv, _ := newCountingServer(http.StatusInternalServerError)
	defer srv.Close()

	p := New(config.Remote{BaseURL: srv.URL, ProbeTimeout: time.Second}, logger.Nop())
	assert.True(t, p.CheckConnection(context.Background()),
		"an HTTP response proves reachability even when the status is an error")
}

func TestCheckConnection_FailsClosed(t *testing.T) {
	srv, _ := newCountingServer(http.StatusNoContent)
	srv.Close() // refuse connections

	p := New(config.Remote{BaseURL: srv.URL, ProbeTimeout: time.Second}, logger.Nop())
	assert.False(t, p.CheckConnection(context.Background()))
}

func TestCheckConnection_CachesWithinWindow(t *testing.T) {
	srv, hits := newCountingServer(http.StatusNoContent)
	defer srv.Close()

	p := New(config.Remote{
		BaseURL:       srv.URL,
		ProbeTimeout:  time.Second,
		ProbeCacheTTL: time.Minute,
	}, logger.Nop())

	for i := 0; i < 5; i++ {
		assert.True(t, p.CheckConnection(context.Background()))
	}
	assert.Equal(t, int64(1), hits.Load(), "calls inside the cache window must not hit the network")
}

func TestCheckConnection_NegativeResultIsCachedToo(t *testing.T) {
	srv, hits := newCountingServer(http.StatusNoContent)
	srv.Close()

	p := New(config.Remote{
		BaseURL:       srv.URL,
		ProbeTimeout:  time.Second,
		ProbeCacheTTL: time.Minute,
	}, logger.Nop())

	assert.False(t, p.CheckConnection(context.Background()))
	assert.False(t, p.CheckConnection(context.Background()))
	assert.Equal(t, int64(0), hits.Load())
}

func TestNew_NormalizesSchemelessBaseURL(t *testing.T) {
	// the adapter accepts a scheme-less address, so the probe must target
	// the same normalized URL instead of an unusable verbatim one
	p := New(config.Remote{BaseURL: "project.example.co"}, logger.Nop())
	assert.Equal(t, "https://project.example.co", p.url)

	p = New(config.Remote{BaseURL: "  https://project.example.co/  "}, logger.Nop())
	assert.Equal(t, "https://project.example.co", p.url)
}

func TestNew_NoBaseURLUsesDefaultEndpoint(t *testing.T) {
	p := New(config.Remote{}, logger.Nop())
	assert.Equal(t, defaultProbeURL, p.url)
}

func TestCheckConnection_ConcurrentCallersShareOneProbe(t *testing.T) {
	block := make(chan struct{})
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		<-block
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	p := New(config.Remote{
		BaseURL:       srv.URL,
		ProbeTimeout:  5 * time.Second,
		ProbeCacheTTL: time.Minute,
	}, logger.Nop())

	var wg sync.WaitGroup
	results := make([]bool, 5)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = p.CheckConnection(context.Background())
		}(i)
	}

	time.Sleep(50 * time.Millisecond)
	close(block)
	wg.Wait()

	assert.Equal(t, int64(1), hits.Load(), "concurrent callers must share a single request")
	for i, connected := range results {
		assert.True(t, connected, "caller %d must see the shared result", i)
	}
}

func TestClearCache_DoesNotBlockOnInFlightProbe(t *testing.T) {
	entered := make(chan struct{})
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-block
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	p := New(config.Remote{
		BaseURL:       srv.URL,
		ProbeTimeout:  5 * time.Second,
		ProbeCacheTTL: time.Minute,
	}, logger.Nop())

	go p.CheckConnection(context.Background())
	<-entered

	cleared := make(chan struct{})
	go func() {
		p.ClearCache()
		close(cleared)
	}()

	select {
	case <-cleared:
	case <-time.After(time.Second):
		t.Fatal("ClearCache blocked on an in-flight probe")
	}

	close(block)
}

func TestClearCache_ForcesFreshProbe(t *testing.T) {
	srv, hits := newCountingServer(http.StatusNoContent)
	defer srv.Close()

	p := New(config.Remote{
		BaseURL:       srv.URL,
		ProbeTimeout:  time.Second,
		ProbeCacheTTL: time.Minute,
	}, logger.Nop())

	p.CheckConnection(context.Background())
	p.ClearCache()
	p.CheckConnection(context.Background())

	assert.Equal(t, int64(2), hits.Load())
}
