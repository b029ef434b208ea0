package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tagalong/ramp/pkg/api/http/common"
	"github.com/tagalong/ramp/pkg/errors"
)

func healthHandler(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(&common.HealthResponse{Status: "ok", Service: "tag-along-api"})
}

func TestHealth(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, common.API_HEALTH, r.URL.Path)
		healthHandler(w, r)
	}))
	defer ts.Close()

	c, err := New(ts.URL)
	assert.Nil(t, err)

	h, err := c.Health(context.Background())

	assert.Nil(t, err)
	assert.Equal(t, "ok", h.Status)
	assert.Equal(t, "tag-along-api", h.Service)
}

func TestHealthNotReady(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "booting", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	c, err := New(ts.URL)
	assert.Nil(t, err)

	_, err = c.Health(context.Background())

	assert.ErrorIs(t, err, errors.ErrNotReady)
}

func TestWaitReadyToleratesColdStart(t *testing.T) {
	// the first requests hit an instance that is still booting
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			http.Error(w, "booting", http.StatusServiceUnavailable)
			return
		}
		healthHandler(w, r)
	}))
	defer ts.Close()

	c, err := New(ts.URL)
	assert.Nil(t, err)
	c.interval = 10 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	assert.Nil(t, c.WaitReady(ctx))
	assert.GreaterOrEqual(t, atomic.LoadInt32(&calls), int32(3))
}

func TestWaitReadyGivesUp(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "booting", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	c, err := New(ts.URL)
	assert.Nil(t, err)
	c.interval = 10 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, c.WaitReady(ctx), errors.ErrNotReady)
}
