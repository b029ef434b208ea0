package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tagalong/ramp/pkg/api/http/common"
	"github.com/tagalong/ramp/pkg/errors"
)

// Client talks to a deployed instance's health endpoint.
//
// The receive timeout defaults to common.ColdStartTolerance: the first
// request after an idle spin-down blocks for tens of seconds while the host
// boots a fresh instance, and we must not treat that as a server error.
type Client struct {
	url      *url.URL
	http     *http.Client
	interval time.Duration
}

func New(address string) (*Client, error) {
	u, err := url.Parse(address)
	return &Client{
		url:      u,
		http:     &http.Client{Timeout: common.ColdStartTolerance},
		interval: common.WarmupPollInterval,
	}, err
}

// Health fetches the health endpoint once.
func (c *Client) Health(ctx context.Context) (*common.HealthResponse, error) {
	addr := c.addr(common.API_HEALTH)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	} else if resp.Body == nil {
		return nil, fmt.Errorf("no response body with status code %d", resp.StatusCode)
	}

	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 { // some error code, assume message is error message
		return nil, fmt.Errorf("%w: bad status code %d, returned %s", errors.ErrNotReady, resp.StatusCode, string(body))
	}

	out := &common.HealthResponse{}
	return out, json.Unmarshal(body, out)
}

// WaitReady polls the health endpoint until the service answers "ok" or the
// context expires. Individual failed polls are expected while the instance
// is still booting.
func (c *Client) WaitReady(ctx context.Context) error {
	tick := time.NewTicker(c.interval)
	defer tick.Stop()

	for {
		h, err := c.Health(ctx)
		if err == nil && h.Status == "ok" {
			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %v", errors.ErrNotReady, ctx.Err())
		case <-tick.C:
		}
	}
}

func (c *Client) addr(path string) *url.URL {
	return &url.URL{Scheme: c.url.Scheme, Host: c.url.Host, Path: path}
}
