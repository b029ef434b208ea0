package common

import "time"

const (
	// API_HEALTH is used to check the service is up. Clients poll this
	// first, before issuing authenticated calls.
	API_HEALTH = "/api/v1/health/"

	// STATIC_PREFIX is where collected static assets are served from.
	STATIC_PREFIX = "/static/"
)

const (
	// ColdStartTolerance is how long a client should be prepared to wait
	// on its first request: an idle instance may have been suspended by
	// the host, and the next inbound request blocks while a fresh one
	// boots. That latency is expected, not a server error.
	ColdStartTolerance = 90 * time.Second

	// WarmupPollInterval is how often a warmup poller retries health.
	WarmupPollInterval = 5 * time.Second
)
