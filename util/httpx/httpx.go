// Package httpx holds the pooled HTTP client the gateway uses for its
// round trips to the backend server.
package httpx

import (
	"net"
	"net/http"
	"time"
)

// forwardClient is tuned for many short requests to a single upstream:
// generous idle pool per host, bounded dial and overall timeouts.
var forwardClient = &http.Client{
	Timeout: 10 * time.Second,
	Transport: &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		MaxConnsPerHost:     100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	},
}

// Client returns the shared forwarding client.
func Client() *http.Client { return forwardClient }
