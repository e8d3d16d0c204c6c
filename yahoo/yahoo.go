// Package yahoo implements the market data and fundamentals providers on
// top of the public Yahoo Finance endpoints (v8 chart and v10 quoteSummary).
//
// Responses are cached on disk with a daily expiry, and live requests are
// paced by a minimum-interval rate limiter to stay clear of the provider's
// own throttling. A failed request is reported as an error, not retried.
package yahoo

import (
	"net/http"
	"time"

	"github.com/etnz/stockwatch"
)

const userAgent = "curl/8"

// Client fetches market data and fundamentals from Yahoo Finance.
type Client struct {
	http *http.Client
}

// New returns a Client that waits at least minInterval between consecutive
// live requests. Cache hits are served without pacing.
func New(minInterval time.Duration) *Client {
	return &Client{http: newDailyCachingClient(minInterval)}
}

// The Client is the concrete collaborator for both provider contracts.
var _ stockwatch.MarketData = (*Client)(nil)
var _ stockwatch.FundamentalsData = (*Client)(nil)
