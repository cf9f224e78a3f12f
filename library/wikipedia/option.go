package wikipedia

import (
	"net/http"
	"strings"

	logSDK "github.com/Laisky/go-utils/v6/log"
)

// Option configures the Client instance.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client used to reach the encyclopedia.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithLogger overrides the default logger.
func WithLogger(logger logSDK.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithLanguage selects the language edition, e.g. "en" or "de".
// Endpoints not set explicitly are derived from it.
func WithLanguage(lang string) Option {
	return func(c *Client) {
		if lang = strings.TrimSpace(lang); lang != "" {
			c.language = lang
		}
	}
}

// WithUserAgent sets the User-Agent sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua = strings.TrimSpace(ua); ua != "" {
			c.userAgent = ua
		}
	}
}

// WithSearchEndpoint overrides the query API endpoint, primarily for testing.
func WithSearchEndpoint(endpoint string) Option {
	return func(c *Client) {
		if endpoint = strings.TrimSpace(endpoint); endpoint != "" {
			c.searchEndpoint = endpoint
		}
	}
}

// WithSummaryEndpoint overrides the page summary endpoint, primarily for testing.
func WithSummaryEndpoint(endpoint string) Option {
	return func(c *Client) {
		if endpoint = strings.TrimSpace(endpoint); endpoint != "" {
			c.summaryEndpoint = endpoint
		}
	}
}
