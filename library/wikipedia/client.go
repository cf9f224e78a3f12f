// Package wikipedia looks up article titles and summaries on Wikipedia.
package wikipedia

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	gutils "github.com/Laisky/go-utils/v6"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	"github.com/tidwall/gjson"

	"github.com/Laisky/explain/library/log"
)

const (
	// DefaultLanguage is the language edition queried when none is configured.
	DefaultLanguage = "en"
	// DefaultUserAgent follows the Wikimedia User-Agent policy.
	DefaultUserAgent = "explain (https://github.com/Laisky/explain)"
	// DefaultTimeout bounds each request.
	DefaultTimeout = 15 * time.Second

	maxRedirects = 3
	// logBodyLimit caps the number of response bytes logged for debugging.
	logBodyLimit = 4096
	// maxBodySize caps the number of response bytes read from an endpoint.
	maxBodySize = 8 << 20
)

// SearchEndpoint returns the query API endpoint of a language edition.
func SearchEndpoint(lang string) string {
	return fmt.Sprintf("https://%s.wikipedia.org/w/api.php", lang)
}

// SummaryEndpoint returns the page summary endpoint of a language edition.
func SummaryEndpoint(lang string) string {
	return fmt.Sprintf("https://%s.wikipedia.org/api/rest_v1/page/summary", lang)
}

// Client talks to the query API and the page summary endpoint.
type Client struct {
	httpClient      *http.Client
	searchEndpoint  string
	summaryEndpoint string
	language        string
	userAgent       string
	logger          logSDK.Logger
}

// NewClient constructs a Client.
// Without options it queries the English edition with a 15s request timeout.
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{
		language:  DefaultLanguage,
		userAgent: DefaultUserAgent,
		logger:    log.Logger.Named("wikipedia"),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if c.httpClient == nil {
		httpClient, err := gutils.NewHTTPClient(
			gutils.WithHTTPClientTimeout(DefaultTimeout),
		)
		if err != nil {
			return nil, wrapError(ErrCodeURL, err, "create http client")
		}
		c.httpClient = httpClient
	}
	if c.httpClient.CheckRedirect == nil {
		// copy, the caller may share its client
		httpClient := *c.httpClient
		httpClient.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			if len(via) > maxRedirects {
				return ErrTooManyRedirects
			}
			return nil
		}
		c.httpClient = &httpClient
	}

	if c.searchEndpoint == "" {
		c.searchEndpoint = SearchEndpoint(c.language)
	}
	if c.summaryEndpoint == "" {
		c.summaryEndpoint = SummaryEndpoint(c.language)
	}

	return c, nil
}

// get sends a GET request and returns the body of a 2xx JSON response.
// name labels the request in logs and error messages.
func (c *Client) get(ctx context.Context, logger logSDK.Logger, name string, target *url.URL) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, wrapError(ErrCodeURL, err, "create %s request", name)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	logger.Debug("outgoing http request",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
	)

	startAt := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, wrapError(ErrCodeURL, err, "send %s request", name)
	}
	defer gutils.CloseWithLog(resp.Body, logger)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, wrapError(ErrCodeURL, err, "read %s response body", name)
	}

	truncatedBody, truncated := truncateForLog(body, logBodyLimit)
	logger.Debug("incoming http response",
		zap.Int("status", resp.StatusCode),
		zap.String("body", truncatedBody),
		zap.Bool("body_truncated", truncated),
		zap.Duration("cost", time.Since(startAt)),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, NewError(ErrCodeUnsuccessfulResponse,
			fmt.Sprintf("%s request returned status %d", name, resp.StatusCode))
	}

	if len(body) > maxBodySize {
		return nil, NewError(ErrCodeParse,
			fmt.Sprintf("%s response exceeds %d bytes", name, maxBodySize))
	}
	if !gjson.ValidBytes(body) {
		return nil, NewError(ErrCodeParse,
			fmt.Sprintf("%s response is not valid json", name))
	}

	return body, nil
}

// truncateForLog limits the payload logged for debugging and reports whether truncation occurred.
func truncateForLog(body []byte, limit int) (string, bool) {
	if len(body) <= limit {
		return string(body), false
	}
	return string(body[:limit]), true
}
