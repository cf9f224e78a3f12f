package wikipedia

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/Laisky/zap"
	"github.com/tidwall/gjson"
)

// Search resolves query to the title of the top-ranked article.
// API documentation: https://www.mediawiki.org/wiki/API:Search
func (c *Client) Search(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", ErrEmptyQuery
	}

	endpoint, err := url.Parse(c.searchEndpoint)
	if err != nil {
		return "", wrapError(ErrCodeURL, err, "invalid search endpoint %q", c.searchEndpoint)
	}

	params := endpoint.Query()
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("format", "json")
	params.Set("utf8", "1")
	endpoint.RawQuery = params.Encode()

	logger := c.logger.With(zap.String("query", query))
	body, err := c.get(ctx, logger, "search", endpoint)
	if err != nil {
		return "", err
	}

	if apiErr := gjson.GetBytes(body, "error"); apiErr.IsObject() {
		return "", NewError(ErrCodeUnsuccessfulResponse,
			fmt.Sprintf("search api reported error: %s (code: %s)",
				apiErr.Get("info").String(), apiErr.Get("code").String()))
	}

	title := gjson.GetBytes(body, "query.search.0.title")
	if title.Type != gjson.String || strings.TrimSpace(title.Str) == "" {
		logger.Debug("search returned no usable title")
		return "", NewError(ErrCodeArticleNotFound,
			fmt.Sprintf("no article found for %q", query))
	}

	return title.Str, nil
}
