package wikipedia

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/Laisky/zap"
	"github.com/tidwall/gjson"
)

const (
	fieldDescription = "description"
	fieldExtract     = "extract"
	fieldPageURL     = "content_urls.desktop.page"
)

// NormalizeTitle converts an article title into its page path form,
// every space becomes an underscore.
func NormalizeTitle(title string) string {
	return strings.ReplaceAll(title, " ", "_")
}

// Summary fetches the summary of the article titled title.
// The short description is used unless longForm is set or the article has none,
// in which case the extract is used.
// API documentation: https://en.wikipedia.org/api/rest_v1/#/Page%20content/get_page_summary__title_
func (c *Client) Summary(ctx context.Context, title string, longForm bool) (*ArticleSummary, error) {
	if strings.TrimSpace(title) == "" {
		return nil, NewError(ErrCodeArticleNotFound, "article title cannot be empty")
	}

	target, err := c.summaryURL(title)
	if err != nil {
		return nil, err
	}

	logger := c.logger.With(zap.String("title", title), zap.Bool("long_form", longForm))
	body, err := c.get(ctx, logger, "summary", target)
	if err != nil {
		return nil, err
	}

	text, err := selectSummaryText(body, longForm)
	if err != nil {
		return nil, err
	}

	page := gjson.GetBytes(body, fieldPageURL)
	if page.Type != gjson.String || strings.TrimSpace(page.Str) == "" {
		return nil, NewError(ErrCodeParse,
			fmt.Sprintf("summary response has no text field %q", fieldPageURL))
	}

	return &ArticleSummary{
		Title:   title,
		Summary: text,
		URL:     page.Str,
	}, nil
}

// summaryURL appends the normalized title to the summary endpoint as a single path segment.
func (c *Client) summaryURL(title string) (*url.URL, error) {
	endpoint, err := url.Parse(c.summaryEndpoint)
	if err != nil {
		return nil, wrapError(ErrCodeURL, err, "invalid summary endpoint %q", c.summaryEndpoint)
	}

	segment := NormalizeTitle(title)
	escapedBase := strings.TrimSuffix(endpoint.EscapedPath(), "/")
	endpoint.Path = strings.TrimSuffix(endpoint.Path, "/") + "/" + segment
	// a "/" inside a title must stay in the segment
	endpoint.RawPath = escapedBase + "/" + url.PathEscape(segment)

	return endpoint, nil
}

// selectSummaryText picks the description or the extract from a summary body.
// A missing, null or blank description falls back to the extract.
func selectSummaryText(body []byte, longForm bool) (string, error) {
	field := fieldExtract
	if !longForm {
		desc := gjson.GetBytes(body, fieldDescription)
		switch {
		case !desc.Exists(), desc.Type == gjson.Null:
		case desc.Type == gjson.String && strings.TrimSpace(desc.Str) == "":
		default:
			field = fieldDescription
		}
	}

	value := gjson.GetBytes(body, field)
	if value.Type != gjson.String || strings.TrimSpace(value.Str) == "" {
		return "", NewError(ErrCodeParse,
			fmt.Sprintf("summary response has no text field %q", field))
	}

	return value.Str, nil
}
