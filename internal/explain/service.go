// Package explain resolves a free-text query into a presentable article summary.
package explain

import (
	"context"
	"strings"

	"github.com/Laisky/errors/v2"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	"github.com/google/uuid"

	"github.com/Laisky/explain/library/log"
	"github.com/Laisky/explain/library/wikipedia"
)

// TitleResolver finds the best-matching article title for a query.
type TitleResolver interface {
	Search(ctx context.Context, query string) (string, error)
}

// SummaryFetcher fetches the summary of an article by title.
type SummaryFetcher interface {
	Summary(ctx context.Context, title string, longForm bool) (*wikipedia.ArticleSummary, error)
}

// Service runs the resolve-then-fetch pipeline.
type Service struct {
	resolver TitleResolver
	fetcher  SummaryFetcher
	logger   logSDK.Logger
}

// NewService constructs a Service. A nil logger falls back to the shared one.
func NewService(resolver TitleResolver, fetcher SummaryFetcher, logger logSDK.Logger) (*Service, error) {
	if resolver == nil {
		return nil, errors.New("title resolver is required")
	}
	if fetcher == nil {
		return nil, errors.New("summary fetcher is required")
	}
	if logger == nil {
		logger = log.Logger.Named("explain")
	}

	return &Service{
		resolver: resolver,
		fetcher:  fetcher,
		logger:   logger,
	}, nil
}

// NewWikipediaService wires both pipeline steps to one wikipedia client.
func NewWikipediaService(client *wikipedia.Client, logger logSDK.Logger) (*Service, error) {
	if client == nil {
		return nil, errors.New("wikipedia client is required")
	}
	return NewService(client, client, logger)
}

// BuildQuery joins the query words with underscores.
// Words are trimmed and blank words are dropped.
func BuildQuery(words []string) string {
	kept := make([]string, 0, len(words))
	for _, word := range words {
		if word = strings.TrimSpace(word); word != "" {
			kept = append(kept, word)
		}
	}
	return strings.Join(kept, "_")
}

// Explain resolves words to an article and fetches its summary.
// The first failing step aborts the pipeline, its error is returned unchanged in meaning.
func (s *Service) Explain(ctx context.Context, words []string, longForm bool) (*wikipedia.ArticleSummary, error) {
	query := BuildQuery(words)
	if query == "" {
		return nil, errors.WithStack(wikipedia.ErrEmptyQuery)
	}

	logger := s.logger.With(
		zap.String("run_id", uuid.NewString()),
		zap.String("query", query),
		zap.Bool("long_form", longForm),
	)
	logger.Debug("explain started")

	title, err := s.resolver.Search(ctx, query)
	if err != nil {
		logger.Debug("resolve title failed", zap.Error(err))
		return nil, errors.WithStack(err)
	}
	logger.Debug("title resolved", zap.String("title", title))

	summary, err := s.fetcher.Summary(ctx, title, longForm)
	if err != nil {
		logger.Debug("fetch summary failed", zap.Error(err), zap.String("title", title))
		return nil, errors.WithStack(err)
	}

	logger.Debug("explain completed", zap.String("url", summary.URL))
	return summary, nil
}
