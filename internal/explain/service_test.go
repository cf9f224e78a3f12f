package explain

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Laisky/errors/v2"
	"github.com/stretchr/testify/require"

	"github.com/Laisky/explain/library/wikipedia"
)

type stubResolver struct {
	title   string
	err     error
	queries []string
}

func (s *stubResolver) Search(_ context.Context, query string) (string, error) {
	s.queries = append(s.queries, query)
	return s.title, s.err
}

type stubFetcher struct {
	summary *wikipedia.ArticleSummary
	err     error
	calls   int
	long    bool
}

func (s *stubFetcher) Summary(_ context.Context, title string, longForm bool) (*wikipedia.ArticleSummary, error) {
	s.calls++
	s.long = longForm
	if s.err != nil {
		return nil, s.err
	}
	return s.summary, nil
}

func TestBuildQuery(t *testing.T) {
	require.Equal(t, "turing", BuildQuery([]string{"turing"}))
	require.Equal(t, "turing_machine", BuildQuery([]string{"turing", "machine"}))
	require.Equal(t, "ada_lovelace", BuildQuery([]string{" ada ", "", "lovelace"}))
	require.Equal(t, "", BuildQuery(nil))
	require.Equal(t, "", BuildQuery([]string{" ", ""}))
}

func TestNewServiceValidates(t *testing.T) {
	_, err := NewService(nil, &stubFetcher{}, nil)
	require.Error(t, err)
	_, err = NewService(&stubResolver{}, nil, nil)
	require.Error(t, err)
	_, err = NewWikipediaService(nil, nil)
	require.Error(t, err)
}

func TestExplainJoinsWordsOnceAndPassesLongForm(t *testing.T) {
	resolver := &stubResolver{title: "Turing machine"}
	fetcher := &stubFetcher{summary: &wikipedia.ArticleSummary{Title: "Turing machine", Summary: "long", URL: "u"}}
	svc, err := NewService(resolver, fetcher, nil)
	require.NoError(t, err)

	summary, err := svc.Explain(context.Background(), []string{"turing", "machine"}, true)
	require.NoError(t, err)
	require.Equal(t, fetcher.summary, summary)
	require.Equal(t, []string{"turing_machine"}, resolver.queries)
	require.True(t, fetcher.long)
}

func TestExplainEmptyQuery(t *testing.T) {
	resolver := &stubResolver{}
	svc, err := NewService(resolver, &stubFetcher{}, nil)
	require.NoError(t, err)

	_, err = svc.Explain(context.Background(), nil, false)
	require.ErrorIs(t, err, wikipedia.ErrEmptyQuery)
	require.Empty(t, resolver.queries)
}

func TestExplainStopsAfterResolverFailure(t *testing.T) {
	resolver := &stubResolver{err: wikipedia.NewError(wikipedia.ErrCodeArticleNotFound, "no article found")}
	fetcher := &stubFetcher{}
	svc, err := NewService(resolver, fetcher, nil)
	require.NoError(t, err)

	summary, err := svc.Explain(context.Background(), []string{"zzz"}, false)
	require.Nil(t, summary)
	require.True(t, wikipedia.IsCode(err, wikipedia.ErrCodeArticleNotFound))
	require.Equal(t, "no article found", err.Error())
	require.Zero(t, fetcher.calls)
}

func TestExplainPropagatesFetcherFailure(t *testing.T) {
	fetcher := &stubFetcher{err: errors.WithStack(wikipedia.NewError(wikipedia.ErrCodeParse, "bad"))}
	svc, err := NewService(&stubResolver{title: "T"}, fetcher, nil)
	require.NoError(t, err)

	_, err = svc.Explain(context.Background(), []string{"t"}, false)
	require.True(t, wikipedia.IsCode(err, wikipedia.ErrCodeParse))
}

// mockEncyclopedia serves both endpoints and counts summary requests.
func mockEncyclopedia(t *testing.T, searchStatus int, searchBody, summaryBody string) (*httptest.Server, *int) {
	t.Helper()
	summaryCalls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/w/api.php", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(searchStatus)
		_, _ = w.Write([]byte(searchBody))
	})
	mux.HandleFunc("/api/rest_v1/page/summary/", func(w http.ResponseWriter, r *http.Request) {
		summaryCalls++
		require.Equal(t, "/api/rest_v1/page/summary/Turing_machine", r.URL.EscapedPath())
		_, _ = w.Write([]byte(summaryBody))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, &summaryCalls
}

func newMockService(t *testing.T, server *httptest.Server) *Service {
	t.Helper()
	client, err := wikipedia.NewClient(
		wikipedia.WithHTTPClient(server.Client()),
		wikipedia.WithSearchEndpoint(server.URL+"/w/api.php"),
		wikipedia.WithSummaryEndpoint(server.URL+"/api/rest_v1/page/summary"),
	)
	require.NoError(t, err)
	svc, err := NewWikipediaService(client, nil)
	require.NoError(t, err)
	return svc
}

func TestExplainRoundTrip(t *testing.T) {
	server, summaryCalls := mockEncyclopedia(t, http.StatusOK,
		`{"query":{"search":[{"title":"Turing machine"}]}}`,
		`{"description":"abstract machine","content_urls":{"desktop":{"page":"https://en.wikipedia.org/wiki/Turing_machine"}}}`,
	)
	svc := newMockService(t, server)

	summary, err := svc.Explain(context.Background(), []string{"turing", "machine"}, false)
	require.NoError(t, err)
	require.Equal(t, &wikipedia.ArticleSummary{
		Title:   "Turing machine",
		Summary: "abstract machine",
		URL:     "https://en.wikipedia.org/wiki/Turing_machine",
	}, summary)
	require.Equal(t, 1, *summaryCalls)

	presenter := NewPresenter(&bytes.Buffer{}, ColorNever)
	first := presenter.Render(summary)
	require.Equal(t, "Turing machine: abstract machine\n\nhttps://en.wikipedia.org/wiki/Turing_machine", first)

	again, err := svc.Explain(context.Background(), []string{"turing", "machine"}, false)
	require.NoError(t, err)
	require.Equal(t, first, presenter.Render(again))
}

func TestExplainSearchUnavailableSkipsSummary(t *testing.T) {
	server, summaryCalls := mockEncyclopedia(t, http.StatusServiceUnavailable, ``, `{}`)
	svc := newMockService(t, server)

	summary, err := svc.Explain(context.Background(), []string{"turing", "machine"}, false)
	require.Nil(t, summary)
	require.True(t, wikipedia.IsCode(err, wikipedia.ErrCodeUnsuccessfulResponse))
	require.Zero(t, *summaryCalls)
}

func TestExplainEmptySearchResults(t *testing.T) {
	server, summaryCalls := mockEncyclopedia(t, http.StatusOK, `{"query":{"search":[]}}`, `{}`)
	svc := newMockService(t, server)

	_, err := svc.Explain(context.Background(), []string{"qwertyuiop"}, false)
	require.True(t, wikipedia.IsCode(err, wikipedia.ErrCodeArticleNotFound))
	require.Zero(t, *summaryCalls)
}
