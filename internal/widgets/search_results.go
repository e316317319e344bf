package widgets

import (
	"io"
	"strings"
	"sync"

	"github.com/almanaclabs/yoastseo/internal/i18n"
	"github.com/almanaclabs/yoastseo/pkg/interfaces"
)

const (
	noResultsMessageKey    = "search.no_results"
	noResultsFallback      = "No results found."
	oneResultMessageKey    = "search.one_result_found"
	oneResultFallback      = "1 result found."
	manyResultsMessageKey  = "search.results_found"
	manyResultsFallback    = "%d results found."
	searchResultsWidgetKey = "search-results"
)

// SearchResults renders an ordered list of search hits, or a localized
// no-results message when the list is empty and a query was provided. An
// empty result set is a valid terminal state, not an error.
//
// Each render pass announces the result count through the context announcer,
// but only when the count changed since the last announcement: re-renders
// with a steady count stay silent even when the query text changed.
type SearchResults struct {
	mu        sync.Mutex
	results   []SearchResult
	query     string
	announced bool
	lastCount int
}

// NewSearchResults builds the widget with an initial result set.
func NewSearchResults(results []SearchResult, query string) *SearchResults {
	return &SearchResults{
		results: append([]SearchResult(nil), results...),
		query:   strings.TrimSpace(query),
	}
}

// SetResults replaces the result set and query, as a new search completing
// would.
func (s *SearchResults) SetResults(results []SearchResult, query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append([]SearchResult(nil), results...)
	s.query = strings.TrimSpace(query)
}

// Descriptor returns the catalog entry for this widget.
func (s *SearchResults) Descriptor() Descriptor {
	return Descriptor{
		ID:          searchResultsWidgetKey,
		DisplayName: "Search results",
		Render:      s.Render,
	}
}

// Render satisfies RenderFunc.
func (s *SearchResults) Render(w io.Writer, rc RenderContext) error {
	s.mu.Lock()
	results := append([]SearchResult(nil), s.results...)
	query := s.query
	count := len(results)
	announce := !s.announced || s.lastCount != count
	if announce {
		s.announced = true
		s.lastCount = count
	}
	s.mu.Unlock()

	message := s.countMessage(rc, count, query)
	if announce && message != "" && rc.Announcer != nil {
		rc.Announcer.Announce(message, interfaces.PolitenessPolite)
	}

	rows := make([]map[string]any, 0, count)
	for _, result := range results {
		rows = append(rows, map[string]any{
			"permalink": result.Permalink,
			"title":     result.Title,
		})
	}

	return rc.Engine.Render(w, "widgets/search_results", map[string]any{
		"query":      query,
		"results":    rows,
		"empty":      count == 0 && query != "",
		"no_results": i18n.Message(rc.Translator, rc.Locale, noResultsMessageKey, noResultsFallback),
		"dir":        string(rc.Direction),
	})
}

// countMessage phrases the announcement for a result count. An empty list
// with no query announces nothing: there was no search to report on.
func (s *SearchResults) countMessage(rc RenderContext, count int, query string) string {
	switch {
	case count == 0 && query == "":
		return ""
	case count == 0:
		return i18n.Message(rc.Translator, rc.Locale, noResultsMessageKey, noResultsFallback)
	case count == 1:
		return i18n.Message(rc.Translator, rc.Locale, oneResultMessageKey, oneResultFallback)
	default:
		return i18n.Message(rc.Translator, rc.Locale, manyResultsMessageKey, manyResultsFallback, count)
	}
}
