package pdfview

import "context"

// SearchResult is one text match on one page. Results are produced by the
// document backend; the navigator only aggregates and indexes them.
type SearchResult struct {
	PageIndex int
	// Rect is the bounding box of the match in document coordinates.
	Rect Rect
	// Text is the matched text.
	Text string
	// Quads are finer per-fragment boxes, when the backend provides them.
	Quads []Rect
}

// PageSearchFunc searches a single page and returns its matches in page
// order. It is supplied by the document backend.
type PageSearchFunc func(pageIndex int) []SearchResult

// SearchNavigator aggregates per-page search results into one ordered,
// indexable list with wraparound next/prev navigation.
type SearchNavigator struct {
	results []SearchResult
	current int
	query   string
}

// NewSearchNavigator creates an empty navigator.
func NewSearchNavigator() *SearchNavigator {
	return &SearchNavigator{current: -1}
}

// Search runs fn over every page in document order and collects the
// results, preserving page order and in-page order. The current result is
// set to the first match on or after startPage, wrapping to the first
// match overall if no page from startPage on has one. An empty query
// behaves as Clear. The full result list is returned.
func (n *SearchNavigator) Search(query string, pages int, fn PageSearchFunc, startPage int) []SearchResult {
	results, _ := n.search(context.Background(), query, pages, fn, startPage)
	return results
}

// SearchContext is Search with cancellation for large documents: it
// checks ctx between pages and returns the partial results collected so
// far together with ctx.Err() when cancelled.
func (n *SearchNavigator) SearchContext(ctx context.Context, query string, pages int, fn PageSearchFunc, startPage int) ([]SearchResult, error) {
	return n.search(ctx, query, pages, fn, startPage)
}

func (n *SearchNavigator) search(ctx context.Context, query string, pages int, fn PageSearchFunc, startPage int) ([]SearchResult, error) {
	if query == "" {
		n.Clear()
		return nil, nil
	}

	n.results = nil
	n.query = query
	n.current = -1

	var err error
	for page := 0; page < pages; page++ {
		if err = ctx.Err(); err != nil {
			break
		}
		n.results = append(n.results, fn(page)...)
	}

	if len(n.results) > 0 {
		n.current = 0
		for i, r := range n.results {
			if r.PageIndex >= startPage {
				n.current = i
				break
			}
		}
	}

	logger().Debug("search complete",
		"query", query, "results", len(n.results), "current", n.current)
	return n.results, err
}

// Next advances to the next result, wrapping from the last to the first.
// ok is false when there are no results.
func (n *SearchNavigator) Next() (r SearchResult, ok bool) {
	if len(n.results) == 0 {
		return SearchResult{}, false
	}
	n.current = (n.current + 1) % len(n.results)
	return n.results[n.current], true
}

// Prev steps back to the previous result, wrapping from the first to the
// last. ok is false when there are no results.
func (n *SearchNavigator) Prev() (r SearchResult, ok bool) {
	if len(n.results) == 0 {
		return SearchResult{}, false
	}
	n.current = ((n.current-1)%len(n.results) + len(n.results)) % len(n.results)
	return n.results[n.current], true
}

// Goto jumps to the result at the given index. ok is false when the index
// is out of range; the current result is then left unchanged.
func (n *SearchNavigator) Goto(index int) (r SearchResult, ok bool) {
	if index < 0 || index >= len(n.results) {
		return SearchResult{}, false
	}
	n.current = index
	return n.results[n.current], true
}

// Clear resets the navigator to the empty state.
func (n *SearchNavigator) Clear() {
	n.results = nil
	n.current = -1
	n.query = ""
}

// Results returns all results in document order.
func (n *SearchNavigator) Results() []SearchResult {
	return n.results
}

// Current returns the current result. ok is false when there is none.
func (n *SearchNavigator) Current() (r SearchResult, ok bool) {
	if n.current < 0 || n.current >= len(n.results) {
		return SearchResult{}, false
	}
	return n.results[n.current], true
}

// CurrentIndex returns the index of the current result, or -1.
func (n *SearchNavigator) CurrentIndex() int {
	return n.current
}

// Count returns the number of results.
func (n *SearchNavigator) Count() int {
	return len(n.results)
}

// Query returns the active query string.
func (n *SearchNavigator) Query() string {
	return n.query
}
