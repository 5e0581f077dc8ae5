package model

// PageResult is the outcome of a single fetch attempt.
// Exactly one PageResult is produced for every address handed to the
// fetcher, whether the fetch succeeded or not. Failures carry empty word
// and link sets rather than an error value, so the crawl loop only ever
// branches on data, never on exceptions.
//
// Design decision: We use an explicit Fetched marker instead of returning
// an error from the fetcher because a broken page must never abort the
// crawl. Callers that care about the distinction (stats, logging) check
// the marker; everyone else just consumes the possibly-empty sets.
type PageResult struct {
	// URL is the normalized address that was fetched.
	URL string `json:"url"`

	// StatusCode is the HTTP response status code.
	// Zero when the request never produced a response (transport failure).
	StatusCode int `json:"status_code"`

	// ContentType is the MIME type of the response.
	// Extracted from the Content-Type header for convenience.
	ContentType string `json:"content_type,omitempty"`

	// Words is the set of lowercase alphabetic tokens extracted from the
	// page's visible text. Empty for failures and non-HTML content.
	Words map[string]struct{} `json:"-"`

	// Links contains the page's outbound anchor targets, resolved to
	// absolute normalized addresses. Empty for failures and non-HTML content.
	Links []string `json:"links,omitempty"`

	// Fetched reports whether the HTTP exchange completed with a 2xx
	// status. Non-HTML 2xx responses are still Fetched; they simply
	// contribute no words or links.
	Fetched bool `json:"fetched"`
}

// EmptyPageResult returns a PageResult for a failed fetch attempt.
// The word and link sets are non-nil so callers can range over them
// without nil checks.
func EmptyPageResult(url string, statusCode int) *PageResult {
	return &PageResult{
		URL:        url,
		StatusCode: statusCode,
		Words:      make(map[string]struct{}),
		Links:      make([]string, 0),
		Fetched:    false,
	}
}

// WordCount returns the number of unique words extracted from the page.
func (p *PageResult) WordCount() int {
	return len(p.Words)
}
