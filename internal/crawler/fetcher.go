package crawler

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/wordcrawl/wordcrawl/internal/model"
	"golang.org/x/sync/semaphore"
)

// Fetcher retrieves single pages under a crawl-wide concurrency cap.
//
// Design decision: We require an external *http.Client because:
//  1. Transport configuration (pool size, redirects) belongs to the caller
//  2. Tests can inject httptest server clients
//  3. The client's connection pool is safe for concurrent reuse by design,
//     so fetches share it without any locking here
type Fetcher struct {
	// client is the HTTP client used for all requests. Redirects are
	// followed by the client's default policy.
	client *http.Client

	// limiter caps the number of in-flight fetches across the whole
	// crawl. Acquire blocks until a slot frees.
	limiter *semaphore.Weighted

	// timeout bounds each individual fetch. There is no crawl-wide
	// deadline; only single requests time out.
	timeout time.Duration

	// userAgent identifies the crawler in request headers.
	userAgent string

	// headers are extra request headers, e.g. from per-host config.
	headers map[string]string

	// maxBodySize limits how many response bytes are read.
	maxBodySize int64
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithFetchTimeout sets the per-request timeout.
func WithFetchTimeout(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) FetcherOption {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithRequestHeaders sets extra headers sent with every request.
func WithRequestHeaders(headers map[string]string) FetcherOption {
	return func(f *Fetcher) {
		f.headers = headers
	}
}

// WithMaxBodySize sets the maximum response body size to read.
// Zero or negative values leave the default in place.
func WithMaxBodySize(size int64) FetcherOption {
	return func(f *Fetcher) {
		if size > 0 {
			f.maxBodySize = size
		}
	}
}

// NewFetcher creates a Fetcher that allows at most workers concurrent
// fetches.
func NewFetcher(client *http.Client, workers int, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		client:      client,
		limiter:     semaphore.NewWeighted(int64(workers)),
		timeout:     20 * time.Second,
		userAgent:   "wordcrawl/1.0 (+https://github.com/wordcrawl/wordcrawl)",
		maxBodySize: 5 * 1024 * 1024, // 5MB
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Fetch retrieves one address and returns its PageResult. It never
// returns an error: transport failures, non-2xx statuses, non-HTML
// bodies, and unparsable markup all degrade to an empty result so that
// one broken page cannot abort the crawl. A failed fetch is permanently
// abandoned; there are no retries.
func (f *Fetcher) Fetch(ctx context.Context, addr string) *model.PageResult {
	if err := f.limiter.Acquire(ctx, 1); err != nil {
		return model.EmptyPageResult(addr, 0)
	}
	defer f.limiter.Release(1)

	reqCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, addr, nil)
	if err != nil {
		return model.EmptyPageResult(addr, 0)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	for k, v := range f.headers {
		req.Header.Set(k, v)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return model.EmptyPageResult(addr, 0)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return model.EmptyPageResult(addr, resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	result := &model.PageResult{
		URL:         addr,
		StatusCode:  resp.StatusCode,
		ContentType: contentType,
		Words:       make(map[string]struct{}),
		Links:       make([]string, 0),
		Fetched:     true,
	}

	// Non-HTML content counts as crawled but contributes nothing.
	if !strings.Contains(contentType, "text/html") {
		// Drain so the connection can be reused by the pool.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, f.maxBodySize))
		return result
	}

	parser, err := NewParser(addr)
	if err != nil {
		return result
	}

	parsed, err := parser.Parse(io.LimitReader(resp.Body, f.maxBodySize))
	if err != nil {
		return result
	}

	result.Words = parsed.Words
	result.Links = parsed.Links
	return result
}
