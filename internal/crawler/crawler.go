package crawler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/wordcrawl/wordcrawl/internal/model"
	"golang.org/x/sync/errgroup"
)

// Crawler drives the breadth-first crawl loop: it drains the frontier in
// batches, dispatches each batch concurrently through the fetcher, and
// merges the results into the word corpus between batches.
//
// Design decision: Batches are sized at twice the worker count. The
// semaphore inside the fetcher caps real parallelism at the worker count;
// the over-sized batch keeps the pool saturated even when some dequeued
// entries are discarded for depth. Because the loop waits for the whole
// batch before merging, the frontier and corpus only ever see sequential
// mutation and need no locking.
type Crawler struct {
	// fetcher performs the actual HTTP retrieval under the shared
	// concurrency cap. Built by New once the worker count is known.
	fetcher *Fetcher

	// fetcherOpts are applied when the fetcher is built.
	fetcherOpts []FetcherOption

	// workers is the fetch concurrency cap. Batch size is 2x this.
	workers int

	// maxPages is the hard cap on total pages ever added to the
	// frontier's visited set, and therefore on pages crawled.
	maxPages int

	// maxDepth is the deepest entry the frontier will hand out.
	maxDepth int

	// flatDepth, when true, enqueues every discovered link at depth 0
	// instead of parent depth + 1. This reproduces the behavior of
	// early wordlist crawlers where the depth limit only ever
	// constrained the seed itself. Off by default.
	flatDepth bool

	// sameHostOnly restricts the crawl to the seed's host. Off by
	// default: cross-host links are crawled identically to same-host
	// links.
	sameHostOnly bool

	// ignorePatterns and followPatterns filter link paths before
	// enqueue, using glob syntax (e.g. "/admin/*", "*.pdf").
	ignorePatterns []string
	followPatterns []string

	// logger receives per-batch progress at debug level.
	logger *slog.Logger

	// onPage, when set, is invoked after each batch merge for every
	// result in the batch. Used by the CLI for progress display.
	onPage func(res *model.PageResult, pagesCrawled, wordCount int)
}

// Option configures a Crawler.
type Option func(*Crawler)

// WithWorkers sets the fetch concurrency cap.
func WithWorkers(n int) Option {
	return func(c *Crawler) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithMaxPages sets the page budget.
func WithMaxPages(n int) Option {
	return func(c *Crawler) {
		if n > 0 {
			c.maxPages = n
		}
	}
}

// WithMaxDepth sets the maximum crawl depth.
// 0 means only the starting page, 1 means one level of links, etc.
func WithMaxDepth(depth int) Option {
	return func(c *Crawler) {
		c.maxDepth = depth
	}
}

// WithFlatDepth enqueues discovered links at depth 0 instead of
// parent depth + 1.
func WithFlatDepth(flat bool) Option {
	return func(c *Crawler) {
		c.flatDepth = flat
	}
}

// WithSameHostOnly restricts the crawl to the seed's host.
func WithSameHostOnly(same bool) Option {
	return func(c *Crawler) {
		c.sameHostOnly = same
	}
}

// WithIgnorePatterns sets URL path patterns to skip during crawling.
func WithIgnorePatterns(patterns []string) Option {
	return func(c *Crawler) {
		c.ignorePatterns = patterns
	}
}

// WithFollowPatterns sets URL path patterns to follow during crawling.
// If set, only links matching at least one pattern are enqueued.
func WithFollowPatterns(patterns []string) Option {
	return func(c *Crawler) {
		c.followPatterns = patterns
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Crawler) {
		c.logger = logger
	}
}

// WithPageCallback sets a callback invoked after each merged result.
// The callback runs on the crawl loop's goroutine, between batches.
func WithPageCallback(fn func(res *model.PageResult, pagesCrawled, wordCount int)) Option {
	return func(c *Crawler) {
		c.onPage = fn
	}
}

// WithFetcherOptions forwards options to the underlying fetcher.
func WithFetcherOptions(opts ...FetcherOption) Option {
	return func(c *Crawler) {
		c.fetcherOpts = append(c.fetcherOpts, opts...)
	}
}

// New creates a Crawler using the given HTTP client.
//
// Design decision: We require an external client because transport
// configuration (keep-alive pool, redirect policy, TLS) belongs to the
// caller, and tests can inject httptest clients.
func New(client *http.Client, opts ...Option) *Crawler {
	c := &Crawler{
		workers:  5,
		maxPages: 10000,
		maxDepth: 3,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	// The fetcher's semaphore is sized from the final worker count, so
	// it is built after all options have been applied.
	c.fetcher = NewFetcher(client, c.workers, c.fetcherOpts...)
	return c
}

// Run crawls breadth-first from the seed address until the frontier is
// empty or the page budget is exhausted. The returned result is always
// populated with whatever was collected; the error is non-nil only when
// the seed itself is unusable or the context was cancelled mid-crawl.
func (c *Crawler) Run(ctx context.Context, seed string) (*model.CrawlResult, error) {
	start, err := url.Parse(seed)
	if err != nil {
		return nil, fmt.Errorf("invalid seed address: %w", err)
	}
	if start.Scheme != "http" && start.Scheme != "https" {
		start.Scheme = "http"
	}
	normalizedSeed := NormalizeURL(start.String())

	frontier := NewFrontier(c.maxPages, c.maxDepth)
	frontier.Enqueue(normalizedSeed, 0)

	corpus := model.NewCorpus()
	result := &model.CrawlResult{
		Seed:      normalizedSeed,
		StartedAt: time.Now(),
	}

	batchSize := c.workers * 2

	for result.PagesCrawled < c.maxPages {
		select {
		case <-ctx.Done():
			result.Interrupted = true
			result.Words = corpus.Sorted()
			result.Elapsed = time.Since(result.StartedAt)
			return result, ctx.Err()
		default:
		}

		batch := frontier.DequeueBatch(batchSize)
		if len(batch) == 0 {
			break
		}

		results := make([]*model.PageResult, len(batch))

		g, gctx := errgroup.WithContext(ctx)
		for i, entry := range batch {
			g.Go(func() error {
				results[i] = c.fetcher.Fetch(gctx, entry.URL)
				return nil
			})
		}
		// Fetch never reports errors; Wait only synchronizes the batch.
		_ = g.Wait() //nolint:errcheck

		// All results are in: merge sequentially. Nothing below blocks,
		// so the frontier and corpus see a single atomic transition per
		// batch from any observer's point of view.
		for i, res := range results {
			if res.Fetched {
				result.PagesCrawled++
			} else {
				result.PagesFailed++
			}
			corpus.AddSet(res.Words)

			nextDepth := batch[i].Depth + 1
			if c.flatDepth {
				nextDepth = 0
			}

			for _, link := range res.Links {
				if c.sameHostOnly && !SameHost(start.Host, link) {
					continue
				}
				if !c.shouldCrawl(link) {
					continue
				}
				frontier.Enqueue(link, nextDepth)
			}

			if c.onPage != nil {
				c.onPage(res, result.PagesCrawled, corpus.Len())
			}
		}

		c.logger.Debug("batch merged",
			"batch_size", len(batch),
			"pages_crawled", result.PagesCrawled,
			"words", corpus.Len(),
			"pending", frontier.Pending(),
		)
	}

	result.Words = corpus.Sorted()
	result.Elapsed = time.Since(result.StartedAt)

	c.logger.Info("crawl complete",
		"seed", normalizedSeed,
		"pages_crawled", result.PagesCrawled,
		"pages_failed", result.PagesFailed,
		"words", result.WordCount(),
		"elapsed", result.Elapsed,
	)

	return result, nil
}
