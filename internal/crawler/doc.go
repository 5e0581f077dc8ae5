// Package crawler implements the bounded-concurrency breadth-first crawl
// engine at the heart of wordcrawl.
//
// # Architecture
//
// Four components compose into a producer/consumer loop:
//
//   - Frontier: the FIFO work queue of (address, depth) entries plus the
//     set of every address ever enqueued; owns deduplication and enforces
//     the page budget at enqueue time.
//   - Fetcher: retrieves one address over HTTP under a crawl-wide
//     concurrency cap and classifies the response.
//   - Parser: strips non-content markup from HTML and extracts the word
//     set and outbound links.
//   - Crawler: drains the frontier in batches, dispatches each batch
//     concurrently through the fetcher, and merges results sequentially.
//
// Design decision: We implement our own frontier and batch loop rather
// than using a crawling framework because:
//  1. Deduplication, budget, and depth semantics need to be exact
//  2. Merges must be batch-atomic so shared state needs no locking
//  3. The engine is small enough that a framework would dominate it
//
// # Concurrency model
//
// A single control flow dispatches fixed-size batches (2x the worker
// count). Within a batch, fetches run in parallel gated by a shared
// weighted semaphore; the loop does not merge anything until the whole
// batch has completed. Merges therefore happen strictly sequentially, and
// the visited set and word corpus are mutated from one goroutine only.
//
// # Failure policy
//
// Per-page errors never escape the fetcher: transport failures, non-2xx
// statuses, non-HTML bodies, and malformed markup all degrade to an empty
// PageResult. One unreachable page can never abort the crawl.
//
// # Usage
//
//	c := crawler.New(http.DefaultClient, crawler.WithMaxPages(1000))
//	result, err := c.Run(ctx, "https://example.com")
package crawler
