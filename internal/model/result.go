package model

import "time"

// CrawlResult summarizes a completed crawl.
// It is the unit handed to report writers and the database layer.
type CrawlResult struct {
	// Seed is the normalized address the crawl started from.
	Seed string `json:"seed"`

	// PagesCrawled is the number of fetch attempts that completed with
	// a 2xx response, HTML or not. It never exceeds the page budget.
	PagesCrawled int `json:"pages_crawled"`

	// PagesFailed is the number of attempts that did not produce a
	// 2xx response (transport errors included). A run whose seed is
	// unreachable completes with zero pages crawled and one failure.
	PagesFailed int `json:"pages_failed"`

	// Words is the final corpus, sorted lexicographically with no
	// duplicates.
	Words []string `json:"words"`

	// StartedAt is when the crawl began.
	StartedAt time.Time `json:"started_at"`

	// Elapsed is the total crawl duration.
	Elapsed time.Duration `json:"elapsed"`

	// Interrupted is true when the crawl was cancelled before the
	// frontier drained or the budget was reached. The result still
	// contains everything collected up to that point.
	Interrupted bool `json:"interrupted,omitempty"`
}

// WordCount returns the number of unique words found.
func (r *CrawlResult) WordCount() int {
	return len(r.Words)
}

// PagesPerSecond returns the average crawl rate.
// Returns zero when the elapsed time is not meaningful yet.
func (r *CrawlResult) PagesPerSecond() float64 {
	secs := r.Elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(r.PagesCrawled) / secs
}
