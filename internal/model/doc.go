// Package model defines the core data structures used throughout wordcrawl.
//
// This package contains the following main types:
//   - PageResult: The outcome of a single fetch attempt (words and links)
//   - Corpus: The accumulated set of unique extracted words
//   - CrawlResult: The final summary of a completed crawl
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (crawler, report, database) need to use these
// types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output and
// database storage.
package model
