// Package progress renders a terminal progress bar for crawl runs.
//
// The bar tracks pages against the page budget and shows the running
// word count in its description, so long crawls give immediate feedback
// on whether they are still discovering new vocabulary. Output goes to
// stderr so that piping the wordlist to stdout stays clean.
package progress
