// Package main provides the entry point for the wordcrawl CLI.
//
// Wordcrawl crawls a website breadth-first and extracts a deduplicated,
// sorted wordlist from the visible text of every page it visits.
//
// Usage:
//
//	wordcrawl crawl <url>
//	wordcrawl crawl -d 5 -p 2000 -o corpus.txt <url>
//
// See --help for all available options.
package main

// main is the entry point for wordcrawl.
func main() {
	Execute()
}
