// Package report provides output formatting for crawl results.
//
// The crawler's primary artifact is the wordlist itself, written one
// token per line by WordlistWriter so it can feed tools that consume
// dictionaries directly. The remaining writers summarize a run:
// SimpleWriter for terminal display, MarkdownWriter for documentation
// and sharing, and JSONWriter for programmatic consumers.
//
// All writers implement the Writer interface, and MultiWriter fans a
// single result out to several destinations, e.g. terminal and file.
package report
