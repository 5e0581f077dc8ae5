package crawler

import (
	"io"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// wordPattern matches maximal runs of ASCII letters in lowercased text.
// Digits, hyphens, and apostrophes act as separators, so "foo-bar"
// tokenizes into "foo" and "bar".
var wordPattern = regexp.MustCompile(`[a-z]+`)

// skippedElements are non-content elements whose entire subtree is
// excluded from text extraction. Script and style bodies are code, and
// nav/footer/header blocks are boilerplate that would pollute the corpus
// with the same words on every page.
var skippedElements = map[string]struct{}{
	"script": {},
	"style":  {},
	"nav":    {},
	"footer": {},
	"header": {},
}

// Parser extracts words and outbound links from HTML content.
//
// Design decision: We use golang.org/x/net/html rather than regex
// because:
//  1. It correctly handles malformed HTML common on the web
//  2. Provides a proper DOM-like structure for subtree skipping
//  3. More maintainable than complex regex patterns
type Parser struct {
	// baseURL is the URL of the page being parsed, used for resolving
	// relative links.
	baseURL *url.URL
}

// ParseResult contains everything extracted from one HTML page.
type ParseResult struct {
	// Words is the set of lowercase alphabetic tokens from the page's
	// visible text. Duplicates within a page collapse.
	Words map[string]struct{}

	// Links contains every anchor target, resolved against the page
	// address to an absolute normalized form, deduplicated.
	Links []string
}

// NewParser creates a parser for a page at the given base address.
func NewParser(baseURL string) (*Parser, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	return &Parser{baseURL: u}, nil
}

// Parse extracts the word set and outbound links from HTML content.
// Malformed markup does not fail: html.Parse repairs what it can, and
// whatever text survives is tokenized. The zero-content degenerate case
// yields empty sets, never an error.
func (p *Parser) Parse(content io.Reader) (*ParseResult, error) {
	doc, err := html.Parse(content)
	if err != nil {
		// html.Parse only errors on reader failure; degrade to empty.
		return &ParseResult{
			Words: make(map[string]struct{}),
			Links: make([]string, 0),
		}, nil
	}

	result := &ParseResult{
		Words: make(map[string]struct{}),
		Links: make([]string, 0),
	}

	var textContent strings.Builder
	seenLinks := make(map[string]struct{})

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.ElementNode:
			if _, skip := skippedElements[n.Data]; skip {
				return
			}
			if n.Data == "a" {
				if href := getAttr(n, "href"); href != "" {
					if resolved := p.resolveURL(href); resolved != "" {
						normalized := NormalizeURL(resolved)
						if _, dup := seenLinks[normalized]; !dup {
							seenLinks[normalized] = struct{}{}
							result.Links = append(result.Links, normalized)
						}
					}
				}
			}
		case html.TextNode:
			textContent.WriteString(n.Data)
			textContent.WriteString(" ")
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)

	for _, w := range wordPattern.FindAllString(strings.ToLower(textContent.String()), -1) {
		result.Words[w] = struct{}{}
	}

	return result, nil
}

// ExtractWords tokenizes arbitrary text into the lowercase word set.
// Exposed separately so the tokenization rule is testable on its own.
func ExtractWords(text string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		words[w] = struct{}{}
	}
	return words
}

// resolveURL resolves a relative href against the base URL.
// Non-navigable targets (javascript:, mailto:, tel:, data:, bare "#")
// resolve to the empty string and are dropped by the caller.
func (p *Parser) resolveURL(href string) string {
	href = strings.TrimSpace(href)
	if href == "" ||
		strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:") ||
		href == "#" {
		return ""
	}

	u, err := url.Parse(href)
	if err != nil {
		return ""
	}

	resolved := p.baseURL.ResolveReference(u)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	return resolved.String()
}

// getAttr retrieves an attribute value from an HTML node.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
