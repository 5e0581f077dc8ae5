package model

import "sort"

// Corpus is the accumulated set of unique words discovered during a crawl.
// It only ever grows: once a word is added it is never removed, so the
// corpus after processing pages P1..Pn equals the union of each page's
// word set.
//
// Design decision: The corpus is owned exclusively by the crawl loop and
// mutated only between batches, so it carries no internal locking. Callers
// that need concurrent access must synchronize externally.
type Corpus struct {
	words map[string]struct{}
}

// NewCorpus creates an empty Corpus.
func NewCorpus() *Corpus {
	return &Corpus{words: make(map[string]struct{})}
}

// Add inserts a single word into the corpus.
func (c *Corpus) Add(word string) {
	c.words[word] = struct{}{}
}

// AddSet unions a page's word set into the corpus.
func (c *Corpus) AddSet(words map[string]struct{}) {
	for w := range words {
		c.words[w] = struct{}{}
	}
}

// Contains reports whether the corpus holds the given word.
func (c *Corpus) Contains(word string) bool {
	_, ok := c.words[word]
	return ok
}

// Len returns the number of unique words in the corpus.
func (c *Corpus) Len() int {
	return len(c.words)
}

// Sorted returns all words in lexicographic order.
// The output is byte-for-byte deterministic for a given corpus, which
// makes wordlist files reproducible and diffable.
func (c *Corpus) Sorted() []string {
	out := make([]string, 0, len(c.words))
	for w := range c.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
