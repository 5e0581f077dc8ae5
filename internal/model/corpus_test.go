package model

import (
	"testing"
	"time"
)

// TestCorpus tests word accumulation and ordering.
func TestCorpus(t *testing.T) {
	t.Parallel()

	t.Run("deduplicates words", func(t *testing.T) {
		t.Parallel()

		c := NewCorpus()
		c.Add("apple")
		c.Add("apple")
		c.Add("banana")

		if c.Len() != 2 {
			t.Errorf("expected 2 unique words, got %d", c.Len())
		}
	})

	t.Run("sorted output is lexicographic", func(t *testing.T) {
		t.Parallel()

		c := NewCorpus()
		for _, w := range []string{"banana", "apple", "cherry"} {
			c.Add(w)
		}

		got := c.Sorted()
		want := []string{"apple", "banana", "cherry"}
		if len(got) != len(want) {
			t.Fatalf("expected %d words, got %d", len(want), len(got))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("position %d: expected %q, got %q", i, want[i], got[i])
			}
		}
	})

	t.Run("corpus equals union of page sets", func(t *testing.T) {
		t.Parallel()

		pages := []map[string]struct{}{
			{"hello": {}, "world": {}},
			{"world": {}, "foo": {}},
			{"bar": {}},
		}

		c := NewCorpus()
		sizes := make([]int, 0, len(pages))
		for _, p := range pages {
			c.AddSet(p)
			sizes = append(sizes, c.Len())
		}

		// Never shrinks between merges.
		for i := 1; i < len(sizes); i++ {
			if sizes[i] < sizes[i-1] {
				t.Errorf("corpus shrank from %d to %d after page %d", sizes[i-1], sizes[i], i)
			}
		}

		for _, w := range []string{"hello", "world", "foo", "bar"} {
			if !c.Contains(w) {
				t.Errorf("expected corpus to contain %q", w)
			}
		}
		if c.Len() != 4 {
			t.Errorf("expected 4 words, got %d", c.Len())
		}
	})
}

// TestPageResult tests the fetch attempt result type.
func TestPageResult(t *testing.T) {
	t.Parallel()

	t.Run("empty result is safe to consume", func(t *testing.T) {
		t.Parallel()

		r := EmptyPageResult("http://example.com/", 503)
		if r.Fetched {
			t.Error("empty result should not be marked fetched")
		}
		if r.Words == nil || r.Links == nil {
			t.Error("empty result sets must be non-nil")
		}
		if r.WordCount() != 0 {
			t.Errorf("expected 0 words, got %d", r.WordCount())
		}
		if r.StatusCode != 503 {
			t.Errorf("expected status 503, got %d", r.StatusCode)
		}
	})
}

// TestCrawlResult tests summary helpers.
func TestCrawlResult(t *testing.T) {
	t.Parallel()

	t.Run("pages per second", func(t *testing.T) {
		t.Parallel()

		r := &CrawlResult{PagesCrawled: 10, Elapsed: 2 * time.Second}
		if got := r.PagesPerSecond(); got != 5 {
			t.Errorf("expected 5 pages/s, got %f", got)
		}
	})

	t.Run("zero elapsed yields zero rate", func(t *testing.T) {
		t.Parallel()

		r := &CrawlResult{PagesCrawled: 10}
		if got := r.PagesPerSecond(); got != 0 {
			t.Errorf("expected 0 pages/s, got %f", got)
		}
	})
}
