package report

import (
	"bufio"
	"io"

	"github.com/wordcrawl/wordcrawl/internal/model"
)

// WordlistWriter outputs the corpus itself, one token per line.
// This is the crawler's primary artifact: the format is consumed
// directly by dictionary-based tools, so it carries no headers,
// counts, or metadata of any kind.
type WordlistWriter struct {
	baseWriter
}

// NewWordlistWriter creates a WordlistWriter that outputs to the given writer.
func NewWordlistWriter(output io.Writer) *WordlistWriter {
	return &WordlistWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs every word in the result on its own line.
// Words are already sorted and deduplicated by the crawler, so they
// are emitted in the order given.
func (w *WordlistWriter) Write(result *model.CrawlResult) (int, error) {
	bw := bufio.NewWriter(w.output)

	var total int
	for _, word := range result.Words {
		n, err := bw.WriteString(word)
		total += n
		if err != nil {
			return total, err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return total, err
		}
		total++
	}

	if err := bw.Flush(); err != nil {
		return total, err
	}
	return total, nil
}
