package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/wordcrawl/wordcrawl/internal/model"
)

// SimpleWriter outputs a human-readable run summary.
// This format is designed for terminal display after a crawl finishes.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// sample is the number of corpus words to preview in the summary.
	// Zero disables the preview.
	sample int
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithSample configures the writer to preview the first n corpus words.
func WithSample(n int) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.sample = n
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		sample:     0,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the run summary in human-readable format.
func (w *SimpleWriter) Write(result *model.CrawlResult) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, result)
	w.writeCounts(&sb, result)
	w.writeSample(&sb, result)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the summary header with run information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, result *model.CrawlResult) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                         CRAWL SUMMARY\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Seed:           %s\n", result.Seed))
	sb.WriteString(fmt.Sprintf("Started:        %s\n", result.StartedAt.Format("2006-01-02 15:04:05 MST")))
	sb.WriteString(fmt.Sprintf("Elapsed:        %s\n", result.Elapsed.Round(time.Millisecond)))

	if result.Interrupted {
		sb.WriteString("Status:         INTERRUPTED (partial results)\n")
	} else {
		sb.WriteString("Status:         Complete\n")
	}

	sb.WriteString("\n")
}

// writeCounts writes the page and word counters.
func (w *SimpleWriter) writeCounts(sb *strings.Builder, result *model.CrawlResult) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("RESULTS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("  Pages crawled:  %d\n", result.PagesCrawled))
	sb.WriteString(fmt.Sprintf("  Pages failed:   %d\n", result.PagesFailed))
	sb.WriteString(fmt.Sprintf("  Unique words:   %d\n", result.WordCount()))

	if rate := result.PagesPerSecond(); rate > 0 {
		sb.WriteString(fmt.Sprintf("  Crawl rate:     %.1f pages/s\n", rate))
	}

	sb.WriteString("\n")
}

// writeSample previews the head of the corpus when enabled.
func (w *SimpleWriter) writeSample(sb *strings.Builder, result *model.CrawlResult) {
	if w.sample <= 0 || len(result.Words) == 0 {
		return
	}

	n := w.sample
	if n > len(result.Words) {
		n = len(result.Words)
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("FIRST %d WORDS\n", n))
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	for _, word := range result.Words[:n] {
		sb.WriteString(fmt.Sprintf("  %s\n", word))
	}
	sb.WriteString("\n")
}
