package report

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/nao1215/markdown"
	"github.com/wordcrawl/wordcrawl/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MarkdownWriter outputs crawl results in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter

	// sample is the number of corpus words to include in the report.
	// Zero omits the corpus section entirely.
	sample int

	// titler renders table row labels in title case.
	titler cases.Caser
}

// MarkdownWriterOption configures a MarkdownWriter.
type MarkdownWriterOption func(*MarkdownWriter)

// WithWordSample configures the writer to include the first n corpus words.
func WithWordSample(n int) MarkdownWriterOption {
	return func(w *MarkdownWriter) {
		w.sample = n
	}
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer, opts ...MarkdownWriterOption) *MarkdownWriter {
	w := &MarkdownWriter{
		baseWriter: newBaseWriter(output),
		sample:     0,
		titler:     cases.Title(language.English),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the result in Markdown format.
func (w *MarkdownWriter) Write(result *model.CrawlResult) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, result)
	w.writeCounts(md, result)
	w.writeSample(md, result)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with run information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, result *model.CrawlResult) {
	md.H1("Wordcrawl Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{w.titler.String("seed"), "`" + result.Seed + "`"},
			{w.titler.String("started"), result.StartedAt.Format("2006-01-02 15:04:05 MST")},
			{w.titler.String("elapsed"), result.Elapsed.Round(time.Millisecond).String()},
			{w.titler.String("status"), w.getStatusText(result)},
		},
	})
	md.PlainText("")
}

// getStatusText returns the status text based on the run outcome.
func (w *MarkdownWriter) getStatusText(result *model.CrawlResult) string {
	if result.Interrupted {
		return "⚠️ Interrupted (partial results)"
	}
	return "✅ Complete"
}

// writeCounts writes the page and word counters.
func (w *MarkdownWriter) writeCounts(md *markdown.Markdown, result *model.CrawlResult) {
	md.H2("Results")
	md.PlainText("")

	rows := [][]string{
		{w.titler.String("pages crawled"), strconv.Itoa(result.PagesCrawled)},
		{w.titler.String("pages failed"), strconv.Itoa(result.PagesFailed)},
		{w.titler.String("unique words"), strconv.Itoa(result.WordCount())},
	}
	if rate := result.PagesPerSecond(); rate > 0 {
		rows = append(rows, []string{
			w.titler.String("crawl rate"),
			strconv.FormatFloat(rate, 'f', 1, 64) + " pages/s",
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Count"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeSample includes the head of the corpus when enabled.
func (w *MarkdownWriter) writeSample(md *markdown.Markdown, result *model.CrawlResult) {
	if w.sample <= 0 || len(result.Words) == 0 {
		return
	}

	n := w.sample
	if n > len(result.Words) {
		n = len(result.Words)
	}

	md.H2("First " + strconv.Itoa(n) + " Words")
	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightNone, strings.Join(result.Words[:n], "\n"))
	md.PlainText("")
}
