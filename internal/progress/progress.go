package progress

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
)

// Tracker renders crawl progress as a terminal progress bar.
// It is driven by the crawler's page callback and is safe to use from
// the merge loop, which is single-goroutine.
type Tracker struct {
	bar *progressbar.ProgressBar
	out io.Writer
}

// NewTracker creates a Tracker that renders to w, sized to the page
// budget. Pass os.Stderr in the CLI; tests inject a buffer.
func NewTracker(w io.Writer, maxPages int) *Tracker {
	bar := progressbar.NewOptions(maxPages,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("crawling"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("pages"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
	return &Tracker{bar: bar, out: w}
}

// Update advances the bar to pages processed and refreshes the
// description with the running unique word count.
func (t *Tracker) Update(pages, words int) {
	t.bar.Describe(fmt.Sprintf("crawling (%d words)", words))
	_ = t.bar.Set(pages)
}

// Finish completes the bar and moves the cursor to a fresh line so
// subsequent output does not overwrite it.
func (t *Tracker) Finish() {
	_ = t.bar.Finish()
	fmt.Fprintln(t.out)
}
