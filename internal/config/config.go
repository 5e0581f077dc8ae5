package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
// These match the defaults of the classic wordlist crawlers this tool
// descends from, where applicable.
const (
	// DefaultMaxDepth of 3 covers the content pages of most sites while
	// keeping crawl times reasonable. Deeper levels are mostly archives
	// and pagination, which add few new words per page.
	DefaultMaxDepth = 3

	// DefaultMaxPages is the hard cap on pages ever added to the
	// visited set. 10000 pages is enough for a thorough wordlist of a
	// mid-sized site; larger sites need this raised via CLI flags.
	DefaultMaxPages = 10000

	// DefaultWorkers is the fetch concurrency cap. Five concurrent
	// requests is polite to small sites while still saturating typical
	// page latencies. The dispatch batch size is twice this value.
	DefaultWorkers = 5

	// DefaultTimeout bounds each individual fetch. 20 seconds is
	// generous for slow shared hosting without letting one dead page
	// stall a batch for long.
	DefaultTimeout = 20 * time.Second

	// DefaultOutputFile is where the sorted wordlist is written.
	DefaultOutputFile = "wordlist.txt"

	// DefaultUserAgent identifies wordcrawl in HTTP requests. Using a
	// descriptive User-Agent is good practice and lets operators
	// identify crawler traffic in their logs.
	DefaultUserAgent = "wordcrawl/1.0 (+https://github.com/wordcrawl/wordcrawl)"

	// DefaultMaxBodySize limits the response body size read per page.
	// 5MB is plenty for HTML while preventing memory exhaustion from
	// unexpectedly large responses.
	DefaultMaxBodySize = 5 * 1024 * 1024 // 5MB

	// AppName is the application name used for XDG directory paths.
	AppName = "wordcrawl"
)

// Config holds all configuration options for a crawl.
// This struct is designed to be populated from CLI flags and passed
// through the application via dependency injection rather than global
// state.
//
// Design decision: We use a single flat struct instead of nested structs
// for simplicity. The number of options is manageable, and nesting would
// add complexity without significant benefit.
type Config struct {
	// Seed is the address the crawl starts from.
	Seed string

	// MaxDepth is the maximum crawl depth. Entries discovered beyond
	// this depth are discarded at dequeue. 0 means only the seed page.
	MaxDepth int

	// MaxPages is the page budget: the hard cap on total pages ever
	// added to the visited set.
	MaxPages int

	// Workers is the fetch concurrency cap. The crawl dispatches
	// batches of 2x this size.
	Workers int

	// Timeout is the per-request fetch timeout. There is no crawl-wide
	// deadline.
	Timeout time.Duration

	// UserAgent is the User-Agent header sent with every request.
	UserAgent string

	// MaxBodySize is the maximum response body size in bytes to read.
	// Set to 0 to use the default.
	MaxBodySize int64

	// FlatDepth enqueues discovered links at depth 0 instead of
	// parent depth + 1, reproducing the behavior of early wordlist
	// crawlers where only the seed was depth-limited.
	FlatDepth bool

	// SameHostOnly restricts the crawl to the seed's host. When false
	// (default), cross-host links are crawled like any other.
	SameHostOnly bool

	// OutputFile is where the sorted wordlist is written.
	OutputFile string

	// JSONReport enables JSON report output on stdout instead of the
	// human-readable summary. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output path for the report. Empty means stdout.
	ReportFile string

	// ConfigFilePath is the path to the configuration file. If empty,
	// the tool searches for .wordcrawl in the current directory and
	// then in the user's home directory.
	ConfigFilePath string

	// HostConfigs holds per-host configurations loaded from the config
	// file.
	HostConfigs *File

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// NoProgress disables the progress bar. Progress is also disabled
	// automatically when stderr is not a terminal.
	NoProgress bool

	// SaveToDB indicates whether to persist crawl results to the
	// SQLite database under DBDir.
	SaveToDB bool

	// DBDir is the directory for the SQLite database. Defaults to the
	// XDG data directory.
	DBDir string
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults; callers override
// specific values after creation.
//
// Design decision: We use a constructor instead of relying on zero
// values because many defaults are non-zero. This also serves as
// documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		MaxDepth:    DefaultMaxDepth,
		MaxPages:    DefaultMaxPages,
		Workers:     DefaultWorkers,
		Timeout:     DefaultTimeout,
		UserAgent:   DefaultUserAgent,
		MaxBodySize: DefaultMaxBodySize,
		OutputFile:  DefaultOutputFile,
	}
}

// XDGDataDir returns the XDG data directory for wordcrawl.
// On Linux: ~/.local/share/wordcrawl
// On macOS: ~/Library/Application Support/wordcrawl
// On Windows: %LOCALAPPDATA%\wordcrawl
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast with a clear message before any crawling
// begins. The first error found is returned; fixing one error often
// makes others irrelevant.
func (c *Config) Validate() error {
	if c.Seed == "" {
		return ErrNoSeed
	}

	if c.MaxDepth < 0 {
		return ErrInvalidDepth
	}

	// A zero page budget would mean no crawling at all
	if c.MaxPages <= 0 {
		return ErrInvalidMaxPages
	}

	// Workers must be positive; zero would deadlock the limiter
	if c.Workers <= 0 {
		return ErrInvalidWorkers
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}

	// JSONReport and MarkdownReport are mutually exclusive
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}
