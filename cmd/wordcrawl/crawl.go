package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wordcrawl/wordcrawl/internal/config"
	"github.com/wordcrawl/wordcrawl/internal/crawler"
	"github.com/wordcrawl/wordcrawl/internal/database"
	"github.com/wordcrawl/wordcrawl/internal/log"
	"github.com/wordcrawl/wordcrawl/internal/model"
	"github.com/wordcrawl/wordcrawl/internal/progress"
	"github.com/wordcrawl/wordcrawl/internal/report"
)

// NewCrawlCmd creates the crawl command.
func NewCrawlCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crawl <url>",
		Short: "Crawl a website and extract a wordlist",
		Long: `Crawl fetches pages breadth-first starting from the given URL and
extracts every lowercase alphabetic word from their visible text.
Scripts, styles, and navigation chrome are excluded.

The crawl stops when the page budget is reached or no reachable pages
remain. Interrupting with Ctrl-C writes the words collected so far.

Examples:
  # Crawl with defaults and write wordlist.txt
  wordcrawl crawl https://example.com

  # Deeper crawl with a bigger budget, wordlist to stdout
  wordcrawl crawl -d 5 -p 20000 -o - https://example.com

  # Stay on the seed host and skip binary-looking paths
  wordcrawl crawl --same-host https://example.com

  # Markdown run report next to the wordlist
  wordcrawl crawl --markdown --report report.md https://example.com

Configuration file (.wordcrawl) example:
  hosts:
    example.com:
      userAgent: "custom-agent/1.0"
      headers:
        Authorization: "Bearer token"
      depth: 5
      ignorePatterns:
        - "/logout*"`,
		Args: cobra.ExactArgs(1),
		RunE: runCrawlCmd,
	}

	// Crawl behavior flags
	cmd.Flags().IntP("depth", "d", config.DefaultMaxDepth,
		"Maximum crawl depth (0 crawls only the seed page)")
	cmd.Flags().IntP("max-pages", "p", config.DefaultMaxPages,
		"Maximum number of pages to visit")
	cmd.Flags().IntP("workers", "w", config.DefaultWorkers,
		"Maximum number of concurrent fetches")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for each request")
	cmd.Flags().String("user-agent", config.DefaultUserAgent,
		"User-Agent header sent with every request")
	cmd.Flags().Bool("same-host", false,
		"Only follow links on the seed's host")
	cmd.Flags().Bool("flat-depth", false,
		"Apply the depth limit to seed links only (legacy crawl shape)")

	// Output flags
	cmd.Flags().StringP("output", "o", config.DefaultOutputFile,
		"Wordlist output path ('-' for stdout)")
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON run report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown run report (mutually exclusive with --json)")
	cmd.Flags().String("report", "",
		"Write the run report to specified file path instead of stdout")
	cmd.Flags().Bool("no-progress", false,
		"Disable the progress bar")

	// Persistence flags
	cmd.Flags().Bool("save-db", false,
		"Save the run and its corpus to the local database")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .wordcrawl in current or home directory)")

	return cmd
}

// runCrawlCmd executes the crawl command.
func runCrawlCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, finishing current batch...")
		cancel()
	}()

	return runCrawl(ctx, cfg, logger, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Seed = args[0]

	var err error

	cfg.MaxDepth, err = cmd.Flags().GetInt("depth")
	if err != nil {
		return nil, err
	}

	cfg.MaxPages, err = cmd.Flags().GetInt("max-pages")
	if err != nil {
		return nil, err
	}

	cfg.Workers, err = cmd.Flags().GetInt("workers")
	if err != nil {
		return nil, err
	}

	cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
	if err != nil {
		return nil, err
	}

	cfg.UserAgent, err = cmd.Flags().GetString("user-agent")
	if err != nil {
		return nil, err
	}

	cfg.SameHostOnly, err = cmd.Flags().GetBool("same-host")
	if err != nil {
		return nil, err
	}

	cfg.FlatDepth, err = cmd.Flags().GetBool("flat-depth")
	if err != nil {
		return nil, err
	}

	cfg.OutputFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("report")
	if err != nil {
		return nil, err
	}

	cfg.NoProgress, err = cmd.Flags().GetBool("no-progress")
	if err != nil {
		return nil, err
	}

	cfg.SaveToDB, err = cmd.Flags().GetBool("save-db")
	if err != nil {
		return nil, err
	}
	cfg.DBDir = config.XDGDataDir()

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load per-host configurations from config file.
	// If the user explicitly specified a config file path, error if not
	// found. If no path was specified, silently use an empty config.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.HostConfigs, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	} else {
		cfg.HostConfigs = &config.File{
			Hosts: make(map[string]config.HostConfig),
		}
	}

	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// hostConfigForSeed resolves per-host overrides for the seed's host.
func hostConfigForSeed(cfg *config.Config) config.HostConfig {
	if cfg.HostConfigs == nil {
		return config.HostConfig{}
	}

	u, err := url.Parse(cfg.Seed)
	if err != nil || u.Host == "" {
		// A bare hostname seed like "example.com" parses as a path
		return cfg.HostConfigs.GetHostConfig(cfg.Seed)
	}
	return cfg.HostConfigs.GetHostConfig(u.Hostname())
}

// crawlerOptions assembles crawler options from the configuration.
func crawlerOptions(cfg *config.Config, hc config.HostConfig, logger *slog.Logger) []crawler.Option {
	maxDepth := cfg.MaxDepth
	if hc.Depth > 0 {
		maxDepth = hc.Depth
	}

	userAgent := cfg.UserAgent
	if hc.UserAgent != "" {
		userAgent = hc.UserAgent
	}

	fetcherOpts := []crawler.FetcherOption{
		crawler.WithFetchTimeout(cfg.Timeout),
		crawler.WithUserAgent(userAgent),
		crawler.WithMaxBodySize(cfg.MaxBodySize),
	}
	if len(hc.Headers) > 0 {
		fetcherOpts = append(fetcherOpts, crawler.WithRequestHeaders(hc.Headers))
	}

	opts := []crawler.Option{
		crawler.WithWorkers(cfg.Workers),
		crawler.WithMaxPages(cfg.MaxPages),
		crawler.WithMaxDepth(maxDepth),
		crawler.WithFlatDepth(cfg.FlatDepth),
		crawler.WithSameHostOnly(cfg.SameHostOnly),
		crawler.WithLogger(logger),
		crawler.WithFetcherOptions(fetcherOpts...),
	}
	if len(hc.IgnorePatterns) > 0 {
		opts = append(opts, crawler.WithIgnorePatterns(hc.IgnorePatterns))
	}
	if len(hc.FollowPatterns) > 0 {
		opts = append(opts, crawler.WithFollowPatterns(hc.FollowPatterns))
	}

	return opts
}

// runCrawl executes the crawl and writes its outputs.
func runCrawl(ctx context.Context, cfg *config.Config, logger *slog.Logger, stdout, stderr io.Writer) error {
	hc := hostConfigForSeed(cfg)
	opts := crawlerOptions(cfg, hc, logger)

	// Progress bar goes to stderr so a stdout wordlist stays clean.
	var tracker *progress.Tracker
	if !cfg.NoProgress && term.IsTerminal(int(os.Stderr.Fd())) {
		tracker = progress.NewTracker(os.Stderr, cfg.MaxPages)
		opts = append(opts, crawler.WithPageCallback(
			func(_ *model.PageResult, pagesCrawled, wordCount int) {
				tracker.Update(pagesCrawled, wordCount)
			}))
	}

	c := crawler.New(&http.Client{}, opts...)

	startTime := time.Now()
	result, runErr := c.Run(ctx, cfg.Seed)
	if result == nil {
		return runErr
	}
	if tracker != nil {
		tracker.Finish()
	}

	// An interrupted run still has a usable partial corpus. Report it,
	// write it, and surface the cancellation afterwards.
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}

	logger.Info("crawl finished",
		"seed", result.Seed,
		"pages", result.PagesCrawled,
		"failed", result.PagesFailed,
		"words", result.WordCount(),
		"elapsed", time.Since(startTime).Round(time.Millisecond),
	)

	if err := writeWordlist(cfg, result, stdout); err != nil {
		return err
	}

	// A stdout wordlist must stay one token per line for pipe consumers,
	// so a report without its own file moves to stderr.
	reportOut := stdout
	if cfg.OutputFile == "-" && cfg.ReportFile == "" {
		reportOut = stderr
	}
	if err := outputReport(cfg, result, reportOut); err != nil {
		return err
	}

	if cfg.SaveToDB {
		if err := saveCrawlResult(ctx, cfg, result, logger); err != nil {
			logger.Error("failed to save run", "error", err)
		}
	}

	if result.Interrupted {
		return fmt.Errorf("crawl interrupted after %d pages (partial wordlist written)", result.PagesCrawled)
	}
	return nil
}

// writeWordlist writes the corpus to the configured destination.
func writeWordlist(cfg *config.Config, result *model.CrawlResult, stdout io.Writer) error {
	if cfg.OutputFile == "-" {
		_, err := report.NewWordlistWriter(stdout).Write(result)
		return err
	}

	dir := filepath.Dir(cfg.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(cfg.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create wordlist file: %w", err)
	}
	defer f.Close()

	if _, err := report.NewWordlistWriter(f).Write(result); err != nil {
		return fmt.Errorf("failed to write wordlist: %w", err)
	}
	return nil
}

// outputReport writes the run report in the requested format.
func outputReport(cfg *config.Config, result *model.CrawlResult, out io.Writer) error {
	output := out

	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create report directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		defer f.Close()
		output = f
	}

	var w report.Writer
	switch {
	case cfg.JSONReport:
		w = report.NewJSONWriter(output, report.WithPrettyPrint(), report.WithVersion(getVersion()))
	case cfg.MarkdownReport:
		w = report.NewMarkdownWriter(output, report.WithWordSample(20))
	default:
		w = report.NewSimpleWriter(output)
	}

	if _, err := w.Write(result); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// saveCrawlResult persists the run to the local database.
func saveCrawlResult(ctx context.Context, cfg *config.Config, result *model.CrawlResult, logger *slog.Logger) error {
	db, err := database.Open(cfg.DBDir, database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	runID, err := db.SaveCrawl(ctx, result)
	if err != nil {
		return err
	}

	logger.Info("run saved", "id", runID, "db", db.Path())
	return nil
}
