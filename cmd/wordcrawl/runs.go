package main

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/wordcrawl/wordcrawl/internal/config"
	"github.com/wordcrawl/wordcrawl/internal/database"
)

// NewRunsCmd creates the runs command.
func NewRunsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List crawl runs stored in the local database",
		Long: `Runs lists crawls previously saved with 'crawl --save-db',
newest first.

Examples:
  # Show the last ten runs
  wordcrawl runs

  # Show runs for one seed
  wordcrawl runs --seed https://example.com/`,
		RunE: runRunsCmd,
	}

	cmd.Flags().StringP("seed", "s", "", "Only show runs for this seed URL")
	cmd.Flags().IntP("limit", "n", 10, "Maximum number of runs to show")

	return cmd
}

// runRunsCmd executes the runs command.
func runRunsCmd(cmd *cobra.Command, _ []string) error {
	seed, err := cmd.Flags().GetString("seed")
	if err != nil {
		return err
	}
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}

	db, err := openRunDB()
	if err != nil {
		return err
	}
	defer db.Close()

	runs, err := db.LatestRuns(context.Background(), seed, limit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No stored runs. Use 'wordcrawl crawl --save-db <url>' to save one.")
		return nil
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSEED\tPAGES\tFAILED\tWORDS\tELAPSED\tSTARTED")
	for _, run := range runs {
		status := ""
		if run.Interrupted {
			status = " (interrupted)"
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%s\t%s%s\n",
			run.ID,
			run.Seed,
			run.PagesCrawled,
			run.PagesFailed,
			run.WordCount,
			run.Elapsed.Round(time.Millisecond),
			run.StartedAt.Format("2006-01-02 15:04"),
			status,
		)
	}
	return tw.Flush()
}

// NewWordsCmd creates the words command.
func NewWordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words [run-id]",
		Short: "Print a stored wordlist",
		Long: `Words prints the corpus of a stored run, one word per line.

Without a run ID, it prints the merged corpus of all stored runs,
optionally restricted to one seed. Merging across repeated crawls of
the same site yields a larger wordlist than any single run.

Examples:
  # Corpus of run 3
  wordcrawl words 3

  # Merged corpus of every stored run of a seed
  wordcrawl words --seed https://example.com/`,
		Args: cobra.MaximumNArgs(1),
		RunE: runWordsCmd,
	}

	cmd.Flags().StringP("seed", "s", "", "Merge runs of this seed URL only")

	return cmd
}

// runWordsCmd executes the words command.
func runWordsCmd(cmd *cobra.Command, args []string) error {
	seed, err := cmd.Flags().GetString("seed")
	if err != nil {
		return err
	}

	db, err := openRunDB()
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()

	var words []string
	if len(args) == 1 {
		runID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid run ID %q: %w", args[0], err)
		}
		words, err = db.WordsForRun(ctx, runID)
		if err != nil {
			return fmt.Errorf("failed to load words: %w", err)
		}
	} else {
		words, err = db.MergedWords(ctx, seed)
		if err != nil {
			return fmt.Errorf("failed to merge words: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	for _, word := range words {
		fmt.Fprintln(out, word)
	}
	return nil
}

// openRunDB opens the run database without creating it, so read-only
// commands fail with a clear message when nothing was saved yet.
func openRunDB() (*database.CrawlDB, error) {
	opts := database.DefaultOptions()
	opts.CreateIfNotExists = false

	db, err := database.Open(config.XDGDataDir(), opts)
	if err != nil {
		return nil, fmt.Errorf("no run database found (save a crawl with --save-db first): %w", err)
	}
	return db, nil
}
