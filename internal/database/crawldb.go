package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/wordcrawl/wordcrawl/internal/model"
)

// CrawlDB provides SQLite-based storage for crawl runs and their corpora.
// It manages connection pooling and provides methods for CRUD operations.
//
// Design decision: We use a single database file for all runs rather
// than one file per seed. This keeps cross-run queries (merged corpora,
// run history per seed) simple and makes backup a single-file copy.
type CrawlDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures CrawlDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent performance.
	// This is recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a CrawlDB at the specified path.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*CrawlDB, error) {
	dbPath := filepath.Join(dbDir, "wordcrawl.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite connection string: mode=rw prevents creating
	// new files, mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer; a single connection avoids
	// SQLITE_BUSY during the word batch insert.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	cdb := &CrawlDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := cdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return cdb, nil
}

// Close closes the database connection.
func (cdb *CrawlDB) Close() error {
	return cdb.db.Close()
}

// Path returns the path of the underlying database file.
func (cdb *CrawlDB) Path() string {
	return cdb.dbPath
}

// createTables creates the database schema if it doesn't exist.
func (cdb *CrawlDB) createTables() error {
	schema := `
	-- Run records store one row per completed crawl
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		seed TEXT NOT NULL,
		pages_crawled INTEGER NOT NULL,
		pages_failed INTEGER NOT NULL,
		word_count INTEGER NOT NULL,
		started_at DATETIME NOT NULL,
		elapsed_ms INTEGER NOT NULL,
		interrupted INTEGER NOT NULL DEFAULT 0,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_runs_seed ON runs(seed);
	CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp);

	-- Words store the corpus of each run
	CREATE TABLE IF NOT EXISTS words (
		run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		word TEXT NOT NULL,
		UNIQUE(run_id, word)
	);

	CREATE INDEX IF NOT EXISTS idx_words_run ON words(run_id);
	CREATE INDEX IF NOT EXISTS idx_words_word ON words(word);
	`

	_, err := cdb.db.ExecContext(context.Background(), schema)
	return err
}

// RunRecord represents a stored crawl run without its corpus.
type RunRecord struct {
	ID           int64
	Seed         string
	PagesCrawled int
	PagesFailed  int
	WordCount    int
	StartedAt    time.Time
	Elapsed      time.Duration
	Interrupted  bool
}

// SaveCrawl stores a completed crawl run and its corpus.
// The run row and all word rows are written in one transaction so a
// failed save never leaves a run without its corpus.
func (cdb *CrawlDB) SaveCrawl(ctx context.Context, result *model.CrawlResult) (int64, error) {
	tx, err := cdb.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op once committed

	res, err := tx.ExecContext(ctx, `
	INSERT INTO runs (seed, pages_crawled, pages_failed, word_count, started_at, elapsed_ms, interrupted)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		result.Seed,
		result.PagesCrawled,
		result.PagesFailed,
		result.WordCount(),
		result.StartedAt.UTC().Format(time.RFC3339),
		result.Elapsed.Milliseconds(),
		result.Interrupted,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO words (run_id, word) VALUES (?, ?)")
	if err != nil {
		return 0, fmt.Errorf("failed to prepare word insert: %w", err)
	}
	defer stmt.Close() //nolint:errcheck // Read-only cleanup

	for _, word := range result.Words {
		if _, err := stmt.ExecContext(ctx, runID, word); err != nil {
			return 0, fmt.Errorf("failed to insert word %q: %w", word, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}

	return runID, nil
}

// LatestRuns returns the most recent runs, newest first.
// Pass seed to restrict to one site, or empty string for all seeds.
func (cdb *CrawlDB) LatestRuns(ctx context.Context, seed string, limit int) ([]RunRecord, error) {
	query := `
	SELECT id, seed, pages_crawled, pages_failed, word_count, started_at, elapsed_ms, interrupted
	FROM runs
	`
	args := make([]interface{}, 0, 2)

	if seed != "" {
		query += " WHERE seed = ?"
		args = append(args, seed)
	}

	query += " ORDER BY timestamp DESC LIMIT ?"
	args = append(args, limit)

	rows, err := cdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var results []RunRecord
	for rows.Next() {
		var rec RunRecord
		var startedAt string
		var elapsedMS int64

		err := rows.Scan(
			&rec.ID,
			&rec.Seed,
			&rec.PagesCrawled,
			&rec.PagesFailed,
			&rec.WordCount,
			&startedAt,
			&elapsedMS,
			&rec.Interrupted,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}

		rec.StartedAt = parseTimestamp(startedAt)
		rec.Elapsed = time.Duration(elapsedMS) * time.Millisecond
		results = append(results, rec)
	}

	return results, rows.Err()
}

// WordsForRun returns the corpus of a run, sorted lexicographically.
func (cdb *CrawlDB) WordsForRun(ctx context.Context, runID int64) ([]string, error) {
	rows, err := cdb.db.QueryContext(ctx,
		"SELECT word FROM words WHERE run_id = ? ORDER BY word", runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query words: %w", err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var word string
		if err := rows.Scan(&word); err != nil {
			return nil, fmt.Errorf("failed to scan word: %w", err)
		}
		words = append(words, word)
	}

	return words, rows.Err()
}

// MergedWords returns the union of the corpora of all runs for a seed,
// sorted lexicographically. Pass empty string to merge across all seeds.
func (cdb *CrawlDB) MergedWords(ctx context.Context, seed string) ([]string, error) {
	query := "SELECT DISTINCT word FROM words"
	args := make([]interface{}, 0, 1)

	if seed != "" {
		query += " JOIN runs ON runs.id = words.run_id WHERE runs.seed = ?"
		args = append(args, seed)
	}

	query += " ORDER BY word"

	rows, err := cdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query merged words: %w", err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var word string
		if err := rows.Scan(&word); err != nil {
			return nil, fmt.Errorf("failed to scan word: %w", err)
		}
		words = append(words, word)
	}

	return words, rows.Err()
}

// timestampFormats lists the formats SQLite may return timestamps in,
// depending on how the value was written.
var timestampFormats = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05.999999999-07:00",
}

// parseTimestamp attempts to parse a timestamp string using multiple formats.
// If parsing fails with all formats, returns zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
