// Package database provides SQLite-based persistence for crawl runs.
//
// Each completed crawl can be stored as a run record plus its corpus,
// so wordlists from repeated crawls of the same site can be compared
// or merged later without recrawling. Storage is optional; the crawler
// itself never touches the database.
package database
