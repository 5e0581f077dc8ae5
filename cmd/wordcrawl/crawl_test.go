package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/wordcrawl/wordcrawl/internal/config"
)

// TestNewCrawlCmd tests the crawl command creation.
func TestNewCrawlCmd(t *testing.T) {
	t.Parallel()

	cmd := NewCrawlCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "crawl <url>" {
			t.Errorf("expected use 'crawl <url>', got %q", cmd.Use)
		}
	})

	t.Run("has short description", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" {
			t.Error("expected non-empty short description")
		}
	})

	t.Run("requires exactly one argument", func(t *testing.T) {
		t.Parallel()
		if cmd.Args == nil {
			t.Fatal("expected Args validator")
		}
		if err := cmd.Args(cmd, []string{}); err == nil {
			t.Error("expected error for zero arguments")
		}
		if err := cmd.Args(cmd, []string{"a", "b"}); err == nil {
			t.Error("expected error for two arguments")
		}
		if err := cmd.Args(cmd, []string{"https://example.com"}); err != nil {
			t.Errorf("expected one argument to be valid, got %v", err)
		}
	})

	flagTests := []struct {
		name      string
		flag      string
		shorthand string
		defValue  string
	}{
		{"depth flag", "depth", "d", "3"},
		{"max-pages flag", "max-pages", "p", "10000"},
		{"workers flag", "workers", "w", "5"},
		{"timeout flag", "timeout", "t", "20s"},
		{"output flag", "output", "o", "wordlist.txt"},
		{"json flag", "json", "j", "false"},
		{"markdown flag", "markdown", "m", "false"},
		{"config flag", "config", "c", ""},
		{"same-host flag", "same-host", "", "false"},
		{"flat-depth flag", "flat-depth", "", "false"},
		{"save-db flag", "save-db", "", "false"},
		{"no-progress flag", "no-progress", "", "false"},
	}

	for _, tt := range flagTests {
		t.Run("has "+tt.name, func(t *testing.T) {
			t.Parallel()

			flag := cmd.Flags().Lookup(tt.flag)
			if flag == nil {
				t.Fatalf("expected %s flag", tt.flag)
			}
			if flag.Shorthand != tt.shorthand {
				t.Errorf("expected shorthand %q, got %q", tt.shorthand, flag.Shorthand)
			}
			if flag.DefValue != tt.defValue {
				t.Errorf("expected default %q, got %q", tt.defValue, flag.DefValue)
			}
		})
	}
}

// TestBuildConfig tests flag-to-config translation.
func TestBuildConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults map to config defaults", func(t *testing.T) {
		t.Parallel()

		cmd := NewCrawlCmd()
		if err := cmd.ParseFlags([]string{}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd, []string{"https://example.com"})
		if err != nil {
			t.Fatalf("failed to build config: %v", err)
		}

		if cfg.Seed != "https://example.com" {
			t.Errorf("expected seed from args, got %q", cfg.Seed)
		}
		if cfg.MaxDepth != config.DefaultMaxDepth {
			t.Errorf("expected default depth, got %d", cfg.MaxDepth)
		}
		if cfg.MaxPages != config.DefaultMaxPages {
			t.Errorf("expected default page budget, got %d", cfg.MaxPages)
		}
		if cfg.Workers != config.DefaultWorkers {
			t.Errorf("expected default workers, got %d", cfg.Workers)
		}
		if cfg.OutputFile != config.DefaultOutputFile {
			t.Errorf("expected default output file, got %q", cfg.OutputFile)
		}
		if cfg.SameHostOnly || cfg.FlatDepth || cfg.SaveToDB {
			t.Error("expected boolean flags to default to false")
		}
	})

	t.Run("flags override defaults", func(t *testing.T) {
		t.Parallel()

		cmd := NewCrawlCmd()
		err := cmd.ParseFlags([]string{
			"-d", "7",
			"-p", "500",
			"-w", "2",
			"-t", "5s",
			"-o", "-",
			"--same-host",
			"--flat-depth",
		})
		if err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd, []string{"https://example.com"})
		if err != nil {
			t.Fatalf("failed to build config: %v", err)
		}

		if cfg.MaxDepth != 7 {
			t.Errorf("expected depth 7, got %d", cfg.MaxDepth)
		}
		if cfg.MaxPages != 500 {
			t.Errorf("expected page budget 500, got %d", cfg.MaxPages)
		}
		if cfg.Workers != 2 {
			t.Errorf("expected 2 workers, got %d", cfg.Workers)
		}
		if cfg.Timeout != 5*time.Second {
			t.Errorf("expected 5s timeout, got %v", cfg.Timeout)
		}
		if cfg.OutputFile != "-" {
			t.Errorf("expected stdout output, got %q", cfg.OutputFile)
		}
		if !cfg.SameHostOnly {
			t.Error("expected SameHostOnly")
		}
		if !cfg.FlatDepth {
			t.Error("expected FlatDepth")
		}
	})

	t.Run("explicit missing config file errors", func(t *testing.T) {
		t.Parallel()

		cmd := NewCrawlCmd()
		missing := filepath.Join(t.TempDir(), "nope.yaml")
		if err := cmd.ParseFlags([]string{"-c", missing}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		_, err := buildConfig(cmd, []string{"https://example.com"})
		if err == nil {
			t.Error("expected error for missing config file")
		}
	})

	t.Run("config file host overrides load", func(t *testing.T) {
		t.Parallel()

		content := `
hosts:
  example.com:
    userAgent: "special/2.0"
    depth: 9
`
		path := filepath.Join(t.TempDir(), ".wordcrawl")
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cmd := NewCrawlCmd()
		if err := cmd.ParseFlags([]string{"-c", path}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd, []string{"https://example.com/start"})
		if err != nil {
			t.Fatalf("failed to build config: %v", err)
		}

		hc := hostConfigForSeed(cfg)
		if hc.UserAgent != "special/2.0" {
			t.Errorf("expected host user agent, got %q", hc.UserAgent)
		}
		if hc.Depth != 9 {
			t.Errorf("expected host depth 9, got %d", hc.Depth)
		}
	})
}

// TestHostConfigForSeed tests seed-to-host config resolution.
func TestHostConfigForSeed(t *testing.T) {
	t.Parallel()

	hostConfigs := &config.File{
		Hosts: map[string]config.HostConfig{
			"example.com": {UserAgent: "host-agent"},
		},
	}

	tests := []struct {
		name      string
		seed      string
		wantAgent string
	}{
		{"full URL resolves hostname", "https://example.com/path", "host-agent"},
		{"URL with port resolves hostname", "http://example.com:8080/", "host-agent"},
		{"unknown host gets defaults", "https://other.example/", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.NewConfig()
			cfg.Seed = tt.seed
			cfg.HostConfigs = hostConfigs

			hc := hostConfigForSeed(cfg)
			if hc.UserAgent != tt.wantAgent {
				t.Errorf("expected agent %q, got %q", tt.wantAgent, hc.UserAgent)
			}
		})
	}

	t.Run("nil host configs yield zero value", func(t *testing.T) {
		t.Parallel()

		cfg := config.NewConfig()
		cfg.Seed = "https://example.com/"

		hc := hostConfigForSeed(cfg)
		if hc.UserAgent != "" || hc.Depth != 0 {
			t.Errorf("expected zero host config, got %+v", hc)
		}
	})
}

// TestCrawlCmdValidation tests that invalid flag combinations are rejected.
func TestCrawlCmdValidation(t *testing.T) {
	t.Parallel()

	t.Run("json and markdown together fail", func(t *testing.T) {
		t.Parallel()

		cmd := NewRootCmd()
		cmd.SetArgs([]string{"crawl", "--json", "--markdown", "https://example.com"})
		cmd.SetOut(io.Discard)
		cmd.SetErr(io.Discard)

		err := cmd.Execute()
		if err == nil {
			t.Fatal("expected error for conflicting report formats")
		}
		if !strings.Contains(err.Error(), "configuration error") {
			t.Errorf("expected configuration error, got %v", err)
		}
	})

	t.Run("zero workers fail", func(t *testing.T) {
		t.Parallel()

		cmd := NewRootCmd()
		cmd.SetArgs([]string{"crawl", "-w", "0", "https://example.com"})
		cmd.SetOut(io.Discard)
		cmd.SetErr(io.Discard)

		if err := cmd.Execute(); err == nil {
			t.Fatal("expected error for zero workers")
		}
	})
}
