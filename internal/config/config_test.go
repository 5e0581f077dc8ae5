package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestNewConfig verifies that NewConfig returns a Config with all expected
// default values. This serves as living documentation of the defaults:
// changes to them must be intentional or these tests fail.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default MaxDepth is 3", func(t *testing.T) {
		t.Parallel()
		if cfg.MaxDepth != 3 {
			t.Errorf("expected MaxDepth 3, got %d", cfg.MaxDepth)
		}
	})

	t.Run("default MaxPages is 10000", func(t *testing.T) {
		t.Parallel()
		if cfg.MaxPages != 10000 {
			t.Errorf("expected MaxPages 10000, got %d", cfg.MaxPages)
		}
	})

	t.Run("default Workers is 5", func(t *testing.T) {
		t.Parallel()
		if cfg.Workers != 5 {
			t.Errorf("expected Workers 5, got %d", cfg.Workers)
		}
	})

	t.Run("default Timeout is 20 seconds", func(t *testing.T) {
		t.Parallel()
		if cfg.Timeout != 20*time.Second {
			t.Errorf("expected Timeout 20s, got %v", cfg.Timeout)
		}
	})

	t.Run("default output file is wordlist.txt", func(t *testing.T) {
		t.Parallel()
		if cfg.OutputFile != "wordlist.txt" {
			t.Errorf("expected OutputFile 'wordlist.txt', got %q", cfg.OutputFile)
		}
	})

	t.Run("default depth handling increments per hop", func(t *testing.T) {
		t.Parallel()
		if cfg.FlatDepth {
			t.Error("expected FlatDepth to default to false")
		}
	})

	t.Run("default crawl is not host scoped", func(t *testing.T) {
		t.Parallel()
		if cfg.SameHostOnly {
			t.Error("expected SameHostOnly to default to false")
		}
	})
}

// TestConfigValidate tests the Validate method with various configurations.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	validConfig := func() *Config {
		cfg := NewConfig()
		cfg.Seed = "https://example.com"
		return cfg
	}

	t.Run("valid config passes", func(t *testing.T) {
		t.Parallel()
		if err := validConfig().Validate(); err != nil {
			t.Errorf("expected valid config, got %v", err)
		}
	})

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"missing seed", func(c *Config) { c.Seed = "" }, ErrNoSeed},
		{"negative depth", func(c *Config) { c.MaxDepth = -1 }, ErrInvalidDepth},
		{"zero page budget", func(c *Config) { c.MaxPages = 0 }, ErrInvalidMaxPages},
		{"negative page budget", func(c *Config) { c.MaxPages = -5 }, ErrInvalidMaxPages},
		{"zero workers", func(c *Config) { c.Workers = 0 }, ErrInvalidWorkers},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, ErrInvalidTimeout},
		{"negative body size", func(c *Config) { c.MaxBodySize = -1 }, ErrInvalidMaxBodySize},
		{
			"conflicting report formats",
			func(c *Config) { c.JSONReport = true; c.MarkdownReport = true },
			ErrConflictingReportFormats,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	t.Run("zero depth is valid", func(t *testing.T) {
		t.Parallel()

		cfg := validConfig()
		cfg.MaxDepth = 0
		if err := cfg.Validate(); err != nil {
			t.Errorf("depth 0 should be valid (seed only), got %v", err)
		}
	})
}

// TestLoadConfigFile tests YAML config file loading.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("loads host overrides", func(t *testing.T) {
		t.Parallel()

		content := `
defaults:
  ignorePatterns:
    - "/logout*"
hosts:
  example.com:
    userAgent: "custom-agent/1.0"
    depth: 5
    headers:
      Authorization: "Bearer token"
    ignorePatterns:
      - "/admin/*"
`
		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		hc := cf.GetHostConfig("example.com")
		if hc.UserAgent != "custom-agent/1.0" {
			t.Errorf("expected custom user agent, got %q", hc.UserAgent)
		}
		if hc.Depth != 5 {
			t.Errorf("expected depth 5, got %d", hc.Depth)
		}
		if hc.Headers["Authorization"] != "Bearer token" {
			t.Errorf("expected Authorization header, got %v", hc.Headers)
		}
		if len(hc.IgnorePatterns) != 1 || hc.IgnorePatterns[0] != "/admin/*" {
			t.Errorf("expected host ignore patterns to override defaults, got %v", hc.IgnorePatterns)
		}
	})

	t.Run("unknown host falls back to defaults", func(t *testing.T) {
		t.Parallel()

		content := `
defaults:
  depth: 7
  ignorePatterns:
    - "*.pdf"
`
		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		hc := cf.GetHostConfig("unknown.example")
		if hc.Depth != 7 {
			t.Errorf("expected default depth 7, got %d", hc.Depth)
		}
		if len(hc.IgnorePatterns) != 1 || hc.IgnorePatterns[0] != "*.pdf" {
			t.Errorf("expected default ignore patterns, got %v", hc.IgnorePatterns)
		}
	})

	t.Run("missing file returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("malformed YAML returns error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte("hosts: [not a map"), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		if _, err := LoadConfigFile(path); err == nil {
			t.Error("expected error for malformed YAML")
		}
	})
}

// TestFindConfigFile tests config file discovery.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("explicit path that exists is returned", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "myconf.yaml")
		if err := os.WriteFile(path, []byte("hosts: {}"), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		if got := FindConfigFile(path); got != path {
			t.Errorf("expected %q, got %q", path, got)
		}
	})

	t.Run("explicit path that does not exist yields empty", func(t *testing.T) {
		t.Parallel()

		if got := FindConfigFile(filepath.Join(t.TempDir(), "nope")); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
	})
}
