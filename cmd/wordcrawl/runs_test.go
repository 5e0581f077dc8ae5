package main

import (
	"testing"
)

// TestNewRunsCmd tests the runs command creation.
func TestNewRunsCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRunsCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "runs" {
			t.Errorf("expected use 'runs', got %q", cmd.Use)
		}
	})

	t.Run("has seed flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("seed")
		if flag == nil {
			t.Fatal("expected seed flag")
		}
		if flag.Shorthand != "s" {
			t.Errorf("expected shorthand 's', got %q", flag.Shorthand)
		}
	})

	t.Run("has limit flag with default 10", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("limit")
		if flag == nil {
			t.Fatal("expected limit flag")
		}
		if flag.DefValue != "10" {
			t.Errorf("expected default '10', got %q", flag.DefValue)
		}
	})
}

// TestNewWordsCmd tests the words command creation.
func TestNewWordsCmd(t *testing.T) {
	t.Parallel()

	cmd := NewWordsCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "words [run-id]" {
			t.Errorf("expected use 'words [run-id]', got %q", cmd.Use)
		}
	})

	t.Run("accepts at most one argument", func(t *testing.T) {
		t.Parallel()
		if cmd.Args == nil {
			t.Fatal("expected Args validator")
		}
		if err := cmd.Args(cmd, []string{"1", "2"}); err == nil {
			t.Error("expected error for two arguments")
		}
		if err := cmd.Args(cmd, []string{}); err != nil {
			t.Errorf("expected zero arguments to be valid, got %v", err)
		}
	})

	t.Run("has seed flag", func(t *testing.T) {
		t.Parallel()
		if cmd.Flags().Lookup("seed") == nil {
			t.Error("expected seed flag")
		}
	})
}
