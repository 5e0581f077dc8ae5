package progress

import (
	"bytes"
	"strings"
	"testing"
)

// TestTracker tests progress bar rendering against an injected writer.
func TestTracker(t *testing.T) {
	t.Parallel()

	t.Run("update renders page count and word count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		tr := NewTracker(&buf, 100)

		tr.Update(10, 250)

		out := buf.String()
		if !strings.Contains(out, "10/100") {
			t.Errorf("expected page count 10/100 in output, got %q", out)
		}
		if !strings.Contains(out, "250 words") {
			t.Errorf("expected word count in description, got %q", out)
		}
	})

	t.Run("finish completes the bar", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		tr := NewTracker(&buf, 10)

		tr.Update(3, 50)
		tr.Finish()

		if !strings.Contains(buf.String(), "10/10") {
			t.Errorf("expected finished bar at 10/10, got %q", buf.String())
		}
	})

	t.Run("finish ends with a newline", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		tr := NewTracker(&buf, 5)
		tr.Finish()

		if !strings.HasSuffix(buf.String(), "\n") {
			t.Error("expected trailing newline after Finish")
		}
	})
}
