package summarizer

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestPlaceholderSummary(t *testing.T) {
	short := placeholderSummary("a short source")
	if short != "(summary unavailable) a short source" {
		t.Errorf("placeholderSummary() = %q", short)
	}

	long := placeholderSummary(strings.Repeat("x", placeholderLimit+50))
	if !strings.HasSuffix(long, "...") {
		t.Errorf("long source not truncated: %q", long)
	}
	if len(long) > len("(summary unavailable) ")+placeholderLimit+len("...") {
		t.Errorf("placeholder too long: %d bytes", len(long))
	}
}

// Truncation must not split a multi-byte rune at the cut point.
func TestPlaceholderSummaryRuneBoundary(t *testing.T) {
	// Position a 3-byte rune so the byte limit lands inside it.
	source := strings.Repeat("x", placeholderLimit-1) + strings.Repeat("日", 20)

	got := placeholderSummary(source)
	if !utf8.ValidString(got) {
		t.Errorf("placeholder is not valid UTF-8: %q", got)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("long source not truncated: %q", got)
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusPending, "pending"},
		{StatusSucceeded, "succeeded"},
		{StatusFailed, "failed"},
		{Status(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}
