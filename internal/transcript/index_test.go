package transcript

import (
	"testing"
	"time"
)

func sampleEntries() []Entry {
	return []Entry{
		{Index: 0, Speaker: "Alice", Start: 1 * time.Minute, Text: "we discuss budgets"},
		{Index: 1, Speaker: "Bob", Start: 2 * time.Minute, Text: "quarterly numbers"},
		{Index: 2, Speaker: "Alice", Start: 20 * time.Minute, Text: "now on to hiring plans"},
		{Index: 3, Speaker: "Carol", Start: 25 * time.Minute, Text: "infra roadmap"},
	}
}

func TestIndexOccurrences(t *testing.T) {
	ix := NewIndex(sampleEntries())

	alice := ix.Occurrences("Alice")
	if len(alice) != 2 {
		t.Fatalf("len(alice) = %d, want 2", len(alice))
	}
	if alice[0].Start >= alice[1].Start {
		t.Error("occurrences not in chronological order")
	}

	if got := ix.Occurrences("Nobody"); got != nil {
		t.Errorf("Occurrences(Nobody) = %v, want nil", got)
	}
}

func TestIndexSpeakersFirstAppearanceOrder(t *testing.T) {
	ix := NewIndex(sampleEntries())

	want := []string{"Alice", "Bob", "Carol"}
	got := ix.Speakers()
	if len(got) != len(want) {
		t.Fatalf("Speakers() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Speakers()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

// The union of all per-speaker occurrence lists must reconstruct the
// full transcript order.
func TestIndexReconstructsTranscript(t *testing.T) {
	entries := sampleEntries()
	ix := NewIndex(entries)

	seen := make([]bool, len(entries))
	total := 0
	for _, s := range ix.Speakers() {
		for _, occ := range ix.Occurrences(s) {
			if occ.Index < 0 || occ.Index >= len(entries) {
				t.Fatalf("occurrence index %d out of range", occ.Index)
			}
			if seen[occ.Index] {
				t.Fatalf("entry %d appears in more than one occurrence list", occ.Index)
			}
			seen[occ.Index] = true
			if entries[occ.Index] != occ {
				t.Errorf("occurrence %d diverges from transcript entry", occ.Index)
			}
			total++
		}
	}
	if total != len(entries) {
		t.Errorf("union covers %d entries, want %d", total, len(entries))
	}
}
