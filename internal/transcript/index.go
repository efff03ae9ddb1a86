package transcript

// Index groups transcript entries by speaker, preserving chronological
// order per speaker. The union of all occurrence lists is exactly the
// input sequence.
type Index struct {
	entries   []Entry
	bySpeaker map[string][]Entry
	speakers  []string
}

// NewIndex builds an occurrence index over the given entries.
// The entries are assumed to be in chronological order.
func NewIndex(entries []Entry) *Index {
	ix := &Index{
		entries:   entries,
		bySpeaker: make(map[string][]Entry),
	}

	for _, e := range entries {
		if _, seen := ix.bySpeaker[e.Speaker]; !seen {
			ix.speakers = append(ix.speakers, e.Speaker)
		}
		ix.bySpeaker[e.Speaker] = append(ix.bySpeaker[e.Speaker], e)
	}

	return ix
}

// Occurrences returns all entries for the given speaker in
// chronological order. The returned slice must not be modified.
func (ix *Index) Occurrences(speaker string) []Entry {
	return ix.bySpeaker[speaker]
}

// Speakers returns all speakers in order of first appearance
func (ix *Index) Speakers() []string {
	return ix.speakers
}

// Entries returns the full transcript the index was built from
func (ix *Index) Entries() []Entry {
	return ix.entries
}

// Entry returns the transcript entry with the given index
func (ix *Index) Entry(i int) Entry {
	return ix.entries[i]
}

// Len returns the number of entries in the transcript
func (ix *Index) Len() int {
	return len(ix.entries)
}
