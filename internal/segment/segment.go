package segment

import (
	"time"

	"github.com/KellisLab/auto-meeting-minutes/internal/transcript"
)

// Segment is a contiguous time-bounded slice of the transcript used as
// the unit of narrative summarization. End is the start of the next
// segment (the final segment gets a small tail buffer past its last
// entry).
type Segment struct {
	Start   time.Duration
	End     time.Duration
	Entries []transcript.Entry
}

// tailBuffer pads the final segment's end past its last entry, since
// entries carry no end time of their own.
const tailBuffer = time.Minute

// Split partitions the ordered transcript into contiguous, non-overlapping
// segments of roughly target duration, closing each segment at an entry
// boundary. A trailing segment shorter than min is merged into its
// predecessor. An empty transcript yields no segments; a transcript
// shorter than min yields exactly one.
func Split(entries []transcript.Entry, target, min time.Duration) []Segment {
	if len(entries) == 0 {
		return nil
	}

	var segments []Segment
	current := Segment{Start: entries[0].Start}

	for _, e := range entries {
		if e.Start-current.Start >= target && len(current.Entries) > 0 {
			current.End = e.Start
			segments = append(segments, current)
			current = Segment{Start: e.Start}
		}
		current.Entries = append(current.Entries, e)
	}

	last := entries[len(entries)-1]
	current.End = last.Start + tailBuffer
	segments = append(segments, current)

	// Merge a short tail into the previous segment rather than emitting
	// a sliver.
	if n := len(segments); n > 1 {
		tail := segments[n-1]
		if tail.End-tail.Start-tailBuffer < min {
			prev := &segments[n-2]
			prev.End = tail.End
			prev.Entries = append(prev.Entries, tail.Entries...)
			segments = segments[:n-1]
		}
	}

	return segments
}

// Text renders a segment's entries as "H:MM:SS Speaker: text" lines for
// prompting.
func (s Segment) Text() string {
	out := ""
	for _, e := range s.Entries {
		out += transcript.FormatTimestamp(e.Start) + " " + e.Speaker + ": " + e.Text + "\n"
	}
	return out
}
