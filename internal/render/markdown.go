package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/KellisLab/auto-meeting-minutes/internal/summarizer"
	"github.com/KellisLab/auto-meeting-minutes/internal/transcript"
)

// Renderer turns finished summary units into the exported documents.
// viewerURL is the recording's viewer address (already carrying its id
// parameter); deep links append the start offset to it.
type Renderer struct {
	viewerURL string
}

// New creates a Renderer for the given viewer URL
func New(viewerURL string) *Renderer {
	return &Renderer{viewerURL: viewerURL}
}

// DeepLink returns a URL opening the recording at the given offset
func (r *Renderer) DeepLink(t time.Duration) string {
	return fmt.Sprintf("%s&start=%d", r.viewerURL, int(t.Seconds()))
}

// MeetingMarkdown renders the per-segment narrative summaries as one
// markdown document. Failed units appear with their placeholder text and
// an explicit marker instead of being dropped.
func (r *Renderer) MeetingMarkdown(title string, units []summarizer.Unit) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# [%s](%s)\n", title, r.viewerURL)

	for _, u := range units {
		ts := transcript.FormatTimestamp(u.LinkTime)
		fmt.Fprintf(&b, "\n## [(%s)](%s) %s\n\n", ts, r.DeepLink(u.LinkTime), u.Title)
		if u.Status == summarizer.StatusFailed {
			fmt.Fprintf(&b, "_summarization failed after %d attempt(s)_\n\n", u.Attempts)
		}
		b.WriteString(u.Summary)
		b.WriteString("\n")
	}

	return b.String()
}

// SpeakerMarkdown renders per-topic speaker summaries grouped by speaker,
// topics numbered in parentheses, each with a deep-linked timestamp.
func (r *Renderer) SpeakerMarkdown(title string, units []summarizer.Unit) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# [%s](%s)\n", title, r.viewerURL)

	for _, g := range groupBySpeaker(units) {
		fmt.Fprintf(&b, "\n**%s**\n", g.speaker)
		for i, u := range g.units {
			ts := transcript.FormatTimestamp(u.LinkTime)
			marker := ""
			if u.Status == summarizer.StatusFailed {
				marker = " _(failed)_"
			}
			fmt.Fprintf(&b, "**(%d) %s **[(%s)](%s)%s: %s\n",
				i+1, u.Title, ts, r.DeepLink(u.LinkTime), marker, u.Summary)
		}
	}

	return b.String()
}

type speakerGroup struct {
	speaker string
	units   []summarizer.Unit
}

// groupBySpeaker buckets units per speaker in order of first appearance,
// keeping unit order within each bucket.
func groupBySpeaker(units []summarizer.Unit) []speakerGroup {
	var groups []speakerGroup
	byName := make(map[string]int)

	for _, u := range units {
		idx, seen := byName[u.Speaker]
		if !seen {
			idx = len(groups)
			byName[u.Speaker] = idx
			groups = append(groups, speakerGroup{speaker: u.Speaker})
		}
		groups[idx].units = append(groups[idx].units, u)
	}

	return groups
}
