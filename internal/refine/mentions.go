package refine

import (
	"regexp"
	"strings"

	"github.com/KellisLab/auto-meeting-minutes/internal/transcript"
)

// topicHeading matches the topic headings first-pass summaries are asked
// to emit: **Topic Title - Speaker Name** (H:MM:SS):
var topicHeading = regexp.MustCompile(`\*\*(.+?)\s+-\s+(.+?)\*\*\s*\((\d+:\d{2}:\d{2})\)\s*:`)

// ExtractMentions parses topic mentions out of a first-pass summary.
// Each heading yields one mention whose text is the prose up to the next
// heading and whose provisional time is the heading's timestamp. Headings
// with unparseable timestamps are skipped.
func ExtractMentions(summary string) []Mention {
	matches := topicHeading.FindAllStringSubmatchIndex(summary, -1)

	mentions := make([]Mention, 0, len(matches))
	for i, m := range matches {
		topic := strings.TrimSpace(summary[m[2]:m[3]])
		speaker := strings.TrimSpace(summary[m[4]:m[5]])
		timestamp := summary[m[6]:m[7]]

		provisional, err := transcript.ParseTimestamp(timestamp)
		if err != nil {
			continue
		}

		end := len(summary)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		text := strings.TrimSpace(summary[m[1]:end])

		mentions = append(mentions, Mention{
			Speaker:         speaker,
			Topic:           topic,
			Text:            text,
			ProvisionalTime: provisional,
		})
	}

	return mentions
}
