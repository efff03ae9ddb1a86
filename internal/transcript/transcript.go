package transcript

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Entry is a single timestamped utterance attributed to one speaker.
// Entries are produced by the upstream subtitle conversion step and
// treated as read-only afterwards.
type Entry struct {
	Index   int
	Speaker string
	Start   time.Duration
	Text    string
}

// entryLine matches the converted transcript format: "H:MM:SS Speaker Name: text"
var entryLine = regexp.MustCompile(`^(\d+:\d{2}:\d{2})\s+([^:]+):\s*(.*)$`)

// Parse reads transcript entries from r, one utterance per line.
// Lines that don't carry a timestamp and speaker are appended to the
// previous entry's text (multi-line remarks); leading garbage is skipped.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		m := entryLine.FindStringSubmatch(line)
		if m == nil {
			if len(entries) > 0 {
				entries[len(entries)-1].Text += " " + line
			}
			continue
		}

		start, err := ParseTimestamp(m[1])
		if err != nil {
			continue
		}

		entries = append(entries, Entry{
			Index:   len(entries),
			Speaker: strings.TrimSpace(m[2]),
			Start:   start,
			Text:    strings.TrimSpace(m[3]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}

	return entries, nil
}

// ParseFile reads transcript entries from a converted transcript text file
func ParseFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transcript: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// ParseTimestamp converts an H:MM:SS string to a duration
func ParseTimestamp(s string) (time.Duration, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q", s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid timestamp %q", s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes > 59 {
		return 0, fmt.Errorf("invalid timestamp %q", s)
	}
	seconds, err := strconv.Atoi(parts[2])
	if err != nil || seconds > 59 {
		return 0, fmt.Errorf("invalid timestamp %q", s)
	}

	return time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second, nil
}

// FormatTimestamp renders a duration as H:MM:SS (hours unpadded,
// matching the converted transcript format)
func FormatTimestamp(d time.Duration) string {
	total := int(d.Seconds())
	if total < 0 {
		total = 0
	}
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
}
