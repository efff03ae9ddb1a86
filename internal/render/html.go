package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/KellisLab/auto-meeting-minutes/internal/summarizer"
	"github.com/KellisLab/auto-meeting-minutes/internal/transcript"
)

const htmlStyle = `body { font-family: Arial, sans-serif; margin: 20px; font-size: 11px; }
h1 { font-family: Cambria, serif; font-size: 11px; color: #c0504d; text-decoration: underline; margin-bottom: 15px; }
h1 a { color: #c0504d; text-decoration: underline; }
.speaker { font-weight: bold; color: #7030a0; text-decoration: underline; margin-bottom: 3px; }
.topic { margin-left: 0px; margin-bottom: 3px; }
.topic-title { font-weight: bold; color: #1f497d; text-decoration: underline; }
ol { list-style-position: outside; padding-left: 12px; margin-top: 5px; }
ol li { margin-bottom: 10px; }
a { color: inherit; text-decoration: none; }
.timestamp { color: #1155cc; }
.failed { color: #c00000; font-style: italic; }`

// SpeakerHTML renders per-topic speaker summaries as a styled HTML
// document: an ordered list of speakers, each with their numbered topics
// and deep-linked timestamps.
func (r *Renderer) SpeakerHTML(title string, units []summarizer.Unit) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<title>Speaker Summaries</title>\n")
	b.WriteString("<style>\n" + htmlStyle + "\n</style>\n</head>\n<body>\n")
	fmt.Fprintf(&b, "<h1><a href=\"%s\">%s <span style=\"color: #1155cc;\">(link)</span></a></h1>\n",
		r.viewerURL, html.EscapeString(title))

	b.WriteString("<ol>\n")
	for _, g := range groupBySpeaker(units) {
		fmt.Fprintf(&b, "<li><div class=\"speaker\">%s</div>\n", html.EscapeString(g.speaker))
		for i, u := range g.units {
			ts := transcript.FormatTimestamp(u.LinkTime)
			marker := ""
			if u.Status == summarizer.StatusFailed {
				marker = " <span class=\"failed\">(failed)</span>"
			}
			fmt.Fprintf(&b, "<div class=\"topic\">(<span class=\"topic-title\">%d) %s</span> <a href=\"%s\"><span class=\"timestamp\">(%s)</span></a>%s: %s</div>\n",
				i+1, html.EscapeString(u.Title), r.DeepLink(u.LinkTime), ts, marker, inlineHTML(u.Summary))
		}
		b.WriteString("</li>\n")
	}
	b.WriteString("</ol>\n</body>\n</html>")

	return b.String()
}

// inlineHTML escapes summary text and converts markdown-style bold spans
// to <b> tags.
func inlineHTML(s string) string {
	s = html.EscapeString(s)
	for {
		open := strings.Index(s, "**")
		if open < 0 {
			break
		}
		end := strings.Index(s[open+2:], "**")
		if end < 0 {
			break
		}
		s = s[:open] + "<b>" + s[open+2:open+2+end] + "</b>" + s[open+2+end+2:]
	}
	return s
}
