package render

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/KellisLab/auto-meeting-minutes/internal/summarizer"
	"github.com/KellisLab/auto-meeting-minutes/internal/transcript"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

var reBold = regexp.MustCompile(`\*\*(.+?)\*\*`)

// MeetingDocx writes the per-segment summaries as a styled docx document:
// the meeting title, then one heading per segment with its narrative body.
func (r *Renderer) MeetingDocx(title string, units []summarizer.Unit, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), title, true, 16)

	for _, u := range units {
		doc.AddParagraph("")
		heading := fmt.Sprintf("(%s) %s", transcript.FormatTimestamp(u.LinkTime), u.Title)
		addStyledRun(doc.AddParagraph(""), heading, true, 15)
		if u.Status == summarizer.StatusFailed {
			addStyledRun(doc.AddParagraph(""), fmt.Sprintf("summarization failed after %d attempt(s)", u.Attempts), false, fontSize)
		}
		addBody(doc, u.Summary)
	}

	return doc.SaveTo(outputPath)
}

// SpeakerDocx writes topic summaries grouped by speaker, each topic on its
// own paragraph with its number, title and timestamp.
func (r *Renderer) SpeakerDocx(title string, units []summarizer.Unit, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), title, true, 16)

	for _, g := range groupBySpeaker(units) {
		doc.AddParagraph("")
		addStyledRun(doc.AddParagraph(""), g.speaker, true, 14)
		for i, u := range g.units {
			p := doc.AddParagraph("")
			head := fmt.Sprintf("(%d) %s (%s)", i+1, u.Title, transcript.FormatTimestamp(u.LinkTime))
			p.AddText(head).Font(fontName).Size(fontSize).Color("000000").Bold(true)
			p.AddText(": ").Font(fontName).Size(fontSize).Color("000000")
			addRichText(p, u.Summary)
		}
	}

	return doc.SaveTo(outputPath)
}

// addBody splits a summary into paragraphs, dropping blank lines and
// horizontal rules.
func addBody(doc *docx.RootDoc, body string) {
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "---" {
			continue
		}
		addRichText(doc.AddParagraph(""), trimmed)
	}
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	text = cleanInline(text)
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

// addRichText renders markdown bold spans as bold runs, plain text as
// regular runs.
func addRichText(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			p.AddText(cleanInline(part)).Font(fontName).Size(fontSize).Color("000000")
		}
		if i < len(matches) {
			p.AddText(cleanInline(matches[i][1])).Font(fontName).Size(fontSize).Color("000000").Bold(true)
		}
	}
}

func cleanInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
