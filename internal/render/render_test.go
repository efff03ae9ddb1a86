package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/KellisLab/auto-meeting-minutes/internal/summarizer"
)

const viewer = "https://mit.hosted.panopto.com/Panopto/Pages/Viewer.aspx?id=abc123"

func sampleUnits() []summarizer.Unit {
	return []summarizer.Unit{
		{
			Kind:     summarizer.KindTopic,
			Title:    "Budget Review",
			Speaker:  "Alice",
			Summary:  "Alice walked through **Q3 spending** line by line.",
			LinkTime: 19*time.Minute + 30*time.Second,
			Status:   summarizer.StatusSucceeded,
			Attempts: 1,
		},
		{
			Kind:     summarizer.KindTopic,
			Title:    "Hiring",
			Speaker:  "Bob",
			Summary:  "(summary unavailable) Bob proposed two new roles",
			LinkTime: 42 * time.Minute,
			Status:   summarizer.StatusFailed,
			Attempts: 3,
		},
		{
			Kind:     summarizer.KindTopic,
			Title:    "Roadmap",
			Speaker:  "Alice",
			Summary:  "Milestones were pushed out a sprint.",
			LinkTime: 50 * time.Minute,
			Status:   summarizer.StatusSucceeded,
			Attempts: 1,
		},
	}
}

func TestDeepLink(t *testing.T) {
	r := New(viewer)

	got := r.DeepLink(19*time.Minute + 30*time.Second)
	want := viewer + "&start=1170"
	if got != want {
		t.Errorf("DeepLink() = %q, want %q", got, want)
	}
}

func TestMeetingMarkdown(t *testing.T) {
	r := New(viewer)
	units := []summarizer.Unit{
		{
			Kind:     summarizer.KindSegment,
			Title:    "0:00:00 - 0:40:00",
			Summary:  "**Opening - Alice** (0:01:00):\nIntroductions and agenda.",
			LinkTime: 0,
			Status:   summarizer.StatusSucceeded,
		},
		{
			Kind:     summarizer.KindSegment,
			Title:    "0:40:00 - 1:20:00",
			Summary:  "(summary unavailable) raw transcript text",
			LinkTime: 40 * time.Minute,
			Status:   summarizer.StatusFailed,
			Attempts: 3,
		},
	}

	md := r.MeetingMarkdown("Weekly Sync", units)

	if !strings.Contains(md, "# [Weekly Sync]("+viewer+")") {
		t.Error("missing linked title")
	}
	if !strings.Contains(md, "[(0:40:00)]("+viewer+"&start=2400)") {
		t.Error("missing deep-linked segment heading")
	}
	if !strings.Contains(md, "failed after 3 attempt(s)") {
		t.Error("failed segment not marked")
	}
	if !strings.Contains(md, "Introductions and agenda.") {
		t.Error("summary body dropped")
	}
}

func TestSpeakerMarkdownGrouping(t *testing.T) {
	r := New(viewer)

	md := r.SpeakerMarkdown("Weekly Sync", sampleUnits())

	alice := strings.Index(md, "**Alice**")
	bob := strings.Index(md, "**Bob**")
	if alice < 0 || bob < 0 || alice > bob {
		t.Fatalf("speakers missing or out of order: alice=%d bob=%d", alice, bob)
	}

	// Alice's two topics are numbered within her group.
	if !strings.Contains(md, "**(1) Budget Review **[(0:19:30)]("+viewer+"&start=1170)") {
		t.Error("missing Alice's first numbered topic")
	}
	if !strings.Contains(md, "**(2) Roadmap **") {
		t.Error("Alice's second topic not numbered 2")
	}
	if !strings.Contains(md, "**(1) Hiring **") {
		t.Error("Bob's numbering should restart at 1")
	}
	if !strings.Contains(md, "_(failed)_") {
		t.Error("failed topic not marked")
	}
}

func TestSpeakerHTML(t *testing.T) {
	r := New(viewer)

	out := r.SpeakerHTML("Weekly Sync", sampleUnits())

	if !strings.Contains(out, `<div class="speaker">Alice</div>`) {
		t.Error("missing speaker div")
	}
	if !strings.Contains(out, `<span class="timestamp">(0:19:30)</span>`) {
		t.Error("missing timestamp span")
	}
	if !strings.Contains(out, viewer+"&start=1170") {
		t.Error("missing deep link")
	}
	if !strings.Contains(out, "<b>Q3 spending</b>") {
		t.Error("bold spans not converted")
	}
	if !strings.Contains(out, `<span class="failed">(failed)</span>`) {
		t.Error("failed topic not marked")
	}
}

func TestDocxWriters(t *testing.T) {
	r := New(viewer)
	dir := t.TempDir()

	meeting := filepath.Join(dir, "meeting.docx")
	if err := r.MeetingDocx("Weekly Sync", sampleUnits(), meeting); err != nil {
		t.Fatalf("MeetingDocx() error = %v", err)
	}
	speaker := filepath.Join(dir, "speakers.docx")
	if err := r.SpeakerDocx("Weekly Sync", sampleUnits(), speaker); err != nil {
		t.Fatalf("SpeakerDocx() error = %v", err)
	}

	for _, path := range []string{meeting, speaker} {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat %s: %v", path, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", path)
		}
	}
}
