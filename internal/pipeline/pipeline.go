package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/KellisLab/auto-meeting-minutes/internal/refine"
	"github.com/KellisLab/auto-meeting-minutes/internal/segment"
	"github.com/KellisLab/auto-meeting-minutes/internal/summarizer"
	"github.com/KellisLab/auto-meeting-minutes/internal/transcript"
)

// Process orchestrates the entire transcript summarization pipeline
func (p *implPipeline) Process(ctx context.Context, transcriptPath string) error {
	startTime := time.Now()
	title := baseName(transcriptPath)

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting transcript processing: %s", transcriptPath)
	p.logger.Info(ctx, "========================================")

	// Step 1: Parse transcript
	entries, err := transcript.ParseFile(transcriptPath)
	if err != nil {
		return fmt.Errorf("parse transcript: %w", err)
	}
	if len(entries) == 0 {
		return fmt.Errorf("transcript %s has no entries", transcriptPath)
	}
	ix := transcript.NewIndex(entries)
	p.logger.Info(ctx, "Parsed %d entries, %d speakers", ix.Len(), len(ix.Speakers()))

	// Step 2: Split into time-bounded segments
	segments := segment.Split(entries,
		time.Duration(p.cfg.Segmentation.TargetMinutes)*time.Minute,
		time.Duration(p.cfg.Segmentation.MinimumMinutes)*time.Minute)
	p.logger.Info(ctx, "Split into %d segments", len(segments))

	// Step 3: Summarize segments
	segmentUnits := p.orch.SummarizeSegments(ctx, segments)
	p.logger.Info(ctx, "Segment summaries: %d succeeded, %d failed",
		countStatus(segmentUnits, summarizer.StatusSucceeded),
		countStatus(segmentUnits, summarizer.StatusFailed))

	// Step 4: Extract topic mentions from successful summaries
	var mentions []refine.Mention
	for _, u := range segmentUnits {
		if u.Status != summarizer.StatusSucceeded {
			continue
		}
		mentions = append(mentions, refine.ExtractMentions(u.Summary)...)
	}
	p.logger.Info(ctx, "Extracted %d topic mentions", len(mentions))

	// Step 5: Anchor mentions to speaker occurrences
	mappings := p.refiner.Refine(ctx, ix, mentions)

	// Step 6: Summarize topics per speaker
	topicUnits := p.orch.SummarizeTopics(ctx, ix, mappings)
	p.logger.Info(ctx, "Topic summaries: %d succeeded, %d failed",
		countStatus(topicUnits, summarizer.StatusSucceeded),
		countStatus(topicUnits, summarizer.StatusFailed))

	// Step 7: Write output documents
	outputs, err := p.writeOutputs(ctx, title, segmentUnits, topicUnits)
	if err != nil {
		return fmt.Errorf("write outputs: %w", err)
	}

	duration := time.Since(startTime)
	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing completed successfully!")
	for _, path := range outputs {
		p.logger.Info(ctx, "Output: %s", path)
	}
	p.logger.Info(ctx, "Processing time: %s", duration)
	p.logger.Info(ctx, "========================================")

	return nil
}

// writeOutputs renders and writes every output document, returning their
// paths.
func (p *implPipeline) writeOutputs(ctx context.Context, title string, segmentUnits, topicUnits []summarizer.Unit) ([]string, error) {
	if err := os.MkdirAll(p.cfg.Paths.Output, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	out := func(suffix string) string {
		return filepath.Join(p.cfg.Paths.Output, title+suffix)
	}

	meetingMD := out("_meeting.md")
	if err := os.WriteFile(meetingMD, []byte(p.renderer.MeetingMarkdown(title, segmentUnits)), 0644); err != nil {
		return nil, err
	}

	speakersMD := out("_speakers.md")
	if err := os.WriteFile(speakersMD, []byte(p.renderer.SpeakerMarkdown(title, topicUnits)), 0644); err != nil {
		return nil, err
	}

	speakersHTML := out("_speakers.html")
	if err := os.WriteFile(speakersHTML, []byte(p.renderer.SpeakerHTML(title, topicUnits)), 0644); err != nil {
		return nil, err
	}

	meetingDocx := out("_meeting.docx")
	if err := p.renderer.MeetingDocx(title, segmentUnits, meetingDocx); err != nil {
		return nil, fmt.Errorf("write meeting docx: %w", err)
	}

	speakersDocx := out("_speakers.docx")
	if err := p.renderer.SpeakerDocx(title, topicUnits, speakersDocx); err != nil {
		return nil, fmt.Errorf("write speakers docx: %w", err)
	}

	return []string{meetingMD, speakersMD, speakersHTML, meetingDocx, speakersDocx}, nil
}

func countStatus(units []summarizer.Unit, s summarizer.Status) int {
	n := 0
	for _, u := range units {
		if u.Status == s {
			n++
		}
	}
	return n
}

func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
