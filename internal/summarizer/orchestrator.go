package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/KellisLab/auto-meeting-minutes/internal/refine"
	"github.com/KellisLab/auto-meeting-minutes/internal/segment"
	"github.com/KellisLab/auto-meeting-minutes/internal/transcript"
	"github.com/KellisLab/auto-meeting-minutes/pkg/retry"
)

// SummarizeSegments produces one narrative summary unit per segment, in
// segment order. Link time is the segment's start time.
func (o *implOrchestrator) SummarizeSegments(ctx context.Context, segments []segment.Segment) []Unit {
	units := make([]Unit, len(segments))
	for i, s := range segments {
		text := s.Text()
		units[i] = Unit{
			Kind: KindSegment,
			Title: fmt.Sprintf("%s - %s",
				transcript.FormatTimestamp(s.Start), transcript.FormatTimestamp(s.End)),
			Prompt:     fmt.Sprintf(o.segmentPrompt, text),
			SourceText: text,
			LinkTime:   s.Start,
			Status:     StatusPending,
		}
	}

	o.run(ctx, units)
	return units
}

// SummarizeTopics produces one unit per refined topic mapping, in
// mapping order. Link time is the resolved entry's start time.
func (o *implOrchestrator) SummarizeTopics(ctx context.Context, ix *transcript.Index, mappings []refine.Mapping) []Unit {
	units := make([]Unit, len(mappings))
	for i, m := range mappings {
		entry := ix.Entry(m.EntryIndex)
		text := m.Mention.Text
		units[i] = Unit{
			Kind:       KindTopic,
			Title:      m.Mention.Topic,
			Speaker:    m.Mention.Speaker,
			Prompt:     fmt.Sprintf(o.topicPrompt, m.Mention.Speaker, text),
			SourceText: text,
			LinkTime:   entry.Start,
			Status:     StatusPending,
		}
	}

	o.run(ctx, units)
	return units
}

// run dispatches every pending unit with bounded concurrency and waits
// for all of them to reach a terminal status. Unit order is positional,
// so the result order is the input order regardless of completion order.
// Once ctx is cancelled no new dispatches start; in-flight calls finish
// and never-dispatched units are failed with a placeholder so the final
// output still enumerates them.
func (o *implOrchestrator) run(ctx context.Context, units []Unit) {
	sem := make(chan struct{}, o.maxConcurrent)
	var wg sync.WaitGroup

	for i := range units {
		if ctx.Err() != nil {
			units[i].Status = StatusFailed
			units[i].Summary = placeholderSummary(units[i].SourceText)
			o.logger.Warn(ctx, "Cancelled before dispatch: %q", units[i].Title)
			continue
		}

		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			units[i].Status = StatusFailed
			units[i].Summary = placeholderSummary(units[i].SourceText)
			o.logger.Warn(ctx, "Cancelled before dispatch: %q", units[i].Title)
			continue
		}

		wg.Add(1)
		go func(u *Unit) {
			defer wg.Done()
			defer func() { <-sem }()
			o.dispatch(ctx, u)
		}(&units[i])
	}

	wg.Wait()
}

// dispatch drives one unit to a terminal status: retrying transient
// failures under the backoff policy, failing fast on fatal ones, and
// recording a placeholder when attempts are exhausted.
func (o *implOrchestrator) dispatch(ctx context.Context, u *Unit) {
	var summary string

	attempts, err := retry.Do(ctx, o.backoff, func(ctx context.Context) error {
		cctx, cancel := context.WithTimeout(ctx, o.callTimeout)
		defer cancel()

		out, callErr := o.svc.Summarize(cctx, u.Prompt)
		if callErr != nil {
			// A per-call timeout counts as transient even when the
			// service surfaces the raw context error.
			if errors.Is(callErr, context.DeadlineExceeded) && ctx.Err() == nil {
				return Transient(callErr)
			}
			if !IsTransient(callErr) {
				return retry.Permanent(callErr)
			}
			return callErr
		}
		summary = out
		return nil
	})

	u.Attempts = attempts
	if err != nil {
		u.Status = StatusFailed
		u.Summary = placeholderSummary(u.SourceText)
		o.logger.Error(ctx, "Summarization failed for %q after %d attempt(s): %v", u.Title, attempts, err)
		return
	}

	u.Summary = strings.TrimSpace(summary)
	u.Status = StatusSucceeded
	o.logger.Debug(ctx, "Summarized %q in %d attempt(s)", u.Title, attempts)
}
