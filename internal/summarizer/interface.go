package summarizer

import (
	"context"

	"github.com/KellisLab/auto-meeting-minutes/internal/refine"
	"github.com/KellisLab/auto-meeting-minutes/internal/segment"
	"github.com/KellisLab/auto-meeting-minutes/internal/transcript"
)

// Service is the external summarization capability. Implementations
// return TransientError for rate-limit/timeout/network failures and
// FatalError for authentication or malformed-request failures so the
// orchestrator can apply the right retry policy.
type Service interface {
	Summarize(ctx context.Context, prompt string) (string, error)
}

// Orchestrator drives summarization calls for segments and refined
// topics, containing per-unit failures and preserving input order.
type Orchestrator interface {
	SummarizeSegments(ctx context.Context, segments []segment.Segment) []Unit
	SummarizeTopics(ctx context.Context, ix *transcript.Index, mappings []refine.Mapping) []Unit
}
