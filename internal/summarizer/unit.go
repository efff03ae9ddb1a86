package summarizer

import (
	"time"
	"unicode/utf8"
)

// Status is the lifecycle of a summary unit. Units start pending and end
// in exactly one terminal state.
type Status int

const (
	StatusPending Status = iota
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// UnitKind distinguishes segment-level narrative summaries from
// per-topic speaker summaries.
type UnitKind int

const (
	KindSegment UnitKind = iota
	KindTopic
)

// Unit is one summarization work item. Created pending by the
// orchestrator, mutated only by it, final once Status leaves pending.
type Unit struct {
	Kind       UnitKind
	Title      string
	Speaker    string
	Prompt     string
	SourceText string
	Summary    string
	LinkTime   time.Duration
	Attempts   int
	Status     Status
}

const placeholderLimit = 200

// placeholderSummary is recorded for failed units so the final output
// still enumerates them instead of dropping them silently. Truncation
// backs up to a rune boundary so the placeholder stays valid UTF-8.
func placeholderSummary(source string) string {
	if len(source) > placeholderLimit {
		cut := placeholderLimit
		for cut > 0 && !utf8.RuneStart(source[cut]) {
			cut--
		}
		source = source[:cut] + "..."
	}
	return "(summary unavailable) " + source
}
