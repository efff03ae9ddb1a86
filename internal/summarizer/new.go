package summarizer

import (
	"time"

	"github.com/KellisLab/auto-meeting-minutes/internal/logger"
	"github.com/KellisLab/auto-meeting-minutes/pkg/retry"
)

// Options tunes orchestration: concurrency, retry policy, per-call
// timeout and prompt templates. Zero values fall back to defaults.
type Options struct {
	MaxConcurrent int
	Backoff       retry.Backoff
	CallTimeout   time.Duration
	SegmentPrompt string
	TopicPrompt   string
}

type implOrchestrator struct {
	svc           Service
	logger        logger.Logger
	maxConcurrent int
	backoff       retry.Backoff
	callTimeout   time.Duration
	segmentPrompt string
	topicPrompt   string
}

// New creates an Orchestrator dispatching to the given Service
func New(svc Service, opts Options, log logger.Logger) Orchestrator {
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 2
	}
	if opts.Backoff.MaxAttempts <= 0 {
		opts.Backoff.MaxAttempts = 3
	}
	if opts.Backoff.BaseDelay <= 0 {
		opts.Backoff.BaseDelay = time.Second
	}
	if opts.Backoff.MaxDelay <= 0 {
		opts.Backoff.MaxDelay = 30 * time.Second
	}
	if opts.CallTimeout <= 0 {
		opts.CallTimeout = time.Minute
	}
	if opts.SegmentPrompt == "" {
		opts.SegmentPrompt = defaultSegmentPrompt
	}
	if opts.TopicPrompt == "" {
		opts.TopicPrompt = defaultTopicPrompt
	}

	return &implOrchestrator{
		svc:           svc,
		logger:        log,
		maxConcurrent: opts.MaxConcurrent,
		backoff:       opts.Backoff,
		callTimeout:   opts.CallTimeout,
		segmentPrompt: opts.SegmentPrompt,
		topicPrompt:   opts.TopicPrompt,
	}
}
