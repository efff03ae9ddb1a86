package pipeline

import "context"

// Pipeline runs a transcript end to end: parse, segment, summarize,
// anchor topic mentions and write the output documents.
type Pipeline interface {
	Process(ctx context.Context, transcriptPath string) error
}
