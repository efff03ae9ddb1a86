package refine

import (
	"context"
	"time"

	"github.com/KellisLab/auto-meeting-minutes/internal/keywords"
	"github.com/KellisLab/auto-meeting-minutes/internal/logger"
	"github.com/KellisLab/auto-meeting-minutes/internal/transcript"
)

// Mention is a provisional reference to content discussed by a speaker,
// produced by a first-pass summary, that still needs anchoring to the
// correct occurrence of that speaker.
type Mention struct {
	Speaker         string
	Topic           string
	Text            string
	ProvisionalTime time.Duration
}

// Mapping anchors a mention to one transcript entry of its speaker
type Mapping struct {
	Mention    Mention
	EntryIndex int
	Confidence float64
}

// Config tunes occurrence matching
type Config struct {
	// SimilarityThreshold must be exceeded for a candidate to win
	// outright; otherwise the refiner degrades to the nearest-in-time
	// occurrence.
	SimilarityThreshold float64
	// MaxTimeGap bounds how far (before or after) a candidate occurrence
	// may lie from the mention's provisional time.
	MaxTimeGap time.Duration
	// ContextWindow is how many chronologically adjacent entries of the
	// same speaker are joined to each candidate to capture multi-line
	// remarks.
	ContextWindow int
	// TopKeywords is how many of the mention's most frequent terms feed
	// the keyword-overlap component of the candidate score. Zero disables
	// the component, leaving pure cosine similarity.
	TopKeywords int
}

// Candidate score weights: cosine similarity dominates, keyword overlap
// rewards candidates that mention the topic's salient terms verbatim.
const (
	similarityWeight = 0.7
	overlapWeight    = 0.3
)

// Refiner selects, among several occurrences of a speaker, the one a
// mention actually refers to. It holds no mutable state; Refine is a
// pure function of the index, the mentions and the config.
type Refiner struct {
	cfg       Config
	extractor *keywords.Extractor
	logger    logger.Logger
}

// New creates a Refiner using the given extractor for similarity scoring
func New(cfg Config, extractor *keywords.Extractor, log logger.Logger) *Refiner {
	return &Refiner{cfg: cfg, extractor: extractor, logger: log}
}

// Refine anchors every mention to an occurrence of its speaker, in input
// order. Mentions whose speaker never appears in the transcript are
// dropped with a warning; everything else always resolves, degrading to
// the closest-in-time occurrence when no candidate clears the threshold.
func (r *Refiner) Refine(ctx context.Context, ix *transcript.Index, mentions []Mention) []Mapping {
	mappings := make([]Mapping, 0, len(mentions))

	for _, m := range mentions {
		occurrences := ix.Occurrences(m.Speaker)
		if len(occurrences) == 0 {
			r.logger.Warn(ctx, "No occurrences of speaker %q in transcript, dropping mention %q", m.Speaker, m.Topic)
			continue
		}

		mappings = append(mappings, r.resolve(m, occurrences))
	}

	return mappings
}

func (r *Refiner) resolve(m Mention, occurrences []transcript.Entry) Mapping {
	if len(occurrences) == 1 {
		return Mapping{Mention: m, EntryIndex: occurrences[0].Index, Confidence: 1.0}
	}

	mentionTerms := r.extractor.Extract(m.Text)
	topKeywords := r.extractor.Top(m.Text, r.cfg.TopKeywords)

	best := -1
	bestScore := 0.0
	for i, occ := range occurrences {
		gap := occ.Start - m.ProvisionalTime
		if gap < 0 {
			gap = -gap
		}
		if gap > r.cfg.MaxTimeGap {
			continue
		}

		score := r.score(mentionTerms, topKeywords, r.extractor.Extract(r.contextText(occurrences, i)))
		if best < 0 || score > bestScore ||
			(score == bestScore && r.closer(occurrences[i], occurrences[best], m.ProvisionalTime)) {
			best = i
			bestScore = score
		}
	}

	// Disambiguation never fails outright: unless a candidate exceeds the
	// threshold (or with no candidate in range at all) fall back to the
	// closest-in-time occurrence.
	if best < 0 || bestScore <= r.cfg.SimilarityThreshold {
		return Mapping{
			Mention:    m,
			EntryIndex: closestInTime(occurrences, m.ProvisionalTime).Index,
			Confidence: bestScore,
		}
	}

	return Mapping{Mention: m, EntryIndex: occurrences[best].Index, Confidence: bestScore}
}

// score combines cosine similarity with the fraction of the mention's
// top keywords appearing verbatim in the candidate's context. Without
// top keywords the similarity stands alone.
func (r *Refiner) score(mentionTerms map[string]int, topKeywords []string, contextTerms map[string]int) float64 {
	similarity := r.extractor.SimilaritySets(mentionTerms, contextTerms)
	if len(topKeywords) == 0 {
		return similarity
	}

	matched := 0
	for _, kw := range topKeywords {
		if _, ok := contextTerms[kw]; ok {
			matched++
		}
	}

	return similarityWeight*similarity + overlapWeight*float64(matched)/float64(len(topKeywords))
}

// contextText joins the candidate occurrence with its chronologically
// adjacent same-speaker entries.
func (r *Refiner) contextText(occurrences []transcript.Entry, i int) string {
	lo := i - r.cfg.ContextWindow
	if lo < 0 {
		lo = 0
	}
	hi := i + r.cfg.ContextWindow
	if hi > len(occurrences)-1 {
		hi = len(occurrences) - 1
	}

	text := ""
	for _, occ := range occurrences[lo : hi+1] {
		text += occ.Text + " "
	}
	return text
}

// closer reports whether a is a better tie-break choice than b: nearer
// to the provisional time, or earlier when equally near.
func (r *Refiner) closer(a, b transcript.Entry, t time.Duration) bool {
	da, db := a.Start-t, b.Start-t
	if da < 0 {
		da = -da
	}
	if db < 0 {
		db = -db
	}
	if da != db {
		return da < db
	}
	return a.Start < b.Start
}

func closestInTime(occurrences []transcript.Entry, t time.Duration) transcript.Entry {
	best := occurrences[0]
	bestGap := best.Start - t
	if bestGap < 0 {
		bestGap = -bestGap
	}
	for _, occ := range occurrences[1:] {
		gap := occ.Start - t
		if gap < 0 {
			gap = -gap
		}
		if gap < bestGap {
			best = occ
			bestGap = gap
		}
	}
	return best
}
