package keywords

import (
	_ "embed"
	"errors"
	"regexp"
	"sort"
	"strings"
)

// ErrResourceUnavailable is returned when the stop-word list cannot be
// loaded. Disambiguation has no safe default without it, so callers must
// treat this as fatal for the whole pass.
var ErrResourceUnavailable = errors.New("keywords: stop-word list unavailable")

//go:embed stopwords.txt
var embeddedStopwords string

const minTermLength = 2

var nonAlnum = regexp.MustCompile(`[^a-z0-9\s']`)

// Extractor derives salient terms from text spans. It is stateless after
// construction and safe for concurrent use.
type Extractor struct {
	stopwords map[string]struct{}
}

// NewExtractor builds an Extractor backed by the embedded English
// stop-word list.
func NewExtractor() (*Extractor, error) {
	return newExtractor(embeddedStopwords)
}

func newExtractor(list string) (*Extractor, error) {
	stop := make(map[string]struct{})
	for _, line := range strings.Split(list, "\n") {
		word := strings.TrimSpace(line)
		if word == "" {
			continue
		}
		stop[word] = struct{}{}
	}

	if len(stop) == 0 {
		return nil, ErrResourceUnavailable
	}

	return &Extractor{stopwords: stop}, nil
}

// Extract returns the normalized terms of text with their in-span
// frequencies. Terms are case-folded, stop-word filtered and dropped
// below the minimum length. Deterministic for identical input.
func (e *Extractor) Extract(text string) map[string]int {
	terms := make(map[string]int)
	for _, word := range e.tokenize(text) {
		terms[word]++
	}
	return terms
}

// Top returns the n most frequent terms of text, most frequent first.
// Equal frequencies are broken alphabetically so the result is stable.
func (e *Extractor) Top(text string, n int) []string {
	freq := e.Extract(text)

	terms := make([]string, 0, len(freq))
	for t := range freq {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if freq[terms[i]] != freq[terms[j]] {
			return freq[terms[i]] > freq[terms[j]]
		}
		return terms[i] < terms[j]
	})

	if n < len(terms) {
		terms = terms[:n]
	}
	return terms
}

func (e *Extractor) tokenize(text string) []string {
	text = nonAlnum.ReplaceAllString(strings.ToLower(text), " ")

	var out []string
	for _, word := range strings.Fields(text) {
		word = strings.Trim(word, "'")
		if len(word) < minTermLength {
			continue
		}
		if _, stop := e.stopwords[word]; stop {
			continue
		}
		out = append(out, word)
	}
	return out
}
