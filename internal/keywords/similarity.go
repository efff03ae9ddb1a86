package keywords

import "math"

// Similarity scores two text spans for topical relatedness in [0,1].
// It is the cosine of the extracted term-frequency vectors: symmetric,
// 1 for identical non-empty spans, 0 when either span has no terms, and
// monotonic in shared-term count for fixed vocabularies.
func (e *Extractor) Similarity(a, b string) float64 {
	return cosine(e.Extract(a), e.Extract(b))
}

// SimilaritySets scores two already-extracted term-frequency vectors
func (e *Extractor) SimilaritySets(a, b map[string]int) float64 {
	return cosine(a, b)
}

func cosine(a, b map[string]int) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for term, fa := range a {
		normA += float64(fa) * float64(fa)
		if fb, ok := b[term]; ok {
			dot += float64(fa) * float64(fb)
		}
	}
	for _, fb := range b {
		normB += float64(fb) * float64(fb)
	}

	if dot == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
