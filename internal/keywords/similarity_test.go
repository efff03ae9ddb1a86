package keywords

import (
	"fmt"
	"math"
	"math/rand"
	"testing"
)

func TestSimilarityContract(t *testing.T) {
	e, err := NewExtractor()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical non-empty", "hiring plans budget", "hiring plans budget", 1},
		{"empty left", "", "hiring plans", 0},
		{"empty right", "hiring plans", "", 0},
		{"stop words only", "the and of", "hiring plans", 0},
		{"disjoint", "hiring plans", "roadmap infrastructure", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Similarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Similarity() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Property check over random term sets: symmetry, range, and
// self-similarity must hold for arbitrary non-empty inputs.
func TestSimilarityProperties(t *testing.T) {
	e, err := NewExtractor()
	if err != nil {
		t.Fatal(err)
	}

	rng := rand.New(rand.NewSource(42))
	vocab := []string{
		"budget", "hiring", "roadmap", "revenue", "cluster", "genome",
		"latency", "protein", "deadline", "dataset", "pipeline", "grant",
	}

	randomSpan := func() string {
		n := 1 + rng.Intn(8)
		s := ""
		for i := 0; i < n; i++ {
			s += vocab[rng.Intn(len(vocab))] + " "
		}
		return s
	}

	for i := 0; i < 200; i++ {
		a, b := randomSpan(), randomSpan()

		ab := e.Similarity(a, b)
		ba := e.Similarity(b, a)
		if math.Abs(ab-ba) > 1e-9 {
			t.Fatalf("not symmetric for %q / %q: %v vs %v", a, b, ab, ba)
		}
		if ab < 0 || ab > 1+1e-9 {
			t.Fatalf("score out of range for %q / %q: %v", a, b, ab)
		}
		if self := e.Similarity(a, a); math.Abs(self-1) > 1e-9 {
			t.Fatalf("self-similarity of %q = %v, want 1", a, self)
		}
	}
}

// With fixed set sizes, adding shared terms must never lower the score.
func TestSimilarityMonotonicInSharedTerms(t *testing.T) {
	e, err := NewExtractor()
	if err != nil {
		t.Fatal(err)
	}

	vocab := []string{"budget", "hiring", "roadmap", "revenue", "cluster", "genome"}

	base := ""
	for _, w := range vocab {
		base += w + " "
	}

	prev := -1.0
	for shared := 0; shared <= len(vocab); shared++ {
		// b keeps the same size: `shared` terms from vocab, rest unique fillers
		b := ""
		for i := 0; i < shared; i++ {
			b += vocab[i] + " "
		}
		for i := shared; i < len(vocab); i++ {
			b += fmt.Sprintf("filler%02d ", i)
		}

		score := e.Similarity(base, b)
		if score < prev-1e-9 {
			t.Fatalf("score decreased from %v to %v at %d shared terms", prev, score, shared)
		}
		prev = score
	}
}
