// Package matcher aligns clause units between two statute versions.
package matcher

import (
	"github.com/agnivade/levenshtein"
)

// Scorer computes text similarity for the matcher.
//
// Contract: Score is symmetric, bounded to [0,1], and returns 1.0 for
// identical inputs. Any implementation honoring this can be plugged in
// without changing the selection logic.
type Scorer interface {
	Score(a, b string) float64
}

// LevenshteinScorer scores by normalized rune-level edit distance:
// 1 - distance/maxLen.
type LevenshteinScorer struct{}

func (LevenshteinScorer) Score(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}

	dist := levenshtein.ComputeDistance(a, b)
	la := len([]rune(a))
	lb := len([]rune(b))
	maxLen := la
	if lb > maxLen {
		maxLen = lb
	}
	return 1.0 - float64(dist)/float64(maxLen)
}

// BigramScorer scores by Jaccard overlap of rune bigrams. Less sensitive
// to reordering than edit distance, useful for heavily restructured text.
type BigramScorer struct{}

func (BigramScorer) Score(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}

	ba := bigrams(a)
	bb := bigrams(b)
	if len(ba) == 0 || len(bb) == 0 {
		return 0.0
	}

	intersection := 0
	for g := range ba {
		if bb[g] {
			intersection++
		}
	}
	union := len(ba) + len(bb) - intersection
	return float64(intersection) / float64(union)
}

func bigrams(s string) map[string]bool {
	runes := []rune(s)
	set := make(map[string]bool, len(runes))
	for i := 0; i+1 < len(runes); i++ {
		set[string(runes[i:i+2])] = true
	}
	return set
}
