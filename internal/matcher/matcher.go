package matcher

import (
	"sort"

	"github.com/leommxj/LawComparator/internal/models"
)

// Matcher proposes clause pairings between an old and a new version.
type Matcher struct {
	Scorer    Scorer
	Threshold float64

	// LabelMatching pairs units with equal article numbers outright,
	// before any similarity-based selection.
	LabelMatching bool
}

// New returns a Matcher with the default scorer.
func New(threshold float64) *Matcher {
	return &Matcher{
		Scorer:        LevenshteinScorer{},
		Threshold:     threshold,
		LabelMatching: true,
	}
}

// Result holds the automatic match set: accepted candidates plus the
// units on each side no candidate reached the threshold for.
type Result struct {
	Candidates   []models.MatchCandidate
	UnmatchedOld []int
	UnmatchedNew []int
}

// Match aligns the two clause sequences. Selection is bipartite: each unit
// is used at most once. Label-equal pairs win first, then the highest
// scoring pairs, ties broken by sequence proximity (legal revisions rarely
// reorder extensively), then by old index. Pairs below the threshold are
// rejected rather than forced.
func (m *Matcher) Match(old, new []models.ClauseUnit) Result {
	var res Result
	usedOld := make(map[int]bool, len(old))
	usedNew := make(map[int]bool, len(new))

	if m.LabelMatching {
		byLabel := make(map[int]int, len(new))
		dupLabel := make(map[int]bool)
		for _, n := range new {
			if !n.Labeled() {
				continue
			}
			if _, seen := byLabel[n.Label]; seen {
				// Ambiguous label on the new side, let scoring decide
				dupLabel[n.Label] = true
				continue
			}
			byLabel[n.Label] = n.Index
		}

		for _, o := range old {
			if !o.Labeled() || dupLabel[o.Label] {
				continue
			}
			j, ok := byLabel[o.Label]
			if !ok || usedNew[j] {
				continue
			}
			res.Candidates = append(res.Candidates, models.MatchCandidate{
				OldIndex:   o.Index,
				NewIndex:   j,
				Score:      m.Scorer.Score(o.Body, new[j].Body),
				LabelMatch: true,
			})
			usedOld[o.Index] = true
			usedNew[j] = true
		}
	}

	// Score all remaining cross pairs
	type scored struct {
		old, new int
		score    float64
		dist     int
	}
	var pairs []scored
	for _, o := range old {
		if usedOld[o.Index] {
			continue
		}
		for _, n := range new {
			if usedNew[n.Index] {
				continue
			}
			s := m.Scorer.Score(o.Body, n.Body)
			if s < m.Threshold {
				continue
			}
			d := o.Index - n.Index
			if d < 0 {
				d = -d
			}
			pairs = append(pairs, scored{old: o.Index, new: n.Index, score: s, dist: d})
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].score != pairs[j].score {
			return pairs[i].score > pairs[j].score
		}
		if pairs[i].dist != pairs[j].dist {
			return pairs[i].dist < pairs[j].dist
		}
		if pairs[i].old != pairs[j].old {
			return pairs[i].old < pairs[j].old
		}
		return pairs[i].new < pairs[j].new
	})

	for _, p := range pairs {
		if usedOld[p.old] || usedNew[p.new] {
			continue
		}
		res.Candidates = append(res.Candidates, models.MatchCandidate{
			OldIndex: p.old,
			NewIndex: p.new,
			Score:    p.score,
		})
		usedOld[p.old] = true
		usedNew[p.new] = true
	}

	// Candidates in old-sequence order for stable downstream output
	sort.Slice(res.Candidates, func(i, j int) bool {
		return res.Candidates[i].OldIndex < res.Candidates[j].OldIndex
	})

	for _, o := range old {
		if !usedOld[o.Index] {
			res.UnmatchedOld = append(res.UnmatchedOld, o.Index)
		}
	}
	for _, n := range new {
		if !usedNew[n.Index] {
			res.UnmatchedNew = append(res.UnmatchedNew, n.Index)
		}
	}

	return res
}
