package matcher

import (
	"sort"

	"github.com/leommxj/LawComparator/internal/models"
)

// Reconcile merges automatic candidates with manual overrides into the
// final record list. Overrides are authoritative: any unit they name is
// resolved exactly as specified and conflicting automatic candidates are
// discarded. Remaining units keep their automatic match; leftovers become
// deleted (old side) or added (new side).
//
// Output ordering: matched/deleted records in old-sequence order, then
// added records in new-sequence order. Every unit from both versions
// appears in exactly one record.
func Reconcile(old, new []models.ClauseUnit, candidates []models.MatchCandidate, overrides []models.ManualOverride, scorer Scorer) []models.MatchRecord {
	usedOld := make(map[int]bool, len(old))
	usedNew := make(map[int]bool, len(new))

	var oldSide []models.MatchRecord // matched + deleted, keyed by old index
	var added []models.MatchRecord

	for _, o := range overrides {
		switch o.Kind() {
		case models.StatusMatched:
			i, j := *o.OldIndex, *o.NewIndex
			oldSide = append(oldSide, models.MatchRecord{
				OldIndex:   models.Int(i),
				NewIndex:   models.Int(j),
				Score:      scorer.Score(old[i].Body, new[j].Body),
				Status:     models.StatusMatched,
				Derivation: models.DerivationManual,
			})
			usedOld[i] = true
			usedNew[j] = true
		case models.StatusDeleted:
			oldSide = append(oldSide, models.MatchRecord{
				OldIndex:   models.Int(*o.OldIndex),
				Status:     models.StatusDeleted,
				Derivation: models.DerivationManual,
			})
			usedOld[*o.OldIndex] = true
		case models.StatusAdded:
			added = append(added, models.MatchRecord{
				NewIndex:   models.Int(*o.NewIndex),
				Status:     models.StatusAdded,
				Derivation: models.DerivationManual,
			})
			usedNew[*o.NewIndex] = true
		}
	}

	for _, c := range candidates {
		if usedOld[c.OldIndex] || usedNew[c.NewIndex] {
			continue
		}
		oldSide = append(oldSide, models.MatchRecord{
			OldIndex:   models.Int(c.OldIndex),
			NewIndex:   models.Int(c.NewIndex),
			Score:      c.Score,
			Status:     models.StatusMatched,
			Derivation: models.DerivationAuto,
		})
		usedOld[c.OldIndex] = true
		usedNew[c.NewIndex] = true
	}

	for _, u := range old {
		if !usedOld[u.Index] {
			oldSide = append(oldSide, models.MatchRecord{
				OldIndex:   models.Int(u.Index),
				Status:     models.StatusDeleted,
				Derivation: models.DerivationAuto,
			})
		}
	}
	for _, u := range new {
		if !usedNew[u.Index] {
			added = append(added, models.MatchRecord{
				NewIndex:   models.Int(u.Index),
				Status:     models.StatusAdded,
				Derivation: models.DerivationAuto,
			})
		}
	}

	sort.Slice(oldSide, func(i, j int) bool {
		return *oldSide[i].OldIndex < *oldSide[j].OldIndex
	})
	sort.Slice(added, func(i, j int) bool {
		return *added[i].NewIndex < *added[j].NewIndex
	})

	return append(oldSide, added...)
}

// Stats derives run statistics from a final record list. A pair counts as
// identical at or above identicalScore, modified below it.
func Stats(records []models.MatchRecord, oldLen, newLen int, identicalScore float64) models.Statistics {
	s := models.Statistics{OldTotal: oldLen, NewTotal: newLen}

	for _, r := range records {
		switch r.Status {
		case models.StatusMatched:
			if r.Score >= identicalScore {
				s.Identical++
			} else {
				s.Modified++
			}
			if r.Derivation == models.DerivationManual {
				s.Manual++
			} else {
				s.Auto++
			}
		case models.StatusDeleted:
			s.Deleted++
		case models.StatusAdded:
			s.Added++
		}
	}

	return s
}
