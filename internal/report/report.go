// Package report renders the final match records into the HTML report and
// the JSON match artifact.
package report

import (
	"fmt"
	"time"

	"github.com/leommxj/LawComparator/internal/diff"
	"github.com/leommxj/LawComparator/internal/models"
)

// PairView is one matched clause pair prepared for rendering.
type PairView struct {
	OldLabel string
	NewLabel string
	Score    float64
	Manual   bool
	OldBody  string
	NewBody  string
	Spans    []diff.Span
	Context  string
}

// UnitView is a deleted or added clause prepared for rendering.
type UnitView struct {
	Label   string
	Body    string
	Context string
}

// Report is the structured diff consumed by the HTML template.
type Report struct {
	OldFile     string
	NewFile     string
	RunID       string
	GeneratedAt time.Time
	Stats       models.Statistics

	Modified  []PairView
	Identical []PairView
	Deleted   []UnitView
	Added     []UnitView
}

// Build assembles a Report from the segmented documents and the final
// record list. Matched pairs scoring at or above identicalScore go to the
// Identical section without a sub-diff; the rest get change spans.
func Build(old, new *models.StatuteDoc, artifact models.MatchArtifact, identicalScore float64) *Report {
	engine := diff.NewEngine()

	r := &Report{
		OldFile:     artifact.OldFile,
		NewFile:     artifact.NewFile,
		RunID:       artifact.RunID,
		GeneratedAt: artifact.CreatedAt,
		Stats:       artifact.Stats,
	}

	for _, rec := range artifact.Records {
		switch rec.Status {
		case models.StatusMatched:
			o := old.Clauses[*rec.OldIndex]
			n := new.Clauses[*rec.NewIndex]
			pair := PairView{
				OldLabel: displayLabel(o),
				NewLabel: displayLabel(n),
				Score:    rec.Score,
				Manual:   rec.Derivation == models.DerivationManual,
				OldBody:  o.Body,
				NewBody:  n.Body,
				Context:  pairContext(o, n),
			}
			if rec.Score >= identicalScore {
				r.Identical = append(r.Identical, pair)
			} else {
				pair.Spans = engine.Compare(o.Body, n.Body)
				r.Modified = append(r.Modified, pair)
			}
		case models.StatusDeleted:
			o := old.Clauses[*rec.OldIndex]
			r.Deleted = append(r.Deleted, UnitView{
				Label:   displayLabel(o),
				Body:    o.Body,
				Context: headingContext(o),
			})
		case models.StatusAdded:
			n := new.Clauses[*rec.NewIndex]
			r.Added = append(r.Added, UnitView{
				Label:   displayLabel(n),
				Body:    n.Body,
				Context: headingContext(n),
			})
		}
	}

	return r
}

// displayLabel renders a clause's article number, falling back to its
// sequence position for label-less units.
func displayLabel(c models.ClauseUnit) string {
	if c.LabelText != "" {
		return c.LabelText
	}
	return fmt.Sprintf("段落%d", c.Index+1)
}

// headingContext formats a clause's chapter/section location.
func headingContext(c models.ClauseUnit) string {
	if c.Chapter == nil {
		return ""
	}
	s := fmt.Sprintf("第%d章", c.Chapter.Number)
	if c.Chapter.Title != "" {
		s += "《" + c.Chapter.Title + "》"
	}
	if c.Section != nil {
		s += fmt.Sprintf(" - 第%d节", c.Section.Number)
		if c.Section.Title != "" {
			s += "《" + c.Section.Title + "》"
		}
	}
	return s
}

// pairContext shows a clause's location, or the movement between
// locations when a revision relocated it.
func pairContext(o, n models.ClauseUnit) string {
	oc := headingContext(o)
	nc := headingContext(n)
	switch {
	case oc == nc:
		return oc
	case oc == "":
		return nc
	case nc == "":
		return oc
	default:
		return oc + " → " + nc
	}
}
