// Package models defines the domain types shared across lawcmp.
package models

// Version tags which side of the comparison a clause belongs to.
type Version string

const (
	VersionOld Version = "old"
	VersionNew Version = "new"
)

// Heading is a chapter or section header of a statute.
type Heading struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
}

// ClauseUnit is one article-level segment of statute text, the atomic unit
// of comparison. Identity is the sequence index within its version; units
// are immutable once segmented.
type ClauseUnit struct {
	Index     int     `json:"index"`
	Label     int     `json:"label,omitempty"`      // article number, 0 when none detected
	LabelText string  `json:"label_text,omitempty"` // e.g. "第三条"
	Body      string  `json:"body"`                 // normalized content without the label
	FullText  string  `json:"full_text,omitempty"`
	Version   Version `json:"version"`
	Chapter   *Heading `json:"chapter,omitempty"`
	Section   *Heading `json:"section,omitempty"`
}

// Labeled reports whether the segmenter detected an article number.
func (c ClauseUnit) Labeled() bool {
	return c.Label > 0
}

// StatuteDoc is the ordered result of segmenting one input file.
type StatuteDoc struct {
	Path     string       `json:"path"`
	Clauses  []ClauseUnit `json:"clauses"`
	Chapters []Heading    `json:"chapters,omitempty"`
	Sections []Heading    `json:"sections,omitempty"`

	// Fallback is set when no article numbering was detected and the
	// segmenter degraded to paragraph splitting.
	Fallback bool `json:"fallback,omitempty"`
}
