// Package diff computes character-level change spans between two clause
// texts using the sergi/go-diff engine.
package diff

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Op is the kind of a diff span.
type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

// Span is one run of text that is common to both sides, inserted in the
// new text, or deleted from the old text.
type Span struct {
	Op   Op     `json:"op"`
	Text string `json:"text"`
}

// Engine wraps a configured diffmatchpatch instance.
type Engine struct {
	dmp *diffmatchpatch.DiffMatchPatch
}

// NewEngine creates a diff engine tuned for clause-sized texts.
func NewEngine() *Engine {
	dmp := diffmatchpatch.New()
	// Clause bodies are short; favor accuracy over the time cutoff
	dmp.DiffTimeout = 0
	return &Engine{dmp: dmp}
}

// Compare returns the change spans from oldText to newText. Semantic
// cleanup merges coincidental character-level equalities into readable
// runs.
func (e *Engine) Compare(oldText, newText string) []Span {
	diffs := e.dmp.DiffMain(oldText, newText, false)
	diffs = e.dmp.DiffCleanupSemantic(diffs)

	spans := make([]Span, 0, len(diffs))
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			spans = append(spans, Span{Op: Equal, Text: d.Text})
		case diffmatchpatch.DiffInsert:
			spans = append(spans, Span{Op: Insert, Text: d.Text})
		case diffmatchpatch.DiffDelete:
			spans = append(spans, Span{Op: Delete, Text: d.Text})
		}
	}
	return spans
}
