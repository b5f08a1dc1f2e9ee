package models

import "time"

// Status classifies the final resolution of a clause unit.
type Status string

const (
	StatusMatched Status = "matched"
	StatusDeleted Status = "deleted"
	StatusAdded   Status = "added"
)

// Derivation records whether a pairing came from the automatic matcher or
// from a human correction.
type Derivation string

const (
	DerivationAuto   Derivation = "auto"
	DerivationManual Derivation = "manual"
)

// MatchCandidate is a transient scored pairing proposed by the matcher.
// Candidates are discarded after reconciliation.
type MatchCandidate struct {
	OldIndex int
	NewIndex int
	Score    float64
	// LabelMatch is set when both units declare the same article number.
	LabelMatch bool
}

// MatchRecord is the final resolved correspondence of a clause unit.
// Exactly one of the three shapes holds:
//
//	matched: OldIndex and NewIndex set
//	deleted: only OldIndex set
//	added:   only NewIndex set
type MatchRecord struct {
	OldIndex   *int       `json:"old_index"`
	NewIndex   *int       `json:"new_index"`
	Score      float64    `json:"score"`
	Status     Status     `json:"status"`
	Derivation Derivation `json:"derivation,omitempty"`
}

// Statistics summarizes a comparison run.
type Statistics struct {
	OldTotal  int `json:"total_articles_old"`
	NewTotal  int `json:"total_articles_new"`
	Identical int `json:"identical_count"`
	Modified  int `json:"modified_count"`
	Added     int `json:"added_count"`
	Deleted   int `json:"deleted_count"`
	Manual    int `json:"manual_matches_count"`
	Auto      int `json:"auto_matches_count"`
}

// MatchArtifact is the machine-readable result of a comparison run. It is
// what the out-of-process manual matcher consumes and what the final report
// pass is built from.
type MatchArtifact struct {
	RunID     string        `json:"run_id"`
	OldFile   string        `json:"old_file"`
	NewFile   string        `json:"new_file"`
	Threshold float64       `json:"threshold"`
	CreatedAt time.Time     `json:"created_at"`
	Records   []MatchRecord `json:"records"`
	Stats     Statistics    `json:"statistics"`
}

// Int returns a pointer to v, for building records inline.
func Int(v int) *int {
	return &v
}
