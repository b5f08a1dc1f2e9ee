package models

import "fmt"

// ManualOverride is a human-supplied correction: either an explicit
// old↔new pairing, or a deletion/addition marker. It is authoritative over
// automatic results for the units it names. Indices refer to the sequence
// index within the segmented version, not the printed article number.
type ManualOverride struct {
	OldIndex *int   `json:"old_index,omitempty" yaml:"old_index,omitempty"`
	NewIndex *int   `json:"new_index,omitempty" yaml:"new_index,omitempty"`
	Status   Status `json:"status,omitempty" yaml:"status,omitempty"`
}

// Kind returns the effective status of the override: a pair entry counts
// as matched, marker entries carry their explicit status.
func (o ManualOverride) Kind() Status {
	if o.Status != "" {
		return o.Status
	}
	return StatusMatched
}

// String renders the override for diagnostics.
func (o ManualOverride) String() string {
	switch {
	case o.OldIndex != nil && o.NewIndex != nil:
		return fmt.Sprintf("{old_index: %d, new_index: %d}", *o.OldIndex, *o.NewIndex)
	case o.OldIndex != nil:
		return fmt.Sprintf("{old_index: %d, status: %s}", *o.OldIndex, o.Kind())
	case o.NewIndex != nil:
		return fmt.Sprintf("{new_index: %d, status: %s}", *o.NewIndex, o.Kind())
	default:
		return "{}"
	}
}

// OverrideFile is the on-disk correction payload.
type OverrideFile struct {
	Matches []ManualOverride `json:"manual_matches" yaml:"manual_matches"`
}
