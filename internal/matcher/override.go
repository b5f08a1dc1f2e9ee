package matcher

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/leommxj/LawComparator/internal/models"
)

// ValidationError reports a malformed or conflicting override entry.
// Manual correction data must not be silently partially applied, so any
// bad entry aborts the run.
type ValidationError struct {
	Entry  models.ManualOverride
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid override %s: %s", e.Entry, e.Reason)
}

// LoadOverrides parses a correction file. JSON is the native format; YAML
// is accepted for .yaml/.yml files.
func LoadOverrides(path string) ([]models.ManualOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read override file %s: %w", path, err)
	}

	var file models.OverrideFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse override file %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse override file %s: %w", path, err)
		}
	}

	return file.Matches, nil
}

// WriteOverrides serializes a correction file, JSON by default or YAML for
// .yaml/.yml paths.
func WriteOverrides(path string, overrides []models.ManualOverride) error {
	file := models.OverrideFile{Matches: overrides}

	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(file)
	default:
		data, err = json.MarshalIndent(file, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode override file: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write override file %s: %w", path, err)
	}
	return nil
}

// ValidateOverrides checks every entry against the segmented sequence
// lengths: shape, index range, and duplicate references to one unit.
func ValidateOverrides(overrides []models.ManualOverride, oldLen, newLen int) error {
	seenOld := make(map[int]bool)
	seenNew := make(map[int]bool)

	for _, o := range overrides {
		switch o.Kind() {
		case models.StatusMatched:
			if o.OldIndex == nil || o.NewIndex == nil {
				return &ValidationError{Entry: o, Reason: "a pair needs both old_index and new_index"}
			}
		case models.StatusDeleted:
			if o.OldIndex == nil {
				return &ValidationError{Entry: o, Reason: "deleted marker needs old_index"}
			}
			if o.NewIndex != nil {
				return &ValidationError{Entry: o, Reason: "deleted marker must not name new_index"}
			}
		case models.StatusAdded:
			if o.NewIndex == nil {
				return &ValidationError{Entry: o, Reason: "added marker needs new_index"}
			}
			if o.OldIndex != nil {
				return &ValidationError{Entry: o, Reason: "added marker must not name old_index"}
			}
		default:
			return &ValidationError{Entry: o, Reason: fmt.Sprintf("unknown status %q", o.Status)}
		}

		if o.OldIndex != nil {
			if *o.OldIndex < 0 || *o.OldIndex >= oldLen {
				return &ValidationError{Entry: o, Reason: fmt.Sprintf("old_index %d out of range [0,%d)", *o.OldIndex, oldLen)}
			}
			if seenOld[*o.OldIndex] {
				return &ValidationError{Entry: o, Reason: fmt.Sprintf("old_index %d referenced by more than one override", *o.OldIndex)}
			}
			seenOld[*o.OldIndex] = true
		}
		if o.NewIndex != nil {
			if *o.NewIndex < 0 || *o.NewIndex >= newLen {
				return &ValidationError{Entry: o, Reason: fmt.Sprintf("new_index %d out of range [0,%d)", *o.NewIndex, newLen)}
			}
			if seenNew[*o.NewIndex] {
				return &ValidationError{Entry: o, Reason: fmt.Sprintf("new_index %d referenced by more than one override", *o.NewIndex)}
			}
			seenNew[*o.NewIndex] = true
		}
	}

	return nil
}
