package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/leommxj/LawComparator/internal/models"
)

// NewArtifact assembles the machine-readable match result for a run.
func NewArtifact(oldPath, newPath string, threshold float64, records []models.MatchRecord, stats models.Statistics) models.MatchArtifact {
	return models.MatchArtifact{
		RunID:     uuid.NewString(),
		OldFile:   filepath.Base(oldPath),
		NewFile:   filepath.Base(newPath),
		Threshold: threshold,
		CreatedAt: time.Now().UTC(),
		Records:   records,
		Stats:     stats,
	}
}

// WriteArtifact serializes the artifact as indented JSON.
func WriteArtifact(artifact models.MatchArtifact, path string) error {
	data, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		return fmt.Errorf("encode match artifact: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write match artifact %s: %w", path, err)
	}
	return nil
}

// LoadArtifact reads a previously written match artifact.
func LoadArtifact(path string) (models.MatchArtifact, error) {
	var artifact models.MatchArtifact
	data, err := os.ReadFile(path)
	if err != nil {
		return artifact, fmt.Errorf("read match artifact %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &artifact); err != nil {
		return artifact, fmt.Errorf("parse match artifact %s: %w", path, err)
	}
	return artifact, nil
}
