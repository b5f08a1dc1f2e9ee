package cli

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/leommxj/LawComparator/internal/models"
	"github.com/leommxj/LawComparator/internal/report"
)

var (
	matchFrom   string
	matchOutput string
)

var matchCmd = &cobra.Command{
	Use:   "match <old-file> <new-file>",
	Short: "Interactively correct clause pairings",
	Long: `Match opens an interactive session for reviewing and correcting the
alignment between two statute versions. Pinned pairings and explicit
deleted/added markers are written as an override file that a later
'lawcmp compare -m' run applies on top of the automatic matcher.

Loading a previous compare's artifact with --from pre-seeds the session
with the automatic proposals.

Examples:
  lawcmp match old.txt new.txt -o overrides.json
  lawcmp match old.txt new.txt --from comparison.json -o overrides.yaml`,
	Args: cobra.ExactArgs(2),
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVar(&matchFrom, "from", "", "match artifact from a previous compare run")
	matchCmd.Flags().StringVarP(&matchOutput, "output", "o", "overrides.json", "override file to write")
}

func runMatch(cmd *cobra.Command, args []string) error {
	oldDoc, err := segmentFile(args[0], models.VersionOld)
	if err != nil {
		return err
	}
	newDoc, err := segmentFile(args[1], models.VersionNew)
	if err != nil {
		return err
	}

	var seed []models.MatchRecord
	if matchFrom != "" {
		artifact, err := report.LoadArtifact(matchFrom)
		if err != nil {
			return err
		}
		if err := validateSeed(artifact.Records, len(oldDoc.Clauses), len(newDoc.Clauses)); err != nil {
			return fmt.Errorf("match artifact %s: %w", matchFrom, err)
		}
		seed = artifact.Records
	}

	model := newMatchModel(oldDoc, newDoc, seed, matchOutput)
	p := tea.NewProgram(model)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("interactive matcher: %w", err)
	}

	m, ok := final.(matchModel)
	if ok && m.err != nil {
		return m.err
	}
	if !ok || !m.saved {
		fmt.Println("No override file written.")
		return nil
	}
	fmt.Printf("Override file written to %s (%d entries)\n", matchOutput, m.savedCount)
	return nil
}

// validateSeed checks a loaded artifact's records against the segmented
// documents before they seed the session. An artifact from a different pair
// of input files must abort with a diagnostic, not corrupt the proposals.
func validateSeed(records []models.MatchRecord, oldLen, newLen int) error {
	for i, r := range records {
		switch r.Status {
		case models.StatusMatched:
			if r.OldIndex == nil || r.NewIndex == nil {
				return fmt.Errorf("record %d: matched entry missing old_index or new_index", i)
			}
		case models.StatusDeleted:
			if r.OldIndex == nil {
				return fmt.Errorf("record %d: deleted entry missing old_index", i)
			}
		case models.StatusAdded:
			if r.NewIndex == nil {
				return fmt.Errorf("record %d: added entry missing new_index", i)
			}
		default:
			return fmt.Errorf("record %d: unknown status %q", i, r.Status)
		}

		if r.OldIndex != nil && (*r.OldIndex < 0 || *r.OldIndex >= oldLen) {
			return fmt.Errorf("record %d: old_index %d out of range [0,%d)", i, *r.OldIndex, oldLen)
		}
		if r.NewIndex != nil && (*r.NewIndex < 0 || *r.NewIndex >= newLen) {
			return fmt.Errorf("record %d: new_index %d out of range [0,%d)", i, *r.NewIndex, newLen)
		}
	}
	return nil
}
