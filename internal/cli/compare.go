package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leommxj/LawComparator/internal/matcher"
	"github.com/leommxj/LawComparator/internal/models"
	"github.com/leommxj/LawComparator/internal/parser"
	"github.com/leommxj/LawComparator/internal/report"
)

var (
	compareOverrides string
	compareThreshold float64
	compareScorer    string
	compareHTMLOut   string
	compareJSONOut   string
	compareNoHTML    bool
	compareNoJSON    bool
)

var compareCmd = &cobra.Command{
	Use:   "compare <old-file> <new-file>",
	Short: "Compare two statute versions and generate reports",
	Long: `Compare segments both files into clause units, aligns them by article
number and text similarity, and writes an HTML diff report plus a JSON
match artifact. A manual override file pins or negates specific pairings
and always wins over the automatic matcher.

Examples:
  lawcmp compare old.txt new.txt
  lawcmp compare old.txt new.txt -t 0.6 -o report.html
  lawcmp compare old.txt new.txt -m overrides.json
  lawcmp compare old.txt new.txt --scorer bigram --no-json`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVarP(&compareOverrides, "manual-matches", "m", "", "manual override file (JSON or YAML)")
	compareCmd.Flags().Float64VarP(&compareThreshold, "threshold", "t", 0, "minimum similarity for an automatic match (default from env)")
	compareCmd.Flags().StringVar(&compareScorer, "scorer", "levenshtein", "similarity metric: levenshtein or bigram")
	compareCmd.Flags().StringVarP(&compareHTMLOut, "output", "o", "comparison.html", "HTML report path")
	compareCmd.Flags().StringVar(&compareJSONOut, "artifact", "comparison.json", "match artifact path")
	compareCmd.Flags().BoolVar(&compareNoHTML, "no-html", false, "skip the HTML report")
	compareCmd.Flags().BoolVar(&compareNoJSON, "no-json", false, "skip the JSON artifact")
}

func runCompare(cmd *cobra.Command, args []string) error {
	oldPath, newPath := args[0], args[1]

	threshold := cfg.Threshold
	if cmd.Flags().Changed("threshold") {
		threshold = compareThreshold
	}

	scorer, err := selectScorer(compareScorer)
	if err != nil {
		return err
	}

	oldDoc, err := segmentFile(oldPath, models.VersionOld)
	if err != nil {
		return err
	}
	newDoc, err := segmentFile(newPath, models.VersionNew)
	if err != nil {
		return err
	}

	var overrides []models.ManualOverride
	if compareOverrides != "" {
		overrides, err = matcher.LoadOverrides(compareOverrides)
		if err != nil {
			return err
		}
		if err := matcher.ValidateOverrides(overrides, len(oldDoc.Clauses), len(newDoc.Clauses)); err != nil {
			return fmt.Errorf("override file %s: %w", compareOverrides, err)
		}
		slog.Info("loaded manual overrides", "file", compareOverrides, "count", len(overrides))
	}

	m := matcher.New(threshold)
	m.Scorer = scorer
	result := m.Match(oldDoc.Clauses, newDoc.Clauses)
	records := matcher.Reconcile(oldDoc.Clauses, newDoc.Clauses, result.Candidates, overrides, scorer)
	stats := matcher.Stats(records, len(oldDoc.Clauses), len(newDoc.Clauses), cfg.IdenticalScore)

	artifact := report.NewArtifact(oldPath, newPath, threshold, records, stats)

	if !compareNoJSON {
		if err := report.WriteArtifact(artifact, compareJSONOut); err != nil {
			return err
		}
		fmt.Printf("Match artifact written to %s\n", compareJSONOut)
	}

	if !compareNoHTML {
		rep := report.Build(oldDoc, newDoc, artifact, cfg.IdenticalScore)
		if err := report.WriteHTML(rep, compareHTMLOut); err != nil {
			return err
		}
		fmt.Printf("HTML report written to %s\n", compareHTMLOut)
	}

	fmt.Printf("Identical: %d  Modified: %d  Deleted: %d  Added: %d  (manual: %d, auto: %d)\n",
		stats.Identical, stats.Modified, stats.Deleted, stats.Added, stats.Manual, stats.Auto)

	return nil
}

// segmentFile reads and segments one input file, warning when the
// segmenter degraded to paragraph splitting.
func segmentFile(path string, version models.Version) (*models.StatuteDoc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input file %s: %w", path, err)
	}

	doc := parser.Segment(string(data), version)
	doc.Path = path

	if doc.Fallback {
		slog.Warn("no article numbering detected, fell back to paragraph splitting", "file", path)
	}
	slog.Info("segmented statute", "file", path, "clauses", len(doc.Clauses), "chapters", len(doc.Chapters))

	if len(doc.Clauses) == 0 {
		return nil, fmt.Errorf("input file %s: no clause units found", path)
	}
	return doc, nil
}

func selectScorer(name string) (matcher.Scorer, error) {
	switch strings.ToLower(name) {
	case "levenshtein", "":
		return matcher.LevenshteinScorer{}, nil
	case "bigram":
		return matcher.BigramScorer{}, nil
	default:
		return nil, fmt.Errorf("unknown scorer %q (want levenshtein or bigram)", name)
	}
}
