package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leommxj/LawComparator/internal/models"
)

var (
	parseOutput  string
	parsePreview int
	parseForce   bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Segment a statute file into structured clause units",
	Long: `Parse segments one statute text file into chapters, sections, and
articles and writes the structure as JSON, for inspecting how the
segmenter read an input before comparing.

Examples:
  lawcmp parse law.txt
  lawcmp parse law.txt -o parsed.json --preview 5 -f`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "", "output JSON path (default parsed_<file>.json)")
	parseCmd.Flags().IntVar(&parsePreview, "preview", 3, "print the first N clause units")
	parseCmd.Flags().BoolVarP(&parseForce, "force", "f", false, "overwrite an existing output file")
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]

	doc, err := segmentFile(path, models.VersionOld)
	if err != nil {
		return err
	}

	out := parseOutput
	if out == "" {
		out = "parsed_" + baseNameNoExt(path) + ".json"
	}
	if _, err := os.Stat(out); err == nil && !parseForce {
		return fmt.Errorf("output file %s already exists (use --force to overwrite)", out)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode parsed structure: %w", err)
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		return fmt.Errorf("write parsed structure %s: %w", out, err)
	}

	fmt.Printf("Parsed %d clauses, %d chapters, %d sections\n",
		len(doc.Clauses), len(doc.Chapters), len(doc.Sections))

	for i, c := range doc.Clauses {
		if i >= parsePreview {
			break
		}
		body := []rune(c.Body)
		if len(body) > 60 {
			body = body[:60]
		}
		label := c.LabelText
		if label == "" {
			label = fmt.Sprintf("#%d", c.Index)
		}
		fmt.Printf("  %s: %s\n", label, string(body))
	}

	fmt.Printf("Structure written to %s\n", out)
	return nil
}

func baseNameNoExt(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
