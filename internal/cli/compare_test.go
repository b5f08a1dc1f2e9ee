package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leommxj/LawComparator/internal/models"
	"github.com/leommxj/LawComparator/internal/report"
)

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// execute runs the root command with a clean flag state. The flag-bound
// package globals keep their values across Execute calls, so consecutive
// runs would otherwise see each other's flags.
func execute(t *testing.T, args ...string) error {
	t.Helper()

	compareOverrides = ""
	compareThreshold = 0
	compareScorer = "levenshtein"
	compareHTMLOut = "comparison.html"
	compareJSONOut = "comparison.json"
	compareNoHTML = false
	compareNoJSON = false
	matchFrom = ""
	matchOutput = "overrides.json"
	parseOutput = ""
	parsePreview = 3
	parseForce = false

	for _, c := range []*cobra.Command{compareCmd, matchCmd, parseCmd} {
		c.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	}

	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestCompareCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LAWCMP_LOG_FILE", filepath.Join(dir, "lawcmp.log"))

	oldPath := writeInput(t, dir, "old.txt",
		"第一条 禁止不正当竞争\n\n第二条 经营者应当遵守\n\n第五条 仅旧版独有的内容条款")
	newPath := writeInput(t, dir, "new.txt",
		"第一条 禁止不正当竞争行为\n\n第三条 经营者应当遵守原则")

	htmlPath := filepath.Join(dir, "report.html")
	artifactPath := filepath.Join(dir, "artifact.json")

	require.NoError(t, execute(t,
		"compare", oldPath, newPath,
		"-o", htmlPath, "--artifact", artifactPath,
	))

	// HTML report exists
	html, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	assert.Contains(t, string(html), "第一条")

	// Artifact covers every unit exactly once
	artifact, err := report.LoadArtifact(artifactPath)
	require.NoError(t, err)

	seenOld := make(map[int]bool)
	seenNew := make(map[int]bool)
	for _, r := range artifact.Records {
		if r.OldIndex != nil {
			assert.False(t, seenOld[*r.OldIndex])
			seenOld[*r.OldIndex] = true
		}
		if r.NewIndex != nil {
			assert.False(t, seenNew[*r.NewIndex])
			seenNew[*r.NewIndex] = true
		}
	}
	assert.Len(t, seenOld, 3)
	assert.Len(t, seenNew, 2)

	// 第五条 has no counterpart and no override, so it ends up deleted;
	// 第二条↔第三条 pair up on text overlap despite the renumbering
	assert.Equal(t, 1, artifact.Stats.Deleted)
	assert.Equal(t, 2, artifact.Stats.Identical+artifact.Stats.Modified)
}

func TestCompareCommandBadOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LAWCMP_LOG_FILE", filepath.Join(dir, "lawcmp.log"))

	oldPath := writeInput(t, dir, "old.txt", "第一条 内容甲")
	newPath := writeInput(t, dir, "new.txt", "第一条 内容甲")
	overrides := writeInput(t, dir, "overrides.json",
		`{"manual_matches": [{"old_index": 42, "new_index": 0}]}`)

	err := execute(t,
		"compare", oldPath, newPath,
		"-m", overrides, "--no-html", "--no-json",
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "old_index 42")
	assert.Contains(t, err.Error(), overrides)
}

func TestCompareCommandFlagIsolation(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LAWCMP_LOG_FILE", filepath.Join(dir, "lawcmp.log"))

	oldPath := writeInput(t, dir, "old.txt", "第一条 内容甲")
	newPath := writeInput(t, dir, "new.txt", "第一条 内容甲")
	overrides := writeInput(t, dir, "overrides.json",
		`{"manual_matches": [{"old_index": 0, "new_index": 0}]}`)

	first := filepath.Join(dir, "first.json")
	require.NoError(t, execute(t,
		"compare", oldPath, newPath,
		"-m", overrides, "--artifact", first, "--no-html",
	))
	artifact, err := report.LoadArtifact(first)
	require.NoError(t, err)
	require.Equal(t, 1, artifact.Stats.Manual)

	// A later run without -m must not reuse the previous override file
	second := filepath.Join(dir, "second.json")
	require.NoError(t, execute(t,
		"compare", oldPath, newPath,
		"--artifact", second, "--no-html",
	))
	artifact, err = report.LoadArtifact(second)
	require.NoError(t, err)
	assert.Equal(t, 0, artifact.Stats.Manual)
}

func TestCompareCommandMissingInput(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LAWCMP_LOG_FILE", filepath.Join(dir, "lawcmp.log"))

	missing := filepath.Join(dir, "missing.txt")
	newPath := writeInput(t, dir, "new.txt", "第一条 内容甲")

	err := execute(t, "compare", missing, newPath, "--no-html", "--no-json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), missing)
}

func TestSelectScorer(t *testing.T) {
	s, err := selectScorer("levenshtein")
	require.NoError(t, err)
	assert.NotNil(t, s)

	s, err = selectScorer("bigram")
	require.NoError(t, err)
	assert.NotNil(t, s)

	_, err = selectScorer("embedding")
	assert.ErrorContains(t, err, "unknown scorer")
}

func TestSegmentFileFallbackWarns(t *testing.T) {
	dir := t.TempDir()
	path := writeInput(t, dir, "plain.txt", "没有条文编号的一段。\n\n另一段普通文字。")

	doc, err := segmentFile(path, models.VersionOld)
	require.NoError(t, err)
	assert.True(t, doc.Fallback)
	assert.Len(t, doc.Clauses, 2)
}
