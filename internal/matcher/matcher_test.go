package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leommxj/LawComparator/internal/models"
	"github.com/leommxj/LawComparator/internal/parser"
)

func segment(t *testing.T, version models.Version, text string) []models.ClauseUnit {
	t.Helper()
	doc := parser.Segment(text, version)
	require.NotEmpty(t, doc.Clauses)
	return doc.Clauses
}

func TestMatchRevisedStatute(t *testing.T) {
	old := segment(t, models.VersionOld, "第一条 禁止不正当竞争\n\n第二条 经营者应当遵守")
	new := segment(t, models.VersionNew, "第一条 禁止不正当竞争行为\n\n第三条 经营者应当遵守原则")

	m := New(0.5)
	res := m.Match(old, new)

	require.Len(t, res.Candidates, 2)
	assert.Empty(t, res.UnmatchedOld)
	assert.Empty(t, res.UnmatchedNew)

	// 第一条↔第一条 via equal labels, 第二条↔第三条 via text overlap
	first := res.Candidates[0]
	assert.Equal(t, 0, first.OldIndex)
	assert.Equal(t, 0, first.NewIndex)
	assert.True(t, first.LabelMatch)

	second := res.Candidates[1]
	assert.Equal(t, 1, second.OldIndex)
	assert.Equal(t, 1, second.NewIndex)
	assert.False(t, second.LabelMatch)
	assert.Greater(t, second.Score, 0.5)
}

func TestMatchLabelBeatsScore(t *testing.T) {
	// Equal labels with completely different bodies must still pair up
	old := []models.ClauseUnit{
		{Index: 0, Label: 5, Body: "甲方的全部原始内容", Version: models.VersionOld},
	}
	new := []models.ClauseUnit{
		{Index: 0, Label: 5, Body: "改头换面毫无相似之处", Version: models.VersionNew},
	}

	m := New(0.5)
	res := m.Match(old, new)

	require.Len(t, res.Candidates, 1)
	assert.True(t, res.Candidates[0].LabelMatch)
	assert.Empty(t, res.UnmatchedOld)
	assert.Empty(t, res.UnmatchedNew)
}

func TestMatchLabelDisabled(t *testing.T) {
	old := []models.ClauseUnit{
		{Index: 0, Label: 5, Body: "甲方的全部原始内容", Version: models.VersionOld},
	}
	new := []models.ClauseUnit{
		{Index: 0, Label: 5, Body: "改头换面毫无相似之处", Version: models.VersionNew},
	}

	m := New(0.5)
	m.LabelMatching = false
	res := m.Match(old, new)

	assert.Empty(t, res.Candidates)
	assert.Equal(t, []int{0}, res.UnmatchedOld)
	assert.Equal(t, []int{0}, res.UnmatchedNew)
}

func TestMatchBelowThresholdUnmatched(t *testing.T) {
	old := []models.ClauseUnit{
		{Index: 0, Body: "经营者不得实施混淆行为", Version: models.VersionOld},
	}
	new := []models.ClauseUnit{
		{Index: 0, Body: "完全无关的一段新增文字", Version: models.VersionNew},
	}

	m := New(0.5)
	res := m.Match(old, new)

	assert.Empty(t, res.Candidates, "low-similarity pair must not be forced")
	assert.Equal(t, []int{0}, res.UnmatchedOld)
	assert.Equal(t, []int{0}, res.UnmatchedNew)
}

func TestMatchTieBreaksByProximity(t *testing.T) {
	// Two identical old bodies compete for two identical new bodies; the
	// proximity tie-break must keep the sequence order stable.
	body := "经营者应当依法经营"
	old := []models.ClauseUnit{
		{Index: 0, Body: body, Version: models.VersionOld},
		{Index: 1, Body: body, Version: models.VersionOld},
	}
	new := []models.ClauseUnit{
		{Index: 0, Body: body, Version: models.VersionNew},
		{Index: 1, Body: body, Version: models.VersionNew},
	}

	m := New(0.5)
	res := m.Match(old, new)

	require.Len(t, res.Candidates, 2)
	assert.Equal(t, 0, res.Candidates[0].NewIndex)
	assert.Equal(t, 1, res.Candidates[1].NewIndex)
}

func TestMatchDeterministic(t *testing.T) {
	old := segment(t, models.VersionOld,
		"第一条 禁止混淆行为\n\n第二条 禁止商业贿赂\n\n第三条 禁止虚假宣传")
	new := segment(t, models.VersionNew,
		"第一条 禁止混淆行为等\n\n第二条 禁止商业贿赂行为\n\n第四条 禁止虚假的宣传")

	m := New(0.5)
	first := m.Match(old, new)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, m.Match(old, new), "identical inputs must yield identical results")
	}
}

func TestMatchAmbiguousLabelFallsToScoring(t *testing.T) {
	// Duplicate label on the new side: label phase must not guess
	old := []models.ClauseUnit{
		{Index: 0, Label: 2, Body: "经营者应当诚实守信依法经营", Version: models.VersionOld},
	}
	new := []models.ClauseUnit{
		{Index: 0, Label: 2, Body: "完全无关的内容甲乙丙丁", Version: models.VersionNew},
		{Index: 1, Label: 2, Body: "经营者应当诚实守信依法地经营", Version: models.VersionNew},
	}

	m := New(0.5)
	res := m.Match(old, new)

	require.Len(t, res.Candidates, 1)
	assert.Equal(t, 1, res.Candidates[0].NewIndex, "scoring should pick the similar duplicate")
	assert.False(t, res.Candidates[0].LabelMatch)
}
