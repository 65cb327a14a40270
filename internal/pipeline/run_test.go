package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jonathan/resume-matcher/internal/catalog"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/logger"
	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/types"
)

const resumeText = `Sara Ahmed
sara.ahmed@example.com

Experience
Senior Developer, TechCorp Dubai
Built REST APIs in Python

Skills
Python, AWS, Docker, SQL
`

func writeResume(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func assertRanked(t *testing.T, matches []types.MatchResult) {
	t.Helper()
	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].TotalScore, matches[i].TotalScore)
	}
}

func TestMatcher_Run(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	path := writeResume(t, t.TempDir(), "sara.txt", resumeText)

	m := New(catalog.Default(), Options{PreserveLineBreaks: true, Logger: zap.New(core)})

	res, err := m.Run(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, path, res.Source)
	assert.Equal(t, "Sara Ahmed", res.Profile.Name)
	assert.Equal(t, "sara.ahmed@example.com", res.Profile.Contact.Email)
	assert.Equal(t, []string{"Python", "AWS", "Docker", "SQL"}, res.Profile.Skills)
	assert.Len(t, res.Matches, ranking.DefaultTopN)
	assertRanked(t, res.Matches)
	require.NotNil(t, res.Metadata)
	assert.Equal(t, ingestion.FormatText, res.Metadata.Format)

	entries := observed.FilterMessage("matched document").All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, path, ctx[logger.FieldDocument])
	assert.NotEmpty(t, ctx[logger.FieldRunID])
	assert.EqualValues(t, ranking.DefaultTopN, ctx["matches"])
}

func TestMatcher_Run_UnsupportedFormat(t *testing.T) {
	path := writeResume(t, t.TempDir(), "sara.pdf", "%PDF-1.4")

	_, err := New(catalog.Default(), Options{}).Run(context.Background(), path)

	var formatErr *ingestion.UnsupportedFormatError
	assert.True(t, errors.As(err, &formatErr))
}

func TestMatcher_Run_CanceledContext(t *testing.T) {
	path := writeResume(t, t.TempDir(), "sara.txt", resumeText)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(catalog.Default(), Options{}).Run(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMatcher_MatchText(t *testing.T) {
	m := New(catalog.Default(), Options{TopN: 3})

	res := m.MatchText("inline", resumeText)

	assert.Equal(t, "inline", res.Source)
	assert.Len(t, res.Matches, 3)
	assert.Nil(t, res.Metadata)
	assertRanked(t, res.Matches)
}

func TestMatcher_RankOverridesTopN(t *testing.T) {
	m := New(catalog.Default(), Options{TopN: 3})
	profile := m.BuildProfile(resumeText, "")

	assert.Len(t, m.Rank(profile, 10), 10)
	assert.Len(t, m.Rank(profile, 0), 3)
}

func TestMatcher_Language(t *testing.T) {
	assert.Equal(t, types.LanguageEnglish, New(catalog.Default(), Options{}).Language())
	assert.Equal(t, types.LanguageArabic, New(catalog.Default(), Options{Language: "ar"}).Language())

	m := New(catalog.Default(), Options{Language: "ar"})
	assert.Equal(t, types.LanguageEnglish, m.BuildProfile("Sara", "en").Language)
	assert.Equal(t, types.LanguageArabic, m.BuildProfile("Sara", "").Language)
}

func TestMatcher_EmptyCatalog(t *testing.T) {
	res := New(catalog.New(nil), Options{}).MatchText("inline", resumeText)

	assert.NotNil(t, res.Matches)
	assert.Empty(t, res.Matches)
}

func TestMatcher_RunBatch_PreservesOrder(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i := 0; i < 6; i++ {
		name := fmt.Sprintf("Candidate %c", 'A'+i)
		paths = append(paths, writeResume(t, dir, fmt.Sprintf("resume_%d.txt", i), name+"\n\nSkills\nPython, SQL\n"))
	}

	var mu sync.Mutex
	steps := map[string]int{}
	m := New(catalog.Default(), Options{
		PreserveLineBreaks: true,
		OnProgress: func(e ProgressEvent) {
			mu.Lock()
			defer mu.Unlock()
			steps[e.Step]++
		},
	})

	results, err := m.RunBatch(context.Background(), paths, 3)
	require.NoError(t, err)
	require.Len(t, results, len(paths))

	for i, res := range results {
		assert.Equal(t, paths[i], res.Source)
		assert.Equal(t, fmt.Sprintf("Candidate %c", 'A'+i), res.Profile.Name)
	}
	assert.Equal(t, map[string]int{StepIngest: 6, StepParse: 6, StepRank: 6}, steps)
}

func TestMatcher_RunBatch_FailsFast(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeResume(t, dir, "ok.txt", resumeText),
		filepath.Join(dir, "missing.txt"),
	}

	results, err := New(catalog.Default(), Options{}).RunBatch(context.Background(), paths, 1)

	assert.Nil(t, results)
	var readErr *ingestion.ReadError
	assert.True(t, errors.As(err, &readErr))
}

func TestMatcher_RunBatch_Empty(t *testing.T) {
	results, err := New(catalog.Default(), Options{}).RunBatch(context.Background(), nil, 0)

	require.NoError(t, err)
	assert.Empty(t, results)
}
