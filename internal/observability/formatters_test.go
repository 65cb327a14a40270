package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/catalog"
	"github.com/jonathan/resume-matcher/internal/types"
)

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfile(&types.Profile{
		Name:       "Sara Ahmed",
		Contact:    types.ContactInfo{Email: "sara@example.com"},
		Experience: []types.ExperienceEntry{{Title: "Senior Developer"}},
		Skills:     []string{"Python", "AWS"},
		Language:   types.LanguageEnglish,
	})
	output := buf.String()

	assert.Contains(t, output, "EXTRACTED PROFILE")
	assert.Contains(t, output, "Sara Ahmed")
	assert.Contains(t, output, "sara@example.com")
	assert.Contains(t, output, "Phone:    (none)")
	assert.Contains(t, output, "Experience (1):")
	assert.Contains(t, output, "Senior Developer")
	assert.Contains(t, output, "Skills: Python, AWS")
	assert.NotContains(t, output, "Education")
}

func TestPrintProfile_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintProfile(nil)

	assert.Empty(t, buf.String())
}

func TestPrintProfile_TruncatesEntries(t *testing.T) {
	var buf bytes.Buffer
	entries := make([]types.Entry, 7)
	for i := range entries {
		entries[i] = types.Entry{Title: "Manager"}
	}

	NewPrinter(&buf).PrintProfile(&types.Profile{Experience: entries})

	assert.Contains(t, buf.String(), "... and 2 more")
}

func TestPrintMatches(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	err := p.PrintMatches([]types.MatchResult{
		{
			JobID:           0,
			Posting:         types.JobPosting{Title: "Senior Software Engineer", Company: "TechCorp Dubai"},
			MatchPercentage: 65.8,
			MatchedSkills:   []string{"Python", "AWS"},
		},
	})
	require.NoError(t, err)
	output := buf.String()

	assert.Contains(t, output, "Senior Software Engineer")
	assert.Contains(t, output, "TechCorp Dubai")
	assert.Contains(t, output, "65.8%")
	assert.Contains(t, output, "Fair")
	assert.Contains(t, output, "Python, AWS")
}

func TestPrintMatches_Empty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewPrinter(&buf).PrintMatches(nil))
	assert.Equal(t, "No matching jobs.\n", buf.String())
}

func TestPrintListings(t *testing.T) {
	var buf bytes.Buffer

	err := NewPrinter(&buf).PrintListings(catalog.Default().FilterByIndustry("Marketing"))
	require.NoError(t, err)
	output := buf.String()

	assert.Contains(t, output, "Marketing Manager")
	assert.Contains(t, output, "Content Writer")
	assert.Contains(t, output, "AED 8,000 - 12,000")
}

func TestPrintPosting(t *testing.T) {
	var buf bytes.Buffer
	posting, ok := catalog.Default().Get(1)
	require.True(t, ok)

	NewPrinter(&buf).PrintPosting(1, posting)
	output := buf.String()

	assert.Contains(t, output, "#1 Data Scientist")
	assert.Contains(t, output, "DataFlow Analytics")
	assert.Contains(t, output, "Requirements:")
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		assert.Equal(t, boxWidth, len([]rune(line)), line)
	}
}

func TestWrap(t *testing.T) {
	assert.Equal(t, "one two\nthree", wrap("one two three", 8))
	assert.Equal(t, "", wrap("", 10))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}
