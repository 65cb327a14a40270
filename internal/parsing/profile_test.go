package parsing

import (
	"testing"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Sara Ahmed
sara.ahmed@example.com | +971 50 123 4567
linkedin.com/in/sara-ahmed

Summary
Backend developer building payment systems.

Experience
Senior Developer, TechCorp Dubai
Built REST APIs in Python
Lead Engineer, PayNow
Migrated services to AWS

Education
Bachelor of Computer Science
American University of Sharjah

Skills
Python, AWS, Docker, SQL

Languages
English, Arabic
`

func TestBuilder_Build_PreservedLines(t *testing.T) {
	b := NewDefaultBuilder(WithPreserveLineBreaks(true))

	profile := b.Build(sampleResume, "en")

	assert.Equal(t, "Sara Ahmed", profile.Name)
	assert.Equal(t, types.ContactInfo{
		Email:  "sara.ahmed@example.com",
		Phone:  "+971 50 123 4567",
		Social: "linkedin.com/in/sara-ahmed",
	}, profile.Contact)
	assert.Equal(t, "Backend developer building payment systems.", profile.Summary)

	require.Len(t, profile.Experience, 2)
	assert.Equal(t, types.ExperienceEntry{Title: "Senior Developer, TechCorp Dubai", Description: "Built REST APIs in Python"}, profile.Experience[0])
	assert.Equal(t, types.ExperienceEntry{Title: "Lead Engineer, PayNow", Description: "Migrated services to AWS"}, profile.Experience[1])

	require.Len(t, profile.Education, 1)
	assert.Equal(t, "Bachelor of Computer Science", profile.Education[0].Title)
	assert.Equal(t, "American University of Sharjah", profile.Education[0].Description)

	assert.Equal(t, []string{"Python", "AWS", "Docker", "SQL"}, profile.Skills)
	assert.Equal(t, []string{"English", "Arabic"}, profile.Languages)
	assert.Empty(t, profile.Certifications)
	assert.Empty(t, profile.Projects)
	assert.Equal(t, types.LanguageEnglish, profile.Language)
	assert.Contains(t, profile.RawText, "Senior Developer, TechCorp Dubai\nBuilt REST APIs in Python")
}

func TestBuilder_Build_CollapsedByDefault(t *testing.T) {
	profile := NewDefaultBuilder().Build(sampleResume, "en")

	assert.NotContains(t, profile.RawText, "\n")
	// the whole document is one line of more than four words
	assert.Empty(t, profile.Name)
	// contact details are read before the allow-list strips '@' and '+'
	assert.Equal(t, "sara.ahmed@example.com", profile.Contact.Email)
	assert.Equal(t, "+971 50 123 4567", profile.Contact.Phone)
	// without line breaks a list section runs to the end of the text
	assert.Equal(t, []string{"Python", "AWS", "Docker", "SQL Languages English", "Arabic"}, profile.Skills)
	assert.Len(t, profile.Experience, 1)
}

func TestBuilder_Build_Idempotent(t *testing.T) {
	b := NewDefaultBuilder(WithPreserveLineBreaks(true))

	first := b.Build(sampleResume, "en")
	second := b.Build(sampleResume, "en")

	assert.Equal(t, first, second)
}

func TestBuilder_Build_NoContactPatterns(t *testing.T) {
	profile := NewDefaultBuilder().Build("Just some words here", "en")

	assert.True(t, profile.Contact.IsEmpty())
	assert.Equal(t, "Just some words here", profile.Name)
	assert.Empty(t, profile.Summary)
	assert.NotNil(t, profile.Experience)
	assert.NotNil(t, profile.Skills)
}

func TestBuilder_Build_EmptyText(t *testing.T) {
	profile := NewDefaultBuilder().Build("", "en")

	assert.Empty(t, profile.Name)
	assert.Empty(t, profile.RawText)
	assert.Empty(t, profile.Experience)
	assert.Empty(t, profile.Skills)
}

func TestBuilder_Build_Arabic(t *testing.T) {
	text := "أحمد علي\nالمهارات: بايثون, جافا\n"

	profile := NewDefaultBuilder(WithPreserveLineBreaks(true)).Build(text, "ar")

	assert.Equal(t, "أحمد علي", profile.Name)
	assert.Equal(t, []string{"بايثون", "جافا"}, profile.Skills)
	assert.Equal(t, types.LanguageArabic, profile.Language)
}

func TestBuilder_Build_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	profile := NewDefaultBuilder().Build("Skills: Go, Rust", "fr")

	assert.Equal(t, types.LanguageEnglish, profile.Language)
	assert.Equal(t, []string{"Go", "Rust"}, profile.Skills)
}

func TestBuilder_CustomVocabulary(t *testing.T) {
	vocab := Vocabulary{
		Headers: map[string]map[Section][]string{
			"en": {SectionExperience: {"roles"}},
		},
		Triggers: map[Section][]string{
			SectionExperience: {"barista"},
		},
	}

	profile := NewBuilder(vocab, WithPreserveLineBreaks(true)).Build("Roles\nHead Barista\nLatte art", "en")

	require.Len(t, profile.Experience, 1)
	assert.Equal(t, types.Entry{Title: "Head Barista", Description: "Latte art"}, profile.Experience[0])
	// no blacklist configured, so the first short line is the name
	assert.Equal(t, "Roles", profile.Name)
}

func TestResolveLanguage(t *testing.T) {
	assert.Equal(t, "ar", ResolveLanguage("ar"))
	assert.Equal(t, "en", ResolveLanguage("en"))
	assert.Equal(t, "en", ResolveLanguage(""))
	assert.Equal(t, "en", ResolveLanguage("fr"))
}
