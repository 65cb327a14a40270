// Package ranking scores a resume profile against job postings and orders the results.
package ranking

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// neutralExperienceScore is used when a posting states no year requirement
	neutralExperienceScore = 0.5
	// experiencePresentScore is used when the resume shows any experience phrasing
	experiencePresentScore = 0.8
	// defaultYearSpan is added to the minimum when a posting gives no maximum
	defaultYearSpan = 2
)

var (
	wordPattern       = regexp.MustCompile(`[\p{L}\p{N}_]+`)
	experiencePattern = regexp.MustCompile(`(\d+)[\-\s]*(\d+)?\s*years?`)
)

// DefaultExperienceIndicators returns the phrases taken as evidence of work experience
func DefaultExperienceIndicators() []string {
	return []string{
		"years of experience",
		"years experience",
		"worked for",
		"employed for",
		"experience in",
		"professional experience",
		"work history",
	}
}

// Scorer computes the four factor scores of a resume against a posting
type Scorer struct {
	vocab      skills.Vocabulary
	indicators []string
}

// NewScorer creates a Scorer over a skill vocabulary and experience indicator phrases
func NewScorer(vocab skills.Vocabulary, indicators []string) *Scorer {
	return &Scorer{vocab: vocab, indicators: indicators}
}

// NewDefaultScorer creates a Scorer over the built-in vocabulary and indicators
func NewDefaultScorer() *Scorer {
	return NewScorer(skills.DefaultVocabulary(), DefaultExperienceIndicators())
}

// Score computes factor scores of resumeText against posting, and returns
// the job-relevant vocabulary skills that the resume also mentions.
func (s *Scorer) Score(resumeText string, posting types.JobPosting) (types.FactorScores, []string) {
	resumeLower := strings.ToLower(resumeText)
	skillScore, matched := s.computeSkillsScore(resumeLower, posting.Requirements)

	return types.FactorScores{
		Keyword:    computeKeywordScore(resumeLower, posting.Requirements),
		Title:      computeTitleScore(resumeLower, posting.Title),
		Skills:     skillScore,
		Experience: s.computeExperienceScore(resumeLower, posting.ExperienceRange),
	}, matched
}

// computeKeywordScore is the share of requirement words found in the resume.
// Repeated words count once per occurrence.
func computeKeywordScore(resumeLower, requirements string) float64 {
	return containmentRatio(resumeLower, wordTokens(requirements))
}

// computeTitleScore is the share of title words found in the resume
func computeTitleScore(resumeLower, title string) float64 {
	return containmentRatio(resumeLower, wordTokens(title))
}

// computeSkillsScore compares vocabulary skills named in the requirements with the resume.
// A posting naming no vocabulary skill scores 0.
func (s *Scorer) computeSkillsScore(resumeLower, requirements string) (float64, []string) {
	jobSkills := s.vocab.Find(requirements)
	if len(jobSkills) == 0 {
		return 0.0, []string{}
	}
	matched := skills.Intersect(jobSkills, resumeLower)
	return float64(len(matched)) / float64(len(jobSkills)), matched
}

// computeExperienceScore gives a neutral score when no year requirement is
// stated, otherwise a flat score if the resume uses any experience phrasing.
// The parsed year bounds are not compared with the resume.
func (s *Scorer) computeExperienceScore(resumeLower, experienceRange string) float64 {
	if _, _, ok := ParseExperienceRange(experienceRange); !ok {
		return neutralExperienceScore
	}
	for _, indicator := range s.indicators {
		if indicator != "" && strings.Contains(resumeLower, strings.ToLower(indicator)) {
			return experiencePresentScore
		}
	}
	return 0.0
}

// ParseExperienceRange reads "<min>[-<max>] years" from text. When no maximum
// is given it is min plus two years.
func ParseExperienceRange(text string) (minYears, maxYears int, ok bool) {
	m := experiencePattern.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return 0, 0, false
	}
	lo, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, false
	}
	hi := lo + defaultYearSpan
	if m[2] != "" {
		if v, err := strconv.Atoi(m[2]); err == nil {
			hi = v
		}
	}
	return lo, hi, true
}

// wordTokens returns every lower-case word token of text in order, repeats included
func wordTokens(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

// containmentRatio is the share of tokens that occur as substrings of resumeLower
func containmentRatio(resumeLower string, tokens []string) float64 {
	if len(tokens) == 0 {
		return 0.0
	}
	matches := 0
	for _, token := range tokens {
		if strings.Contains(resumeLower, token) {
			matches++
		}
	}
	return float64(matches) / float64(len(tokens))
}
