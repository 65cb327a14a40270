package ranking

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
)

// DefaultTopN is the number of results returned when the caller asks for none
const DefaultTopN = 5

// Factor weights in basis points; they sum to exactly basisPoints
const (
	keywordWeightBP    = 4000
	titleWeightBP      = 2000
	skillsWeightBP     = 2500
	experienceWeightBP = 1500
	basisPoints        = 10000
)

// Factor weights as fractions of the total score
const (
	KeywordWeight    = float64(keywordWeightBP) / basisPoints
	TitleWeight      = float64(titleWeightBP) / basisPoints
	SkillsWeight     = float64(skillsWeightBP) / basisPoints
	ExperienceWeight = float64(experienceWeightBP) / basisPoints
)

// Ranker orders catalog postings by how well they fit a profile
type Ranker struct {
	scorer *Scorer
}

// NewRanker creates a Ranker using scorer
func NewRanker(scorer *Scorer) *Ranker {
	return &Ranker{scorer: scorer}
}

// NewDefaultRanker creates a Ranker over the built-in vocabulary
func NewDefaultRanker() *Ranker {
	return NewRanker(NewDefaultScorer())
}

// Rank scores profile against every posting and returns the best topN,
// highest score first. Equal scores keep catalog order. The job ID of a
// result is the posting's index in postings.
func (r *Ranker) Rank(profile *types.Profile, postings []types.JobPosting, topN int) []types.MatchResult {
	if topN <= 0 {
		topN = DefaultTopN
	}
	if len(postings) == 0 {
		return []types.MatchResult{}
	}

	resumeText := ResumeText(profile)
	results := make([]types.MatchResult, 0, len(postings))
	for id, posting := range postings {
		scores, matched := r.scorer.Score(resumeText, posting)
		total := TotalScore(scores)
		percentage := MatchPercentage(total)
		display := skills.DisplayNames(matched)

		results = append(results, types.MatchResult{
			JobID:           id,
			Posting:         posting,
			Scores:          scores,
			TotalScore:      total,
			MatchPercentage: percentage,
			MatchedSkills:   display,
			Notes:           generateNotes(scores, display, percentage),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TotalScore > results[j].TotalScore
	})

	if len(results) > topN {
		results = results[:topN]
	}
	return results
}

// TotalScore is the weighted sum of the factor scores, clamped to [0,1]
func TotalScore(f types.FactorScores) float64 {
	total := (f.Keyword*keywordWeightBP +
		f.Title*titleWeightBP +
		f.Skills*skillsWeightBP +
		f.Experience*experienceWeightBP) / basisPoints

	if total > 1.0 {
		total = 1.0
	}
	if total < 0.0 {
		total = 0.0
	}
	return total
}

// MatchPercentage converts a total score to a percentage rounded to one decimal place
func MatchPercentage(total float64) float64 {
	return math.Round(total*1000) / 10
}

// Score bands returned by ScoreBand.
const (
	BandExcellent = "Excellent"
	BandGood      = "Good"
	BandFair      = "Fair"
	BandPoor      = "Poor"
)

// ScoreBand names the quality band of a match percentage
func ScoreBand(percentage float64) string {
	switch {
	case percentage >= 85:
		return BandExcellent
	case percentage >= 70:
		return BandGood
	case percentage >= 50:
		return BandFair
	default:
		return BandPoor
	}
}

// ResumeText joins the extracted profile fields and the raw text into the
// single string the factor scores search.
func ResumeText(p *types.Profile) string {
	if p == nil {
		return ""
	}

	parts := make([]string, 0, 8)
	if p.Name != "" {
		parts = append(parts, p.Name)
	}
	if p.Summary != "" {
		parts = append(parts, p.Summary)
	}
	parts = append(parts, p.Skills...)
	for _, entries := range [][]types.Entry{p.Experience, p.Education, p.Projects} {
		for _, e := range entries {
			parts = append(parts, e.Title, e.Description)
		}
	}
	if p.RawText != "" {
		parts = append(parts, p.RawText)
	}
	return strings.Join(parts, " ")
}

// generateNotes creates a brief explanation of a match.
func generateNotes(scores types.FactorScores, matchedSkills []string, percentage float64) string {
	parts := []string{fmt.Sprintf("%s match (%.1f%%)", ScoreBand(percentage), percentage)}

	if len(matchedSkills) > 0 {
		if scores.Skills >= 0.7 {
			parts = append(parts, fmt.Sprintf("Strong skill match (%s)", strings.Join(matchedSkills, ", ")))
		} else if scores.Skills >= 0.4 {
			parts = append(parts, fmt.Sprintf("Moderate skill match (%s)", strings.Join(matchedSkills, ", ")))
		} else {
			parts = append(parts, fmt.Sprintf("Weak skill match (%s)", strings.Join(matchedSkills, ", ")))
		}
	} else {
		parts = append(parts, "No skill matches")
	}

	if scores.Keyword >= 0.5 {
		parts = append(parts, "Good keyword overlap")
	} else if scores.Keyword > 0 {
		parts = append(parts, "Some keyword overlap")
	}

	if scores.Title > 0 {
		parts = append(parts, "Title overlap")
	}

	return strings.Join(parts, ". ")
}
