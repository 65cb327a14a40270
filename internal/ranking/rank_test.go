package ranking

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-matcher/internal/catalog"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seniorDeveloperProfile() *types.Profile {
	return &types.Profile{
		Experience: []types.ExperienceEntry{{Title: "Senior Developer"}},
		Skills:     []string{"Python", "AWS"},
	}
}

func TestWeights_SumToOne(t *testing.T) {
	assert.Equal(t, basisPoints, keywordWeightBP+titleWeightBP+skillsWeightBP+experienceWeightBP)
	assert.Equal(t, 1.0, TotalScore(types.FactorScores{Keyword: 1, Title: 1, Skills: 1, Experience: 1}))
	assert.InDelta(t, 0.40, KeywordWeight, 1e-12)
	assert.InDelta(t, 0.20, TitleWeight, 1e-12)
	assert.InDelta(t, 0.25, SkillsWeight, 1e-12)
	assert.InDelta(t, 0.15, ExperienceWeight, 1e-12)
}

func TestTotalScore_Clamped(t *testing.T) {
	assert.Equal(t, 1.0, TotalScore(types.FactorScores{Keyword: 2, Title: 2, Skills: 2, Experience: 2}))
	assert.Equal(t, 0.0, TotalScore(types.FactorScores{Keyword: -1}))
	assert.Equal(t, 0.0, TotalScore(types.FactorScores{}))
}

func TestMatchPercentage(t *testing.T) {
	assert.Equal(t, 100.0, MatchPercentage(1.0))
	assert.Equal(t, 0.0, MatchPercentage(0.0))
	assert.Equal(t, 65.8, MatchPercentage(0.6583333333333333))
	assert.Equal(t, 70.3, MatchPercentage(0.7033333333333333))
}

func TestScoreBand(t *testing.T) {
	assert.Equal(t, "Excellent", ScoreBand(85))
	assert.Equal(t, "Good", ScoreBand(70))
	assert.Equal(t, "Fair", ScoreBand(50))
	assert.Equal(t, "Poor", ScoreBand(49.9))
}

func TestResumeText(t *testing.T) {
	profile := &types.Profile{
		Name:       "A",
		Summary:    "B",
		Skills:     []string{"C", "D"},
		Experience: []types.ExperienceEntry{{Title: "E", Description: "F"}},
		Education:  []types.EducationEntry{{Title: "G"}},
		Projects:   []types.ProjectEntry{{Title: "H", Description: "I"}},
		RawText:    "J",
	}

	assert.Equal(t, "A B C D E F G  H I J", ResumeText(profile))
	assert.Equal(t, "", ResumeText(nil))
}

func TestRanker_SeniorDeveloperScenario(t *testing.T) {
	r := NewRanker(NewScorer(skills.Vocabulary{"python", "aws"}, DefaultExperienceIndicators()))
	postings := []types.JobPosting{{
		Title:        "Senior Software Engineer",
		Company:      "TechCorp Dubai",
		Requirements: "Python, AWS, Docker",
		Industry:     "Technology",
	}}

	results := r.Rank(seniorDeveloperProfile(), postings, 5)

	require.Len(t, results, 1)
	res := results[0]
	assert.Equal(t, 0, res.JobID)
	assert.InDelta(t, 0.667, res.Scores.Keyword, 0.001)
	assert.InDelta(t, 1.0, res.Scores.Skills, 0.001)
	assert.InDelta(t, 1.0/3.0, res.Scores.Title, 0.001)
	assert.InDelta(t, 0.6583, res.TotalScore, 0.0001)
	assert.Equal(t, 65.8, res.MatchPercentage)
	assert.Equal(t, []string{"Python", "AWS"}, res.MatchedSkills)
	assert.Equal(t, "Fair match (65.8%). Strong skill match (Python, AWS). Good keyword overlap. Title overlap", res.Notes)
}

func TestRanker_DefaultCatalogProperties(t *testing.T) {
	r := NewDefaultRanker()
	postings := catalog.Default().Entries()
	profile := seniorDeveloperProfile()

	for _, topN := range []int{1, 3, 5, 10, 50} {
		results := r.Rank(profile, postings, topN)

		assert.LessOrEqual(t, len(results), min(topN, len(postings)))
		for i, res := range results {
			for _, f := range []float64{res.Scores.Keyword, res.Scores.Title, res.Scores.Skills, res.Scores.Experience, res.TotalScore} {
				assert.GreaterOrEqual(t, f, 0.0)
				assert.LessOrEqual(t, f, 1.0)
			}
			if i > 0 {
				assert.GreaterOrEqual(t, results[i-1].TotalScore, res.TotalScore)
			}
		}
	}
}

func TestRanker_SoftwareEngineerRanksFirst(t *testing.T) {
	results := NewDefaultRanker().Rank(seniorDeveloperProfile(), catalog.Default().Entries(), 3)

	require.NotEmpty(t, results)
	assert.Equal(t, "Senior Software Engineer", results[0].Posting.Title)
}

func TestRanker_DefaultTopN(t *testing.T) {
	postings := catalog.Default().Entries()

	assert.Len(t, NewDefaultRanker().Rank(seniorDeveloperProfile(), postings, 0), DefaultTopN)
	assert.Len(t, NewDefaultRanker().Rank(seniorDeveloperProfile(), postings, -3), DefaultTopN)
}

func TestRanker_TiesKeepCatalogOrder(t *testing.T) {
	posting := types.JobPosting{Title: "Chef", Requirements: "Cooking"}
	postings := []types.JobPosting{posting, posting, posting}

	results := NewDefaultRanker().Rank(seniorDeveloperProfile(), postings, 5)

	require.Len(t, results, 3)
	for i, res := range results {
		assert.Equal(t, i, res.JobID)
	}
}

func TestRanker_EmptyCatalog(t *testing.T) {
	results := NewDefaultRanker().Rank(seniorDeveloperProfile(), nil, 5)

	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestRanker_EmptyProfile(t *testing.T) {
	results := NewDefaultRanker().Rank(&types.Profile{}, catalog.Default().Entries(), 10)

	require.Len(t, results, 10)
	for _, res := range results {
		assert.Equal(t, 0.0, res.Scores.Keyword)
		assert.Equal(t, 0.0, res.Scores.Skills)
		assert.True(t, strings.HasSuffix(res.Notes, "No skill matches"), res.Notes)
	}
}
