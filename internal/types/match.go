package types

// FactorScores holds the four per-factor scores of a match, each in [0,1]
type FactorScores struct {
	Keyword    float64 `json:"keyword_match"`
	Title      float64 `json:"title_match"`
	Skills     float64 `json:"skills_match"`
	Experience float64 `json:"experience_match"`
}

// MatchResult is a scored pairing of a profile with one catalog posting
type MatchResult struct {
	JobID           int          `json:"job_id"`
	Posting         JobPosting   `json:"posting"`
	Scores          FactorScores `json:"factor_scores"`
	TotalScore      float64      `json:"total_score"`
	MatchPercentage float64      `json:"match_percentage"`
	MatchedSkills   []string     `json:"matched_skills"`
	Notes           string       `json:"notes"`
}
