package types

import "github.com/go-playground/validator/v10"

// ParseProfileRequest asks for resume text to be turned into a Profile.
type ParseProfileRequest struct {
	Text     string `json:"text" validate:"required"`
	Language string `json:"language,omitempty" validate:"omitempty,oneof=en ar"`
}

// MatchRequest asks for a ranking of the catalog against a resume. Either
// raw text or an already built profile must be supplied.
type MatchRequest struct {
	Text     string   `json:"text,omitempty" validate:"required_without=Profile"`
	Profile  *Profile `json:"profile,omitempty"`
	Language string   `json:"language,omitempty" validate:"omitempty,oneof=en ar"`
	TopN     int      `json:"top_n,omitempty" validate:"gte=0,lte=100"`
}

// MatchResponse carries ranked results for a MatchRequest.
type MatchResponse struct {
	Profile *Profile      `json:"profile"`
	Matches []MatchResult `json:"matches"`
}

// Validate validates the ParseProfileRequest using the validator.
func (r *ParseProfileRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the MatchRequest using the validator.
func (r *MatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
