package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseProfileRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     ParseProfileRequest
		wantErr bool
	}{
		{name: "text only", req: ParseProfileRequest{Text: "Sara Ahmed"}},
		{name: "arabic", req: ParseProfileRequest{Text: "سارة", Language: "ar"}},
		{name: "missing text", req: ParseProfileRequest{Language: "en"}, wantErr: true},
		{name: "unknown language", req: ParseProfileRequest{Text: "x", Language: "fr"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMatchRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     MatchRequest
		wantErr bool
	}{
		{name: "text", req: MatchRequest{Text: "Python developer", TopN: 3}},
		{name: "profile", req: MatchRequest{Profile: &Profile{Skills: []string{"Python"}}}},
		{name: "neither", req: MatchRequest{TopN: 3}, wantErr: true},
		{name: "negative top", req: MatchRequest{Text: "x", TopN: -1}, wantErr: true},
		{name: "top too large", req: MatchRequest{Text: "x", TopN: 101}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestJobPosting_Validate(t *testing.T) {
	valid := JobPosting{Title: "Content Writer", Company: "Digital Content Agency", Industry: "Marketing"}
	assert.NoError(t, valid.Validate())

	missing := JobPosting{Title: "Content Writer"}
	assert.Error(t, missing.Validate())
}
