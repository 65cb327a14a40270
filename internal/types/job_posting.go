package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// JobPosting is a single entry of the job catalog
type JobPosting struct {
	Title           string `json:"title" validate:"required"`
	Company         string `json:"company" validate:"required"`
	Location        string `json:"location"`
	SalaryRange     string `json:"salary_range"`
	ExperienceRange string `json:"experience_range"`
	Description     string `json:"description"`
	Requirements    string `json:"requirements"`
	JobType         string `json:"job_type"`
	Industry        string `json:"industry" validate:"required"`
}

// CombinedText joins the searchable text of a posting with single spaces
func (p JobPosting) CombinedText() string {
	return strings.Join([]string{p.Title, p.Description, p.Requirements, p.Company}, " ")
}

// Validate checks that the posting carries the fields the catalog requires.
func (p *JobPosting) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}
