package db

import "github.com/jonathan/resume-matcher/internal/types"

// CatalogRow is one job_catalog row. Optional columns may be NULL.
type CatalogRow struct {
	Title           string  `db:"title"`
	Company         string  `db:"company"`
	Location        *string `db:"location"`
	SalaryRange     *string `db:"salary_range"`
	ExperienceRange *string `db:"experience_range"`
	Description     *string `db:"description"`
	Requirements    *string `db:"requirements"`
	JobType         *string `db:"job_type"`
	Industry        string  `db:"industry"`
}

// ToPosting converts the row, mapping NULL columns to empty strings.
func (r CatalogRow) ToPosting() types.JobPosting {
	return types.JobPosting{
		Title:           r.Title,
		Company:         r.Company,
		Location:        deref(r.Location),
		SalaryRange:     deref(r.SalaryRange),
		ExperienceRange: deref(r.ExperienceRange),
		Description:     deref(r.Description),
		Requirements:    deref(r.Requirements),
		JobType:         deref(r.JobType),
		Industry:        r.Industry,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
