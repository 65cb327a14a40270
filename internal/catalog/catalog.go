// Package catalog holds the read-only set of job postings a profile is ranked against.
package catalog

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// DefaultSearchLimit caps Search results when the caller passes no limit.
const DefaultSearchLimit = 5

// Catalog is an ordered, immutable list of job postings. A posting's ID is
// its position in the list. A Catalog is safe for concurrent readers.
type Catalog struct {
	postings []types.JobPosting
	combined []string
}

// Listing is a posting together with its catalog ID.
type Listing struct {
	ID int `json:"job_id"`
	types.JobPosting
}

// New builds a catalog from postings. The slice is copied.
func New(postings []types.JobPosting) *Catalog {
	c := &Catalog{
		postings: make([]types.JobPosting, len(postings)),
		combined: make([]string, len(postings)),
	}
	copy(c.postings, postings)
	for i, p := range c.postings {
		c.combined[i] = p.CombinedText()
	}
	return c
}

// Len returns the number of postings.
func (c *Catalog) Len() int {
	return len(c.postings)
}

// Get returns the posting with the given ID.
func (c *Catalog) Get(id int) (types.JobPosting, bool) {
	if id < 0 || id >= len(c.postings) {
		return types.JobPosting{}, false
	}
	return c.postings[id], true
}

// Entries returns a copy of all postings in catalog order.
func (c *Catalog) Entries() []types.JobPosting {
	out := make([]types.JobPosting, len(c.postings))
	copy(out, c.postings)
	return out
}

// CombinedText returns the precomputed search text for a posting.
func (c *Catalog) CombinedText(id int) string {
	if id < 0 || id >= len(c.combined) {
		return ""
	}
	return c.combined[id]
}

// Search returns postings whose title, company, description or requirements
// contain query, case-insensitively, in catalog order. An empty query
// matches every posting.
func (c *Catalog) Search(query string, limit int) []Listing {
	return c.SearchIndustry(query, "", limit)
}

// SearchIndustry is Search restricted to postings whose industry equals
// industry, ignoring case. An empty industry matches every posting.
func (c *Catalog) SearchIndustry(query, industry string, limit int) []Listing {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	q := strings.ToLower(query)

	results := []Listing{}
	for i, p := range c.postings {
		if len(results) >= limit {
			break
		}
		if industry != "" && !strings.EqualFold(p.Industry, industry) {
			continue
		}
		if matchesQuery(p, q) {
			results = append(results, Listing{ID: i, JobPosting: p})
		}
	}
	return results
}

func matchesQuery(p types.JobPosting, q string) bool {
	for _, field := range []string{p.Title, p.Company, p.Description, p.Requirements} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// FilterByIndustry returns postings whose industry equals industry, ignoring case.
func (c *Catalog) FilterByIndustry(industry string) []Listing {
	results := []Listing{}
	for i, p := range c.postings {
		if strings.EqualFold(p.Industry, industry) {
			results = append(results, Listing{ID: i, JobPosting: p})
		}
	}
	return results
}

// Industries returns the distinct industries in order of first appearance.
func (c *Catalog) Industries() []string {
	seen := make(map[string]bool)
	industries := []string{}
	for _, p := range c.postings {
		if p.Industry == "" || seen[p.Industry] {
			continue
		}
		seen[p.Industry] = true
		industries = append(industries, p.Industry)
	}
	return industries
}
