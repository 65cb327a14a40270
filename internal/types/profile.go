// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Language tags accepted by the profile builder
const (
	LanguageEnglish = "en"
	LanguageArabic  = "ar"
)

// Profile is the structured form of a resume. Every field may be empty;
// an empty string means the value was not found.
type Profile struct {
	Name           string            `json:"name,omitempty"`
	Contact        ContactInfo       `json:"contact_info"`
	Summary        string            `json:"summary,omitempty"`
	Experience     []ExperienceEntry `json:"experience"`
	Education      []EducationEntry  `json:"education"`
	Skills         []string          `json:"skills"`
	Languages      []string          `json:"languages"`
	Certifications []string          `json:"certifications"`
	Projects       []ProjectEntry    `json:"projects"`
	Language       string            `json:"language"`
	RawText        string            `json:"raw_text"`
}

// ContactInfo holds whatever contact details were found in the document
type ContactInfo struct {
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Social string `json:"social,omitempty"`
}

// Entry is a titled record with an optional accumulated description
type Entry struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// ExperienceEntry is a single role found in the experience section
type ExperienceEntry = Entry

// EducationEntry is a single qualification found in the education section
type EducationEntry = Entry

// ProjectEntry is a single project found in the projects section
type ProjectEntry = Entry

// IsEmpty reports whether no contact field was extracted
func (c ContactInfo) IsEmpty() bool {
	return c.Email == "" && c.Phone == "" && c.Social == ""
}
