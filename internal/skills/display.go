package skills

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// displayNames maps vocabulary terms to their conventional spelling
var displayNames = map[string]string{
	"javascript":       "JavaScript",
	"c++":              "C++",
	"c#":               "C#",
	"php":              "PHP",
	"go":               "Go",
	"html":             "HTML",
	"css":              "CSS",
	"node.js":          "Node.js",
	"sql":              "SQL",
	"mongodb":          "MongoDB",
	"postgresql":       "PostgreSQL",
	"mysql":            "MySQL",
	"aws":              "AWS",
	"gcp":              "GCP",
	"ai":               "AI",
	"power bi":         "Power BI",
	"tensorflow":       "TensorFlow",
	"pytorch":          "PyTorch",
	"machine learning": "Machine Learning",
	"data science":     "Data Science",
}

// DisplayName returns the conventional spelling of a skill term.
// Unknown single words are capitalized; anything else is returned trimmed.
func DisplayName(term string) string {
	term = strings.TrimSpace(term)
	if term == "" {
		return ""
	}
	if name, ok := displayNames[strings.ToLower(term)]; ok {
		return name
	}
	if term == strings.ToLower(term) && !strings.Contains(term, " ") {
		r, size := utf8.DecodeRuneInString(term)
		return string(unicode.ToUpper(r)) + term[size:]
	}
	return term
}

// DisplayNames applies DisplayName to each term
func DisplayNames(terms []string) []string {
	out := make([]string, len(terms))
	for i, t := range terms {
		out[i] = DisplayName(t)
	}
	return out
}
