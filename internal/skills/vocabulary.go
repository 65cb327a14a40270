// Package skills holds the curated technical-skill vocabulary used to compare resumes with job requirements.
package skills

import "strings"

// Vocabulary is an ordered list of lower-case technical skill terms
type Vocabulary []string

// DefaultVocabulary returns the built-in technical skill list
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		"python", "javascript", "java", "c++", "c#", "php", "ruby", "go", "rust",
		"html", "css", "react", "angular", "vue", "node.js", "express", "django",
		"flask", "spring", "laravel", "sql", "mongodb", "postgresql", "mysql",
		"aws", "azure", "gcp", "docker", "kubernetes", "git", "jenkins",
		"machine learning", "ai", "data science", "analytics", "tableau",
		"excel", "power bi", "spark", "hadoop", "tensorflow", "pytorch",
	}
}

// Find returns the vocabulary terms contained in text, in vocabulary order.
// Matching is a case-insensitive substring test, so "java" is found in "javascript".
func (v Vocabulary) Find(text string) []string {
	lower := strings.ToLower(text)
	found := make([]string, 0)
	for _, term := range v {
		if term != "" && strings.Contains(lower, strings.ToLower(term)) {
			found = append(found, term)
		}
	}
	return found
}

// Intersect returns the terms of found that also occur in text, keeping the order of found
func Intersect(found []string, text string) []string {
	lower := strings.ToLower(text)
	matched := make([]string, 0, len(found))
	for _, term := range found {
		if strings.Contains(lower, strings.ToLower(term)) {
			matched = append(matched, term)
		}
	}
	return matched
}
