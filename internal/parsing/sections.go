package parsing

import (
	"regexp"
	"strings"
)

var (
	// summaryBoundary ends a summary at a blank line or at the next line starting with a letter
	summaryBoundary = regexp.MustCompile(`\n\s*\n|\n\s*\p{L}`)
	// sectionBoundary ends other sections at a blank line followed by a new heading
	sectionBoundary = regexp.MustCompile(`\n\s*\n\s*\p{L}`)
)

// SectionLocator finds section bodies by trying header synonyms in order
type SectionLocator struct {
	headers map[string]map[Section][]*regexp.Regexp
}

// NewSectionLocator compiles the header synonyms of vocab
func NewSectionLocator(vocab Vocabulary) *SectionLocator {
	headers := make(map[string]map[Section][]*regexp.Regexp, len(vocab.Headers))
	for lang, sections := range vocab.Headers {
		compiled := make(map[Section][]*regexp.Regexp, len(sections))
		for section, synonyms := range sections {
			patterns := make([]*regexp.Regexp, 0, len(synonyms))
			for _, synonym := range synonyms {
				if strings.TrimSpace(synonym) == "" {
					continue
				}
				patterns = append(patterns, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(synonym)+`[:\s]*`))
			}
			compiled[section] = patterns
		}
		headers[lang] = compiled
	}
	return &SectionLocator{headers: headers}
}

// Locate returns the body of section in text, or "" when no synonym matches.
// Synonyms of lang are tried first, then those of the other supported language.
func (l *SectionLocator) Locate(text string, section Section, lang string) string {
	boundary := sectionBoundary
	if section == SectionSummary {
		boundary = summaryBoundary
	}

	for _, language := range languageOrder(lang) {
		for _, header := range l.headers[language][section] {
			loc := header.FindStringIndex(text)
			if loc == nil {
				continue
			}
			body := text[loc[1]:]
			if end := boundary.FindStringIndex(body); end != nil {
				body = body[:end[0]]
			}
			return strings.TrimSpace(body)
		}
	}
	return ""
}
