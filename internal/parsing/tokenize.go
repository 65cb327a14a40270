package parsing

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// SkillsLimit caps the number of skills kept from a skills section
const SkillsLimit = 20

// listDelimiters are tried in order; the first one present splits the whole body
var listDelimiters = []*regexp.Regexp{
	regexp.MustCompile(`[,\n;]`),
	regexp.MustCompile(`\s+and\s+`),
	regexp.MustCompile(`\s+&\s+`),
}

// ListTokenizer turns a section body into a flat list of items
type ListTokenizer struct {
	limit int
}

// NewListTokenizer returns a tokenizer keeping at most limit items; limit <= 0 keeps all
func NewListTokenizer(limit int) *ListTokenizer {
	return &ListTokenizer{limit: limit}
}

// Tokenize splits body on the first delimiter class it contains, falling
// back to whitespace words longer than two characters.
func (t *ListTokenizer) Tokenize(body string) []string {
	items := splitOnFirstDelimiter(body)
	if len(items) == 0 {
		for _, word := range strings.Fields(body) {
			if utf8.RuneCountInString(word) > 2 {
				items = append(items, word)
			}
		}
	}

	if t.limit > 0 && len(items) > t.limit {
		items = items[:t.limit]
	}
	if items == nil {
		return []string{}
	}
	return items
}

func splitOnFirstDelimiter(body string) []string {
	for _, delim := range listDelimiters {
		if !delim.MatchString(body) {
			continue
		}
		var items []string
		for _, piece := range delim.Split(body, -1) {
			if piece = strings.TrimSpace(piece); piece != "" {
				items = append(items, piece)
			}
		}
		return items
	}
	return nil
}
