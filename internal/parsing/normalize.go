// Package parsing turns unstructured resume text into a structured Profile.
package parsing

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	blankLineRun  = regexp.MustCompile(`\n\n\n+`)

	// disallowedChars matches anything outside letters, digits, underscore,
	// whitespace, the Arabic blocks and a small set of punctuation.
	disallowedChars = regexp.MustCompile(`[^\p{L}\p{N}_\s` +
		`\x{0600}-\x{06FF}\x{0750}-\x{077F}\x{08A0}-\x{08FF}\x{FB50}-\x{FDFF}\x{FE70}-\x{FEFF}` +
		`\-.,;:!?()]`)
)

// NormalizeOptions controls how raw text is cleaned
type NormalizeOptions struct {
	// PreserveLineBreaks keeps line structure (single blank lines between
	// blocks) instead of collapsing the whole document onto one line.
	PreserveLineBreaks bool
}

// Normalize collapses whitespace runs to a single space, strips characters
// outside the allow-list and trims the result.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	text = whitespaceRun.ReplaceAllString(text, " ")
	text = disallowedChars.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// NormalizeWithOptions applies Normalize, or its line-preserving variant
// when opts.PreserveLineBreaks is set.
func NormalizeWithOptions(text string, opts NormalizeOptions) string {
	if !opts.PreserveLineBreaks {
		return Normalize(text)
	}
	if text == "" {
		return ""
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, Normalize(line))
	}

	result := blankLineRun.ReplaceAllString(strings.Join(cleaned, "\n"), "\n\n")
	return strings.TrimSpace(result)
}

// CollapseWhitespace collapses whitespace runs without touching any other character
func CollapseWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}
