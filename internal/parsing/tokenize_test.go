package parsing

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListTokenizer_Tokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"comma and semicolon", "Python, JavaScript; React", []string{"Python", "JavaScript", "React"}},
		{"newlines", "Go\nRust\n\nSQL", []string{"Go", "Rust", "SQL"}},
		{"and separator", "Python and Go and Rust", []string{"Python", "Go", "Rust"}},
		{"ampersand separator", "Design & Marketing", []string{"Design", "Marketing"}},
		{"first delimiter class only", "Python & Go, Rust", []string{"Python & Go", "Rust"}},
		{"whitespace fallback drops short words", "Python Go SQL Kubernetes", []string{"Python", "SQL", "Kubernetes"}},
		{"empty", "", []string{}},
		{"only delimiters", ", ;", []string{}},
	}

	tok := NewListTokenizer(0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tok.Tokenize(tt.input))
		})
	}
}

func TestListTokenizer_Limit(t *testing.T) {
	items := make([]string, 25)
	for i := range items {
		items[i] = fmt.Sprintf("skill%d", i)
	}
	body := strings.Join(items, ", ")

	capped := NewListTokenizer(SkillsLimit).Tokenize(body)
	assert.Len(t, capped, SkillsLimit)
	assert.Equal(t, "skill0", capped[0])
	assert.Equal(t, "skill19", capped[19])

	assert.Len(t, NewListTokenizer(0).Tokenize(body), 25)
}

func TestListTokenizer_CountsRunesNotBytes(t *testing.T) {
	// two Arabic letters are four bytes but only two characters
	assert.Equal(t, []string{"جافا"}, NewListTokenizer(0).Tokenize("جافا سي"))
}
