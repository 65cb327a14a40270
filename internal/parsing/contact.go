package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// phonePatterns are tried in order; the first match wins
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\+?[\d\s\-()]{10,}`),
		regexp.MustCompile(`[\d\s\-()]{10,}`),
	}

	socialPattern = regexp.MustCompile(`(?i)linkedin\.com/in/[\w\-]+`)
)

// ExtractContact runs the email, phone and social-profile searches over text.
// Fields without a match are left empty.
func ExtractContact(text string) types.ContactInfo {
	var info types.ContactInfo

	if m := emailPattern.FindString(text); m != "" {
		info.Email = m
	}

	for _, pattern := range phonePatterns {
		if m := strings.TrimSpace(pattern.FindString(text)); m != "" {
			info.Phone = m
			break
		}
	}

	if m := socialPattern.FindString(text); m != "" {
		info.Social = m
	}

	return info
}
