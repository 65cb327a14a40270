package parsing

import "strings"

const (
	nameScanLines = 5
	nameMaxWords  = 4
)

// ExtractName returns the first of the opening lines that looks like a
// person's name: at most four words and no blacklisted word.
func ExtractName(text string, blacklist []string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > nameScanLines {
		lines = lines[:nameScanLines]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || len(strings.Fields(line)) > nameMaxWords {
			continue
		}
		if containsAny(strings.ToLower(line), blacklist) {
			continue
		}
		return line
	}
	return ""
}

func containsAny(lower string, words []string) bool {
	for _, w := range words {
		if w != "" && strings.Contains(lower, strings.ToLower(w)) {
			return true
		}
	}
	return false
}
