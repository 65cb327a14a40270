package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

// blockElements end a line of text when flattened.
const blockElements = "p, div, li, br, tr, h1, h2, h3, h4, h5, h6, section, article"

// structurePolicy keeps only the elements that carry line structure. Scripts,
// styles and attributes are dropped before the document is parsed.
var structurePolicy = newStructurePolicy()

func newStructurePolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("p", "br", "div", "span", "section", "article")
	p.AllowElements("strong", "b", "em", "i", "u")
	p.AllowElements("ul", "ol", "li")
	p.AllowElements("table", "tbody", "thead", "tr", "td", "th")
	p.AllowElements("h1", "h2", "h3", "h4", "h5", "h6")
	return p
}

// HTMLToText sanitizes an HTML fragment or page and returns its visible text,
// one block element per line. Plain text passes through unchanged apart
// from whitespace cleanup.
func HTMLToText(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	doc.Find("nav, noscript, script, style, template").Remove()

	body, err := doc.Find("body").Html()
	if err != nil {
		return "", fmt.Errorf("failed to render HTML body: %w", err)
	}

	sanitized, err := goquery.NewDocumentFromReader(strings.NewReader(structurePolicy.Sanitize(body)))
	if err != nil {
		return "", fmt.Errorf("failed to parse sanitized HTML: %w", err)
	}
	sanitized.Find(blockElements).AppendHtml("\n")

	return cleanWhitespace(sanitized.Text()), nil
}

// cleanWhitespace trims every line, collapses inner spacing and drops blank lines.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = cleanLine(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
