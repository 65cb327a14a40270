// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/jonathan/resume-matcher/internal/catalog"
	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most width runes.
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}

// PrintProfile outputs a human-readable summary of an extracted profile.
func (p *Printer) PrintProfile(profile *types.Profile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", orNone(profile.Name)))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", orNone(profile.Contact.Email)))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", orNone(profile.Contact.Phone)))
	if profile.Contact.Social != "" {
		sb.WriteString(fmt.Sprintf("Profile:  %s\n", profile.Contact.Social))
	}
	sb.WriteString(fmt.Sprintf("Language: %s\n", profile.Language))

	writeEntries(&sb, "Experience", profile.Experience)
	writeEntries(&sb, "Education", profile.Education)
	writeEntries(&sb, "Projects", profile.Projects)
	writeList(&sb, "Skills", profile.Skills)
	writeList(&sb, "Languages", profile.Languages)
	writeList(&sb, "Certifications", profile.Certifications)

	p.printBox("EXTRACTED PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

func writeEntries(sb *strings.Builder, label string, entries []types.Entry) {
	if len(entries) == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf("\n%s (%d):\n", label, len(entries)))
	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", entries[i].Title))
	}
	if len(entries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(entries)-maxItemsToShow))
	}
}

func writeList(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf("\n%s: %s\n", label, strings.Join(items, ", ")))
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

// PrintMatches renders ranked matches as a table.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintMatches(matches []types.MatchResult) error {
	if len(matches) == 0 {
		fmt.Fprintln(p.out, "No matching jobs.")
		return nil
	}

	data := pterm.TableData{{"#", "ID", "Title", "Company", "Match", "Band", "Skills"}}
	for i, m := range matches {
		band := ranking.ScoreBand(m.MatchPercentage)
		data = append(data, []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", m.JobID),
			m.Posting.Title,
			m.Posting.Company,
			fmt.Sprintf("%.1f%%", m.MatchPercentage),
			colorBand(band),
			truncate(strings.Join(m.MatchedSkills, ", "), 40),
		})
	}
	return p.renderTable(data)
}

// PrintListings renders catalog listings as a table.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintListings(listings []catalog.Listing) error {
	if len(listings) == 0 {
		fmt.Fprintln(p.out, "No jobs found.")
		return nil
	}

	data := pterm.TableData{{"ID", "Title", "Company", "Industry", "Salary", "Experience"}}
	for _, l := range listings {
		data = append(data, []string{
			fmt.Sprintf("%d", l.ID),
			l.Title,
			l.Company,
			l.Industry,
			l.SalaryRange,
			l.ExperienceRange,
		})
	}
	return p.renderTable(data)
}

// PrintPosting outputs a single posting in a box.
func (p *Printer) PrintPosting(id int, posting types.JobPosting) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company:    %s\n", posting.Company))
	sb.WriteString(fmt.Sprintf("Location:   %s\n", posting.Location))
	sb.WriteString(fmt.Sprintf("Industry:   %s\n", posting.Industry))
	sb.WriteString(fmt.Sprintf("Salary:     %s\n", posting.SalaryRange))
	sb.WriteString(fmt.Sprintf("Experience: %s\n", posting.ExperienceRange))
	sb.WriteString(fmt.Sprintf("Type:       %s\n", posting.JobType))
	sb.WriteString("\n")
	sb.WriteString(wrap(posting.Description, boxWidth-4))
	sb.WriteString("\n\nRequirements:\n")
	sb.WriteString(wrap(posting.Requirements, boxWidth-4))

	p.printBox(fmt.Sprintf("#%d %s", id, posting.Title), sb.String())
}

// wrap breaks text into lines of at most width runes on word boundaries.
func wrap(text string, width int) string {
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && len([]rune(line.String()))+1+len([]rune(word)) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteString(" ")
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) renderTable(data pterm.TableData) error {
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	fmt.Fprintln(p.out, table)
	return nil
}

func colorBand(band string) string {
	switch band {
	case ranking.BandExcellent:
		return pterm.Green(band)
	case ranking.BandGood:
		return pterm.LightGreen(band)
	case ranking.BandFair:
		return pterm.Yellow(band)
	default:
		return pterm.Red(band)
	}
}
