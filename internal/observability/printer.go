// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmfonseca/itjobs-cli/internal/classify"
	"github.com/dmfonseca/itjobs-cli/internal/itjobs"
	"github.com/dmfonseca/itjobs-cli/internal/teamlyzer"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
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

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJob outputs a human-readable summary of a posting and its classified
// work arrangement.
func (p *Printer) PrintJob(job *itjobs.JobPosting, arrangement classify.Arrangement) {
	if job == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:    %s\n", job.Title))
	sb.WriteString(fmt.Sprintf("Company:  %s\n", job.Company.Name))
	if locs := job.LocationNames(); locs != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", locs))
	}
	if job.Wage != "" {
		sb.WriteString(fmt.Sprintf("Wage:     %s\n", job.Wage))
	}
	sb.WriteString(fmt.Sprintf("Mode:     %s", arrangement))

	p.printBox("JOB POSTING", sb.String())
}

// PrintCompanyProfile outputs the scraped company metadata. Absent fields
// print as "-" so the operator can see which extractions missed.
func (p *Printer) PrintCompanyProfile(profile *teamlyzer.CompanyProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("URL:     %s\n", profile.URL))

	if profile.Rating != nil {
		sb.WriteString(fmt.Sprintf("Rating:  %.1f / 5\n", *profile.Rating))
	} else {
		sb.WriteString("Rating:  -\n")
	}

	if profile.Salary != nil {
		sb.WriteString(fmt.Sprintf("Salary:  %s - %s\n", profile.Salary.Min, profile.Salary.Max))
	} else {
		sb.WriteString("Salary:  -\n")
	}

	if profile.Description != "" {
		sb.WriteString(fmt.Sprintf("About:   %s\n", profile.Description))
	}

	if len(profile.Benefits) > 0 {
		sb.WriteString("\nBenefits:\n")
		count := min(len(profile.Benefits), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.Benefits[i]))
		}
		if len(profile.Benefits) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Benefits)-maxItemsToShow))
		}
	}

	p.printBox("COMPANY PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkillRanking outputs a ranked skill-frequency list for a role.
func (p *Printer) PrintSkillRanking(role string, entries []teamlyzer.RoleSkillEntry) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role: %s\n\n", role))

	if len(entries) == 0 {
		sb.WriteString("No skills reported.")
	}
	for i, entry := range entries {
		sb.WriteString(fmt.Sprintf("#%d  %s (%d)", i+1, entry.Skill, entry.Count))
		if i < len(entries)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("TOP SKILLS", sb.String())
}
