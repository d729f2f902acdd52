package main

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmfonseca/itjobs-cli/internal/export"
	"github.com/dmfonseca/itjobs-cli/internal/itjobs"
)

var searchCmd = &cobra.Command{
	Use:   "search <location> <company> <n>",
	Short: "List part-time postings for a company in a location",
	Args:  cobra.ExactArgs(3),
	RunE:  runSearch,
}

var searchCSVPath string

// searchFetchLimit is how many postings to pull before filtering locally;
// the API's own query matching is too loose to filter server-side.
const searchFetchLimit = 200

func init() {
	searchCmd.Flags().StringVar(&searchCSVPath, "csv", "", "Write the matches to a CSV file")
	rootCmd.AddCommand(searchCmd)
}

var partTimeRe = regexp.MustCompile(`(?i)\bpart[- ]?time\b`)

// isPartTime checks the structured contract types first and falls back to
// the posting text, since many postings only mention the regime in prose.
func isPartTime(job itjobs.JobPosting) bool {
	for _, ct := range job.Types {
		if partTimeRe.MatchString(ct.Name) {
			return true
		}
	}
	return partTimeRe.MatchString(job.Text())
}

func matchesLocation(job itjobs.JobPosting, location string) bool {
	needle := strings.ToLower(location)
	for _, loc := range job.Locations {
		if strings.Contains(strings.ToLower(loc.Name), needle) {
			return true
		}
	}
	return false
}

func runSearch(cmd *cobra.Command, args []string) error {
	location, company := args[0], args[1]
	n, err := parsePositiveCount(args[2])
	if err != nil {
		return err
	}

	_, client, err := apiClient()
	if err != nil {
		return err
	}

	jobs, err := client.Search(cmd.Context(), company+" "+location, searchFetchLimit)
	if err != nil {
		return fmt.Errorf("search request failed: %w", err)
	}

	companyNeedle := strings.ToLower(company)
	var matches []itjobs.JobPosting
	for _, job := range jobs {
		if !strings.Contains(strings.ToLower(job.Company.Name), companyNeedle) {
			continue
		}
		if !matchesLocation(job, location) || !isPartTime(job) {
			continue
		}
		matches = append(matches, job)
		if len(matches) == n {
			break
		}
	}

	if len(matches) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No part-time postings found for that company/location.")
		return nil
	}

	if err := printJSON(cmd, matches); err != nil {
		return err
	}

	if searchCSVPath != "" {
		if err := export.WriteJobs(searchCSVPath, matches); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "CSV written to %s\n", searchCSVPath)
	}
	return nil
}
