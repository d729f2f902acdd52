package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmfonseca/itjobs-cli/internal/export"
	"github.com/dmfonseca/itjobs-cli/internal/skills"
)

var skillsCmd = &cobra.Command{
	Use:   "skills <from> <to>",
	Short: "Count skill-keyword occurrences in postings published between two dates (YYYY-MM-DD)",
	Args:  cobra.ExactArgs(2),
	RunE:  runSkills,
}

var (
	skillsCSVPath   string
	skillsVocabPath string
)

// skillsFetchLimit caps how many recent postings the date filter runs over.
const skillsFetchLimit = 200

func init() {
	skillsCmd.Flags().StringVar(&skillsCSVPath, "csv", "", "Write all counts (including zeros) to a CSV file")
	skillsCmd.Flags().StringVar(&skillsVocabPath, "vocab", "", "YAML file with a custom skill vocabulary")
	rootCmd.AddCommand(skillsCmd)
}

func runSkills(cmd *cobra.Command, args []string) error {
	// Everything here must fail before any network request goes out.
	from, err := time.Parse("2006-01-02", args[0])
	if err != nil {
		return fmt.Errorf("invalid start date %q: use the YYYY-MM-DD format", args[0])
	}
	to, err := time.Parse("2006-01-02", args[1])
	if err != nil {
		return fmt.Errorf("invalid end date %q: use the YYYY-MM-DD format", args[1])
	}
	if from.After(to) {
		return fmt.Errorf("start date %s is after end date %s", args[0], args[1])
	}
	vocabulary, err := skills.LoadVocabulary(skillsVocabPath)
	if err != nil {
		return err
	}

	_, client, err := apiClient()
	if err != nil {
		return err
	}

	jobs, err := client.List(cmd.Context(), skillsFetchLimit)
	if err != nil {
		return fmt.Errorf("failed to list postings: %w", err)
	}

	// Seed with zero counts so every vocabulary entry shows up in exports.
	totals := skills.Count("", vocabulary)
	for _, job := range jobs {
		published, ok := job.PublishedDate()
		if !ok || published.Before(from) || published.After(to) {
			continue
		}
		for skill, count := range skills.Count(job.Text(), vocabulary) {
			totals[skill] += count
		}
	}

	ranked := skills.Ranked(totals, vocabulary)

	var nonzero []skills.Entry
	for _, entry := range ranked {
		if entry.Count > 0 {
			nonzero = append(nonzero, entry)
		}
	}

	if len(nonzero) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No occurrences of those skills in that date range.")
	} else if err := printJSON(cmd, nonzero); err != nil {
		return err
	}

	if skillsCSVPath != "" {
		if err := export.WriteSkillCounts(skillsCSVPath, ranked); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "CSV written to %s\n", skillsCSVPath)
	}
	return nil
}
