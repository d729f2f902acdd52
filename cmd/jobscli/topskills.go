package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmfonseca/itjobs-cli/internal/config"
	"github.com/dmfonseca/itjobs-cli/internal/observability"
	"github.com/dmfonseca/itjobs-cli/internal/teamlyzer"
)

var topSkillsCmd = &cobra.Command{
	Use:   "top-skills <role>",
	Short: "Rank the most demanded skills for a professional role on Teamlyzer",
	Args:  cobra.ExactArgs(1),
	RunE:  runTopSkills,
}

var (
	topSkillsLimit   int
	topSkillsVerbose bool
)

func init() {
	topSkillsCmd.Flags().IntVarP(&topSkillsLimit, "limit", "n", 10, "How many skills to show")
	topSkillsCmd.Flags().BoolVarP(&topSkillsVerbose, "verbose", "v", false, "Print a formatted summary")
	rootCmd.AddCommand(topSkillsCmd)
}

func runTopSkills(cmd *cobra.Command, args []string) error {
	if topSkillsLimit <= 0 {
		return fmt.Errorf("limit must be greater than 0, got %d", topSkillsLimit)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	scraper := teamlyzer.NewClient(cfg.TeamlyzerURL)

	roleID, err := scraper.ResolveRole(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to resolve role %q: %w", args[0], err)
	}
	if roleID == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "No role matching %q found.\n", args[0])
		return nil
	}

	entries, err := scraper.TopSkills(cmd.Context(), roleID, topSkillsLimit)
	if err != nil {
		return fmt.Errorf("failed to fetch skills for role %s: %w", roleID, err)
	}

	if topSkillsVerbose {
		observability.NewPrinter(cmd.OutOrStdout()).PrintSkillRanking(roleID, entries)
		return nil
	}
	return printJSON(cmd, entries)
}
