package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmfonseca/itjobs-cli/internal/export"
)

var topCmd = &cobra.Command{
	Use:   "top <n>",
	Short: "List the n most recent postings",
	Args:  cobra.ExactArgs(1),
	RunE:  runTop,
}

var topCSVPath string

func init() {
	topCmd.Flags().StringVar(&topCSVPath, "csv", "", "Write the postings to a CSV file")
	rootCmd.AddCommand(topCmd)
}

func runTop(cmd *cobra.Command, args []string) error {
	n, err := parsePositiveCount(args[0])
	if err != nil {
		return err
	}

	_, client, err := apiClient()
	if err != nil {
		return err
	}

	jobs, err := client.List(cmd.Context(), n)
	if err != nil {
		return fmt.Errorf("failed to list postings: %w", err)
	}

	if err := printJSON(cmd, jobs); err != nil {
		return err
	}

	csvPath := topCSVPath
	if csvPath == "" && len(jobs) > 0 {
		if confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Export to CSV?") {
			csvPath = "top_ofertas.csv"
		}
	}
	if csvPath != "" {
		if err := export.WriteJobs(csvPath, jobs); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "CSV written to %s\n", csvPath)
	}
	return nil
}
