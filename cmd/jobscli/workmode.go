package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmfonseca/itjobs-cli/internal/classify"
)

var typeCmd = &cobra.Command{
	Use:   "type <job_id>",
	Short: "Show a posting's work arrangement (remote/hybrid/onsite/other)",
	Args:  cobra.ExactArgs(1),
	RunE:  runType,
}

func init() {
	rootCmd.AddCommand(typeCmd)
}

func runType(cmd *cobra.Command, args []string) error {
	_, client, err := apiClient()
	if err != nil {
		return err
	}

	job, err := client.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to fetch job %s: %w", args[0], err)
	}

	arrangement := classify.Classify(job.Title, job.Body, job.AllowRemote, len(job.Locations) > 0)
	fmt.Fprintln(cmd.OutOrStdout(), arrangement)
	return nil
}
