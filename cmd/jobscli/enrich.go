package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmfonseca/itjobs-cli/internal/classify"
	"github.com/dmfonseca/itjobs-cli/internal/itjobs"
	"github.com/dmfonseca/itjobs-cli/internal/observability"
	"github.com/dmfonseca/itjobs-cli/internal/teamlyzer"
)

var enrichCmd = &cobra.Command{
	Use:   "enrich <job_id>",
	Short: "Fetch a posting and enrich it with scraped Teamlyzer company metadata",
	Long: "Fetch a posting by id, locate the employer's Teamlyzer profile (slug probe " +
		"first, ranking-page scan as fallback) and merge the scraped rating, description, " +
		"benefits and salary band into the output. Missing fields stay absent; a company " +
		"that cannot be found still produces the un-enriched posting.",
	Args: cobra.ExactArgs(1),
	RunE: runEnrich,
}

var (
	enrichVerbose    bool
	enrichUseBrowser bool
)

func init() {
	enrichCmd.Flags().BoolVarP(&enrichVerbose, "verbose", "v", false, "Print formatted summaries")
	enrichCmd.Flags().BoolVar(&enrichUseBrowser, "browser", false, "Render script-heavy pages in a headless browser")
	rootCmd.AddCommand(enrichCmd)
}

// EnrichedJob is a posting merged with its classification and whatever
// company metadata the scrape produced.
type EnrichedJob struct {
	Job         itjobs.JobPosting         `json:"job"`
	Arrangement classify.Arrangement      `json:"arrangement"`
	Company     *teamlyzer.CompanyProfile `json:"company_profile,omitempty"`
}

func runEnrich(cmd *cobra.Command, args []string) error {
	cfg, client, err := apiClient()
	if err != nil {
		return err
	}

	job, err := client.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to fetch job %s: %w", args[0], err)
	}

	var options []teamlyzer.ClientOption
	if enrichUseBrowser {
		options = append(options, teamlyzer.WithBrowserFallback())
	}
	if enrichVerbose {
		options = append(options, teamlyzer.WithVerbose())
	}
	scraper := teamlyzer.NewClient(cfg.TeamlyzerURL, options...)

	enriched := EnrichedJob{
		Job:         *job,
		Arrangement: classify.Classify(job.Title, job.Body, job.AllowRemote, len(job.Locations) > 0),
	}

	profileURL, err := scraper.Resolve(cmd.Context(), job.Company.Name, job.Company.Slug)
	if err != nil {
		return err
	}
	if profileURL != "" {
		profile := scraper.Extract(cmd.Context(), profileURL)
		enriched.Company = &profile
	} else {
		fmt.Fprintf(cmd.ErrOrStderr(), "Company %q not found on Teamlyzer; output is un-enriched.\n", job.Company.Name)
	}

	if enrichVerbose {
		printer := observability.NewPrinter(cmd.OutOrStdout())
		printer.PrintJob(job, enriched.Arrangement)
		printer.PrintCompanyProfile(enriched.Company)
	}

	return printJSON(cmd, enriched)
}
