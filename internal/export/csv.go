// Package export writes job listings and skill counts to CSV files.
package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/dmfonseca/itjobs-cli/internal/itjobs"
	"github.com/dmfonseca/itjobs-cli/internal/skills"
)

// jobHeader matches the column set users of the original reports expect.
var jobHeader = []string{"titulo", "empresa", "descricao", "data_publicacao", "salario", "localizacao"}

// WriteJobs writes postings to a CSV file, one row per posting.
func WriteJobs(path string, jobs []itjobs.JobPosting) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	if err := writer.Write(jobHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, job := range jobs {
		row := []string{
			job.Title,
			job.Company.Name,
			job.Body,
			job.PublishedAt,
			job.Wage.String(),
			job.LocationNames(),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// WriteSkillCounts writes ranked skill counts to a CSV file.
func WriteSkillCounts(path string, entries []skills.Entry) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"skill", "ocorrencias"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, entry := range entries {
		if err := writer.Write([]string{entry.Skill, fmt.Sprintf("%d", entry.Count)}); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}
