package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmfonseca/itjobs-cli/internal/config"
	"github.com/dmfonseca/itjobs-cli/internal/itjobs"
)

// apiClient loads configuration and builds the job API client.
// Configuration problems surface here, before any network activity.
func apiClient() (*config.Config, *itjobs.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	return cfg, itjobs.NewClient(cfg.APIBaseURL, cfg.APIKey, cfg.FetchOptions()), nil
}

// parsePositiveCount parses a CLI count argument, rejecting non-positive
// values before anything else runs.
func parsePositiveCount(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid count %q: expected a positive integer", raw)
	}
	if n <= 0 {
		return 0, fmt.Errorf("count must be greater than 0, got %d", n)
	}
	return n, nil
}

// printJSON writes v to the command's stdout as indented JSON.
func printJSON(cmd *cobra.Command, v any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(v)
}

// confirm asks a yes/no question on the command's input stream.
// Anything but an explicit yes counts as no, including a closed stream.
func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "s", "sim":
		return true
	}
	return false
}
