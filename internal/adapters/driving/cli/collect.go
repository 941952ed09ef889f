package cli

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

// defaultQueries is the standing query set for the Alzheimer's corpus.
var defaultQueries = []string{
	"Alzheimer's disease therapeutic targets",
	"Alzheimer's disease drug targets",
	"Alzheimer's disease potential targets",
	"Alzheimer's disease molecular targets",
	"Alzheimer's disease treatment targets",
}

var collectMaxPerQuery int

var collectCmd = &cobra.Command{
	Use:   "collect [query...]",
	Short: "Fetch articles from PubMed and bioRxiv",
	Long: `Runs each query against the configured article sources and saves the
unique results to the local corpus. Without arguments, a standing set of
Alzheimer's disease queries is used.`,
	RunE: runCollect,
}

func init() {
	collectCmd.Flags().IntVar(&collectMaxPerQuery, "max-per-query", 0,
		"maximum articles per query per source (0 = use configured default)")
	rootCmd.AddCommand(collectCmd)
}

func runCollect(cmd *cobra.Command, args []string) error {
	if collectorService == nil {
		return errors.New("collector service not configured")
	}

	queries := args
	if len(queries) == 0 {
		queries = defaultQueries
	}

	perQuery := collectMaxPerQuery
	if perQuery <= 0 {
		if settingsService != nil {
			perQuery = settingsService.Current().PubMed.MaxPerQuery
		} else {
			perQuery = 20
		}
	}

	status, err := collectorService.Collect(cmd.Context(), queries, perQuery)
	if err != nil {
		return fmt.Errorf("collection failed: %w", err)
	}

	cmd.Printf("Collected %d unique articles (%d fetched, %d queries)\n",
		status.Stored, status.Fetched, status.Queries)

	sources := make([]string, 0, len(status.PerSource))
	for source := range status.PerSource {
		sources = append(sources, source)
	}
	sort.Strings(sources)
	for _, source := range sources {
		cmd.Printf("  %-12s %d\n", source, status.PerSource[source])
	}
	return nil
}
