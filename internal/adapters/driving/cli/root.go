// Package cli implements the cobra command tree. Commands talk to the
// core exclusively through the driving ports, which are injected by the
// composition root before Execute runs.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scholia-labs/scholia-cli/internal/core/domain"
	"github.com/scholia-labs/scholia-cli/internal/core/ports/driving"
	"github.com/scholia-labs/scholia-cli/internal/logger"
)

var (
	version = "dev"
	verbose bool

	appLog = logger.New(false)

	retrievalService driving.RetrievalService
	collectorService driving.CollectorService
	evalService      driving.EvaluationService
	settingsService  driving.SettingsService
)

// Services aggregates the driving ports the CLI commands need.
type Services struct {
	Retrieval  driving.RetrievalService
	Collector  driving.CollectorService
	Evaluation driving.EvaluationService
	Settings   driving.SettingsService
	Log        *logger.Logger
}

// SetServices injects the service implementations. Must be called
// before Execute.
func SetServices(s *Services) {
	retrievalService = s.Retrieval
	collectorService = s.Collector
	evalService = s.Evaluation
	settingsService = s.Settings
	if s.Log != nil {
		appLog = s.Log
	}
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "scholia",
	Short: "Collect and query scientific literature from the terminal",
	Long: `Scholia collects research articles from PubMed and bioRxiv, splits
them into sentence-aware passages, and answers questions against the
corpus with cited sources.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		appLog.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ensureCorpusLoaded ingests the cached article corpus into the
// retrieval engine if nothing is loaded yet. Commands that answer
// queries call this first so a fresh process sees the collected data.
func ensureCorpusLoaded(ctx context.Context) error {
	if retrievalService == nil {
		return errors.New("retrieval service not configured")
	}

	count, err := retrievalService.PassageCount(ctx)
	if err != nil {
		return fmt.Errorf("checking passage count: %w", err)
	}
	if count > 0 {
		return nil
	}

	if collectorService == nil {
		return errors.New("collector service not configured")
	}

	articles, err := collectorService.Corpus(ctx)
	if err != nil {
		return fmt.Errorf("loading corpus: %w", err)
	}
	if len(articles) == 0 {
		return nil
	}

	docs := make([]domain.RawDocument, 0, len(articles))
	for _, article := range articles {
		docs = append(docs, article.RawDocument())
	}

	n, err := retrievalService.Ingest(ctx, docs)
	if err != nil {
		return fmt.Errorf("ingesting corpus: %w", err)
	}
	appLog.Debug("Loaded %d passages from %d cached articles", n, len(articles))
	return nil
}
