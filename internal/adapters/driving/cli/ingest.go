package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scholia-labs/scholia-cli/internal/connectors/filesystem"
	"github.com/scholia-labs/scholia-cli/internal/core/domain"
	"github.com/scholia-labs/scholia-cli/internal/core/ports/driven"
)

var (
	ingestDir   string
	ingestWatch bool
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Split the corpus into searchable passages",
	Long: `Loads articles into the retrieval engine. By default the cached corpus
from previous collect runs is used; with --dir, .txt and .md files from
a local directory are ingested instead. Add --watch to keep running and
ingest files as they appear in the directory.`,
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().StringVar(&ingestDir, "dir", "", "ingest local text files from this directory")
	ingestCmd.Flags().BoolVar(&ingestWatch, "watch", false, "keep watching the directory for new files (requires --dir)")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	if retrievalService == nil {
		return errors.New("retrieval service not configured")
	}
	ctx := cmd.Context()

	if ingestWatch && ingestDir == "" {
		return errors.New("--watch requires --dir")
	}

	if ingestDir != "" {
		source, err := filesystem.NewConnector(ingestDir, appLog)
		if err != nil {
			return fmt.Errorf("opening directory: %w", err)
		}
		defer source.Close()

		articles, err := source.Search(ctx, "", maxDirectoryFiles)
		if err != nil {
			return fmt.Errorf("reading directory: %w", err)
		}

		docs := make([]domain.RawDocument, 0, len(articles))
		for _, article := range articles {
			docs = append(docs, article.RawDocument())
		}

		n, err := retrievalService.Ingest(ctx, docs)
		if err != nil {
			return fmt.Errorf("ingesting files: %w", err)
		}
		cmd.Printf("Ingested %d passages from %d files\n", n, len(docs))

		if ingestWatch {
			return watchDirectory(ctx, cmd, source)
		}
		return nil
	}

	if err := ensureCorpusLoaded(ctx); err != nil {
		return err
	}

	count, err := retrievalService.PassageCount(ctx)
	if err != nil {
		return err
	}
	if count == 0 {
		cmd.Println("No articles in the corpus. Run 'scholia collect' first.")
		return nil
	}
	cmd.Printf("Corpus ready: %d passages\n", count)
	return nil
}

// watchDirectory ingests each article the source streams until the
// channel closes or the context is cancelled.
func watchDirectory(ctx context.Context, cmd *cobra.Command, source driven.WatchSource) error {
	updates, err := source.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watching directory: %w", err)
	}

	cmd.Println("Watching for new files. Press Ctrl+C to stop.")
	for article := range updates {
		n, err := retrievalService.Ingest(ctx, []domain.RawDocument{article.RawDocument()})
		if err != nil {
			appLog.Warn("ingesting %s: %v", article.ID, err)
			continue
		}
		cmd.Printf("Ingested %q (%d passages)\n", article.Title, n)
	}
	return nil
}

// maxDirectoryFiles caps a directory ingest to keep memory bounded.
const maxDirectoryFiles = 10000
