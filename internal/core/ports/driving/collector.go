package driving

import (
	"context"

	"github.com/scholia-labs/scholia-cli/internal/core/domain"
)

// CollectStatus reports the outcome of one collection run.
type CollectStatus struct {
	// Queries is the number of search queries executed.
	Queries int

	// Fetched is the number of articles returned by the sources,
	// before deduplication.
	Fetched int

	// Stored is the number of unique articles saved to the corpus.
	Stored int

	// PerSource maps source type to the number of articles it returned.
	PerSource map[string]int
}

// CollectorService fetches articles from the configured sources and
// persists them to the local corpus.
type CollectorService interface {
	// Collect runs each query against every source, deduplicates the
	// results and saves them. Individual source failures are logged and
	// skipped; Collect fails only when no source produced anything.
	Collect(ctx context.Context, queries []string, perQuery int) (CollectStatus, error)

	// Corpus returns every article currently stored.
	Corpus(ctx context.Context) ([]domain.Article, error)
}
