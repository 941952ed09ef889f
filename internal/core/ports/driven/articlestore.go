package driven

import (
	"context"

	"github.com/scholia-labs/scholia-cli/internal/core/domain"
)

// ArticleStore persists collected articles between runs.
//
// The collector writes into it and the ingest path reads the cached corpus
// back out at startup. Articles are deduplicated on their identifier, so
// re-collecting the same query is safe.
type ArticleStore interface {
	// SaveArticles upserts the given articles. An article whose ID is
	// already present is replaced.
	SaveArticles(ctx context.Context, articles []domain.Article) error

	// ListArticles returns every stored article, newest first.
	ListArticles(ctx context.Context) ([]domain.Article, error)

	// CountArticles reports how many articles are stored.
	CountArticles(ctx context.Context) (int, error)

	// Close releases the underlying resources.
	Close() error
}
