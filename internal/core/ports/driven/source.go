package driven

import (
	"context"

	"github.com/scholia-labs/scholia-cli/internal/core/domain"
)

// ArticleSource fetches bibliographic records from one upstream source.
type ArticleSource interface {
	// Type names the source, e.g. "pubmed" or "biorxiv".
	Type() string

	// Search fetches up to limit articles matching the query.
	// A source that is temporarily unreachable returns
	// domain.ErrSourceUnavailable wrapped with detail.
	Search(ctx context.Context, query string, limit int) ([]domain.Article, error)

	// Close releases any resources held by the source.
	Close() error
}

// WatchSource is implemented by sources that can report new documents
// as they appear, such as a local directory being written to.
type WatchSource interface {
	ArticleSource

	// Watch emits articles discovered after the call until ctx is
	// cancelled. The channel is closed when watching stops.
	Watch(ctx context.Context) (<-chan domain.Article, error)
}
