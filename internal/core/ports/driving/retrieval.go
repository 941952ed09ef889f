package driving

import (
	"context"

	"github.com/scholia-labs/scholia-cli/internal/core/domain"
)

// RetrievalService is the primary port into the retrieval pipeline.
type RetrievalService interface {
	// Ingest splits each document into section-labelled passages and
	// stores them. Each document is stored atomically; a failure on one
	// document leaves the previously ingested documents intact.
	// Returns the number of passages produced.
	Ingest(ctx context.Context, docs []domain.RawDocument) (int, error)

	// Query scores every stored passage against the query and returns
	// an answer assembled from the best matches. topK must be at least
	// 1 or domain.ErrInvalidTopK is returned before any scoring work.
	Query(ctx context.Context, query string, topK int) (domain.QueryResult, error)

	// PassageCount reports how many passages are currently stored.
	PassageCount(ctx context.Context) (int, error)
}
