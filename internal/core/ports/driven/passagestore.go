package driven

import (
	"context"

	"github.com/scholia-labs/scholia-cli/internal/core/domain"
)

// PassageStore holds the searchable passages for the lifetime of a session.
//
// The store is transient and append-only. Passages are assigned dense
// integer identifiers in insertion order, and a single Add call is atomic:
// either every draft in the batch becomes visible or none do.
type PassageStore interface {
	// Add appends a batch of drafts and returns the identifiers assigned
	// to them, in the same order. Concurrent readers never observe a
	// partially applied batch.
	Add(ctx context.Context, drafts []domain.PassageDraft) ([]int, error)

	// All returns a snapshot of every stored passage in identifier order.
	// Mutating the returned slice does not affect the store.
	All(ctx context.Context) ([]domain.Passage, error)

	// Count reports the number of stored passages.
	Count(ctx context.Context) (int, error)
}
