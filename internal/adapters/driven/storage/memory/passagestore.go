// Package memory provides the transient in-memory passage store.
package memory

import (
	"context"
	"sync"

	"github.com/scholia-labs/scholia-cli/internal/core/domain"
	"github.com/scholia-labs/scholia-cli/internal/core/ports/driven"
)

// PassageStore is an append-only in-memory store. Identifiers are dense
// and assigned in insertion order starting at 1. All methods are safe
// for concurrent use, and a batch added by Add becomes visible to
// readers all at once.
type PassageStore struct {
	mu       sync.RWMutex
	passages []domain.Passage
}

var _ driven.PassageStore = (*PassageStore)(nil)

// NewPassageStore creates an empty passage store.
func NewPassageStore() *PassageStore {
	return &PassageStore{}
}

// Add appends the drafts under the write lock and returns their
// assigned identifiers in order.
func (s *PassageStore) Add(ctx context.Context, drafts []domain.PassageDraft) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int, 0, len(drafts))
	for _, draft := range drafts {
		id := len(s.passages) + 1
		s.passages = append(s.passages, domain.Passage{
			ID:   id,
			Text: draft.Text,
			Meta: draft.Meta,
		})
		ids = append(ids, id)
	}
	return ids, nil
}

// All returns a snapshot copy of every passage in identifier order.
func (s *PassageStore) All(ctx context.Context) ([]domain.Passage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Passage, len(s.passages))
	copy(out, s.passages)
	return out, nil
}

// Count reports the number of stored passages.
func (s *PassageStore) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.passages), nil
}
