package mcp

import (
	"context"

	"github.com/scholia-labs/scholia-cli/internal/core/domain"
	"github.com/scholia-labs/scholia-cli/internal/core/ports/driving"
)

// mockRetrievalService implements driving.RetrievalService for tests.
type mockRetrievalService struct {
	result   domain.QueryResult
	passages int
	err      error

	lastQuery string
	lastTopK  int
}

var _ driving.RetrievalService = (*mockRetrievalService)(nil)

func (m *mockRetrievalService) Ingest(context.Context, []domain.RawDocument) (int, error) {
	return 0, m.err
}

func (m *mockRetrievalService) Query(_ context.Context, query string, topK int) (domain.QueryResult, error) {
	m.lastQuery = query
	m.lastTopK = topK
	if m.err != nil {
		return domain.QueryResult{}, m.err
	}
	return m.result, nil
}

func (m *mockRetrievalService) PassageCount(context.Context) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.passages, nil
}

// mockCollectorService implements driving.CollectorService for tests.
type mockCollectorService struct {
	articles []domain.Article
	err      error
}

var _ driving.CollectorService = (*mockCollectorService)(nil)

func (m *mockCollectorService) Collect(context.Context, []string, int) (driving.CollectStatus, error) {
	return driving.CollectStatus{}, m.err
}

func (m *mockCollectorService) Corpus(context.Context) ([]domain.Article, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.articles, nil
}
