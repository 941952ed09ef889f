package cli

import (
	"context"

	"github.com/scholia-labs/scholia-cli/internal/core/domain"
	"github.com/scholia-labs/scholia-cli/internal/core/ports/driving"
)

// mockRetrievalService implements driving.RetrievalService for testing.
type mockRetrievalService struct {
	IngestFunc       func(ctx context.Context, docs []domain.RawDocument) (int, error)
	QueryFunc        func(ctx context.Context, query string, topK int) (domain.QueryResult, error)
	PassageCountFunc func(ctx context.Context) (int, error)

	lastQuery string
	lastTopK  int
}

func (m *mockRetrievalService) Ingest(ctx context.Context, docs []domain.RawDocument) (int, error) {
	if m.IngestFunc != nil {
		return m.IngestFunc(ctx, docs)
	}
	return len(docs), nil
}

func (m *mockRetrievalService) Query(
	ctx context.Context,
	query string,
	topK int,
) (domain.QueryResult, error) {
	m.lastQuery = query
	m.lastTopK = topK
	if m.QueryFunc != nil {
		return m.QueryFunc(ctx, query, topK)
	}
	return domain.QueryResult{
		Query:      query,
		Answer:     "A canned answer about amyloid.",
		Confidence: 0.75,
		Sources: []domain.ScoredPassage{
			{
				Passage: domain.Passage{
					ID:   1,
					Text: "amyloid beta accumulates",
					Meta: domain.Metadata{
						Title:   "Amyloid Review",
						Section: domain.SectionAbstract,
						Source:  "pubmed",
					},
				},
				Score:   0.88,
				Preview: "amyloid beta accumulates",
			},
		},
	}, nil
}

func (m *mockRetrievalService) PassageCount(ctx context.Context) (int, error) {
	if m.PassageCountFunc != nil {
		return m.PassageCountFunc(ctx)
	}
	// Non-empty store so commands skip the corpus reload.
	return 5, nil
}

// mockCollectorService implements driving.CollectorService for testing.
type mockCollectorService struct {
	CollectFunc func(ctx context.Context, queries []string, perQuery int) (driving.CollectStatus, error)
	CorpusFunc  func(ctx context.Context) ([]domain.Article, error)

	lastQueries  []string
	lastPerQuery int
}

func (m *mockCollectorService) Collect(
	ctx context.Context,
	queries []string,
	perQuery int,
) (driving.CollectStatus, error) {
	m.lastQueries = queries
	m.lastPerQuery = perQuery
	if m.CollectFunc != nil {
		return m.CollectFunc(ctx, queries, perQuery)
	}
	return driving.CollectStatus{
		Queries: len(queries),
		Fetched: 8,
		Stored:  6,
		PerSource: map[string]int{
			"pubmed":  5,
			"biorxiv": 3,
		},
	}, nil
}

func (m *mockCollectorService) Corpus(ctx context.Context) ([]domain.Article, error) {
	if m.CorpusFunc != nil {
		return m.CorpusFunc(ctx)
	}
	return nil, nil
}

// mockEvaluationService implements driving.EvaluationService for testing.
type mockEvaluationService struct {
	EvaluateFunc func(ctx context.Context, cases []domain.EvalCase) (domain.EvalRun, error)
}

func (m *mockEvaluationService) Evaluate(
	ctx context.Context,
	cases []domain.EvalCase,
) (domain.EvalRun, error) {
	if m.EvaluateFunc != nil {
		return m.EvaluateFunc(ctx, cases)
	}
	return domain.EvalRun{
		ID: "run-1",
		Summary: domain.EvalSummary{
			Questions:    len(cases),
			AvgRelevance: 0.6,
		},
	}, nil
}

// mockSettingsService implements driving.SettingsService for testing.
type mockSettingsService struct {
	settings domain.RetrievalSettings

	chunkSize    int
	chunkOverlap int
	topK         int
	splitter     domain.SplitterKind
	apiKey       string

	setErr error
}

func newMockSettingsService() *mockSettingsService {
	return &mockSettingsService{
		settings: domain.RetrievalSettings{
			ChunkSize:    domain.DefaultChunkSize,
			ChunkOverlap: domain.DefaultChunkOverlap,
			TopK:         domain.DefaultTopK,
			Splitter:     domain.SplitterSimple,
			DataDir:      "/tmp/scholia-test",
			PubMed: domain.PubMedSettings{
				MaxPerQuery: 20,
			},
		},
	}
}

func (m *mockSettingsService) Current() domain.RetrievalSettings {
	return m.settings
}

func (m *mockSettingsService) SetChunking(size, overlap int) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.chunkSize = size
	m.chunkOverlap = overlap
	return nil
}

func (m *mockSettingsService) SetTopK(k int) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.topK = k
	return nil
}

func (m *mockSettingsService) SetSplitter(kind domain.SplitterKind) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.splitter = kind
	return nil
}

func (m *mockSettingsService) SetDataDir(_ string) error {
	return m.setErr
}

func (m *mockSettingsService) SetPubMedAPIKey(key string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.apiKey = key
	return nil
}

// setupTestServices installs working mocks and returns a cleanup that
// restores the previous services.
func setupTestServices() func() {
	oldRetrieval := retrievalService
	oldCollector := collectorService
	oldEval := evalService
	oldSettings := settingsService

	retrievalService = &mockRetrievalService{}
	collectorService = &mockCollectorService{}
	evalService = &mockEvaluationService{}
	settingsService = newMockSettingsService()

	return func() {
		retrievalService = oldRetrieval
		collectorService = oldCollector
		evalService = oldEval
		settingsService = oldSettings
	}
}
