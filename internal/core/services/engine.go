package services

import (
	"context"
	"fmt"

	"github.com/scholia-labs/scholia-cli/internal/core/domain"
	"github.com/scholia-labs/scholia-cli/internal/core/ports/driven"
	"github.com/scholia-labs/scholia-cli/internal/core/ports/driving"
	"github.com/scholia-labs/scholia-cli/internal/logger"
)

// RetrievalEngine wires the section extractor, normalizer, chunker and
// scorer into the retrieval pipeline behind the driving port.
type RetrievalEngine struct {
	extractor  *SectionExtractor
	normalizer *Normalizer
	chunker    *Chunker
	scorer     *QueryScorer
	store      driven.PassageStore
	log        *logger.Logger
}

var _ driving.RetrievalService = (*RetrievalEngine)(nil)

// NewRetrievalEngine creates the retrieval pipeline over the given
// passage store.
func NewRetrievalEngine(store driven.PassageStore, chunker *Chunker, log *logger.Logger) *RetrievalEngine {
	return &RetrievalEngine{
		extractor:  NewSectionExtractor(),
		normalizer: NewNormalizer(),
		chunker:    chunker,
		scorer:     NewQueryScorer(),
		store:      store,
		log:        log,
	}
}

// Ingest splits each document into section-labelled passages and stores
// them. Each document's passages are stored in a single atomic batch, so
// a failure part-way leaves earlier documents fully ingested and the
// failing one absent.
func (e *RetrievalEngine) Ingest(ctx context.Context, docs []domain.RawDocument) (int, error) {
	e.log.Section("Ingesting documents")
	total := 0

	for _, doc := range docs {
		drafts := e.splitDocument(doc)
		if len(drafts) == 0 {
			e.log.Debug("Document %q produced no passages", doc.Meta.Title)
			continue
		}

		ids, err := e.store.Add(ctx, drafts)
		if err != nil {
			return total, fmt.Errorf("storing passages for %q: %w", doc.Meta.Title, err)
		}

		e.log.Debug("Document %q: %d passages stored", doc.Meta.Title, len(ids))
		total += len(ids)
	}

	e.log.Info("Ingested %d passages from %d documents", total, len(docs))
	return total, nil
}

// splitDocument extracts sections, normalizes each and chunks it with a
// section label in the metadata. When no section heading matched, the
// whole text is chunked under the "full" label so nothing is dropped.
func (e *RetrievalEngine) splitDocument(doc domain.RawDocument) []domain.PassageDraft {
	sections := e.extractor.Extract(doc.Text)

	var drafts []domain.PassageDraft
	for _, part := range []struct {
		label   string
		content string
	}{
		{domain.SectionAbstract, sections.Abstract},
		{domain.SectionIntroduction, sections.Introduction},
		{domain.SectionConclusion, sections.Conclusion},
	} {
		if part.content == "" {
			continue
		}
		normalized := e.normalizer.Normalize(part.content)
		drafts = append(drafts, e.chunker.Chunk(normalized, doc.Meta.WithSection(part.label))...)
	}

	if len(drafts) == 0 && sections.FullText != "" {
		normalized := e.normalizer.Normalize(sections.FullText)
		drafts = e.chunker.Chunk(normalized, doc.Meta.WithSection(domain.SectionFull))
	}

	return drafts
}

// Query scores every stored passage against the query and assembles the
// answer from the best matches. Confidence is derived from the full
// relevant set, not just the topK passages returned.
func (e *RetrievalEngine) Query(ctx context.Context, query string, topK int) (domain.QueryResult, error) {
	if topK < 1 {
		return domain.QueryResult{}, fmt.Errorf("%w: got %d", domain.ErrInvalidTopK, topK)
	}

	e.log.Section("Querying passages")
	passages, err := e.store.All(ctx)
	if err != nil {
		return domain.QueryResult{}, fmt.Errorf("loading passages: %w", err)
	}

	ranked := e.scorer.Score(query, passages)
	e.log.Debug("Scored %d passages, %d relevant", len(passages), len(ranked))

	sources := ranked
	if len(sources) > topK {
		sources = sources[:topK]
	}

	return domain.QueryResult{
		Query:      query,
		Answer:     composeAnswer(query, ranked),
		Sources:    sources,
		Confidence: deriveConfidence(ranked),
	}, nil
}

// PassageCount reports how many passages are currently stored.
func (e *RetrievalEngine) PassageCount(ctx context.Context) (int, error) {
	return e.store.Count(ctx)
}
