package services

import (
	"context"
	"fmt"

	"github.com/scholia-labs/scholia-cli/internal/core/domain"
	"github.com/scholia-labs/scholia-cli/internal/core/ports/driven"
	"github.com/scholia-labs/scholia-cli/internal/core/ports/driving"
	"github.com/scholia-labs/scholia-cli/internal/logger"
)

// Collector fans queries out to the configured article sources,
// deduplicates the results and persists them to the corpus store.
type Collector struct {
	sources []driven.ArticleSource
	store   driven.ArticleStore
	log     *logger.Logger
}

var _ driving.CollectorService = (*Collector)(nil)

// NewCollector creates a collector over the given sources and store.
func NewCollector(sources []driven.ArticleSource, store driven.ArticleStore, log *logger.Logger) *Collector {
	return &Collector{sources: sources, store: store, log: log}
}

// Collect runs each query against every source and saves the unique
// results. A source that fails a query is logged and skipped; Collect
// fails only when every source failed on every query.
func (c *Collector) Collect(ctx context.Context, queries []string, perQuery int) (driving.CollectStatus, error) {
	c.log.Section("Collecting articles")

	status := driving.CollectStatus{
		Queries:   len(queries),
		PerSource: make(map[string]int),
	}

	seen := make(map[string]bool)
	var unique []domain.Article
	var lastErr error
	attempts, failures := 0, 0

	for _, query := range queries {
		for _, source := range c.sources {
			if err := ctx.Err(); err != nil {
				return status, err
			}

			attempts++
			articles, err := source.Search(ctx, query, perQuery)
			if err != nil {
				failures++
				lastErr = err
				c.log.Warn("%s: query %q failed: %v", source.Type(), query, err)
				continue
			}

			c.log.Debug("%s: query %q returned %d articles", source.Type(), query, len(articles))
			status.Fetched += len(articles)
			status.PerSource[source.Type()] += len(articles)

			for _, article := range articles {
				if seen[article.ID] {
					continue
				}
				seen[article.ID] = true
				unique = append(unique, article)
			}
		}
	}

	if attempts > 0 && failures == attempts {
		return status, fmt.Errorf("all sources failed: %w", lastErr)
	}

	if len(unique) > 0 {
		if err := c.store.SaveArticles(ctx, unique); err != nil {
			return status, fmt.Errorf("saving articles: %w", err)
		}
	}

	status.Stored = len(unique)
	c.log.Info("Stored %d unique articles (%d fetched)", status.Stored, status.Fetched)
	return status, nil
}

// Corpus returns every article currently stored.
func (c *Collector) Corpus(ctx context.Context) ([]domain.Article, error) {
	return c.store.ListArticles(ctx)
}
