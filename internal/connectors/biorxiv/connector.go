// Package biorxiv fetches preprint metadata from the bioRxiv details API.
package biorxiv

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/scholia-labs/scholia-cli/internal/core/domain"
	"github.com/scholia-labs/scholia-cli/internal/core/ports/driven"
	"github.com/scholia-labs/scholia-cli/internal/logger"
)

const defaultBaseURL = "https://api.biorxiv.org"

// Option configures a Connector.
type Option func(*Connector)

// WithBaseURL overrides the API endpoint, used in tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Connector) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Connector) {
		c.client = client
	}
}

// Connector is the bioRxiv preprint source.
type Connector struct {
	client  *http.Client
	baseURL string
	log     *logger.Logger
}

var _ driven.ArticleSource = (*Connector)(nil)

// NewConnector creates a bioRxiv connector.
func NewConnector(log *logger.Logger, opts ...Option) *Connector {
	c := &Connector{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: defaultBaseURL,
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Type returns the source name.
func (c *Connector) Type() string {
	return "biorxiv"
}

// Close releases resources.
func (c *Connector) Close() error {
	return nil
}

type detailsResponse struct {
	Collection []detailsItem `json:"collection"`
}

type detailsItem struct {
	DOI      string `json:"doi"`
	Title    string `json:"title"`
	Abstract string `json:"abstract"`
	Authors  string `json:"authors"`
	Date     string `json:"date"`
}

// Search queries the details endpoint under the 10.1101 prefix and
// returns up to limit preprints.
func (c *Connector) Search(ctx context.Context, query string, limit int) ([]domain.Article, error) {
	endpoint := fmt.Sprintf("%s/details/10.1101/%s/", c.baseURL, url.PathEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: biorxiv returned %d", domain.ErrSourceUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	var result detailsResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decoding details response: %w", err)
	}

	items := result.Collection
	if len(items) > limit {
		items = items[:limit]
	}
	c.log.Debug("biorxiv: %d preprints for %q", len(items), query)

	articles := make([]domain.Article, 0, len(items))
	for _, item := range items {
		id := "doi:" + item.DOI
		if item.DOI == "" {
			id = uuid.NewString()
		}
		articles = append(articles, domain.Article{
			ID:          id,
			Title:       item.Title,
			Abstract:    item.Abstract,
			Authors:     splitAuthors(item.Authors),
			Journal:     "bioRxiv",
			PubDate:     item.Date,
			Source:      c.Type(),
			DOI:         item.DOI,
			CollectedAt: time.Now().UTC(),
		})
	}
	return articles, nil
}

// splitAuthors parses the semicolon-separated author list the API
// returns.
func splitAuthors(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ";")
	authors := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			authors = append(authors, p)
		}
	}
	return authors
}
