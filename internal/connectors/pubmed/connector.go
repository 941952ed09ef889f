// Package pubmed fetches article metadata from the NCBI E-utilities API.
package pubmed

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/scholia-labs/scholia-cli/internal/core/domain"
	"github.com/scholia-labs/scholia-cli/internal/core/ports/driven"
	"github.com/scholia-labs/scholia-cli/internal/logger"
)

const (
	defaultBaseURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"

	// NCBI allows 3 requests/second anonymously and 10 with an API key.
	anonymousRate = 3
	keyedRate     = 10
)

// Option configures a Connector.
type Option func(*Connector)

// WithBaseURL overrides the E-utilities endpoint, used in tests.
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

// WithAPIKey sets the NCBI API key, which raises the rate limit.
func WithAPIKey(key string) Option {
	return func(c *Connector) {
		c.apiKey = key
	}
}

// Connector is the PubMed article source. All requests pass through a
// token bucket sized to the NCBI rate limit.
type Connector struct {
	client  *http.Client
	baseURL string
	apiKey  string
	limiter *rate.Limiter
	log     *logger.Logger
}

var _ driven.ArticleSource = (*Connector)(nil)

// NewConnector creates a PubMed connector.
func NewConnector(log *logger.Logger, opts ...Option) *Connector {
	c := &Connector{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: defaultBaseURL,
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}

	limit := rate.Limit(anonymousRate)
	if c.apiKey != "" {
		limit = rate.Limit(keyedRate)
	}
	c.limiter = rate.NewLimiter(limit, 1)
	return c
}

// Type returns the source name.
func (c *Connector) Type() string {
	return "pubmed"
}

// Close releases resources. The connector holds none beyond the shared
// HTTP client.
func (c *Connector) Close() error {
	return nil
}

// Search runs an ESearch for PMIDs, then fetches detail for each via
// EFetch. A PMID whose detail fetch fails is logged and skipped.
func (c *Connector) Search(ctx context.Context, query string, limit int) ([]domain.Article, error) {
	pmids, err := c.searchIDs(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	c.log.Debug("pubmed: %d PMIDs for %q", len(pmids), query)

	var articles []domain.Article
	for _, pmid := range pmids {
		article, err := c.fetchDetail(ctx, pmid)
		if err != nil {
			if ctx.Err() != nil {
				return articles, ctx.Err()
			}
			c.log.Warn("pubmed: fetching %s: %v", pmid, err)
			continue
		}
		articles = append(articles, article)
	}
	return articles, nil
}

type esearchResponse struct {
	Result struct {
		IDList []string `json:"idlist"`
	} `json:"esearchresult"`
}

func (c *Connector) searchIDs(ctx context.Context, query string, limit int) ([]string, error) {
	params := url.Values{
		"db":      {"pubmed"},
		"term":    {query},
		"retmax":  {strconv.Itoa(limit)},
		"retmode": {"json"},
	}

	body, err := c.get(ctx, "/esearch.fcgi", params)
	if err != nil {
		return nil, err
	}

	var result esearchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decoding esearch response: %w", err)
	}
	return result.Result.IDList, nil
}

type efetchResponse struct {
	Articles []efetchArticle `xml:"PubmedArticle"`
}

type efetchArticle struct {
	Title     string         `xml:"MedlineCitation>Article>ArticleTitle"`
	Abstracts []string       `xml:"MedlineCitation>Article>Abstract>AbstractText"`
	Journal   string         `xml:"MedlineCitation>Article>Journal>Title"`
	Year      string         `xml:"MedlineCitation>Article>Journal>JournalIssue>PubDate>Year"`
	Month     string         `xml:"MedlineCitation>Article>Journal>JournalIssue>PubDate>Month"`
	Authors   []efetchAuthor `xml:"MedlineCitation>Article>AuthorList>Author"`
}

type efetchAuthor struct {
	LastName string `xml:"LastName"`
	ForeName string `xml:"ForeName"`
}

func (c *Connector) fetchDetail(ctx context.Context, pmid string) (domain.Article, error) {
	params := url.Values{
		"db":      {"pubmed"},
		"id":      {pmid},
		"retmode": {"xml"},
	}

	body, err := c.get(ctx, "/efetch.fcgi", params)
	if err != nil {
		return domain.Article{}, err
	}

	var result efetchResponse
	if err := xml.Unmarshal(body, &result); err != nil {
		return domain.Article{}, fmt.Errorf("decoding efetch response: %w", err)
	}
	if len(result.Articles) == 0 {
		return domain.Article{}, fmt.Errorf("no article in efetch response for %s", pmid)
	}

	parsed := result.Articles[0]

	var authors []string
	for _, a := range parsed.Authors {
		if a.LastName != "" && a.ForeName != "" {
			authors = append(authors, a.LastName+" "+a.ForeName)
		}
	}

	pubDate := strings.TrimSpace(parsed.Year + " " + parsed.Month)

	return domain.Article{
		ID:          "pmid:" + pmid,
		Title:       parsed.Title,
		Abstract:    strings.Join(parsed.Abstracts, "\n"),
		Authors:     authors,
		Journal:     parsed.Journal,
		PubDate:     pubDate,
		Source:      c.Type(),
		PMID:        pmid,
		CollectedAt: time.Now().UTC(),
	}, nil
}

// get issues a rate-limited GET and returns the response body.
func (c *Connector) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	if c.apiKey != "" {
		params.Set("api_key", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("%w: pubmed returned 429", domain.ErrRateLimited)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: pubmed returned %d", domain.ErrSourceUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	return body, nil
}
