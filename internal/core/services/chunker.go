package services

import (
	"strings"

	"github.com/scholia-labs/scholia-cli/internal/core/domain"
	"github.com/scholia-labs/scholia-cli/internal/core/ports/driven"
)

// ChunkerOption configures a Chunker.
type ChunkerOption func(*Chunker)

// WithChunkSize sets the target passage size in characters.
func WithChunkSize(size int) ChunkerOption {
	return func(c *Chunker) {
		c.chunkSize = size
	}
}

// WithChunkOverlap sets how many trailing characters of a passage are
// carried into the next one.
func WithChunkOverlap(overlap int) ChunkerOption {
	return func(c *Chunker) {
		c.chunkOverlap = overlap
	}
}

// Chunker packs whole sentences into passages of bounded size.
//
// Sentences accumulate greedily until the next one would push the buffer
// past the chunk size, at which point the buffer is emitted and the next
// buffer is seeded with the trailing overlap characters. A single sentence
// longer than the chunk size is emitted on its own rather than split.
// Callers must keep overlap smaller than size; the settings layer enforces
// this before a chunker is built.
type Chunker struct {
	splitter     driven.SentenceSplitter
	chunkSize    int
	chunkOverlap int
}

// NewChunker creates a chunker over the given sentence splitter.
// Defaults match domain.DefaultChunkSize and domain.DefaultChunkOverlap.
func NewChunker(splitter driven.SentenceSplitter, opts ...ChunkerOption) *Chunker {
	c := &Chunker{
		splitter:     splitter,
		chunkSize:    domain.DefaultChunkSize,
		chunkOverlap: domain.DefaultChunkOverlap,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Chunk splits text into passage drafts, attaching meta to each one.
// Blank input yields no drafts.
func (c *Chunker) Chunk(text string, meta domain.Metadata) []domain.PassageDraft {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	sentences := c.splitter.Split(text)
	var drafts []domain.PassageDraft
	current := ""
	currentLen := 0

	for _, sentence := range sentences {
		sentenceLen := len([]rune(sentence))

		if currentLen+sentenceLen > c.chunkSize {
			if current != "" {
				drafts = append(drafts, domain.PassageDraft{
					Text: strings.TrimSpace(current),
					Meta: meta.Clone(),
				})
			}

			if c.chunkOverlap > 0 {
				current = tail(current, c.chunkOverlap) + " " + sentence
				currentLen = len([]rune(current))
			} else {
				current = sentence
				currentLen = sentenceLen
			}
		} else {
			current += " " + sentence
			currentLen += sentenceLen
		}
	}

	if strings.TrimSpace(current) != "" {
		drafts = append(drafts, domain.PassageDraft{
			Text: strings.TrimSpace(current),
			Meta: meta.Clone(),
		})
	}

	return drafts
}

// tail returns the last n runes of s.
func tail(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[len(runes)-n:])
}
