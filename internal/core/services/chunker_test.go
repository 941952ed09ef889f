package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholia-labs/scholia-cli/internal/core/domain"
)

// periodSplitter splits on ". " boundaries, keeping the terminator.
// It stands in for the real segment adapters in chunker tests.
type periodSplitter struct{}

func (periodSplitter) Split(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	parts := strings.SplitAfter(text, ". ")
	var sentences []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

func TestChunker_SingleSmallSentence(t *testing.T) {
	c := NewChunker(periodSplitter{}, WithChunkSize(100), WithChunkOverlap(10))
	drafts := c.Chunk("tau protein aggregates.", domain.Metadata{Title: "Tau"})

	require.Len(t, drafts, 1)
	assert.Equal(t, "tau protein aggregates.", drafts[0].Text)
	assert.Equal(t, "Tau", drafts[0].Meta.Title)
}

func TestChunker_OverlapSeedsNextChunk(t *testing.T) {
	c := NewChunker(periodSplitter{}, WithChunkSize(3), WithChunkOverlap(1))
	drafts := c.Chunk("A. B. C.", domain.Metadata{})

	require.Len(t, drafts, 3)
	assert.Equal(t, "A.", drafts[0].Text)
	assert.Equal(t, ". B.", drafts[1].Text)
	assert.Equal(t, ". C.", drafts[2].Text)
}

func TestChunker_NoOverlap(t *testing.T) {
	c := NewChunker(periodSplitter{}, WithChunkSize(3), WithChunkOverlap(0))
	drafts := c.Chunk("A. B. C.", domain.Metadata{})

	require.Len(t, drafts, 3)
	assert.Equal(t, "A.", drafts[0].Text)
	assert.Equal(t, "B.", drafts[1].Text)
	assert.Equal(t, "C.", drafts[2].Text)
}

func TestChunker_OversizedSentenceEmittedWhole(t *testing.T) {
	long := strings.Repeat("x", 50) + "."
	c := NewChunker(periodSplitter{}, WithChunkSize(10), WithChunkOverlap(2))
	drafts := c.Chunk(long, domain.Metadata{})

	require.Len(t, drafts, 1)
	assert.Equal(t, long, drafts[0].Text)
}

func TestChunker_EveryCharacterCovered(t *testing.T) {
	text := "amyloid plaques form. tau tangles spread. neurons degenerate. memory fades."
	c := NewChunker(periodSplitter{}, WithChunkSize(30), WithChunkOverlap(5))
	drafts := c.Chunk(text, domain.Metadata{})

	require.NotEmpty(t, drafts)
	joined := " "
	for _, d := range drafts {
		joined += d.Text + " "
	}
	for _, sentence := range (periodSplitter{}).Split(text) {
		assert.Contains(t, joined, sentence)
	}
}

func TestChunker_MetadataClonedPerDraft(t *testing.T) {
	meta := domain.Metadata{Title: "Shared", Authors: []string{"Doe"}}
	c := NewChunker(periodSplitter{}, WithChunkSize(3), WithChunkOverlap(0))
	drafts := c.Chunk("A. B.", meta)

	require.Len(t, drafts, 2)
	drafts[0].Meta.Authors[0] = "changed"
	assert.Equal(t, "Doe", meta.Authors[0])
	assert.Equal(t, "Doe", drafts[1].Meta.Authors[0])
}

func TestChunker_BlankInput(t *testing.T) {
	c := NewChunker(periodSplitter{})
	assert.Empty(t, c.Chunk("", domain.Metadata{}))
	assert.Empty(t, c.Chunk("   ", domain.Metadata{}))
}
