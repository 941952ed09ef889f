package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholia-labs/scholia-cli/internal/core/domain"
)

func passage(id int, text string) domain.Passage {
	return domain.Passage{ID: id, Text: text}
}

func TestQueryScorer_ScoresWithinBounds(t *testing.T) {
	s := NewQueryScorer()
	passages := []domain.Passage{
		passage(1, "amyloid plaques and tau tangles drive alzheimer disease progression"),
		passage(2, "unrelated text about gardening and soil"),
		passage(3, "memory loss and cognitive decline treatment therapy research study"),
	}

	ranked := s.Score("what causes amyloid plaques in alzheimer disease", passages)
	for _, sp := range ranked {
		assert.GreaterOrEqual(t, sp.Score, 0.0)
		assert.LessOrEqual(t, sp.Score, 1.0)
	}
}

func TestQueryScorer_Deterministic(t *testing.T) {
	s := NewQueryScorer()
	passages := []domain.Passage{
		passage(1, "tau pathology spreads through synaptic connections"),
		passage(2, "amyloid beta accumulation precedes cognitive symptoms"),
		passage(3, "microglia mediate neuroinflammation in disease"),
	}

	first := s.Score("how does tau pathology spread", passages)
	for range 10 {
		again := s.Score("how does tau pathology spread", passages)
		require.Equal(t, first, again)
	}
}

func TestQueryScorer_DescendingOrderTiesById(t *testing.T) {
	s := NewQueryScorer()
	// Identical text scores identically, so ordering falls back to ID.
	passages := []domain.Passage{
		passage(3, "amyloid plaques in the cortex"),
		passage(1, "amyloid plaques in the cortex"),
		passage(2, "amyloid plaques in the cortex"),
	}

	ranked := s.Score("amyloid plaques", passages)
	require.Len(t, ranked, 3)
	assert.Equal(t, 1, ranked[0].Passage.ID)
	assert.Equal(t, 2, ranked[1].Passage.ID)
	assert.Equal(t, 3, ranked[2].Passage.ID)

	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
}

func TestQueryScorer_DomainTermAloneIncludes(t *testing.T) {
	s := NewQueryScorer()
	// No token overlap with the query, but "microglia" is in the
	// domain vocabulary.
	passages := []domain.Passage{passage(1, "microglia were observed")}

	ranked := s.Score("zzz qqq", passages)
	require.Len(t, ranked, 1)
	assert.GreaterOrEqual(t, ranked[0].Score, domainBoost)
}

func TestQueryScorer_IrrelevantExcluded(t *testing.T) {
	s := NewQueryScorer()
	passages := []domain.Passage{passage(1, "gardening tips for spring soil")}

	ranked := s.Score("quantum computing hardware", passages)
	assert.Empty(t, ranked)
}

func TestQueryScorer_ShortQueryWordsIgnoredForBoosts(t *testing.T) {
	s := NewQueryScorer()
	// "of" and "in" are too short to count as keywords; no domain terms
	// and no long-token overlap either.
	passages := []domain.Passage{passage(1, "of in at by")}

	ranked := s.Score("of in", passages)
	require.Len(t, ranked, 1)
	// Included via Jaccard above the threshold, no keyword boosts.
	assert.InDelta(t, 0.5, ranked[0].Score, 0.0001)
}

func TestQueryScorer_ScoreCappedAtOne(t *testing.T) {
	s := NewQueryScorer()
	text := "alzheimer disease amyloid tau treatment therapy memory cognitive"
	passages := []domain.Passage{passage(1, text)}

	ranked := s.Score(text, passages)
	require.Len(t, ranked, 1)
	assert.Equal(t, 1.0, ranked[0].Score)
}

func TestQueryScorer_PreviewTruncated(t *testing.T) {
	s := NewQueryScorer()
	long := "alzheimer " + strings.Repeat("x", 900)
	passages := []domain.Passage{passage(1, long)}

	ranked := s.Score("alzheimer", passages)
	require.Len(t, ranked, 1)
	assert.Len(t, []rune(ranked[0].Preview), previewLimit+3)
	assert.True(t, strings.HasSuffix(ranked[0].Preview, "..."))
}

func TestQueryScorer_EmptyStore(t *testing.T) {
	s := NewQueryScorer()
	assert.Empty(t, s.Score("anything", nil))
}
