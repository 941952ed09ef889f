package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholia-labs/scholia-cli/internal/core/domain"
)

func TestAskCmd_Use(t *testing.T) {
	assert.Equal(t, "ask [question]", askCmd.Use)
}

func TestAskCmd_RequiresExactlyOneArg(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ask"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestAskCmd_HasTopKFlag(t *testing.T) {
	flag := askCmd.Flags().Lookup("top-k")
	require.NotNil(t, flag, "top-k flag should exist")
	assert.Equal(t, "k", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)
}

func TestAskCmd_ExecutesWithQuestion(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "what causes amyloid plaques"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "A canned answer about amyloid.")
	assert.Contains(t, buf.String(), "Confidence: 0.75")
	assert.Contains(t, buf.String(), "Amyloid Review")
	assert.Contains(t, buf.String(), "Section: abstract")
}

func TestAskCmd_UsesConfiguredTopK(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	mock := &mockRetrievalService{}
	retrievalService = mock

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "tau tangles"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, "tau tangles", mock.lastQuery)
	assert.Equal(t, domain.DefaultTopK, mock.lastTopK)
}

func TestAskCmd_TopKFlagOverrides(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	mock := &mockRetrievalService{}
	retrievalService = mock

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "-k", "7", "tau tangles"})
	defer func() {
		rootCmd.SetArgs(nil)
		askTopK = 0
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, 7, mock.lastTopK)
}

func TestAskCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "--json", "amyloid"})
	defer func() {
		rootCmd.SetArgs(nil)
		askJSON = false
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "\"answer\"")
	assert.Contains(t, buf.String(), "\"confidence\"")
	assert.Contains(t, buf.String(), "\"sources\"")
}

func TestAskCmd_ServiceNotConfigured(t *testing.T) {
	oldService := retrievalService
	retrievalService = nil
	defer func() {
		retrievalService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ask", "anything"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "retrieval service not configured")
}

func TestAskCmd_QueryError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	retrievalService = &mockRetrievalService{
		QueryFunc: func(_ context.Context, _ string, _ int) (domain.QueryResult, error) {
			return domain.QueryResult{}, errors.New("scorer exploded")
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ask", "anything"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "query failed")
}

func TestAskCmd_ReloadsEmptyCorpus(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	ingested := 0
	retrievalService = &mockRetrievalService{
		PassageCountFunc: func(_ context.Context) (int, error) {
			return 0, nil
		},
		IngestFunc: func(_ context.Context, docs []domain.RawDocument) (int, error) {
			ingested = len(docs)
			return len(docs), nil
		},
	}
	collectorService = &mockCollectorService{
		CorpusFunc: func(_ context.Context) ([]domain.Article, error) {
			return []domain.Article{
				{ID: "pmid:1", Title: "Cached Article", Abstract: "Cached abstract text."},
			}, nil
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "amyloid"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, 1, ingested)
}
