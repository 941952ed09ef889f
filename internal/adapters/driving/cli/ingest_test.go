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

// fakeWatchSource implements driven.WatchSource for testing.
type fakeWatchSource struct {
	updates  chan domain.Article
	watchErr error
}

func (f *fakeWatchSource) Type() string { return "filesystem" }

func (f *fakeWatchSource) Close() error { return nil }

func (f *fakeWatchSource) Search(_ context.Context, _ string, _ int) ([]domain.Article, error) {
	return nil, nil
}

func (f *fakeWatchSource) Watch(_ context.Context) (<-chan domain.Article, error) {
	if f.watchErr != nil {
		return nil, f.watchErr
	}
	return f.updates, nil
}

func TestIngestCmd_Use(t *testing.T) {
	assert.Equal(t, "ingest", ingestCmd.Use)
}

func TestIngestCmd_HasDirAndWatchFlags(t *testing.T) {
	dirFlag := ingestCmd.Flags().Lookup("dir")
	require.NotNil(t, dirFlag, "dir flag should exist")

	watchFlag := ingestCmd.Flags().Lookup("watch")
	require.NotNil(t, watchFlag, "watch flag should exist")
	assert.Equal(t, "false", watchFlag.DefValue)
}

func TestIngestCmd_WatchRequiresDir(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ingest", "--watch"})
	defer func() {
		rootCmd.SetArgs(nil)
		ingestWatch = false
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "--watch requires --dir")
}

func TestIngestCmd_ReportsCorpusReady(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ingest"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Corpus ready: 5 passages")
}

func TestIngestCmd_EmptyCorpusHint(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	retrievalService = &mockRetrievalService{
		PassageCountFunc: func(_ context.Context) (int, error) {
			return 0, nil
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ingest"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Run 'scholia collect' first.")
}

func TestWatchDirectory_IngestsStreamedArticles(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	var ingested []string
	retrievalService = &mockRetrievalService{
		IngestFunc: func(_ context.Context, docs []domain.RawDocument) (int, error) {
			for _, doc := range docs {
				ingested = append(ingested, doc.Meta.Title)
			}
			return len(docs), nil
		},
	}

	source := &fakeWatchSource{updates: make(chan domain.Article, 2)}
	source.updates <- domain.Article{ID: "file:a.txt", Title: "amyloid notes", Abstract: "Amyloid text."}
	source.updates <- domain.Article{ID: "file:b.md", Title: "tau notes", Abstract: "Tau text."}
	close(source.updates)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)

	err := watchDirectory(context.Background(), rootCmd, source)

	require.NoError(t, err)
	assert.Equal(t, []string{"amyloid notes", "tau notes"}, ingested)
	assert.Contains(t, buf.String(), "Watching for new files.")
	assert.Contains(t, buf.String(), `Ingested "amyloid notes" (1 passages)`)
	assert.Contains(t, buf.String(), `Ingested "tau notes" (1 passages)`)
}

func TestWatchDirectory_ContinuesAfterIngestError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	calls := 0
	retrievalService = &mockRetrievalService{
		IngestFunc: func(_ context.Context, docs []domain.RawDocument) (int, error) {
			calls++
			if calls == 1 {
				return 0, errors.New("store unavailable")
			}
			return len(docs), nil
		},
	}

	source := &fakeWatchSource{updates: make(chan domain.Article, 2)}
	source.updates <- domain.Article{ID: "file:a.txt", Title: "first"}
	source.updates <- domain.Article{ID: "file:b.txt", Title: "second"}
	close(source.updates)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)

	err := watchDirectory(context.Background(), rootCmd, source)

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.NotContains(t, buf.String(), `Ingested "first"`)
	assert.Contains(t, buf.String(), `Ingested "second"`)
}

func TestWatchDirectory_WatchError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	source := &fakeWatchSource{watchErr: errors.New("inotify limit")}

	err := watchDirectory(context.Background(), rootCmd, source)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "watching directory")
}
