package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholia-labs/scholia-cli/internal/core/domain"
)

type fakeConfigStore struct {
	values map[string]any
	setErr error
}

func newFakeConfigStore() *fakeConfigStore {
	return &fakeConfigStore{values: make(map[string]any)}
}

func (f *fakeConfigStore) Get(key string) (any, bool) {
	v, ok := f.values[key]
	return v, ok
}

func (f *fakeConfigStore) GetString(key, def string) string {
	if v, ok := f.values[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

func (f *fakeConfigStore) GetInt(key string, def int) int {
	if v, ok := f.values[key]; ok {
		if i, ok := v.(int); ok {
			return i
		}
	}
	return def
}

func (f *fakeConfigStore) Set(key string, value any) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.values[key] = value
	return nil
}

func (f *fakeConfigStore) Keys() []string {
	keys := make([]string, 0, len(f.values))
	for k := range f.values {
		keys = append(keys, k)
	}
	return keys
}

func TestSettings_DefaultsWhenEmpty(t *testing.T) {
	s := NewSettings(newFakeConfigStore())

	current := s.Current()
	assert.Equal(t, domain.DefaultChunkSize, current.ChunkSize)
	assert.Equal(t, domain.DefaultChunkOverlap, current.ChunkOverlap)
	assert.Equal(t, domain.DefaultTopK, current.TopK)
	assert.True(t, current.Splitter.IsValid())
}

func TestSettings_PersistedValuesWin(t *testing.T) {
	store := newFakeConfigStore()
	s := NewSettings(store)

	require.NoError(t, s.SetChunking(800, 100))
	require.NoError(t, s.SetTopK(5))

	current := s.Current()
	assert.Equal(t, 800, current.ChunkSize)
	assert.Equal(t, 100, current.ChunkOverlap)
	assert.Equal(t, 5, current.TopK)
}

func TestSettings_RejectsOverlapNotBelowSize(t *testing.T) {
	s := NewSettings(newFakeConfigStore())

	assert.ErrorIs(t, s.SetChunking(100, 100), domain.ErrInvalidChunking)
	assert.ErrorIs(t, s.SetChunking(100, 150), domain.ErrInvalidChunking)
	assert.ErrorIs(t, s.SetChunking(100, -1), domain.ErrInvalidChunking)
	assert.NoError(t, s.SetChunking(100, 99))
}

func TestSettings_RejectsInvalidTopK(t *testing.T) {
	s := NewSettings(newFakeConfigStore())

	assert.ErrorIs(t, s.SetTopK(0), domain.ErrInvalidTopK)
	assert.ErrorIs(t, s.SetTopK(-3), domain.ErrInvalidTopK)
}

func TestSettings_RejectsUnknownSplitter(t *testing.T) {
	s := NewSettings(newFakeConfigStore())

	assert.ErrorIs(t, s.SetSplitter("neural"), domain.ErrInvalidInput)
	for _, kind := range domain.AllSplitterKinds() {
		assert.NoError(t, s.SetSplitter(kind))
	}
}

func TestSettings_InvalidPersistedSplitterFallsBack(t *testing.T) {
	store := newFakeConfigStore()
	store.values["splitter"] = "neural"
	s := NewSettings(store)

	assert.True(t, s.Current().Splitter.IsValid())
}

func TestSettings_PubMedAPIKey(t *testing.T) {
	store := newFakeConfigStore()
	s := NewSettings(store)

	require.NoError(t, s.SetPubMedAPIKey("secret"))
	assert.Equal(t, "secret", s.Current().PubMed.APIKey)

	require.NoError(t, s.SetPubMedAPIKey(""))
	assert.Equal(t, "", s.Current().PubMed.APIKey)
}
