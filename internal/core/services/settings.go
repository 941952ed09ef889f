package services

import (
	"fmt"

	"github.com/scholia-labs/scholia-cli/internal/core/domain"
	"github.com/scholia-labs/scholia-cli/internal/core/ports/driven"
	"github.com/scholia-labs/scholia-cli/internal/core/ports/driving"
)

// Configuration keys used in the persisted settings file.
const (
	keyChunkSize       = "chunk_size"
	keyChunkOverlap    = "chunk_overlap"
	keyTopK            = "top_k"
	keySplitter        = "splitter"
	keyDataDir         = "data_dir"
	keyPubMedAPIKey    = "pubmed.api_key"
	keyPubMedMaxPerQry = "pubmed.max_per_query"
)

// Settings reads and updates the persisted retrieval settings through
// the config store.
type Settings struct {
	config driven.ConfigStore
}

var _ driving.SettingsService = (*Settings)(nil)

// NewSettings creates the settings service over a config store.
func NewSettings(config driven.ConfigStore) *Settings {
	return &Settings{config: config}
}

// Current returns the effective settings with defaults applied for
// anything not persisted.
func (s *Settings) Current() domain.RetrievalSettings {
	def := domain.DefaultRetrievalSettings()

	settings := domain.RetrievalSettings{
		ChunkSize:    s.config.GetInt(keyChunkSize, def.ChunkSize),
		ChunkOverlap: s.config.GetInt(keyChunkOverlap, def.ChunkOverlap),
		TopK:         s.config.GetInt(keyTopK, def.TopK),
		Splitter:     domain.SplitterKind(s.config.GetString(keySplitter, def.Splitter.String())),
		DataDir:      s.config.GetString(keyDataDir, def.DataDir),
		PubMed: domain.PubMedSettings{
			APIKey:      s.config.GetString(keyPubMedAPIKey, def.PubMed.APIKey),
			MaxPerQuery: s.config.GetInt(keyPubMedMaxPerQry, def.PubMed.MaxPerQuery),
		},
	}

	if !settings.Splitter.IsValid() {
		settings.Splitter = def.Splitter
	}
	return settings
}

// SetChunking updates the chunk size and overlap together so the pair
// is always validated as a unit.
func (s *Settings) SetChunking(size, overlap int) error {
	if size <= 0 {
		return fmt.Errorf("%w: chunk size must be positive", domain.ErrInvalidInput)
	}
	if overlap < 0 || overlap >= size {
		return fmt.Errorf("%w: size %d, overlap %d", domain.ErrInvalidChunking, size, overlap)
	}
	if err := s.config.Set(keyChunkSize, size); err != nil {
		return err
	}
	return s.config.Set(keyChunkOverlap, overlap)
}

// SetTopK updates the default number of passages returned per query.
func (s *Settings) SetTopK(k int) error {
	if k < 1 {
		return fmt.Errorf("%w: got %d", domain.ErrInvalidTopK, k)
	}
	return s.config.Set(keyTopK, k)
}

// SetSplitter selects the sentence splitter implementation.
func (s *Settings) SetSplitter(kind domain.SplitterKind) error {
	if !kind.IsValid() {
		return fmt.Errorf("%w: unknown splitter %q", domain.ErrInvalidInput, kind)
	}
	return s.config.Set(keySplitter, kind.String())
}

// SetDataDir updates the corpus directory.
func (s *Settings) SetDataDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("%w: data directory cannot be empty", domain.ErrInvalidInput)
	}
	return s.config.Set(keyDataDir, dir)
}

// SetPubMedAPIKey stores the NCBI API key. An empty key clears it.
func (s *Settings) SetPubMedAPIKey(key string) error {
	return s.config.Set(keyPubMedAPIKey, key)
}
