package driving

import "github.com/scholia-labs/scholia-cli/internal/core/domain"

// SettingsService reads and updates the persisted retrieval settings.
type SettingsService interface {
	// Current returns the effective settings, with defaults filled in
	// for anything not persisted.
	Current() domain.RetrievalSettings

	// SetChunking updates the chunk size and overlap. Returns
	// domain.ErrInvalidChunking when overlap >= size.
	SetChunking(size, overlap int) error

	// SetTopK updates the default number of passages returned per query.
	SetTopK(k int) error

	// SetSplitter selects the sentence splitter implementation.
	SetSplitter(kind domain.SplitterKind) error

	// SetDataDir updates the corpus directory.
	SetDataDir(dir string) error

	// SetPubMedAPIKey stores the NCBI API key.
	SetPubMedAPIKey(key string) error
}
