package domain

const unknownDescription = "Unknown"

// SplitterKind selects the sentence segmentation implementation used by
// the chunker.
type SplitterKind string

// Available sentence splitters.
const (
	// SplitterSimple splits on runs of terminal punctuation.
	SplitterSimple SplitterKind = "simple"

	// SplitterLinguistic is abbreviation- and decimal-aware.
	SplitterLinguistic SplitterKind = "linguistic"
)

// IsValid returns true if the splitter kind is recognised.
func (k SplitterKind) IsValid() bool {
	switch k {
	case SplitterSimple, SplitterLinguistic:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k SplitterKind) String() string {
	return string(k)
}

// Description returns a human-readable description of the splitter.
func (k SplitterKind) Description() string {
	switch k {
	case SplitterSimple:
		return "Simple (terminal punctuation)"
	case SplitterLinguistic:
		return "Linguistic (abbreviation-aware)"
	default:
		return unknownDescription
	}
}

// AllSplitterKinds returns the available splitter kinds.
func AllSplitterKinds() []SplitterKind {
	return []SplitterKind{SplitterSimple, SplitterLinguistic}
}

// Default retrieval parameters. Sizes are in characters.
const (
	DefaultChunkSize    = 500
	DefaultChunkOverlap = 50
	DefaultTopK         = 3
)

// PubMedSettings holds NCBI E-utilities configuration.
type PubMedSettings struct {
	// APIKey raises the NCBI rate limit from 3 to 10 requests/second.
	// Empty is valid.
	APIKey string

	// MaxPerQuery caps how many articles one search may fetch.
	MaxPerQuery int
}

// RetrievalSettings holds all configuration the engine and collector read.
type RetrievalSettings struct {
	// ChunkSize is the target passage length in characters.
	ChunkSize int

	// ChunkOverlap is the number of trailing characters carried into
	// the next passage. Must be smaller than ChunkSize.
	ChunkOverlap int

	// TopK is the default number of sources returned per query.
	TopK int

	// Splitter selects the sentence segmentation implementation.
	Splitter SplitterKind

	// DataDir is where the article cache lives.
	// Empty means ~/.scholia/data.
	DataDir string

	// PubMed holds NCBI E-utilities configuration.
	PubMed PubMedSettings
}

// DefaultRetrievalSettings returns settings with the stock parameters.
func DefaultRetrievalSettings() RetrievalSettings {
	return RetrievalSettings{
		ChunkSize:    DefaultChunkSize,
		ChunkOverlap: DefaultChunkOverlap,
		TopK:         DefaultTopK,
		Splitter:     SplitterSimple,
		PubMed: PubMedSettings{
			MaxPerQuery: 20,
		},
	}
}

// Validate checks the settings against the engine's preconditions.
func (s RetrievalSettings) Validate() error {
	if s.ChunkSize <= 0 {
		return ErrInvalidInput
	}
	if s.ChunkOverlap < 0 || s.ChunkOverlap >= s.ChunkSize {
		return ErrInvalidChunking
	}
	if s.TopK < 1 {
		return ErrInvalidTopK
	}
	if !s.Splitter.IsValid() {
		return ErrInvalidInput
	}
	return nil
}
