package domain

// RawDocument is one ingestion unit: free text plus optional metadata.
// It is produced by a collector source and consumed exactly once by the
// engine's ingest operation.
type RawDocument struct {
	// Text is the full free text of the document.
	Text string

	// Meta carries the bibliographic fields, zero-valued when unknown.
	Meta Metadata
}

// PassageDraft is a passage candidate produced by the chunker.
// The store assigns the final identifier when the draft is added.
type PassageDraft struct {
	// Text is the bounded passage text.
	Text string

	// Meta carries the passage metadata including the section label.
	Meta Metadata
}

// Passage is the atomic unit of retrieval: a bounded excerpt of a source
// document. Passages are immutable after creation and are never deleted
// individually; they live as long as their store.
//
// The length bound len(Text) <= chunkSize+chunkOverlap is a target, not a
// guarantee: a single sentence longer than the chunk size is emitted whole
// rather than split mid-sentence.
type Passage struct {
	// ID is a monotonically increasing identifier, starting at 1,
	// unique for the lifetime of the store that owns the passage.
	ID int

	// Text is the passage text.
	Text string

	// Meta carries the passage metadata.
	Meta Metadata
}

// ScoredPassage is a ranked query hit. It holds a copy of the passage,
// never a reference into the store, so results stay valid across later
// ingestion. Recomputed per query, never persisted.
type ScoredPassage struct {
	// Passage is a copy of the matched passage.
	Passage Passage

	// Score is the composite relevance score in [0,1].
	Score float64

	// Preview is the passage text truncated for display.
	Preview string
}

// QueryResult is the answer to one question. Immutable once returned.
type QueryResult struct {
	// Query is the question as asked.
	Query string `json:"query"`

	// Answer is the templated natural-language answer.
	Answer string `json:"answer"`

	// Sources are the top-ranked passages, at most topK of them,
	// in descending score order.
	Sources []ScoredPassage `json:"sources"`

	// Confidence summarises how trustworthy the ranked results are,
	// in [0.3, 1.0].
	Confidence float64 `json:"confidence"`
}
