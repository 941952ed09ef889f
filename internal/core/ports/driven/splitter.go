package driven

// SentenceSplitter segments prose into sentences.
//
// The chunker packs whole sentences into passages, so the quality of the
// segmentation directly controls the chunk boundaries. Implementations
// must never return empty strings and must preserve the input's text
// verbatim within each sentence.
type SentenceSplitter interface {
	// Split returns the sentences of text in order.
	// An input with no sentence terminators yields a single element.
	// Blank input yields an empty slice.
	Split(text string) []string
}
