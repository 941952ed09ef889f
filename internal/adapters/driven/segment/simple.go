package segment

import (
	"strings"

	"github.com/scholia-labs/scholia-cli/internal/core/ports/driven"
)

// Simple splits text on sentence terminators followed by whitespace.
// Text without any terminator comes back as a single sentence, which is
// the common case after normalization strips punctuation.
type Simple struct{}

var _ driven.SentenceSplitter = (*Simple)(nil)

// NewSimple creates the terminator-based splitter.
func NewSimple() *Simple {
	return &Simple{}
}

// Split returns the sentences of text in order.
func (s *Simple) Split(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var sentences []string
	start := 0
	runes := []rune(text)

	for i := 0; i < len(runes); i++ {
		if !isTerminator(runes[i]) {
			continue
		}
		// Consume a run of terminators, e.g. "?!" or "...".
		end := i
		for end+1 < len(runes) && isTerminator(runes[end+1]) {
			end++
		}
		// Only break when the run ends the text or whitespace follows.
		if end+1 < len(runes) && !isSpace(runes[end+1]) {
			i = end
			continue
		}

		sentence := strings.TrimSpace(string(runes[start : end+1]))
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		start = end + 1
		i = end
	}

	if rest := strings.TrimSpace(string(runes[start:])); rest != "" {
		sentences = append(sentences, rest)
	}
	return sentences
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
