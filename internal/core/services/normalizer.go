package services

import (
	"regexp"
	"strings"
)

// Normalizer canonicalises raw article text before chunking.
//
// The pipeline is fixed and order-sensitive: lowercase, strip markup,
// strip URLs, strip email addresses, replace everything that is not a
// letter or space, then collapse whitespace. Running the output through
// the pipeline again is a no-op.
type Normalizer struct{}

// NewNormalizer creates a text normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

var (
	markupPattern = regexp.MustCompile(`<[^>]+>`)
	urlPattern    = regexp.MustCompile(`https?://\S+`)
	emailPattern  = regexp.MustCompile(`\S+@\S+`)
	symbolPattern = regexp.MustCompile(`[^a-z\s]`)
)

// Normalize applies the full canonicalisation pipeline to text.
func (n *Normalizer) Normalize(text string) string {
	text = strings.ToLower(text)
	text = markupPattern.ReplaceAllString(text, "")
	text = urlPattern.ReplaceAllString(text, "")
	text = emailPattern.ReplaceAllString(text, "")
	text = symbolPattern.ReplaceAllString(text, " ")
	return strings.Join(strings.Fields(text), " ")
}
