package segment

import (
	"strings"

	"github.com/scholia-labs/scholia-cli/internal/core/ports/driven"
)

// abbreviations that end with a period but do not end a sentence.
// Lowercased, without the trailing period.
var abbreviations = map[string]struct{}{
	"al":   {}, // et al.
	"fig":  {},
	"figs": {},
	"eq":   {},
	"ref":  {},
	"refs": {},
	"vol":  {},
	"no":   {},
	"pp":   {},
	"vs":   {},
	"cf":   {},
	"e.g":  {},
	"i.e":  {},
	"dr":   {},
	"prof": {},
	"jan":  {},
	"feb":  {},
	"mar":  {},
	"apr":  {},
	"jun":  {},
	"jul":  {},
	"aug":  {},
	"sep":  {},
	"oct":  {},
	"nov":  {},
	"dec":  {},
}

// Linguistic splits like Simple but keeps sentences together across
// scholarly abbreviations, single-letter initials and decimal numbers.
type Linguistic struct {
	simple *Simple
}

var _ driven.SentenceSplitter = (*Linguistic)(nil)

// NewLinguistic creates the abbreviation-aware splitter.
func NewLinguistic() *Linguistic {
	return &Linguistic{simple: NewSimple()}
}

// Split returns the sentences of text in order, re-joining fragments the
// terminator pass broke at an abbreviation boundary.
func (l *Linguistic) Split(text string) []string {
	fragments := l.simple.Split(text)
	if len(fragments) < 2 {
		return fragments
	}

	var sentences []string
	current := ""
	for _, fragment := range fragments {
		if current == "" {
			current = fragment
		} else {
			current += " " + fragment
		}
		if endsAtAbbreviation(current) {
			continue
		}
		sentences = append(sentences, current)
		current = ""
	}
	if current != "" {
		sentences = append(sentences, current)
	}
	return sentences
}

// endsAtAbbreviation reports whether the fragment's trailing period
// belongs to an abbreviation, an initial or a number rather than a
// sentence end.
func endsAtAbbreviation(fragment string) bool {
	if !strings.HasSuffix(fragment, ".") {
		return false
	}

	trimmed := strings.TrimSuffix(fragment, ".")
	idx := strings.LastIndexAny(trimmed, " \t\n")
	last := strings.ToLower(trimmed[idx+1:])
	if last == "" {
		return false
	}

	if _, ok := abbreviations[last]; ok {
		return true
	}

	// Single-letter initials, e.g. "J." in author names.
	if len(last) == 1 && last[0] >= 'a' && last[0] <= 'z' {
		return true
	}

	return false
}
