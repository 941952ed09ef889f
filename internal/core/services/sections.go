package services

import (
	"regexp"
	"strings"

	"github.com/scholia-labs/scholia-cli/internal/core/domain"
)

// SectionExtractor locates the abstract, introduction and conclusion of an
// article by heading heuristics.
//
// Matching is case-insensitive over the lowercased text, and each section
// tries a small ordered list of patterns with the first hit winning. The
// patterns end at a blank line or at the next recognised heading, which is
// consumed by the match rather than looked ahead at; the captured group is
// the same either way.
type SectionExtractor struct{}

// NewSectionExtractor creates a section extractor.
func NewSectionExtractor() *SectionExtractor {
	return &SectionExtractor{}
}

var (
	abstractPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?is)abstract\s*\n(.*?)(?:\n\s*\n|\nintroduction|\nbackground|\nmethods|\nresults|\nconclusion)`),
		regexp.MustCompile(`(?is)abstract\s*(.*?)(?:\n\s*\n|\nintroduction|\nbackground|\nmethods|\nresults|\nconclusion)`),
	}
	introPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?is)introduction\s*\n(.*?)(?:\n\s*\n|\nmethods|\nresults|\nconclusion|\ndiscussion)`),
		regexp.MustCompile(`(?is)background\s*\n(.*?)(?:\n\s*\n|\nmethods|\nresults|\nconclusion|\ndiscussion)`),
	}
	conclusionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?is)conclusion\s*\n(.*?)(?:\n\s*\n|\nreferences|\nacknowledgments|$)`),
		regexp.MustCompile(`(?is)discussion\s*\n(.*?)(?:\n\s*\n|\nreferences|\nacknowledgments|$)`),
	}
)

// Extract returns the recognised sections of text. Fields for headings
// that were not found are empty, and FullText always carries the input
// verbatim so nothing is lost when no heading matches.
func (e *SectionExtractor) Extract(text string) domain.Sections {
	sections := domain.Sections{FullText: text}
	if text == "" {
		return sections
	}

	lower := strings.ToLower(text)
	sections.Abstract = firstMatch(abstractPatterns, lower)
	sections.Introduction = firstMatch(introPatterns, lower)
	sections.Conclusion = firstMatch(conclusionPatterns, lower)
	return sections
}

func firstMatch(patterns []*regexp.Regexp, text string) string {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}
