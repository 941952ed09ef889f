package services

import (
	"sort"
	"strings"

	"github.com/scholia-labs/scholia-cli/internal/core/domain"
)

const (
	// domainBoost is added once when a passage contains any term from
	// the domain vocabulary.
	domainBoost = 0.3

	// keywordBoostPerMatch is added per query keyword found as a whole
	// token in the passage, capped at keywordBoostCap.
	keywordBoostPerMatch = 0.2
	keywordBoostCap      = 0.5

	// phraseBoostPerMatch is added per query keyword found as a
	// substring of the passage, capped at phraseBoostCap.
	phraseBoostPerMatch = 0.15
	phraseBoostCap      = 0.4

	// inclusionThreshold is the minimum composite score for a passage
	// with no domain or keyword hits to be considered relevant.
	inclusionThreshold = 0.01

	// keywordMinLength filters short function words out of the query
	// before keyword and phrase matching.
	keywordMinLength = 2

	// previewLimit bounds the passage text carried into results.
	previewLimit = 800
)

// domainVocabulary is the fixed set of Alzheimer's research terms that
// trigger the domain boost when present as whole tokens in a passage.
var domainVocabulary = map[string]struct{}{
	"alzheimer": {}, "disease": {}, "amyloid": {}, "tau": {},
	"tangles": {}, "plaques": {}, "cognitive": {}, "memory": {},
	"neurodegeneration": {}, "treatment": {}, "therapy": {},
	"bace1": {}, "gamma-secretase": {}, "neuroinflammation": {},
	"biomarkers": {}, "genetics": {}, "lifestyle": {},
	"immunotherapy": {}, "synaptic": {}, "drug": {},
	"research": {}, "study": {}, "pathology": {}, "progression": {},
	"mechanisms": {}, "beta-secretase": {}, "acetylcholinesterase": {},
	"microglia": {}, "astrocytes": {}, "blood-brain-barrier": {},
	"clinical-trials": {}, "diagnosis": {}, "prevention": {},
}

// QueryScorer ranks stored passages against a query with a composite
// lexical score.
//
// The base score is the Jaccard similarity of the query and passage token
// sets. Three additive boosts reward domain vocabulary hits, query
// keywords appearing as whole tokens, and query keywords appearing as
// substrings. The sum is clamped to 1.
type QueryScorer struct{}

// NewQueryScorer creates a passage scorer.
func NewQueryScorer() *QueryScorer {
	return &QueryScorer{}
}

// Score ranks every passage against the query and returns the relevant
// ones in descending score order, ties broken by ascending passage ID.
// A passage is relevant when its score exceeds the inclusion threshold or
// it has at least one domain or keyword hit.
func (s *QueryScorer) Score(query string, passages []domain.Passage) []domain.ScoredPassage {
	queryLower := strings.ToLower(query)
	queryTokens := tokenSet(queryLower)
	keywords := longTokens(queryTokens)

	var relevant []domain.ScoredPassage
	for _, passage := range passages {
		textLower := strings.ToLower(passage.Text)
		textTokens := tokenSet(textLower)

		base := jaccard(queryTokens, textTokens)

		domainHit := false
		for token := range textTokens {
			if _, ok := domainVocabulary[token]; ok {
				domainHit = true
				break
			}
		}

		keywordMatches := 0
		phraseMatches := 0
		for _, keyword := range keywords {
			if _, ok := textTokens[keyword]; ok {
				keywordMatches++
			}
			if strings.Contains(textLower, keyword) {
				phraseMatches++
			}
		}

		score := base
		if domainHit {
			score += domainBoost
		}
		score += min(float64(keywordMatches)*keywordBoostPerMatch, keywordBoostCap)
		score += min(float64(phraseMatches)*phraseBoostPerMatch, phraseBoostCap)
		score = min(score, 1.0)

		if score > inclusionThreshold || domainHit || keywordMatches > 0 {
			relevant = append(relevant, domain.ScoredPassage{
				Passage: passage,
				Score:   score,
				Preview: preview(passage.Text),
			})
		}
	}

	sort.Slice(relevant, func(i, j int) bool {
		if relevant[i].Score != relevant[j].Score {
			return relevant[i].Score > relevant[j].Score
		}
		return relevant[i].Passage.ID < relevant[j].Passage.ID
	})

	return relevant
}

// tokenSet splits lowercased text on whitespace into a set.
func tokenSet(text string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, field := range strings.Fields(text) {
		tokens[field] = struct{}{}
	}
	return tokens
}

// longTokens returns the tokens longer than keywordMinLength, sorted so
// matching is deterministic.
func longTokens(tokens map[string]struct{}) []string {
	var out []string
	for token := range tokens {
		if len(token) > keywordMinLength {
			out = append(out, token)
		}
	}
	sort.Strings(out)
	return out
}

// jaccard computes intersection over union of two token sets.
func jaccard(a, b map[string]struct{}) float64 {
	intersection := 0
	for token := range a {
		if _, ok := b[token]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// preview truncates passage text for display in results.
func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLimit {
		return text
	}
	return string(runes[:previewLimit]) + "..."
}
