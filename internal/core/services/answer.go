package services

import (
	"fmt"
	"strings"

	"github.com/scholia-labs/scholia-cli/internal/core/domain"
)

const (
	// answerQuoteLimit bounds the excerpt quoted from the top passage.
	answerQuoteLimit = 200

	// answerQuoteMin is the passage length below which no excerpt is
	// quoted at all.
	answerQuoteMin = 100

	disclaimer = "This information is based on current scientific literature. " +
		"For medical advice, please consult healthcare professionals."
)

// composeAnswer assembles the templated answer from the ranked passages.
// An empty ranking yields the no-information template naming the query.
func composeAnswer(query string, ranked []domain.ScoredPassage) string {
	if len(ranked) == 0 {
		return fmt.Sprintf("No specific information found about '%s' in the current dataset. "+
			"Please try a different query or add more documents to the system.", query)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Based on the available Alzheimer's research, here's what I found about '%s':\n\n", query)

	top := ranked[0]
	if top.Passage.Meta.Title != "" {
		fmt.Fprintf(&b, "Research from '%s' indicates:\n", top.Passage.Meta.Title)
	}

	if runes := []rune(top.Preview); len(runes) > answerQuoteMin {
		quote := top.Preview
		if len(runes) > answerQuoteLimit {
			quote = string(runes[:answerQuoteLimit])
		}
		fmt.Fprintf(&b, "\"%s...\"\n\n", quote)
	}

	b.WriteString(disclaimer)
	return b.String()
}
