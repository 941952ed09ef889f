package services

import "github.com/scholia-labs/scholia-cli/internal/core/domain"

const (
	// confidenceFloor is returned when nothing relevant was found.
	confidenceFloor = 0.3

	// confidenceBase and confidenceSpan map the mean relevance score
	// into the [0.4, 1.0] confidence band.
	confidenceBase = 0.4
	confidenceSpan = 0.6
)

// deriveConfidence maps the full relevant set, not just the returned
// top passages, into a confidence value.
func deriveConfidence(ranked []domain.ScoredPassage) float64 {
	if len(ranked) == 0 {
		return confidenceFloor
	}

	sum := 0.0
	for _, sp := range ranked {
		sum += sp.Score
	}
	mean := sum / float64(len(ranked))
	return min(1.0, confidenceBase+mean*confidenceSpan)
}
