package driving

import (
	"context"

	"github.com/scholia-labs/scholia-cli/internal/core/domain"
)

// EvaluationService scores the retrieval pipeline against a fixed set of
// question/keyword cases.
type EvaluationService interface {
	// Evaluate runs every case through the pipeline and aggregates the
	// keyword-overlap metrics into a summary.
	Evaluate(ctx context.Context, cases []domain.EvalCase) (domain.EvalRun, error)
}
