package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/scholia-labs/scholia-cli/internal/core/domain"
	"github.com/scholia-labs/scholia-cli/internal/core/ports/driving"
	"github.com/scholia-labs/scholia-cli/internal/logger"
)

const (
	// recallLenience is added on top of relevance when estimating
	// recall, since keyword presence in the answer underestimates
	// what the retrieved passages actually cover.
	recallLenience = 0.2

	// successThreshold is the relevance a question must reach to count
	// towards the success rate.
	successThreshold = 0.3
)

// Evaluator scores the retrieval pipeline against fixed question cases
// by checking expected keywords against the generated answers.
type Evaluator struct {
	retrieval driving.RetrievalService
	topK      int
	log       *logger.Logger
}

var _ driving.EvaluationService = (*Evaluator)(nil)

// NewEvaluator creates an evaluator over the given retrieval service.
// topK is the number of sources requested per question.
func NewEvaluator(retrieval driving.RetrievalService, topK int, log *logger.Logger) *Evaluator {
	return &Evaluator{retrieval: retrieval, topK: topK, log: log}
}

// Evaluate runs every case through the pipeline and aggregates the
// keyword-overlap metrics.
func (e *Evaluator) Evaluate(ctx context.Context, cases []domain.EvalCase) (domain.EvalRun, error) {
	e.log.Section("Running evaluation")

	run := domain.EvalRun{ID: uuid.NewString()}
	for i, c := range cases {
		e.log.Info("Question %d/%d: %s", i+1, len(cases), c.Query)

		result, err := e.retrieval.Query(ctx, c.Query, e.topK)
		if err != nil {
			return domain.EvalRun{}, fmt.Errorf("evaluating %q: %w", c.Query, err)
		}

		evalResult := scoreCase(c, result)
		e.log.Debug("  relevance=%.2f confidence=%.2f", evalResult.Relevance, evalResult.Confidence)
		run.Results = append(run.Results, evalResult)
	}

	run.Summary = summarize(run.Results)
	return run, nil
}

// scoreCase derives the keyword metrics for one answered question.
func scoreCase(c domain.EvalCase, result domain.QueryResult) domain.EvalResult {
	answerLower := strings.ToLower(result.Answer)

	found := 0
	for _, kw := range c.ExpectedKeywords {
		if strings.Contains(answerLower, strings.ToLower(kw)) {
			found++
		}
	}

	relevance := 0.0
	if len(c.ExpectedKeywords) > 0 {
		relevance = float64(found) / float64(len(c.ExpectedKeywords))
	}

	precision := relevance
	recall := min(1.0, relevance+recallLenience)
	f1 := 0.0
	if precision+recall > 0 {
		f1 = 2 * precision * recall / (precision + recall)
	}

	return domain.EvalResult{
		Query:        c.Query,
		Answer:       result.Answer,
		SourcesFound: len(result.Sources),
		Confidence:   result.Confidence,
		Relevance:    relevance,
		Precision:    precision,
		Recall:       recall,
		F1:           f1,
	}
}

// summarize aggregates per-question results into the run summary.
func summarize(results []domain.EvalResult) domain.EvalSummary {
	n := len(results)
	if n == 0 {
		return domain.EvalSummary{}
	}

	var summary domain.EvalSummary
	summary.Questions = n

	successes := 0
	for _, r := range results {
		summary.AvgRelevance += r.Relevance
		summary.AvgPrecision += r.Precision
		summary.AvgRecall += r.Recall
		summary.AvgF1 += r.F1
		summary.AvgConfidence += r.Confidence
		summary.AvgSources += float64(r.SourcesFound)
		if r.SourcesFound > 0 {
			summary.QuestionsWithSources++
		}
		if r.Relevance > successThreshold {
			successes++
		}
	}

	fn := float64(n)
	summary.AvgRelevance /= fn
	summary.AvgPrecision /= fn
	summary.AvgRecall /= fn
	summary.AvgF1 /= fn
	summary.AvgConfidence /= fn
	summary.AvgSources /= fn
	summary.SuccessRate = float64(successes) / fn
	return summary
}

// RenderEvalReport formats an evaluation run as a readable report.
func RenderEvalReport(run domain.EvalRun) string {
	var b strings.Builder

	b.WriteString("EVALUATION REPORT\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	s := run.Summary
	fmt.Fprintf(&b, "Questions evaluated:    %d\n", s.Questions)
	fmt.Fprintf(&b, "Questions with sources: %d\n", s.QuestionsWithSources)
	fmt.Fprintf(&b, "Average relevance:      %.3f\n", s.AvgRelevance)
	fmt.Fprintf(&b, "Average precision:      %.3f\n", s.AvgPrecision)
	fmt.Fprintf(&b, "Average recall:         %.3f\n", s.AvgRecall)
	fmt.Fprintf(&b, "Average F1 score:       %.3f\n", s.AvgF1)
	fmt.Fprintf(&b, "Average confidence:     %.3f\n", s.AvgConfidence)
	fmt.Fprintf(&b, "Success rate:           %.1f%% of questions reached relevance > %.1f\n",
		s.SuccessRate*100, successThreshold)

	switch {
	case s.AvgRelevance > 0.7:
		b.WriteString("\nAssessment: EXCELLENT - answers consistently cover the expected material\n")
	case s.AvgRelevance > 0.5:
		b.WriteString("\nAssessment: GOOD - moderate coverage, room for improvement\n")
	case s.AvgRelevance > 0.3:
		b.WriteString("\nAssessment: FAIR - coverage needs significant improvement\n")
	default:
		b.WriteString("\nAssessment: POOR - answers rarely cover the expected material\n")
	}

	b.WriteString("\nPer-question results\n")
	b.WriteString(strings.Repeat("-", 50) + "\n")
	for i, r := range run.Results {
		fmt.Fprintf(&b, "%2d. %s\n", i+1, r.Query)
		fmt.Fprintf(&b, "    relevance=%.3f precision=%.3f recall=%.3f f1=%.3f sources=%d\n",
			r.Relevance, r.Precision, r.Recall, r.F1, r.SourcesFound)
	}

	return b.String()
}
