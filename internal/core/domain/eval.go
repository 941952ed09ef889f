package domain

// EvalCase is one fixed evaluation question with the keywords a good
// answer is expected to surface.
type EvalCase struct {
	Query            string   `json:"query"`
	ExpectedKeywords []string `json:"expected_keywords"`
	Difficulty       string   `json:"difficulty"`
}

// EvalResult holds the keyword-match metrics for one evaluated question.
type EvalResult struct {
	Query        string  `json:"query"`
	Answer       string  `json:"answer"`
	SourcesFound int     `json:"sources_found"`
	Confidence   float64 `json:"confidence"`
	Relevance    float64 `json:"relevance_score"`
	Precision    float64 `json:"precision"`
	Recall       float64 `json:"recall"`
	F1           float64 `json:"f1_score"`
}

// EvalSummary aggregates metrics across an evaluation run.
type EvalSummary struct {
	Questions            int     `json:"total_questions"`
	QuestionsWithSources int     `json:"questions_with_sources"`
	AvgRelevance         float64 `json:"average_relevance"`
	AvgPrecision         float64 `json:"average_precision"`
	AvgRecall            float64 `json:"average_recall"`
	AvgF1                float64 `json:"average_f1_score"`
	AvgConfidence        float64 `json:"average_confidence"`
	AvgSources           float64 `json:"average_sources_found"`
	SuccessRate          float64 `json:"success_rate"`
}

// EvalRun is a completed evaluation: per-question results plus summary.
type EvalRun struct {
	ID      string       `json:"run_id"`
	Results []EvalResult `json:"results"`
	Summary EvalSummary  `json:"summary"`
}

// DefaultEvalCases returns the fixed question set used by the
// evaluation harness.
func DefaultEvalCases() []EvalCase {
	return []EvalCase{
		{
			Query:            "What are potential targets for Alzheimer disease treatment?",
			ExpectedKeywords: []string{"BACE1", "tau", "amyloid", "gamma-secretase", "therapeutic"},
			Difficulty:       "medium",
		},
		{
			Query:            "How does Alzheimer disease progress?",
			ExpectedKeywords: []string{"progressive", "cognitive", "memory", "pathology", "stages"},
			Difficulty:       "medium",
		},
		{
			Query:            "What causes memory loss in Alzheimer disease?",
			ExpectedKeywords: []string{"amyloid", "tau", "plaques", "tangles", "neurons"},
			Difficulty:       "medium",
		},
		{
			Query:            "What are biomarkers for Alzheimer disease?",
			ExpectedKeywords: []string{"CSF", "PET", "amyloid-beta", "tau", "diagnosis"},
			Difficulty:       "medium",
		},
		{
			Query:            "What is the role of genetics in Alzheimer disease?",
			ExpectedKeywords: []string{"APOE", "genetic", "risk", "familial", "mutations"},
			Difficulty:       "medium",
		},
		{
			Query:            "What lifestyle factors affect Alzheimer disease risk?",
			ExpectedKeywords: []string{"diet", "exercise", "lifestyle", "prevention", "risk factors"},
			Difficulty:       "medium",
		},
		{
			Query:            "What immunotherapy approaches exist for Alzheimer disease?",
			ExpectedKeywords: []string{"antibodies", "immunotherapy", "aducanumab", "lecanemab", "vaccines"},
			Difficulty:       "medium",
		},
		{
			Query:            "What is neuroinflammation in Alzheimer disease?",
			ExpectedKeywords: []string{"microglia", "inflammation", "TREM2", "NLRP3", "neuroinflammation"},
			Difficulty:       "medium",
		},
		{
			Query:            "What are synaptic changes in Alzheimer disease?",
			ExpectedKeywords: []string{"synaptic", "plasticity", "glutamate", "neurotransmission", "dysfunction"},
			Difficulty:       "medium",
		},
		{
			Query:            "What drug repurposing strategies exist for Alzheimer disease?",
			ExpectedKeywords: []string{"repurposing", "metformin", "GLP-1", "diabetes", "existing drugs"},
			Difficulty:       "medium",
		},
	}
}
