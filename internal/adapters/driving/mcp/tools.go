package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Question string `json:"question" jsonschema:"the research question to answer"`
	TopK     int    `json:"top_k,omitempty" jsonschema:"maximum number of source passages to cite (default 3)"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Answer     string         `json:"answer"`
	Confidence float64        `json:"confidence"`
	Sources    []SourceOutput `json:"sources"`
}

// SourceOutput represents one cited passage.
type SourceOutput struct {
	PassageID int     `json:"passage_id"`
	Title     string  `json:"title"`
	Section   string  `json:"section"`
	Source    string  `json:"source"`
	Score     float64 `json:"score"`
	Excerpt   string  `json:"excerpt"`
}

// CorpusStatusInput is the input schema for the corpus_status tool.
type CorpusStatusInput struct{}

// CorpusStatusOutput is the output schema for the corpus_status tool.
type CorpusStatusOutput struct {
	Passages int `json:"passages"`
	Articles int `json:"articles,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Answer a question from the ingested research corpus with cited passages",
	}, s.handleAsk)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "corpus_status",
		Description: "Report how many passages and articles are loaded",
	}, s.handleCorpusStatus)
}

// handleAsk handles the ask tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	topK := input.TopK
	if topK <= 0 {
		topK = 3
	}

	result, err := s.ports.Retrieval.Query(ctx, input.Question, topK)
	if err != nil {
		return nil, AskOutput{}, err
	}

	output := AskOutput{
		Answer:     result.Answer,
		Confidence: result.Confidence,
		Sources:    make([]SourceOutput, len(result.Sources)),
	}
	for i, source := range result.Sources {
		output.Sources[i] = SourceOutput{
			PassageID: source.Passage.ID,
			Title:     source.Passage.Meta.Title,
			Section:   source.Passage.Meta.Section,
			Source:    source.Passage.Meta.Source,
			Score:     source.Score,
			Excerpt:   source.Preview,
		}
	}

	return nil, output, nil
}

// handleCorpusStatus handles the corpus_status tool invocation.
func (s *Server) handleCorpusStatus(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ CorpusStatusInput,
) (*mcp.CallToolResult, CorpusStatusOutput, error) {
	passages, err := s.ports.Retrieval.PassageCount(ctx)
	if err != nil {
		return nil, CorpusStatusOutput{}, err
	}

	output := CorpusStatusOutput{Passages: passages}
	if s.ports.Collector != nil {
		if articles, err := s.ports.Collector.Corpus(ctx); err == nil {
			output.Articles = len(articles)
		}
	}

	return nil, output, nil
}
