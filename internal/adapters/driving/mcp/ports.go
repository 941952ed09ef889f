package mcp

import (
	"github.com/scholia-labs/scholia-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP
// server. This provides a single injection point for dependency
// injection.
type Ports struct {
	// Retrieval answers questions against the ingested corpus.
	Retrieval driving.RetrievalService

	// Collector reports on the raw corpus. Optional.
	Collector driving.CollectorService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Retrieval == nil {
		return ErrMissingRetrievalService
	}
	return nil
}
