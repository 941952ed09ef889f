// Package tui provides an interactive terminal user interface for scholia.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/scholia-labs/scholia-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Retrieval answers questions against the ingested corpus.
	Retrieval driving.RetrievalService

	// Collector reports corpus collection status. Optional.
	Collector driving.CollectorService

	// Settings supplies retrieval defaults such as top-k. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Retrieval == nil {
		return ErrMissingRetrievalService
	}
	return nil
}
