// Package driving defines the interfaces through which the outside world
// drives the core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The CLI, TUI and MCP adapters all call the core through these
// interfaces, which keeps them interchangeable.
//
//   - RetrievalService: Ingest documents and answer queries
//   - CollectorService: Fetch articles from upstream sources
//   - EvaluationService: Score the pipeline against fixed cases
//   - SettingsService: Read and update persisted settings
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driving
