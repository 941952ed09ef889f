// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - SentenceSplitter: Segments text into sentences for the chunker
//   - PassageStore: Transient, append-only passage storage
//
// # Collector Interfaces
//
// Only the collector side touches these; the retrieval core never does:
//
//   - ArticleSource: Fetches bibliographic records from one source
//   - ArticleStore: Persists the raw corpus between runs
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
