// Package connectors provides implementations of the ArticleSource
// interface for the supported sources. Each connector knows how to fetch
// article metadata from one upstream (PubMed, bioRxiv, local files).
package connectors
