// Package services contains the core business logic: section extraction,
// text normalization, sentence-aware chunking, passage scoring, answer
// composition, article collection, evaluation and settings management.
//
// Services implement the driving ports and depend only on domain types
// and driven ports, never on concrete adapters.
package services
