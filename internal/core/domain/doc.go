// Package domain contains the core types of the retrieval engine.
//
// The domain is pure data: no I/O, no dependencies on adapters. Services
// in internal/core/services operate on these types, and ports in
// internal/core/ports describe the boundaries in terms of them.
package domain
