package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidTopK indicates a query asked for fewer than one result.
	// This is the one caller contract the engine enforces; everything
	// else degrades gracefully.
	ErrInvalidTopK = errors.New("top_k must be at least 1")

	// ErrInvalidChunking indicates chunk_overlap is not smaller than
	// chunk_size. The overlap seeding behaviour at that boundary is
	// deliberately left undefined rather than silently clamped.
	ErrInvalidChunking = errors.New("chunk_overlap must be smaller than chunk_size")

	// ErrRateLimited indicates an upstream API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// ErrSourceUnavailable indicates a collector source could not be
	// reached or is misconfigured.
	ErrSourceUnavailable = errors.New("source unavailable")
)
