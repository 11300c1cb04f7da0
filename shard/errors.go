package shard

import "errors"

// Sentinel errors for package shard.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Planner errors
	ErrInvalidWidth  = errors.New("address width must not be negative")
	ErrUnknownPolicy = errors.New("unknown shard depth policy")

	// Corpus errors
	ErrEmptyCorpus = errors.New("corpus contains no items")

	// Configuration errors
	ErrMissingPath    = errors.New("required path is not configured")
	ErrInvalidWorkers = errors.New("worker count must not be negative")
)
