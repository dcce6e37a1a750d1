package model

import "errors"

// Domain errors - used across all layers
var (
	// ErrLoad indicates the source document could not be read or decoded
	ErrLoad = errors.New("document load failed")

	// ErrIndexNotFound indicates a query was attempted with no persisted index
	ErrIndexNotFound = errors.New("index not found")

	// ErrEmptyIndex indicates the index exists but holds zero vectors
	ErrEmptyIndex = errors.New("index is empty")

	// ErrEmbed indicates the embedding computation failed
	ErrEmbed = errors.New("embedding failed")
)
