// Package llmagent - errors.go
// Defines the errors surfaced by the registry, the loop and config loading.

package llmagent

import "errors"

var (
	ErrToolNotFound    = errors.New("tool not found")
	ErrToolPanicked    = errors.New("tool panicked")
	ErrDuplicateTool   = errors.New("tool already registered")
	ErrEmptyCompletion = errors.New("completion has no choices")
	ErrMissingAPIKey   = errors.New("OPENAI_API_KEY is not set")
)
