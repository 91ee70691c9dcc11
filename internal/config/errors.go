package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration is incomplete.
var (
	// ErrMissingTokenSignKey indicates that no JWT signing secret was
	// configured. The process must not start without one.
	ErrMissingTokenSignKey = errors.New("jwt sign key not configured")
)
