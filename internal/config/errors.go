package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing server address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidServerConfigs indicates that neither the HTTP nor the gRPC
	// address is set.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrNegativeTimeout indicates a negative request timeout.
	ErrNegativeTimeout = errors.New("request timeout must not be negative")
)
