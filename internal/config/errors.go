package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidRemoteConfigs indicates a half-configured remote: an
	// address without a service key cannot ever authenticate, which is a
	// deployment mistake rather than an intentional offline-only setup.
	ErrInvalidRemoteConfigs = errors.New("invalid remote configuration")
)
