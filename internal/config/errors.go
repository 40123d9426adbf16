package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, empty address or a negative registration rate).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an unsupported SQL driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidLinksConfigs indicates invalid link table settings
	// (for example, a non-positive TTL).
	ErrInvalidLinksConfigs = errors.New("invalid links configuration")
)
