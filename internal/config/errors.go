package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid vault storage settings
	// (for example, an empty vault path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidGeneratorConfigs indicates invalid password generator
	// settings (for example, a length outside the supported range).
	ErrInvalidGeneratorConfigs = errors.New("invalid generator configuration")
)
