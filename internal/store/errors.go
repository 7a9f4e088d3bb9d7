package store

import "errors"

// Sentinel errors returned by [VaultFileStorage] methods to signal
// well-known failure conditions. Callers should use [errors.Is] to match
// against these values.
var (
	// ErrVaultNotFound is returned when the vault file does not exist.
	ErrVaultNotFound = errors.New("vault file was not found")

	// ErrVaultNotSaved is returned when the replacement file could not be
	// created, flushed or moved into place. The previous vault file, if any,
	// is left untouched.
	ErrVaultNotSaved = errors.New("vault file was not saved")
)

// Low-level filesystem errors. These wrap the error reported by the
// underlying [FileSystem].
var (
	// ErrOpeningFile is returned when an existing vault file cannot be opened.
	ErrOpeningFile = errors.New("failed to open vault file")

	// ErrStatFile is returned when the vault path cannot be inspected.
	ErrStatFile = errors.New("failed to stat vault file")
)
