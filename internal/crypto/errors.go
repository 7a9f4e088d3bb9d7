package crypto

import "errors"

var (
	// ErrRandomNotInitialized is returned by [Random] when the process-wide
	// random source has not been set up with [Initialize].
	ErrRandomNotInitialized = errors.New("random source is not initialized")

	// ErrInvalidPasswordLength is returned by the password generator when
	// the requested length is outside [MinPasswordLength, MaxPasswordLength].
	ErrInvalidPasswordLength = errors.New("invalid password length")
)
