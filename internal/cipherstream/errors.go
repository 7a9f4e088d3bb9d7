package cipherstream

import "errors"

// Sentinel errors returned by [NewWriter], [NewReader] and the stream
// methods. Callers should use [errors.Is] to match against these values.
var (
	// ErrInvalidKeyLength is returned when the key is not KeySize bytes.
	ErrInvalidKeyLength = errors.New("invalid cipher key length")

	// ErrInvalidIVLength is returned when the IV is not exactly one block.
	ErrInvalidIVLength = errors.New("invalid cipher iv length")

	// ErrDecrypt is returned by [Reader.Read] when the final block does not
	// carry valid padding. With CBC this almost always means a wrong key.
	ErrDecrypt = errors.New("decryption failed")

	// ErrClosed is returned by reads and writes after Close.
	ErrClosed = errors.New("cipher stream is closed")
)

// errBufferOverflow marks a broken internal invariant: a single cipher step
// produced more output than the two-block buffer can hold.
var errBufferOverflow = errors.New("cipherstream: buffer overflow")
