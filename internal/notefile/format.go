// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notefile reads and writes the encrypted vault container.
//
// A vault file starts with a plaintext header (magic, format version, salt,
// IV) followed by an AES-256-CBC encrypted body that repeats the magic and
// then lists the notes. All integers are big-endian:
//
//	MAGIC        "NoteVault\x00"
//	VERSION      uint32
//	SALT_LEN     uint32, SALT
//	IV_LEN       uint32, IV
//	-- encrypted --
//	MAGIC
//	NOTE_COUNT   uint32
//	NOTE_COUNT × { ID uint64, TITLE_LEN uint32, TITLE, MESSAGE_LEN uint32, MESSAGE }
//
// There is no authentication tag. The decrypted magic is the only check that
// the password was right.
package notefile

import "github.com/MKhiriev/go-note-vault/internal/crypto"

// Magic opens both the plaintext header and the encrypted body.
const Magic = "NoteVault\x00"

// CurrentVersion is the format version written by this build and the
// highest one it will read.
const CurrentVersion uint32 = 0

// Option configures a [Codec].
type Option func(*Codec)

// WithIterations sets the PBKDF2 work factor used for new files and for
// re-keying loaded ones. Non-positive values are ignored.
func WithIterations(n int) Option {
	return func(c *Codec) {
		if n > 0 {
			c.iterations = n
		}
	}
}

// WithVersionIterations records that files of the given format version were
// written with n PBKDF2 iterations. Versions without an entry use the
// current work factor.
func WithVersionIterations(version uint32, n int) Option {
	return func(c *Codec) {
		if n > 0 {
			c.versions[version] = n
		}
	}
}

func defaultIterations() int {
	return crypto.DefaultKeyIterations
}

// iterationsFor returns the work factor that produced a file of version.
func (c *Codec) iterationsFor(version uint32) int {
	if n, ok := c.versions[version]; ok {
		return n
	}
	return c.iterations
}
