// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha1"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// KeySize is the length of the derived AES-256 key in bytes.
	KeySize = 32

	// BlockSize is the AES block length; IVs are exactly one block.
	BlockSize = 16

	// SaltSize is the salt length used for newly written files. Files carry
	// an explicit salt length, so other lengths are still readable.
	SaltSize = 16

	// DefaultKeyIterations is the PBKDF2 work factor for new files.
	DefaultKeyIterations = 30000
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	saltSize int
}

// NewKeyChainService constructs a [KeyChainService]. It initializes the
// process-wide random source, so callers do not need to call [Initialize]
// themselves.
func NewKeyChainService() KeyChainService {
	Initialize()
	return &keyChainService{saltSize: SaltSize}
}

// GenerateSalt implements [KeyChainService].
func (k *keyChainService) GenerateSalt() ([]byte, error) {
	return Random(k.saltSize)
}

// GenerateIV implements [KeyChainService].
func (k *keyChainService) GenerateIV() ([]byte, error) {
	return Random(BlockSize)
}

// DeriveKey implements [KeyChainService]. See [DeriveKey].
func (k *keyChainService) DeriveKey(password string, salt []byte, iterations int) []byte {
	return DeriveKey(password, salt, iterations)
}

// GeneratePassword implements [KeyChainService]. See [GeneratePassword].
func (k *keyChainService) GeneratePassword(length int) (string, error) {
	return GeneratePassword(length)
}

// DeriveKey turns password and salt into a KeySize-byte key with
// PBKDF2-HMAC-SHA1. Non-positive iteration counts are clamped to 1.
func DeriveKey(password string, salt []byte, iterations int) []byte {
	if iterations < 1 {
		iterations = 1
	}
	return pbkdf2.Key([]byte(password), salt, iterations, KeySize, sha1.New)
}
