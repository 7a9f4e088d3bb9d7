// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"
)

var (
	randomOnce   sync.Once
	randomMu     sync.RWMutex
	randomSource io.Reader
)

// Initialize binds the process-wide random source to the operating system
// CSPRNG. It must be called once before [Random]; further calls are no-ops.
// There is no matching teardown.
func Initialize() {
	randomOnce.Do(func() {
		randomMu.Lock()
		randomSource = rand.Reader
		randomMu.Unlock()
	})
}

// Random returns n cryptographically random bytes.
//
// Returns [ErrRandomNotInitialized] if [Initialize] has not been called yet,
// or a wrapped error if the source cannot deliver n bytes.
func Random(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("random: negative length %d", n)
	}

	randomMu.RLock()
	src := randomSource
	randomMu.RUnlock()
	if src == nil {
		return nil, ErrRandomNotInitialized
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(src, buf); err != nil {
		return nil, fmt.Errorf("random: read %d bytes: %w", n, err)
	}
	return buf, nil
}
