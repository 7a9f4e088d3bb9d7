// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-vault/internal/notefile"
)

// mapOpenError translates a codec error from opening a vault into a service
// business error. Without an authentication tag a failed decryption almost
// always means a wrong password, so it is reported as such; the codec
// sentinel stays in the chain for callers that need the exact result.
func mapOpenError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, notefile.ErrEncryption) {
		return fmt.Errorf("%w: %w", ErrWrongPassword, err)
	}

	return err
}
