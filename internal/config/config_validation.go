// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-note-vault/internal/crypto"
)

// validate checks that the final [ClientConfig] can be used at startup.
func (cfg *ClientConfig) validate() error {
	if cfg.Storage.VaultPath == "" {
		return fmt.Errorf("%w: empty vault path", ErrInvalidStorageConfigs)
	}

	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidAppConfigs, cfg.App.LogLevel)
	}

	if n := cfg.Generator.Length; n < crypto.MinPasswordLength || n > crypto.MaxPasswordLength {
		return fmt.Errorf("%w: length %d not in [%d, %d]",
			ErrInvalidGeneratorConfigs, n, crypto.MinPasswordLength, crypto.MaxPasswordLength)
	}

	return nil
}
