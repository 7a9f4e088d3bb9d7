// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
)

const (
	// EnvPrefix is prepended to every environment variable name.
	EnvPrefix = "NOTEVAULT_"

	// DefaultLogLevel is used when no source sets a log level.
	DefaultLogLevel = "info"

	// DefaultGeneratorLength is the length of generated passwords when no
	// source sets one.
	DefaultGeneratorLength = 20

	defaultVaultDir  = ".notevault"
	defaultVaultFile = "vault.nv"
)

// StructuredConfig is the top-level configuration container for the
// notevault client. It aggregates all sub-configurations and is populated by
// merging values from defaults, an optional JSON file, environment variables
// and command-line flags.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds logging settings.
	App App `envPrefix:"APP_"`

	// Storage holds the location of the vault file.
	Storage Storage `envPrefix:"STORAGE_"`

	// Generator holds password generator settings.
	Generator Generator `envPrefix:"GENERATOR_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the NOTEVAULT_CONFIG environment variable or the
	// -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: NOTEVAULT_APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is the file the client appends JSON log lines to. Empty
	// disables logging.
	// Env: NOTEVAULT_APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage holds the vault file location.
type Storage struct {
	// VaultPath is the path of the encrypted vault file.
	// Env: NOTEVAULT_STORAGE_VAULT_PATH
	VaultPath string `env:"VAULT_PATH"`
}

// Generator holds password generator settings.
type Generator struct {
	// Length is the number of characters in a generated password.
	// Env: NOTEVAULT_GENERATOR_LENGTH
	Length int `env:"LENGTH"`
}

// defaults returns the lowest-priority configuration layer. The vault lives
// in ~/.notevault unless the home directory cannot be resolved, in which case
// the working directory is used.
func defaults() *StructuredConfig {
	vaultPath := filepath.Join(defaultVaultDir, defaultVaultFile)
	if home, err := os.UserHomeDir(); err == nil {
		vaultPath = filepath.Join(home, vaultPath)
	}

	return &StructuredConfig{
		App:       App{LogLevel: DefaultLogLevel},
		Storage:   Storage{VaultPath: vaultPath},
		Generator: Generator{Length: DefaultGeneratorLength},
	}
}
