package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// ClientApp holds client-side logging settings.
type ClientApp struct {
	// LogLevel is a zerolog level name.
	LogLevel string
	// LogFile is the log destination. Empty disables logging.
	LogFile string
}

// ClientStorage groups client storage settings.
type ClientStorage struct {
	// VaultPath is the encrypted vault file.
	VaultPath string
}

// ClientGenerator holds password generator settings.
type ClientGenerator struct {
	// Length is the default generated password length.
	Length int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains logging settings.
	App ClientApp
	// Storage contains the vault location.
	Storage ClientStorage
	// Generator contains password generator settings.
	Generator ClientGenerator
}

// GetStructuredConfig loads and merges the configuration from all available
// sources, reading command-line values from fs. fs may be nil.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(fs).
		withJSON().
		build()
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration.
func GetClientConfig(fs *pflag.FlagSet) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(fs)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			LogLevel: cfg.App.LogLevel,
			LogFile:  cfg.App.LogFile,
		},
		Storage: ClientStorage{
			VaultPath: cfg.Storage.VaultPath,
		},
		Generator: ClientGenerator{
			Length: cfg.Generator.Length,
		},
	}

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}
	return clientCfg, nil
}
