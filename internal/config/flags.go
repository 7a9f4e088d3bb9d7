package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names shared between [RegisterFlags] and the commands that read them.
const (
	FlagVault    = "vault"
	FlagConfig   = "config"
	FlagLogLevel = "log-level"
	FlagLogFile  = "log-file"
	FlagLength   = "length"
)

// RegisterFlags adds the configuration flags to fs.
//
// Flags:
//
//	--vault       vault file path
//	-c/--config   json file path with configs
//	--log-level   log level (debug, info, warn, error)
//	--log-file    file the client appends its log to
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(FlagVault, "", "Vault file path")
	fs.StringP(FlagConfig, "c", "", "JSON config file path")
	fs.String(FlagLogLevel, "", "Log level (debug, info, warn, error)")
	fs.String(FlagLogFile, "", "Log file path")
}

// parseFlags reads the configuration flags that were explicitly set on fs.
// Flags that are not defined on fs are skipped, so a command may carry only
// a subset of them. --length is picked up when a command defines it.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	strs := []struct {
		name string
		dst  *string
	}{
		{FlagVault, &cfg.Storage.VaultPath},
		{FlagConfig, &cfg.JSONFilePath},
		{FlagLogLevel, &cfg.App.LogLevel},
		{FlagLogFile, &cfg.App.LogFile},
	}
	for _, s := range strs {
		if !changed(fs, s.name) {
			continue
		}
		v, err := fs.GetString(s.name)
		if err != nil {
			return nil, fmt.Errorf("error reading flag --%s: %w", s.name, err)
		}
		*s.dst = v
	}

	if changed(fs, FlagLength) {
		v, err := fs.GetInt(FlagLength)
		if err != nil {
			return nil, fmt.Errorf("error reading flag --%s: %w", FlagLength, err)
		}
		cfg.Generator.Length = v
	}

	return cfg, nil
}

func changed(fs *pflag.FlagSet, name string) bool {
	f := fs.Lookup(name)
	return f != nil && f.Changed
}
