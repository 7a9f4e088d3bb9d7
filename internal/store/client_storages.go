package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-note-vault/internal/config"
	"github.com/MKhiriev/go-note-vault/internal/logger"
)

// ClientStorages groups all client-side storages into a single value that
// can be passed around the service layer.
type ClientStorages struct {
	// VaultStorage reads and replaces the encrypted vault file on the host
	// filesystem.
	VaultStorage VaultFileStorage
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It makes sure the directory that holds
// cfg.VaultPath exists (mode 0700) and wires a [VaultFileStorage] over the
// host filesystem.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Debug().Str("path", cfg.VaultPath).Msg("creating new storages...")

	if dir := filepath.Dir(cfg.VaultPath); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create vault directory: %w", err)
		}
	}

	return &ClientStorages{
		VaultStorage: NewVaultFileStorage(NewOSFileSystem(), logger),
	}, nil
}
