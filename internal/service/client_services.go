package service

import (
	"github.com/MKhiriev/go-note-vault/internal/crypto"
	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/internal/notefile"
	"github.com/MKhiriev/go-note-vault/internal/store"
)

type ClientServices struct {
	KeyChain     crypto.KeyChainService
	VaultService ClientVaultService
}

// NewClientServices wires the vault service for the file at vaultPath with
// the production key chain and container codec.
func NewClientServices(storages *store.ClientStorages, vaultPath string, logger *logger.Logger) *ClientServices {
	keys := crypto.NewKeyChainService()
	codec := notefile.NewCodec(keys, logger.WithComponent("codec"))

	return &ClientServices{
		KeyChain:     keys,
		VaultService: NewClientVaultService(storages.VaultStorage, codec, vaultPath, logger.WithComponent("vault")),
	}
}
