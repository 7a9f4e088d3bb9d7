package store

import (
	"context"
	"io"
	"os"

	"github.com/absfs/absfs"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// VaultFileStorage is the low-level store for the encrypted vault file. It
// moves bytes only; it knows nothing about the container format.
type VaultFileStorage interface {
	// Exists reports whether a vault file is present at name.
	Exists(ctx context.Context, name string) (bool, error)

	// Load opens name for reading and hands the stream to fn. The file is
	// closed when fn returns. Returns [ErrVaultNotFound] if name is missing.
	Load(ctx context.Context, name string, fn func(r io.Reader) error) error

	// Save hands fn a stream to a temporary file next to name and replaces
	// name with it only if fn and the final flush succeed.
	Save(ctx context.Context, name string, fn func(w io.Writer) error) error
}

// FileSystem is the part of [absfs.FileSystem] the vault store needs.
// Any absfs filesystem satisfies it, as does [NewOSFileSystem].
type FileSystem interface {
	OpenFile(name string, flag int, perm os.FileMode) (absfs.File, error)
	Rename(oldpath, newpath string) error
	Remove(name string) error
	Stat(name string) (os.FileInfo, error)
}
