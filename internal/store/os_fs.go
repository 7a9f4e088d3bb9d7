package store

import (
	"os"

	"github.com/absfs/absfs"
)

// osFileSystem adapts the host filesystem to [FileSystem]. Paths are used as
// given.
type osFileSystem struct{}

// NewOSFileSystem returns a [FileSystem] backed by the os package.
func NewOSFileSystem() FileSystem {
	return osFileSystem{}
}

func (osFileSystem) OpenFile(name string, flag int, perm os.FileMode) (absfs.File, error) {
	f, err := os.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (osFileSystem) Rename(oldpath, newpath string) error { return os.Rename(oldpath, newpath) }

func (osFileSystem) Remove(name string) error { return os.Remove(name) }

func (osFileSystem) Stat(name string) (os.FileInfo, error) { return os.Stat(name) }
