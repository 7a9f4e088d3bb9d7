// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/internal/utils"
)

// vaultFileMode keeps the vault readable by its owner only.
const vaultFileMode os.FileMode = 0o600

// vaultFileStorage is the default implementation of [VaultFileStorage] on
// top of a [FileSystem].
//
// Saves never write to the vault file in place: the new content goes to a
// uniquely named sibling which is synced, closed and then renamed over the
// target, so an interrupted save leaves the old vault intact.
type vaultFileStorage struct {
	fs     FileSystem
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewVaultFileStorage constructs a [VaultFileStorage] over fsys.
func NewVaultFileStorage(fsys FileSystem, logger *logger.Logger) VaultFileStorage {
	return &vaultFileStorage{
		fs:     fsys,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

// Exists implements [VaultFileStorage].
func (s *vaultFileStorage) Exists(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	info, err := s.fs.Stat(name)
	switch {
	case err == nil:
		return !info.IsDir(), nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", ErrStatFile, err)
	}
}

// Load implements [VaultFileStorage].
func (s *vaultFileStorage) Load(ctx context.Context, name string, fn func(r io.Reader) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := s.fs.OpenFile(name, os.O_RDONLY, 0)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrVaultNotFound, name)
		}
		return fmt.Errorf("%w: %w", ErrOpeningFile, err)
	}
	defer f.Close()

	s.logger.Debug().Str("path", name).Msg("reading vault file")
	return fn(f)
}

// Save implements [VaultFileStorage].
func (s *vaultFileStorage) Save(ctx context.Context, name string, fn func(w io.Writer) error) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp := fmt.Sprintf("%s.%s.tmp", name, s.ids.Generate())
	f, err := s.fs.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, vaultFileMode)
	if err != nil {
		return fmt.Errorf("%w: create temp file: %w", ErrVaultNotSaved, err)
	}

	closed := false
	defer func() {
		if err == nil {
			return
		}
		if !closed {
			_ = f.Close()
		}
		if rmErr := s.fs.Remove(tmp); rmErr != nil {
			s.logger.Warn().Err(rmErr).Str("path", tmp).Msg("failed to remove temp vault file")
		}
	}()

	if err := fn(f); err != nil {
		return err
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("%w: sync: %w", ErrVaultNotSaved, err)
	}
	closed = true
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close: %w", ErrVaultNotSaved, err)
	}
	if err := s.fs.Rename(tmp, name); err != nil {
		return fmt.Errorf("%w: replace: %w", ErrVaultNotSaved, err)
	}

	s.logger.Debug().Str("path", name).Msg("vault file replaced")
	return nil
}
