// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/internal/notefile"
	"github.com/MKhiriev/go-note-vault/internal/notes"
	"github.com/MKhiriev/go-note-vault/internal/store"
	"github.com/MKhiriev/go-note-vault/models"
)

type clientVaultService struct {
	storage store.VaultFileStorage
	codec   NoteCodec
	path    string
	logger  *logger.Logger

	notes *notes.Set
	creds notefile.Credentials
	dirty bool
}

// NewClientVaultService constructs a [ClientVaultService] for the vault file
// at path.
func NewClientVaultService(storage store.VaultFileStorage, codec NoteCodec, path string, logger *logger.Logger) ClientVaultService {
	return &clientVaultService{storage: storage, codec: codec, path: path, logger: logger}
}

func (v *clientVaultService) Path() string {
	return v.path
}

func (v *clientVaultService) Exists(ctx context.Context) (bool, error) {
	return v.storage.Exists(ctx, v.path)
}

func (v *clientVaultService) Create(ctx context.Context, password string) error {
	if password == "" {
		return ErrEmptyPassword
	}

	exists, err := v.storage.Exists(ctx, v.path)
	if err != nil {
		return fmt.Errorf("check vault file: %w", err)
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrVaultExists, v.path)
	}

	set := notes.New()
	var creds notefile.Credentials
	err = v.storage.Save(ctx, v.path, func(w io.Writer) error {
		var err error
		creds, err = v.codec.Save(w, set, password)
		return err
	})
	if err != nil {
		return fmt.Errorf("create vault: %w", err)
	}

	v.begin(set, creds)
	v.logger.Info().Str("path", v.path).Msg("vault created")
	return nil
}

func (v *clientVaultService) Open(ctx context.Context, password string) error {
	if password == "" {
		return ErrEmptyPassword
	}

	set := notes.New()
	var creds notefile.Credentials
	err := v.storage.Load(ctx, v.path, func(r io.Reader) error {
		var err error
		creds, err = v.codec.Load(r, password, set)
		return err
	})
	if err != nil {
		v.logger.Debug().Err(err).Str("path", v.path).Msg("vault open failed")
		return fmt.Errorf("open vault: %w", mapOpenError(err))
	}

	v.begin(set, creds)
	v.logger.Info().Str("path", v.path).Int("notes", set.Len()).Msg("vault opened")
	return nil
}

func (v *clientVaultService) Save(ctx context.Context) error {
	if !v.IsOpen() {
		return ErrVaultNotOpen
	}

	err := v.storage.Save(ctx, v.path, func(w io.Writer) error {
		return v.codec.SaveWithCredentials(w, v.notes, v.creds)
	})
	if err != nil {
		return fmt.Errorf("save vault: %w", err)
	}

	v.dirty = false
	v.logger.Debug().Str("path", v.path).Int("notes", v.notes.Len()).Msg("vault saved")
	return nil
}

func (v *clientVaultService) ChangePassword(ctx context.Context, newPassword string) error {
	if !v.IsOpen() {
		return ErrVaultNotOpen
	}
	if newPassword == "" {
		return ErrEmptyPassword
	}

	var creds notefile.Credentials
	err := v.storage.Save(ctx, v.path, func(w io.Writer) error {
		var err error
		creds, err = v.codec.Save(w, v.notes, newPassword)
		return err
	})
	if err != nil {
		return fmt.Errorf("change password: %w", err)
	}

	v.wipe()
	v.creds = creds
	v.dirty = false
	v.logger.Info().Str("path", v.path).Msg("vault password changed")
	return nil
}

func (v *clientVaultService) Notes() ([]models.Note, error) {
	if !v.IsOpen() {
		return nil, ErrVaultNotOpen
	}
	return v.notes.Notes(), nil
}

func (v *clientVaultService) Note(id uint64) (models.Note, error) {
	if !v.IsOpen() {
		return models.Note{}, ErrVaultNotOpen
	}
	note, ok := v.notes.Find(id)
	if !ok {
		return models.Note{}, fmt.Errorf("%w: %d", ErrNoteNotFound, id)
	}
	return note, nil
}

func (v *clientVaultService) AddNote(title, message string) (models.Note, error) {
	if !v.IsOpen() {
		return models.Note{}, ErrVaultNotOpen
	}
	note := v.notes.Add(title, message)
	v.dirty = true
	return note, nil
}

func (v *clientVaultService) UpdateNote(note models.Note) error {
	if !v.IsOpen() {
		return ErrVaultNotOpen
	}
	if !v.notes.Update(note) {
		return fmt.Errorf("%w: %d", ErrNoteNotFound, note.ID)
	}
	v.dirty = true
	return nil
}

func (v *clientVaultService) RemoveNote(id uint64) error {
	if !v.IsOpen() {
		return ErrVaultNotOpen
	}
	if !v.notes.Remove(id) {
		return fmt.Errorf("%w: %d", ErrNoteNotFound, id)
	}
	v.dirty = true
	return nil
}

func (v *clientVaultService) IsOpen() bool {
	return v.notes != nil
}

func (v *clientVaultService) IsDirty() bool {
	return v.dirty
}

func (v *clientVaultService) Close() {
	if !v.IsOpen() {
		return
	}
	v.wipe()
	v.notes = nil
	v.dirty = false
	v.logger.Debug().Str("path", v.path).Msg("vault closed")
}

func (v *clientVaultService) begin(set *notes.Set, creds notefile.Credentials) {
	v.wipe()
	v.notes = set
	v.creds = creds
	v.dirty = false
}

// wipe zeroes the session key before it is dropped.
func (v *clientVaultService) wipe() {
	clear(v.creds.Key)
	v.creds = notefile.Credentials{}
}
