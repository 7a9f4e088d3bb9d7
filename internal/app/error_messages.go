// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing wording of the notevault client.
//
// All Msg* constants are human-readable message strings printed by the
// command-line client when an operation fails. Keeping them in one place
// ensures consistent wording throughout the commands.
package app

import (
	"errors"

	"github.com/MKhiriev/go-note-vault/internal/config"
	"github.com/MKhiriev/go-note-vault/internal/notefile"
	"github.com/MKhiriev/go-note-vault/internal/service"
	"github.com/MKhiriev/go-note-vault/internal/store"
)

const (
	// MsgSuccess describes a completed save or load.
	MsgSuccess = "done"

	// MsgInvalidFile is shown when the file does not start with the vault
	// signature.
	MsgInvalidFile = "not a notevault file"

	// MsgInvalidVersion is shown when the file was written by a newer
	// release.
	MsgInvalidVersion = "vault was written by a newer version of notevault"

	// MsgIoError is shown when the vault file could not be read or written,
	// or its content is truncated or inconsistent.
	MsgIoError = "vault file could not be read or written"

	// MsgShortHeader is shown when the file ends before its header does,
	// e.g. an empty file at the vault path.
	MsgShortHeader = "not a notevault file or truncated"

	// MsgEncryptionError is shown when decryption fails. For an existing
	// file this almost always means the password is wrong.
	MsgEncryptionError = "wrong password or corrupted vault"

	// MsgWrongPassword is shown when the vault cannot be unlocked.
	MsgWrongPassword = "wrong password"

	// MsgEmptyPassword is shown when an empty password is entered.
	MsgEmptyPassword = "password must not be empty"

	// MsgPasswordMismatch is shown when the confirmation differs from the
	// first entry.
	MsgPasswordMismatch = "passwords do not match"

	// MsgVaultExists is shown by init when the vault file is already there.
	MsgVaultExists = "vault already exists"

	// MsgVaultNotFound is shown when the vault file is missing. Run init
	// first.
	MsgVaultNotFound = "vault not found, run `notevault init` first"

	// MsgVaultNotOpen is shown when a note operation runs without an
	// unlocked vault.
	MsgVaultNotOpen = "vault is not open"

	// MsgNoteNotFound is shown when no note has the requested id.
	MsgNoteNotFound = "note not found"

	// MsgInvalidNoteID is shown when an id argument is not a number.
	MsgInvalidNoteID = "note id must be a positive number"

	// MsgInvalidConfig is shown when the configuration cannot be loaded or
	// fails validation.
	MsgInvalidConfig = "invalid configuration"

	// MsgClipboardUnavailable is shown when the system clipboard cannot be
	// written.
	MsgClipboardUnavailable = "clipboard is not available"

	// MsgUnexpected covers every other failure.
	MsgUnexpected = "unexpected error"
)

// Sentinel errors raised by the command layer itself.
var (
	// ErrPasswordMismatch is returned when a new password and its
	// confirmation differ.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrInvalidNoteID is returned when an id argument cannot be parsed.
	ErrInvalidNoteID = errors.New("invalid note id")

	// ErrClipboard is returned when the clipboard write fails.
	ErrClipboard = errors.New("clipboard write failed")
)

// MessageFor returns the text for a codec result.
func MessageFor(r notefile.Result) string {
	switch r {
	case notefile.Success:
		return MsgSuccess
	case notefile.InvalidFile:
		return MsgInvalidFile
	case notefile.InvalidVersion:
		return MsgInvalidVersion
	case notefile.IoError:
		return MsgIoError
	case notefile.EncryptionError:
		return MsgEncryptionError
	default:
		return MsgUnexpected
	}
}

// ErrorMessage maps err to the text printed to the user. Service and command
// errors are checked before codec results, so a wrong password on open reads
// as such rather than as a generic encryption failure.
func ErrorMessage(err error) string {
	switch {
	case err == nil:
		return MsgSuccess
	case errors.Is(err, service.ErrWrongPassword):
		return MsgWrongPassword
	case errors.Is(err, service.ErrEmptyPassword):
		return MsgEmptyPassword
	case errors.Is(err, ErrPasswordMismatch):
		return MsgPasswordMismatch
	case errors.Is(err, service.ErrVaultExists):
		return MsgVaultExists
	case errors.Is(err, store.ErrVaultNotFound):
		return MsgVaultNotFound
	case errors.Is(err, service.ErrVaultNotOpen):
		return MsgVaultNotOpen
	case errors.Is(err, service.ErrNoteNotFound):
		return MsgNoteNotFound
	case errors.Is(err, ErrInvalidNoteID):
		return MsgInvalidNoteID
	case errors.Is(err, ErrClipboard):
		return MsgClipboardUnavailable
	case errors.Is(err, config.ErrInvalidStorageConfigs),
		errors.Is(err, config.ErrInvalidAppConfigs),
		errors.Is(err, config.ErrInvalidGeneratorConfigs):
		return MsgInvalidConfig
	case errors.Is(err, notefile.ErrShortHeader):
		return MsgShortHeader
	case errors.Is(err, notefile.ErrInvalidFile),
		errors.Is(err, notefile.ErrInvalidVersion),
		errors.Is(err, notefile.ErrIO),
		errors.Is(err, notefile.ErrEncryption):
		return MessageFor(notefile.ResultOf(err))
	default:
		return MsgUnexpected
	}
}
