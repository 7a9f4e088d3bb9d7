package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-note-vault/internal/notefile"
	"github.com/MKhiriev/go-note-vault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// NoteCodec is the container codec as seen by the vault service.
// [notefile.Codec] is the production implementation.
type NoteCodec interface {
	// Save encrypts notes under a key derived from password and a fresh salt
	// and returns the credentials for later saves.
	Save(w io.Writer, notes notefile.NoteSource, password string) (notefile.Credentials, error)

	// SaveWithCredentials re-encrypts notes with previously derived
	// credentials and a fresh IV.
	SaveWithCredentials(w io.Writer, notes notefile.NoteSource, creds notefile.Credentials) error

	// Load decrypts a vault stream into dst and returns its credentials.
	Load(r io.Reader, password string, dst notefile.NoteCollection) (notefile.Credentials, error)
}

// ClientVaultService defines the client-side contract for working with one
// vault file. A session starts with Create or Open and ends with Close;
// between them the notes live in memory and Save writes them back without
// asking for the password again.
//
// Implementations are not safe for concurrent use.
type ClientVaultService interface {
	// Path returns the vault file this service works on.
	Path() string

	// Exists reports whether the vault file is present.
	Exists(ctx context.Context) (bool, error)

	// Create writes a new, empty vault protected by password and opens it.
	// Returns ErrVaultExists if the file is already present.
	Create(ctx context.Context, password string) error

	// Open decrypts the vault with password and keeps the notes in memory.
	// A wrong password is reported as ErrWrongPassword.
	Open(ctx context.Context, password string) error

	// Save writes the in-memory notes back with the session credentials.
	Save(ctx context.Context) error

	// ChangePassword re-encrypts the vault under newPassword with a fresh
	// salt and saves it immediately.
	ChangePassword(ctx context.Context, newPassword string) error

	// Notes returns a copy of the notes in vault order.
	Notes() ([]models.Note, error)

	// Note returns the note with id, or ErrNoteNotFound.
	Note(id uint64) (models.Note, error)

	// AddNote appends a note with a fresh id. The vault is marked dirty.
	AddNote(title, message string) (models.Note, error)

	// UpdateNote replaces the title and message of an existing note.
	UpdateNote(note models.Note) error

	// RemoveNote deletes the note with id.
	RemoveNote(id uint64) error

	// IsOpen reports whether a session is active.
	IsOpen() bool

	// IsDirty reports whether there are unsaved changes.
	IsDirty() bool

	// Close ends the session and drops the key and notes from memory.
	Close()
}
