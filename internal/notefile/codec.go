// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/MKhiriev/go-note-vault/internal/cipherstream"
	"github.com/MKhiriev/go-note-vault/internal/crypto"
	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/models"
)

// Credentials is the salt and derived key of an open vault. It is returned
// by [Codec.Save] and [Codec.Load] so the vault can be saved again without
// asking for the password. The key is secret and must never be logged.
type Credentials struct {
	Salt []byte
	Key  []byte
}

// IsZero reports whether c carries no key.
func (c Credentials) IsZero() bool {
	return len(c.Key) == 0
}

// Codec saves and loads note collections in the vault container format.
// A Codec holds no per-file state and may be reused; each Save or Load
// owns its cipher stream until it returns.
type Codec struct {
	keys       crypto.KeyChainService
	log        *logger.Logger
	iterations int
	versions   map[uint32]int
}

// NewCodec builds a Codec that takes salts, IVs and keys from keys.
func NewCodec(keys crypto.KeyChainService, log *logger.Logger, opts ...Option) *Codec {
	if log == nil {
		log = logger.Nop()
	}
	c := &Codec{
		keys:       keys,
		log:        log,
		iterations: defaultIterations(),
		versions:   make(map[uint32]int),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Iterations returns the work factor used for new files.
func (c *Codec) Iterations() int {
	return c.iterations
}

// Save writes notes to w encrypted under a key derived from password and a
// fresh salt. The returned credentials can be passed to
// [Codec.SaveWithCredentials] for later saves.
func (c *Codec) Save(w io.Writer, notes NoteSource, password string) (Credentials, error) {
	salt, err := c.keys.GenerateSalt()
	if err != nil {
		return Credentials{}, fmt.Errorf("%w: generate salt: %w", ErrEncryption, err)
	}

	key, err := c.deriveKey(password, salt, c.iterations)
	if err != nil {
		return Credentials{}, err
	}

	creds := Credentials{Salt: salt, Key: key}
	if err := c.SaveWithCredentials(w, notes, creds); err != nil {
		return Credentials{}, err
	}
	return creds, nil
}

// SaveWithCredentials writes notes to w with a previously derived salt and
// key. A fresh IV is generated on every call.
//
// Any short write yields [ErrIO]; a cipher setup failure yields
// [ErrEncryption]. The final cipher block is flushed on every exit path.
func (c *Codec) SaveWithCredentials(w io.Writer, notes NoteSource, creds Credentials) (err error) {
	if len(creds.Key) != crypto.KeySize {
		return fmt.Errorf("%w: key is %d bytes, want %d", ErrEncryption, len(creds.Key), crypto.KeySize)
	}

	iv, err := c.keys.GenerateIV()
	if err != nil {
		return fmt.Errorf("%w: generate iv: %w", ErrEncryption, err)
	}

	if err := writeHeader(w, creds.Salt, iv); err != nil {
		return fmt.Errorf("%w: write header: %w", ErrIO, err)
	}

	cw, err := cipherstream.NewWriter(w, creds.Key, iv)
	if err != nil {
		return fmt.Errorf("%w: open cipher: %w", ErrEncryption, err)
	}
	defer func() {
		if closeErr := cw.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrIO, closeErr)
		}
	}()

	count, err := writeBody(cw, notes)
	if err != nil {
		return fmt.Errorf("%w: write notes: %w", ErrIO, err)
	}

	c.log.Debug().Int("notes", count).Msg("vault saved")
	return nil
}

func writeHeader(w io.Writer, salt, iv []byte) error {
	if err := writeFull(w, []byte(Magic)); err != nil {
		return err
	}
	if err := writeUint32(w, CurrentVersion); err != nil {
		return err
	}
	if err := writeBlob(w, salt); err != nil {
		return err
	}
	return writeBlob(w, iv)
}

func writeBody(w io.Writer, notes NoteSource) (int, error) {
	total := notes.Len()
	if total < 0 || uint64(total) > math.MaxUint32 {
		return 0, fmt.Errorf("cannot store %d notes", total)
	}

	if err := writeFull(w, []byte(Magic)); err != nil {
		return 0, err
	}
	if err := writeUint32(w, uint32(total)); err != nil {
		return 0, err
	}

	count := 0
	for note := range notes.All() {
		if count == total {
			return count, errors.New("collection yielded more notes than its length")
		}
		if err := writeNote(w, note); err != nil {
			return count, fmt.Errorf("note %d: %w", note.ID, err)
		}
		count++
	}
	if count != total {
		return count, fmt.Errorf("collection yielded %d of %d notes", count, total)
	}
	return count, nil
}

func writeNote(w io.Writer, note models.Note) error {
	if err := writeUint64(w, note.ID); err != nil {
		return err
	}
	if err := writeString(w, note.Title); err != nil {
		return err
	}
	return writeString(w, note.Message)
}

// Load reads a vault file from r into dst using password.
//
// dst is cleared first and cleared again on any failure, so it is either
// fully populated or empty. On success the returned credentials hold the
// file's salt and a key derived with the current work factor; when the
// file was written with a different one the key is re-derived, so the next
// save upgrades it.
func (c *Codec) Load(r io.Reader, password string, dst NoteCollection) (creds Credentials, err error) {
	dst.Clear()
	defer func() {
		if err != nil {
			dst.Clear()
		}
	}()

	version, salt, iv, err := readHeader(r)
	if err != nil {
		return Credentials{}, err
	}

	iterations := c.iterationsFor(version)
	key, err := c.deriveKey(password, salt, iterations)
	if err != nil {
		return Credentials{}, err
	}

	cr, err := cipherstream.NewReader(r, key, iv)
	if err != nil {
		return Credentials{}, fmt.Errorf("%w: open cipher: %w", ErrEncryption, err)
	}
	defer cr.Close()

	var magic [len(Magic)]byte
	if _, err := io.ReadFull(cr, magic[:]); err != nil {
		return Credentials{}, fmt.Errorf("%w: read body magic: %w", ErrEncryption, err)
	}
	if !bytes.Equal(magic[:], []byte(Magic)) {
		return Credentials{}, fmt.Errorf("%w: body magic mismatch", ErrEncryption)
	}

	count, err := readNotes(cr, dst)
	if err != nil {
		return Credentials{}, err
	}

	if iterations != c.iterations {
		stale := key
		key, err = c.deriveKey(password, salt, c.iterations)
		clear(stale)
		if err != nil {
			return Credentials{}, err
		}
		c.log.Info().
			Uint32("version", version).
			Int("from", iterations).
			Int("to", c.iterations).
			Msg("vault key re-derived with current work factor")
	}

	c.log.Debug().Uint32("version", version).Uint32("notes", count).Msg("vault loaded")
	return Credentials{Salt: salt, Key: key}, nil
}

func readHeader(r io.Reader) (version uint32, salt, iv []byte, err error) {
	var magic [len(Magic)]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return 0, nil, nil, fmt.Errorf("%w: %w: read magic: %w", ErrIO, ErrShortHeader, err)
	}
	if !bytes.Equal(magic[:], []byte(Magic)) {
		return 0, nil, nil, ErrInvalidFile
	}

	version, err = readUint32(r)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("%w: %w: read version: %w", ErrIO, ErrShortHeader, err)
	}
	if version > CurrentVersion {
		return 0, nil, nil, fmt.Errorf("%w: %d (newest supported is %d)", ErrInvalidVersion, version, CurrentVersion)
	}

	salt, err = readBlob(r)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("%w: %w: read salt: %w", ErrIO, ErrShortHeader, err)
	}

	iv, err = readBlob(r)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("%w: %w: read iv: %w", ErrIO, ErrShortHeader, err)
	}

	return version, salt, iv, nil
}

// readNotes appends the encrypted records to dst in file order.
func readNotes(r io.Reader, dst NoteSink) (uint32, error) {
	count, err := readUint32(r)
	if err != nil {
		return 0, bodyReadError("note count", err)
	}

	for i := range count {
		var note models.Note

		if note.ID, err = readUint64(r); err != nil {
			return 0, bodyReadError(fmt.Sprintf("note %d id", i), err)
		}
		if note.Title, err = readString(r); err != nil {
			return 0, bodyReadError(fmt.Sprintf("note %d title", i), err)
		}
		if note.Message, err = readString(r); err != nil {
			return 0, bodyReadError(fmt.Sprintf("note %d message", i), err)
		}

		if !dst.Append(note) {
			return 0, fmt.Errorf("%w: duplicate note id %d", ErrIO, note.ID)
		}
	}

	return count, nil
}

func bodyReadError(field string, err error) error {
	return fmt.Errorf("%w: read %s: %w", ErrIO, field, err)
}

func (c *Codec) deriveKey(password string, salt []byte, iterations int) ([]byte, error) {
	key := c.keys.DeriveKey(password, salt, iterations)
	if len(key) != crypto.KeySize {
		return nil, fmt.Errorf("%w: derived key is %d bytes, want %d", ErrEncryption, len(key), crypto.KeySize)
	}
	return key, nil
}
