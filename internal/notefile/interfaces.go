// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notefile

import (
	"iter"

	"github.com/MKhiriev/go-note-vault/models"
)

// NoteSource is the read side of a note collection as seen by [Codec.Save].
// All must yield exactly Len notes in collection order.
type NoteSource interface {
	Len() int
	All() iter.Seq[models.Note]
}

// NoteSink is the write side of a note collection as seen by [Codec.Load].
// Append adds a note at the end and reports false if its id is already
// present.
type NoteSink interface {
	Clear()
	Append(note models.Note) bool
}

// NoteCollection is an insertion-ordered set of notes keyed by id.
type NoteCollection interface {
	NoteSource
	NoteSink
}
