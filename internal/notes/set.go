// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notes holds the in-memory note collection of an open vault.
package notes

import (
	"iter"
	"slices"

	"github.com/MKhiriev/go-note-vault/models"
)

// Set is an insertion-ordered collection of notes keyed by id.
//
// New ids come from an id factory that hands out max(seen)+1, so an id is
// never reused while a note with it is present. The zero value is ready to
// use. A Set is not safe for concurrent use.
type Set struct {
	order []uint64
	byID  map[uint64]models.Note
	ids   idFactory
}

// New returns an empty Set.
func New() *Set {
	return &Set{}
}

// Len returns the number of notes.
func (s *Set) Len() int {
	return len(s.order)
}

// Clear removes every note and resets the id factory.
func (s *Set) Clear() {
	s.order = nil
	s.byID = nil
	s.ids.reset()
}

// Add stores a new note at the end with a freshly allocated id and returns it.
func (s *Set) Add(title, message string) models.Note {
	note := models.Note{ID: s.ids.next(), Title: title, Message: message}
	s.Append(note)
	return note
}

// Append stores note at the end. It returns false if the id is taken.
func (s *Set) Append(note models.Note) bool {
	return s.Insert(len(s.order), note)
}

// Insert stores note before position index. It returns false if the id is
// taken or index is out of range [0, Len].
func (s *Set) Insert(index int, note models.Note) bool {
	if index < 0 || index > len(s.order) {
		return false
	}
	if _, ok := s.byID[note.ID]; ok {
		return false
	}
	if s.byID == nil {
		s.byID = make(map[uint64]models.Note)
	}

	s.byID[note.ID] = note
	s.order = slices.Insert(s.order, index, note.ID)
	s.ids.observe(note.ID)
	return true
}

// Remove deletes the note with id. It returns false if there is none.
func (s *Set) Remove(id uint64) bool {
	if _, ok := s.byID[id]; !ok {
		return false
	}
	delete(s.byID, id)
	s.order = slices.DeleteFunc(s.order, func(v uint64) bool { return v == id })
	s.ids.release(id, s.order)
	return true
}

// Find returns the note with id.
func (s *Set) Find(id uint64) (models.Note, bool) {
	note, ok := s.byID[id]
	return note, ok
}

// Update replaces the title and message of the note with the same id,
// keeping its position. It returns false if there is no such note.
func (s *Set) Update(note models.Note) bool {
	if _, ok := s.byID[note.ID]; !ok {
		return false
	}
	s.byID[note.ID] = note
	return true
}

// Get returns the note at position index.
func (s *Set) Get(index int) (models.Note, bool) {
	if index < 0 || index >= len(s.order) {
		return models.Note{}, false
	}
	return s.byID[s.order[index]], true
}

// IndexOf returns the position of the note with id, or -1.
func (s *Set) IndexOf(id uint64) int {
	return slices.Index(s.order, id)
}

// All yields the notes in collection order.
func (s *Set) All() iter.Seq[models.Note] {
	return func(yield func(models.Note) bool) {
		for _, id := range s.order {
			if !yield(s.byID[id]) {
				return
			}
		}
	}
}

// Notes returns a copy of the notes in collection order.
func (s *Set) Notes() []models.Note {
	return slices.Collect(s.All())
}

// Sort reorders the notes with less. The sort is stable.
func (s *Set) Sort(less func(a, b models.Note) int) {
	slices.SortStableFunc(s.order, func(a, b uint64) int {
		return less(s.byID[a], s.byID[b])
	})
}
