// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Note is a single vault record.
//
// ID is assigned once by the owning collection and never reused while the
// note exists. Title and Message are stored verbatim; the vault file treats
// them as opaque byte strings.
type Note struct {
	// ID is the collection-scoped stable identifier.
	ID uint64 `json:"id"`

	// Title is the short display name shown in listings.
	Title string `json:"title"`

	// Message is the secret body of the note.
	Message string `json:"message"`
}
