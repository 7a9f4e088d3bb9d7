// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cipherstream

import (
	"crypto/cipher"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"
)

// Reader decrypts a CBC stream produced by [Writer].
//
// It pulls exactly one block at a time from the source and always holds the
// newest decrypted block back until it knows whether that block is the
// padded final one. A Reader is owned by a single goroutine.
type Reader struct {
	src  io.Reader
	mode cipher.BlockMode

	in      [BlockSize]byte
	held    [BlockSize]byte
	hasHeld bool

	buf       [bufferSize]byte
	pos, size int

	eof bool
	err error
}

// NewReader returns a Reader that decrypts src with key and iv.
//
// Returns [ErrInvalidKeyLength] or [ErrInvalidIVLength] when the lengths do
// not match AES-256-CBC, or a wrapped error if the cipher cannot be created.
func NewReader(src io.Reader, key, iv []byte) (*Reader, error) {
	mode, err := newMode(key, iv, cipher.NewCBCDecrypter)
	if err != nil {
		return nil, err
	}
	return &Reader{src: src, mode: mode}, nil
}

// Read fills p with plaintext until p is full or the stream ends.
//
// At the end of the source the padding of the last block is verified. If it
// is invalid, Read returns the bytes already produced together with
// [ErrDecrypt]; with CBC this is the usual symptom of a wrong key. A source
// that ends in the middle of a block yields [io.ErrUnexpectedEOF]. Errors are
// sticky.
func (r *Reader) Read(p []byte) (int, error) {
	if r.mode == nil {
		return 0, ErrClosed
	}

	n := 0
	for n < len(p) {
		if r.pos < r.size {
			c := copy(p[n:], r.buf[r.pos:r.size])
			n += c
			r.pos += c
			continue
		}

		if r.err != nil {
			return n, r.err
		}
		r.err = r.fill()
	}

	return n, nil
}

// fill refreshes the internal buffer with the next plaintext chunk. It
// returns io.EOF once the final block has been served.
func (r *Reader) fill() error {
	if r.eof {
		return io.EOF
	}

	m, err := io.ReadFull(r.src, r.in[:])
	switch {
	case errors.Is(err, io.EOF) && m == 0:
		return r.finalize()
	case errors.Is(err, io.ErrUnexpectedEOF):
		return fmt.Errorf("read cipher block: %w", io.ErrUnexpectedEOF)
	case err != nil:
		return fmt.Errorf("read cipher block: %w", err)
	}

	r.mode.CryptBlocks(r.in[:], r.in[:])

	size := 0
	if r.hasHeld {
		size = r.emit(r.held[:])
	}
	r.held = r.in
	r.hasHeld = true

	r.pos, r.size = 0, size
	return nil
}

// finalize strips the PKCS#7 padding from the held block.
func (r *Reader) finalize() error {
	if !r.hasHeld {
		return ErrDecrypt
	}

	pad := int(r.held[BlockSize-1])
	if pad == 0 || pad > BlockSize {
		return ErrDecrypt
	}
	ok := 1
	for _, b := range r.held[BlockSize-pad:] {
		ok &= subtle.ConstantTimeByteEq(b, byte(pad))
	}
	if ok != 1 {
		return ErrDecrypt
	}

	r.pos, r.size = 0, r.emit(r.held[:BlockSize-pad])
	r.hasHeld = false
	r.eof = true
	return nil
}

func (r *Reader) emit(plain []byte) int {
	if len(plain) > len(r.buf) {
		panic(errBufferOverflow)
	}
	return copy(r.buf[:], plain)
}

// Close releases the cipher state. It never fails and is safe to call more
// than once; the source is not closed.
func (r *Reader) Close() error {
	r.mode = nil
	r.hasHeld = false
	r.pos, r.size = 0, 0
	clear(r.held[:])
	clear(r.buf[:])
	return nil
}
