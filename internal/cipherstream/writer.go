// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cipherstream provides AES-256-CBC adapters that encrypt or decrypt
// an arbitrary byte stream on the fly.
//
// [Writer] wraps an [io.Writer] sink and [Reader] wraps an [io.Reader]
// source. Both keep at most two cipher blocks of internal state regardless
// of how much data passes through them. The final block is padded with
// PKCS#7, so the ciphertext length is always a non-zero multiple of
// [BlockSize].
package cipherstream

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"io"
)

const (
	// KeySize is the AES-256 key length in bytes.
	KeySize = 32

	// BlockSize is the AES block length; the IV is one block long.
	BlockSize = aes.BlockSize

	bufferSize = 2 * BlockSize
)

// Writer encrypts everything written to it and forwards the ciphertext to
// the wrapped sink as soon as a full block is available.
//
// Close must be called to flush the padded final block. A Writer is owned
// by a single goroutine.
type Writer struct {
	dst  io.Writer
	mode cipher.BlockMode

	pending  [BlockSize]byte
	npending int
	buf      [bufferSize]byte
}

// NewWriter returns a Writer that encrypts into dst with key and iv.
//
// Returns [ErrInvalidKeyLength] or [ErrInvalidIVLength] when the lengths do
// not match AES-256-CBC, or a wrapped error if the cipher cannot be created.
func NewWriter(dst io.Writer, key, iv []byte) (*Writer, error) {
	mode, err := newMode(key, iv, cipher.NewCBCEncrypter)
	if err != nil {
		return nil, err
	}
	return &Writer{dst: dst, mode: mode}, nil
}

// Write encrypts p, feeding the cipher at most one block per step and
// passing each produced ciphertext chunk straight to the sink.
//
// It returns the number of plaintext bytes consumed. If the sink accepts
// fewer bytes than a chunk, Write stops and returns the count consumed
// before that chunk along with the sink error ([io.ErrShortWrite] if the sink
// reported none). The stream is unusable after such a failure.
func (w *Writer) Write(p []byte) (int, error) {
	if w.mode == nil {
		return 0, ErrClosed
	}

	written := 0
	for written < len(p) {
		next := min(len(p), written+BlockSize)

		produced := w.update(p[written:next])
		if produced > 0 {
			n, err := w.dst.Write(w.buf[:produced])
			if n != produced || err != nil {
				if err == nil {
					err = io.ErrShortWrite
				}
				return written, err
			}
		}

		written = next
	}

	return written, nil
}

// update absorbs chunk (at most one block) and encrypts any completed block
// into w.buf. It returns the number of ciphertext bytes produced.
func (w *Writer) update(chunk []byte) int {
	produced := 0
	for len(chunk) > 0 {
		c := copy(w.pending[w.npending:], chunk)
		w.npending += c
		chunk = chunk[c:]

		if w.npending == BlockSize {
			if produced+BlockSize > len(w.buf) {
				panic(errBufferOverflow)
			}
			w.mode.CryptBlocks(w.buf[produced:produced+BlockSize], w.pending[:])
			produced += BlockSize
			w.npending = 0
		}
	}
	return produced
}

// Close pads and encrypts the final block and writes it to the sink. It is
// safe to call more than once; only the first call writes.
//
// A flush error is returned for reporting only: the stream is torn down
// either way and the sink is not closed.
func (w *Writer) Close() error {
	if w.mode == nil {
		return nil
	}

	pad := byte(BlockSize - w.npending)
	for i := w.npending; i < BlockSize; i++ {
		w.pending[i] = pad
	}
	w.mode.CryptBlocks(w.buf[:BlockSize], w.pending[:])
	w.mode = nil
	w.npending = 0

	n, err := w.dst.Write(w.buf[:BlockSize])
	if err != nil {
		return fmt.Errorf("flush final block: %w", err)
	}
	if n != BlockSize {
		return fmt.Errorf("flush final block: %w", io.ErrShortWrite)
	}
	return nil
}

func newMode(key, iv []byte, build func(cipher.Block, []byte) cipher.BlockMode) (cipher.BlockMode, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeyLength, len(key), KeySize)
	}
	if len(iv) != BlockSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidIVLength, len(iv), BlockSize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	if block.BlockSize() != BlockSize {
		return nil, fmt.Errorf("%w: cipher block size %d", ErrInvalidIVLength, block.BlockSize())
	}

	return build(block, iv), nil
}
