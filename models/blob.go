// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// Fixed field widths of the encrypted blob wire layout. Existing encrypted
// artifacts rely on these widths; they must never change.
const (
	// SaltLength is the width of the KDF salt field (256 bits).
	SaltLength = 32

	// NonceLength is the width of the AES-GCM nonce field (96 bits).
	NonceLength = 12

	// TagLength is the width of the GCM authentication tag appended to the
	// ciphertext.
	TagLength = 16

	// MinBlobLength is the smallest possible marshalled blob: salt, nonce
	// and the tag of an empty plaintext.
	MinBlobLength = SaltLength + NonceLength + TagLength
)

// ErrMalformedBlob is returned when a byte sequence is too short to contain
// the fixed-width blob fields.
var ErrMalformedBlob = errors.New("malformed encrypted blob")

// EncryptedBlob is a self-describing encrypted byte sequence with the
// on-disk layout
//
//	[salt:32][nonce:12][ciphertext:N][tag:16]
//
// Sealed carries ciphertext and tag as produced by AES-GCM. The blob is
// immutable once produced; any corruption of any field causes decryption to
// fail closed.
type EncryptedBlob struct {
	// Salt is the KDF salt the encryption key was derived with.
	Salt []byte

	// Nonce is the unique AES-GCM nonce used for this blob. Never reused
	// under the same key.
	Nonce []byte

	// Sealed is the ciphertext with the authentication tag appended.
	Sealed []byte
}

// Marshal serializes the blob into its wire layout.
func (b EncryptedBlob) Marshal() []byte {
	out := make([]byte, 0, len(b.Salt)+len(b.Nonce)+len(b.Sealed))
	out = append(out, b.Salt...)
	out = append(out, b.Nonce...)
	out = append(out, b.Sealed...)
	return out
}

// ParseEncryptedBlob splits a wire-layout byte sequence into its fields.
// Returns [ErrMalformedBlob] when data cannot contain all fixed-width
// fields. Field contents are not validated here; tampering surfaces as an
// authentication failure at decryption time.
func ParseEncryptedBlob(data []byte) (EncryptedBlob, error) {
	if len(data) < MinBlobLength {
		return EncryptedBlob{}, ErrMalformedBlob
	}

	return EncryptedBlob{
		Salt:   data[:SaltLength],
		Nonce:  data[SaltLength : SaltLength+NonceLength],
		Sealed: data[SaltLength+NonceLength:],
	}, nil
}
