// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// KeyLength is the length in bytes of every symmetric key produced by the
// cipher engine (256 bits, AES-256).
const KeyLength = 32

// SymmetricKey holds derived symmetric key material together with the salt
// and iteration count used to derive it. The key bytes are deliberately
// unexported so the type cannot be JSON-marshalled and the material never
// leaks through accidental serialization or logging.
//
// The caller owns the key: its lifetime ends when the caller calls Zero.
type SymmetricKey struct {
	material []byte

	// Salt is the KDF salt the key was derived with. Not a secret — it is
	// embedded verbatim in every encrypted blob.
	Salt []byte

	// Iterations is the PBKDF2 iteration count used during derivation.
	Iterations int
}

// NewSymmetricKey wraps derived key material. The slice is retained, not
// copied; the caller must not reuse it.
func NewSymmetricKey(material, salt []byte, iterations int) SymmetricKey {
	return SymmetricKey{material: material, Salt: salt, Iterations: iterations}
}

// Bytes returns the raw key material for use by the cipher engine.
func (k SymmetricKey) Bytes() []byte {
	return k.material
}

// IsZero reports whether the key holds no material (either never derived or
// already wiped).
func (k SymmetricKey) IsZero() bool {
	return len(k.material) == 0
}

// Zero overwrites the key material in place. The key must not be used
// afterwards.
func (k *SymmetricKey) Zero() {
	for i := range k.material {
		k.material[i] = 0
	}
	k.material = nil
}

// String implements fmt.Stringer and always redacts the key material.
func (k SymmetricKey) String() string {
	return "SymmetricKey(redacted)"
}
