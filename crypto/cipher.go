// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"

	"github.com/MKhiriev/go-trust-engine/config"
	"github.com/MKhiriev/go-trust-engine/models"
)

// cipherService is the private implementation of [CipherService].
type cipherService struct {
	// PBKDF2 iteration count. Stored in the struct so it can be adjusted
	// per deployment target without touching previously written blobs
	// (the salt travels with the blob, the count is deployment policy).
	iterations int
}

// NewCipherService constructs a [CipherService] with the iteration count
// from cfg. A non-positive count falls back to
// [config.DefaultKDFIterations], the value existing encrypted artifacts
// were written with.
func NewCipherService(cfg config.KDF) CipherService {
	iterations := cfg.Iterations
	if iterations <= 0 {
		iterations = config.DefaultKDFIterations
	}
	return &cipherService{iterations: iterations}
}

// GenerateSalt implements [CipherService]. It reads 32 random bytes from
// the OS CSPRNG and returns them as the KDF salt. Returns an error if the
// random read fails.
func (c *cipherService) GenerateSalt() ([]byte, error) {
	salt := make([]byte, models.SaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// DeriveKey implements [CipherService]. It derives a 256-bit key from
// password and salt using PBKDF2-HMAC-SHA256 with the iteration count
// stored in the receiver. The result exists only in the caller's memory
// and is never persisted.
func (c *cipherService) DeriveKey(password string, salt []byte) (models.SymmetricKey, error) {
	if password == "" {
		return models.SymmetricKey{}, fmt.Errorf("%w: empty password", ErrInvalidInput)
	}
	if len(salt) != models.SaltLength {
		return models.SymmetricKey{}, fmt.Errorf("%w: salt must be %d bytes, got %d", ErrInvalidInput, models.SaltLength, len(salt))
	}

	material := pbkdf2.Key([]byte(password), salt, c.iterations, models.KeyLength, sha256.New)
	return models.NewSymmetricKey(material, salt, c.iterations), nil
}

// Encrypt implements [CipherService]. It seals plaintext with AES-256-GCM:
// blob = salt ‖ nonce ‖ ciphertext ‖ tag, where the salt is the one the key
// was derived with. A random 12-byte nonce is generated per call. Returns
// an error if cipher creation or the random nonce read fails.
func (c *cipherService) Encrypt(plaintext []byte, key models.SymmetricKey) (models.EncryptedBlob, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return models.EncryptedBlob{}, err
	}

	nonce := make([]byte, models.NonceLength)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return models.EncryptedBlob{}, fmt.Errorf("generate nonce: %w", err)
	}

	return models.EncryptedBlob{
		Salt:   key.Salt,
		Nonce:  nonce,
		Sealed: gcm.Seal(nil, nonce, plaintext, nil),
	}, nil
}

// Decrypt implements [CipherService]. It verifies the authentication tag
// before releasing any plaintext. An [ErrAuthenticationFailed] here almost
// always means a wrong password produced a wrong key — but a tampered blob
// fails identically, so the caller learns nothing beyond "not authentic".
func (c *cipherService) Decrypt(blob models.EncryptedBlob, key models.SymmetricKey) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	// Structurally short fields cannot authenticate; fail the same way a
	// tag mismatch does.
	if len(blob.Nonce) != models.NonceLength || len(blob.Sealed) < models.TagLength {
		return nil, ErrAuthenticationFailed
	}

	plaintext, err := gcm.Open(nil, blob.Nonce, blob.Sealed, nil)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	return plaintext, nil
}

// newGCM builds an AES-256-GCM AEAD from the key material.
func newGCM(key models.SymmetricKey) (cipher.AEAD, error) {
	if key.IsZero() {
		return nil, fmt.Errorf("%w: zeroed key", ErrInvalidInput)
	}

	block, err := aes.NewCipher(key.Bytes())
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
