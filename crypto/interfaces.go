package crypto

import "github.com/MKhiriev/go-trust-engine/models"

// CipherService performs password-based key derivation and authenticated
// encryption of byte buffers and files. It knows nothing about documents,
// signatures or monitoring — the caller owns every key and every path.
//
// Scheme:
//
//	salt = GenerateSalt()                       (first encryption of a resource)
//	key  = DeriveKey(password, salt)            (deterministic per pair)
//	blob = Encrypt(plaintext, key)              (fresh nonce per call)
//	plaintext = Decrypt(blob, key)              (tag verified before release)
//
// Every cryptographic failure is terminal for that call; retrying a wrong
// password is a caller decision, never engine policy.
type CipherService interface {
	// GenerateSalt reads 32 random bytes from the OS CSPRNG. The salt is
	// not a secret — it is embedded verbatim in every encrypted blob.
	GenerateSalt() ([]byte, error)

	// DeriveKey derives a 256-bit key from password and salt using
	// PBKDF2-HMAC-SHA256. Deterministic: re-deriving with the same pair
	// recovers the same key. Returns [ErrInvalidInput] if password is
	// empty or salt is not exactly 32 bytes.
	DeriveKey(password string, salt []byte) (models.SymmetricKey, error)

	// Encrypt seals plaintext with AES-256-GCM under a fresh random
	// 12-byte nonce. Nonce reuse under one key is a fatal security defect;
	// freshness is enforced by the CSPRNG and covered by tests.
	Encrypt(plaintext []byte, key models.SymmetricKey) (models.EncryptedBlob, error)

	// Decrypt verifies the authentication tag and returns the plaintext.
	// Returns [ErrAuthenticationFailed] on any tag mismatch; a wrong
	// password and a corrupted blob are indistinguishable to the caller,
	// and no partial plaintext is ever released.
	Decrypt(blob models.EncryptedBlob, key models.SymmetricKey) ([]byte, error)

	// EncryptFile encrypts the file at src with a key derived from
	// password and a fresh salt, writing the marshalled blob to dst
	// atomically (temp file + rename) so a crash never leaves a
	// half-written encrypted file.
	EncryptFile(src, dst, password string) (models.EncryptedBlob, error)

	// DecryptFile re-derives the key from the salt embedded in the file at
	// src, verifies the tag, and writes the plaintext to dst atomically.
	DecryptFile(src, dst, password string) error
}
