// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-trust-engine/models"
)

// EncryptFile implements [CipherService]. The whole payload is read into
// memory (documents, not streams — bounded by file size), sealed under a
// fresh salt and nonce, and written to dst atomically so a crash never
// leaves a half-written encrypted file.
func (c *cipherService) EncryptFile(src, dst, password string) (models.EncryptedBlob, error) {
	plaintext, err := os.ReadFile(src)
	if err != nil {
		return models.EncryptedBlob{}, fmt.Errorf("read source file: %w", err)
	}

	salt, err := c.GenerateSalt()
	if err != nil {
		return models.EncryptedBlob{}, fmt.Errorf("generate salt: %w", err)
	}

	key, err := c.DeriveKey(password, salt)
	if err != nil {
		return models.EncryptedBlob{}, err
	}
	defer key.Zero()

	blob, err := c.Encrypt(plaintext, key)
	if err != nil {
		return models.EncryptedBlob{}, err
	}

	if err := writeFileAtomic(dst, blob.Marshal(), 0o600); err != nil {
		return models.EncryptedBlob{}, fmt.Errorf("write encrypted file: %w", err)
	}

	return blob, nil
}

// DecryptFile implements [CipherService]. The key is re-derived from the
// salt embedded in the source blob; the plaintext is written only after the
// tag verified, and atomically.
func (c *cipherService) DecryptFile(src, dst, password string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read encrypted file: %w", err)
	}

	blob, err := models.ParseEncryptedBlob(data)
	if err != nil {
		if errors.Is(err, models.ErrMalformedBlob) {
			return fmt.Errorf("%w: %s", ErrInvalidInput, err)
		}
		return err
	}

	key, err := c.DeriveKey(password, blob.Salt)
	if err != nil {
		return err
	}
	defer key.Zero()

	plaintext, err := c.Decrypt(blob, key)
	if err != nil {
		return err
	}

	if err := writeFileAtomic(dst, plaintext, 0o600); err != nil {
		return fmt.Errorf("write decrypted file: %w", err)
	}

	return nil
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it over path, so readers observe either the old content or the
// complete new content, never a partial write.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".trust-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err = tmp.Chmod(perm); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err = os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}

	return nil
}
