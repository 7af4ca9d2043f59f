// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package signing

import (
	"errors"
	"fmt"
	"os"

	enginecrypto "github.com/MKhiriev/go-trust-engine/crypto"
	"github.com/MKhiriev/go-trust-engine/models"
)

// LoadEncryptedCredentials opens a PKCS#12 key store that was wrapped in
// the engine's own encrypted-blob layout. The container is unwrapped with
// containerPassword via the given cipher, then the inner PKCS#12 payload
// is parsed with storePassword. The two passwords are independent secrets
// and may differ.
func LoadEncryptedCredentials(cipher enginecrypto.CipherService, path, containerPassword, storePassword string) (CredentialStore, error) {
	if containerPassword == "" || storePassword == "" {
		return nil, fmt.Errorf("%w: empty password", ErrInvalidCredentials)
	}

	wrapped, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrStoreNotFound, path)
		}
		return nil, fmt.Errorf("read key store %s: %w", path, err)
	}

	blob, err := models.ParseEncryptedBlob(wrapped)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedStore, err)
	}

	key, err := cipher.DeriveKey(containerPassword, blob.Salt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}
	defer key.Zero()

	pfx, err := cipher.Decrypt(blob, key)
	if err != nil {
		if errors.Is(err, enginecrypto.ErrAuthenticationFailed) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	return parseKeyStore(pfx, storePassword)
}
