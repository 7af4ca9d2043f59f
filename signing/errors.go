// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package signing

import "errors"

var (
	// ErrInvalidInput is returned when a signing annotation fails
	// validation before any cryptography runs.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoCredentials is returned when signing is attempted without a
	// loaded credential store or selected alias.
	ErrNoCredentials = errors.New("no signing credentials loaded")

	// ErrInvalidCredentials is returned for an empty or incorrect key
	// store password.
	ErrInvalidCredentials = errors.New("invalid key store credentials")

	// ErrStoreNotFound is returned when the key store file does not exist.
	ErrStoreNotFound = errors.New("key store not found")

	// ErrMalformedStore is returned when the key store file cannot be
	// parsed as PKCS#12.
	ErrMalformedStore = errors.New("malformed key store")

	// ErrUnknownAlias is returned when a requested alias is not present
	// in the credential store.
	ErrUnknownAlias = errors.New("unknown key alias")
)
