// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Sentinel errors returned by the cipher engine. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrInvalidInput is returned for bad arguments: empty password, wrong
	// salt length, or an input file that cannot hold a well-formed blob.
	// A caller error, never a security event.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAuthenticationFailed is returned when the GCM tag check fails.
	// It deliberately carries no detail: a wrong password and a tampered
	// blob must be indistinguishable, so no decryption oracle exists.
	ErrAuthenticationFailed = errors.New("authentication failed")
)
