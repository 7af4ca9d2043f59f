// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	// ErrInvalidKDFConfigs is returned when the KDF iteration count is too
	// low to provide meaningful brute-force resistance.
	ErrInvalidKDFConfigs = errors.New("invalid kdf configs")

	// ErrInvalidScannerConfigs is returned when a scanner threshold lies
	// outside its meaningful range.
	ErrInvalidScannerConfigs = errors.New("invalid scanner configs")
)
