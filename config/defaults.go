// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Built-in defaults. The scanner values mirror the thresholds the original
// deployment shipped with; they are pragmatic, not corpus-validated.
const (
	// DefaultKDFIterations is the PBKDF2 iteration count existing encrypted
	// artifacts were written with.
	DefaultKDFIterations = 65536

	// DefaultEntropyThreshold is the bits-per-byte cutoff for the
	// high-entropy heuristic. Typical prose measures ~4.5, random or
	// compressed data approaches 8.
	DefaultEntropyThreshold = 7.5

	// DefaultSampleSize is the entropy sampling window (64 KiB).
	DefaultSampleSize = 64 * 1024

	// DefaultMinScanSize is the smallest file the entropy heuristic
	// considers.
	DefaultMinScanSize = 100

	// DefaultQuarantineDir is the segregated directory for quarantined
	// files.
	DefaultQuarantineDir = "quarantine"
)

func defaultConfig() TrustConfig {
	return TrustConfig{
		KDF: KDF{
			Iterations: DefaultKDFIterations,
		},
		Scanner: Scanner{
			EntropyThreshold: DefaultEntropyThreshold,
			SampleSize:       DefaultSampleSize,
			MinScanSize:      DefaultMinScanSize,
			QuarantineDir:    DefaultQuarantineDir,
		},
	}
}
