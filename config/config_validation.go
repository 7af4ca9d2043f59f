// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [TrustConfig] satisfies all
// engine invariants before it is handed to component constructors.
//
// Returns nil if the configuration is valid, or a descriptive error
// wrapping the matching sentinel otherwise.
func (cfg *TrustConfig) validate() error {
	if cfg.KDF.Iterations < 1000 {
		return fmt.Errorf("%w: iterations must be at least 1000, got %d", ErrInvalidKDFConfigs, cfg.KDF.Iterations)
	}

	// Shannon entropy of a byte stream is bounded by 8 bits per byte.
	if cfg.Scanner.EntropyThreshold <= 0 || cfg.Scanner.EntropyThreshold > 8 {
		return fmt.Errorf("%w: entropy threshold must lie in (0, 8], got %g", ErrInvalidScannerConfigs, cfg.Scanner.EntropyThreshold)
	}

	if cfg.Scanner.SampleSize <= 0 {
		return fmt.Errorf("%w: sample size must be positive, got %d", ErrInvalidScannerConfigs, cfg.Scanner.SampleSize)
	}

	if cfg.Scanner.MinScanSize < 0 {
		return fmt.Errorf("%w: min scan size must not be negative, got %d", ErrInvalidScannerConfigs, cfg.Scanner.MinScanSize)
	}

	if cfg.Scanner.QuarantineDir == "" {
		return fmt.Errorf("%w: quarantine dir must not be empty", ErrInvalidScannerConfigs)
	}

	return nil
}
