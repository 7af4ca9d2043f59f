// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config assembles the trust engine configuration from environment
// variables, an optional JSON file and built-in defaults.
//
// The scanner thresholds deliberately live here rather than as constants:
// the shipped defaults are pragmatic heuristics, not values validated
// against a malware corpus, and deployments are expected to tune them.
package config

// TrustConfig is the top-level configuration container for the trust
// engine. It aggregates all sub-configurations and is populated by merging
// values from environment variables, an optional JSON file and defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type TrustConfig struct {
	// KDF holds the key-derivation parameters used by the cipher engine.
	KDF KDF `envPrefix:"TRUST_KDF_"`

	// Scanner holds the integrity scanner thresholds and toggles.
	Scanner Scanner `envPrefix:"TRUST_SCANNER_"`

	// Registry holds the monitoring registry persistence settings.
	Registry Registry `envPrefix:"TRUST_REGISTRY_"`

	// Logs holds the security event trail settings.
	Logs Logs `envPrefix:"TRUST_LOGS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables.
	// Env: TRUST_CONFIG
	JSONFilePath string `env:"TRUST_CONFIG"`
}

// KDF configures password-based key derivation.
type KDF struct {
	// Iterations is the PBKDF2-HMAC-SHA256 iteration count. Lowering it
	// weakens brute-force resistance; blobs written with a different count
	// still decrypt because the count is fixed per deployment, not stored
	// in the blob.
	// Env: TRUST_KDF_ITERATIONS
	Iterations int `env:"ITERATIONS"`
}

// Scanner configures the heuristic malware scanner and the integrity
// monitor. All thresholds are best-effort calibrations; legitimately
// compressed content is expected to produce false positives.
type Scanner struct {
	// EntropyThreshold is the Shannon entropy (bits per byte) above which
	// the high-entropy heuristic fires. Must lie in (0, 8].
	// Env: TRUST_SCANNER_ENTROPY_THRESHOLD
	EntropyThreshold float64 `env:"ENTROPY_THRESHOLD"`

	// SampleSize is the number of leading bytes sampled for the entropy
	// estimate.
	// Env: TRUST_SCANNER_SAMPLE_SIZE
	SampleSize int `env:"SAMPLE_SIZE"`

	// MinScanSize is the smallest file size (bytes) the entropy heuristic
	// considers; smaller files produce unstable estimates and are skipped.
	// Env: TRUST_SCANNER_MIN_SCAN_SIZE
	MinScanSize int `env:"MIN_SCAN_SIZE"`

	// QuarantineDir is the segregated directory quarantined files are
	// moved into.
	// Env: TRUST_SCANNER_QUARANTINE_DIR
	QuarantineDir string `env:"QUARANTINE_DIR"`

	// DisableHeuristics turns both scan heuristics off; ScanForThreats
	// then always returns a clean verdict.
	// Env: TRUST_SCANNER_DISABLE_HEURISTICS
	DisableHeuristics bool `env:"DISABLE_HEURISTICS"`

	// RealTimeProtection makes VerifyIntegrity quarantine a file whose
	// content no longer matches its registered baseline.
	// Env: TRUST_SCANNER_REAL_TIME_PROTECTION
	RealTimeProtection bool `env:"REAL_TIME_PROTECTION"`
}

// Registry configures where the monitoring registry persists its
// path → hash baselines.
type Registry struct {
	// Path is the SQLite database file. ":memory:" (or empty) selects a
	// non-durable in-memory database.
	// Env: TRUST_REGISTRY_PATH
	Path string `env:"PATH"`
}

// Logs configures the append-only security event trail.
type Logs struct {
	// SecurityLogPath is the file the scanner appends security events to.
	// Empty disables the file trail; events still go to the injected
	// logger.
	// Env: TRUST_LOGS_SECURITY_LOG_PATH
	SecurityLogPath string `env:"SECURITY_LOG_PATH"`
}

// Load builds the effective configuration: environment variables first,
// then the optional JSON file, then defaults for anything still unset,
// validated before being returned.
func Load() (*TrustConfig, error) {
	return newConfigBuilder().
		withEnv().
		withJSON().
		withDefaults().
		build()
}

// Default returns the built-in configuration without consulting the
// environment. Useful for tests and for callers that configure the engine
// programmatically.
func Default() *TrustConfig {
	cfg := defaultConfig()
	return &cfg
}
