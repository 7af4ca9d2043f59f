package config

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_DefaultsOnly verifies that a builder with only defaults yields a
// valid configuration equal to the documented default values.
func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultKDFIterations, cfg.KDF.Iterations)
	assert.Equal(t, DefaultEntropyThreshold, cfg.Scanner.EntropyThreshold)
	assert.Equal(t, DefaultSampleSize, cfg.Scanner.SampleSize)
	assert.Equal(t, DefaultMinScanSize, cfg.Scanner.MinScanSize)
	assert.Equal(t, DefaultQuarantineDir, cfg.Scanner.QuarantineDir)
	assert.False(t, cfg.Scanner.DisableHeuristics)
	assert.False(t, cfg.Scanner.RealTimeProtection)
}

// TestBuild_EnvOverridesDefaults verifies merge precedence: values parsed
// from the environment win over defaults appended later.
func TestBuild_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("TRUST_SCANNER_ENTROPY_THRESHOLD", "6.5")
	t.Setenv("TRUST_SCANNER_QUARANTINE_DIR", "/tmp/q")

	cfg, err := newConfigBuilder().withEnv().withJSON().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, 6.5, cfg.Scanner.EntropyThreshold)
	assert.Equal(t, "/tmp/q", cfg.Scanner.QuarantineDir)
	// untouched fields fall back to defaults
	assert.Equal(t, DefaultSampleSize, cfg.Scanner.SampleSize)
	assert.Equal(t, DefaultKDFIterations, cfg.KDF.Iterations)
}

// TestBuild_JSONOverridesDefaults verifies that a JSON file referenced via
// TRUST_CONFIG is parsed and merged between env values and defaults.
func TestBuild_JSONOverridesDefaults(t *testing.T) {
	jsonCfg := TrustJSONConfig{}
	jsonCfg.Scanner.SampleSize = 1024
	jsonCfg.Registry.Path = "/tmp/registry.db"
	path := writeTempJSONConfig(t, jsonCfg)

	t.Setenv("TRUST_CONFIG", path)

	cfg, err := newConfigBuilder().withEnv().withJSON().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, 1024, cfg.Scanner.SampleSize)
	assert.Equal(t, "/tmp/registry.db", cfg.Registry.Path)
	assert.Equal(t, DefaultEntropyThreshold, cfg.Scanner.EntropyThreshold)
}

// TestBuild_EnvWinsOverJSON verifies that an env value is not clobbered by a
// JSON value for the same field.
func TestBuild_EnvWinsOverJSON(t *testing.T) {
	jsonCfg := TrustJSONConfig{}
	jsonCfg.Scanner.SampleSize = 1024
	path := writeTempJSONConfig(t, jsonCfg)

	t.Setenv("TRUST_CONFIG", path)
	t.Setenv("TRUST_SCANNER_SAMPLE_SIZE", "2048")

	cfg, err := newConfigBuilder().withEnv().withJSON().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, 2048, cfg.Scanner.SampleSize)
}

// TestBuild_MissingJSONFile verifies that a dangling TRUST_CONFIG path
// surfaces as a build error.
func TestBuild_MissingJSONFile(t *testing.T) {
	t.Setenv("TRUST_CONFIG", "/nonexistent/config.json")

	_, err := newConfigBuilder().withEnv().withJSON().withDefaults().build()
	require.Error(t, err)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate_Boundaries(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *TrustConfig)
		wantErr error
	}{
		{
			name:   "valid defaults",
			mutate: func(cfg *TrustConfig) {},
		},
		{
			name:    "iterations too low",
			mutate:  func(cfg *TrustConfig) { cfg.KDF.Iterations = 999 },
			wantErr: ErrInvalidKDFConfigs,
		},
		{
			name:    "entropy threshold above 8",
			mutate:  func(cfg *TrustConfig) { cfg.Scanner.EntropyThreshold = 8.1 },
			wantErr: ErrInvalidScannerConfigs,
		},
		{
			name:    "entropy threshold zero",
			mutate:  func(cfg *TrustConfig) { cfg.Scanner.EntropyThreshold = 0 },
			wantErr: ErrInvalidScannerConfigs,
		},
		{
			name:    "sample size zero",
			mutate:  func(cfg *TrustConfig) { cfg.Scanner.SampleSize = 0 },
			wantErr: ErrInvalidScannerConfigs,
		},
		{
			name:    "negative min scan size",
			mutate:  func(cfg *TrustConfig) { cfg.Scanner.MinScanSize = -1 },
			wantErr: ErrInvalidScannerConfigs,
		},
		{
			name:    "empty quarantine dir",
			mutate:  func(cfg *TrustConfig) { cfg.Scanner.QuarantineDir = "" },
			wantErr: ErrInvalidScannerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(&cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
