// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package security

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuarantine(t *testing.T) {
	// Arrange
	cfg := testScannerConfig(t)
	scanner := newTestScanner(t, cfg)
	content := []byte("suspicious payload")
	path := writeTestFile(t, t.TempDir(), "dropper.pdf", content)

	// Act
	dest, err := scanner.Quarantine(path)

	// Assert
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(dest), "dropper.pdf.quarantine-"))

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "original must be gone after quarantine")

	moved, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, content, moved, "quarantined copy must preserve content")
}

func TestQuarantine_SameNameTwice(t *testing.T) {
	// Arrange
	cfg := testScannerConfig(t)
	scanner := newTestScanner(t, cfg)
	dir := t.TempDir()

	// Act
	first := writeTestFile(t, dir, "dropper.pdf", []byte("first"))
	_, err := scanner.Quarantine(first)
	require.NoError(t, err)

	second := writeTestFile(t, dir, "dropper.pdf", []byte("second"))
	_, err = scanner.Quarantine(second)
	require.NoError(t, err)

	// Assert
	entries, err := os.ReadDir(cfg.QuarantineDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "same-named files must quarantine without collision")
}

func TestQuarantine_MissingFile(t *testing.T) {
	scanner := newTestScanner(t, testScannerConfig(t))

	_, err := scanner.Quarantine(filepath.Join(t.TempDir(), "missing.pdf"))

	assert.Error(t, err)
}

func TestHashBytes(t *testing.T) {
	// SHA-256 of the empty string is a fixed vector.
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		HashBytes(nil))
}
