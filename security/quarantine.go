// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package security

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Quarantine moves the file at path into the configured quarantine
// directory and returns the destination path. The destination name is the
// original base name with a unique ".quarantine" suffix, so repeated
// quarantines of same-named files never collide. After a successful
// quarantine the original path no longer exists.
func (s *Scanner) Quarantine(path string) (string, error) {
	if err := os.MkdirAll(s.cfg.QuarantineDir, 0o750); err != nil {
		return "", fmt.Errorf("quarantine %s: %w", path, err)
	}

	dest := filepath.Join(s.cfg.QuarantineDir, filepath.Base(path)+".quarantine-"+uuid.NewString())

	if err := os.Rename(path, dest); err != nil {
		// rename fails across filesystems, fall back to copy and remove
		if copyErr := copyAndRemove(path, dest); copyErr != nil {
			return "", fmt.Errorf("quarantine %s: %w", path, copyErr)
		}
	}

	s.event("file-quarantined").
		Str("path", path).
		Str("quarantined_as", dest).
		Msg("file moved to quarantine")

	return dest, nil
}

// copyAndRemove copies src to dest and deletes src once the copy is
// durable on disk.
func copyAndRemove(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dest)
		return err
	}
	if err := out.Sync(); err != nil {
		out.Close()
		os.Remove(dest)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(dest)
		return err
	}

	return os.Remove(src)
}
