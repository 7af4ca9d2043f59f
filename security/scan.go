// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package security

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/MKhiriev/go-trust-engine/models"
)

// MagicSignature is one row of the scanner's magic-number table. Benign
// formats are recognized document containers; matching one never fires
// the executable-header tag.
type MagicSignature struct {
	Prefix []byte
	Format string
	Benign bool
}

// DefaultSignatureTable returns the built-in magic-number table. Windows
// and Unix executable formats plus Java class files are treated as
// threats when presented as documents; ZIP and PDF containers are known
// benign formats.
func DefaultSignatureTable() []MagicSignature {
	return []MagicSignature{
		{Prefix: []byte{0x4D, 0x5A}, Format: "windows-executable"},
		{Prefix: []byte{0x50, 0x45, 0x00, 0x00}, Format: "portable-executable"},
		{Prefix: []byte{0x7F, 0x45, 0x4C, 0x46}, Format: "elf-executable"},
		{Prefix: []byte{0xCA, 0xFE, 0xBA, 0xBE}, Format: "java-class"},
		{Prefix: []byte{0x50, 0x4B, 0x03, 0x04}, Format: "zip-container", Benign: true},
		{Prefix: []byte{0x25, 0x50, 0x44, 0x46}, Format: "pdf-document", Benign: true},
	}
}

// ScanForThreats screens the file at path with the configured heuristics
// and returns a verdict. A verdict is advisory: the caller decides
// whether to quarantine. A clean verdict is returned when heuristics are
// disabled.
//
// Two independent heuristics run, and a file can trip both:
//
//   - the leading bytes are matched against the magic-number table, and a
//     hit on a non-benign format is reported as a known executable header.
//     This check runs for every readable file regardless of size;
//   - the Shannon entropy of a leading sample is measured, and values
//     above the configured threshold are reported as suspiciously random.
//     Files below the configured minimum scan size produce unstable
//     estimates and skip this check. Legitimately compressed or encrypted
//     content fires it too; that false positive is accepted.
func (s *Scanner) ScanForThreats(path string) (models.ScanVerdict, error) {
	if s.cfg.DisableHeuristics {
		return models.ScanVerdict{}, nil
	}

	sample, size, err := s.readSample(path)
	if err != nil {
		return models.ScanVerdict{}, err
	}

	var verdict models.ScanVerdict
	matched, benign := s.matchSignature(sample)

	if matched && !benign {
		verdict.Suspicious = true
		verdict.Reasons = append(verdict.Reasons, models.ReasonExecutableHeader)
	}

	if size >= int64(s.cfg.MinScanSize) && shannonEntropy(sample) > s.cfg.EntropyThreshold {
		verdict.Suspicious = true
		verdict.Reasons = append(verdict.Reasons, models.ReasonHighEntropy)
	}

	if verdict.Suspicious {
		s.event("threat-detected").
			Str("path", path).
			Strs("reasons", verdict.Reasons).
			Msg("heuristic scan flagged file")
	}

	return verdict, nil
}

// readSample reads up to the configured sample size of leading bytes and
// returns them together with the file's total size.
func (s *Scanner) readSample(path string) ([]byte, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("scan %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, 0, fmt.Errorf("scan %s: %w", path, err)
	}

	sample := make([]byte, min(int64(s.cfg.SampleSize), info.Size()))
	if _, err := io.ReadFull(f, sample); err != nil {
		return nil, 0, fmt.Errorf("scan %s: %w", path, err)
	}

	return sample, info.Size(), nil
}

// matchSignature reports whether the sample's leading bytes hit the
// signature table and, if so, whether the matched format is benign.
func (s *Scanner) matchSignature(sample []byte) (matched, benign bool) {
	for _, sig := range s.signatures {
		if bytes.HasPrefix(sample, sig.Prefix) {
			return true, sig.Benign
		}
	}
	return false, false
}

// shannonEntropy returns the Shannon entropy of data in bits per byte.
// Uniformly random data approaches 8.0; text hovers around 4.5.
func shannonEntropy(data []byte) float64 {
	if len(data) == 0 {
		return 0
	}

	var counts [256]int
	for _, b := range data {
		counts[b]++
	}

	total := float64(len(data))
	entropy := 0.0
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / total
		entropy -= p * math.Log2(p)
	}

	return entropy
}
