// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package security implements the integrity scanner: content-hash
// monitoring of files against registered baselines, heuristic malware
// screening of files entering the system, and a quarantine workflow for
// suspect files.
//
// The scanner holds no process-wide state: thresholds and toggles arrive
// as an explicit [config.Scanner] value at construction, and the
// monitoring baselines live in an injected [store.IntegrityRegistry], so
// scans stay deterministic and testable.
package security

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-trust-engine/config"
	"github.com/MKhiriev/go-trust-engine/logger"
	"github.com/MKhiriev/go-trust-engine/models"
	"github.com/MKhiriev/go-trust-engine/store"
)

// Scanner performs integrity monitoring and heuristic threat scanning.
// All operations are synchronous and blocking; the scanner never spawns
// goroutines. Concurrent calls against different paths are safe; calls
// against the same path require external serialization by the owner.
type Scanner struct {
	cfg        config.Scanner
	signatures []MagicSignature
	registry   store.IntegrityRegistry
	logger     *logger.Logger
}

// Status is a point-in-time snapshot of the scanner's configuration and
// the size of the monitored set.
type Status struct {
	MonitoredFiles     int  `json:"monitored_files"`
	HeuristicsEnabled  bool `json:"heuristics_enabled"`
	RealTimeProtection bool `json:"real_time_protection"`
}

// New constructs a [Scanner] with the given thresholds, baseline registry
// and logger. Pass a [logger.NewFileLogger] to keep the security event
// trail in an append-only file. The signature table defaults to
// [DefaultSignatureTable]; override it with [Scanner.WithSignatureTable].
func New(cfg config.Scanner, registry store.IntegrityRegistry, log *logger.Logger) *Scanner {
	log.Debug().Msg("creating integrity scanner")
	return &Scanner{
		cfg:        cfg,
		signatures: DefaultSignatureTable(),
		registry:   registry,
		logger:     log,
	}
}

// WithSignatureTable replaces the magic-number table and returns the
// receiver for chaining at construction time.
func (s *Scanner) WithSignatureTable(table []MagicSignature) *Scanner {
	s.signatures = table
	return s
}

// Register computes the current content hash of path and stores it as that
// path's baseline. Idempotent: re-registering overwrites the baseline —
// an explicit "trust this new state" operation, not a merge.
func (s *Scanner) Register(ctx context.Context, path string) error {
	hash, err := s.HashFile(path)
	if err != nil {
		return err
	}

	entry := models.IntegrityEntry{
		Path:         path,
		Hash:         hash,
		RegisteredAt: time.Now(),
	}
	if err := s.registry.Put(ctx, entry); err != nil {
		return err
	}

	s.event("file-registered").Str("path", path).Msg("baseline stored")
	return nil
}

// Unregister stops monitoring path and deletes its baseline.
func (s *Scanner) Unregister(ctx context.Context, path string) error {
	if err := s.registry.Delete(ctx, path); err != nil {
		return err
	}

	s.event("file-unregistered").Str("path", path).Msg("baseline removed")
	return nil
}

// VerifyIntegrity recomputes the hash of path and compares it to the
// registered baseline. It returns false — not an error — when no baseline
// is registered: "have we ever looked at this file" and "is it still what
// we expect" are different questions, and verification against nothing is
// defined as failure.
//
// A mismatch is logged as an integrity violation and, when real-time
// protection is enabled, the file is quarantined.
func (s *Scanner) VerifyIntegrity(ctx context.Context, path string) bool {
	entry, err := s.registry.Get(ctx, path)
	if err != nil {
		if !errors.Is(err, store.ErrEntryNotFound) {
			s.logger.Err(err).Str("path", path).Msg("integrity verification failed: registry lookup")
		}
		return false
	}

	current, err := s.HashFile(path)
	if err != nil {
		s.event("integrity-violation").
			Str("path", path).
			Str("expected", entry.Hash).
			Str("actual", "FILE_MISSING").
			Msg("monitored file unreadable or deleted")
		return false
	}

	if current != entry.Hash {
		s.event("integrity-violation").
			Str("path", path).
			Str("expected", entry.Hash).
			Str("actual", current).
			Msg("monitored file modified")

		if s.cfg.RealTimeProtection {
			if _, qErr := s.Quarantine(path); qErr != nil {
				s.logger.Err(qErr).Str("path", path).Msg("failed to quarantine modified file")
			}
		}
		return false
	}

	return true
}

// Status reports the monitored-set size and the active toggles.
func (s *Scanner) Status(ctx context.Context) (Status, error) {
	count, err := s.registry.Count(ctx)
	if err != nil {
		return Status{}, err
	}

	return Status{
		MonitoredFiles:     count,
		HeuristicsEnabled:  !s.cfg.DisableHeuristics,
		RealTimeProtection: s.cfg.RealTimeProtection,
	}, nil
}

// event starts a security-event log entry with the given event tag.
func (s *Scanner) event(name string) *zerolog.Event {
	return s.logger.Warn().Str("event", name)
}
