// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Heuristic scan reason tags.
const (
	// ReasonExecutableHeader fires when the file's leading bytes match a
	// known executable or bytecode container magic number.
	ReasonExecutableHeader = "known-executable-header"

	// ReasonHighEntropy fires when the sampled Shannon entropy exceeds the
	// configured threshold, characteristic of packed or encrypted payloads.
	ReasonHighEntropy = "high-entropy"
)

// IntegrityEntry maps a monitored path to its last-verified content hash.
// Entries are mutated only by explicit re-registration and deleted when
// monitoring stops; a verify call never updates the baseline.
type IntegrityEntry struct {
	// Path is the monitored file path or logical resource id.
	Path string `json:"path"`

	// Hash is the SHA-256 content hash as 64 lowercase hex characters.
	Hash string `json:"hash"`

	// RegisteredAt is the time the baseline was (re)established.
	RegisteredAt time.Time `json:"registered_at"`
}

// TableName returns the name of the database table
// associated with the IntegrityEntry model.
func (e IntegrityEntry) TableName() string {
	return "integrity_entries"
}

// ScanVerdict is the result of one heuristic scan. It is computed fresh per
// call and never persisted.
type ScanVerdict struct {
	// Suspicious is the logical OR of all fired heuristics.
	Suspicious bool `json:"suspicious"`

	// Reasons names each fired heuristic.
	Reasons []string `json:"reasons,omitempty"`
}
