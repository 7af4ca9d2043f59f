// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package signing

import (
	"encoding/json"
	"slices"

	"github.com/MKhiriev/go-trust-engine/models"
)

// Ledger is the append-only signature list of one document. A document
// moves from unsigned to signed by appending records; there is no removal
// API, because a signature, once applied, is part of the document's
// history.
//
// The zero value is an empty, usable ledger.
type Ledger struct {
	records []models.SignatureRecord
}

// Append adds a record and returns the new record count.
func (l *Ledger) Append(rec models.SignatureRecord) int {
	l.records = append(l.records, rec)
	return len(l.records)
}

// Records returns a copy of the records in signing order. Mutating the
// returned slice does not affect the ledger.
func (l *Ledger) Records() []models.SignatureRecord {
	return slices.Clone(l.records)
}

// Count returns the number of signatures applied.
func (l *Ledger) Count() int {
	return len(l.records)
}

// Signed reports whether at least one signature has been applied.
func (l *Ledger) Signed() bool {
	return len(l.records) > 0
}

// MarshalJSON encodes the ledger as a plain record array for embedding in
// a document container.
func (l *Ledger) MarshalJSON() ([]byte, error) {
	if l.records == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.records)
}

// UnmarshalJSON restores a ledger from a record array produced by
// [Ledger.MarshalJSON].
func (l *Ledger) UnmarshalJSON(data []byte) error {
	var records []models.SignatureRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return err
	}
	l.records = records
	return nil
}
