// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Signature dictionary identifiers carried by every record the engine
// produces. The document collaborator splices them into its own container.
const (
	SignatureFilter    = "Adobe.PPKLite"
	SignatureSubFilter = "adbe.pkcs7.detached"
)

// Verification reason tags. Fatal tags flip the aggregate result; warning
// tags are advisory and reported alongside a valid result.
const (
	// ReasonMissingFilter fires when a record carries no filter identifier.
	ReasonMissingFilter = "missing-filter"

	// ReasonMissingSubFilter fires when a record carries no subfilter
	// identifier.
	ReasonMissingSubFilter = "missing-subfilter"

	// ReasonUnexpectedFilter fires when a record names a signature handler
	// other than [SignatureFilter].
	ReasonUnexpectedFilter = "unexpected-filter"

	// ReasonUnexpectedSubFilter fires when a record names a signature
	// encoding other than [SignatureSubFilter].
	ReasonUnexpectedSubFilter = "unexpected-subfilter"

	// ReasonMissingSignature fires when a record carries no signature bytes.
	ReasonMissingSignature = "missing-signature"

	// ReasonMalformedSignature fires when the signature bytes cannot be
	// parsed as a CMS SignedData structure.
	ReasonMalformedSignature = "malformed-signature"

	// ReasonSignatureMismatch fires when the recomputed content digest or
	// the signature value does not verify against the embedded certificate.
	ReasonSignatureMismatch = "signature-mismatch"

	// ReasonCertificateExpired fires when the signing certificate was
	// already expired at signing time. Distinct from a bad signature value.
	ReasonCertificateExpired = "certificate-expired"

	// ReasonCertificateNotYetValid fires when the signing certificate was
	// not yet valid at signing time.
	ReasonCertificateNotYetValid = "certificate-not-yet-valid"

	// ReasonClockSkew is a warning tag: the recorded signing time lies in
	// the future relative to verification time. Non-fatal.
	ReasonClockSkew = "clock-skew"
)

// SignatureRecord is one logical signature attached to a document: display
// metadata plus the detached CMS SignedData bytes. Records are immutable
// once created and append-only on a document (insertion order = signing
// order).
type SignatureRecord struct {
	// SignerName is the display name taken from the signing certificate's
	// common name.
	SignerName string `json:"signer_name"`

	// Reason is the caller-supplied signing reason. Free text, non-empty,
	// at most 1000 characters.
	Reason string `json:"reason"`

	// Location is the caller-supplied signing location. Same bounds as
	// Reason.
	Location string `json:"location"`

	// SignedAt is the signing timestamp, also embedded in the CMS signed
	// attributes.
	SignedAt time.Time `json:"signed_at"`

	// Filter and SubFilter identify the signature handler and encoding for
	// the document container.
	Filter    string `json:"filter"`
	SubFilter string `json:"sub_filter"`

	// Signature holds the DER-encoded detached CMS SignedData: signer info,
	// signed attributes (content-type, message-digest, signing-time) and
	// the full certificate chain.
	Signature []byte `json:"signature"`
}

// VerificationResult reports the outcome of verifying one SignatureRecord.
// Reasons lists fired fatal tags; Warnings lists advisory tags (e.g.
// clock-skew) that do not affect Valid.
type VerificationResult struct {
	// SignerName echoes the record's signer for per-signature reporting.
	SignerName string `json:"signer_name"`

	// Valid is true when all structural and cryptographic checks passed.
	Valid bool `json:"valid"`

	// Reasons names every failed check. Empty when Valid.
	Reasons []string `json:"reasons,omitempty"`

	// Warnings names advisory anomalies that did not fail verification.
	Warnings []string `json:"warnings,omitempty"`
}

// Fail marks the result invalid and records the fired reason tag.
func (r *VerificationResult) Fail(reason string) {
	r.Valid = false
	r.Reasons = append(r.Reasons, reason)
}
