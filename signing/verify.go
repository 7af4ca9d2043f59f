// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package signing

import (
	"github.com/smallstep/pkcs7"

	"github.com/MKhiriev/go-trust-engine/models"
)

// Verify checks one signature record against the exact content bytes it
// claims to sign. Checks run in order: structural (filter and sub-filter
// present and recognized, signature present), certificate validity at the
// recorded signing time,
// then the cryptographic digest and signature. Every failed check adds a
// distinct reason tag, so a caller can tell a stripped record from a
// tampered document from an expired credential.
//
// A signing timestamp in the verifier's future is recorded as a
// "clock-skew" warning, not a failure: machine clocks drift, and an
// otherwise sound signature should not be rejected for it.
func (s *Signer) Verify(rec models.SignatureRecord, content []byte) models.VerificationResult {
	result := models.VerificationResult{
		SignerName: rec.SignerName,
		Valid:      true,
	}

	switch {
	case rec.Filter == "":
		result.Fail(models.ReasonMissingFilter)
	case rec.Filter != models.SignatureFilter:
		result.Fail(models.ReasonUnexpectedFilter)
	}
	switch {
	case rec.SubFilter == "":
		result.Fail(models.ReasonMissingSubFilter)
	case rec.SubFilter != models.SignatureSubFilter:
		result.Fail(models.ReasonUnexpectedSubFilter)
	}
	if len(rec.Signature) == 0 {
		result.Fail(models.ReasonMissingSignature)
		return result
	}

	if rec.SignedAt.After(s.now()) {
		result.Warnings = append(result.Warnings, models.ReasonClockSkew)
	}

	p7, err := pkcs7.Parse(rec.Signature)
	if err != nil {
		result.Fail(models.ReasonMalformedSignature)
		return result
	}
	p7.Content = content

	if signer := p7.GetOnlySigner(); signer != nil && !rec.SignedAt.IsZero() {
		if rec.SignedAt.After(signer.NotAfter) {
			result.Fail(models.ReasonCertificateExpired)
		}
		if rec.SignedAt.Before(signer.NotBefore) {
			result.Fail(models.ReasonCertificateNotYetValid)
		}
	}

	if err := p7.Verify(); err != nil {
		result.Fail(models.ReasonSignatureMismatch)
	}

	return result
}

// VerifyAll verifies every record independently against content and
// returns the per-record results plus the conjunction of their validity.
// A document with zero signature records is reported valid: there is
// nothing to be wrong. Callers that require a signature must check the
// record count themselves.
func (s *Signer) VerifyAll(recs []models.SignatureRecord, content []byte) ([]models.VerificationResult, bool) {
	if len(recs) == 0 {
		return nil, true
	}

	results := make([]models.VerificationResult, 0, len(recs))
	valid := true
	for _, rec := range recs {
		result := s.Verify(rec, content)
		valid = valid && result.Valid
		results = append(results, result)
	}

	return results, valid
}
