// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package signing

import (
	"fmt"
	"io"
	"time"

	"github.com/smallstep/pkcs7"

	"github.com/MKhiriev/go-trust-engine/logger"
	"github.com/MKhiriev/go-trust-engine/models"
)

// maxAnnotationLength bounds the reason and location fields of a
// signature record.
const maxAnnotationLength = 1000

// Signer produces and verifies detached CMS signatures. The zero value is
// not usable; construct with [NewSigner].
type Signer struct {
	now    func() time.Time
	logger *logger.Logger
}

// NewSigner returns a [Signer] using the wall clock for signing
// timestamps.
func NewSigner(log *logger.Logger) *Signer {
	return &Signer{
		now:    time.Now,
		logger: log,
	}
}

// Sign reads content to its end and returns a signature record carrying a
// detached CMS SignedData over it. The content itself is never embedded:
// the record is valid only against the exact bytes that were signed.
//
// Reason and location are mandatory annotations, each at most 1000
// characters. The record's signer name is taken from the end-entity
// certificate's common name and the timestamp from the signer's clock.
func (s *Signer) Sign(content io.Reader, creds CredentialStore, reason, location string) (models.SignatureRecord, error) {
	if err := validateAnnotation("reason", reason); err != nil {
		return models.SignatureRecord{}, err
	}
	if err := validateAnnotation("location", location); err != nil {
		return models.SignatureRecord{}, err
	}
	if creds == nil || creds.CurrentAlias() == "" {
		return models.SignatureRecord{}, ErrNoCredentials
	}

	alias := creds.CurrentAlias()
	key, err := creds.PrivateKeyFor(alias)
	if err != nil {
		return models.SignatureRecord{}, err
	}
	chain, err := creds.CertificateChainFor(alias)
	if err != nil {
		return models.SignatureRecord{}, err
	}
	if len(chain) == 0 {
		return models.SignatureRecord{}, fmt.Errorf("%w: alias %s has no certificate", ErrNoCredentials, alias)
	}

	data, err := io.ReadAll(content)
	if err != nil {
		return models.SignatureRecord{}, fmt.Errorf("read content: %w", err)
	}

	signedData, err := pkcs7.NewSignedData(data)
	if err != nil {
		return models.SignatureRecord{}, fmt.Errorf("initialize signed data: %w", err)
	}
	signedData.SetDigestAlgorithm(pkcs7.OIDDigestAlgorithmSHA256)

	if err := signedData.AddSignerChain(chain[0], key, chain[1:], pkcs7.SignerInfoConfig{}); err != nil {
		return models.SignatureRecord{}, fmt.Errorf("add signer: %w", err)
	}
	signedData.Detach()

	der, err := signedData.Finish()
	if err != nil {
		return models.SignatureRecord{}, fmt.Errorf("finish signed data: %w", err)
	}

	record := models.SignatureRecord{
		SignerName: chain[0].Subject.CommonName,
		Reason:     reason,
		Location:   location,
		SignedAt:   s.now().UTC(),
		Filter:     models.SignatureFilter,
		SubFilter:  models.SignatureSubFilter,
		Signature:  der,
	}

	s.logger.Info().
		Str("signer", record.SignerName).
		Str("reason", reason).
		Msg("document signed")

	return record, nil
}

func validateAnnotation(field, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s must not be empty", ErrInvalidInput, field)
	}
	if len(value) > maxAnnotationLength {
		return fmt.Errorf("%w: %s exceeds %d characters", ErrInvalidInput, field, maxAnnotationLength)
	}
	return nil
}
