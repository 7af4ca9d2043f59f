// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package signing

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-trust-engine/logger"
	"github.com/MKhiriev/go-trust-engine/models"
)

// testKeyAndCert generates an RSA key and a self-signed certificate with
// the given validity window.
func testKeyAndCert(t *testing.T, cn string, notBefore, notAfter time.Time) (*rsa.PrivateKey, *x509.Certificate) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	template := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: cn},
		NotBefore:             notBefore,
		NotAfter:              notAfter,
		KeyUsage:              x509.KeyUsageDigitalSignature,
		BasicConstraintsValid: true,
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)

	cert, err := x509.ParseCertificate(der)
	require.NoError(t, err)

	return key, cert
}

func testCredentials(t *testing.T, cn string) CredentialStore {
	t.Helper()

	now := time.Now()
	key, cert := testKeyAndCert(t, cn, now.Add(-time.Hour), now.Add(24*time.Hour))
	return NewMemoryCredentials(cn, key, []*x509.Certificate{cert})
}

func TestSign_RoundTrip(t *testing.T) {
	// Arrange
	signer := NewSigner(logger.Nop())
	creds := testCredentials(t, "Alice Example")
	content := []byte("annual report, final draft")

	// Act
	rec, err := signer.Sign(bytes.NewReader(content), creds, "approval", "Berlin")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Alice Example", rec.SignerName)
	assert.Equal(t, "approval", rec.Reason)
	assert.Equal(t, "Berlin", rec.Location)
	assert.Equal(t, models.SignatureFilter, rec.Filter)
	assert.Equal(t, models.SignatureSubFilter, rec.SubFilter)
	assert.NotEmpty(t, rec.Signature)
	assert.WithinDuration(t, time.Now(), rec.SignedAt, time.Minute)

	result := signer.Verify(rec, content)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Reasons)
	assert.Empty(t, result.Warnings)
}

func TestSign_TamperedContent(t *testing.T) {
	// Arrange
	signer := NewSigner(logger.Nop())
	creds := testCredentials(t, "Alice Example")
	content := []byte("the agreed amount is 100")

	rec, err := signer.Sign(bytes.NewReader(content), creds, "approval", "Berlin")
	require.NoError(t, err)

	// Act
	result := signer.Verify(rec, []byte("the agreed amount is 900"))

	// Assert
	assert.False(t, result.Valid)
	assert.Contains(t, result.Reasons, models.ReasonSignatureMismatch)
}

func TestSign_AnnotationValidation(t *testing.T) {
	signer := NewSigner(logger.Nop())
	creds := testCredentials(t, "Alice Example")

	tests := []struct {
		name     string
		reason   string
		location string
		wantErr  bool
	}{
		{name: "empty reason", reason: "", location: "Berlin", wantErr: true},
		{name: "empty location", reason: "approval", location: "", wantErr: true},
		{name: "reason at limit", reason: strings.Repeat("r", 1000), location: "Berlin", wantErr: false},
		{name: "reason over limit", reason: strings.Repeat("r", 1001), location: "Berlin", wantErr: true},
		{name: "location over limit", reason: "approval", location: strings.Repeat("l", 1001), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := signer.Sign(bytes.NewReader([]byte("content")), creds, tt.reason, tt.location)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSign_NoCredentials(t *testing.T) {
	signer := NewSigner(logger.Nop())

	_, err := signer.Sign(bytes.NewReader([]byte("content")), nil, "approval", "Berlin")

	assert.ErrorIs(t, err, ErrNoCredentials)
}

func TestSign_ClearedCredentials(t *testing.T) {
	// Arrange
	signer := NewSigner(logger.Nop())
	creds := testCredentials(t, "Alice Example")
	creds.Clear()

	// Act
	_, err := signer.Sign(bytes.NewReader([]byte("content")), creds, "approval", "Berlin")

	// Assert
	assert.ErrorIs(t, err, ErrNoCredentials)
}

func TestSign_MultipleSignersIndependentRecords(t *testing.T) {
	// Arrange
	signer := NewSigner(logger.Nop())
	content := []byte("jointly approved")
	alice := testCredentials(t, "Alice Example")
	bob := testCredentials(t, "Bob Example")

	// Act
	recAlice, err := signer.Sign(bytes.NewReader(content), alice, "author", "Berlin")
	require.NoError(t, err)
	recBob, err := signer.Sign(bytes.NewReader(content), bob, "reviewer", "Oslo")
	require.NoError(t, err)

	// Assert
	results, valid := signer.VerifyAll([]models.SignatureRecord{recAlice, recBob}, content)
	assert.True(t, valid)
	require.Len(t, results, 2)
	assert.Equal(t, "Alice Example", results[0].SignerName)
	assert.Equal(t, "Bob Example", results[1].SignerName)
}
