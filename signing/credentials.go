// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package signing produces and verifies detached CMS (PKCS#7) document
// signatures with credentials held in PKCS#12 key stores.
package signing

import (
	"crypto"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
	"slices"

	pkcs12 "software.sslmate.com/src/go-pkcs12"
)

// CredentialStore holds signing credentials keyed by alias. One alias is
// always current; stores loaded from a key store select the first
// enumerated alias deterministically.
type CredentialStore interface {
	// Aliases lists the available aliases in stable order.
	Aliases() []string

	// CurrentAlias returns the selected alias, or "" when the store has
	// been cleared.
	CurrentAlias() string

	// SelectAlias switches the current alias. Returns ErrUnknownAlias
	// when the store holds no such alias.
	SelectAlias(alias string) error

	// PrivateKeyFor returns the private key registered under alias.
	PrivateKeyFor(alias string) (crypto.Signer, error)

	// CertificateChainFor returns the certificate chain registered under
	// alias, end-entity certificate first.
	CertificateChainFor(alias string) ([]*x509.Certificate, error)

	// Clear drops all key handles and zeroes any retained secrets. The
	// store is unusable afterwards.
	Clear()
}

type memoryCredentials struct {
	aliases  []string
	current  string
	keys     map[string]crypto.Signer
	chains   map[string][]*x509.Certificate
	password []byte
}

// NewMemoryCredentials returns an in-memory [CredentialStore] holding a
// single alias. Meant for callers that manage key material themselves.
func NewMemoryCredentials(alias string, key crypto.Signer, chain []*x509.Certificate) CredentialStore {
	return &memoryCredentials{
		aliases: []string{alias},
		current: alias,
		keys:    map[string]crypto.Signer{alias: key},
		chains:  map[string][]*x509.Certificate{alias: chain},
	}
}

// LoadCredentials opens the PKCS#12 key store at path and returns a
// credential store over its contents. The alias is taken from the
// end-entity certificate's common name.
func LoadCredentials(path, password string) (CredentialStore, error) {
	if password == "" {
		return nil, fmt.Errorf("%w: empty key store password", ErrInvalidCredentials)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrStoreNotFound, path)
		}
		return nil, fmt.Errorf("read key store %s: %w", path, err)
	}

	return parseKeyStore(data, password)
}

func parseKeyStore(data []byte, password string) (CredentialStore, error) {
	priv, cert, caCerts, err := pkcs12.DecodeChain(data, password)
	if err != nil {
		if errors.Is(err, pkcs12.ErrIncorrectPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedStore, err)
	}

	signer, ok := priv.(crypto.Signer)
	if !ok {
		return nil, fmt.Errorf("%w: private key is not a signing key", ErrMalformedStore)
	}

	alias := cert.Subject.CommonName
	if alias == "" {
		alias = cert.SerialNumber.String()
	}

	chain := append([]*x509.Certificate{cert}, caCerts...)
	return &memoryCredentials{
		aliases:  []string{alias},
		current:  alias,
		keys:     map[string]crypto.Signer{alias: signer},
		chains:   map[string][]*x509.Certificate{alias: chain},
		password: []byte(password),
	}, nil
}

func (m *memoryCredentials) Aliases() []string {
	return slices.Clone(m.aliases)
}

func (m *memoryCredentials) CurrentAlias() string {
	return m.current
}

func (m *memoryCredentials) SelectAlias(alias string) error {
	if !slices.Contains(m.aliases, alias) {
		return fmt.Errorf("%w: %s", ErrUnknownAlias, alias)
	}
	m.current = alias
	return nil
}

func (m *memoryCredentials) PrivateKeyFor(alias string) (crypto.Signer, error) {
	key, ok := m.keys[alias]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlias, alias)
	}
	return key, nil
}

func (m *memoryCredentials) CertificateChainFor(alias string) ([]*x509.Certificate, error) {
	chain, ok := m.chains[alias]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlias, alias)
	}
	return slices.Clone(chain), nil
}

func (m *memoryCredentials) Clear() {
	for i := range m.password {
		m.password[i] = 0
	}
	m.password = nil
	m.keys = nil
	m.chains = nil
	m.aliases = nil
	m.current = ""
}
