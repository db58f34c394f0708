package jwtx

import (
	"crypto/ed25519"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/aussiebroadwan/notes/pkg/cryptox"
)

// KeyManager owns the signing keys and the matching verifier.
type KeyManager struct {
	Verifier Verifier
	KeySet   *KeySet

	mu      sync.RWMutex
	signers []Signer
}

// KeyManagerOptions configures a KeyManager.
type KeyManagerOptions struct {
	// Issuer is set on issued tokens and required on verified ones.
	Issuer string

	// NumKeys for ephemeral managers. Defaults to 3, capped at 10.
	NumKeys int
}

// NewEphemeralKeyManager generates in-memory keys. Every session becomes
// invalid when the process restarts.
func NewEphemeralKeyManager(opts KeyManagerOptions) (*KeyManager, error) {
	if opts.Issuer == "" {
		return nil, errors.New("jwtx: Issuer is required")
	}

	n := opts.NumKeys
	if n <= 0 {
		n = 3
	}
	n = min(n, 10)

	pems := make([][]byte, 0, n)
	for i := 0; i < n; i++ {
		pemBytes, err := cryptox.GenerateEd25519Key()
		if err != nil {
			return nil, fmt.Errorf("jwtx: failed to generate key %d: %w", i+1, err)
		}
		pems = append(pems, pemBytes)
	}
	return newKeyManager(opts.Issuer, pems...)
}

// NewKeyManagerFromPEM uses a single stored key. The kid is derived from the
// public key so it stays stable across restarts.
func NewKeyManagerFromPEM(pemKey []byte, opts KeyManagerOptions) (*KeyManager, error) {
	if opts.Issuer == "" {
		return nil, errors.New("jwtx: Issuer is required")
	}
	return newKeyManager(opts.Issuer, pemKey)
}

func newKeyManager(issuer string, pems ...[]byte) (*KeyManager, error) {
	keyset := NewKeySet()
	signers := make([]Signer, 0, len(pems))

	for i, p := range pems {
		kid, err := keyIDFor(p)
		if err != nil {
			return nil, err
		}
		signer, err := NewSigner(kid, p)
		if err != nil {
			return nil, fmt.Errorf("jwtx: signer %d: %w", i+1, err)
		}
		if err := keyset.AddSigner(signer); err != nil {
			return nil, fmt.Errorf("jwtx: failed to add signer %d to keyset: %w", i+1, err)
		}
		signers = append(signers, signer)
	}

	return &KeyManager{
		Verifier: NewVerifier(keyset, issuer),
		KeySet:   keyset,
		signers:  signers,
	}, nil
}

// GetSigner returns one of the signing keys at random.
func (km *KeyManager) GetSigner() Signer {
	km.mu.RLock()
	defer km.mu.RUnlock()

	switch len(km.signers) {
	case 0:
		return nil
	case 1:
		return km.signers[0]
	}
	return km.signers[rand.IntN(len(km.signers))]
}

func (km *KeyManager) NumSigners() int {
	km.mu.RLock()
	defer km.mu.RUnlock()
	return len(km.signers)
}

func (km *KeyManager) IsReady() bool {
	return km.KeySet.IsReady()
}

// keyIDFor fingerprints the public half of a PEM private key.
func keyIDFor(pemKey []byte) (string, error) {
	block, _ := pem.Decode(pemKey)
	if block == nil {
		return "", errors.New("jwtx: invalid PEM for Ed25519 key")
	}
	priv, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return "", fmt.Errorf("jwtx: parse PKCS8: %w", err)
	}
	key, ok := priv.(ed25519.PrivateKey)
	if !ok {
		return "", errors.New("jwtx: not Ed25519 private key")
	}
	pub := key.Public().(ed25519.PublicKey)
	return "notes-" + cryptox.FingerprintToken(string(pub))[:16], nil
}
