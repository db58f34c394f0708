package jwtx

import "errors"

// Verifier validates a token and returns its claims.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
)

type verifierAdapter struct{ *EdDSAVerifier }

func (a verifierAdapter) Verify(token string) (Claims, error) {
	c, err := a.EdDSAVerifier.Verify(token)
	if err != nil {
		return Claims{}, err
	}
	return *c, nil
}

// NewVerifier returns an EdDSA Verifier over keys.
func NewVerifier(keys *KeySet, issuer string) Verifier {
	return verifierAdapter{NewVerifierEdDSA(keys, issuer)}
}
