package jwtx

// Signer is anything that can sign session tokens.
type Signer interface {
	Alg() string
	KID() string
	Sign(Claims) (string, error)
	PublicJWK() JWK
	Validate() error
}

// NewSigner creates an EdDSA signer from a PKCS8 PEM Ed25519 private key.
func NewSigner(kid string, pemKey []byte) (Signer, error) {
	return newEdDSASigner(kid, pemKey)
}
