package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/notes/pkg/cryptox"
	"github.com/aussiebroadwan/notes/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const exampleIssuer = "notes-api"

func TestEdDSASignAndVerify(t *testing.T) {
	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)

	signer, err := jwtx.NewSigner("test-key", pemKey)
	require.NoError(t, err)
	require.NoError(t, signer.Validate())
	require.Equal(t, "EdDSA", signer.Alg())
	require.Equal(t, "test-key", signer.KID())

	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(signer))

	claims := jwtx.NewSessionClaims("user-456", "bob", 5*time.Minute, exampleIssuer, time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)
	require.Len(t, strings.Split(token, "."), 3)

	got, err := jwtx.NewVerifier(keys, exampleIssuer).Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-456", got.Subject)
	require.Equal(t, "bob", got.Username)
}

func TestEdDSAVerifyRejects(t *testing.T) {
	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	signer, err := jwtx.NewSigner("k1", pemKey)
	require.NoError(t, err)

	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(signer))
	verifier := jwtx.NewVerifier(keys, exampleIssuer)

	t.Run("wrong issuer", func(t *testing.T) {
		token, err := signer.Sign(jwtx.NewSessionClaims("u", "", time.Minute, "other", time.Now()))
		require.NoError(t, err)
		_, err = verifier.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := signer.Sign(jwtx.NewSessionClaims("u", "", time.Minute, exampleIssuer, time.Now().Add(-time.Hour)))
		require.NoError(t, err)
		_, err = verifier.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("unknown key", func(t *testing.T) {
		otherPEM, err := cryptox.GenerateEd25519Key()
		require.NoError(t, err)
		other, err := jwtx.NewSigner("k2", otherPEM)
		require.NoError(t, err)

		token, err := other.Sign(jwtx.NewSessionClaims("u", "", time.Minute, exampleIssuer, time.Now()))
		require.NoError(t, err)
		_, err = verifier.Verify(token)
		require.Error(t, err)
	})

	t.Run("tampered payload", func(t *testing.T) {
		token, err := signer.Sign(jwtx.NewSessionClaims("u", "", time.Minute, exampleIssuer, time.Now()))
		require.NoError(t, err)
		parts := strings.Split(token, ".")
		parts[1] = parts[1][:len(parts[1])-2] + "AA"
		_, err = verifier.Verify(strings.Join(parts, "."))
		require.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := verifier.Verify("not-a-token")
		require.Error(t, err)
	})
}

func TestNewSignerRejectsBadPEM(t *testing.T) {
	_, err := jwtx.NewSigner("k", []byte("nope"))
	require.Error(t, err)
}

func TestKeySetRejectsForeignKeyType(t *testing.T) {
	keys := jwtx.NewKeySet()
	err := keys.AddJWK(jwtx.JWK{Kty: "RSA", Kid: "rsa"})
	require.Error(t, err)
	require.False(t, keys.IsReady())

	_, err = keys.Get("rsa")
	require.ErrorIs(t, err, jwtx.ErrNoKey)
}
