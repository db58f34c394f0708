package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/notes/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	sess, err := s.auth.Signup(ctx, SignupInput{Username: "alice", Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)
	require.NotEmpty(t, sess.Token)
	require.NotEqual(t, "secret123", sess.User.PasswordHash)
	require.WithinDuration(t, time.Now().Add(jwtx.DefaultSessionTTL), sess.ExpiresAt, time.Minute)

	tests := []struct {
		name string
		in   SignupInput
		want error
	}{
		{"missing fields", SignupInput{Username: "x", Password: "secret123"}, ErrMissingFields},
		{"bad email", SignupInput{Username: "x", Email: "not-an-email", Password: "secret123"}, ErrInvalidEmail},
		{"short password", SignupInput{Username: "x", Email: "x@example.com", Password: "12345"}, ErrPasswordTooShort},
		{"email taken", SignupInput{Username: "x", Email: "alice@example.com", Password: "secret123"}, ErrEmailTaken},
		{"username taken", SignupInput{Username: "alice", Email: "x@example.com", Password: "secret123"}, ErrUsernameTaken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.auth.Signup(ctx, tt.in)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoginAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	id := s.signup(t, "alice")

	_, err := s.auth.Login(ctx, "alice@example.com", "wrong-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.auth.Login(ctx, "nobody@example.com", "secret123")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	sess, err := s.auth.Login(ctx, "alice@example.com", "secret123")
	require.NoError(t, err)
	require.Equal(t, id, sess.User.ID)

	got, err := s.auth.Authenticate(ctx, sess.Token)
	require.NoError(t, err)
	require.Equal(t, id, got)

	_, err = s.auth.Authenticate(ctx, "garbage")
	require.ErrorIs(t, err, ErrInvalidSession)
}

func TestAuthenticateRejectsForeignIssuer(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	id := s.signup(t, "alice")

	claims := jwtx.NewSessionClaims(id, "alice", time.Hour, "someone-else", time.Now())
	token, err := s.auth.KeyManager.GetSigner().Sign(claims)
	require.NoError(t, err)

	_, err = s.auth.Authenticate(ctx, token)
	require.ErrorIs(t, err, ErrInvalidSession)
}

func TestAuthenticateRejectsExpired(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	id := s.signup(t, "alice")

	claims := jwtx.NewSessionClaims(id, "alice", time.Hour, "notes-test", time.Now().Add(-2*time.Hour))
	token, err := s.auth.KeyManager.GetSigner().Sign(claims)
	require.NoError(t, err)

	_, err = s.auth.Authenticate(ctx, token)
	require.ErrorIs(t, err, ErrInvalidSession)
}
